// Package graphicsstate provides the PDF graphics state records used by
// the content stream interpreter.
//
// # Graphics State
//
// GraphicsState tracks everything the q/Q stack saves and restores:
//   - CTM (current transformation matrix)
//   - text state (font, size, spacing, scaling, leading, rise, mode)
//   - line attributes (width, cap, join, miter limit, dash)
//   - stroking and non-stroking colors
//   - rendering intent, flatness, smoothness, and the clipping path
//
// The interpreter owns the save stack; this package supplies the deep
// Clone that makes each saved entry independent:
//
//	saved := gs.Clone()
//	gs.Concatenate(m)   // does not affect saved
//
// # Paths
//
// Path collects the path construction operators (m l c v y h re) in user
// space. PathRecorder receives finished paths from the painting operators
// and keeps their device-space geometry — rectangles and line segments —
// for consumers that detect table rules and separators. Painting here
// records geometry; no rasterisation happens.
package graphicsstate
