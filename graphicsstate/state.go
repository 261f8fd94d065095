package graphicsstate

import (
	"github.com/tsawler/pdfstream/font"
	"github.com/tsawler/pdfstream/model"
)

// RenderingMode is the text rendering mode set by the Tr operator
type RenderingMode int

const (
	RenderFill RenderingMode = iota
	RenderStroke
	RenderFillStroke
	RenderInvisible
	RenderFillClip
	RenderStrokeClip
	RenderFillStrokeClip
	RenderClip
)

// Color is a stroking or non-stroking color specification: the color
// space name plus its component values
type Color struct {
	Space      string
	Components []float64
}

// clone deep-copies the color
func (c Color) clone() Color {
	out := Color{Space: c.Space}
	if c.Components != nil {
		out.Components = make([]float64, len(c.Components))
		copy(out.Components, c.Components)
	}
	return out
}

// DeviceGray returns a DeviceGray color
func DeviceGray(gray float64) Color {
	return Color{Space: "DeviceGray", Components: []float64{gray}}
}

// DeviceRGB returns a DeviceRGB color
func DeviceRGB(r, g, b float64) Color {
	return Color{Space: "DeviceRGB", Components: []float64{r, g, b}}
}

// DeviceCMYK returns a DeviceCMYK color
func DeviceCMYK(c, m, y, k float64) Color {
	return Color{Space: "DeviceCMYK", Components: []float64{c, m, y, k}}
}

// TextState holds the text-specific parameters of the graphics state
type TextState struct {
	Font     font.Font
	FontSize float64

	// Character and word spacing (Tc, Tw)
	CharSpacing float64
	WordSpacing float64

	// Horizontal scaling as a percentage (Tz)
	HorizontalScaling float64

	// Leading (TL)
	Leading float64

	// Text rise (Ts)
	Rise float64

	// Rendering mode (Tr)
	RenderingMode RenderingMode

	// Knockout flag (TK entry of an ExtGState)
	Knockout bool
}

// clone copies the text state. The font handle is shared: fonts are
// read-only from the interpreter's point of view.
func (ts TextState) clone() TextState {
	return ts
}

// DashPattern is the line dash pattern set by the d operator
type DashPattern struct {
	Array []float64
	Phase float64
}

// clone deep-copies the dash pattern
func (d DashPattern) clone() DashPattern {
	out := DashPattern{Phase: d.Phase}
	if d.Array != nil {
		out.Array = make([]float64, len(d.Array))
		copy(out.Array, d.Array)
	}
	return out
}

// GraphicsState is the full PDF graphics state. One current instance
// lives on the interpreter; q/Q push and pop deep clones of it.
type GraphicsState struct {
	// Current Transformation Matrix: user space to device space
	CTM model.Matrix

	// Text state
	Text TextState

	// Line attributes
	LineWidth  float64
	LineCap    int
	LineJoin   int
	MiterLimit float64
	Dash       DashPattern

	// Colors
	StrokeColor Color
	FillColor   Color

	// Rendering controls
	RenderingIntent string
	Flatness        float64
	Smoothness      float64

	// Current clipping path in device space. The reference is shared
	// between clones; clipping operators replace rather than mutate it.
	ClipPath *Path
}

// New creates a graphics state with PDF defaults, with the CTM mapping
// user space onto the given drawing area
func New(drawingArea model.BBox) *GraphicsState {
	gs := &GraphicsState{
		CTM:             model.NewMatrix(),
		LineWidth:       1.0,
		MiterLimit:      10.0,
		StrokeColor:     DeviceGray(0),
		FillColor:       DeviceGray(0),
		RenderingIntent: "RelativeColorimetric",
		Flatness:        1.0,
		Text: TextState{
			HorizontalScaling: 100.0,
		},
	}
	if !drawingArea.IsEmpty() {
		clip := NewPath()
		clip.Rectangle(drawingArea.X, drawingArea.Y, drawingArea.Width, drawingArea.Height)
		gs.ClipPath = clip
	}
	return gs
}

// Clone returns a deep copy. Mutating the clone never affects the
// original, which is what the q/Q save stack relies on.
func (gs *GraphicsState) Clone() *GraphicsState {
	clone := *gs
	clone.Text = gs.Text.clone()
	clone.Dash = gs.Dash.clone()
	clone.StrokeColor = gs.StrokeColor.clone()
	clone.FillColor = gs.FillColor.clone()
	return &clone
}

// Concatenate multiplies a matrix into the CTM (cm operator)
func (gs *GraphicsState) Concatenate(m model.Matrix) {
	gs.CTM = m.Mul(gs.CTM)
}

// SetFont sets the current font and size (Tf operator)
func (gs *GraphicsState) SetFont(f font.Font, size float64) {
	gs.Text.Font = f
	gs.Text.FontSize = size
}
