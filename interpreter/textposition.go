package interpreter

import (
	"github.com/tsawler/pdfstream/core"
	"github.com/tsawler/pdfstream/font"
	"github.com/tsawler/pdfstream/model"
)

// TextPosition describes one shown glyph with its resolved display-space
// geometry. The engine emits one per character code consumed by a text
// showing operator.
type TextPosition struct {
	// Page geometry the glyph was shown on
	PageRotation int
	PageWidth    float64
	PageHeight   float64

	// TextMatrix is the display-space matrix at the start of the glyph.
	// It is a distinct value per emission; sinks may keep it.
	TextMatrix model.Matrix

	// End-of-glyph position in display space, excluding character and
	// word spacing. The raw inter-glyph gap this leaves behind is what
	// word-break detection keys on.
	EndX float64
	EndY float64

	// VerticalDisplacement is the total glyph height in display units
	VerticalDisplacement float64

	// WidthText is the glyph advance in text units
	WidthText float64

	// SpaceWidth is the width of a space in display units, for word-break
	// heuristics
	SpaceWidth float64

	// Text is the decoded Unicode string ("?" when the font could not
	// decode the code)
	Text string

	// CodePoints holds the raw character codes behind Text
	CodePoints []int

	// Font and size that showed the glyph
	Font     font.Font
	FontSize float64

	// FontSizePixels is the font size scaled by the text matrix's x scale,
	// truncated to an int; the CTM is not applied
	FontSizePixels int
}

// X returns the display-space x coordinate of the start of the glyph
func (tp *TextPosition) X() float64 {
	return tp.TextMatrix.XPosition()
}

// Y returns the display-space y coordinate of the start of the glyph
func (tp *TextPosition) Y() float64 {
	return tp.TextMatrix.YPosition()
}

// Sink receives each emitted TextPosition, synchronously, in glyph order.
// Implementations must not call back into the engine.
type Sink interface {
	OnTextPosition(TextPosition)
}

// SinkFunc adapts a function to the Sink interface
type SinkFunc func(TextPosition)

// OnTextPosition calls f
func (f SinkFunc) OnTextPosition(tp TextPosition) {
	f(tp)
}

// noopSink drops everything; it is the engine default so running without
// a sink is harmless
type noopSink struct{}

func (noopSink) OnTextPosition(TextPosition) {}

// ImageObserver is notified when a Do operator invokes an image XObject.
// The stream is the raw XObject; observers decode it themselves (e.g. to
// feed an OCR fallback). ctm is the transform in effect at the Do.
type ImageObserver func(name string, stream *core.Stream, ctm model.Matrix)
