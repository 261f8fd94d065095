package font

import (
	"github.com/tsawler/pdfstream/core"
	"github.com/tsawler/pdfstream/model"
)

// Font is the capability the interpreter needs from a PDF font: decoding
// character codes to Unicode and supplying glyph metrics. Widths and
// heights are in glyph units; for everything except Type3 fonts those are
// thousandths of text space.
type Font interface {
	// Name returns the resource name the font was registered under
	Name() string

	// Encode decodes the code at data[offset:offset+length] to its Unicode
	// string. ok is false when the font has no mapping for that code (a
	// one-byte probe into a two-byte font, or a genuinely unmapped code).
	Encode(data []byte, offset, length int) (text string, ok bool)

	// CodeFromBytes returns the numeric character code at
	// data[offset:offset+length]
	CodeFromBytes(data []byte, offset, length int) int

	// Width returns the advance width of the code in glyph units
	Width(data []byte, offset, length int) float64

	// Height returns the glyph height of the code in glyph units
	Height(data []byte, offset, length int) float64

	// SpaceWidth returns the width of the space glyph in glyph units.
	// Fonts without a usable space glyph return an error or zero.
	SpaceWidth() (float64, error)

	// AverageWidth returns the average glyph width in glyph units
	AverageWidth() float64

	// FontMatrix returns the glyph-space to text-space matrix. For all
	// fonts except Type3 this is the standard 1/1000 scaling.
	FontMatrix() model.Matrix

	// IsType3 reports whether this is a Type3 font with its own font matrix
	IsType3() bool

	// Vertical reports whether the font uses vertical writing mode
	Vertical() bool
}

// Descriptor contains font metrics and properties from a /FontDescriptor
// dictionary
type Descriptor struct {
	FontName     string
	Flags        int
	FontBBox     [4]float64 // llx lly urx ury
	ItalicAngle  float64
	Ascent       float64
	Descent      float64
	CapHeight    float64
	XHeight      float64
	StemV        float64
	AvgWidth     float64
	MaxWidth     float64
	MissingWidth float64
}

// parseDescriptor reads a /FontDescriptor dictionary. Returns nil when the
// dictionary is absent, which is legal for the standard 14 fonts.
func parseDescriptor(obj core.Object, resolve resolveFunc) *Descriptor {
	dict, ok := resolveDict(obj, resolve)
	if !ok {
		return nil
	}

	fd := &Descriptor{}
	if name, ok := dict.GetName("FontName"); ok {
		fd.FontName = string(name)
	}
	if flags, ok := dict.GetInt("Flags"); ok {
		fd.Flags = int(flags)
	}
	if bboxObj, ok := resolveArray(dict.Get("FontBBox"), resolve); ok && len(bboxObj) >= 4 {
		for i := 0; i < 4; i++ {
			fd.FontBBox[i], _ = bboxObj.GetFloat(i)
		}
	}
	fd.ItalicAngle, _ = dict.GetFloat("ItalicAngle")
	fd.Ascent, _ = dict.GetFloat("Ascent")
	fd.Descent, _ = dict.GetFloat("Descent")
	fd.CapHeight, _ = dict.GetFloat("CapHeight")
	fd.XHeight, _ = dict.GetFloat("XHeight")
	fd.StemV, _ = dict.GetFloat("StemV")
	fd.AvgWidth, _ = dict.GetFloat("AvgWidth")
	fd.MaxWidth, _ = dict.GetFloat("MaxWidth")
	fd.MissingWidth, _ = dict.GetFloat("MissingWidth")
	return fd
}

// glyphHeight derives a representative glyph height in glyph units from a
// descriptor, preferring cap height over the bounding box.
func (fd *Descriptor) glyphHeight() float64 {
	if fd == nil {
		return 0
	}
	if fd.CapHeight > 0 {
		return fd.CapHeight
	}
	return fd.FontBBox[3] - fd.FontBBox[1]
}

// resolveFunc dereferences an indirect object. The document parser
// supplies it; a nil func leaves references unresolved.
type resolveFunc func(core.IndirectRef) (core.Object, error)

// deref follows obj if it is an indirect reference
func deref(obj core.Object, resolve resolveFunc) core.Object {
	ref, ok := obj.(core.IndirectRef)
	if !ok || resolve == nil {
		return obj
	}
	resolved, err := resolve(ref)
	if err != nil {
		return nil
	}
	return resolved
}

func resolveDict(obj core.Object, resolve resolveFunc) (core.Dict, bool) {
	dict, ok := deref(obj, resolve).(core.Dict)
	return dict, ok
}

func resolveArray(obj core.Object, resolve resolveFunc) (core.Array, bool) {
	arr, ok := deref(obj, resolve).(core.Array)
	return arr, ok
}

func resolveStream(obj core.Object, resolve resolveFunc) (*core.Stream, bool) {
	stream, ok := deref(obj, resolve).(*core.Stream)
	return stream, ok
}

// defaultFontMatrix is the standard glyph-space scaling of 1/1000
func defaultFontMatrix() model.Matrix {
	return model.Scaling(0.001, 0.001)
}
