package font

import (
	"fmt"

	"github.com/tsawler/pdfstream/core"
	"github.com/tsawler/pdfstream/model"
)

// Type3Font is a font whose glyphs are content streams. Unlike every other
// font type it carries its own /FontMatrix, so glyph-space units are not
// thousandths: widths from /Widths and /CharProcs are already in the
// glyph space that matrix defines.
type Type3Font struct {
	name string

	fontMatrix model.Matrix
	firstChar  int
	lastChar   int
	widths     []float64

	encoding   Encoding
	glyphNames map[byte]string
	charProcs  core.Dict
	resources  core.Dict
	toUnicode  *CMap
}

// NewType3Font creates a Type3 font from a PDF font dictionary
func NewType3Font(name string, dict core.Dict, resolve resolveFunc) (*Type3Font, error) {
	subtype, _ := dict.GetName("Subtype")
	if subtype != "Type3" {
		return nil, fmt.Errorf("not a Type3 font: /%s", subtype)
	}

	f := &Type3Font{
		name:       name,
		fontMatrix: defaultFontMatrix(),
		glyphNames: make(map[byte]string),
	}

	if fm, ok := resolveArray(dict.Get("FontMatrix"), resolve); ok && len(fm) >= 6 {
		var c [6]float64
		for i := 0; i < 6; i++ {
			c[i], _ = fm.GetFloat(i)
		}
		f.fontMatrix = model.NewMatrixFromComponents(c[0], c[1], c[2], c[3], c[4], c[5])
	}

	if fc, ok := dict.GetInt("FirstChar"); ok {
		f.firstChar = int(fc)
	}
	if lc, ok := dict.GetInt("LastChar"); ok {
		f.lastChar = int(lc)
	}
	if widthsArr, ok := resolveArray(dict.Get("Widths"), resolve); ok {
		f.widths = make([]float64, len(widthsArr))
		for i := range widthsArr {
			f.widths[i], _ = widthsArr.GetFloat(i)
		}
	}

	f.parseEncoding(dict, resolve)

	if procs, ok := resolveDict(dict.Get("CharProcs"), resolve); ok {
		f.charProcs = procs
	}
	if res, ok := resolveDict(dict.Get("Resources"), resolve); ok {
		f.resources = res
	}
	if stream, ok := resolveStream(dict.Get("ToUnicode"), resolve); ok {
		if cmap, err := ParseToUnicodeCMap(stream); err == nil {
			f.toUnicode = cmap
		}
	}

	return f, nil
}

// parseEncoding records both the rune mapping and the glyph names, which
// key into /CharProcs
func (f *Type3Font) parseEncoding(dict core.Dict, resolve resolveFunc) {
	encDict, ok := resolveDict(dict.Get("Encoding"), resolve)
	if !ok {
		f.encoding = GetEncoding("StandardEncoding")
		return
	}

	diffs := make(map[byte]rune)
	if diffsArr, ok := resolveArray(encDict.Get("Differences"), resolve); ok {
		code := 0
		for _, item := range diffsArr {
			switch d := item.(type) {
			case core.Int:
				code = int(d)
			case core.Name:
				if code < 256 {
					f.glyphNames[byte(code)] = string(d)
					if r := glyphNameToRune(string(d)); r != 0 {
						diffs[byte(code)] = r
					}
				}
				code++
			}
		}
	}
	f.encoding = WithDifferences(GetEncoding("StandardEncoding"), diffs)
}

// Name returns the resource name
func (f *Type3Font) Name() string { return f.name }

// Encode decodes a single-byte code via ToUnicode, then the encoding
// differences
func (f *Type3Font) Encode(data []byte, offset, length int) (string, bool) {
	if length != 1 || offset >= len(data) {
		return "", false
	}
	code := data[offset]

	if f.toUnicode != nil {
		if s, ok := f.toUnicode.Lookup(uint32(code)); ok {
			return NormalizeUnicode(s), true
		}
	}
	if f.encoding != nil {
		if r := f.encoding.DecodeByte(code); r != 0 && r != 0xFFFD {
			return NormalizeUnicode(string(r)), true
		}
	}
	return "", false
}

// CodeFromBytes returns the single-byte character code
func (f *Type3Font) CodeFromBytes(data []byte, offset, length int) int {
	if offset >= len(data) {
		return 0
	}
	return int(data[offset])
}

// Width returns the advance width in glyph-space units (the space defined
// by the font matrix, not thousandths)
func (f *Type3Font) Width(data []byte, offset, length int) float64 {
	if offset >= len(data) {
		return 0
	}
	code := int(data[offset])
	if f.widths != nil && code >= f.firstChar && code-f.firstChar < len(f.widths) {
		return f.widths[code-f.firstChar]
	}
	return 0
}

// Height returns a representative glyph height in glyph-space units
func (f *Type3Font) Height(data []byte, offset, length int) float64 {
	// the font bounding box would be authoritative; the y extent of the
	// font matrix inverse is a workable stand-in
	if f.fontMatrix[1][1] != 0 {
		return 1 / f.fontMatrix[1][1] * 0.7
	}
	return 0
}

// SpaceWidth returns the width of code 0x20 in glyph-space units
func (f *Type3Font) SpaceWidth() (float64, error) {
	w := f.Width([]byte{0x20}, 0, 1)
	if w == 0 {
		return 0, fmt.Errorf("type3 font %s has no space width", f.name)
	}
	return w, nil
}

// AverageWidth returns the average of the declared widths
func (f *Type3Font) AverageWidth() float64 {
	total, count := 0.0, 0
	for _, w := range f.widths {
		if w > 0 {
			total += w
			count++
		}
	}
	if count > 0 {
		return total / float64(count)
	}
	return 0
}

// FontMatrix returns the font's own glyph-space matrix
func (f *Type3Font) FontMatrix() model.Matrix { return f.fontMatrix }

// IsType3 reports true
func (f *Type3Font) IsType3() bool { return true }

// Vertical reports false: Type3 fonts are horizontal
func (f *Type3Font) Vertical() bool { return false }

// CharProc returns the glyph procedure stream for a character code, keyed
// through the encoding's glyph name
func (f *Type3Font) CharProc(code byte) (*core.Stream, bool) {
	if f.charProcs == nil {
		return nil, false
	}
	name, ok := f.glyphNames[code]
	if !ok {
		return nil, false
	}
	stream, ok := f.charProcs.GetStream(name)
	return stream, ok
}

// Resources returns the font's own resource dictionary used while a char
// proc executes
func (f *Type3Font) Resources() core.Dict { return f.resources }
