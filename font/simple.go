package font

import (
	"fmt"

	"github.com/tsawler/pdfstream/core"
	"github.com/tsawler/pdfstream/model"
)

// SimpleFont is a single-byte font: Type1, MMType1, or TrueType. Character
// codes are one byte; widths come from the /Widths array when present and
// from the standard-14 metrics otherwise.
type SimpleFont struct {
	name     string
	baseFont string
	subtype  string

	firstChar int
	lastChar  int
	widths    []float64

	encoding   Encoding
	toUnicode  *CMap
	descriptor *Descriptor
}

// NewSimpleFont creates a simple font from a PDF font dictionary
func NewSimpleFont(name string, dict core.Dict, resolve resolveFunc) (*SimpleFont, error) {
	subtype, _ := dict.GetName("Subtype")
	switch subtype {
	case "Type1", "MMType1", "TrueType":
	default:
		return nil, fmt.Errorf("not a simple font: /%s", subtype)
	}

	f := &SimpleFont{
		name:      name,
		subtype:   string(subtype),
		firstChar: 0,
		lastChar:  255,
	}
	if baseFont, ok := dict.GetName("BaseFont"); ok {
		f.baseFont = string(baseFont)
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

	f.encoding = parseSimpleEncoding(dict.Get("Encoding"), resolve)
	f.descriptor = parseDescriptor(dict.Get("FontDescriptor"), resolve)

	if stream, ok := resolveStream(dict.Get("ToUnicode"), resolve); ok {
		if cmap, err := ParseToUnicodeCMap(stream); err == nil {
			f.toUnicode = cmap
		}
	}

	return f, nil
}

// parseSimpleEncoding reads /Encoding: either a base encoding name or a
// dictionary with /BaseEncoding and /Differences.
func parseSimpleEncoding(obj core.Object, resolve resolveFunc) Encoding {
	obj = deref(obj, resolve)

	switch v := obj.(type) {
	case core.Name:
		return GetEncoding(string(v))

	case core.Dict:
		base := "StandardEncoding"
		if name, ok := v.GetName("BaseEncoding"); ok {
			base = string(name)
		}
		enc := GetEncoding(base)

		diffsArr, ok := resolveArray(v.Get("Differences"), resolve)
		if !ok {
			return enc
		}
		diffs := make(map[byte]rune)
		code := 0
		for _, item := range diffsArr {
			switch d := item.(type) {
			case core.Int:
				code = int(d)
			case core.Name:
				if r := glyphNameToRune(string(d)); r != 0 && code < 256 {
					diffs[byte(code)] = r
				}
				code++
			}
		}
		return WithDifferences(enc, diffs)

	default:
		return GetEncoding("StandardEncoding")
	}
}

// Name returns the resource name
func (f *SimpleFont) Name() string { return f.name }

// BaseFont returns the PostScript base font name
func (f *SimpleFont) BaseFont() string { return f.baseFont }

// Encode decodes a single-byte code to Unicode. ToUnicode wins over the
// byte encoding; codes with no mapping at all report ok=false.
func (f *SimpleFont) Encode(data []byte, offset, length int) (string, bool) {
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
func (f *SimpleFont) CodeFromBytes(data []byte, offset, length int) int {
	if offset >= len(data) {
		return 0
	}
	return int(data[offset])
}

// Width returns the advance width in glyph units for the code at offset
func (f *SimpleFont) Width(data []byte, offset, length int) float64 {
	if offset >= len(data) {
		return 0
	}
	code := int(data[offset])

	if f.widths != nil && code >= f.firstChar && code-f.firstChar < len(f.widths) {
		if w := f.widths[code-f.firstChar]; w > 0 {
			return w
		}
	}

	// standard-14 fallback keyed on the decoded glyph
	if text, ok := f.Encode(data, offset, 1); ok && text != "" {
		if w := StandardWidth(f.baseFont, []rune(text)[0]); w > 0 {
			return w
		}
	}

	if f.descriptor != nil && f.descriptor.MissingWidth > 0 {
		return f.descriptor.MissingWidth
	}
	return 0
}

// Height returns a representative glyph height in glyph units
func (f *SimpleFont) Height(data []byte, offset, length int) float64 {
	if h := f.descriptor.glyphHeight(); h > 0 {
		return h
	}
	return 700
}

// SpaceWidth returns the width of character code 0x20
func (f *SimpleFont) SpaceWidth() (float64, error) {
	return f.Width([]byte{0x20}, 0, 1), nil
}

// AverageWidth returns the average glyph width in glyph units
func (f *SimpleFont) AverageWidth() float64 {
	if f.descriptor != nil && f.descriptor.AvgWidth > 0 {
		return f.descriptor.AvgWidth
	}
	if len(f.widths) > 0 {
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
	}
	return 500
}

// FontMatrix returns the standard 1/1000 glyph-space scaling
func (f *SimpleFont) FontMatrix() model.Matrix { return defaultFontMatrix() }

// IsType3 reports false for simple fonts
func (f *SimpleFont) IsType3() bool { return false }

// Vertical reports false: simple fonts are horizontal
func (f *SimpleFont) Vertical() bool { return false }
