package font

import (
	"fmt"

	"github.com/tsawler/pdfstream/core"
	"github.com/tsawler/pdfstream/model"
)

// CompositeFont is a Type0 font with a CIDFont descendant, used for large
// character sets and CJK text. With the Identity encodings, character
// codes are two bytes and equal the CID.
type CompositeFont struct {
	name     string
	baseFont string

	encoding string
	vertical bool

	defaultWidth float64
	widths       []widthRange

	toUnicode  *CMap
	descriptor *Descriptor
}

// widthRange is one entry of the /W array: either an individual-width run
// starting at startCID or a constant width over [startCID, endCID]
type widthRange struct {
	startCID int
	endCID   int
	width    float64
	widths   []float64
}

// NewCompositeFont creates a Type0 font from a PDF font dictionary
func NewCompositeFont(name string, dict core.Dict, resolve resolveFunc) (*CompositeFont, error) {
	subtype, _ := dict.GetName("Subtype")
	if subtype != "Type0" {
		return nil, fmt.Errorf("not a Type0 font: /%s", subtype)
	}

	f := &CompositeFont{
		name:         name,
		encoding:     "Identity-H",
		defaultWidth: 1000,
	}
	if baseFont, ok := dict.GetName("BaseFont"); ok {
		f.baseFont = string(baseFont)
	}
	if enc, ok := dict.GetName("Encoding"); ok {
		f.encoding = string(enc)
		f.vertical = f.encoding == "Identity-V"
	}

	if stream, ok := resolveStream(dict.Get("ToUnicode"), resolve); ok {
		if cmap, err := ParseToUnicodeCMap(stream); err == nil {
			f.toUnicode = cmap
		}
	}

	if err := f.parseDescendant(dict, resolve); err != nil {
		return nil, err
	}

	return f, nil
}

// parseDescendant reads the single CIDFont from /DescendantFonts
func (f *CompositeFont) parseDescendant(dict core.Dict, resolve resolveFunc) error {
	arr, ok := resolveArray(dict.Get("DescendantFonts"), resolve)
	if !ok || len(arr) == 0 {
		return fmt.Errorf("Type0 font missing DescendantFonts")
	}
	cid, ok := resolveDict(arr.Get(0), resolve)
	if !ok {
		return fmt.Errorf("descendant font is not a dictionary")
	}

	if dw, ok := cid.GetFloat("DW"); ok && dw > 0 {
		f.defaultWidth = dw
	}
	f.descriptor = parseDescriptor(cid.Get("FontDescriptor"), resolve)

	wArr, ok := resolveArray(cid.Get("W"), resolve)
	if !ok {
		return nil
	}
	f.widths = parseWArray(wArr)
	return nil
}

// parseWArray parses the /W width format:
//
//	c [w1 w2 ...]      widths for consecutive CIDs starting at c
//	cFirst cLast w     one width for a CID range
func parseWArray(arr core.Array) []widthRange {
	var ranges []widthRange
	i := 0
	for i < len(arr) {
		start, ok := arr.GetFloat(i)
		if !ok {
			break
		}
		i++
		if i >= len(arr) {
			break
		}

		if list, ok := arr.Get(i).(core.Array); ok {
			widths := make([]float64, len(list))
			for j := range list {
				widths[j], _ = list.GetFloat(j)
			}
			ranges = append(ranges, widthRange{
				startCID: int(start),
				endCID:   int(start) + len(widths) - 1,
				widths:   widths,
			})
			i++
			continue
		}

		end, ok := arr.GetFloat(i)
		if !ok {
			break
		}
		i++
		if i >= len(arr) {
			break
		}
		w, _ := arr.GetFloat(i)
		i++
		ranges = append(ranges, widthRange{
			startCID: int(start),
			endCID:   int(end),
			width:    w,
		})
	}
	return ranges
}

// Name returns the resource name
func (f *CompositeFont) Name() string { return f.name }

// Encode decodes the two-byte code to Unicode via the ToUnicode CMap.
// One-byte probes report ok=false so callers retry with two bytes.
func (f *CompositeFont) Encode(data []byte, offset, length int) (string, bool) {
	if length != 2 || offset+1 >= len(data) {
		return "", false
	}
	code := uint32(data[offset])<<8 | uint32(data[offset+1])

	if f.toUnicode != nil {
		if s, ok := f.toUnicode.Lookup(code); ok {
			return NormalizeUnicode(s), true
		}
	}
	return "", false
}

// CodeFromBytes returns the big-endian character code
func (f *CompositeFont) CodeFromBytes(data []byte, offset, length int) int {
	code := 0
	for i := 0; i < length && offset+i < len(data); i++ {
		code = code<<8 | int(data[offset+i])
	}
	return code
}

// Width returns the CID's advance width in glyph units
func (f *CompositeFont) Width(data []byte, offset, length int) float64 {
	cid := f.CodeFromBytes(data, offset, length)

	for _, r := range f.widths {
		if cid < r.startCID || cid > r.endCID {
			continue
		}
		if r.widths != nil {
			return r.widths[cid-r.startCID]
		}
		return r.width
	}
	return f.defaultWidth
}

// Height returns a representative glyph height in glyph units
func (f *CompositeFont) Height(data []byte, offset, length int) float64 {
	if h := f.descriptor.glyphHeight(); h > 0 {
		return h
	}
	return 880
}

// SpaceWidth reports failure: composite fonts have no reserved space code,
// so callers fall back to the average width.
func (f *CompositeFont) SpaceWidth() (float64, error) {
	return 0, fmt.Errorf("composite font %s has no space code", f.baseFont)
}

// AverageWidth returns the average of the declared widths, or the default
// width when none are declared
func (f *CompositeFont) AverageWidth() float64 {
	total, count := 0.0, 0
	for _, r := range f.widths {
		if r.widths != nil {
			for _, w := range r.widths {
				total += w
				count++
			}
		} else {
			total += r.width * float64(r.endCID-r.startCID+1)
			count += r.endCID - r.startCID + 1
		}
	}
	if count > 0 {
		return total / float64(count)
	}
	return f.defaultWidth
}

// FontMatrix returns the standard 1/1000 glyph-space scaling
func (f *CompositeFont) FontMatrix() model.Matrix { return defaultFontMatrix() }

// IsType3 reports false for composite fonts
func (f *CompositeFont) IsType3() bool { return false }

// Vertical reports whether the font uses the Identity-V encoding
func (f *CompositeFont) Vertical() bool { return f.vertical }
