package font

import (
	"strconv"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Encoding maps single-byte character codes to runes
type Encoding interface {
	DecodeByte(b byte) rune
}

// charmapEncoding adapts an x/text character map
type charmapEncoding struct {
	cm *charmap.Charmap
}

func (e charmapEncoding) DecodeByte(b byte) rune {
	return e.cm.DecodeByte(b)
}

// GetEncoding returns the byte encoding for a PDF base-encoding name.
// WinAnsiEncoding is Windows code page 1252 and MacRomanEncoding is the
// Macintosh character set; StandardEncoding and PDFDocEncoding agree with
// Latin-1 over the range that matters for text extraction.
func GetEncoding(name string) Encoding {
	switch name {
	case "WinAnsiEncoding":
		return charmapEncoding{charmap.Windows1252}
	case "MacRomanEncoding":
		return charmapEncoding{charmap.Macintosh}
	default:
		return charmapEncoding{charmap.ISO8859_1}
	}
}

// differencesEncoding overlays a /Differences table on a base encoding
type differencesEncoding struct {
	base  Encoding
	diffs map[byte]rune
}

func (e differencesEncoding) DecodeByte(b byte) rune {
	if r, ok := e.diffs[b]; ok {
		return r
	}
	return e.base.DecodeByte(b)
}

// WithDifferences returns base overlaid with explicit code-to-rune
// differences
func WithDifferences(base Encoding, diffs map[byte]rune) Encoding {
	if len(diffs) == 0 {
		return base
	}
	return differencesEncoding{base: base, diffs: diffs}
}

// NormalizeUnicode normalizes decoded text to NFC so that combining
// sequences compare and embed consistently
func NormalizeUnicode(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}

// DecodeUTF16BE decodes big-endian UTF-16 bytes to a string
func DecodeUTF16BE(data []byte) string {
	if len(data)%2 != 0 {
		data = data[:len(data)-1]
	}
	if len(data) == 0 {
		return ""
	}
	units := make([]uint16, len(data)/2)
	for i := range units {
		units[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return string(utf16.Decode(units))
}

// glyphNameToRune maps an Adobe glyph name to its rune. Handles the uniXXXX
// and uXXXX[XX] forms plus the names common in Differences arrays; unknown
// names map to 0.
func glyphNameToRune(name string) rune {
	if r, ok := glyphNames[name]; ok {
		return r
	}
	if strings.HasPrefix(name, "uni") && len(name) >= 7 {
		if v, err := strconv.ParseUint(name[3:7], 16, 32); err == nil {
			return rune(v)
		}
	}
	if strings.HasPrefix(name, "u") && len(name) >= 5 && len(name) <= 7 {
		if v, err := strconv.ParseUint(name[1:], 16, 32); err == nil {
			return rune(v)
		}
	}
	// single-character names ("a", "B") name themselves
	if runes := []rune(name); len(runes) == 1 {
		return runes[0]
	}
	return 0
}

// glyphNames covers the Adobe standard glyph names that appear in practice
// in Differences arrays
var glyphNames = map[string]rune{
	"space":          ' ',
	"exclam":         '!',
	"quotedbl":       '"',
	"numbersign":     '#',
	"dollar":         '$',
	"percent":        '%',
	"ampersand":      '&',
	"quotesingle":    '\'',
	"quoteright":     '’',
	"quoteleft":      '‘',
	"parenleft":      '(',
	"parenright":     ')',
	"asterisk":       '*',
	"plus":           '+',
	"comma":          ',',
	"hyphen":         '-',
	"minus":          '−',
	"period":         '.',
	"slash":          '/',
	"zero":           '0',
	"one":            '1',
	"two":            '2',
	"three":          '3',
	"four":           '4',
	"five":           '5',
	"six":            '6',
	"seven":          '7',
	"eight":          '8',
	"nine":           '9',
	"colon":          ':',
	"semicolon":      ';',
	"less":           '<',
	"equal":          '=',
	"greater":        '>',
	"question":       '?',
	"at":             '@',
	"bracketleft":    '[',
	"backslash":      '\\',
	"bracketright":   ']',
	"asciicircum":    '^',
	"underscore":     '_',
	"grave":          '`',
	"braceleft":      '{',
	"bar":            '|',
	"braceright":     '}',
	"asciitilde":     '~',
	"bullet":         '•',
	"dagger":         '†',
	"daggerdbl":      '‡',
	"ellipsis":       '…',
	"emdash":         '—',
	"endash":         '–',
	"quotedblleft":   '“',
	"quotedblright":  '”',
	"fi":             'ﬁ',
	"fl":             'ﬂ',
	"germandbls":     'ß',
	"adieresis":      'ä',
	"odieresis":      'ö',
	"udieresis":      'ü',
	"Adieresis":      'Ä',
	"Odieresis":      'Ö',
	"Udieresis":      'Ü',
	"eacute":         'é',
	"egrave":         'è',
	"agrave":         'à',
	"ccedilla":       'ç',
	"ntilde":         'ñ',
	"copyright":      '©',
	"registered":     '®',
	"trademark":      '™',
	"degree":         '°',
	"sterling":       '£',
	"yen":            '¥',
	"Euro":           '€',
	"cent":           '¢',
	"section":        '§',
	"paragraph":      '¶',
	"periodcentered": '·',
	"multiply":       '×',
	"divide":         '÷',
	"plusminus":      '±',
	"exclamdown":     '¡',
	"questiondown":   '¿',
	"guillemotleft":  '«',
	"guillemotright": '»',
}
