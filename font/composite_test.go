package font

import (
	"testing"

	"github.com/tsawler/pdfstream/core"
)

// compositeDict builds a minimal Type0 font with a ToUnicode CMap
func compositeDict() core.Dict {
	cmapData := `begincmap
1 begincodespacerange
<0000> <FFFF>
endcodespacerange
2 beginbfchar
<0041> <0041>
<3042> <3042>
endbfchar
1 beginbfrange
<0100> <0102> <0061>
endbfrange
endcmap`

	return core.Dict{
		"Subtype":   core.Name("Type0"),
		"BaseFont":  core.Name("NotoSansJP"),
		"Encoding":  core.Name("Identity-H"),
		"ToUnicode": core.NewStream(nil, []byte(cmapData)),
		"DescendantFonts": core.Array{
			core.Dict{
				"Subtype":  core.Name("CIDFontType2"),
				"BaseFont": core.Name("NotoSansJP"),
				"DW":       core.Int(1000),
				"W": core.Array{
					core.Int(0x41), core.Array{core.Int(520)},
					core.Int(0x100), core.Int(0x102), core.Int(480),
				},
			},
		},
	}
}

// TestCompositeOneByteProbeFails tests the multi-byte retry contract:
// a one-byte probe must fail so callers retry with two bytes
func TestCompositeOneByteProbeFails(t *testing.T) {
	f, err := NewCompositeFont("F1", compositeDict(), nil)
	if err != nil {
		t.Fatalf("NewCompositeFont failed: %v", err)
	}

	if _, ok := f.Encode([]byte{0x00, 0x41}, 0, 1); ok {
		t.Error("one-byte probe should fail for a composite font")
	}
	if text, ok := f.Encode([]byte{0x00, 0x41}, 0, 2); !ok || text != "A" {
		t.Errorf("two-byte encode: expected A, got %q ok=%v", text, ok)
	}
}

// TestCompositeBfRange tests range-mapped codes
func TestCompositeBfRange(t *testing.T) {
	f, err := NewCompositeFont("F1", compositeDict(), nil)
	if err != nil {
		t.Fatalf("NewCompositeFont failed: %v", err)
	}

	tests := []struct {
		code     []byte
		expected string
	}{
		{[]byte{0x01, 0x00}, "a"},
		{[]byte{0x01, 0x01}, "b"},
		{[]byte{0x01, 0x02}, "c"},
		{[]byte{0x30, 0x42}, "あ"},
	}

	for _, tt := range tests {
		text, ok := f.Encode(tt.code, 0, 2)
		if !ok || text != tt.expected {
			t.Errorf("Encode(% x): expected %q, got %q ok=%v", tt.code, tt.expected, text, ok)
		}
	}
}

// TestCompositeWidths tests W array lookup and DW fallback
func TestCompositeWidths(t *testing.T) {
	f, err := NewCompositeFont("F1", compositeDict(), nil)
	if err != nil {
		t.Fatalf("NewCompositeFont failed: %v", err)
	}

	tests := []struct {
		name     string
		code     []byte
		expected float64
	}{
		{"individual width", []byte{0x00, 0x41}, 520},
		{"range width", []byte{0x01, 0x01}, 480},
		{"default width", []byte{0x99, 0x99}, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Width(tt.code, 0, 2); got != tt.expected {
				t.Errorf("expected %f, got %f", tt.expected, got)
			}
		})
	}
}

// TestCompositeSpaceWidthFails tests that SpaceWidth reports failure so
// the interpreter falls back to the average width
func TestCompositeSpaceWidthFails(t *testing.T) {
	f, err := NewCompositeFont("F1", compositeDict(), nil)
	if err != nil {
		t.Fatalf("NewCompositeFont failed: %v", err)
	}

	if _, err := f.SpaceWidth(); err == nil {
		t.Error("expected SpaceWidth to fail for composite font")
	}
}

// TestCompositeVertical tests Identity-V detection
func TestCompositeVertical(t *testing.T) {
	dict := compositeDict()
	dict["Encoding"] = core.Name("Identity-V")

	f, err := NewCompositeFont("F1", dict, nil)
	if err != nil {
		t.Fatalf("NewCompositeFont failed: %v", err)
	}
	if !f.Vertical() {
		t.Error("expected Identity-V font to report vertical")
	}
}

// TestCMapCodeLengths tests codespace length discovery
func TestCMapCodeLengths(t *testing.T) {
	cmap, err := parseCMapData([]byte(`1 begincodespacerange
<0000> <FFFF>
endcodespacerange`))
	if err != nil {
		t.Fatalf("parseCMapData failed: %v", err)
	}

	lengths := cmap.CodeLengths()
	if len(lengths) != 1 || lengths[0] != 2 {
		t.Errorf("expected [2], got %v", lengths)
	}
}

// TestCMapBfRangeArrayForm tests the [dst dst ...] destination form
func TestCMapBfRangeArrayForm(t *testing.T) {
	cmap, err := parseCMapData([]byte(`1 beginbfrange
<01> <03> [<0058> <0059> <005A>]
endbfrange`))
	if err != nil {
		t.Fatalf("parseCMapData failed: %v", err)
	}

	for code, expected := range map[uint32]string{1: "X", 2: "Y", 3: "Z"} {
		if got, ok := cmap.Lookup(code); !ok || got != expected {
			t.Errorf("Lookup(%d): expected %q, got %q ok=%v", code, expected, got, ok)
		}
	}
}
