package font

import (
	"testing"

	"github.com/tsawler/pdfstream/core"
)

// simpleDict builds a minimal Type1 font dictionary
func simpleDict() core.Dict {
	return core.Dict{
		"Type":      core.Name("Font"),
		"Subtype":   core.Name("Type1"),
		"BaseFont":  core.Name("Helvetica"),
		"FirstChar": core.Int(65),
		"LastChar":  core.Int(67),
		"Widths":    core.Array{core.Int(600), core.Int(620), core.Int(640)},
		"Encoding":  core.Name("WinAnsiEncoding"),
	}
}

// TestSimpleFontWidths tests Widths array lookup with FirstChar offset
func TestSimpleFontWidths(t *testing.T) {
	f, err := NewSimpleFont("F1", simpleDict(), nil)
	if err != nil {
		t.Fatalf("NewSimpleFont failed: %v", err)
	}

	tests := []struct {
		name     string
		code     byte
		expected float64
	}{
		{"first char", 65, 600},
		{"middle char", 66, 620},
		{"last char", 67, 640},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Width([]byte{tt.code}, 0, 1)
			if got != tt.expected {
				t.Errorf("Width(%d): expected %f, got %f", tt.code, tt.expected, got)
			}
		})
	}
}

// TestSimpleFontStandardFallback tests standard-14 metrics when no Widths
func TestSimpleFontStandardFallback(t *testing.T) {
	dict := core.Dict{
		"Subtype":  core.Name("Type1"),
		"BaseFont": core.Name("Helvetica"),
		"Encoding": core.Name("WinAnsiEncoding"),
	}
	f, err := NewSimpleFont("F1", dict, nil)
	if err != nil {
		t.Fatalf("NewSimpleFont failed: %v", err)
	}

	// Helvetica 'A' is 667
	if got := f.Width([]byte{'A'}, 0, 1); got != 667 {
		t.Errorf("expected 667, got %f", got)
	}
	// Helvetica space is 278
	sw, err := f.SpaceWidth()
	if err != nil {
		t.Fatalf("SpaceWidth failed: %v", err)
	}
	if sw != 278 {
		t.Errorf("expected space width 278, got %f", sw)
	}
}

// TestSimpleFontEncode tests byte decoding through WinAnsi
func TestSimpleFontEncode(t *testing.T) {
	f, err := NewSimpleFont("F1", simpleDict(), nil)
	if err != nil {
		t.Fatalf("NewSimpleFont failed: %v", err)
	}

	text, ok := f.Encode([]byte{'A'}, 0, 1)
	if !ok || text != "A" {
		t.Errorf("expected A, got %q ok=%v", text, ok)
	}

	// WinAnsi 0x80 is the euro sign
	text, ok = f.Encode([]byte{0x80}, 0, 1)
	if !ok || text != "€" {
		t.Errorf("expected euro sign, got %q ok=%v", text, ok)
	}

	// two-byte probes are not meaningful for a simple font
	if _, ok := f.Encode([]byte{'A', 'B'}, 0, 2); ok {
		t.Error("expected length-2 encode to fail for simple font")
	}
}

// TestSimpleFontDifferences tests a Differences array overlay
func TestSimpleFontDifferences(t *testing.T) {
	dict := simpleDict()
	dict["Encoding"] = core.Dict{
		"BaseEncoding": core.Name("WinAnsiEncoding"),
		"Differences": core.Array{
			core.Int(65), core.Name("bullet"), core.Name("emdash"),
		},
	}

	f, err := NewSimpleFont("F1", dict, nil)
	if err != nil {
		t.Fatalf("NewSimpleFont failed: %v", err)
	}

	if text, ok := f.Encode([]byte{65}, 0, 1); !ok || text != "•" {
		t.Errorf("expected bullet at 65, got %q", text)
	}
	if text, ok := f.Encode([]byte{66}, 0, 1); !ok || text != "—" {
		t.Errorf("expected emdash at 66, got %q", text)
	}
	// outside the differences the base encoding applies
	if text, ok := f.Encode([]byte{67}, 0, 1); !ok || text != "C" {
		t.Errorf("expected C at 67, got %q", text)
	}
}

// TestSimpleFontToUnicode tests that a ToUnicode CMap wins over encoding
func TestSimpleFontToUnicode(t *testing.T) {
	cmapData := `/CIDInit /ProcSet findresource begin
begincmap
1 begincodespacerange
<00> <FF>
endcodespacerange
1 beginbfchar
<41> <0394>
endbfchar
endcmap`

	dict := simpleDict()
	dict["ToUnicode"] = core.NewStream(nil, []byte(cmapData))

	f, err := NewSimpleFont("F1", dict, nil)
	if err != nil {
		t.Fatalf("NewSimpleFont failed: %v", err)
	}

	// 0x41 maps to GREEK CAPITAL DELTA through the CMap, not to 'A'
	if text, ok := f.Encode([]byte{0x41}, 0, 1); !ok || text != "Δ" {
		t.Errorf("expected delta, got %q", text)
	}
}

// TestCodeFromBytes tests numeric code extraction
func TestCodeFromBytes(t *testing.T) {
	f, err := NewSimpleFont("F1", simpleDict(), nil)
	if err != nil {
		t.Fatalf("NewSimpleFont failed: %v", err)
	}

	if code := f.CodeFromBytes([]byte{0x41}, 0, 1); code != 0x41 {
		t.Errorf("expected 0x41, got %#x", code)
	}
}

// TestLoadDispatch tests subtype dispatch in Load
func TestLoadDispatch(t *testing.T) {
	f, err := Load("F1", simpleDict(), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if f.IsType3() {
		t.Error("simple font must not report IsType3")
	}

	if _, err := Load("F2", core.Dict{"Subtype": core.Name("Bogus")}, nil); err == nil {
		t.Error("expected error for unknown subtype")
	}
	if _, err := Load("F3", core.Dict{}, nil); err == nil {
		t.Error("expected error for missing subtype")
	}
}

// TestLoadResolvesReferences tests loading through indirect references
func TestLoadResolvesReferences(t *testing.T) {
	widths := core.Array{core.Int(500)}
	resolve := func(ref core.IndirectRef) (core.Object, error) {
		if ref.Number == 7 {
			return widths, nil
		}
		return core.Null{}, nil
	}

	dict := core.Dict{
		"Subtype":   core.Name("Type1"),
		"BaseFont":  core.Name("Custom"),
		"FirstChar": core.Int(32),
		"LastChar":  core.Int(32),
		"Widths":    core.IndirectRef{Number: 7},
	}

	f, err := NewSimpleFont("F1", dict, resolve)
	if err != nil {
		t.Fatalf("NewSimpleFont failed: %v", err)
	}
	if got := f.Width([]byte{32}, 0, 1); got != 500 {
		t.Errorf("expected width 500 via reference, got %f", got)
	}
}

// TestTrimSubsetTag tests subset prefix stripping
func TestTrimSubsetTag(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ABCDEF+Helvetica", "Helvetica"},
		{"Helvetica", "Helvetica"},
		{"AbCDEF+Times-Roman", "AbCDEF+Times-Roman"}, // tag must be uppercase
	}
	for _, tt := range tests {
		if got := trimSubsetTag(tt.input); got != tt.expected {
			t.Errorf("trimSubsetTag(%q): expected %q, got %q", tt.input, tt.expected, got)
		}
	}
}
