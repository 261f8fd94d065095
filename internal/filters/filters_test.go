package filters

import (
	"bytes"
	"compress/zlib"
	"testing"
)

func zlibCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("compress: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return buf.Bytes()
}

// TestFlateDecode tests round trip without predictor
func TestFlateDecode(t *testing.T) {
	original := []byte("BT /F1 12 Tf (Hello) Tj ET")
	compressed := zlibCompress(t, original)

	decoded, err := FlateDecode(compressed, nil)
	if err != nil {
		t.Fatalf("FlateDecode failed: %v", err)
	}
	if !bytes.Equal(decoded, original) {
		t.Errorf("expected %q, got %q", original, decoded)
	}
}

// TestFlateDecodePNGPredictor tests PNG Up predictor reversal
func TestFlateDecodePNGPredictor(t *testing.T) {
	// two rows of 3 bytes each, Up predictor (2) on both rows
	// row 0: 1 2 3 (no previous row, passes through)
	// row 1 deltas: 1 1 1 -> reconstructs to 2 3 4
	predicted := []byte{
		2, 1, 2, 3,
		2, 1, 1, 1,
	}
	compressed := zlibCompress(t, predicted)

	params := Params{"Predictor": 12, "Columns": 3, "Colors": 1}
	decoded, err := FlateDecode(compressed, params)
	if err != nil {
		t.Fatalf("FlateDecode failed: %v", err)
	}

	expected := []byte{1, 2, 3, 2, 3, 4}
	if !bytes.Equal(decoded, expected) {
		t.Errorf("expected %v, got %v", expected, decoded)
	}
}

// TestASCIIHexDecode tests hex decoding cases
func TestASCIIHexDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
	}{
		{"simple", "48656C6C6F>", []byte("Hello")},
		{"whitespace", "48 65 6C\n6C 6F>", []byte("Hello")},
		{"lowercase", "68690a>", []byte("hi\n")},
		{"odd digit", "4>", []byte{0x40}},
		{"empty", ">", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ASCIIHexDecode([]byte(tt.input))
			if err != nil {
				t.Fatalf("ASCIIHexDecode failed: %v", err)
			}
			if !bytes.Equal(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

// TestASCIIHexDecodeInvalid tests rejection of non-hex input
func TestASCIIHexDecodeInvalid(t *testing.T) {
	if _, err := ASCIIHexDecode([]byte("4G>")); err == nil {
		t.Error("expected error for invalid hex digit")
	}
}

// TestASCII85Decode tests base-85 decoding cases
func TestASCII85Decode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
	}{
		{"full group", "ARTY*~>", []byte("easy")},
		{"z shorthand", "z~>", []byte{0, 0, 0, 0}},
		{"partial group", "BE~>", []byte("h")},
		{"two groups", "ARTY*FCb~>", []byte("easyte")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ASCII85Decode([]byte(tt.input))
			if err != nil {
				t.Fatalf("ASCII85Decode failed: %v", err)
			}
			if !bytes.Equal(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

// TestRunLengthDecode tests run-length decoding cases
func TestRunLengthDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected []byte
	}{
		{"literal run", []byte{2, 'a', 'b', 'c', 128}, []byte("abc")},
		{"repeat run", []byte{254, 'x', 128}, []byte("xxx")},
		{"mixed", []byte{0, 'a', 255, 'b', 128}, []byte("abb")},
		{"eod only", []byte{128}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RunLengthDecode(tt.input)
			if err != nil {
				t.Fatalf("RunLengthDecode failed: %v", err)
			}
			if !bytes.Equal(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

// TestRunLengthDecodeTruncated tests error on truncated input
func TestRunLengthDecodeTruncated(t *testing.T) {
	if _, err := RunLengthDecode([]byte{5, 'a'}); err == nil {
		t.Error("expected error for truncated literal run")
	}
	if _, err := RunLengthDecode([]byte{200}); err == nil {
		t.Error("expected error for repeat run without byte")
	}
}
