//go:build !ocr

package ocr

import (
	"errors"
	"testing"

	"github.com/tsawler/pdfstream/core"
)

// TestStubReportsNotEnabled tests that the stub refuses all operations
func TestStubReportsNotEnabled(t *testing.T) {
	if _, err := New(); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("expected ErrNotEnabled, got %v", err)
	}

	c := &Client{}
	if _, err := c.RecognizeImage(nil); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("expected ErrNotEnabled, got %v", err)
	}
	if err := c.SetLanguage("eng"); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("expected ErrNotEnabled, got %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close must be safe on stub: %v", err)
	}
}

// TestRecognizeXObjectDecodesFirst tests stream decoding ahead of OCR
func TestRecognizeXObjectDecodesFirst(t *testing.T) {
	c := &Client{}

	// nil stream is rejected before touching the client
	if _, err := RecognizeXObject(c, nil); err == nil {
		t.Error("expected error for nil stream")
	}

	// a decodable stream reaches the (stub) client and reports not enabled
	stream := core.NewStream(nil, []byte{0xFF, 0xD8, 0xFF})
	if _, err := RecognizeXObject(c, stream); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("expected ErrNotEnabled from stub, got %v", err)
	}
}
