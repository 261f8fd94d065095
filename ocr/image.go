package ocr

import (
	"fmt"

	"github.com/tsawler/pdfstream/core"
)

// PageSegMode controls how Tesseract analyzes page layout; values match
// the Tesseract PSM constants.
type PageSegMode int

const (
	PSMOSDOnly     PageSegMode = 0
	PSMAutoOSD     PageSegMode = 1
	PSMAutoOnly    PageSegMode = 2
	PSMAuto        PageSegMode = 3
	PSMSingleBlock PageSegMode = 6
	PSMSingleLine  PageSegMode = 7
	PSMSingleWord  PageSegMode = 8
	PSMSparseText  PageSegMode = 11
)

// RecognizeXObject runs OCR on an image XObject as reported by the
// interpreter's image observer. The stream's filter chain is decoded
// first; DCTDecode payloads pass through as JPEG, which Tesseract reads
// directly.
func RecognizeXObject(c *Client, stream *core.Stream) (string, error) {
	if stream == nil {
		return "", fmt.Errorf("nil image stream")
	}
	data, err := stream.Decode()
	if err != nil {
		return "", fmt.Errorf("decode image XObject: %w", err)
	}
	return c.RecognizeImage(data)
}
