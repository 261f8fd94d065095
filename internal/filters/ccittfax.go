package filters

import (
	"bytes"
	"io"

	"golang.org/x/image/ccitt"
)

// CCITTFaxDecode decodes CCITT Group 3/4 fax compressed data, commonly used
// for bi-level images in scanned documents.
//
// Parameters from the PDF decode parameters dictionary:
//   - K: group selector (<0 Group4, 0 Group3 1D, >0 Group3 2D)
//   - Columns: image width in pixels (default 1728)
//   - Rows: image height in pixels (default 0: auto-detect)
//   - BlackIs1: bit interpretation (maps to ccitt.Options.Invert)
func CCITTFaxDecode(data []byte, params Params) ([]byte, error) {
	columns := params.Int("Columns", 1728)
	rows := params.Int("Rows", 0)
	k := params.Int("K", 0)
	blackIs1 := params.Bool("BlackIs1", false)

	var sf ccitt.SubFormat
	if k < 0 {
		sf = ccitt.Group4
	} else {
		sf = ccitt.Group3
	}

	if rows == 0 {
		rows = ccitt.AutoDetectHeight
	}

	// PDF packs bits MSB first; BlackIs1 maps to Invert
	opts := &ccitt.Options{Invert: blackIs1}
	reader := ccitt.NewReader(bytes.NewReader(data), ccitt.MSB, sf, columns, rows, opts)
	return io.ReadAll(reader)
}
