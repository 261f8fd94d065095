package filters

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
)

// FlateDecode decompresses Flate (zlib/deflate) compressed data, the most
// common compression filter in PDFs. A Predictor parameter, when present,
// selects the post-decompression prediction algorithm.
func FlateDecode(data []byte, params Params) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("zlib reader: %w", err)
	}
	defer reader.Close()

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("zlib decompression failed: %w", err)
	}

	predictor := params.Int("Predictor", 1)
	if predictor == 1 {
		return decompressed, nil
	}

	out, err := undoPredictor(decompressed, predictor, params)
	if err != nil {
		return nil, fmt.Errorf("predictor failed: %w", err)
	}
	return out, nil
}
