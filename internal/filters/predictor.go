package filters

import "fmt"

// undoPredictor reverses the prediction applied before compression.
// Predictor 2 is TIFF horizontal differencing; 10-15 are the PNG row
// predictors (each row carries its own algorithm byte).
func undoPredictor(data []byte, predictor int, params Params) ([]byte, error) {
	switch {
	case predictor == 2:
		return undoTIFFPredictor(data, params)
	case predictor >= 10 && predictor <= 15:
		return undoPNGPredictor(data, params)
	default:
		return nil, fmt.Errorf("unsupported predictor: %d", predictor)
	}
}

// undoTIFFPredictor reverses TIFF Predictor 2, which predicts each sample
// from the sample to its left. Rarely used in PDFs.
func undoTIFFPredictor(data []byte, params Params) ([]byte, error) {
	columns := params.Int("Columns", 1)
	colors := params.Int("Colors", 1)
	bpc := params.Int("BitsPerComponent", 8)

	if bpc != 8 {
		return nil, fmt.Errorf("TIFF predictor supports only 8 bits per component, got %d", bpc)
	}

	rowSize := columns * colors
	if rowSize == 0 || len(data)%rowSize != 0 {
		return nil, fmt.Errorf("data size %d is not a multiple of row size %d", len(data), rowSize)
	}

	result := make([]byte, len(data))
	for rowStart := 0; rowStart < len(data); rowStart += rowSize {
		for col := 0; col < rowSize; col++ {
			idx := rowStart + col
			if col < colors {
				result[idx] = data[idx]
			} else {
				result[idx] = data[idx] + result[idx-colors]
			}
		}
	}
	return result, nil
}

// undoPNGPredictor reverses the PNG row predictors. Each row starts with a
// predictor byte: 0=None, 1=Sub, 2=Up, 3=Average, 4=Paeth.
func undoPNGPredictor(data []byte, params Params) ([]byte, error) {
	columns := params.Int("Columns", 1)
	colors := params.Int("Colors", 1)
	bpc := params.Int("BitsPerComponent", 8)

	if bpc != 8 {
		return nil, fmt.Errorf("PNG predictor supports only 8 bits per component, got %d", bpc)
	}

	bpp := colors
	rowLen := columns * colors
	rowSize := rowLen + 1 // algorithm byte prefixes each row

	if len(data)%rowSize != 0 {
		return nil, fmt.Errorf("data size %d is not a multiple of row size %d", len(data), rowSize)
	}

	numRows := len(data) / rowSize
	result := make([]byte, numRows*rowLen)

	for row := 0; row < numRows; row++ {
		algo := data[row*rowSize]
		src := data[row*rowSize+1 : (row+1)*rowSize]
		dst := result[row*rowLen : (row+1)*rowLen]

		var prev []byte
		if row > 0 {
			prev = result[(row-1)*rowLen : row*rowLen]
		}

		if err := undoPNGRow(dst, src, prev, algo, bpp); err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
	}
	return result, nil
}

// undoPNGRow reverses one predicted row in place into dst. prev is the
// already-reconstructed previous row (nil for the first row).
func undoPNGRow(dst, src, prev []byte, algo byte, bpp int) error {
	for i := range src {
		var left, up, upLeft byte
		if i >= bpp {
			left = dst[i-bpp]
		}
		if prev != nil {
			up = prev[i]
			if i >= bpp {
				upLeft = prev[i-bpp]
			}
		}

		var predicted byte
		switch algo {
		case 0:
			predicted = 0
		case 1:
			predicted = left
		case 2:
			predicted = up
		case 3:
			predicted = byte((int(left) + int(up)) / 2)
		case 4:
			predicted = paeth(left, up, upLeft)
		default:
			return fmt.Errorf("unknown PNG predictor: %d", algo)
		}

		dst[i] = src[i] + predicted
	}
	return nil
}

// paeth selects the neighbor (left, above, or upper-left) closest to the
// linear prediction, as defined by the PNG specification.
func paeth(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa := intAbs(p - int(a))
	pb := intAbs(p - int(b))
	pc := intAbs(p - int(c))

	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

func intAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
