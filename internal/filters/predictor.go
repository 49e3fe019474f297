package filters

import "fmt"

// applyPredictorParams undoes the predictor named by the Predictor entry of
// params, if any. Shared by FlateDecode and LZWDecode.
func applyPredictorParams(data []byte, params Params) ([]byte, error) {
	predictor := getIntParam(params, "Predictor", 1)
	return applyPredictor(data, predictor, params)
}

// applyPredictor applies prediction algorithms to improve compression.
// Predictor 1 is identity (no prediction), 2 is TIFF Predictor 2,
// and 10-15 are PNG predictors (None, Sub, Up, Average, Paeth).
func applyPredictor(data []byte, predictor int, params Params) ([]byte, error) {
	switch {
	case predictor == 1:
		return data, nil
	case predictor == 2:
		return applyTIFFPredictor2(data, params)
	case predictor >= 10 && predictor <= 15:
		return applyPNGPredictor(data, params)
	}
	return nil, fmt.Errorf("unsupported predictor: %d", predictor)
}

// applyTIFFPredictor2 applies TIFF Predictor 2, which predicts each sample
// from the sample to its left. Only 8-bit samples are supported.
func applyTIFFPredictor2(data []byte, params Params) ([]byte, error) {
	columns := getIntParam(params, "Columns", 1)
	colors := getIntParam(params, "Colors", 1)
	bpc := getIntParam(params, "BitsPerComponent", 8)

	if bpc != 8 {
		return nil, fmt.Errorf("TIFF Predictor 2 only supports 8 bits per component, got %d", bpc)
	}

	rowSize := columns * colors
	if rowSize <= 0 {
		return nil, fmt.Errorf("invalid row size %d", rowSize)
	}
	if len(data)%rowSize != 0 {
		return nil, fmt.Errorf("data size %d is not a multiple of row size %d", len(data), rowSize)
	}

	result := make([]byte, len(data))
	for row := 0; row < len(data)/rowSize; row++ {
		rowStart := row * rowSize
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

// applyPNGPredictor applies PNG predictor algorithms. Each row starts with
// a predictor byte (0-4) that specifies which algorithm to use for that row.
// Rows are (Columns*Colors*BitsPerComponent+7)/8 bytes long, so images with
// fewer than 8 bits per component are handled with a one-byte pixel stride.
func applyPNGPredictor(data []byte, params Params) ([]byte, error) {
	columns := getIntParam(params, "Columns", 1)
	colors := getIntParam(params, "Colors", 1)
	bpc := getIntParam(params, "BitsPerComponent", 8)

	rowLength := (columns*colors*bpc + 7) / 8
	if rowLength <= 0 {
		return nil, fmt.Errorf("invalid row length %d", rowLength)
	}
	bytesPerPixel := (colors*bpc + 7) / 8
	rowSize := rowLength + 1 // predictor byte

	if len(data)%rowSize != 0 {
		return nil, fmt.Errorf("data size %d is not a multiple of row size %d", len(data), rowSize)
	}

	numRows := len(data) / rowSize
	result := make([]byte, numRows*rowLength)

	for row := 0; row < numRows; row++ {
		rowStart := row * rowSize
		predictorByte := data[rowStart]
		rowData := data[rowStart+1 : rowStart+rowSize]

		decodedRow, err := decodePNGRow(rowData, predictorByte, bytesPerPixel, row, result, rowLength)
		if err != nil {
			return nil, fmt.Errorf("failed to decode row %d: %w", row, err)
		}
		copy(result[row*rowLength:(row+1)*rowLength], decodedRow)
	}

	return result, nil
}

// decodePNGRow decodes a single PNG-predicted row using the specified predictor.
// Predictor types: 0=None, 1=Sub (left), 2=Up (above), 3=Average, 4=Paeth.
func decodePNGRow(rowData []byte, predictor byte, bytesPerPixel int, rowNum int, prevRows []byte, rowLength int) ([]byte, error) {
	result := make([]byte, len(rowData))

	for i := 0; i < len(rowData); i++ {
		var left, up, upLeft byte
		if i >= bytesPerPixel {
			left = result[i-bytesPerPixel]
		}
		if rowNum > 0 {
			up = prevRows[(rowNum-1)*rowLength+i]
			if i >= bytesPerPixel {
				upLeft = prevRows[(rowNum-1)*rowLength+i-bytesPerPixel]
			}
		}

		var predicted byte
		switch predictor {
		case 0:
		case 1:
			predicted = left
		case 2:
			predicted = up
		case 3:
			predicted = byte((int(left) + int(up)) / 2)
		case 4:
			predicted = paethPredictor(left, up, upLeft)
		default:
			return nil, fmt.Errorf("unknown PNG predictor: %d", predictor)
		}

		result[i] = rowData[i] + predicted
	}

	return result, nil
}

// paethPredictor implements the Paeth predictor algorithm from the PNG specification.
// It selects the neighbor (left, above, or upper-left) closest to a linear prediction.
func paethPredictor(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))

	if pa <= pb && pa <= pc {
		return a
	} else if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
