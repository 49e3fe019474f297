package filters

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hhrutter/lzw"
)

// LZWDecode decompresses LZW encoded data. The EarlyChange parameter
// (default 1) selects whether the code width grows one code early, as most
// PDF producers do. Predictors are applied as for FlateDecode.
func LZWDecode(data []byte, params Params) ([]byte, error) {
	earlyChange := getIntParam(params, "EarlyChange", 1)

	rc := lzw.NewReader(bytes.NewReader(data), earlyChange == 1)
	defer rc.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rc); err != nil {
		return nil, fmt.Errorf("lzw decompression failed: %w", err)
	}

	decompressed, err := applyPredictorParams(buf.Bytes(), params)
	if err != nil {
		return nil, fmt.Errorf("predictor failed: %w", err)
	}
	return decompressed, nil
}
