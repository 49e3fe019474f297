package filters

import (
	"bytes"
	"testing"

	"github.com/hhrutter/lzw"
)

func lzwCompress(t *testing.T, data []byte, earlyChange bool) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := lzw.NewWriter(&buf, earlyChange)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("lzw write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("lzw close: %v", err)
	}
	return buf.Bytes()
}

// TestLZWDecode tests LZW decompression with both EarlyChange settings
func TestLZWDecode(t *testing.T) {
	original := bytes.Repeat([]byte("-----A---B"), 50)

	tests := []struct {
		name        string
		earlyChange bool
		params      Params
	}{
		{"default early change", true, nil},
		{"explicit early change", true, Params{"EarlyChange": 1}},
		{"no early change", false, Params{"EarlyChange": 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LZWDecode(lzwCompress(t, original, tt.earlyChange), tt.params)
			if err != nil {
				t.Fatalf("LZWDecode failed: %v", err)
			}
			if !bytes.Equal(got, original) {
				t.Errorf("decoded %d bytes, want %d", len(got), len(original))
			}
		})
	}
}

// TestLZWDecodeWithPredictor tests that predictors are undone after LZW
func TestLZWDecodeWithPredictor(t *testing.T) {
	encoded := lzwCompress(t, []byte{0, 1, 2, 3, 2, 1, 1, 1}, true)

	got, err := LZWDecode(encoded, Params{"Predictor": 12, "Columns": 3})
	if err != nil {
		t.Fatalf("LZWDecode failed: %v", err)
	}
	want := []byte{1, 2, 3, 2, 3, 4}
	if !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
