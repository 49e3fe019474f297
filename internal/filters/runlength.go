package filters

import (
	"bytes"
	"fmt"
)

// rleEOD is the RunLengthDecode end-of-data marker.
const rleEOD = 128

// RunLengthDecode decodes data in the PackBits-style run-length encoding
// used by PDF. A length byte n in 0..127 copies the next n+1 bytes, n in
// 129..255 repeats the next byte 257-n times and 128 ends the data.
// A run that extends past the end of the input is an error; a missing
// end-of-data marker is tolerated.
func RunLengthDecode(data []byte) ([]byte, error) {
	var result bytes.Buffer

	i := 0
	for i < len(data) {
		n := int(data[i])
		i++

		switch {
		case n == rleEOD:
			return result.Bytes(), nil

		case n < rleEOD:
			end := i + n + 1
			if end > len(data) {
				return nil, fmt.Errorf("run-length literal run of %d bytes truncated at offset %d", n+1, i-1)
			}
			result.Write(data[i:end])
			i = end

		default:
			if i >= len(data) {
				return nil, fmt.Errorf("run-length repeat run truncated at offset %d", i-1)
			}
			result.Write(bytes.Repeat(data[i:i+1], 257-n))
			i++
		}
	}

	return result.Bytes(), nil
}
