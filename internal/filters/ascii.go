package filters

import (
	"bytes"
	"fmt"
)

// ASCIIHexDecode decodes ASCII hexadecimal encoded data.
// Each pair of hexadecimal digits (0-9, A-F, a-f) represents one byte.
// Whitespace is ignored, and > marks end of data. A trailing odd digit is
// treated as if followed by 0.
func ASCIIHexDecode(data []byte) ([]byte, error) {
	var result bytes.Buffer

	var hi byte
	haveHi := false
	for i, c := range data {
		if isWhitespace(c) {
			continue
		}
		if c == '>' {
			break
		}

		v, err := hexDigitToByte(c)
		if err != nil {
			return nil, fmt.Errorf("at offset %d: %w", i, err)
		}
		if !haveHi {
			hi = v
			haveHi = true
			continue
		}
		result.WriteByte(hi<<4 | v)
		haveHi = false
	}

	if haveHi {
		result.WriteByte(hi << 4)
	}
	return result.Bytes(), nil
}

// ASCII85Decode decodes ASCII base-85 (Ascii85) encoded data.
// Each group of 5 ASCII characters (! to u, values 33-117) represents 4 bytes.
// The special character 'z' represents four zero bytes. The sequence ~> marks
// end of data; an optional leading <~ is skipped.
func ASCII85Decode(data []byte) ([]byte, error) {
	data = bytes.TrimLeft(data, " \t\r\n\f\x00")
	data = bytes.TrimPrefix(data, []byte("<~"))

	var result bytes.Buffer
	var group [5]byte
	n := 0

	flush := func(count int) {
		for j := count; j < 5; j++ {
			group[j] = 84 // pad with 'u'
		}
		var value uint32
		for _, d := range group {
			value = value*85 + uint32(d)
		}
		for j := 0; j < count-1; j++ {
			result.WriteByte(byte(value >> (24 - j*8)))
		}
	}

	for i := 0; i < len(data); i++ {
		c := data[i]
		switch {
		case isWhitespace(c):
			continue
		case c == '~':
			if i+1 < len(data) && data[i+1] == '>' {
				i = len(data)
				continue
			}
			return nil, fmt.Errorf("invalid ASCII85 character: %c", c)
		case c == 'z' && n == 0:
			result.Write([]byte{0, 0, 0, 0})
			continue
		case c < '!' || c > 'u':
			return nil, fmt.Errorf("invalid ASCII85 character: %c", c)
		}

		group[n] = c - '!'
		n++
		if n == 5 {
			flush(5)
			n = 0
		}
	}

	switch n {
	case 0:
	case 1:
		return nil, fmt.Errorf("invalid ASCII85 final group of one character")
	default:
		flush(n)
	}

	return result.Bytes(), nil
}

// hexDigitToByte converts a hexadecimal character to its numeric value (0-15).
func hexDigitToByte(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex digit: %c", c)
	}
}

// isWhitespace reports whether c is a PDF whitespace character.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0
}
