package filters

import (
	"bytes"
	"testing"
)

// TestASCIIHexDecode tests hex decoding, including whitespace and odd digits
func TestASCIIHexDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{"basic", "48656C6C6F>", []byte("Hello")},
		{"whitespace", "48 65\n6C\t6C 6F>", []byte("Hello")},
		{"lowercase", "48656c6c6f>", []byte("Hello")},
		{"odd digits", "48656C6C6>", []byte("Hell`")},
		{"no EOD", "48656C6C6F", []byte("Hello")},
		{"data after EOD ignored", "4865>zz", []byte("He")},
		{"empty", ">", []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ASCIIHexDecode([]byte(tt.input))
			if err != nil {
				t.Fatalf("ASCIIHexDecode failed: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// TestASCIIHexDecodeInvalidChar tests that non-hex characters are rejected
func TestASCIIHexDecodeInvalidChar(t *testing.T) {
	for _, input := range []string{"48GG>", "4865\nEI", "4X"} {
		if _, err := ASCIIHexDecode([]byte(input)); err == nil {
			t.Errorf("ASCIIHexDecode(%q) should fail", input)
		}
	}
}

// TestASCII85Decode tests base-85 decoding
func TestASCII85Decode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{"partial group", "87cURDZ~>", []byte("Hello")},
		{"multiple groups", "87cURD_*#4DfTZ)~>", []byte("Hello, World")},
		{"zero group", "z@:B~>", []byte{0, 0, 0, 0, 'a', 'b'}},
		{"whitespace", "87cU\nRDZ ~>", []byte("Hello")},
		{"leading marker", "<~87cURDZ~>", []byte("Hello")},
		{"no EOD", "87cURDZ", []byte("Hello")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ASCII85Decode([]byte(tt.input))
			if err != nil {
				t.Fatalf("ASCII85Decode failed: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// TestASCII85DecodeInvalid tests malformed base-85 input
func TestASCII85DecodeInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"character out of range", "87cU{RDZ~>"},
		{"single trailing character", "87cURD_*#4D~>"},
		{"tilde without bracket", "87cU~RDZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ASCII85Decode([]byte(tt.input)); err == nil {
				t.Errorf("ASCII85Decode(%q) should fail", tt.input)
			}
		})
	}
}

// TestHexDigitToByte tests hex digit conversion
func TestHexDigitToByte(t *testing.T) {
	for c, want := range map[byte]byte{'0': 0, '9': 9, 'a': 10, 'F': 15} {
		got, err := hexDigitToByte(c)
		if err != nil || got != want {
			t.Errorf("hexDigitToByte(%q) = %d, %v; want %d", c, got, err, want)
		}
	}
	if _, err := hexDigitToByte('g'); err == nil {
		t.Error("hexDigitToByte('g') should fail")
	}
}
