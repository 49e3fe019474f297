package inlineimage

import (
	"fmt"
	"io"
	"strconv"

	"github.com/tsawler/pdfinline/core"
)

// testSource is a minimal content stream tokenizer over a byte slice.
type testSource struct {
	data []byte
	pos  int
}

func newTestSource(s string) *testSource {
	return &testSource{data: []byte(s)}
}

func (s *testSource) ReadByte() (byte, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}
	b := s.data[s.pos]
	s.pos++
	return b, nil
}

func (s *testSource) UnreadByte() error {
	if s.pos == 0 {
		return fmt.Errorf("nothing to unread")
	}
	s.pos--
	return nil
}

// rest returns the unread part of the stream.
func (s *testSource) rest() string {
	return string(s.data[s.pos:])
}

func (s *testSource) ReadObject() (core.Object, error) {
	for s.pos < len(s.data) && isWhitespace(s.data[s.pos]) {
		s.pos++
	}
	if s.pos >= len(s.data) {
		return nil, io.EOF
	}

	c := s.data[s.pos]
	switch {
	case c == '/':
		s.pos++
		return core.Name(s.readRegular()), nil
	case c == '[':
		s.pos++
		var arr core.Array
		for {
			for s.pos < len(s.data) && isWhitespace(s.data[s.pos]) {
				s.pos++
			}
			if s.pos >= len(s.data) {
				return nil, io.EOF
			}
			if s.data[s.pos] == ']' {
				s.pos++
				return arr, nil
			}
			obj, err := s.ReadObject()
			if err != nil {
				return nil, err
			}
			arr = append(arr, obj)
		}
	case c == '<':
		s.pos++
		var hex []byte
		for s.pos < len(s.data) && s.data[s.pos] != '>' {
			hex = append(hex, s.data[s.pos])
			s.pos++
		}
		s.pos++
		var out []byte
		for i := 0; i+1 < len(hex); i += 2 {
			v, err := strconv.ParseUint(string(hex[i:i+2]), 16, 8)
			if err != nil {
				return nil, err
			}
			out = append(out, byte(v))
		}
		return core.String(out), nil
	case c == '-' || c == '.' || (c >= '0' && c <= '9'):
		tok := s.readRegular()
		if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
			return core.Int(i), nil
		}
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, err
		}
		return core.Real(f), nil
	case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
		start := s.pos
		for s.pos < len(s.data) {
			c := s.data[s.pos]
			if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
				break
			}
			s.pos++
		}
		switch kw := string(s.data[start:s.pos]); kw {
		case "true":
			return core.Bool(true), nil
		case "false":
			return core.Bool(false), nil
		default:
			return core.Operator(kw), nil
		}
	}

	s.pos++
	return nil, fmt.Errorf("unexpected byte 0x%02X", c)
}

func (s *testSource) readRegular() string {
	start := s.pos
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if isWhitespace(c) || c == '/' || c == '[' || c == ']' || c == '<' || c == '>' {
			break
		}
		s.pos++
	}
	return string(s.data[start:s.pos])
}
