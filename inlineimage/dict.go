package inlineimage

import (
	"errors"
	"fmt"
	"io"

	"github.com/tsawler/pdfinline/core"
)

// dictionaryEnd is the textual form of the operator that ends the inline
// image dictionary.
const dictionaryEnd = "ID"

// readDictionary reads key/value pairs up to and including ID and the
// single whitespace byte that follows it. Keys and values are expanded to
// their canonical form.
func readDictionary(src Source) (core.Dict, error) {
	dict := make(core.Dict)

	for {
		key, err := src.ReadObject()
		if err != nil {
			return nil, sourceError(opReadDictionary, err, ErrUnexpectedEndOfStream)
		}
		if key.String() == dictionaryEnd {
			break
		}

		value, err := src.ReadObject()
		if err != nil {
			return nil, sourceError(opReadDictionary, err, ErrUnexpectedEndOfStream)
		}

		name, ok := key.(core.Name)
		if !ok {
			return nil, newError(opReadDictionary,
				fmt.Errorf("%w: key %s is a %s, not a name", ErrMalformedInlineImage, key, key.Type()))
		}

		canonical := ExpandKey(name)
		dict[string(canonical)] = ExpandValue(canonical, value)
	}

	b, err := src.ReadByte()
	if err != nil {
		return nil, sourceError(opReadDictionary, err, ErrUnexpectedEndOfStream)
	}
	if !isWhitespace(b) {
		return nil, newByteError(opReadDictionary, b,
			fmt.Errorf("%w: expected whitespace after %s", ErrMalformedInlineImage, dictionaryEnd))
	}

	return dict, nil
}

// sourceError converts a read error from the source. io.EOF becomes
// atEOF; anything else is wrapped as is.
func sourceError(op string, err, atEOF error) *ParseError {
	if errors.Is(err, io.EOF) {
		return newError(op, atEOF)
	}
	return newError(op, err)
}

// isWhitespace reports whether b is a PDF whitespace character.
func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '\f' || b == 0
}
