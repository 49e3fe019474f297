package inlineimage

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEndOfStream indicates the source ended inside the
	// inline image dictionary.
	ErrUnexpectedEndOfStream = errors.New("unexpected end of stream")

	// ErrMalformedInlineImage indicates a structural violation, such as a
	// non-name key or a missing whitespace byte after ID.
	ErrMalformedInlineImage = errors.New("malformed inline image")

	// ErrMissingRequiredField indicates Width or Height is absent.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrUnknownColorSpace indicates a color space name that is neither a
	// device color space nor a key of the color space table.
	ErrUnknownColorSpace = errors.New("unknown color space")

	// ErrColorSpaceCycle indicates the color space table refers back to
	// itself deeper than Options.MaxColorSpaceDepth.
	ErrColorSpaceCycle = errors.New("color space cycle")

	// ErrTruncatedImageData indicates the source ended before the
	// computed number of sample bytes was read.
	ErrTruncatedImageData = errors.New("truncated image data")

	// ErrNoEndMarkerFound indicates the source ended before a validated
	// EI was found in filtered sample data.
	ErrNoEndMarkerFound = errors.New("no end marker found")

	// ErrMissingEndMarker indicates the token after the sample data is not EI.
	ErrMissingEndMarker = errors.New("missing end marker")

	// ErrDataTooLarge indicates the sample data exceeds Options.MaxDataSize.
	ErrDataTooLarge = errors.New("image data too large")
)

// ParseError describes a failure to read an inline image.
type ParseError struct {
	Op   string // stage that failed, e.g. "read dictionary"
	Byte int    // offending byte, or -1 if none
	Err  error
}

func (e *ParseError) Error() string {
	if e.Byte >= 0 {
		return fmt.Sprintf("inline image: %s: %v (byte 0x%02X)", e.Op, e.Err, e.Byte)
	}
	return fmt.Sprintf("inline image: %s: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Reading stages reported in ParseError.Op.
const (
	opReadDictionary = "read dictionary"
	opRowSize        = "compute row size"
	opReadSamples    = "read samples"
	opScanSamples    = "scan samples"
	opReadEndMarker  = "read end marker"
)

// newError wraps err with the stage it occurred in.
func newError(op string, err error) *ParseError {
	return &ParseError{Op: op, Byte: -1, Err: err}
}

// newByteError wraps err with the stage and the byte that caused it.
func newByteError(op string, b byte, err error) *ParseError {
	return &ParseError{Op: op, Byte: int(b), Err: err}
}
