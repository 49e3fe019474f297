package inlineimage

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/tsawler/pdfinline/core"
)

// endMarker is the textual form of the operator that ends an inline image.
const endMarker = "EI"

// readUnfiltered reads sample data whose size follows from the dictionary.
// The source must be positioned just after the whitespace byte that
// follows ID.
func readUnfiltered(src Source, dict, colorSpaces core.Dict, opts Options) ([]byte, error) {
	rowBytes, err := bytesPerRow(dict, colorSpaces, opts.MaxColorSpaceDepth)
	if err != nil {
		return nil, err
	}

	height, ok := dict.GetNumber("Height")
	if !ok {
		return nil, newError(opReadSamples, fmt.Errorf("%w: Height", ErrMissingRequiredField))
	}
	if height < 0 {
		return nil, newError(opReadSamples, fmt.Errorf("%w: negative Height %d", ErrMalformedInlineImage, height))
	}
	if height > 0 && rowBytes > math.MaxInt/height {
		return nil, newError(opReadSamples, fmt.Errorf("%w: %d rows of %d bytes", ErrDataTooLarge, height, rowBytes))
	}
	count := rowBytes * height
	if err := checkSize(opReadSamples, count, opts); err != nil {
		return nil, err
	}

	// Some producers omit the whitespace after ID, so a byte that is not
	// whitespace here is already sample data. NUL is data in this position.
	var data []byte
	b, err := src.ReadByte()
	if err != nil {
		return nil, sourceError(opReadSamples, err, ErrTruncatedImageData)
	}
	if b == 0 || !isWhitespace(b) {
		if count == 0 {
			if err := src.UnreadByte(); err != nil {
				return nil, newError(opReadSamples, err)
			}
		} else {
			data = append(data, b)
		}
	}

	data, err = readBytes(src, data, count)
	if err != nil {
		return nil, err
	}
	if err := readEndMarker(src); err != nil {
		return nil, err
	}
	return data, nil
}

// readBytes appends bytes from src to data until it holds count bytes.
func readBytes(src Source, data []byte, count int) ([]byte, error) {
	for len(data) < count {
		b, err := src.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, newError(opReadSamples,
					fmt.Errorf("%w: got %d of %d bytes", ErrTruncatedImageData, len(data), count))
			}
			return nil, newError(opReadSamples, err)
		}
		data = append(data, b)
	}
	return data, nil
}

// readEndMarker consumes the EI operator. One stray token before EI is
// tolerated.
func readEndMarker(src Source) error {
	var last string
	for attempt := 0; attempt < 2; attempt++ {
		tok, err := src.ReadObject()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return newError(opReadEndMarker, fmt.Errorf("%w: end of stream", ErrMissingEndMarker))
			}
			last = err.Error()
			continue
		}
		if tok.String() == endMarker {
			return nil
		}
		last = tok.String()
	}
	return newError(opReadEndMarker, fmt.Errorf("%w: found %q", ErrMissingEndMarker, last))
}

// Scanner states while matching <whitespace>EI<whitespace>.
const (
	scanData = iota
	scanWhitespace
	scanE
	scanEI
)

// scanSamples collects bytes up to the first whitespace-delimited EI for
// which the bytes collected so far decode without error. The source is left
// just after the whitespace that follows EI.
func scanSamples(src Source, dict core.Dict, opts Options) ([]byte, error) {
	var out, pending []byte
	state := scanData

	flush := func(b byte) {
		out = append(out, pending...)
		out = append(out, b)
		pending = pending[:0]
		state = scanData
	}

	for {
		b, err := src.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, newError(opScanSamples,
					fmt.Errorf("%w: scanned %d bytes", ErrNoEndMarkerFound, len(out)+len(pending)))
			}
			return nil, newError(opScanSamples, err)
		}

		switch state {
		case scanData:
			if isWhitespace(b) {
				pending = append(pending, b)
				state = scanWhitespace
			} else {
				out = append(out, b)
			}

		case scanWhitespace:
			switch {
			case b == 'E':
				pending = append(pending, b)
				state = scanE
			case isWhitespace(b):
				out = append(out, pending...)
				pending = append(pending[:0], b)
			default:
				flush(b)
			}

		case scanE:
			if b == 'I' {
				pending = append(pending, b)
				state = scanEI
			} else {
				flush(b)
			}

		case scanEI:
			if isWhitespace(b) && bytesAreComplete(out, dict) {
				return out, nil
			}
			flush(b)
		}

		if err := checkSize(opScanSamples, len(out), opts); err != nil {
			return nil, err
		}
	}
}

// checkSize fails if n exceeds the configured limit.
func checkSize(op string, n int, opts Options) error {
	if opts.MaxDataSize > 0 && n > opts.MaxDataSize {
		return newError(op, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrDataTooLarge, n, opts.MaxDataSize))
	}
	return nil
}
