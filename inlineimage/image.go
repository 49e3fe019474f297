package inlineimage

import (
	"io"

	"github.com/tsawler/pdfinline/core"
)

// Source delivers the content stream that follows a BI operator, both as
// tokens and as raw bytes read from the same position.
type Source interface {
	// ReadObject returns the next operand or operator. Operators such as
	// ID and EI are returned in a form whose String method yields the bare
	// keyword. At the end of the stream it returns io.EOF.
	ReadObject() (core.Object, error)

	// ReadByte and UnreadByte give access to the raw bytes after ID.
	io.ByteScanner
}

// Options configures inline image parsing.
type Options struct {
	// MaxDataSize limits the number of sample bytes read for one image.
	// Zero means no limit.
	MaxDataSize int

	// MaxColorSpaceDepth limits how many names in the color space table
	// may be followed when resolving the image's color space. Zero selects
	// the default.
	MaxColorSpaceDepth int
}

// DefaultOptions returns the default parsing options.
func DefaultOptions() Options {
	return Options{
		MaxDataSize:        0,
		MaxColorSpaceDepth: 32,
	}
}

// Parse reads one inline image from src, which must be positioned just
// after the BI operator. colorSpaces is the /ColorSpace resource dictionary
// of the page and may be nil.
//
// On success src is positioned after the EI operator. The returned stream
// holds the dictionary with every abbreviation expanded and the still
// encoded sample data.
func Parse(src Source, colorSpaces core.Dict) (*core.Stream, error) {
	return ParseWithOptions(src, colorSpaces, DefaultOptions())
}

// ParseWithOptions is like Parse but with caller supplied options.
func ParseWithOptions(src Source, colorSpaces core.Dict, opts Options) (*core.Stream, error) {
	if opts.MaxColorSpaceDepth <= 0 {
		opts.MaxColorSpaceDepth = DefaultOptions().MaxColorSpaceDepth
	}

	dict, err := readDictionary(src)
	if err != nil {
		return nil, err
	}

	data, err := readSamples(src, dict, colorSpaces, opts)
	if err != nil {
		return nil, err
	}

	return &core.Stream{Dict: dict, Data: data}, nil
}

// readSamples picks the strategy for reading the sample data.
func readSamples(src Source, dict, colorSpaces core.Dict, opts Options) ([]byte, error) {
	if !dict.Has("Filter") && colorSpaceIsKnown(dict, colorSpaces) {
		return readUnfiltered(src, dict, colorSpaces, opts)
	}
	return scanSamples(src, dict, opts)
}
