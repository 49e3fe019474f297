package inlineimage

import (
	"github.com/tsawler/pdfinline/core"
	"github.com/tsawler/pdfinline/internal/filters"
)

// unverifiableFilters are image codecs whose output cannot confirm that
// the encoded data is complete. They are replaced by a pass-through when
// checking a candidate terminator.
var unverifiableFilters = filters.Registry{
	"DCTDecode":   filters.Passthrough,
	"JBIG2Decode": filters.Passthrough,
	"JPXDecode":   filters.Passthrough,
}

// bytesAreComplete reports whether data decodes with the filters declared
// in dict. A decode error means the EI just seen belongs to the sample data.
//
// This is a heuristic. A filter without internal framing may decode a
// truncated payload without error.
func bytesAreComplete(data []byte, dict core.Dict) bool {
	_, err := core.DecodeBytes(data, dict, unverifiableFilters)
	return err == nil
}
