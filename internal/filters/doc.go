// Package filters provides PDF stream decompression filters.
//
// Every filter is exposed both as a plain function and as a [Handler] in
// the [Registry] returned by [DefaultRegistry]:
//
//	decoded, err := filters.FlateDecode(data, params)
//
//	reg := filters.DefaultRegistry().With(filters.Registry{
//	    "DCTDecode": filters.Passthrough,
//	})
//	decoded, err = reg["LZWDecode"](data, params)
//
// # Supported Filters
//
//   - FlateDecode (zlib) with TIFF and PNG predictors
//   - LZWDecode with EarlyChange and predictors
//   - ASCIIHexDecode and ASCII85Decode
//   - RunLengthDecode
//   - CCITTFaxDecode (Group 3 and Group 4)
//
// DCTDecode and JPXDecode are registered as [Passthrough].
//
// # Decode Parameters
//
// Filters accept a Params map for additional parameters:
//
//	params := filters.Params{
//	    "Predictor": 12,
//	    "Columns":   100,
//	    "Colors":    3,
//	}
package filters
