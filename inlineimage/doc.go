// Package inlineimage reads inline images from PDF content streams.
//
// An inline image is embedded directly in a content stream between the BI
// and EI operators:
//
//	BI /W 2 /H 2 /BPC 8 /CS /G ID
//	<sample bytes>
//	EI
//
// The dictionary between BI and ID may use abbreviated keys and values
// (W for Width, /G for /DeviceGray, /Fl for /FlateDecode). Parse expands
// every abbreviation, so the returned dictionary uses canonical names only.
//
// # Reading the Sample Data
//
// When the image has no filter and its color space can be resolved, the
// number of sample bytes follows from the dictionary:
//
//	Height * ((Width * BitsPerComponent * components + 7) / 8)
//
// and exactly that many bytes are read. Otherwise the sample data is
// scanned for a whitespace-delimited EI. Every candidate terminator is
// confirmed by trial-decoding the bytes collected so far with the declared
// filters; a candidate that fails to decode is treated as sample data and
// the scan continues.
//
// # Usage
//
// Parse is called after the BI operator has been consumed. The source
// delivers both tokens and raw bytes from the same position:
//
//	img, err := inlineimage.Parse(src, colorSpaces)
//	if err != nil {
//	    return err
//	}
//	width, _ := img.Dict.GetInt("Width")
//
// The contentstream package implements Source and calls Parse for every BI
// operator it encounters.
//
// # Errors
//
// All errors are returned as *ParseError and wrap one of the Err* values,
// so callers can test them with errors.Is:
//
//	if errors.Is(err, inlineimage.ErrNoEndMarkerFound) {
//	    // skip the rest of the content stream
//	}
package inlineimage
