// Package core provides the PDF object types shared by the other packages
// and the filter chain used to decode stream data.
//
// # Object Types
//
// PDF defines eight basic object types, all implemented as types satisfying the
// Object interface:
//
//   - [Null] - represents the PDF null object
//   - [Bool] - represents PDF boolean values (true/false)
//   - [Int] - represents PDF integers
//   - [Real] - represents PDF real numbers (floating point)
//   - [String] - represents PDF string objects (literal or hexadecimal)
//   - [Name] - represents PDF name objects (e.g., /Type, /Font)
//   - [Array] - represents PDF arrays
//   - [Dict] - represents PDF dictionaries
//
// [Operator] represents a content stream operator such as Tj or EI, and
// [Stream] pairs a dictionary with its (possibly encoded) data. Inline
// images are returned as streams.
//
// # Decoding
//
// [DecodeBytes] applies the Filter and DecodeParms entries of a dictionary
// to a byte slice. Handlers for individual filters can be replaced per call:
//
//	data, err := core.DecodeBytes(raw, dict, filters.Registry{
//	    "DCTDecode": filters.Passthrough,
//	})
//
// [Stream.Decode] decodes a stream with the default handlers.
package core
