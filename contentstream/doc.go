// Package contentstream provides parsing of PDF content streams.
//
// Content streams contain the instructions for rendering page content,
// including text display, graphics operations, and image placement.
//
// # Content Stream Operations
//
// PDF content streams consist of operators and their operands:
//
//	parser := contentstream.NewParser(streamData)
//	ops, err := parser.Parse()
//	for _, op := range ops {
//	    fmt.Printf("Operator: %s, Operands: %v\n", op.Operator, op.Operands)
//	}
//
// # Inline Images
//
// An inline image (BI ... ID ... EI) is returned as one operation with
// Operator "BI". Its single operand is the image, with every dictionary
// abbreviation expanded and the sample data still encoded:
//
//	parser.SetColorSpaces(pageColorSpaces)
//	ops, err := parser.Parse()
//	for _, op := range ops {
//	    if img, ok := op.InlineImage(); ok {
//	        data, err := img.Decode()
//	        ...
//	    }
//	}
//
// The ID and EI operators never appear in the result. A malformed inline
// image stops parsing; the error wraps one of the inlineimage Err values.
//
// # Token Access
//
// Parser also implements inlineimage.Source. ReadObject returns the next
// operand or operator, and ReadByte and UnreadByte give raw access to the
// bytes at the same position.
//
// # Operand Types
//
// Operands can be any PDF object type:
//   - Numbers (core.Int, core.Real)
//   - Booleans and null (core.Bool, core.Null)
//   - Strings (core.String)
//   - Names (core.Name)
//   - Arrays (core.Array)
//   - Dictionaries (core.Dict)
package contentstream
