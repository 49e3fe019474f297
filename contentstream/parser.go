package contentstream

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/tsawler/pdfinline/core"
	"github.com/tsawler/pdfinline/inlineimage"
)

// Operation represents a single content stream operation consisting of an
// operator and its operands. Operands are PDF objects that precede the operator.
//
// An inline image is reported as a single operation with Operator "BI" whose
// only operand is the image as a *core.Stream; see InlineImage.
type Operation struct {
	Operator string        // The operator (e.g., "Tj", "Tm", "q")
	Operands []core.Object // The operands
}

// InlineImage returns the image carried by a BI operation.
func (op Operation) InlineImage() (*core.Stream, bool) {
	if op.Operator != "BI" || len(op.Operands) != 1 {
		return nil, false
	}
	img, ok := op.Operands[0].(*core.Stream)
	return img, ok
}

// Parser parses PDF content streams into a sequence of operations.
// Each operation consists of an operator and its operands.
//
// A Parser is not safe for concurrent use, but distinct Parsers share no
// state and may run in parallel.
type Parser struct {
	data []byte
	pos  int
	ops  []Operation

	// operands holds operands until the next operator
	operands []core.Object

	colorSpaces core.Dict
	imageOpts   inlineimage.Options
}

// NewParser creates a new content stream parser for the given data.
func NewParser(data []byte) *Parser {
	return &Parser{
		data:      data,
		pos:       0,
		ops:       make([]Operation, 0),
		imageOpts: inlineimage.DefaultOptions(),
	}
}

// SetColorSpaces sets the /ColorSpace resource dictionary used to size the
// data of inline images that name a color space resource.
func (p *Parser) SetColorSpaces(colorSpaces core.Dict) {
	p.colorSpaces = colorSpaces
}

// SetInlineImageOptions sets the options used when reading inline images.
func (p *Parser) SetInlineImageOptions(opts inlineimage.Options) {
	p.imageOpts = opts
}

// Parse parses the content stream and returns all operations in order.
func (p *Parser) Parse() ([]Operation, error) {
	for {
		obj, err := p.ReadObject()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		op, ok := obj.(core.Operator)
		if !ok {
			p.operands = append(p.operands, obj)
			continue
		}

		if op == "BI" {
			if err := p.parseInlineImage(p.pos - len(op)); err != nil {
				return nil, err
			}
			continue
		}

		p.emit(string(op))
	}

	return p.ops, nil
}

// emit creates an operation with the current operands, then clears them.
func (p *Parser) emit(operator string) {
	operation := Operation{
		Operator: operator,
		Operands: make([]core.Object, len(p.operands)),
	}
	copy(operation.Operands, p.operands)

	p.ops = append(p.ops, operation)
	p.operands = nil
}

// parseInlineImage reads the image following a BI operator at offset.
func (p *Parser) parseInlineImage(offset int) error {
	img, err := inlineimage.ParseWithOptions(p, p.colorSpaces, p.imageOpts)
	if err != nil {
		return fmt.Errorf("BI at position %d: %w", offset, err)
	}

	p.operands = nil
	p.ops = append(p.ops, Operation{
		Operator: "BI",
		Operands: []core.Object{img},
	})
	return nil
}

// ReadObject returns the next operand or operator in the stream. Operators
// are returned as core.Operator; true, false and null are operands. At the
// end of the stream it returns io.EOF.
//
// If the next byte cannot start any object, it is skipped and an error is
// returned.
func (p *Parser) ReadObject() (core.Object, error) {
	p.skipWhitespace()
	if p.pos >= len(p.data) {
		return nil, io.EOF
	}

	start := p.pos
	c := p.data[p.pos]

	if isLetter(c) || c == '\'' || c == '"' {
		return keywordObject(p.parseKeyword()), nil
	}

	operand, err := p.parseOperand()
	if err != nil {
		if p.pos == start {
			p.pos++
		}
		return nil, fmt.Errorf("at position %d: %w", start, err)
	}
	return operand, nil
}

// ReadByte returns the next raw byte of the stream.
func (p *Parser) ReadByte() (byte, error) {
	if p.pos >= len(p.data) {
		return 0, io.EOF
	}
	c := p.data[p.pos]
	p.pos++
	return c, nil
}

// UnreadByte steps back over the last byte read.
func (p *Parser) UnreadByte() error {
	if p.pos <= 0 {
		return errors.New("contentstream: UnreadByte at start of stream")
	}
	p.pos--
	return nil
}

// parseKeyword reads an operator or keyword. Operators start with a letter
// or quote and may contain digits and '*' after the first byte (d0, f*).
func (p *Parser) parseKeyword() string {
	start := p.pos
	p.pos++
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if isLetter(c) || isDigit(c) || c == '\'' || c == '"' || c == '*' {
			p.pos++
		} else {
			break
		}
	}
	return string(p.data[start:p.pos])
}

// keywordObject converts a keyword to the object it denotes.
func keywordObject(kw string) core.Object {
	switch kw {
	case "true":
		return core.Bool(true)
	case "false":
		return core.Bool(false)
	case "null":
		return core.Null{}
	}
	return core.Operator(kw)
}

// parseOperand parses a single operand, which can be a number, string, name,
// array, dictionary, boolean, or null.
func (p *Parser) parseOperand() (core.Object, error) {
	p.skipWhitespace()

	if p.pos >= len(p.data) {
		return nil, fmt.Errorf("unexpected end of stream")
	}

	c := p.data[p.pos]

	// Number (int or real)
	if c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9') {
		return p.parseNumber()
	}

	// String (literal)
	if c == '(' {
		return p.parseString()
	}

	// Hex string
	if c == '<' && p.pos+1 < len(p.data) && p.data[p.pos+1] != '<' {
		return p.parseHexString()
	}

	// Name
	if c == '/' {
		return p.parseName()
	}

	// Array
	if c == '[' {
		return p.parseArray()
	}

	// Dictionary (rare in content streams, but possible)
	if c == '<' && p.pos+1 < len(p.data) && p.data[p.pos+1] == '<' {
		return p.parseDict()
	}

	// Boolean or null
	if isLetter(c) {
		obj := keywordObject(p.parseKeyword())
		if op, ok := obj.(core.Operator); ok {
			return nil, fmt.Errorf("unexpected operator %q in operand", string(op))
		}
		return obj, nil
	}

	return nil, fmt.Errorf("unexpected character at position %d: %c", p.pos, c)
}

// parseNumber parses an integer or real number operand.
func (p *Parser) parseNumber() (core.Object, error) {
	start := p.pos
	hasDecimal := false

	// Handle sign
	if p.data[p.pos] == '+' || p.data[p.pos] == '-' {
		p.pos++
	}

	// Read digits and decimal point
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c >= '0' && c <= '9' {
			p.pos++
		} else if c == '.' && !hasDecimal {
			hasDecimal = true
			p.pos++
		} else {
			break
		}
	}

	numStr := string(p.data[start:p.pos])

	if hasDecimal {
		val, err := strconv.ParseFloat(numStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid real number %q: %w", numStr, err)
		}
		return core.Real(val), nil
	}

	val, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q: %w", numStr, err)
	}
	return core.Int(val), nil
}

// parseString parses a literal string (...) with escape sequence handling.
func (p *Parser) parseString() (core.Object, error) {
	if p.data[p.pos] != '(' {
		return nil, fmt.Errorf("string must start with '('")
	}
	p.pos++ // skip '('

	var result bytes.Buffer
	depth := 1 // Track parenthesis nesting

	for p.pos < len(p.data) && depth > 0 {
		c := p.data[p.pos]

		if c == '\\' && p.pos+1 < len(p.data) {
			// Escape sequence
			p.pos++
			next := p.data[p.pos]
			switch next {
			case 'n':
				result.WriteByte('\n')
				p.pos++
			case 'r':
				result.WriteByte('\r')
				p.pos++
			case 't':
				result.WriteByte('\t')
				p.pos++
			case 'b':
				result.WriteByte('\b')
				p.pos++
			case 'f':
				result.WriteByte('\f')
				p.pos++
			case '(':
				result.WriteByte('(')
				p.pos++
			case ')':
				result.WriteByte(')')
				p.pos++
			case '\\':
				result.WriteByte('\\')
				p.pos++
			case '\r':
				// Line continuation - skip the newline
				p.pos++
				if p.pos < len(p.data) && p.data[p.pos] == '\n' {
					p.pos++
				}
			case '\n':
				// Line continuation - skip the newline
				p.pos++
			case '0', '1', '2', '3', '4', '5', '6', '7':
				// Octal escape sequence: \ddd (1-3 octal digits)
				octalVal := int(next - '0')
				p.pos++
				// Read up to 2 more octal digits
				for i := 0; i < 2 && p.pos < len(p.data); i++ {
					digit := p.data[p.pos]
					if digit < '0' || digit > '7' {
						break
					}
					octalVal = octalVal*8 + int(digit-'0')
					p.pos++
				}
				// Octal value is mod 256 (single byte)
				result.WriteByte(byte(octalVal & 0xFF))
			default:
				// Unknown escape - keep as-is (PDF spec says ignore the backslash)
				result.WriteByte(next)
				p.pos++
			}
		} else if c == '(' {
			depth++
			result.WriteByte(c)
			p.pos++
		} else if c == ')' {
			depth--
			if depth > 0 {
				result.WriteByte(c)
			}
			p.pos++
		} else {
			result.WriteByte(c)
			p.pos++
		}
	}

	if depth != 0 {
		return nil, fmt.Errorf("unclosed string")
	}

	return core.String(result.String()), nil
}

// parseHexString parses a hexadecimal string <...>.
func (p *Parser) parseHexString() (core.Object, error) {
	if p.data[p.pos] != '<' {
		return nil, fmt.Errorf("hex string must start with '<'")
	}
	p.pos++ // skip '<'

	var result bytes.Buffer
	var hi byte
	haveHi := false

	for p.pos < len(p.data) {
		c := p.data[p.pos]
		p.pos++

		if c == '>' {
			// Odd number of digits - assume trailing 0
			if haveHi {
				result.WriteByte(hi << 4)
			}
			return core.String(result.String()), nil
		}

		if isWhitespace(c) {
			continue
		}

		if !isHexDigit(c) {
			return nil, fmt.Errorf("invalid hex digit: %c", c)
		}

		if !haveHi {
			hi = hexValue(c)
			haveHi = true
			continue
		}
		result.WriteByte(hi<<4 | hexValue(c))
		haveHi = false
	}

	return nil, fmt.Errorf("unclosed hex string")
}

// parseName parses a name object /Name with # escape handling.
func (p *Parser) parseName() (core.Object, error) {
	if p.data[p.pos] != '/' {
		return nil, fmt.Errorf("name must start with '/'")
	}
	p.pos++ // skip '/'

	var result bytes.Buffer

	for p.pos < len(p.data) {
		c := p.data[p.pos]

		// Name ends at whitespace or delimiter
		if isWhitespace(c) || isDelimiter(c) {
			break
		}

		// Handle # escape
		if c == '#' && p.pos+2 < len(p.data) {
			p.pos++
			hex1 := p.data[p.pos]
			hex2 := p.data[p.pos+1]
			if isHexDigit(hex1) && isHexDigit(hex2) {
				result.WriteByte((hexValue(hex1) << 4) | hexValue(hex2))
				p.pos += 2
				continue
			}
			// Invalid escape - keep #
			result.WriteByte('#')
			continue
		}

		result.WriteByte(c)
		p.pos++
	}

	return core.Name(result.String()), nil
}

// parseArray parses an array [...] of operands.
func (p *Parser) parseArray() (core.Object, error) {
	if p.data[p.pos] != '[' {
		return nil, fmt.Errorf("array must start with '['")
	}
	p.pos++ // skip '['

	var arr core.Array

	for {
		p.skipWhitespace()

		if p.pos >= len(p.data) {
			return nil, fmt.Errorf("unclosed array")
		}

		if p.data[p.pos] == ']' {
			p.pos++
			return arr, nil
		}

		obj, err := p.parseOperand()
		if err != nil {
			return nil, err
		}

		arr = append(arr, obj)
	}
}

// parseDict parses a dictionary <<...>> (rare in content streams).
func (p *Parser) parseDict() (core.Object, error) {
	if p.pos+1 >= len(p.data) || p.data[p.pos] != '<' || p.data[p.pos+1] != '<' {
		return nil, fmt.Errorf("dictionary must start with '<<'")
	}
	p.pos += 2 // skip '<<'

	dict := make(core.Dict)

	for {
		p.skipWhitespace()

		if p.pos >= len(p.data) {
			return nil, fmt.Errorf("unclosed dictionary")
		}

		if p.pos+1 < len(p.data) && p.data[p.pos] == '>' && p.data[p.pos+1] == '>' {
			p.pos += 2
			return dict, nil
		}

		// Parse key (must be a name)
		if p.data[p.pos] != '/' {
			return nil, fmt.Errorf("dictionary key must be a name")
		}

		key, err := p.parseName()
		if err != nil {
			return nil, err
		}

		name, ok := key.(core.Name)
		if !ok {
			return nil, fmt.Errorf("expected name for dictionary key")
		}

		// Parse value
		value, err := p.parseOperand()
		if err != nil {
			return nil, err
		}

		dict[string(name)] = value
	}
}

// skipWhitespace advances past PDF whitespace characters and comments.
func (p *Parser) skipWhitespace() {
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c == '%' {
			for p.pos < len(p.data) && p.data[p.pos] != '\r' && p.data[p.pos] != '\n' {
				p.pos++
			}
			continue
		}
		if !isWhitespace(c) {
			return
		}
		p.pos++
	}
}

// Helper functions

// isWhitespace reports whether c is a PDF whitespace character.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0
}

// isLetter reports whether c is an ASCII letter.
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isDelimiter reports whether c is a PDF delimiter character.
func isDelimiter(c byte) bool {
	return c == '(' || c == ')' || c == '<' || c == '>' ||
		c == '[' || c == ']' || c == '{' || c == '}' ||
		c == '/' || c == '%'
}

// isHexDigit reports whether c is a hexadecimal digit.
func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// hexValue returns the numeric value of a hexadecimal digit.
func hexValue(c byte) byte {
	if c >= '0' && c <= '9' {
		return c - '0'
	}
	if c >= 'a' && c <= 'f' {
		return c - 'a' + 10
	}
	if c >= 'A' && c <= 'F' {
		return c - 'A' + 10
	}
	return 0
}
