package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcncl/jsonlite/internal/models"
)

// The decoder is a hand-written recursive-descent walker over the document
// text. Every sub-parser takes the full input and a start offset and returns
// the decoded value together with the offset of the LAST character it
// consumed (an inclusive end, not an exclusive one); callers resume scanning
// at end+1. All sub-parsers share this convention.

// ParseError describes a single decoding failure: the character offset where
// the grammar was violated and a short message saying how.
type ParseError struct {
	Offset  int
	Message string

	// input is retained so Error can render the offending line
	input string
}

// Error renders the message, the text line containing the offset, and a
// caret line aligning a '^' under the offset.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at char(%d):\n%s\n%s^",
		e.Message, e.Offset, lineAt(e.input, e.Offset), strings.Repeat(" ", e.Offset))
}

// errorAt is the single error-construction path used by every sub-parser;
// no sub-parser formats its own error text. An empty message selects the
// generic "unexpected token" rendering.
func errorAt(input string, offset int, message string) *ParseError {
	if message == "" {
		message = "unexpected token"
	}
	return &ParseError{Offset: offset, Message: message, input: input}
}

// endOfInput reports that a scan needed a character past the end of the
// document. Always positioned at len(input).
func endOfInput(input string) *ParseError {
	return errorAt(input, len(input), "unexpected end of input")
}

// lineAt returns the text line containing offset (without its newline).
func lineAt(input string, offset int) string {
	if offset > len(input) {
		offset = len(input)
	}
	start := strings.LastIndexByte(input[:offset], '\n') + 1
	if end := strings.IndexByte(input[start:], '\n'); end >= 0 {
		return input[start : start+end]
	}
	return input[start:]
}

// skipWhitespace returns the offset of the first character at or after start
// that is not a space, tab, newline, or carriage return. If the rest of the
// input is whitespace it returns len(input); callers must treat that as
// "input exhausted" before reading a character there.
func skipWhitespace(input string, start int) int {
	for i := start; i < len(input); i++ {
		switch input[i] {
		case ' ', '\t', '\n', '\r':
		default:
			return i
		}
	}
	return len(input)
}

// parseString decodes a string literal starting at the opening quote.
// It works in two steps: first a raw scan that finds the closing quote,
// treating any backslash as "skip two characters" without interpreting the
// escape, then a resolve pass that rewrites the escapes inside the raw span.
// Returns the decoded string and the offset of the closing quote.
func parseString(input string, start int) (string, int, error) {
	if input[start] != '"' {
		return "", 0, errorAt(input, start, "")
	}
	scan := start + 1
	for {
		if scan >= len(input) {
			return "", 0, errorAt(input, len(input), "unterminated string")
		}
		c := input[scan]
		if c == '"' {
			break
		}
		if c == '\\' {
			// skip the introducer and the escaped character together
			scan += 2
		} else {
			scan++
		}
	}
	decoded, err := resolveEscapes(input, start+1, scan)
	if err != nil {
		return "", 0, err
	}
	return decoded, scan, nil
}

// resolveEscapes rewrites the JSON escape sequences in input[start:end],
// which the raw scan has already verified stops before an unescaped quote.
func resolveEscapes(input string, start, end int) (string, error) {
	var b strings.Builder
	i := start
	for i < end {
		c := input[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= end {
			return "", errorAt(input, i, "invalid escape sequence")
		}
		switch input[i+1] {
		case '"', '\\', '/':
			b.WriteByte(input[i+1])
			i += 2
		case 'b':
			b.WriteByte('\b')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'u':
			if i+6 > end {
				return "", errorAt(input, i, "invalid unicode escape")
			}
			code, err := strconv.ParseUint(input[i+2:i+6], 16, 32)
			if err != nil {
				return "", errorAt(input, i, "invalid unicode escape")
			}
			b.WriteRune(rune(code))
			i += 6
		default:
			return "", errorAt(input, i, "invalid escape sequence")
		}
	}
	return b.String(), nil
}

// parseNumber decodes a numeric literal. The grammar is deliberately
// reduced: digits and at most one decimal point, no leading sign and no
// exponent. A decimal point must be immediately followed by a digit.
// Returns int64 when no point appeared, float64 otherwise, and the offset
// of the last digit consumed.
func parseNumber(input string, start int) (models.JSONValue, int, error) {
	if c := input[start]; c < '0' || c > '9' {
		return nil, 0, errorAt(input, start, "invalid number")
	}
	i := start
	sawDot := false
	for i < len(input) {
		c := input[i]
		if c >= '0' && c <= '9' {
			i++
			continue
		}
		if c != '.' {
			break
		}
		if sawDot {
			return nil, 0, errorAt(input, i, "invalid number")
		}
		sawDot = true
		if i+1 >= len(input) || input[i+1] < '0' || input[i+1] > '9' {
			return nil, 0, errorAt(input, i, "invalid number")
		}
		i++
	}
	lexeme := input[start:i]
	if sawDot {
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return nil, 0, errorAt(input, start, "invalid number")
		}
		return f, i - 1, nil
	}
	n, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		// digits only, so this is an int64 overflow
		return nil, 0, errorAt(input, start, "invalid number")
	}
	return n, i - 1, nil
}

// matchKeyword requires the keyword verbatim at start and returns the offset
// of its last character.
func matchKeyword(input string, start int, keyword string) (int, error) {
	end := start + len(keyword)
	if end > len(input) || input[start:end] != keyword {
		return 0, errorAt(input, start, "invalid literal")
	}
	return end - 1, nil
}

func parseTrue(input string, start int) (models.JSONValue, int, error) {
	end, err := matchKeyword(input, start, "true")
	return true, end, err
}

func parseFalse(input string, start int) (models.JSONValue, int, error) {
	end, err := matchKeyword(input, start, "false")
	return false, end, err
}

func parseNull(input string, start int) (models.JSONValue, int, error) {
	end, err := matchKeyword(input, start, "null")
	return nil, end, err
}

// parseObject decodes an object starting at '{'. Each iteration consumes one
// key/value pair; a comma continues the loop and a '}' terminates it. A comma
// whose next significant character is '}' is a trailing comma and rejected.
// Duplicate keys overwrite earlier values. Returns the mapping and the
// offset of the closing brace.
func parseObject(input string, start int) (models.JSONValue, int, error) {
	if input[start] != '{' {
		return nil, 0, errorAt(input, start, "")
	}
	result := models.JSONObject{}
	i := skipWhitespace(input, start+1)
	if i >= len(input) {
		return nil, 0, endOfInput(input)
	}
	if input[i] == '}' {
		return result, i, nil
	}
	for {
		key, keyEnd, err := parseString(input, i)
		if err != nil {
			return nil, 0, err
		}
		colon := skipWhitespace(input, keyEnd+1)
		if colon >= len(input) {
			return nil, 0, endOfInput(input)
		}
		if input[colon] != ':' {
			return nil, 0, errorAt(input, colon, "expected ':' after object key")
		}
		valStart := skipWhitespace(input, colon+1)
		if valStart >= len(input) {
			return nil, 0, endOfInput(input)
		}
		value, valEnd, err := parseValue(input, valStart)
		if err != nil {
			return nil, 0, err
		}
		result[key] = value
		next := skipWhitespace(input, valEnd+1)
		if next >= len(input) {
			return nil, 0, endOfInput(input)
		}
		switch input[next] {
		case ',':
			peek := skipWhitespace(input, next+1)
			if peek >= len(input) {
				return nil, 0, endOfInput(input)
			}
			if input[peek] == '}' {
				return nil, 0, errorAt(input, peek, "trailing comma before '}'")
			}
			i = peek
		case '}':
			return result, next, nil
		default:
			return nil, 0, errorAt(input, next, "expected ',' or '}' in object")
		}
	}
}

// parseArray decodes an array starting at '['. Symmetric to parseObject:
// one dispatched element per iteration, ',' continues, ']' terminates, and
// a comma directly before ']' is a trailing comma. Returns the elements in
// order and the offset of the closing bracket.
func parseArray(input string, start int) (models.JSONValue, int, error) {
	if input[start] != '[' {
		return nil, 0, errorAt(input, start, "")
	}
	result := models.JSONArray{}
	i := skipWhitespace(input, start+1)
	if i >= len(input) {
		return nil, 0, endOfInput(input)
	}
	if input[i] == ']' {
		return result, i, nil
	}
	for {
		value, valEnd, err := parseValue(input, i)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, value)
		next := skipWhitespace(input, valEnd+1)
		if next >= len(input) {
			return nil, 0, endOfInput(input)
		}
		switch input[next] {
		case ',':
			peek := skipWhitespace(input, next+1)
			if peek >= len(input) {
				return nil, 0, endOfInput(input)
			}
			if input[peek] == ']' {
				return nil, 0, errorAt(input, peek, "trailing comma before ']'")
			}
			i = peek
		case ']':
			return result, next, nil
		default:
			return nil, 0, errorAt(input, next, "expected ',' or ']' in array")
		}
	}
}

// parseValue routes to the correct sub-parser from the single lookahead
// character at start, which the caller has already established to be
// non-whitespace and in range. The dispatch is closed: anything that is not
// a structural opener, quote, or literal initial goes to the number parser,
// which does its own validation.
func parseValue(input string, start int) (models.JSONValue, int, error) {
	switch input[start] {
	case '{':
		return parseObject(input, start)
	case '[':
		return parseArray(input, start)
	case '"':
		s, end, err := parseString(input, start)
		if err != nil {
			return nil, 0, err
		}
		return s, end, nil
	case 't':
		return parseTrue(input, start)
	case 'f':
		return parseFalse(input, start)
	case 'n':
		return parseNull(input, start)
	default:
		return parseNumber(input, start)
	}
}

// Decode converts a JSON document into a value tree. The document must be a
// single object or array; anything before or after it other than whitespace
// is an error. On failure the returned error is a *ParseError locating the
// first grammar violation.
func Decode(text string) (models.JSONValue, error) {
	start := skipWhitespace(text, 0)
	if start >= len(text) {
		return nil, errorAt(text, start, "empty input")
	}
	if c := text[start]; c != '{' && c != '[' {
		return nil, errorAt(text, start, "top-level value must be an object or array")
	}
	root, end, err := parseValue(text, start)
	if err != nil {
		return nil, err
	}
	if rest := skipWhitespace(text, end+1); rest < len(text) {
		return nil, errorAt(text, rest, "unexpected trailing content")
	}
	return root, nil
}
