package splitter

import (
	"errors"
	"fmt"
	"strconv"
)

// Line parser names accepted by the parsing endpoints and tools.
const (
	ParserText  = "text"
	ParserInt   = "int"
	ParserUint  = "uint"
	ParserFloat = "float"
)

// ErrUnknownLineParser is returned when a line parser name is not in the vocabulary.
var ErrUnknownLineParser = errors.New("unknown line parser")

// LineParserNames returns the supported line parser names in sorted order.
func LineParserNames() []string {
	return []string{ParserFloat, ParserInt, ParserText, ParserUint}
}

// parsedLine carries one line's converted value together with its conversion
// failure, so the generic operations can run with a non-failing parser and
// the failure can be reported with its position afterwards.
type parsedLine struct {
	value any
	err   error
}

// lineConverter returns the conversion function for a named line parser.
func lineConverter(parser string) (func(line string) (any, error), error) {
	switch parser {
	case ParserText:
		return func(line string) (any, error) {
			return line, nil
		}, nil
	case ParserInt:
		return func(line string) (any, error) {
			n, err := strconv.ParseInt(line, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid integer %q", line)
			}
			return n, nil
		}, nil
	case ParserUint:
		return func(line string) (any, error) {
			n, err := strconv.ParseUint(line, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid unsigned integer %q", line)
			}
			return n, nil
		}, nil
	case ParserFloat:
		return func(line string) (any, error) {
			n, err := strconv.ParseFloat(line, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q", line)
			}
			return n, nil
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLineParser, parser)
	}
}

// ParseLinesWithParser splits the document into blocks and converts every
// line with the named line parser ("text", "int", "uint" or "float").
//
// A line the parser cannot convert fails the whole call; the error names the
// block, the line and the offending text. There are no partial results.
func ParseLinesWithParser(text string, delim Delimiter, parser string) ([][]any, error) {
	convert, err := lineConverter(parser)
	if err != nil {
		return nil, err
	}

	parsed, err := ParseBlockLines(text, delim, func(line string) parsedLine {
		value, convErr := convert(line)
		return parsedLine{value: value, err: convErr}
	})
	if err != nil {
		return nil, err
	}

	blocks := make([][]any, 0, len(parsed))
	for b, lines := range parsed {
		values := make([]any, 0, len(lines))
		for l, line := range lines {
			if line.err != nil {
				return nil, fmt.Errorf("block %d, line %d: %w", b+1, l+1, line.err)
			}
			values = append(values, line.value)
		}
		blocks = append(blocks, values)
	}

	return blocks, nil
}
