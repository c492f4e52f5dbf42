package splitter

import (
	"errors"
	"fmt"
	"strings"
)

// DelimiterMode identifies the strategy used to locate block boundaries.
type DelimiterMode string

const (
	// DelimiterAuto splits blocks on a blank line: the line delimiter
	// detected from the document, doubled. This is the default mode.
	DelimiterAuto DelimiterMode = "auto"
	// DelimiterExplicit splits blocks on the literal Value substring.
	DelimiterExplicit DelimiterMode = "explicit"
	// DelimiterPattern is reserved for pattern-based delimiters.
	DelimiterPattern DelimiterMode = "pattern"
)

var (
	// ErrPatternDelimiter is returned whenever a pattern delimiter is selected.
	ErrPatternDelimiter = errors.New("pattern delimiters are not implemented")

	// ErrEmptyDelimiter is returned when an explicit delimiter has an empty value.
	ErrEmptyDelimiter = errors.New("explicit delimiter value is empty")

	// ErrUnknownDelimiterMode is returned for delimiter modes this package does not know.
	ErrUnknownDelimiterMode = errors.New("unknown delimiter mode")
)

// Delimiter describes how a document is segmented into blocks.
// The zero value selects the automatic blank-line delimiter.
type Delimiter struct {
	Mode  DelimiterMode `json:"mode,omitempty"`
	Value string        `json:"value,omitempty"`
}

// AutoDelimiter returns the default blank-line delimiter configuration.
func AutoDelimiter() Delimiter {
	return Delimiter{Mode: DelimiterAuto}
}

// ExplicitDelimiter returns a delimiter configuration that splits blocks on
// the given literal substring.
func ExplicitDelimiter(value string) Delimiter {
	return Delimiter{Mode: DelimiterExplicit, Value: value}
}

// PatternDelimiter returns a pattern delimiter configuration. Pattern
// delimiters are not implemented; using one fails with ErrPatternDelimiter.
func PatternDelimiter(expr string) Delimiter {
	return Delimiter{Mode: DelimiterPattern, Value: expr}
}

// Resolve determines the concrete line and block delimiters for the given document.
//
// The line delimiter is "\r\n" when the document contains a carriage return and
// "\n" otherwise, detected once over the whole document and never per block.
// In auto mode the block delimiter is the line delimiter doubled (a blank line);
// in explicit mode it is the configured value verbatim.
//
// Parameters:
//   - text: The document the delimiters will be used on.
//
// Returns:
//   - string: The line delimiter.
//   - string: The block delimiter.
//   - error: ErrPatternDelimiter, ErrEmptyDelimiter or ErrUnknownDelimiterMode
//     when the configuration cannot be resolved.
func (d Delimiter) Resolve(text string) (string, string, error) {
	lineDelim := "\n"
	if strings.ContainsRune(text, '\r') {
		lineDelim = "\r\n"
	}

	switch d.Mode {
	case DelimiterAuto, "":
		return lineDelim, lineDelim + lineDelim, nil
	case DelimiterExplicit:
		if d.Value == "" {
			return "", "", ErrEmptyDelimiter
		}
		return lineDelim, d.Value, nil
	case DelimiterPattern:
		return "", "", ErrPatternDelimiter
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnknownDelimiterMode, string(d.Mode))
	}
}

// SplitIntoBlocks splits the given document into blocks of lines.
//
// The whole document is trimmed of leading and trailing whitespace, split on
// the resolved block delimiter, and each segment is trimmed and split on the
// resolved line delimiter. Block and line order always match document order,
// and interior line whitespace is left untouched.
//
// Parameters:
//   - text: The document to split.
//   - delim: The block delimiter configuration; the zero value splits on blank lines.
//
// Returns:
//   - [][]string: One slice of lines per block. Empty and whitespace-only
//     documents yield zero blocks; a document without the block delimiter
//     yields exactly one block.
//   - error: A delimiter resolution error, nil otherwise.
func SplitIntoBlocks(text string, delim Delimiter) ([][]string, error) {
	lineDelim, blockDelim, err := delim.Resolve(text)
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return [][]string{}, nil
	}

	segments := strings.Split(trimmed, blockDelim)
	blocks := make([][]string, 0, len(segments))
	for _, segment := range segments {
		blocks = append(blocks, strings.Split(strings.TrimSpace(segment), lineDelim))
	}

	return blocks, nil
}

// CountLines returns the total number of lines across all blocks
func CountLines(blocks [][]string) int {
	total := 0
	for _, block := range blocks {
		total += len(block)
	}
	return total
}
