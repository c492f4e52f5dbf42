package splitter

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestLineParserNames(t *testing.T) {
	names := LineParserNames()
	expected := []string{"float", "int", "text", "uint"}
	if !reflect.DeepEqual(names, expected) {
		t.Errorf("Expected parser names %v, got %v", expected, names)
	}
}

func TestParseLinesWithParser(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		delim    Delimiter
		parser   string
		expected [][]any
	}{
		{
			name:     "Text parser keeps lines",
			text:     "abc\ndef\n\nghi",
			parser:   ParserText,
			expected: [][]any{{"abc", "def"}, {"ghi"}},
		},
		{
			name:     "Unsigned integer parser",
			text:     "100\n200\n\n300\n400\n\n500\n600",
			parser:   ParserUint,
			expected: [][]any{{uint64(100), uint64(200)}, {uint64(300), uint64(400)}, {uint64(500), uint64(600)}},
		},
		{
			name:     "Signed integer parser accepts negatives",
			text:     "-5\n10\n\n0",
			parser:   ParserInt,
			expected: [][]any{{int64(-5), int64(10)}, {int64(0)}},
		},
		{
			name:     "Float parser",
			text:     "1.5\n2.25\n\n-0.5",
			parser:   ParserFloat,
			expected: [][]any{{1.5, 2.25}, {-0.5}},
		},
		{
			name:     "Explicit delimiter",
			text:     "1\n2***3\n4",
			delim:    ExplicitDelimiter("***"),
			parser:   ParserInt,
			expected: [][]any{{int64(1), int64(2)}, {int64(3), int64(4)}},
		},
		{
			name:     "Empty document",
			text:     "",
			parser:   ParserInt,
			expected: [][]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseLinesWithParser(tt.text, tt.delim, tt.parser)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if !reflect.DeepEqual(parsed, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, parsed)
			}
		})
	}
}

func TestParseLinesWithParserErrors(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		delim       Delimiter
		parser      string
		expectedErr error
		contains    string
	}{
		{
			name:        "Unknown parser name",
			text:        "1\n2",
			parser:      "roman",
			expectedErr: ErrUnknownLineParser,
		},
		{
			name:     "Bad line reports its position",
			text:     "1\n2\n\nx\n4",
			parser:   ParserInt,
			contains: `block 2, line 1: invalid integer "x"`,
		},
		{
			name:     "Negative number rejected by uint parser",
			text:     "-1",
			parser:   ParserUint,
			contains: `invalid unsigned integer "-1"`,
		},
		{
			name:        "Pattern delimiter fails fast",
			text:        "1\n2",
			delim:       PatternDelimiter(`\s+`),
			parser:      ParserInt,
			expectedErr: ErrPatternDelimiter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseLinesWithParser(tt.text, tt.delim, tt.parser)
			if err == nil {
				t.Fatalf("Expected an error, got %v", parsed)
			}
			if tt.expectedErr != nil && !errors.Is(err, tt.expectedErr) {
				t.Errorf("Expected error %v, got %v", tt.expectedErr, err)
			}
			if tt.contains != "" && !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("Expected error to contain %q, got %q", tt.contains, err.Error())
			}
			if parsed != nil {
				t.Errorf("Expected no result on error, got %v", parsed)
			}
		})
	}
}
