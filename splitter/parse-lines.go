package splitter

// LineParser transforms one line of a block into a value of type T.
type LineParser[T any] func(line string) T

// ParseBlockLines splits the document into blocks of lines and applies the
// line parser to every line, preserving the block and line structure.
//
// The parser is invoked exactly once per line, in document order. Parsers
// that need to signal bad input should return a result type and let the
// caller inspect the preserved structure afterwards; a panicking parser
// aborts the whole call.
//
// Parameters:
//   - text: The document to split.
//   - delim: The block delimiter configuration; the zero value splits on blank lines.
//   - lineParser: The transformation applied to each line.
//
// Returns:
//   - [][]T: One slice of parsed line values per block, in document order.
//   - error: A delimiter resolution error, nil otherwise.
func ParseBlockLines[T any](text string, delim Delimiter, lineParser LineParser[T]) ([][]T, error) {
	blocks, err := SplitIntoBlocks(text, delim)
	if err != nil {
		return nil, err
	}

	parsed := make([][]T, 0, len(blocks))
	for _, block := range blocks {
		values := make([]T, 0, len(block))
		for _, line := range block {
			values = append(values, lineParser(line))
		}
		parsed = append(parsed, values)
	}

	return parsed, nil
}
