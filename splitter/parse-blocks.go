package splitter

// BlockParser transforms one block's parsed lines into a single value of type B.
type BlockParser[I, B any] func(lines []I) B

// ParseBlocks splits the document into blocks, applies the line parser to
// every line of a block, and reduces each block's parsed lines to a single
// value with the block parser.
//
// For every block the line parser runs once per line in document order, the
// parsed lines are collected, and the block parser is invoked exactly once on
// the collected slice. The block parser may reduce (sum, max) or re-expand
// (reverse, collect) its input; no shape is imposed on its result. An empty
// document yields an empty result without invoking either parser.
//
// Parameters:
//   - text: The document to split.
//   - delim: The block delimiter configuration; the zero value splits on blank lines.
//   - lineParser: The transformation applied to each line.
//   - blockParser: The transformation applied to each block's parsed lines.
//
// Returns:
//   - []B: One parsed value per block, in document order.
//   - error: A delimiter resolution error, nil otherwise.
func ParseBlocks[I, B any](text string, delim Delimiter, lineParser LineParser[I], blockParser BlockParser[I, B]) ([]B, error) {
	parsed, err := ParseBlockLines(text, delim, lineParser)
	if err != nil {
		return nil, err
	}

	results := make([]B, 0, len(parsed))
	for _, lines := range parsed {
		results = append(results, blockParser(lines))
	}

	return results, nil
}
