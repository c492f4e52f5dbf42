package splitter

import (
	"errors"
	"fmt"
)

// Block reducer names accepted by the aggregation endpoints and tools.
const (
	ReducerCollect = "collect"
	ReducerCount   = "count"
	ReducerFirst   = "first"
	ReducerLast    = "last"
	ReducerReverse = "reverse"
	ReducerSum     = "sum"
	ReducerMin     = "min"
	ReducerMax     = "max"
	ReducerRange   = "range"
)

var (
	// ErrUnknownBlockReducer is returned when a reducer name is not in the vocabulary.
	ErrUnknownBlockReducer = errors.New("unknown block reducer")

	// ErrReducerNeedsNumbers is returned when a numeric reducer is combined
	// with the "text" line parser.
	ErrReducerNeedsNumbers = errors.New("reducer requires a numeric line parser")
)

// BlockReducerNames returns the supported block reducer names in sorted order.
func BlockReducerNames() []string {
	return []string{
		ReducerCollect, ReducerCount, ReducerFirst, ReducerLast,
		ReducerMax, ReducerMin, ReducerRange, ReducerReverse, ReducerSum,
	}
}

// number constrains the value types produced by the numeric line parsers.
type number interface {
	~int64 | ~uint64 | ~float64
}

// AggregateBlocks splits the document into blocks, converts every line with
// the named line parser and reduces each block to a single value with the
// named reducer ("sum", "max", "range", "reverse", ...).
//
// The numeric reducers (sum, min, max, range) require a numeric line parser;
// combining them with "text" fails with ErrReducerNeedsNumbers. A line the
// parser cannot convert fails the whole call with its position, exactly as in
// ParseLinesWithParser.
func AggregateBlocks(text string, delim Delimiter, parser, reducer string) ([]any, error) {
	convert, err := lineConverter(parser)
	if err != nil {
		return nil, err
	}
	reduce, err := blockReducer(parser, reducer)
	if err != nil {
		return nil, err
	}

	blockIndex := 0
	reduced, err := ParseBlocks(text, delim,
		func(line string) parsedLine {
			value, convErr := convert(line)
			return parsedLine{value: value, err: convErr}
		},
		func(lines []parsedLine) parsedLine {
			blockIndex++
			values := make([]any, 0, len(lines))
			for l, line := range lines {
				if line.err != nil {
					return parsedLine{err: fmt.Errorf("block %d, line %d: %w", blockIndex, l+1, line.err)}
				}
				values = append(values, line.value)
			}
			return parsedLine{value: reduce(values)}
		})
	if err != nil {
		return nil, err
	}

	results := make([]any, 0, len(reduced))
	for _, block := range reduced {
		if block.err != nil {
			return nil, block.err
		}
		results = append(results, block.value)
	}

	return results, nil
}

// blockReducer returns the reduction function for a named reducer, specialized
// to the value type the named line parser produces.
func blockReducer(parser, reducer string) (func(values []any) any, error) {
	switch reducer {
	case ReducerCollect:
		return func(values []any) any {
			return values
		}, nil
	case ReducerCount:
		return func(values []any) any {
			return int64(len(values))
		}, nil
	case ReducerFirst:
		return func(values []any) any {
			return values[0]
		}, nil
	case ReducerLast:
		return func(values []any) any {
			return values[len(values)-1]
		}, nil
	case ReducerReverse:
		return func(values []any) any {
			reversed := make([]any, 0, len(values))
			for i := len(values) - 1; i >= 0; i-- {
				reversed = append(reversed, values[i])
			}
			return reversed
		}, nil
	case ReducerSum, ReducerMin, ReducerMax, ReducerRange:
		switch parser {
		case ParserInt:
			return numericReducer[int64](reducer), nil
		case ParserUint:
			return numericReducer[uint64](reducer), nil
		case ParserFloat:
			return numericReducer[float64](reducer), nil
		default:
			return nil, fmt.Errorf("%w: %q", ErrReducerNeedsNumbers, reducer)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBlockReducer, reducer)
	}
}

// numericReducer builds the reduction function for one of the numeric
// reducers over the concrete number type N. Blocks always contain at least
// one line, so the slices handled here are never empty.
func numericReducer[N number](reducer string) func(values []any) any {
	switch reducer {
	case ReducerSum:
		return func(values []any) any {
			var total N
			for _, v := range values {
				total += v.(N)
			}
			return total
		}
	case ReducerMin:
		return func(values []any) any {
			lowest := values[0].(N)
			for _, v := range values[1:] {
				lowest = min(lowest, v.(N))
			}
			return lowest
		}
	case ReducerMax:
		return func(values []any) any {
			highest := values[0].(N)
			for _, v := range values[1:] {
				highest = max(highest, v.(N))
			}
			return highest
		}
	default:
		return func(values []any) any {
			lowest := values[0].(N)
			highest := lowest
			for _, v := range values[1:] {
				lowest = min(lowest, v.(N))
				highest = max(highest, v.(N))
			}
			return highest - lowest
		}
	}
}
