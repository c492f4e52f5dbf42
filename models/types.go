package models

import (
	"time"

	"textblocks/splitter"
)

// SplitBlocksRequest represents the request to split a document into blocks
type SplitBlocksRequest struct {
	Document  string             `json:"document"`
	Delimiter splitter.Delimiter `json:"delimiter"`
}

// SplitBlocksResponse represents the response after splitting a document
type SplitBlocksResponse struct {
	Blocks     [][]string `json:"blocks"`
	BlockCount int        `json:"block_count"`
	LineCount  int        `json:"line_count"`
	Success    bool       `json:"success"`
	Error      string     `json:"error,omitempty"`
}

// ParseLinesRequest represents the request to split a document and parse every line
type ParseLinesRequest struct {
	Document  string             `json:"document"`
	Delimiter splitter.Delimiter `json:"delimiter"`
	Parser    string             `json:"parser"`
}

// ParseLinesResponse represents the response after parsing lines
type ParseLinesResponse struct {
	Blocks  [][]any `json:"blocks"`
	Parser  string  `json:"parser"`
	Success bool    `json:"success"`
	Error   string  `json:"error,omitempty"`
}

// AggregateBlocksRequest represents the request to parse and reduce every block
type AggregateBlocksRequest struct {
	Document  string             `json:"document"`
	Delimiter splitter.Delimiter `json:"delimiter"`
	Parser    string             `json:"parser"`
	Reducer   string             `json:"reducer"`
}

// AggregateBlocksResponse represents the response after reducing blocks
type AggregateBlocksResponse struct {
	Results []any  `json:"results"`
	Parser  string `json:"parser"`
	Reducer string `json:"reducer"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// SplitAndStoreRequest represents the request to split a document and store the result
type SplitAndStoreRequest struct {
	Document  string             `json:"document"`
	Delimiter splitter.Delimiter `json:"delimiter"`
	Label     string             `json:"label"`
	Metadata  string             `json:"metadata"`
}

// SplitAndStoreResponse represents the response after storing a split document
type SplitAndStoreResponse struct {
	ID         string    `json:"id"`
	BlockCount int       `json:"block_count"`
	LineCount  int       `json:"line_count"`
	Label      string    `json:"label"`
	CreatedAt  time.Time `json:"created_at"`
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
}

// GetDocumentResponse represents a stored document returned by ID lookup
type GetDocumentResponse struct {
	ID         string     `json:"id"`
	Content    string     `json:"content"`
	Blocks     [][]string `json:"blocks"`
	Label      string     `json:"label"`
	Metadata   string     `json:"metadata"`
	BlockCount int        `json:"block_count"`
	LineCount  int        `json:"line_count"`
	CreatedAt  time.Time  `json:"created_at"`
	Success    bool       `json:"success"`
	Error      string     `json:"error,omitempty"`
}

// SearchDocumentsRequest represents the request to find stored documents by label
type SearchDocumentsRequest struct {
	Label    string `json:"label"`
	MaxCount int    `json:"max_count"`
}

// DocumentResult represents a single search result
type DocumentResult struct {
	ID         string `json:"id"`
	Content    string `json:"content"`
	Label      string `json:"label"`
	Metadata   string `json:"metadata"`
	BlockCount int    `json:"block_count"`
	LineCount  int    `json:"line_count"`
	CreatedAt  string `json:"created_at"`
}

// SearchDocumentsResponse represents the response for a label search
type SearchDocumentsResponse struct {
	Results []DocumentResult `json:"results"`
	Success bool             `json:"success"`
	Error   string           `json:"error,omitempty"`
}

// DeleteDocumentRequest represents the request to delete a stored document
type DeleteDocumentRequest struct {
	ID string `json:"id"`
}

// DeleteDocumentResponse represents the response after deleting a document
type DeleteDocumentResponse struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// SplitterInfoResponse represents the splitter vocabulary and limits
type SplitterInfoResponse struct {
	DefaultMode      string   `json:"default_mode"`
	DelimiterModes   []string `json:"delimiter_modes"`
	LineParsers      []string `json:"line_parsers"`
	BlockReducers    []string `json:"block_reducers"`
	MaxDocumentBytes int      `json:"max_document_bytes"`
	Success          bool     `json:"success"`
	Error            string   `json:"error,omitempty"`
}
