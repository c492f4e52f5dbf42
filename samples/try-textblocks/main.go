package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const TEXTBLOCKS_API = "http://localhost:8080"

// SplitRequest represents the request to split a document into blocks
type SplitRequest struct {
	Document string `json:"document"`
}

// SplitResponse represents the split result
type SplitResponse struct {
	Blocks     [][]string `json:"blocks"`
	BlockCount int        `json:"block_count"`
	LineCount  int        `json:"line_count"`
	Success    bool       `json:"success"`
}

// AggregateRequest represents the request to parse and reduce every block
type AggregateRequest struct {
	Document string `json:"document"`
	Parser   string `json:"parser"`
	Reducer  string `json:"reducer"`
}

// AggregateResponse represents the aggregation result
type AggregateResponse struct {
	Results []float64 `json:"results"`
	Parser  string    `json:"parser"`
	Reducer string    `json:"reducer"`
	Success bool      `json:"success"`
}

// StoreRequest represents the request to split and store a document
type StoreRequest struct {
	Document string `json:"document"`
	Label    string `json:"label,omitempty"`
	Metadata string `json:"metadata,omitempty"`
}

// StoreResponse represents the store result
type StoreResponse struct {
	ID         string `json:"id"`
	BlockCount int    `json:"block_count"`
	LineCount  int    `json:"line_count"`
	Label      string `json:"label"`
	CreatedAt  string `json:"created_at"`
	Success    bool   `json:"success"`
}

// SearchRequest represents the search request
type SearchRequest struct {
	Label    string `json:"label"`
	MaxCount int    `json:"max_count,omitempty"`
}

// SearchResult represents a search result
type SearchResult struct {
	ID         string `json:"id"`
	Content    string `json:"content"`
	Label      string `json:"label"`
	BlockCount int    `json:"block_count"`
	LineCount  int    `json:"line_count"`
}

// SearchResponse represents the search response
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Success bool           `json:"success"`
}

// SplitDocument splits a document into blocks of lines
func SplitDocument(document string) (*SplitResponse, error) {
	reqBody := SplitRequest{
		Document: document,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling error: %w", err)
	}

	resp, err := http.Post(TEXTBLOCKS_API+"/split", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("response reading error: %w", err)
	}

	var result SplitResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshaling error: %w", err)
	}

	return &result, nil
}

// AggregateDocument parses every line and reduces every block of a document
func AggregateDocument(document, parser, reducer string) (*AggregateResponse, error) {
	reqBody := AggregateRequest{
		Document: document,
		Parser:   parser,
		Reducer:  reducer,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling error: %w", err)
	}

	resp, err := http.Post(TEXTBLOCKS_API+"/aggregate", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("response reading error: %w", err)
	}

	var result AggregateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshaling error: %w", err)
	}

	return &result, nil
}

// StoreDocument splits a document and stores the result in TextBlocks
func StoreDocument(document, label, metadata string) (*StoreResponse, error) {
	reqBody := StoreRequest{
		Document: document,
		Label:    label,
		Metadata: metadata,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling error: %w", err)
	}

	resp, err := http.Post(TEXTBLOCKS_API+"/documents", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("response reading error: %w", err)
	}

	var result StoreResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshaling error: %w", err)
	}

	return &result, nil
}

// SearchByLabel searches for stored documents with a label
func SearchByLabel(label string, maxCount int) (*SearchResponse, error) {
	reqBody := SearchRequest{
		Label:    label,
		MaxCount: maxCount,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling error: %w", err)
	}

	resp, err := http.Post(TEXTBLOCKS_API+"/documents/search", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("response reading error: %w", err)
	}

	var result SearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshaling error: %w", err)
	}

	return &result, nil
}

func main() {

	creatures := `Orc
savage humanoid
dense forests

Dragon
ancient creature
mountain peaks

Goblin
cunning trickster
murky ponds

Kraken
sea monster
ocean trenches`

	scores := `100
200
300

400
500

600`

	// Split the document into blocks
	fmt.Println("Splitting the bestiary...")
	splitResult, err := SplitDocument(creatures)
	if err != nil {
		fmt.Printf("Error when splitting: %v\n", err)
		return
	}
	fmt.Printf("Found %d blocks and %d lines\n", splitResult.BlockCount, splitResult.LineCount)
	for i, block := range splitResult.Blocks {
		fmt.Printf("  %d. %s\n", i+1, strings.Join(block, " / "))
	}

	// Sum the scores of every block
	fmt.Println("\n\nSumming the scores of every block...")
	aggregateResult, err := AggregateDocument(scores, "uint", "sum")
	if err != nil {
		fmt.Printf("Error when aggregating: %v\n", err)
		return
	}
	fmt.Printf("Sums: %v\n", aggregateResult.Results)

	// Store the document
	fmt.Println("\n\nStoring the bestiary...")
	storeResult, err := StoreDocument(creatures, "fantasy-creatures", "")
	if err != nil {
		fmt.Printf("Error when storing: %v\n", err)
		return
	}
	fmt.Printf("Document stored: ID=%s, Success=%v\n", storeResult.ID, storeResult.Success)

	// Search for stored documents by label
	fmt.Println("\n\nSearch for stored documents...")
	searchResult, err := SearchByLabel("fantasy-creatures", 5)
	if err != nil {
		fmt.Printf("Error search: %v\n", err)
		return
	}

	fmt.Printf("Found: %d\n", len(searchResult.Results))

	for i, result := range searchResult.Results {
		fmt.Printf("  %d. ID: %s\n", i+1, result.ID)
		fmt.Printf("     Blocks: %d, Lines: %d\n", result.BlockCount, result.LineCount)
		fmt.Printf("     Content: %s...\n", result.Content[:min(50, len(result.Content))])
		fmt.Println(strings.Repeat("-", 50))
	}
}
