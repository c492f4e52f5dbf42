package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"textblocks/models"
	"textblocks/splitter"
)

// AggregateBlocksHandler handles requests to parse a document and reduce every
// block to a single value with a named reducer
func AggregateBlocksHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// Only accept POST requests
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(models.AggregateBlocksResponse{
			Success: false,
			Error:   "Method not allowed. Use POST",
		})
		return
	}

	// Parse request body
	var req models.AggregateBlocksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.AggregateBlocksResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid request body: %v", err),
		})
		return
	}

	// Validate required fields
	if req.Document == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.AggregateBlocksResponse{
			Success: false,
			Error:   "Document is required",
		})
		return
	}

	if req.Parser == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.AggregateBlocksResponse{
			Success: false,
			Error:   "Parser is required",
		})
		return
	}

	if req.Reducer == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.AggregateBlocksResponse{
			Success: false,
			Error:   "Reducer is required",
		})
		return
	}

	if len(req.Document) > GetMaxDocumentBytes() {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.AggregateBlocksResponse{
			Success: false,
			Error:   fmt.Sprintf("Document exceeds the maximum size of %d bytes", GetMaxDocumentBytes()),
		})
		return
	}

	// Parse every block and reduce it to one value
	results, err := splitter.AggregateBlocks(req.Document, req.Delimiter, req.Parser, req.Reducer)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.AggregateBlocksResponse{
			Success: false,
			Error:   fmt.Sprintf("Failed to aggregate document: %v", err),
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.AggregateBlocksResponse{
		Results: results,
		Parser:  req.Parser,
		Reducer: req.Reducer,
		Success: true,
	})
}
