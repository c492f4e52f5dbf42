package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"textblocks/models"
	"textblocks/splitter"
)

// SplitBlocksHandler handles requests to split a document into blocks of lines
func SplitBlocksHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// Only accept POST requests
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(models.SplitBlocksResponse{
			Success: false,
			Error:   "Method not allowed. Use POST",
		})
		return
	}

	// Parse request body
	var req models.SplitBlocksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.SplitBlocksResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid request body: %v", err),
		})
		return
	}

	// Validate required fields
	if req.Document == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.SplitBlocksResponse{
			Success: false,
			Error:   "Document is required",
		})
		return
	}

	if len(req.Document) > GetMaxDocumentBytes() {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.SplitBlocksResponse{
			Success: false,
			Error:   fmt.Sprintf("Document exceeds the maximum size of %d bytes", GetMaxDocumentBytes()),
		})
		return
	}

	// Split the document into blocks of lines
	blocks, err := splitter.SplitIntoBlocks(req.Document, req.Delimiter)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.SplitBlocksResponse{
			Success: false,
			Error:   fmt.Sprintf("Failed to split document: %v", err),
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.SplitBlocksResponse{
		Blocks:     blocks,
		BlockCount: len(blocks),
		LineCount:  splitter.CountLines(blocks),
		Success:    true,
	})
}
