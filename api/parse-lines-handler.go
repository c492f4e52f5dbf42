package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"textblocks/models"
	"textblocks/splitter"
)

// ParseLinesHandler handles requests to split a document and parse every line
// with a named line parser
func ParseLinesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// Only accept POST requests
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(models.ParseLinesResponse{
			Success: false,
			Error:   "Method not allowed. Use POST",
		})
		return
	}

	// Parse request body
	var req models.ParseLinesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ParseLinesResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid request body: %v", err),
		})
		return
	}

	// Validate required fields
	if req.Document == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ParseLinesResponse{
			Success: false,
			Error:   "Document is required",
		})
		return
	}

	if req.Parser == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ParseLinesResponse{
			Success: false,
			Error:   "Parser is required",
		})
		return
	}

	if len(req.Document) > GetMaxDocumentBytes() {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ParseLinesResponse{
			Success: false,
			Error:   fmt.Sprintf("Document exceeds the maximum size of %d bytes", GetMaxDocumentBytes()),
		})
		return
	}

	// Split the document and parse every line
	blocks, err := splitter.ParseLinesWithParser(req.Document, req.Delimiter, req.Parser)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ParseLinesResponse{
			Success: false,
			Error:   fmt.Sprintf("Failed to parse document: %v", err),
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.ParseLinesResponse{
		Blocks:  blocks,
		Parser:  req.Parser,
		Success: true,
	})
}
