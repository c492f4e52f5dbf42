package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"textblocks/models"
	"textblocks/splitter"
	"textblocks/store"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SplitAndStoreHandler handles requests to split a document into blocks and
// store the parsed result in Redis
func SplitAndStoreHandler(w http.ResponseWriter, r *http.Request, ctx context.Context, redisClient *redis.Client, indexName string) {
	w.Header().Set("Content-Type", "application/json")

	// Only accept POST requests
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(models.SplitAndStoreResponse{
			Success: false,
			Error:   "Method not allowed. Use POST",
		})
		return
	}

	// Parse request body
	var req models.SplitAndStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.SplitAndStoreResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid request body: %v", err),
		})
		return
	}

	// Validate required fields
	if req.Document == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.SplitAndStoreResponse{
			Success: false,
			Error:   "Document is required",
		})
		return
	}

	if len(req.Document) > GetMaxDocumentBytes() {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.SplitAndStoreResponse{
			Success: false,
			Error:   fmt.Sprintf("Document exceeds the maximum size of %d bytes", GetMaxDocumentBytes()),
		})
		return
	}

	// Split the document into blocks of lines
	blocks, err := splitter.SplitIntoBlocks(req.Document, req.Delimiter)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.SplitAndStoreResponse{
			Success: false,
			Error:   fmt.Sprintf("Failed to split document: %v", err),
		})
		return
	}

	if len(blocks) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.SplitAndStoreResponse{
			Success: false,
			Error:   "No blocks found in the document",
		})
		return
	}

	// Generate unique document ID
	docID := fmt.Sprintf("doc:%s", uuid.New().String())

	// Store the parsed document in Redis
	err = store.StoreDocument(ctx, redisClient, docID, req.Document, blocks, req.Label, req.Metadata)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.SplitAndStoreResponse{
			Success: false,
			Error:   fmt.Sprintf("Failed to store document: %v", err),
		})
		return
	}

	log.Println("🟡 Stored document", docID, "with", len(blocks), "blocks")

	// Success response
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(models.SplitAndStoreResponse{
		ID:         docID,
		BlockCount: len(blocks),
		LineCount:  splitter.CountLines(blocks),
		Label:      req.Label,
		CreatedAt:  time.Now(),
		Success:    true,
	})
}
