package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"textblocks/models"
	"textblocks/store"

	"github.com/redis/go-redis/v9"
)

// GetDocumentHandler handles requests to load a stored document by its ID
func GetDocumentHandler(w http.ResponseWriter, r *http.Request, ctx context.Context, redisClient *redis.Client, indexName string) {
	w.Header().Set("Content-Type", "application/json")

	// Only accept GET requests
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(models.GetDocumentResponse{
			Success: false,
			Error:   "Method not allowed. Use GET",
		})
		return
	}

	docID := r.URL.Query().Get("id")
	if docID == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.GetDocumentResponse{
			Success: false,
			Error:   "Query parameter 'id' is required",
		})
		return
	}

	doc, err := store.GetDocument(ctx, redisClient, docID)
	if err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(models.GetDocumentResponse{
				Success: false,
				Error:   fmt.Sprintf("Document not found: %s", docID),
			})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.GetDocumentResponse{
			Success: false,
			Error:   fmt.Sprintf("Failed to load document: %v", err),
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.GetDocumentResponse{
		ID:         doc.ID,
		Content:    doc.Content,
		Blocks:     doc.Blocks,
		Label:      doc.Label,
		Metadata:   doc.Metadata,
		BlockCount: doc.BlockCount,
		LineCount:  doc.LineCount,
		CreatedAt:  doc.CreatedAt,
		Success:    true,
	})
}

// SearchDocumentsHandler handles requests to find stored documents by label
func SearchDocumentsHandler(w http.ResponseWriter, r *http.Request, ctx context.Context, redisClient *redis.Client, indexName string) {
	w.Header().Set("Content-Type", "application/json")

	// Only accept POST requests
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(models.SearchDocumentsResponse{
			Success: false,
			Error:   "Method not allowed. Use POST",
		})
		return
	}

	// Parse request body
	var req models.SearchDocumentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.SearchDocumentsResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid request body: %v", err),
		})
		return
	}

	// Validate required fields
	if req.Label == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.SearchDocumentsResponse{
			Success: false,
			Error:   "Label is required",
		})
		return
	}

	maxCount := req.MaxCount
	if maxCount <= 0 {
		maxCount = 10
	}

	docs, err := store.SearchDocumentsByLabel(ctx, redisClient, indexName, req.Label, maxCount)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.SearchDocumentsResponse{
			Success: false,
			Error:   fmt.Sprintf("Failed to search documents: %v", err),
		})
		return
	}

	results := make([]models.DocumentResult, 0, len(docs))
	for _, doc := range docs {
		result := models.DocumentResult{
			ID:        doc.ID,
			Content:   doc.Fields["content"],
			Label:     doc.Fields["label"],
			Metadata:  doc.Fields["metadata"],
			CreatedAt: doc.Fields["created_at"],
		}
		result.BlockCount, _ = strconv.Atoi(doc.Fields["block_count"])
		result.LineCount, _ = strconv.Atoi(doc.Fields["line_count"])
		results = append(results, result)
	}

	// Newest documents first
	sort.Slice(results, func(i, j int) bool {
		left, _ := strconv.ParseInt(results[i].CreatedAt, 10, 64)
		right, _ := strconv.ParseInt(results[j].CreatedAt, 10, 64)
		return left > right
	})

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.SearchDocumentsResponse{
		Results: results,
		Success: true,
	})
}

// DeleteDocumentHandler handles requests to delete a stored document
func DeleteDocumentHandler(w http.ResponseWriter, r *http.Request, ctx context.Context, redisClient *redis.Client, indexName string) {
	w.Header().Set("Content-Type", "application/json")

	// Only accept POST requests
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(models.DeleteDocumentResponse{
			Success: false,
			Error:   "Method not allowed. Use POST",
		})
		return
	}

	// Parse request body
	var req models.DeleteDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.DeleteDocumentResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid request body: %v", err),
		})
		return
	}

	// Validate required fields
	if req.ID == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.DeleteDocumentResponse{
			Success: false,
			Error:   "ID is required",
		})
		return
	}

	removed, err := store.DeleteDocument(ctx, redisClient, req.ID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(models.DeleteDocumentResponse{
			Success: false,
			Error:   fmt.Sprintf("Failed to delete document: %v", err),
		})
		return
	}

	if !removed {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(models.DeleteDocumentResponse{
			Success: false,
			Error:   fmt.Sprintf("Document not found: %s", req.ID),
		})
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.DeleteDocumentResponse{
		ID:      req.ID,
		Success: true,
	})
}
