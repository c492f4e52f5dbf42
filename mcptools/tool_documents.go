package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"textblocks/store"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/redis/go-redis/v9"
)

// RegisterDocumentTools registers the tools to retrieve, search and delete stored documents
func RegisterDocumentTools(mcpServer *server.MCPServer, redisClient *redis.Client, redisIndexName string) {

	getDocumentTool := mcp.NewTool("get_document",
		mcp.WithDescription("Retrieve a stored document by its ID, including its parsed blocks of lines."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("The document ID, e.g. doc:4f9a..."),
		),
	)
	mcpServer.AddTool(getDocumentTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		docID, ok := args["id"].(string)
		if !ok || docID == "" {
			return mcp.NewToolResultError("id parameter is required"), nil
		}

		doc, err := store.GetDocument(ctx, redisClient, docID)
		if err != nil {
			if errors.Is(err, store.ErrDocumentNotFound) {
				return mcp.NewToolResultError(fmt.Sprintf("Document not found: %s", docID)), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get document: %v", err)), nil
		}

		result := map[string]interface{}{
			"success":     true,
			"id":          doc.ID,
			"content":     doc.Content,
			"blocks":      doc.Blocks,
			"label":       doc.Label,
			"metadata":    doc.Metadata,
			"block_count": doc.BlockCount,
			"line_count":  doc.LineCount,
			"created_at":  doc.CreatedAt.Format(time.RFC3339),
		}

		resultJSON, _ := json.Marshal(result)
		return mcp.NewToolResultText(string(resultJSON)), nil
	})

	searchDocumentsTool := mcp.NewTool("search_documents_by_label",
		mcp.WithDescription("Search stored documents by their label."),
		mcp.WithString("label",
			mcp.Required(),
			mcp.Description("The label to search for"),
		),
		mcp.WithString("max_count",
			mcp.Description("Maximum number of documents to return (default 10)"),
		),
	)
	mcpServer.AddTool(searchDocumentsTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		label, ok := args["label"].(string)
		if !ok || label == "" {
			return mcp.NewToolResultError("label parameter is required"), nil
		}

		maxCount := 10
		if maxCountStr, ok := args["max_count"].(string); ok && maxCountStr != "" {
			if parsed, err := strconv.Atoi(maxCountStr); err == nil && parsed > 0 {
				maxCount = parsed
			}
		}

		docs, err := store.SearchDocumentsByLabel(ctx, redisClient, redisIndexName, label, maxCount)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to search documents: %v", err)), nil
		}

		results := []map[string]interface{}{}
		for _, doc := range docs {
			blockCount, _ := strconv.Atoi(doc.Fields["block_count"])
			lineCount, _ := strconv.Atoi(doc.Fields["line_count"])
			results = append(results, map[string]interface{}{
				"id":          doc.ID,
				"content":     doc.Fields["content"],
				"label":       doc.Fields["label"],
				"metadata":    doc.Fields["metadata"],
				"block_count": blockCount,
				"line_count":  lineCount,
				"created_at":  doc.Fields["created_at"],
			})
		}

		result := map[string]interface{}{
			"success": true,
			"count":   len(results),
			"results": results,
		}

		resultJSON, _ := json.Marshal(result)
		return mcp.NewToolResultText(string(resultJSON)), nil
	})

	deleteDocumentTool := mcp.NewTool("delete_document",
		mcp.WithDescription("Delete a stored document by its ID."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("The document ID to delete"),
		),
	)
	mcpServer.AddTool(deleteDocumentTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		docID, ok := args["id"].(string)
		if !ok || docID == "" {
			return mcp.NewToolResultError("id parameter is required"), nil
		}

		removed, err := store.DeleteDocument(ctx, redisClient, docID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to delete document: %v", err)), nil
		}
		if !removed {
			return mcp.NewToolResultError(fmt.Sprintf("Document not found: %s", docID)), nil
		}

		result := map[string]interface{}{
			"success": true,
			"id":      docID,
		}

		resultJSON, _ := json.Marshal(result)
		return mcp.NewToolResultText(string(resultJSON)), nil
	})
}
