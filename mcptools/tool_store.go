package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"textblocks/splitter"
	"textblocks/store"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/redis/go-redis/v9"
)

// RegisterStoreTool registers the split_and_store_document tool
func RegisterStoreTool(mcpServer *server.MCPServer, redisClient *redis.Client, redisIndexName string) {
	splitAndStoreTool := mcp.NewTool("split_and_store_document",
		mcp.WithDescription("Split a document into blocks of lines and store the parsed result in Redis with optional label and metadata."),
		mcp.WithString("document",
			mcp.Required(),
			mcp.Description("The document content to split and store"),
		),
		mcp.WithString("label",
			mcp.Description("Optional label/tag for the document"),
		),
		mcp.WithString("metadata",
			mcp.Description("Optional metadata for the document"),
		),
		mcp.WithString("delimiter_mode",
			mcp.Description("Block delimiter mode: 'auto' (blank line, default), 'explicit' or 'pattern' (reserved)"),
		),
		mcp.WithString("delimiter_value",
			mcp.Description("Literal block delimiter, required when delimiter_mode is 'explicit'"),
		),
	)
	mcpServer.AddTool(splitAndStoreTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		document, ok := args["document"].(string)
		if !ok || document == "" {
			return mcp.NewToolResultError("document parameter is required"), nil
		}

		label, _ := args["label"].(string)
		metadata, _ := args["metadata"].(string)

		if len(document) > GetMaxDocumentBytes() {
			return mcp.NewToolResultError(fmt.Sprintf("document exceeds the maximum size of %d bytes", GetMaxDocumentBytes())), nil
		}

		blocks, err := splitter.SplitIntoBlocks(document, delimiterFromArgs(args))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to split document: %v", err)), nil
		}

		if len(blocks) == 0 {
			return mcp.NewToolResultError("No blocks found in the document"), nil
		}

		// Generate unique document ID
		docID := fmt.Sprintf("doc:%s", uuid.New().String())

		// Store the parsed document in Redis
		err = store.StoreDocument(ctx, redisClient, docID, document, blocks, label, metadata)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to store document: %v", err)), nil
		}

		log.Println("🟡 Stored document", docID, "with", len(blocks), "blocks")

		// Success response
		result := map[string]interface{}{
			"success":     true,
			"id":          docID,
			"block_count": len(blocks),
			"line_count":  splitter.CountLines(blocks),
			"label":       label,
			"metadata":    metadata,
			"created_at":  time.Now().Format(time.RFC3339),
		}

		resultJSON, _ := json.Marshal(result)
		return mcp.NewToolResultText(string(resultJSON)), nil
	})
}
