package mcptools

import (
	"context"
	"encoding/json"
	"fmt"

	"textblocks/splitter"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterSplitTools registers the split_blocks and get_splitter_info tools
func RegisterSplitTools(mcpServer *server.MCPServer) {
	splitBlocksTool := mcp.NewTool("split_blocks",
		mcp.WithDescription("Split a document into blocks of lines. Blocks are separated by a blank line by default, or by an explicit delimiter."),
		mcp.WithString("document",
			mcp.Required(),
			mcp.Description("The document content to split"),
		),
		mcp.WithString("delimiter_mode",
			mcp.Description("Block delimiter mode: 'auto' (blank line, default), 'explicit' or 'pattern' (reserved)"),
		),
		mcp.WithString("delimiter_value",
			mcp.Description("Literal block delimiter, required when delimiter_mode is 'explicit'"),
		),
	)
	mcpServer.AddTool(splitBlocksTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		document, ok := args["document"].(string)
		if !ok || document == "" {
			return mcp.NewToolResultError("document parameter is required"), nil
		}

		if len(document) > GetMaxDocumentBytes() {
			return mcp.NewToolResultError(fmt.Sprintf("document exceeds the maximum size of %d bytes", GetMaxDocumentBytes())), nil
		}

		blocks, err := splitter.SplitIntoBlocks(document, delimiterFromArgs(args))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to split document: %v", err)), nil
		}

		// Success response
		result := map[string]interface{}{
			"success":     true,
			"blocks":      blocks,
			"block_count": len(blocks),
			"line_count":  splitter.CountLines(blocks),
		}

		resultJSON, _ := json.Marshal(result)
		return mcp.NewToolResultText(string(resultJSON)), nil
	})

	splitterInfoTool := mcp.NewTool("get_splitter_info",
		mcp.WithDescription("Get the delimiter modes, line parsers, block reducers and document size limit supported by this server."),
	)
	mcpServer.AddTool(splitterInfoTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := map[string]interface{}{
			"success":      true,
			"default_mode": string(splitter.DelimiterAuto),
			"delimiter_modes": []string{
				string(splitter.DelimiterAuto),
				string(splitter.DelimiterExplicit),
				string(splitter.DelimiterPattern),
			},
			"line_parsers":       splitter.LineParserNames(),
			"block_reducers":     splitter.BlockReducerNames(),
			"max_document_bytes": GetMaxDocumentBytes(),
		}

		resultJSON, _ := json.Marshal(result)
		return mcp.NewToolResultText(string(resultJSON)), nil
	})
}
