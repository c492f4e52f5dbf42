package mcptools

import (
	"context"
	"encoding/json"
	"fmt"

	"textblocks/splitter"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterParseTools registers the parse_lines and aggregate_blocks tools
func RegisterParseTools(mcpServer *server.MCPServer) {
	parseLinesTool := mcp.NewTool("parse_lines",
		mcp.WithDescription("Split a document into blocks and parse every line with a named parser. Supported parsers: text, int, uint, float."),
		mcp.WithString("document",
			mcp.Required(),
			mcp.Description("The document content to split and parse"),
		),
		mcp.WithString("parser",
			mcp.Required(),
			mcp.Description("Line parser to apply to every line"),
		),
		mcp.WithString("delimiter_mode",
			mcp.Description("Block delimiter mode: 'auto' (blank line, default), 'explicit' or 'pattern' (reserved)"),
		),
		mcp.WithString("delimiter_value",
			mcp.Description("Literal block delimiter, required when delimiter_mode is 'explicit'"),
		),
	)
	mcpServer.AddTool(parseLinesTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		document, ok := args["document"].(string)
		if !ok || document == "" {
			return mcp.NewToolResultError("document parameter is required"), nil
		}

		parser, ok := args["parser"].(string)
		if !ok || parser == "" {
			return mcp.NewToolResultError("parser parameter is required"), nil
		}

		if len(document) > GetMaxDocumentBytes() {
			return mcp.NewToolResultError(fmt.Sprintf("document exceeds the maximum size of %d bytes", GetMaxDocumentBytes())), nil
		}

		blocks, err := splitter.ParseLinesWithParser(document, delimiterFromArgs(args), parser)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to parse document: %v", err)), nil
		}

		// Success response
		result := map[string]interface{}{
			"success": true,
			"parser":  parser,
			"blocks":  blocks,
		}

		resultJSON, _ := json.Marshal(result)
		return mcp.NewToolResultText(string(resultJSON)), nil
	})

	aggregateBlocksTool := mcp.NewTool("aggregate_blocks",
		mcp.WithDescription("Split a document into blocks, parse every line with a named parser and reduce each block to a single value with a named reducer. Supported reducers: collect, count, first, last, max, min, range, reverse, sum."),
		mcp.WithString("document",
			mcp.Required(),
			mcp.Description("The document content to split and aggregate"),
		),
		mcp.WithString("parser",
			mcp.Required(),
			mcp.Description("Line parser to apply to every line"),
		),
		mcp.WithString("reducer",
			mcp.Required(),
			mcp.Description("Block reducer to apply to every block"),
		),
		mcp.WithString("delimiter_mode",
			mcp.Description("Block delimiter mode: 'auto' (blank line, default), 'explicit' or 'pattern' (reserved)"),
		),
		mcp.WithString("delimiter_value",
			mcp.Description("Literal block delimiter, required when delimiter_mode is 'explicit'"),
		),
	)
	mcpServer.AddTool(aggregateBlocksTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		document, ok := args["document"].(string)
		if !ok || document == "" {
			return mcp.NewToolResultError("document parameter is required"), nil
		}

		parser, ok := args["parser"].(string)
		if !ok || parser == "" {
			return mcp.NewToolResultError("parser parameter is required"), nil
		}

		reducer, ok := args["reducer"].(string)
		if !ok || reducer == "" {
			return mcp.NewToolResultError("reducer parameter is required"), nil
		}

		if len(document) > GetMaxDocumentBytes() {
			return mcp.NewToolResultError(fmt.Sprintf("document exceeds the maximum size of %d bytes", GetMaxDocumentBytes())), nil
		}

		results, err := splitter.AggregateBlocks(document, delimiterFromArgs(args), parser, reducer)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to aggregate document: %v", err)), nil
		}

		// Success response
		result := map[string]interface{}{
			"success": true,
			"parser":  parser,
			"reducer": reducer,
			"results": results,
		}

		resultJSON, _ := json.Marshal(result)
		return mcp.NewToolResultText(string(resultJSON)), nil
	})
}
