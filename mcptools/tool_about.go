package mcptools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterAboutTool registers the about_textblocks tool
func RegisterAboutTool(mcpServer *server.MCPServer) {
	aboutTool := mcp.NewTool("about_textblocks",
		mcp.WithDescription("This tool provides information about the textblocks MCP server."),
	)
	mcpServer.AddTool(aboutTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText("This MCP Server splits block-structured text documents into blocks and lines, parses them, and stores the results in Redis"), nil
	})
}
