package mcptools

import (
	"textblocks/splitter"

	"github.com/mark3labs/mcp-go/server"
	"github.com/redis/go-redis/v9"
)

var maxDocumentBytes = 1048576

func SetMaxDocumentBytes(limit int) {
	maxDocumentBytes = limit
}

func GetMaxDocumentBytes() int {
	return maxDocumentBytes
}

// RegisterTools registers all MCP tools with the server
func RegisterTools(mcpServer *server.MCPServer, redisClient *redis.Client, redisIndexName string) {
	// Register all tools organized by category
	RegisterAboutTool(mcpServer)
	RegisterSplitTools(mcpServer)
	RegisterParseTools(mcpServer)
	RegisterStoreTool(mcpServer, redisClient, redisIndexName)
	RegisterDocumentTools(mcpServer, redisClient, redisIndexName)
}

// delimiterFromArgs builds the delimiter configuration from the optional
// delimiter_mode and delimiter_value tool arguments
func delimiterFromArgs(args map[string]interface{}) splitter.Delimiter {
	mode, _ := args["delimiter_mode"].(string)
	value, _ := args["delimiter_value"].(string)
	return splitter.Delimiter{Mode: splitter.DelimiterMode(mode), Value: value}
}
