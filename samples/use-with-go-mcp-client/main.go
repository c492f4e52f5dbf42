package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"
)

type StoreResult struct {
	ID         string `json:"id"`
	BlockCount int    `json:"block_count"`
	LineCount  int    `json:"line_count"`
	Success    bool   `json:"success"`
}

type AggregateResult struct {
	Results []float64 `json:"results"`
	Success bool      `json:"success"`
}

type SearchResult struct {
	ID         string `json:"id"`
	Content    string `json:"content"`
	Label      string `json:"label"`
	BlockCount int    `json:"block_count"`
	LineCount  int    `json:"line_count"`
}

type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Count   int            `json:"count"`
	Success bool           `json:"success"`
}

var documents = []string{
	`Orc
savage humanoid
prominent tusks

dense forests
pack hunters`,

	`Dragon
ancient creature
massive wings

mountain peaks
treasure hoards`,

	`Goblin
cunning trickster
pointed ears

murky ponds
hidden tunnels`,

	`Kraken
sea monster
crushing tentacles

ocean trenches
devastating whirlpools`,
}

var scores = `100
200
300

400
500

600`

func main() {

	ctx := context.Background()

	// MCP client initialization
	fmt.Println("🚀 Initializing MCP StreamableHTTP client...")
	// Create HTTP transport
	httpURL := "http://localhost:9090/mcp"
	httpTransport, err := transport.NewStreamableHTTP(httpURL)
	if err != nil {
		log.Fatalf("Failed to create HTTP transport: %v", err)
	}
	// Create client with the transport
	mcpClient := client.NewClient(httpTransport)
	// Start the client
	if err := mcpClient.Start(ctx); err != nil {
		log.Fatalf("Failed to start client: %v", err)
	}

	initRequest := mcp.InitializeRequest{}
	initRequest.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initRequest.Params.ClientInfo = mcp.Implementation{
		Name:    "MCP-Go Simple Client Example",
		Version: "1.0.0",
	}
	initRequest.Params.Capabilities = mcp.ClientCapabilities{}

	_, err = mcpClient.Initialize(ctx, initRequest)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	// Tools listing
	toolsRequest := mcp.ListToolsRequest{}
	// Get the list of tools
	toolsResult, err := mcpClient.ListTools(ctx, toolsRequest)
	if err != nil {
		log.Fatalf("Failed to list tools: %v", err)
	}
	fmt.Println("🛠️  Available tools:")
	for _, tool := range toolsResult.Tools {
		fmt.Printf("- %s: %s\n", tool.Name, tool.Description)
	}

	// Store documents with the `split_and_store_document` MCP tool
	fmt.Println("\n\nStoring the bestiary documents...")
	for _, document := range documents {
		request := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "split_and_store_document",
				Arguments: map[string]any{
					"document": document,
					"label":    "fantasy-creatures",
					"metadata": "",
				},
			},
		}
		toolResponse, err := mcpClient.CallTool(ctx, request)
		if err != nil {
			fmt.Printf("Error when storing: %v\n", err)
			continue
		}
		if toolResponse == nil || len(toolResponse.Content) == 0 {
			fmt.Printf("No response from store tool\n")
			continue
		}
		fmt.Println("🛠️  Tool response:", toolResponse.Content[0].(mcp.TextContent).Text)

	}

	// Aggregate the score blocks with the `aggregate_blocks` MCP tool
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Summing the scores of every block...")

	aggregateRequest := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "aggregate_blocks",
			Arguments: map[string]any{
				"document": scores,
				"parser":   "uint",
				"reducer":  "sum",
			},
		},
	}
	aggregateResponse, err := mcpClient.CallTool(ctx, aggregateRequest)
	if err != nil {
		log.Fatalf("Error aggregate: %v", err)
	}
	if aggregateResponse == nil || len(aggregateResponse.Content) == 0 {
		log.Fatalf("No response from aggregate tool")
	}

	var aggregateResult AggregateResult
	err = json.Unmarshal([]byte(aggregateResponse.Content[0].(mcp.TextContent).Text), &aggregateResult)
	if err != nil {
		log.Fatalf("Error parsing aggregate result: %v", err)
	}
	fmt.Println("📊 Sums per block:", aggregateResult.Results)

	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Search for stored documents...")

	searchRequest := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "search_documents_by_label",
			Arguments: map[string]any{
				"label":     "fantasy-creatures",
				"max_count": "2",
			},
		},
	}
	searchResponse, err := mcpClient.CallTool(ctx, searchRequest)
	if err != nil {
		log.Fatalf("Error search: %v", err)
	}
	if searchResponse == nil || len(searchResponse.Content) == 0 {
		log.Fatalf("No response from search tool")
	}

	searchResult := searchResponse.Content[0].(mcp.TextContent).Text

	// Parse the JSON response
	var response SearchResponse
	err = json.Unmarshal([]byte(searchResult), &response)
	if err != nil {
		log.Fatalf("Error parsing search result: %v", err)
	}

	// Loop through results
	fmt.Println("\n📋 Search Results:")
	for _, result := range response.Results {
		fmt.Printf("\nID: %s\n", result.ID)
		fmt.Printf("Blocks: %d, Lines: %d\n", result.BlockCount, result.LineCount)
		fmt.Printf("Content: %s\n", result.Content)
		fmt.Println(strings.Repeat("-", 50))
	}
}
