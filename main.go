package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"textblocks/api"
	"textblocks/helpers"
	"textblocks/mcptools"
	"textblocks/store"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/redis/go-redis/v9"
)

func main() {
	ctx := context.Background()

	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	mcpHttpPort := helpers.GetEnvOrDefault("MCP_HTTP_PORT", "9090")
	apiRestPort := helpers.GetEnvOrDefault("API_REST_PORT", "8080")

	redisIndexName := helpers.GetEnvOrDefault("REDIS_INDEX_NAME", "textblocks_idx")
	redisAddress := helpers.GetEnvOrDefault("REDIS_ADDRESS", "localhost:6379")
	redisPassword := helpers.GetEnvOrDefault("REDIS_PASSWORD", "")
	maxDocumentBytes := helpers.StringToInt(helpers.GetEnvOrDefault("MAX_DOCUMENT_BYTES", "1048576"))

	api.SetMaxDocumentBytes(maxDocumentBytes)
	mcptools.SetMaxDocumentBytes(maxDocumentBytes)

	// Create Redis client
	redisClient := store.CreateRedisClient(redisAddress, redisPassword)
	defer store.CloseRedisClient(redisClient)

	// Check if index exists, create it if not
	exists, err := store.IndexExists(ctx, redisClient, redisIndexName)
	if err != nil {
		fmt.Printf("Error checking index: %v\n", err)
		return
	}

	if !exists {
		fmt.Printf("Index '%s' does not exist, creating it...\n", redisIndexName)
		err = store.CreateDocumentIndex(ctx, redisClient, redisIndexName)
		if err != nil {
			fmt.Printf("Error creating index: %v\n", err)
			return
		}
		fmt.Printf("Index '%s' created successfully\n", redisIndexName)
	} else {
		fmt.Printf("Index '%s' already exists\n", redisIndexName)
	}

	// Create MCP server
	mcpServer := server.NewMCPServer(
		"mcp-textblocks",
		"0.0.0",
	)

	// Register the MCP tools
	mcptools.RegisterTools(mcpServer, redisClient, redisIndexName)

	// Create REST API mux
	apiMux := newRESTMux(ctx, redisClient, redisIndexName)

	// Create MCP mux
	mcpMux := http.NewServeMux()

	// Add MCP endpoint
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithEndpointPath("/mcp"),
	)
	mcpMux.Handle("/mcp", httpServer)

	// Start REST API server in a goroutine
	go func() {
		log.Println("REST API Server is running on port", apiRestPort)
		if err := http.ListenAndServe(":"+apiRestPort, apiMux); err != nil {
			log.Fatal("REST API Server error:", err)
		}
	}()

	// Start MCP server on main thread
	log.Println("MCP Server is running on port", mcpHttpPort)
	log.Fatal(http.ListenAndServe(":"+mcpHttpPort, mcpMux))

}

func newRESTMux(ctx context.Context, redisClient *redis.Client, redisIndexName string) *http.ServeMux {
	apiMux := http.NewServeMux()

	// Add healthcheck endpoint
	apiMux.HandleFunc("/health", api.HealthCheckHandler)

	// Add splitter info endpoint
	apiMux.HandleFunc("/info", api.SplitterInfoHandler)

	// Add split into blocks endpoint
	apiMux.HandleFunc("/split", api.SplitBlocksHandler)

	// Add parse lines endpoint
	apiMux.HandleFunc("/parse", api.ParseLinesHandler)

	// Add aggregate blocks endpoint
	apiMux.HandleFunc("/aggregate", api.AggregateBlocksHandler)

	// Add split and store endpoint
	apiMux.HandleFunc("/documents", func(w http.ResponseWriter, r *http.Request) {
		api.SplitAndStoreHandler(w, r, ctx, redisClient, redisIndexName)
	})

	// Add get document endpoint
	apiMux.HandleFunc("/documents/get", func(w http.ResponseWriter, r *http.Request) {
		api.GetDocumentHandler(w, r, ctx, redisClient, redisIndexName)
	})

	// Add search documents endpoint
	apiMux.HandleFunc("/documents/search", func(w http.ResponseWriter, r *http.Request) {
		api.SearchDocumentsHandler(w, r, ctx, redisClient, redisIndexName)
	})

	// Add delete document endpoint
	apiMux.HandleFunc("/documents/delete", func(w http.ResponseWriter, r *http.Request) {
		api.DeleteDocumentHandler(w, r, ctx, redisClient, redisIndexName)
	})

	return apiMux
}
