package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// CreateRedisClient creates a new Redis client
func CreateRedisClient(redisAddress, redisPassword string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddress,
		Password: redisPassword,
		DB:       0, // use default DB
		Protocol: 2, // specify the Redis protocol version
	})

	return client
}

// CloseRedisClient closes the Redis client connection
func CloseRedisClient(client *redis.Client) error {
	return client.Close()
}

// IndexExists checks if a Redis search index exists
func IndexExists(ctx context.Context, redisClient *redis.Client, indexName string) (bool, error) {
	_, err := redisClient.FTInfo(ctx, indexName).Result()
	if err != nil {
		// Check if error indicates index doesn't exist
		errMsg := err.Error()
		if errMsg == "Unknown index name" ||
			redis.HasErrorPrefix(err, indexName+": no such index") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CreateDocumentIndex creates a new Redis search index for parsed documents
func CreateDocumentIndex(ctx context.Context, redisClient *redis.Client, indexName string) error {
	_, err := redisClient.FTCreate(ctx,
		indexName,
		&redis.FTCreateOptions{
			OnHash: true,
			Prefix: []any{"doc:"},
		},
		&redis.FieldSchema{
			FieldName: "content",
			FieldType: redis.SearchFieldTypeText,
		},
		&redis.FieldSchema{
			FieldName: "label",
			FieldType: redis.SearchFieldTypeTag,
		},
		&redis.FieldSchema{
			FieldName: "metadata",
			FieldType: redis.SearchFieldTypeText,
		},
		&redis.FieldSchema{
			FieldName: "created_at",
			FieldType: redis.SearchFieldTypeNumeric,
		},
		&redis.FieldSchema{
			FieldName: "block_count",
			FieldType: redis.SearchFieldTypeNumeric,
		},
		&redis.FieldSchema{
			FieldName: "line_count",
			FieldType: redis.SearchFieldTypeNumeric,
		},
	).Result()

	return err
}

// DropIndex drops a Redis search index
func DropIndex(ctx context.Context, redisClient *redis.Client, indexName string) *redis.StatusCmd {
	return redisClient.FTDropIndexWithArgs(ctx,
		indexName,
		&redis.FTDropIndexOptions{
			DeleteDocs: true,
		},
	)
}

// SearchDocumentsByLabel finds stored documents carrying the given label tag
func SearchDocumentsByLabel(ctx context.Context, redisClient *redis.Client, indexName, label string, maxCount int) ([]redis.Document, error) {
	query := fmt.Sprintf("@label:{%s}", label)

	results, err := redisClient.FTSearchWithArgs(ctx,
		indexName,
		query,
		&redis.FTSearchOptions{
			Return: []redis.FTSearchReturn{
				{FieldName: "content"},
				{FieldName: "label"},
				{FieldName: "metadata"},
				{FieldName: "created_at"},
				{FieldName: "block_count"},
				{FieldName: "line_count"},
			},
			LimitOffset:    0,
			Limit:          maxCount,
			DialectVersion: 2,
		},
	).Result()
	if err != nil {
		return nil, err
	}

	return results.Docs, nil
}
