package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"textblocks/splitter"

	"github.com/redis/go-redis/v9"
)

// ErrDocumentNotFound is returned when no document exists under the requested ID.
var ErrDocumentNotFound = errors.New("document not found")

// StoredDocument is one parsed document as kept in Redis.
type StoredDocument struct {
	ID         string
	Content    string
	Blocks     [][]string
	Label      string
	Metadata   string
	BlockCount int
	LineCount  int
	CreatedAt  time.Time
}

// EncodeBlocks serializes blocks for storage in a Redis hash field
func EncodeBlocks(blocks [][]string) (string, error) {
	encoded, err := json.Marshal(blocks)
	if err != nil {
		return "", fmt.Errorf("error encoding blocks: %v", err)
	}
	return string(encoded), nil
}

// DecodeBlocks restores blocks from their stored hash field
func DecodeBlocks(encoded string) ([][]string, error) {
	var blocks [][]string
	if err := json.Unmarshal([]byte(encoded), &blocks); err != nil {
		return nil, fmt.Errorf("error decoding blocks: %v", err)
	}
	return blocks, nil
}

// StoreDocument stores a parsed document in Redis
func StoreDocument(ctx context.Context, redisClient *redis.Client, docID, content string, blocks [][]string, label, metadata string) error {
	encoded, err := EncodeBlocks(blocks)
	if err != nil {
		return err
	}

	_, err = redisClient.HSet(ctx,
		docID,
		map[string]any{
			"content":     content,
			"blocks":      encoded,
			"label":       label,
			"metadata":    metadata,
			"created_at":  time.Now().Unix(),
			"block_count": len(blocks),
			"line_count":  splitter.CountLines(blocks),
		},
	).Result()

	return err
}

// GetDocument loads a stored document by its ID
func GetDocument(ctx context.Context, redisClient *redis.Client, docID string) (*StoredDocument, error) {
	fields, err := redisClient.HGetAll(ctx, docID).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, docID)
	}

	blocks, err := DecodeBlocks(fields["blocks"])
	if err != nil {
		return nil, err
	}

	doc := &StoredDocument{
		ID:       docID,
		Content:  fields["content"],
		Blocks:   blocks,
		Label:    fields["label"],
		Metadata: fields["metadata"],
	}
	doc.BlockCount, _ = strconv.Atoi(fields["block_count"])
	doc.LineCount, _ = strconv.Atoi(fields["line_count"])
	if unix, convErr := strconv.ParseInt(fields["created_at"], 10, 64); convErr == nil {
		doc.CreatedAt = time.Unix(unix, 0)
	}

	return doc, nil
}

// DeleteDocument removes a stored document by its ID.
// It reports whether a document was actually removed.
func DeleteDocument(ctx context.Context, redisClient *redis.Client, docID string) (bool, error) {
	removed, err := redisClient.Del(ctx, docID).Result()
	if err != nil {
		return false, err
	}
	return removed > 0, nil
}
