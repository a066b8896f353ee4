package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"serena/internal/model"
)

// ReplyCache memoizes free-text analysis replies, keyed by a SHA-256 of the
// raw message so the text itself never becomes a Redis key.
type ReplyCache interface {
	Get(ctx context.Context, text string) (*model.AnalyzeResponse, error)
	Set(ctx context.Context, text string, reply *model.AnalyzeResponse) error
}

type replyCache struct {
	client *redis.Client
}

// NewReplyCache creates the analysis reply cache.
func NewReplyCache(client *redis.Client) ReplyCache {
	return &replyCache{client: client}
}

func (c *replyCache) key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "respuesta:" + hex.EncodeToString(sum[:])
}

// Get returns the cached reply, or (nil, nil) on a miss.
func (c *replyCache) Get(ctx context.Context, text string) (*model.AnalyzeResponse, error) {
	data, err := c.client.Get(ctx, c.key(text)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var reply model.AnalyzeResponse
	if err := json.Unmarshal([]byte(data), &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (c *replyCache) Set(ctx context.Context, text string, reply *model.AnalyzeResponse) error {
	data, err := json.Marshal(reply)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(text), data, SessionTTL).Err()
}
