package cache

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// ScoreCache stores the per-session symptom scores under their own key
// namespace, with the same expiry policy as the conversation state.
type ScoreCache interface {
	Get(ctx context.Context, sessionID string) (map[string]int, error)
	Set(ctx context.Context, sessionID string, scores map[string]int) error
	Delete(ctx context.Context, sessionID string) error
}

type scoreCache struct {
	client *redis.Client
}

// NewScoreCache creates the symptom score store.
func NewScoreCache(client *redis.Client) ScoreCache {
	return &scoreCache{client: client}
}

func (c *scoreCache) key(sessionID string) string {
	return "puntuacion:" + sessionID
}

// Get returns the stored scores, or an empty map when absent.
func (c *scoreCache) Get(ctx context.Context, sessionID string) (map[string]int, error) {
	data, err := c.client.Get(ctx, c.key(sessionID)).Result()
	if err == redis.Nil {
		return make(map[string]int), nil
	}
	if err != nil {
		return nil, err
	}
	var scores map[string]int
	if err := json.Unmarshal([]byte(data), &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

func (c *scoreCache) Set(ctx context.Context, sessionID string, scores map[string]int) error {
	data, err := json.Marshal(scores)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(sessionID), data, SessionTTL).Err()
}

func (c *scoreCache) Delete(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, c.key(sessionID)).Err()
}
