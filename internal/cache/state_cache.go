// Package cache holds the Redis-backed keyed stores: conversation state,
// symptom scores and cached analysis replies. All of them expire; nothing in
// Redis outlives an abandoned session.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"serena/internal/model"
)

// SessionTTL is how long an idle conversation survives. Refreshed on every
// persisted turn.
const SessionTTL = time.Hour

// StateCache stores the conversation state record per session id.
type StateCache interface {
	Get(ctx context.Context, sessionID string) (*model.Session, error)
	Set(ctx context.Context, sessionID string, session *model.Session) error
	Delete(ctx context.Context, sessionID string) error
}

type stateCache struct {
	client *redis.Client
}

// NewStateCache creates the conversation state store.
func NewStateCache(client *redis.Client) StateCache {
	return &stateCache{client: client}
}

func (c *stateCache) key(sessionID string) string {
	return "estado:" + sessionID
}

// Get returns the stored session, or (nil, nil) when absent.
func (c *stateCache) Get(ctx context.Context, sessionID string) (*model.Session, error) {
	data, err := c.client.Get(ctx, c.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session model.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *stateCache) Set(ctx context.Context, sessionID string, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(sessionID), data, SessionTTL).Err()
}

func (c *stateCache) Delete(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, c.key(sessionID)).Err()
}
