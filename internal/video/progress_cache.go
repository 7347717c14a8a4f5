package video

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/edulearn/platform/internal/cache"
)

const progressTTL = 30 * time.Minute

// RedisProgressCache stores progress snapshots in Redis keyed by attempt id
// so clients can poll an upload while it runs.
type RedisProgressCache struct {
	cache cache.Service
}

// NewRedisProgressCache creates a ProgressCache backed by the shared cache
func NewRedisProgressCache(c cache.Service) *RedisProgressCache {
	return &RedisProgressCache{cache: c}
}

func (p *RedisProgressCache) SetProgress(ctx context.Context, update ProgressUpdate) error {
	payload, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to encode progress snapshot: %w", err)
	}
	return p.cache.Set(ctx, progressKey(update.AttemptID), payload, progressTTL)
}

func (p *RedisProgressCache) GetProgress(ctx context.Context, attemptID string) (*ProgressUpdate, error) {
	payload, err := p.cache.Get(ctx, progressKey(attemptID))
	if err != nil {
		return nil, err
	}
	var update ProgressUpdate
	if err := json.Unmarshal([]byte(payload), &update); err != nil {
		return nil, fmt.Errorf("failed to decode progress snapshot: %w", err)
	}
	return &update, nil
}

func progressKey(attemptID string) string {
	return "upload:progress:" + attemptID
}
