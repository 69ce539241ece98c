package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/anirudhASAWA/Time-Motion-Study/internal/projects/domain"
)

const summariesKey = "tms:projects:summaries"

// SummaryCache keeps the project listing in Redis so repeated List
// calls skip re-reading every stored record. It is a plain read-through
// cache: the store stays the source of truth and any save or delete
// invalidates the cached listing.
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSummaryCache(client *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{client: client, ttl: ttl}
}

// Get returns the cached summaries, or ok=false on a miss. Redis
// failures read as misses so a cache outage never breaks listing.
func (c *SummaryCache) Get(ctx context.Context) ([]domain.Summary, bool) {
	data, err := c.client.Get(ctx, summariesKey).Bytes()
	if err != nil {
		return nil, false
	}

	var out []domain.Summary
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, false
	}
	return out, true
}

func (c *SummaryCache) Set(ctx context.Context, summaries []domain.Summary) error {
	data, err := json.Marshal(summaries)
	if err != nil {
		return fmt.Errorf("encode summaries: %w", err)
	}
	if err := c.client.Set(ctx, summariesKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache summaries: %w", err)
	}
	return nil
}

func (c *SummaryCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, summariesKey).Err(); err != nil {
		return fmt.Errorf("invalidate summaries: %w", err)
	}
	return nil
}
