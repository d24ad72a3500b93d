package generate

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	sharedredis "floorplan-server/internal/shared/redis"
)

// Cache stores serialized results keyed by a content hash of the request.
// The generation pipeline is deterministic, so a hit is always equivalent
// to recomputation. A nil client disables caching; every operation is
// best-effort and failures fall through to recomputation.
type Cache struct {
	client *sharedredis.Client
	ttl    time.Duration
}

func NewCache(client *sharedredis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) key(req Request) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s|%g|%g|%d", req.Prompt, req.Width, req.Depth, req.Floors))
	return fmt.Sprintf("layout:%x", sum)
}

func (c *Cache) Get(ctx context.Context, req Request) (*Result, bool) {
	if c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, c.key(req)).Bytes()
	if err != nil {
		return nil, false
	}

	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		slog.Warn("Discarding undecodable cached layout",
			"component", "layout_cache", "error", err)
		return nil, false
	}

	return &result, true
}

func (c *Cache) Set(ctx context.Context, req Request, result *Result) {
	if c.client == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, c.key(req), data, c.ttl).Err(); err != nil {
		slog.Debug("Failed to cache layout",
			"component", "layout_cache", "error", err)
	}
}
