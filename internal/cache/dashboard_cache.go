package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"crewpulse/internal/model"
)

// DashboardCache holds the computed management dashboard for a short TTL.
// Risk snapshots are recomputed per query, never persisted; this only
// absorbs bursts of dashboard refreshes. Wellness reporting is eventually
// consistent, so a slightly stale snapshot is acceptable.
type DashboardCache interface {
	Get(ctx context.Context, days int) (*model.DashboardReport, error)
	Set(ctx context.Context, days int, report *model.DashboardReport) error
}

type dashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDashboardCache creates a new dashboard cache.
func NewDashboardCache(client *redis.Client) DashboardCache {
	return &dashboardCache{
		client: client,
		ttl:    60 * time.Second,
	}
}

func (c *dashboardCache) key(days int) string {
	return fmt.Sprintf("dashboard:%d:%s", days, model.DayKey(time.Now()))
}

func (c *dashboardCache) Get(ctx context.Context, days int) (*model.DashboardReport, error) {
	data, err := c.client.Get(ctx, c.key(days)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var report model.DashboardReport
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *dashboardCache) Set(ctx context.Context, days int, report *model.DashboardReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(days), data, c.ttl).Err()
}
