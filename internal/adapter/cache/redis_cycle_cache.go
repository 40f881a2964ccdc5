package cache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"foodcoop_orders/internal/domain/entities"
	"foodcoop_orders/internal/usecase/interfaces"
)

const keyCurrentCycle = "coop:cycle:current"

// TTLCycleSnapshot bounds staleness of the cached campaign snapshot. The
// snapshot only changes when an administrator creates a campaign, so a few
// minutes is plenty.
var TTLCycleSnapshot = 5 * time.Minute

// RedisCycleCache shares the current-cycle snapshot across restarts so the
// order form does not hit the document store on every page load.
type RedisCycleCache struct {
	client *redis.Client
}

var _ interfaces.ICycleCache = (*RedisCycleCache)(nil)

func NewRedisCycleCache(addr string, password string, db int) *RedisCycleCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisCycleCache{client: client}
}

func (c *RedisCycleCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCycleCache) Close() error {
	return c.client.Close()
}

func (c *RedisCycleCache) Get(ctx context.Context) (*entities.SalesCycle, bool, error) {
	val, err := c.client.Get(ctx, keyCurrentCycle).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var cycle entities.SalesCycle
	if err := json.Unmarshal([]byte(val), &cycle); err != nil {
		return nil, false, err
	}
	return &cycle, true, nil
}

func (c *RedisCycleCache) Set(ctx context.Context, cycle *entities.SalesCycle) error {
	if cycle == nil {
		return nil
	}
	payload, err := json.Marshal(cycle)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, keyCurrentCycle, payload, TTLCycleSnapshot).Err()
}

func (c *RedisCycleCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, keyCurrentCycle).Err()
}
