package cache

import (
	"context"

	"foodcoop_orders/internal/domain/entities"
	"foodcoop_orders/internal/usecase/interfaces"
)

// NoopCycleCache is the fallback when no Redis address is configured; every
// lookup misses and the snapshot is served from the store.
type NoopCycleCache struct{}

var _ interfaces.ICycleCache = (*NoopCycleCache)(nil)

func (NoopCycleCache) Get(_ context.Context) (*entities.SalesCycle, bool, error) {
	return nil, false, nil
}

func (NoopCycleCache) Set(_ context.Context, _ *entities.SalesCycle) error {
	return nil
}

func (NoopCycleCache) Invalidate(_ context.Context) error {
	return nil
}
