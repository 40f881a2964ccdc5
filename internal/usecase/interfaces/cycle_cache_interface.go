package interfaces

import (
	"context"

	"foodcoop_orders/internal/domain/entities"
)

// ICycleCache caches the current campaign snapshot for the order form. The
// snapshot is read-mostly, so a short TTL is enough; the ledger is never
// cached.

type ICycleCache interface {
	Get(ctx context.Context) (*entities.SalesCycle, bool, error)
	Set(ctx context.Context, cycle *entities.SalesCycle) error
	Invalidate(ctx context.Context) error
}
