package interfaces

import (
	"context"

	"foodcoop_orders/internal/domain/entities"
)

// ISalesCycleRepository persists the campaign snapshot document.
//
// GetCurrent returns a zero-value cycle (ID == "") when no campaign exists
// yet. Create replaces the previous campaign pointer: the old cycle's
// documents are orphaned, not deleted.

type ISalesCycleRepository interface {
	GetCurrent(ctx context.Context) (entities.SalesCycle, error)
	Create(ctx context.Context, cycle entities.SalesCycle) (entities.SalesCycle, error)
}
