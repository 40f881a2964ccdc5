package interfaces

import (
	"context"

	"foodcoop_orders/internal/domain/entities"
)

// IOrderRepository persists customer orders, one document per customer slug
// within the cycle container.
//
// GetBySlug returns a zero-value order (Status == "") when the customer has
// no order document yet. Save upserts the whole document.

type IOrderRepository interface {
	GetBySlug(ctx context.Context, cycleID, slug string) (entities.Order, error)
	Save(ctx context.Context, cycleID string, order entities.Order) (entities.Order, error)
}
