package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"foodcoop_orders/internal/domain/entities"
	"foodcoop_orders/internal/usecase/interfaces"
)

// OrderDocumentRepository stores one order document per customer slug in
// the cycle container. Saves always rewrite the whole document; an order is
// superseded, never deleted, during a cycle.

type OrderDocumentRepository struct {
	store interfaces.IDocumentStore
}

var _ interfaces.IOrderRepository = (*OrderDocumentRepository)(nil)

func NewOrderDocumentRepository(store interfaces.IDocumentStore) *OrderDocumentRepository {
	return &OrderDocumentRepository{store: store}
}

func orderDocumentName(slug string) string {
	return fmt.Sprintf("order-%s.json", slug)
}

// GetBySlug returns the customer's order, or a zero order when none exists.
func (r *OrderDocumentRepository) GetBySlug(ctx context.Context, cycleID, slug string) (entities.Order, error) {
	id, err := r.store.FindByName(ctx, orderDocumentName(slug), cycleID)
	if err != nil {
		return entities.Order{}, err
	}
	if id == "" {
		return entities.Order{}, nil
	}

	body, err := r.store.Read(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if body == nil {
		return entities.Order{}, nil
	}

	var order entities.Order
	if err := json.Unmarshal(body, &order); err != nil {
		return entities.Order{}, fmt.Errorf("decode order document %s: %w", id, err)
	}
	return order, nil
}

// Save upserts the customer's order document.
func (r *OrderDocumentRepository) Save(ctx context.Context, cycleID string, order entities.Order) (entities.Order, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return entities.Order{}, err
	}

	name := orderDocumentName(order.CustomerSlug)
	id, err := r.store.FindByName(ctx, name, cycleID)
	if err != nil {
		return entities.Order{}, err
	}
	if id != "" {
		if err := r.store.Write(ctx, id, body); err != nil {
			return entities.Order{}, err
		}
		return order, nil
	}

	if _, err := r.store.Create(ctx, name, cycleID, body); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}
