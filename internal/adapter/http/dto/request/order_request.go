package request

import (
	"foodcoop_orders/internal/domain/entities"
)

// OrderRequest is the draft payload the order form submits. The customer
// slug comes from the URL, never from the body.
type OrderRequest struct {
	Items           map[string]float64 `json:"items"`
	NonLocalItems   map[string]float64 `json:"non_local_items"`
	DeliveryChoices map[string]string  `json:"delivery_choices"`
	Note            string             `json:"note"`
}

func (r OrderRequest) ToOrder(slug string) entities.Order {
	return entities.Order{
		CustomerSlug:    slug,
		Status:          entities.OrderStatusDraft,
		Items:           r.Items,
		NonLocalItems:   r.NonLocalItems,
		DeliveryChoices: r.DeliveryChoices,
		Note:            r.Note,
	}
}
