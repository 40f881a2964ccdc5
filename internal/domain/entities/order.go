package entities

import "time"

// OrderStatus represents the lifecycle of a customer order.
//
// Domain notes:
//   - An order starts as a draft when the customer first opens the form.
//   - It is confirmed exactly once; only confirmation touches the volume
//     ledger.
//   - too_late marks a confirmation that arrived after the cycle deadline.
//     The reservation is still recorded (the goods were taken out of the
//     pooled stock by confirming) but the order is flagged for the
//     administrators to resolve by hand.

type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "draft"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusTooLate   OrderStatus = "too_late"
)

// Order is the single active order of one customer within a cycle.
//
// Storage model (document store):
//   - name: order-<slug>.json, container: the cycle container
//   - later saves supersede earlier ones; orders are never deleted during
//     a cycle.
//
// Items maps local product IDs to requested quantities; NonLocalItems maps
// non-local product IDs and is exempt from the capacity check.
type Order struct {
	CustomerSlug         string             `json:"customer_slug"`
	Status               OrderStatus        `json:"status"`
	Items                map[string]float64 `json:"items"`
	NonLocalItems        map[string]float64 `json:"non_local_items"`
	DeliveryChoices      map[string]string  `json:"delivery_choices,omitempty"`
	Note                 string             `json:"note,omitempty"`
	ConfirmationDateTime *time.Time         `json:"confirmation_date_time,omitempty"`
}

// LocalDemands returns the positive local line items of the order. Zero and
// negative quantities are ignored; non-local items are excluded entirely.
func (o Order) LocalDemands() map[string]float64 {
	demands := make(map[string]float64, len(o.Items))
	for productID, qty := range o.Items {
		if qty > 0 {
			demands[productID] = qty
		}
	}
	return demands
}
