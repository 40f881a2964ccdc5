package response

import (
	"time"

	"foodcoop_orders/internal/domain/entities"
)

type OrderResponse struct {
	CustomerSlug         string             `json:"customer_slug"`
	Status               string             `json:"status"`
	Items                map[string]float64 `json:"items"`
	NonLocalItems        map[string]float64 `json:"non_local_items"`
	DeliveryChoices      map[string]string  `json:"delivery_choices,omitempty"`
	Note                 string             `json:"note,omitempty"`
	ConfirmationDateTime *time.Time         `json:"confirmation_date_time,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		CustomerSlug:         o.CustomerSlug,
		Status:               string(o.Status),
		Items:                o.Items,
		NonLocalItems:        o.NonLocalItems,
		DeliveryChoices:      o.DeliveryChoices,
		Note:                 o.Note,
		ConfirmationDateTime: o.ConfirmationDateTime,
	}
}
