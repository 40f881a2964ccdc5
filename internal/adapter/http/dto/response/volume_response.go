package response

import (
	"sort"

	"foodcoop_orders/internal/domain/entities"
	"foodcoop_orders/internal/usecase"
)

type ReservationResponse struct {
	CustomerSlug string  `json:"customer_slug"`
	Quantity     float64 `json:"quantity"`
}

type ProductVolumeResponse struct {
	ProductID        string                `json:"product_id"`
	OriginalQuantity float64               `json:"original_quantity"`
	Reserved         float64               `json:"reserved"`
	Remaining        float64               `json:"remaining"`
	Reservations     []ReservationResponse `json:"reservations"`
}

// VolumesResponse is the remaining-stock view, sorted by product id so the
// admin table renders stably.
type VolumesResponse struct {
	Products []ProductVolumeResponse `json:"products"`
}

func FromVolumeLedger(ledger entities.VolumeLedger) VolumesResponse {
	res := VolumesResponse{Products: make([]ProductVolumeResponse, 0, len(ledger))}
	for productID, rec := range ledger {
		pv := ProductVolumeResponse{
			ProductID:        productID,
			OriginalQuantity: rec.OriginalQuantity,
			Reserved:         rec.TotalReserved(),
			Remaining:        rec.Remaining(),
			Reservations:     make([]ReservationResponse, 0, len(rec.Reservations)),
		}
		for _, r := range rec.Reservations {
			pv.Reservations = append(pv.Reservations, ReservationResponse{
				CustomerSlug: r.CustomerSlug,
				Quantity:     r.Quantity,
			})
		}
		res.Products = append(res.Products, pv)
	}
	sort.Slice(res.Products, func(i, j int) bool { return res.Products[i].ProductID < res.Products[j].ProductID })
	return res
}

type ShortfallResponse struct {
	ProductID string  `json:"product_id"`
	Requested float64 `json:"requested"`
	Available float64 `json:"available"`
}

// OutOfStockResponse is the 409 body telling the customer which products
// ran out while the order was being composed.
type OutOfStockResponse struct {
	Code     string              `json:"code"`
	Message  string              `json:"message"`
	Products []ShortfallResponse `json:"products"`
}

func FromOutOfStock(e *usecase.OutOfStockError) OutOfStockResponse {
	res := OutOfStockResponse{
		Code:    "OUT_OF_STOCK",
		Message: "Some products became unavailable while you were composing your order",
	}
	for _, s := range e.Shortfalls {
		res.Products = append(res.Products, ShortfallResponse{
			ProductID: s.ProductID,
			Requested: s.Requested,
			Available: s.Available,
		})
	}
	return res
}
