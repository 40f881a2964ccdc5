package response

import (
	"time"

	"foodcoop_orders/internal/domain/entities"
)

type ProductResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Unit            string  `json:"unit"`
	Price           float64 `json:"price"`
	OfferedQuantity float64 `json:"offered_quantity"`
}

type NonLocalProductResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Category            string  `json:"category"`
	Unit                string  `json:"unit"`
	Price               float64 `json:"price"`
	PackagingMultiplier float64 `json:"packaging_multiplier"`
}

type DeliveryWindowResponse struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type DeliverySchemeResponse struct {
	Categories []string                 `json:"categories"`
	Windows    []DeliveryWindowResponse `json:"windows"`
}

// CycleResponse is the campaign snapshot served to the order form. The
// customer list is intentionally omitted: the form only needs its own slug,
// and member data stays off the public payload.
type CycleResponse struct {
	ID               string                    `json:"id"`
	CreationDate     time.Time                 `json:"creation_date"`
	Deadline         time.Time                 `json:"deadline"`
	DeliveryDate     time.Time                 `json:"delivery_date"`
	Products         []ProductResponse         `json:"products"`
	NonLocalProducts []NonLocalProductResponse `json:"non_local_products"`
	DeliverySchemes  []DeliverySchemeResponse  `json:"delivery_schemes"`
}

func FromSalesCycle(c entities.SalesCycle) CycleResponse {
	res := CycleResponse{
		ID:           c.ID,
		CreationDate: c.CreationDate,
		Deadline:     c.Deadline,
		DeliveryDate: c.DeliveryDate,
	}
	for _, p := range c.Products {
		res.Products = append(res.Products, ProductResponse{
			ID:              p.ID,
			Name:            p.Name,
			Category:        p.Category,
			Unit:            p.Unit,
			Price:           p.Price,
			OfferedQuantity: p.OfferedQuantity,
		})
	}
	for _, p := range c.NonLocalProducts {
		res.NonLocalProducts = append(res.NonLocalProducts, NonLocalProductResponse{
			ID:                  p.ID,
			Name:                p.Name,
			Category:            p.Category,
			Unit:                p.Unit,
			Price:               p.Price,
			PackagingMultiplier: p.PackagingMultiplier,
		})
	}
	for _, s := range c.DeliverySchemes {
		scheme := DeliverySchemeResponse{Categories: s.Categories}
		for _, w := range s.Windows {
			scheme.Windows = append(scheme.Windows, DeliveryWindowResponse{
				Day:       w.Day,
				StartTime: w.StartTime,
				EndTime:   w.EndTime,
			})
		}
		res.DeliverySchemes = append(res.DeliverySchemes, scheme)
	}
	return res
}
