package request

import (
	"errors"
	"strings"
	"time"

	"foodcoop_orders/internal/domain/entities"
	"foodcoop_orders/internal/usecase"
)

var (
	ErrInvalidCycleDates = errors.New("invalid cycle dates")
)

type ProductRequest struct {
	ID              string  `json:"id" binding:"required"`
	Name            string  `json:"name" binding:"required"`
	Category        string  `json:"category"`
	Unit            string  `json:"unit"`
	Price           float64 `json:"price"`
	OfferedQuantity float64 `json:"offered_quantity"`
}

type NonLocalProductRequest struct {
	ID                  string  `json:"id" binding:"required"`
	Name                string  `json:"name" binding:"required"`
	Category            string  `json:"category"`
	Unit                string  `json:"unit"`
	Price               float64 `json:"price"`
	PackagingMultiplier float64 `json:"packaging_multiplier"`
}

type CustomerRequest struct {
	ID    string `json:"id"`
	Slug  string `json:"slug" binding:"required"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type DeliveryWindowRequest struct {
	Day       string `json:"day" binding:"required"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type DeliverySchemeRequest struct {
	Categories []string                `json:"categories" binding:"required"`
	Windows    []DeliveryWindowRequest `json:"windows" binding:"required"`
}

// CreateCycleRequest is the admin payload opening a new campaign. The
// catalog and customer lists come from the upstream spreadsheet sync.
type CreateCycleRequest struct {
	Deadline         time.Time                `json:"deadline" binding:"required"`
	DeliveryDate     time.Time                `json:"delivery_date" binding:"required"`
	Products         []ProductRequest         `json:"products" binding:"required"`
	NonLocalProducts []NonLocalProductRequest `json:"non_local_products"`
	Customers        []CustomerRequest        `json:"customers" binding:"required"`
	DeliverySchemes  []DeliverySchemeRequest  `json:"delivery_schemes"`
}

func (r CreateCycleRequest) ToInput() (usecase.NewCycleInput, error) {
	if r.Deadline.IsZero() || r.DeliveryDate.IsZero() {
		return usecase.NewCycleInput{}, ErrInvalidCycleDates
	}

	input := usecase.NewCycleInput{
		Deadline:     r.Deadline,
		DeliveryDate: r.DeliveryDate,
	}
	for _, p := range r.Products {
		input.Products = append(input.Products, entities.Product{
			ID:              strings.TrimSpace(p.ID),
			Name:            p.Name,
			Category:        p.Category,
			Unit:            p.Unit,
			Price:           p.Price,
			OfferedQuantity: p.OfferedQuantity,
		})
	}
	for _, p := range r.NonLocalProducts {
		input.NonLocalProducts = append(input.NonLocalProducts, entities.NonLocalProduct{
			ID:                  strings.TrimSpace(p.ID),
			Name:                p.Name,
			Category:            p.Category,
			Unit:                p.Unit,
			Price:               p.Price,
			PackagingMultiplier: p.PackagingMultiplier,
		})
	}
	for _, c := range r.Customers {
		input.Customers = append(input.Customers, entities.Customer{
			ID:    c.ID,
			Slug:  strings.TrimSpace(c.Slug),
			Name:  c.Name,
			Email: c.Email,
		})
	}
	for _, s := range r.DeliverySchemes {
		scheme := entities.DeliveryScheme{Categories: s.Categories}
		for _, w := range s.Windows {
			scheme.Windows = append(scheme.Windows, entities.DeliveryWindow{
				Day:       w.Day,
				StartTime: w.StartTime,
				EndTime:   w.EndTime,
			})
		}
		input.DeliverySchemes = append(input.DeliverySchemes, scheme)
	}
	return input, nil
}

// ResyncRequest carries re-imported offered quantities keyed by product id.
type ResyncRequest struct {
	Quantities map[string]float64 `json:"quantities" binding:"required"`
}

// ResolveQuantities drops blank product ids and trims the rest.
func (r ResyncRequest) ResolveQuantities() map[string]float64 {
	out := make(map[string]float64, len(r.Quantities))
	for productID, qty := range r.Quantities {
		id := strings.TrimSpace(productID)
		if id == "" {
			continue
		}
		out[id] = qty
	}
	return out
}
