package entities

import "time"

// SalesCycle is the campaign snapshot persisted as the cycle document.
//
// Domain notes:
//   - A cycle is created by an administrator together with its catalog and
//     customer list (imported from the spreadsheet sync upstream).
//   - The snapshot is read-mostly: nothing in the ordering flow mutates it.
//     OfferedQuantity is the quantity captured at campaign creation; the
//     volume ledger, not this snapshot, tracks what is still available.
//
// Storage model (document store):
//   - name: cycle.json, container: working folder
//   - the cycle ID doubles as the container id for per-cycle documents
//     (volume ledger, customer orders).

type SalesCycle struct {
	ID               string            `json:"id"`
	CreationDate     time.Time         `json:"creation_date"`
	Deadline         time.Time         `json:"deadline"`
	DeliveryDate     time.Time         `json:"delivery_date"`
	Products         []Product         `json:"products"`
	NonLocalProducts []NonLocalProduct `json:"non_local_products"`
	Customers        []Customer        `json:"customers"`
	DeliverySchemes  []DeliveryScheme  `json:"delivery_schemes"`
}

// Product is a locally produced catalog item. Its quantity is pooled: the
// cooperative offers OfferedQuantity across all customers for the cycle.
type Product struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Unit            string  `json:"unit"`
	Price           float64 `json:"price"`
	OfferedQuantity float64 `json:"offered_quantity"`
}

// NonLocalProduct is sourced on demand from outside the cooperative, so it
// carries no pooled quantity and never participates in the volume ledger.
// PackagingMultiplier is the wholesale case size the order total is rounded
// up against by the purchasing job downstream.
type NonLocalProduct struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Category            string  `json:"category"`
	Unit                string  `json:"unit"`
	Price               float64 `json:"price"`
	PackagingMultiplier float64 `json:"packaging_multiplier"`
}

// Customer identifies a cooperative member. Slug is the stable per-customer
// key used to address order documents and ledger reservations.
type Customer struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// DeliveryScheme maps a set of product categories to the delivery windows a
// customer may pick from for those categories.
type DeliveryScheme struct {
	Categories []string         `json:"categories"`
	Windows    []DeliveryWindow `json:"windows"`
}

type DeliveryWindow struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// HasCustomer reports whether slug belongs to the cycle's customer list.
func (c SalesCycle) HasCustomer(slug string) bool {
	for _, cu := range c.Customers {
		if cu.Slug == slug {
			return true
		}
	}
	return false
}

// ProductByID resolves a local product from the catalog.
func (c SalesCycle) ProductByID(id string) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
