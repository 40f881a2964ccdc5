package entities

// VolumeLedger is the per-cycle record of offered capacity and consumed
// reservations, keyed by local product ID. It is the single source of truth
// for remaining stock: the invariant after every successful write is
//
//	sum(reservations.quantity) <= original_quantity
//
// for every product.
//
// Storage model (document store):
//   - name: volumes.json, container: the cycle container
//   - rewritten whole on every mutation; the store has no partial update.

type VolumeLedger map[string]VolumeRecord

// VolumeRecord tracks one product. OriginalQuantity is mutated only by the
// administrator resync; Reservations grows by one entry per confirmation.
type VolumeRecord struct {
	OriginalQuantity float64       `json:"original_quantity"`
	Reservations     []Reservation `json:"reservations"`
}

// Reservation is one customer's durable claim against a product's capacity.
type Reservation struct {
	CustomerSlug string  `json:"customer_slug"`
	Quantity     float64 `json:"quantity"`
}

// TotalReserved sums the quantities already promised away.
func (r VolumeRecord) TotalReserved() float64 {
	var total float64
	for _, res := range r.Reservations {
		total += res.Quantity
	}
	return total
}

// Remaining is the capacity still available for new reservations. It can be
// negative only if the ledger was corrupted outside this service.
func (r VolumeRecord) Remaining() float64 {
	return r.OriginalQuantity - r.TotalReserved()
}

// Clone deep-copies the ledger so callers can hand out snapshots without
// exposing the slices backing the authoritative state.
func (l VolumeLedger) Clone() VolumeLedger {
	if l == nil {
		return nil
	}
	out := make(VolumeLedger, len(l))
	for productID, rec := range l {
		cp := VolumeRecord{OriginalQuantity: rec.OriginalQuantity}
		if rec.Reservations != nil {
			cp.Reservations = make([]Reservation, len(rec.Reservations))
			copy(cp.Reservations, rec.Reservations)
		}
		out[productID] = cp
	}
	return out
}
