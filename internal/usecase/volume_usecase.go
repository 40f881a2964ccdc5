package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"foodcoop_orders/internal/domain/entities"
	"foodcoop_orders/internal/usecase/interfaces"
)

var (
	ErrLedgerNotFound = errors.New("volume ledger not found for the current cycle")
	ErrCycleNotFound  = errors.New("no active sales cycle")
)

// ProductShortfall describes one product whose remaining capacity could not
// cover the requested quantity.
type ProductShortfall struct {
	ProductID string
	Requested float64
	Available float64
}

// OutOfStockError reports that an order could not be reserved in full. The
// whole order is rejected; no partial reservation is persisted.
type OutOfStockError struct {
	Shortfalls []ProductShortfall
}

func (e *OutOfStockError) Error() string {
	ids := make([]string, 0, len(e.Shortfalls))
	for _, s := range e.Shortfalls {
		ids = append(ids, s.ProductID)
	}
	return fmt.Sprintf("products no longer available in the requested quantity: %s", strings.Join(ids, ", "))
}

// IVolumeUseCase exposes the reserved-volume ledger operations.
//
// All mutating operations run a gate-protected read-modify-write cycle
// against the ledger document: the store persists whole documents
// atomically but cannot compare-and-swap, so checking and committing must
// happen inside one critical section.

type IVolumeUseCase interface {
	RegisterOrderQuantities(ctx context.Context, order entities.Order, customerSlug string) error
	UpdateQuantities(ctx context.Context, quantities map[string]float64) error
	GetOrderVolumes(ctx context.Context) (entities.VolumeLedger, error)
	CreateInitialLedger(ctx context.Context, cycleID string, volumes []InitialVolume) error
}

// InitialVolume seeds one product's record when a new cycle's ledger is
// bootstrapped.
type InitialVolume struct {
	ProductID string
	Quantity  float64
}

type VolumeUseCase struct {
	cycles interfaces.ISalesCycleRepository
	ledger interfaces.ILedgerRepository
	gate   *volumeGate
}

var _ IVolumeUseCase = (*VolumeUseCase)(nil)

func NewVolumeUseCase(cycles interfaces.ISalesCycleRepository, ledger interfaces.ILedgerRepository) *VolumeUseCase {
	return &VolumeUseCase{
		cycles: cycles,
		ledger: ledger,
		gate:   newVolumeGate(gateRetryInterval),
	}
}

// RegisterOrderQuantities atomically checks every local line item of the
// order against remaining capacity and, only if all fit, appends one
// reservation per product and rewrites the ledger. On any shortfall nothing
// is written and the whole order fails with *OutOfStockError.
//
// Non-local products are sourced outside the pooled stock: an order without
// local line items returns before the gate or the store is touched.
func (u *VolumeUseCase) RegisterOrderQuantities(ctx context.Context, order entities.Order, customerSlug string) error {
	demands := order.LocalDemands()
	if len(demands) == 0 {
		return nil
	}

	if err := u.gate.acquire(ctx); err != nil {
		return err
	}
	defer u.gate.release()

	cycleID, ledger, err := u.loadLedger(ctx)
	if err != nil {
		return err
	}

	var shortfalls []ProductShortfall
	for productID, qty := range demands {
		// A product absent from the ledger has zero offered capacity.
		rec := ledger[productID]
		if rec.TotalReserved()+qty > rec.OriginalQuantity {
			shortfalls = append(shortfalls, ProductShortfall{
				ProductID: productID,
				Requested: qty,
				Available: rec.Remaining(),
			})
		}
	}
	if len(shortfalls) > 0 {
		sort.Slice(shortfalls, func(i, j int) bool { return shortfalls[i].ProductID < shortfalls[j].ProductID })
		log.Printf("[volume][usecase] reservation rejected customer=%s products=%d", customerSlug, len(shortfalls))
		return &OutOfStockError{Shortfalls: shortfalls}
	}

	for productID, qty := range demands {
		rec := ledger[productID]
		rec.Reservations = append(rec.Reservations, entities.Reservation{
			CustomerSlug: customerSlug,
			Quantity:     qty,
		})
		ledger[productID] = rec
	}

	if err := u.ledger.Put(ctx, cycleID, ledger); err != nil {
		return err
	}
	log.Printf("[volume][usecase] reservation committed customer=%s products=%d", customerSlug, len(demands))
	return nil
}

// UpdateQuantities merges re-imported offered quantities into the ledger.
// Products missing from the ledger get a fresh record; existing products
// keep their reservations untouched, and the new quantity is clamped so it
// never undercuts what has already been promised. Products not named in the
// input are left exactly as they were.
func (u *VolumeUseCase) UpdateQuantities(ctx context.Context, quantities map[string]float64) error {
	if len(quantities) == 0 {
		return nil
	}

	if err := u.gate.acquire(ctx); err != nil {
		return err
	}
	defer u.gate.release()

	cycleID, ledger, err := u.loadLedger(ctx)
	if err != nil {
		return err
	}

	for productID, newQuantity := range quantities {
		rec, ok := ledger[productID]
		if !ok {
			ledger[productID] = entities.VolumeRecord{OriginalQuantity: newQuantity}
			continue
		}
		if reserved := rec.TotalReserved(); reserved > newQuantity {
			log.Printf("[volume][usecase] resync clamped product=%s requested=%.3f committed=%.3f", productID, newQuantity, reserved)
			rec.OriginalQuantity = reserved
		} else {
			rec.OriginalQuantity = newQuantity
		}
		ledger[productID] = rec
	}

	if err := u.ledger.Put(ctx, cycleID, ledger); err != nil {
		return err
	}
	log.Printf("[volume][usecase] resync committed products=%d", len(quantities))
	return nil
}

// GetOrderVolumes returns a snapshot of the ledger for display. Reads do
// not take the gate; the store hands back a consistent document either way.
func (u *VolumeUseCase) GetOrderVolumes(ctx context.Context) (entities.VolumeLedger, error) {
	_, ledger, err := u.loadLedger(ctx)
	if err != nil {
		return nil, err
	}
	return ledger, nil
}

// CreateInitialLedger writes the ledger document for a freshly created
// cycle, one empty-reservation record per catalog product. Bootstrap runs
// before any confirmation can exist, so it takes no gate.
func (u *VolumeUseCase) CreateInitialLedger(ctx context.Context, cycleID string, volumes []InitialVolume) error {
	ledger := make(entities.VolumeLedger, len(volumes))
	for _, v := range volumes {
		ledger[v.ProductID] = entities.VolumeRecord{OriginalQuantity: v.Quantity}
	}
	if err := u.ledger.Create(ctx, cycleID, ledger); err != nil {
		return err
	}
	log.Printf("[volume][usecase] ledger bootstrapped cycle=%s products=%d", cycleID, len(volumes))
	return nil
}

// loadLedger resolves the active cycle and reads its freshest persisted
// ledger. Callers mutating the result must hold the gate.
func (u *VolumeUseCase) loadLedger(ctx context.Context) (string, entities.VolumeLedger, error) {
	cycle, err := u.cycles.GetCurrent(ctx)
	if err != nil {
		return "", nil, err
	}
	if cycle.ID == "" {
		return "", nil, ErrCycleNotFound
	}

	ledger, err := u.ledger.Get(ctx, cycle.ID)
	if err != nil {
		return "", nil, err
	}
	if ledger == nil {
		return "", nil, ErrLedgerNotFound
	}
	return cycle.ID, ledger, nil
}
