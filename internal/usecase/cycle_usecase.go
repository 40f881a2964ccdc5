package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"foodcoop_orders/internal/domain/entities"
	"foodcoop_orders/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEmptyCatalog   = errors.New("cycle catalog must contain at least one product")
	ErrInvalidDates   = errors.New("cycle deadline must precede the delivery date")
	ErrEmptyCustomers = errors.New("cycle must contain at least one customer")
)

// NewCycleInput carries everything an administrator submits to open a new
// campaign. The upstream spreadsheet sync produces these lists.
type NewCycleInput struct {
	Deadline         time.Time
	DeliveryDate     time.Time
	Products         []entities.Product
	NonLocalProducts []entities.NonLocalProduct
	Customers        []entities.Customer
	DeliverySchemes  []entities.DeliveryScheme
}

// ICycleUseCase manages the campaign lifecycle: creation (which bootstraps
// the volume ledger), the cached current-cycle snapshot, and the mid-cycle
// quantity resync.

type ICycleUseCase interface {
	Create(ctx context.Context, input NewCycleInput) (entities.SalesCycle, error)
	Current(ctx context.Context) (entities.SalesCycle, error)
	ResyncQuantities(ctx context.Context, quantities map[string]float64) error
}

type CycleUseCase struct {
	repo    interfaces.ISalesCycleRepository
	volumes IVolumeUseCase
	cache   interfaces.ICycleCache

	mu       sync.RWMutex
	snapshot *entities.SalesCycle
}

var _ ICycleUseCase = (*CycleUseCase)(nil)

func NewCycleUseCase(repo interfaces.ISalesCycleRepository, volumes IVolumeUseCase, cache interfaces.ICycleCache) *CycleUseCase {
	return &CycleUseCase{repo: repo, volumes: volumes, cache: cache}
}

// Create opens a new campaign: persists the cycle document and bootstraps
// its volume ledger from the catalog's offered quantities. The previous
// campaign's documents are orphaned by the new cycle pointer.
func (u *CycleUseCase) Create(ctx context.Context, input NewCycleInput) (entities.SalesCycle, error) {
	if len(input.Products) == 0 {
		return entities.SalesCycle{}, ErrEmptyCatalog
	}
	if len(input.Customers) == 0 {
		return entities.SalesCycle{}, ErrEmptyCustomers
	}
	if !input.Deadline.Before(input.DeliveryDate) {
		return entities.SalesCycle{}, ErrInvalidDates
	}

	cycle := entities.SalesCycle{
		ID:               uuid.NewString(),
		CreationDate:     time.Now().UTC(),
		Deadline:         input.Deadline.UTC(),
		DeliveryDate:     input.DeliveryDate.UTC(),
		Products:         input.Products,
		NonLocalProducts: input.NonLocalProducts,
		Customers:        input.Customers,
		DeliverySchemes:  input.DeliverySchemes,
	}

	created, err := u.repo.Create(ctx, cycle)
	if err != nil {
		return entities.SalesCycle{}, err
	}

	volumes := make([]InitialVolume, 0, len(created.Products))
	for _, p := range created.Products {
		volumes = append(volumes, InitialVolume{ProductID: p.ID, Quantity: p.OfferedQuantity})
	}
	if err := u.volumes.CreateInitialLedger(ctx, created.ID, volumes); err != nil {
		return entities.SalesCycle{}, err
	}

	u.storeSnapshot(ctx, created)
	log.Printf("[cycle][usecase] cycle created id=%s products=%d customers=%d", created.ID, len(created.Products), len(created.Customers))
	return created, nil
}

// Current serves the campaign snapshot for the order form: in-memory copy
// first, then the shared cache, then the store.
func (u *CycleUseCase) Current(ctx context.Context) (entities.SalesCycle, error) {
	u.mu.RLock()
	if u.snapshot != nil {
		cycle := *u.snapshot
		u.mu.RUnlock()
		return cycle, nil
	}
	u.mu.RUnlock()

	if u.cache != nil {
		cached, ok, err := u.cache.Get(ctx)
		if err != nil {
			log.Printf("[cycle][usecase] cache read failed err=%v", err)
		} else if ok {
			u.mu.Lock()
			u.snapshot = cached
			u.mu.Unlock()
			return *cached, nil
		}
	}

	cycle, err := u.repo.GetCurrent(ctx)
	if err != nil {
		return entities.SalesCycle{}, err
	}
	if cycle.ID == "" {
		return entities.SalesCycle{}, ErrCycleNotFound
	}

	u.storeSnapshot(ctx, cycle)
	return cycle, nil
}

// ResyncQuantities forwards the re-imported offered quantities to the
// ledger merge. The cycle document itself stays untouched: its quantities
// are a campaign-creation snapshot, and the ledger alone says what is still
// available.
func (u *CycleUseCase) ResyncQuantities(ctx context.Context, quantities map[string]float64) error {
	return u.volumes.UpdateQuantities(ctx, quantities)
}

func (u *CycleUseCase) storeSnapshot(ctx context.Context, cycle entities.SalesCycle) {
	u.mu.Lock()
	u.snapshot = &cycle
	u.mu.Unlock()

	if u.cache != nil {
		if err := u.cache.Set(ctx, &cycle); err != nil {
			log.Printf("[cycle][usecase] cache write failed err=%v", err)
		}
	}
}
