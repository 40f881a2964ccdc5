package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"foodcoop_orders/internal/domain/entities"
	"foodcoop_orders/internal/usecase/interfaces"
)

var (
	ErrInvalidCustomerSlug    = errors.New("invalid customer slug")
	ErrUnknownCustomer        = errors.New("customer does not belong to the current cycle")
	ErrOrderNotFound          = errors.New("order not found")
	ErrOrderAlreadyConfirmed  = errors.New("order already confirmed")
	ErrInvalidOrderQuantities = errors.New("order quantities must not be negative")
)

// IOrderUseCase drives the customer order lifecycle: draft upserts while
// the customer composes, then a single confirmation that reserves pooled
// stock and hands the order to the ERP feed.

type IOrderUseCase interface {
	SaveDraft(ctx context.Context, slug string, order entities.Order) (entities.Order, error)
	GetBySlug(ctx context.Context, slug string) (entities.Order, error)
	Confirm(ctx context.Context, slug string) (entities.Order, error)
}

type OrderUseCase struct {
	orders   interfaces.IOrderRepository
	cycles   interfaces.ISalesCycleRepository
	volumes  IVolumeUseCase
	exporter interfaces.IOrderExporter
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

// NewOrderUseCase wires the confirmation workflow. exporter may be nil when
// no ERP feed is configured; confirmations then stay local.
func NewOrderUseCase(
	orders interfaces.IOrderRepository,
	cycles interfaces.ISalesCycleRepository,
	volumes IVolumeUseCase,
	exporter interfaces.IOrderExporter,
) *OrderUseCase {
	return &OrderUseCase{orders: orders, cycles: cycles, volumes: volumes, exporter: exporter}
}

// SaveDraft upserts the customer's draft order document. A confirmed or
// too-late order can no longer be edited.
func (u *OrderUseCase) SaveDraft(ctx context.Context, slug string, order entities.Order) (entities.Order, error) {
	cycle, existing, err := u.loadOrder(ctx, slug)
	if err != nil && !errors.Is(err, ErrOrderNotFound) {
		return entities.Order{}, err
	}
	if existing.Status != "" && existing.Status != entities.OrderStatusDraft {
		return entities.Order{}, ErrOrderAlreadyConfirmed
	}
	if hasNegativeQuantity(order.Items) || hasNegativeQuantity(order.NonLocalItems) {
		return entities.Order{}, ErrInvalidOrderQuantities
	}

	order.CustomerSlug = strings.TrimSpace(slug)
	order.Status = entities.OrderStatusDraft
	order.ConfirmationDateTime = nil

	saved, err := u.orders.Save(ctx, cycle.ID, order)
	if err != nil {
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] draft saved customer=%s items=%d", order.CustomerSlug, len(order.Items)+len(order.NonLocalItems))
	return saved, nil
}

func (u *OrderUseCase) GetBySlug(ctx context.Context, slug string) (entities.Order, error) {
	_, order, err := u.loadOrder(ctx, slug)
	return order, err
}

// Confirm transitions the customer's draft to confirmed, exactly once.
//
// Step order matters: the ledger reservation is attempted before the order
// document is rewritten, so a failed reservation leaves the draft intact
// and the customer can adjust quantities and retry. A confirmation arriving
// after the deadline still records its reservation but is flagged too_late
// for the administrators.
func (u *OrderUseCase) Confirm(ctx context.Context, slug string) (entities.Order, error) {
	cycle, order, err := u.loadOrder(ctx, slug)
	if err != nil {
		return entities.Order{}, err
	}
	if order.Status != entities.OrderStatusDraft {
		return entities.Order{}, ErrOrderAlreadyConfirmed
	}

	if err := u.volumes.RegisterOrderQuantities(ctx, order, order.CustomerSlug); err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	order.Status = entities.OrderStatusConfirmed
	if now.After(cycle.Deadline) {
		log.Printf("[order][usecase] confirmation past deadline customer=%s deadline=%s", order.CustomerSlug, cycle.Deadline.Format(time.RFC3339))
		order.Status = entities.OrderStatusTooLate
	}
	order.ConfirmationDateTime = &now

	saved, err := u.orders.Save(ctx, cycle.ID, order)
	if err != nil {
		// The reservation is already durable at this point; the order
		// document still says draft. Surface the error so the mismatch is
		// visible to operators instead of papering over it.
		log.Printf("[order][usecase] order write failed after reservation customer=%s err=%v", order.CustomerSlug, err)
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] order confirmed customer=%s status=%s", order.CustomerSlug, saved.Status)

	if u.exporter != nil {
		if err := u.exporter.ExportConfirmedOrder(ctx, cycle.ID, saved); err != nil {
			log.Printf("[order][usecase] export failed customer=%s err=%v", order.CustomerSlug, err)
		}
	}
	return saved, nil
}

// loadOrder resolves the current cycle, checks the slug against its
// customer list and fetches the customer's order document.
func (u *OrderUseCase) loadOrder(ctx context.Context, slug string) (entities.SalesCycle, entities.Order, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return entities.SalesCycle{}, entities.Order{}, ErrInvalidCustomerSlug
	}

	cycle, err := u.cycles.GetCurrent(ctx)
	if err != nil {
		return entities.SalesCycle{}, entities.Order{}, err
	}
	if cycle.ID == "" {
		return entities.SalesCycle{}, entities.Order{}, ErrCycleNotFound
	}
	if !cycle.HasCustomer(slug) {
		return entities.SalesCycle{}, entities.Order{}, ErrUnknownCustomer
	}

	order, err := u.orders.GetBySlug(ctx, cycle.ID, slug)
	if err != nil {
		return entities.SalesCycle{}, entities.Order{}, err
	}
	if order.Status == "" {
		return cycle, entities.Order{}, ErrOrderNotFound
	}
	return cycle, order, nil
}

func hasNegativeQuantity(items map[string]float64) bool {
	for _, qty := range items {
		if qty < 0 {
			return true
		}
	}
	return false
}
