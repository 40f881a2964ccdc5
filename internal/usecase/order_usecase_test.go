package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"foodcoop_orders/internal/domain/entities"
	"foodcoop_orders/internal/usecase/interfaces/mocks"
)

// stubVolumeUseCase records what the order workflow asked of the ledger.
// A hand-rolled stub keeps the usecase package free of a mock import cycle.
type stubVolumeUseCase struct {
	registerErr error
	registered  []string
	initialErr  error
	initial     []InitialVolume
	updated     map[string]float64
	ledger      entities.VolumeLedger
}

var _ IVolumeUseCase = (*stubVolumeUseCase)(nil)

func (s *stubVolumeUseCase) RegisterOrderQuantities(_ context.Context, _ entities.Order, customerSlug string) error {
	s.registered = append(s.registered, customerSlug)
	return s.registerErr
}

func (s *stubVolumeUseCase) UpdateQuantities(_ context.Context, quantities map[string]float64) error {
	s.updated = quantities
	return nil
}

func (s *stubVolumeUseCase) GetOrderVolumes(_ context.Context) (entities.VolumeLedger, error) {
	return s.ledger, nil
}

func (s *stubVolumeUseCase) CreateInitialLedger(_ context.Context, _ string, volumes []InitialVolume) error {
	s.initial = volumes
	return s.initialErr
}

func testCycle(deadline time.Time) entities.SalesCycle {
	return entities.SalesCycle{
		ID:        "cycle-1",
		Deadline:  deadline,
		Customers: []entities.Customer{{Slug: "alice", Name: "Alice"}},
	}
}

func TestOrderUseCase_SaveDraft(t *testing.T) {
	ctx := context.Background()
	futureDeadline := time.Now().Add(24 * time.Hour)

	t.Run("upserts a draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mocks.NewMockIOrderRepository(ctrl)
		cycles := mocks.NewMockISalesCycleRepository(ctrl)
		uc := NewOrderUseCase(orders, cycles, &stubVolumeUseCase{}, nil)

		cycles.EXPECT().GetCurrent(ctx).Return(testCycle(futureDeadline), nil)
		orders.EXPECT().GetBySlug(ctx, "cycle-1", "alice").Return(entities.Order{}, nil)
		orders.EXPECT().Save(ctx, "cycle-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, order entities.Order) (entities.Order, error) {
				if order.Status != entities.OrderStatusDraft {
					t.Fatalf("expected draft status, got %s", order.Status)
				}
				if order.CustomerSlug != "alice" {
					t.Fatalf("expected slug alice, got %s", order.CustomerSlug)
				}
				if order.ConfirmationDateTime != nil {
					t.Fatalf("draft must not carry a confirmation time")
				}
				return order, nil
			})

		saved, err := uc.SaveDraft(ctx, "alice", entities.Order{Items: map[string]float64{"42": 2}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.Items["42"] != 2 {
			t.Fatalf("unexpected items: %+v", saved.Items)
		}
	})

	t.Run("rejects edits to a confirmed order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mocks.NewMockIOrderRepository(ctrl)
		cycles := mocks.NewMockISalesCycleRepository(ctrl)
		uc := NewOrderUseCase(orders, cycles, &stubVolumeUseCase{}, nil)

		cycles.EXPECT().GetCurrent(ctx).Return(testCycle(futureDeadline), nil)
		orders.EXPECT().GetBySlug(ctx, "cycle-1", "alice").
			Return(entities.Order{CustomerSlug: "alice", Status: entities.OrderStatusConfirmed}, nil)

		if _, err := uc.SaveDraft(ctx, "alice", entities.Order{}); !errors.Is(err, ErrOrderAlreadyConfirmed) {
			t.Fatalf("expected ErrOrderAlreadyConfirmed, got %v", err)
		}
	})

	t.Run("rejects negative quantities", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mocks.NewMockIOrderRepository(ctrl)
		cycles := mocks.NewMockISalesCycleRepository(ctrl)
		uc := NewOrderUseCase(orders, cycles, &stubVolumeUseCase{}, nil)

		cycles.EXPECT().GetCurrent(ctx).Return(testCycle(futureDeadline), nil)
		orders.EXPECT().GetBySlug(ctx, "cycle-1", "alice").Return(entities.Order{}, nil)

		_, err := uc.SaveDraft(ctx, "alice", entities.Order{Items: map[string]float64{"42": -1}})
		if !errors.Is(err, ErrInvalidOrderQuantities) {
			t.Fatalf("expected ErrInvalidOrderQuantities, got %v", err)
		}
	})

	t.Run("rejects a slug outside the customer list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mocks.NewMockIOrderRepository(ctrl)
		cycles := mocks.NewMockISalesCycleRepository(ctrl)
		uc := NewOrderUseCase(orders, cycles, &stubVolumeUseCase{}, nil)

		cycles.EXPECT().GetCurrent(ctx).Return(testCycle(futureDeadline), nil)

		if _, err := uc.SaveDraft(ctx, "mallory", entities.Order{}); !errors.Is(err, ErrUnknownCustomer) {
			t.Fatalf("expected ErrUnknownCustomer, got %v", err)
		}
	})

	t.Run("rejects a blank slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := NewOrderUseCase(mocks.NewMockIOrderRepository(ctrl), mocks.NewMockISalesCycleRepository(ctrl), &stubVolumeUseCase{}, nil)

		if _, err := uc.SaveDraft(ctx, "  ", entities.Order{}); !errors.Is(err, ErrInvalidCustomerSlug) {
			t.Fatalf("expected ErrInvalidCustomerSlug, got %v", err)
		}
	})
}

func TestOrderUseCase_Confirm(t *testing.T) {
	ctx := context.Background()
	futureDeadline := time.Now().Add(24 * time.Hour)
	draft := entities.Order{
		CustomerSlug: "alice",
		Status:       entities.OrderStatusDraft,
		Items:        map[string]float64{"42": 3},
	}

	t.Run("confirms and exports", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mocks.NewMockIOrderRepository(ctrl)
		cycles := mocks.NewMockISalesCycleRepository(ctrl)
		exporter := mocks.NewMockIOrderExporter(ctrl)
		volumes := &stubVolumeUseCase{}
		uc := NewOrderUseCase(orders, cycles, volumes, exporter)

		cycles.EXPECT().GetCurrent(ctx).Return(testCycle(futureDeadline), nil)
		orders.EXPECT().GetBySlug(ctx, "cycle-1", "alice").Return(draft, nil)
		orders.EXPECT().Save(ctx, "cycle-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, order entities.Order) (entities.Order, error) {
				if order.Status != entities.OrderStatusConfirmed {
					t.Fatalf("expected confirmed, got %s", order.Status)
				}
				if order.ConfirmationDateTime == nil {
					t.Fatalf("confirmation time not stamped")
				}
				return order, nil
			})
		exporter.EXPECT().ExportConfirmedOrder(ctx, "cycle-1", gomock.Any()).Return(nil)

		confirmed, err := uc.Confirm(ctx, "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if confirmed.Status != entities.OrderStatusConfirmed {
			t.Fatalf("unexpected status: %s", confirmed.Status)
		}
		if len(volumes.registered) != 1 || volumes.registered[0] != "alice" {
			t.Fatalf("reservation not registered: %+v", volumes.registered)
		}
	})

	t.Run("flags confirmations past the deadline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mocks.NewMockIOrderRepository(ctrl)
		cycles := mocks.NewMockISalesCycleRepository(ctrl)
		volumes := &stubVolumeUseCase{}
		uc := NewOrderUseCase(orders, cycles, volumes, nil)

		cycles.EXPECT().GetCurrent(ctx).Return(testCycle(time.Now().Add(-time.Hour)), nil)
		orders.EXPECT().GetBySlug(ctx, "cycle-1", "alice").Return(draft, nil)
		orders.EXPECT().Save(ctx, "cycle-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, order entities.Order) (entities.Order, error) {
				return order, nil
			})

		confirmed, err := uc.Confirm(ctx, "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if confirmed.Status != entities.OrderStatusTooLate {
			t.Fatalf("expected too_late, got %s", confirmed.Status)
		}
		// The reservation is still recorded; admins settle late orders by hand.
		if len(volumes.registered) != 1 {
			t.Fatalf("late confirmation must still reserve")
		}
	})

	t.Run("out of stock leaves the draft untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mocks.NewMockIOrderRepository(ctrl)
		cycles := mocks.NewMockISalesCycleRepository(ctrl)
		volumes := &stubVolumeUseCase{registerErr: &OutOfStockError{
			Shortfalls: []ProductShortfall{{ProductID: "42", Requested: 3, Available: 1}},
		}}
		uc := NewOrderUseCase(orders, cycles, volumes, nil)

		cycles.EXPECT().GetCurrent(ctx).Return(testCycle(futureDeadline), nil)
		orders.EXPECT().GetBySlug(ctx, "cycle-1", "alice").Return(draft, nil)
		// No Save expectation: the order document must stay a draft.

		_, err := uc.Confirm(ctx, "alice")
		var oos *OutOfStockError
		if !errors.As(err, &oos) {
			t.Fatalf("expected OutOfStockError, got %v", err)
		}
	})

	t.Run("rejects a second confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mocks.NewMockIOrderRepository(ctrl)
		cycles := mocks.NewMockISalesCycleRepository(ctrl)
		volumes := &stubVolumeUseCase{}
		uc := NewOrderUseCase(orders, cycles, volumes, nil)

		cycles.EXPECT().GetCurrent(ctx).Return(testCycle(futureDeadline), nil)
		orders.EXPECT().GetBySlug(ctx, "cycle-1", "alice").
			Return(entities.Order{CustomerSlug: "alice", Status: entities.OrderStatusConfirmed}, nil)

		if _, err := uc.Confirm(ctx, "alice"); !errors.Is(err, ErrOrderAlreadyConfirmed) {
			t.Fatalf("expected ErrOrderAlreadyConfirmed, got %v", err)
		}
		if len(volumes.registered) != 0 {
			t.Fatalf("double confirm must not reserve again")
		}
	})

	t.Run("missing order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mocks.NewMockIOrderRepository(ctrl)
		cycles := mocks.NewMockISalesCycleRepository(ctrl)
		uc := NewOrderUseCase(orders, cycles, &stubVolumeUseCase{}, nil)

		cycles.EXPECT().GetCurrent(ctx).Return(testCycle(futureDeadline), nil)
		orders.EXPECT().GetBySlug(ctx, "cycle-1", "alice").Return(entities.Order{}, nil)

		if _, err := uc.Confirm(ctx, "alice"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("export failure does not fail the confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mocks.NewMockIOrderRepository(ctrl)
		cycles := mocks.NewMockISalesCycleRepository(ctrl)
		exporter := mocks.NewMockIOrderExporter(ctrl)
		uc := NewOrderUseCase(orders, cycles, &stubVolumeUseCase{}, exporter)

		cycles.EXPECT().GetCurrent(ctx).Return(testCycle(futureDeadline), nil)
		orders.EXPECT().GetBySlug(ctx, "cycle-1", "alice").Return(draft, nil)
		orders.EXPECT().Save(ctx, "cycle-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, order entities.Order) (entities.Order, error) {
				return order, nil
			})
		exporter.EXPECT().ExportConfirmedOrder(ctx, "cycle-1", gomock.Any()).Return(errors.New("broker down"))

		if _, err := uc.Confirm(ctx, "alice"); err != nil {
			t.Fatalf("export failure must be best-effort, got %v", err)
		}
	})
}

func TestOrderUseCase_GetBySlug(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orders := mocks.NewMockIOrderRepository(ctrl)
	cycles := mocks.NewMockISalesCycleRepository(ctrl)
	uc := NewOrderUseCase(orders, cycles, &stubVolumeUseCase{}, nil)

	want := entities.Order{CustomerSlug: "alice", Status: entities.OrderStatusDraft}
	cycles.EXPECT().GetCurrent(ctx).Return(testCycle(time.Now().Add(time.Hour)), nil)
	orders.EXPECT().GetBySlug(ctx, "cycle-1", "alice").Return(want, nil)

	got, err := uc.GetBySlug(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CustomerSlug != "alice" || got.Status != entities.OrderStatusDraft {
		t.Fatalf("unexpected order: %+v", got)
	}
}
