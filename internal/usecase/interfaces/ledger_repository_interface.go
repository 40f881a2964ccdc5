package interfaces

import (
	"context"

	"foodcoop_orders/internal/domain/entities"
)

// ILedgerRepository persists the per-cycle volume ledger as one whole
// document. Implementations must not cache: Get always returns the freshest
// persisted value, since concurrent confirmations mutate the ledger between
// calls.
//
// Get returns a nil ledger when no ledger document exists for the cycle;
// the usecase maps that to its not-found error.

type ILedgerRepository interface {
	Get(ctx context.Context, cycleID string) (entities.VolumeLedger, error)
	Put(ctx context.Context, cycleID string, ledger entities.VolumeLedger) error
	Create(ctx context.Context, cycleID string, ledger entities.VolumeLedger) error
}
