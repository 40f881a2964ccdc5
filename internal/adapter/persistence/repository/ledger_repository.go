package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"foodcoop_orders/internal/domain/entities"
	"foodcoop_orders/internal/usecase/interfaces"
)

const ledgerDocumentName = "volumes.json"

// LedgerDocumentRepository stores the volume ledger as one JSON document
// per cycle container. The document is always read and written whole; the
// merge logic lives in the usecase so a backend with partial updates could
// replace this file without touching the reservation algorithm.

type LedgerDocumentRepository struct {
	store interfaces.IDocumentStore
}

var _ interfaces.ILedgerRepository = (*LedgerDocumentRepository)(nil)

func NewLedgerDocumentRepository(store interfaces.IDocumentStore) *LedgerDocumentRepository {
	return &LedgerDocumentRepository{store: store}
}

// Get reads the freshest persisted ledger; nil when the cycle has none.
func (r *LedgerDocumentRepository) Get(ctx context.Context, cycleID string) (entities.VolumeLedger, error) {
	id, err := r.store.FindByName(ctx, ledgerDocumentName, cycleID)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, nil
	}

	body, err := r.store.Read(ctx, id)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	var ledger entities.VolumeLedger
	if err := json.Unmarshal(body, &ledger); err != nil {
		return nil, fmt.Errorf("decode ledger document %s: %w", id, err)
	}
	if ledger == nil {
		ledger = entities.VolumeLedger{}
	}
	return ledger, nil
}

// Put rewrites the whole ledger document.
func (r *LedgerDocumentRepository) Put(ctx context.Context, cycleID string, ledger entities.VolumeLedger) error {
	id, err := r.store.FindByName(ctx, ledgerDocumentName, cycleID)
	if err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("ledger document missing for cycle %s", cycleID)
	}

	body, err := json.Marshal(ledger)
	if err != nil {
		return err
	}
	return r.store.Write(ctx, id, body)
}

// Create writes the bootstrap ledger for a new cycle.
func (r *LedgerDocumentRepository) Create(ctx context.Context, cycleID string, ledger entities.VolumeLedger) error {
	body, err := json.Marshal(ledger)
	if err != nil {
		return err
	}
	_, err = r.store.Create(ctx, ledgerDocumentName, cycleID, body)
	return err
}
