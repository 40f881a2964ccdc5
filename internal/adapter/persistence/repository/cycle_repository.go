package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"foodcoop_orders/internal/domain/entities"
	"foodcoop_orders/internal/usecase/interfaces"
)

const (
	cycleDocumentName      = "cycle.json"
	defaultWorkingFolderID = "coop-working-folder"
)

// SalesCycleDocumentRepository stores the campaign snapshot as cycle.json
// inside the working folder. There is exactly one current cycle: creating a
// new campaign overwrites the pointer document and orphans the previous
// cycle's container.

type SalesCycleDocumentRepository struct {
	store           interfaces.IDocumentStore
	workingFolderID string
}

var _ interfaces.ISalesCycleRepository = (*SalesCycleDocumentRepository)(nil)

func NewSalesCycleDocumentRepository(store interfaces.IDocumentStore) *SalesCycleDocumentRepository {
	return &SalesCycleDocumentRepository{
		store:           store,
		workingFolderID: getenvDefault("WORKING_FOLDER_ID", defaultWorkingFolderID),
	}
}

// GetCurrent returns the active campaign, or a zero cycle when none exists.
func (r *SalesCycleDocumentRepository) GetCurrent(ctx context.Context) (entities.SalesCycle, error) {
	id, err := r.store.FindByName(ctx, cycleDocumentName, r.workingFolderID)
	if err != nil {
		return entities.SalesCycle{}, err
	}
	if id == "" {
		return entities.SalesCycle{}, nil
	}

	body, err := r.store.Read(ctx, id)
	if err != nil {
		return entities.SalesCycle{}, err
	}
	if body == nil {
		return entities.SalesCycle{}, nil
	}

	var cycle entities.SalesCycle
	if err := json.Unmarshal(body, &cycle); err != nil {
		return entities.SalesCycle{}, fmt.Errorf("decode cycle document %s: %w", id, err)
	}
	return cycle, nil
}

// Create persists the new campaign, replacing the previous pointer document
// when one exists.
func (r *SalesCycleDocumentRepository) Create(ctx context.Context, cycle entities.SalesCycle) (entities.SalesCycle, error) {
	body, err := json.Marshal(cycle)
	if err != nil {
		return entities.SalesCycle{}, err
	}

	id, err := r.store.FindByName(ctx, cycleDocumentName, r.workingFolderID)
	if err != nil {
		return entities.SalesCycle{}, err
	}
	if id != "" {
		if err := r.store.Write(ctx, id, body); err != nil {
			return entities.SalesCycle{}, err
		}
		return cycle, nil
	}

	if _, err := r.store.Create(ctx, cycleDocumentName, r.workingFolderID, body); err != nil {
		return entities.SalesCycle{}, err
	}
	return cycle, nil
}
