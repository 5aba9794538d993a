package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dinewise/pos/internal/models"
	"github.com/dinewise/pos/internal/storage"
)

// TableService manages the table registry: creation with gap-reused numbers,
// occupancy status, and deletion.
type TableService struct {
	store storage.Store
}

// NewTableService creates a TableService backed by the given store.
func NewTableService(store storage.Store) *TableService {
	return &TableService{store: store}
}

// Create adds a new table. The number is assigned by the store: the lowest
// unused positive integer, so deleted numbers are reused before the sequence
// grows.
func (s *TableService) Create(ctx context.Context) (*models.Table, error) {
	table := &models.Table{Status: models.TableAvailable}
	if err := s.store.CreateTable(ctx, table); err != nil {
		return nil, mapStoreErr(err)
	}
	slog.Info("table created", "table_id", table.ID, "number", table.Number)
	return table, nil
}

// Get returns one table.
func (s *TableService) Get(ctx context.Context, id string) (*models.Table, error) {
	table, err := s.store.GetTable(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return table, nil
}

// List returns all tables sorted by number.
func (s *TableService) List(ctx context.Context) ([]models.Table, error) {
	tables, err := s.store.ListTables(ctx)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return tables, nil
}

// SetStatus manually flips a table's occupancy (staff seating a party before
// the first order lands).
func (s *TableService) SetStatus(ctx context.Context, id string, status models.TableStatus) (*models.Table, error) {
	if !models.ValidTableStatus(status) {
		return nil, invalidf("unknown table status %q", status)
	}
	table, err := s.store.GetTable(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if err := s.store.UpdateTableStatus(ctx, id, status); err != nil {
		return nil, mapStoreErr(err)
	}
	table.Status = status
	return table, nil
}

// Delete removes a table. Occupied tables cannot be deleted; their open
// order and bill must be settled or moved first.
func (s *TableService) Delete(ctx context.Context, id string) error {
	table, err := s.store.GetTable(ctx, id)
	if err != nil {
		return mapStoreErr(err)
	}
	if table.Status == models.TableOccupied {
		return conflictf("table %d is occupied", table.Number)
	}
	if err := s.store.DeleteTable(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	slog.Info("table deleted", "table_id", id, "number", table.Number)
	return nil
}

// isNotFound reports whether err is the storage or service not-found sentinel.
func isNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound) || errors.Is(err, ErrNotFound)
}
