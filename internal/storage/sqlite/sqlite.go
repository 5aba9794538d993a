// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/dinewise/pos/internal/models"
	"github.com/dinewise/pos/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// CreateTable inserts a new table, assigning the lowest unused positive
// number inside the transaction so gap reuse survives concurrent creates
// (the UNIQUE index on number rejects the loser).
func (s *SQLiteStore) CreateTable(ctx context.Context, table *models.Table) error {
	if table.ID == "" {
		table.ID = uuid.New().String()
	}
	if table.CreatedAt == 0 {
		table.CreatedAt = time.Now().Unix()
	}
	if table.Status == "" {
		table.Status = models.TableAvailable
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, "SELECT number FROM restaurant_tables ORDER BY number")
	if err != nil {
		return fmt.Errorf("failed to list table numbers: %w", err)
	}
	next := 1
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan table number: %w", err)
		}
		if n > next {
			break // found a gap
		}
		if n == next {
			next++
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate table numbers: %w", err)
	}
	table.Number = next

	_, err = tx.ExecContext(ctx,
		"INSERT INTO restaurant_tables (id, number, status, created_at) VALUES (?, ?, ?, ?)",
		table.ID, table.Number, table.Status, table.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("table number %d: %w", table.Number, storage.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to insert table: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetTable retrieves a table by ID.
func (s *SQLiteStore) GetTable(ctx context.Context, id string) (*models.Table, error) {
	t := &models.Table{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, number, status, created_at FROM restaurant_tables WHERE id = ?", id,
	).Scan(&t.ID, &t.Number, &t.Status, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("table %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get table: %w", err)
	}
	return t, nil
}

// ListTables returns all tables sorted by number.
func (s *SQLiteStore) ListTables(ctx context.Context) ([]models.Table, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, number, status, created_at FROM restaurant_tables ORDER BY number")
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []models.Table
	for rows.Next() {
		var t models.Table
		if err := rows.Scan(&t.ID, &t.Number, &t.Status, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan table: %w", err)
		}
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tables: %w", err)
	}
	return tables, nil
}

// UpdateTableStatus sets the occupancy status of a table.
func (s *SQLiteStore) UpdateTableStatus(ctx context.Context, id string, status models.TableStatus) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE restaurant_tables SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return fmt.Errorf("failed to update table status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("table %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

// DeleteTable removes a table.
func (s *SQLiteStore) DeleteTable(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM restaurant_tables WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete table: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("table %s: %w", id, storage.ErrNotFound)
	}
	return nil
}
