package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dinewise/pos/internal/models"
	"github.com/dinewise/pos/internal/storage"
)

// CreateCategory inserts a new menu category.
func (s *SQLiteStore) CreateCategory(ctx context.Context, c *models.Category) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.CreatedAt == 0 {
		c.CreatedAt = time.Now().Unix()
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO categories (id, name, created_at) VALUES (?, ?, ?)",
		c.ID, c.Name, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

// GetCategory retrieves a category with its items.
func (s *SQLiteStore) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	c := &models.Category{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM categories WHERE id = ?", id,
	).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("category %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	items, err := s.itemsForCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Items = items
	return c, nil
}

// ListCategories returns all categories with their items embedded.
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, created_at FROM categories ORDER BY created_at, name")
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var cats []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	for i := range cats {
		items, err := s.itemsForCategory(ctx, cats[i].ID)
		if err != nil {
			return nil, err
		}
		cats[i].Items = items
	}
	return cats, nil
}

func (s *SQLiteStore) itemsForCategory(ctx context.Context, categoryID string) ([]models.MenuItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, category_id, name, price, food_type, is_special
		 FROM menu_items WHERE category_id = ? ORDER BY name`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu items: %w", err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var it models.MenuItem
		if err := rows.Scan(&it.ID, &it.CategoryID, &it.Name, &it.Price, &it.FoodType, &it.IsSpecial); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menu items: %w", err)
	}
	return items, nil
}

// RenameCategory updates a category's display name.
func (s *SQLiteStore) RenameCategory(ctx context.Context, id, name string) error {
	res, err := s.db.ExecContext(ctx, "UPDATE categories SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return fmt.Errorf("failed to rename category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rename result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("category %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

// DeleteCategory removes a category; its items go with it (FK cascade).
func (s *SQLiteStore) DeleteCategory(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("category %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

// CreateMenuItem inserts a new menu item into a category.
func (s *SQLiteStore) CreateMenuItem(ctx context.Context, item *models.MenuItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO menu_items (id, category_id, name, price, food_type, is_special)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		item.ID, item.CategoryID, item.Name, item.Price, item.FoodType, item.IsSpecial,
	)
	if err != nil {
		return fmt.Errorf("failed to insert menu item: %w", err)
	}
	return nil
}

// GetMenuItem retrieves a menu item by ID.
func (s *SQLiteStore) GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	it := &models.MenuItem{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, category_id, name, price, food_type, is_special
		 FROM menu_items WHERE id = ?`, id,
	).Scan(&it.ID, &it.CategoryID, &it.Name, &it.Price, &it.FoodType, &it.IsSpecial)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("menu item %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	return it, nil
}

// UpdateMenuItem rewrites a menu item's fields. Existing order lines keep
// their price snapshots.
func (s *SQLiteStore) UpdateMenuItem(ctx context.Context, item *models.MenuItem) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE menu_items SET name = ?, price = ?, food_type = ?, is_special = ?
		 WHERE id = ?`,
		item.Name, item.Price, item.FoodType, item.IsSpecial, item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update menu item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("menu item %s: %w", item.ID, storage.ErrNotFound)
	}
	return nil
}

// DeleteMenuItem removes a menu item.
func (s *SQLiteStore) DeleteMenuItem(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM menu_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("menu item %s: %w", id, storage.ErrNotFound)
	}
	return nil
}
