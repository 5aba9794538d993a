package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dinewise/pos/internal/models"
	"github.com/dinewise/pos/internal/storage"
)

// MenuService manages the category → item price list. Prices set here are
// snapshots-at-source only: orders copy the price at add-time, so edits never
// touch existing tickets.
type MenuService struct {
	store storage.Store
}

// NewMenuService creates a MenuService backed by the given store.
func NewMenuService(store storage.Store) *MenuService {
	return &MenuService{store: store}
}

// CreateCategory adds a new menu category.
func (s *MenuService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidf("category name is required")
	}
	c := &models.Category{Name: name}
	if err := s.store.CreateCategory(ctx, c); err != nil {
		return nil, mapStoreErr(err)
	}
	slog.Info("category created", "category_id", c.ID, "name", c.Name)
	return c, nil
}

// ListCategories returns all categories with their items.
func (s *MenuService) ListCategories(ctx context.Context) ([]models.Category, error) {
	cats, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return cats, nil
}

// RenameCategory changes a category's display name.
func (s *MenuService) RenameCategory(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return invalidf("category name is required")
	}
	return mapStoreErr(s.store.RenameCategory(ctx, id, name))
}

// DeleteCategory removes a category and its items.
func (s *MenuService) DeleteCategory(ctx context.Context, id string) error {
	return mapStoreErr(s.store.DeleteCategory(ctx, id))
}

// AddMenuItemParams are the fields for a new or updated menu item.
type AddMenuItemParams struct {
	Name      string
	Price     float64
	FoodType  string
	IsSpecial bool
}

// AddItem creates a menu item inside a category.
func (s *MenuService) AddItem(ctx context.Context, categoryID string, p AddMenuItemParams) (*models.MenuItem, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return nil, invalidf("item name is required")
	}
	if p.Price < 0 {
		return nil, invalidf("price cannot be negative")
	}
	if _, err := s.store.GetCategory(ctx, categoryID); err != nil {
		return nil, mapStoreErr(err)
	}

	item := &models.MenuItem{
		CategoryID: categoryID,
		Name:       p.Name,
		Price:      p.Price,
		FoodType:   p.FoodType,
		IsSpecial:  p.IsSpecial,
	}
	if err := s.store.CreateMenuItem(ctx, item); err != nil {
		return nil, mapStoreErr(err)
	}
	slog.Info("menu item created", "item_id", item.ID, "name", item.Name, "price", item.Price)
	return item, nil
}

// UpdateItem rewrites a menu item. Existing order lines keep their snapshots.
func (s *MenuService) UpdateItem(ctx context.Context, itemID string, p AddMenuItemParams) (*models.MenuItem, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return nil, invalidf("item name is required")
	}
	if p.Price < 0 {
		return nil, invalidf("price cannot be negative")
	}
	item, err := s.store.GetMenuItem(ctx, itemID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	item.Name = p.Name
	item.Price = p.Price
	item.FoodType = p.FoodType
	item.IsSpecial = p.IsSpecial
	if err := s.store.UpdateMenuItem(ctx, item); err != nil {
		return nil, mapStoreErr(err)
	}
	return item, nil
}

// DeleteItem removes a menu item.
func (s *MenuService) DeleteItem(ctx context.Context, itemID string) error {
	return mapStoreErr(s.store.DeleteMenuItem(ctx, itemID))
}
