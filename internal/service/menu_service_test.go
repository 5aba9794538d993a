package service

import (
	"context"
	"errors"
	"testing"
)

func TestMenuCategoryLifecycle(t *testing.T) {
	store := newTestStore(t)
	menu := NewMenuService(store)
	ctx := context.Background()

	category, err := menu.CreateCategory(ctx, "  Starters  ")
	if err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}
	if category.Name != "Starters" {
		t.Errorf("name = %q, want trimmed %q", category.Name, "Starters")
	}

	if _, err := menu.CreateCategory(ctx, "   "); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("blank name error = %v, want %v", err, ErrInvalidInput)
	}

	if err := menu.RenameCategory(ctx, category.ID, "Appetizers"); err != nil {
		t.Fatalf("RenameCategory failed: %v", err)
	}
	if err := menu.RenameCategory(ctx, "nope", "X"); !errors.Is(err, ErrNotFound) {
		t.Errorf("rename unknown category error = %v, want %v", err, ErrNotFound)
	}

	cats, err := menu.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(cats) != 1 || cats[0].Name != "Appetizers" {
		t.Errorf("categories = %+v, want one named Appetizers", cats)
	}

	if err := menu.DeleteCategory(ctx, category.ID); err != nil {
		t.Fatalf("DeleteCategory failed: %v", err)
	}
	if err := menu.DeleteCategory(ctx, category.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete error = %v, want %v", err, ErrNotFound)
	}
}

func TestMenuItemLifecycle(t *testing.T) {
	store := newTestStore(t)
	menu := NewMenuService(store)
	ctx := context.Background()

	category, err := menu.CreateCategory(ctx, "Mains")
	if err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}

	item, err := menu.AddItem(ctx, category.ID, AddMenuItemParams{
		Name: "Butter Chicken", Price: 220, FoodType: "non-veg", IsSpecial: true,
	})
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	tests := []struct {
		name       string
		categoryID string
		params     AddMenuItemParams
		wantErr    error
	}{
		{
			name: "blank name", categoryID: category.ID,
			params: AddMenuItemParams{Price: 10}, wantErr: ErrInvalidInput,
		},
		{
			name: "negative price", categoryID: category.ID,
			params: AddMenuItemParams{Name: "X", Price: -1}, wantErr: ErrInvalidInput,
		},
		{
			name: "unknown category", categoryID: "nope",
			params: AddMenuItemParams{Name: "X", Price: 10}, wantErr: ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := menu.AddItem(ctx, tt.categoryID, tt.params); !errors.Is(err, tt.wantErr) {
				t.Errorf("AddItem error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	updated, err := menu.UpdateItem(ctx, item.ID, AddMenuItemParams{
		Name: "Butter Chicken", Price: 240, FoodType: "non-veg",
	})
	if err != nil {
		t.Fatalf("UpdateItem failed: %v", err)
	}
	if updated.Price != 240 || updated.IsSpecial {
		t.Errorf("updated item = %+v, want price 240 and not special", updated)
	}

	if err := menu.DeleteItem(ctx, item.ID); err != nil {
		t.Fatalf("DeleteItem failed: %v", err)
	}
	if _, err := menu.UpdateItem(ctx, item.ID, AddMenuItemParams{Name: "X", Price: 1}); !errors.Is(err, ErrNotFound) {
		t.Errorf("update deleted item error = %v, want %v", err, ErrNotFound)
	}
}
