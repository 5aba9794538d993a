package models

// Category groups menu items (e.g. "Starters", "Beverages").
type Category struct {
	// ID is the unique identifier for the category (UUID format).
	ID string `json:"id"`

	// Name is the display name of the category.
	Name string `json:"name"`

	// Items are the menu items in this category.
	Items []MenuItem `json:"items"`

	// CreatedAt is the Unix timestamp when the category was created.
	CreatedAt int64 `json:"created_at"`
}

// MenuItem is one sellable item inside a category.
//
// The price here is the current menu price. Orders copy it into their line
// items at add-time, so editing a menu item never changes an existing order.
type MenuItem struct {
	// ID is the unique identifier for the item (UUID format).
	ID string `json:"id"`

	// CategoryID is the owning category.
	CategoryID string `json:"category_id"`

	// Name is the display name of the item.
	Name string `json:"name"`

	// Price is the current menu price. Never negative.
	Price float64 `json:"price"`

	// FoodType classifies the item (e.g. "veg", "non-veg").
	FoodType string `json:"food_type"`

	// IsSpecial marks the item as a daily special.
	IsSpecial bool `json:"is_special"`
}
