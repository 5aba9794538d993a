package models

// TableStatus is the occupancy state of a table.
type TableStatus string

const (
	TableAvailable TableStatus = "Available"
	TableOccupied  TableStatus = "Occupied"
)

// ValidTableStatus reports whether s is a known table status.
func ValidTableStatus(s TableStatus) bool {
	return s == TableAvailable || s == TableOccupied
}

// Table represents a physical or virtual table in the restaurant.
//
// Number is unique and auto-assigned on creation: the lowest unused positive
// integer is reused before the sequence grows (deleting table 2 out of 1,2,3
// makes the next table number 2, not 4).
type Table struct {
	// ID is the unique identifier for the table (UUID format).
	ID string `json:"id"`

	// Number is the staff-facing table number, unique across tables.
	Number int `json:"number"`

	// Status is Occupied iff a Pending order or Unpaid bill references this table.
	Status TableStatus `json:"status"`

	// CreatedAt is the Unix timestamp when the table was created.
	CreatedAt int64 `json:"created_at"`
}
