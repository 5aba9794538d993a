// Package models defines the core domain models for the POS backend.
//
// The entities mirror one service cycle at a physical table:
//   - Table: a seat group with an occupancy status
//   - Category / MenuItem: the menu, read-mostly
//   - Order: one kitchen ticket holding line-item snapshots
//   - Bill: the payable aggregate over a table's orders for one occupancy
//   - User: a staff account (waiter, admin, chef)
//
// # Design Principles
//
// 1. Line items snapshot the menu price at add-time; later menu edits never
// rewrite existing orders.
// 2. Derived totals (Order.Price, Bill.TotalAmount, Bill.FinalAmount) are stored,
// not recomputed on read, and are kept consistent by the service layer.
// 3. Relationships use ID strings rather than pointers to avoid circular
// references; Bill additionally denormalizes the table number for display.
package models
