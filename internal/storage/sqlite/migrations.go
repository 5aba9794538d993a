package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
//
// The two partial unique indexes back the "one open order / one unpaid bill
// per table" invariant at the storage layer, so concurrent first-order
// submissions for the same table cannot both create an open row.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    role TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS restaurant_tables (
    id TEXT PRIMARY KEY,
    number INTEGER NOT NULL UNIQUE,
    status TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS categories (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS menu_items (
    id TEXT PRIMARY KEY,
    category_id TEXT NOT NULL,
    name TEXT NOT NULL,
    price REAL NOT NULL,
    food_type TEXT NOT NULL DEFAULT '',
    is_special INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS orders (
    id TEXT PRIMARY KEY,
    table_id TEXT NOT NULL DEFAULT '',
    customer_name TEXT NOT NULL DEFAULT '',
    order_type TEXT NOT NULL,
    status TEXT NOT NULL,
    price REAL NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS order_items (
    id TEXT PRIMARY KEY,
    order_id TEXT NOT NULL,
    menu_item_id TEXT NOT NULL,
    name TEXT NOT NULL,
    price REAL NOT NULL,
    quantity INTEGER NOT NULL,
    food_type TEXT NOT NULL DEFAULT '',
    special_instructions TEXT NOT NULL DEFAULT '',
    is_cancelled INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS bills (
    id TEXT PRIMARY KEY,
    table_id TEXT NOT NULL DEFAULT '',
    table_number INTEGER NOT NULL DEFAULT 0,
    total_amount REAL NOT NULL DEFAULT 0,
    discount_value REAL NOT NULL DEFAULT 0,
    final_amount REAL NOT NULL DEFAULT 0,
    status TEXT NOT NULL,
    payment_method TEXT NOT NULL DEFAULT '',
    payment_cash REAL NOT NULL DEFAULT 0,
    payment_online REAL NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL,
    paid_at INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS bill_orders (
    bill_id TEXT NOT NULL,
    order_id TEXT NOT NULL,
    PRIMARY KEY (bill_id, order_id),
    FOREIGN KEY (bill_id) REFERENCES bills(id) ON DELETE CASCADE
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_one_pending_per_table
    ON orders(table_id) WHERE status = 'Pending' AND table_id <> '';
CREATE UNIQUE INDEX IF NOT EXISTS idx_bills_one_unpaid_per_table
    ON bills(table_id) WHERE status = 'Unpaid' AND table_id <> '';

CREATE INDEX IF NOT EXISTS idx_menu_items_category_id ON menu_items(category_id);
CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);
CREATE INDEX IF NOT EXISTS idx_orders_table_id ON orders(table_id);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);
CREATE INDEX IF NOT EXISTS idx_bills_table_id ON bills(table_id);
CREATE INDEX IF NOT EXISTS idx_bills_paid_at ON bills(paid_at);
CREATE INDEX IF NOT EXISTS idx_bill_orders_bill_id ON bill_orders(bill_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
