package catalog

import (
	"context"
	"database/sql"
)

const itemsSchema = `
CREATE TABLE IF NOT EXISTS items (
    name TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    doc TEXT NOT NULL,
    features BLOB,
    x REAL,
    y REAL
);
CREATE TABLE IF NOT EXISTS item_aliases (
    alias TEXT PRIMARY KEY,
    name TEXT NOT NULL REFERENCES items(name) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS items_position ON items(position);
`

// EnsureSchema creates the items and aliases tables if they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, itemsSchema)
	return err
}
