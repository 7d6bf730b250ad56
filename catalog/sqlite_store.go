package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/viant/quadrec/vector"
)

// SQLiteStore persists items, their feature vectors and 2-D coordinates.
// Feature similarity queries rely on the feature_cosine SQL function
// registered by engine.RegisterFeatureFunctions.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore ensures the schema and returns a store over db.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("catalog: db is nil")
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("catalog: ensure schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// SaveItems replaces the stored items and aliases with items; position
// follows slice order. Features and coordinates of the previous items are
// dropped with them.
func (s *SQLiteStore) SaveItems(ctx context.Context, items []*Item) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"item_aliases", "items"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("catalog: clear %s: %w", table, err)
		}
	}

	itemStmt, err := tx.PrepareContext(ctx, `INSERT INTO items(name, position, doc) VALUES(?, ?, ?)
ON CONFLICT(name) DO UPDATE SET position = excluded.position, doc = excluded.doc`)
	if err != nil {
		return err
	}
	defer itemStmt.Close()
	aliasStmt, err := tx.PrepareContext(ctx, `INSERT INTO item_aliases(alias, name) VALUES(?, ?)
ON CONFLICT(alias) DO UPDATE SET name = excluded.name`)
	if err != nil {
		return err
	}
	defer aliasStmt.Close()

	for n, item := range items {
		doc, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("catalog: encode %s: %w", item.Name, err)
		}
		if _, err := itemStmt.ExecContext(ctx, item.Name, n, string(doc)); err != nil {
			return fmt.Errorf("catalog: save %s: %w", item.Name, err)
		}
		for _, alias := range item.Aliases {
			if _, err := aliasStmt.ExecContext(ctx, alias, item.Name); err != nil {
				return fmt.Errorf("catalog: save alias %s: %w", alias, err)
			}
		}
	}
	return tx.Commit()
}

// SaveEmbeddings stores the packed feature vector and 2-D coordinate of each
// named item. coords may be nil.
func (s *SQLiteStore) SaveEmbeddings(ctx context.Context, names []string, features [][]float32, coords [][]float32) error {
	if len(names) != len(features) || (coords != nil && len(coords) != len(names)) {
		return fmt.Errorf("catalog: embeddings length mismatch: %d names, %d features, %d coords", len(names), len(features), len(coords))
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `UPDATE items SET features = ?, x = ?, y = ? WHERE name = ?`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for n, name := range names {
		var x, y interface{}
		if coords != nil {
			if len(coords[n]) != 2 {
				return fmt.Errorf("catalog: coordinate for %s has %d dimensions", name, len(coords[n]))
			}
			x, y = float64(coords[n][0]), float64(coords[n][1])
		}
		res, err := stmt.ExecContext(ctx, vector.PackFeatures(features[n]), x, y, name)
		if err != nil {
			return fmt.Errorf("catalog: save embedding %s: %w", name, err)
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return fmt.Errorf("catalog: save embedding: unknown item %q", name)
		}
	}
	return tx.Commit()
}

// LoadItems returns stored items in position order.
func (s *SQLiteStore) LoadItems(ctx context.Context) ([]*Item, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT doc FROM items ORDER BY position, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Item
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		item := &Item{}
		if err := json.Unmarshal([]byte(doc), item); err != nil {
			return nil, fmt.Errorf("catalog: decode item: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// Coordinates returns the names and 2-D coordinates of items that have one.
func (s *SQLiteStore) Coordinates(ctx context.Context) ([]string, [][]float32, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, x, y FROM items WHERE x IS NOT NULL AND y IS NOT NULL ORDER BY position, name`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var names []string
	var coords [][]float32
	for rows.Next() {
		var name string
		var x, y float64
		if err := rows.Scan(&name, &x, &y); err != nil {
			return nil, nil, err
		}
		names = append(names, name)
		coords = append(coords, []float32{float32(x), float32(y)})
	}
	return names, coords, rows.Err()
}

// Resolve maps an alias or primary name to the stored primary name.
func (s *SQLiteStore) Resolve(ctx context.Context, name string) (string, bool, error) {
	var primary string
	err := s.db.QueryRowContext(ctx, `SELECT name FROM items WHERE name = ?
UNION ALL SELECT name FROM item_aliases WHERE alias = ? LIMIT 1`, name, name).Scan(&primary)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return primary, true, nil
}

// SimilarByFeatures ranks stored items by feature_cosine against name's
// features, most similar first, excluding name itself.
func (s *SQLiteStore) SimilarByFeatures(ctx context.Context, name string, k int) ([]string, error) {
	if k <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, `SELECT o.name
FROM items q JOIN items o ON o.name <> q.name
WHERE q.name = ? AND q.features IS NOT NULL AND o.features IS NOT NULL
ORDER BY feature_cosine(q.features, o.features) DESC, o.position
LIMIT ?`, name, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var other string
		if err := rows.Scan(&other); err != nil {
			return nil, err
		}
		out = append(out, other)
	}
	return out, rows.Err()
}
