package engine

import (
	"database/sql"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// Open registers the feature functions and opens a SQLite database using the
// modernc.org/sqlite driver. Pass a file path or ":memory:".
//
// An in-memory database is private to a connection, so the pool is pinned to
// a single connection for ":memory:".
func Open(dsn string) (*sql.DB, error) {
	if err := RegisterFeatureFunctions(nil); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if dsn == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	return db, nil
}
