// Package engine provides helpers for working with the modernc.org/sqlite
// driver: opening connections and registering the scalar functions that
// score feature vectors stored as BLOBs.
package engine
