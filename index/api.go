package index

import "errors"

// ErrNotBuilt is returned by queries against an index that has not been built.
var ErrNotBuilt = errors.New("index: not built")

// Index is a neighbour index over labelled vectors.
type Index interface {
	// Build constructs the index from ids and their vectors. ids and vectors
	// must have the same length.
	Build(ids []string, vectors [][]float32) error

	// Similar returns up to k ids close to id, never id itself. An unknown id
	// yields an empty result.
	Similar(id string, k int) ([]string, error)
}
