package tree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRegion is returned for regions with non-finite or inverted bounds.
	ErrInvalidRegion = errors.New("tree: invalid region")
	// ErrDegenerate is returned when an insert would subdivide past the depth cap,
	// which happens for duplicate or near-duplicate coordinates.
	ErrDegenerate = errors.New("tree: degenerate subdivision")
)

// DepthError describes an insert rejected by the depth cap.
type DepthError struct {
	Label    string
	X, Y     float64
	Depth    int
	Occupant string
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("tree: inserting %q at (%g, %g) exceeds max depth %d (blocked by %q)", e.Label, e.X, e.Y, e.Depth, e.Occupant)
}

func (e *DepthError) Unwrap() error { return ErrDegenerate }
