package tree

import (
	"fmt"
	"math"
)

// Epsilon widens the upper edge of a Region to absorb rounding of scaled
// coordinates that land exactly on the maximum.
const Epsilon = 1e-10

// Region is an axis-aligned rectangle covering a node.
type Region struct {
	XMin, XMax float64
	YMin, YMax float64
}

// NewRegion validates and returns a region.
func NewRegion(xMin, xMax, yMin, yMax float64) (Region, error) {
	for _, v := range []float64{xMin, xMax, yMin, yMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Region{}, fmt.Errorf("%w: non-finite bound %v", ErrInvalidRegion, v)
		}
	}
	if xMin >= xMax || yMin >= yMax {
		return Region{}, fmt.Errorf("%w: [%v, %v] x [%v, %v]", ErrInvalidRegion, xMin, xMax, yMin, yMax)
	}
	return Region{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}, nil
}

// Contains reports whether (x, y) falls inside the region. The lower edges are
// inclusive, the upper edges are exclusive but widened by Epsilon.
func (r Region) Contains(x, y float64) bool {
	return x >= r.XMin && x < r.XMax+Epsilon && y >= r.YMin && y < r.YMax+Epsilon
}

// Center returns the geometric centre.
func (r Region) Center() (float64, float64) {
	return (r.XMin + r.XMax) / 2, (r.YMin + r.YMax) / 2
}

// Quadrant returns the sub-rectangle for q after splitting at the centre.
func (r Region) Quadrant(q Quadrant) Region {
	midX, midY := r.Center()
	switch q {
	case NE:
		return Region{XMin: midX, XMax: r.XMax, YMin: midY, YMax: r.YMax}
	case NW:
		return Region{XMin: r.XMin, XMax: midX, YMin: midY, YMax: r.YMax}
	case SW:
		return Region{XMin: r.XMin, XMax: midX, YMin: r.YMin, YMax: midY}
	default:
		return Region{XMin: midX, XMax: r.XMax, YMin: r.YMin, YMax: midY}
	}
}

// Within reports whether r lies inside outer.
func (r Region) Within(outer Region) bool {
	return r.XMin >= outer.XMin && r.XMax <= outer.XMax && r.YMin >= outer.YMin && r.YMax <= outer.YMax
}

func (r Region) String() string {
	return fmt.Sprintf("[%g, %g] x [%g, %g]", r.XMin, r.XMax, r.YMin, r.YMax)
}
