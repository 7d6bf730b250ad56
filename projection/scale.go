package projection

import (
	"fmt"
	"math"
)

// Bounds are the per-axis extremes of a point set.
type Bounds struct {
	Min [2]float64 `json:"min"`
	Max [2]float64 `json:"max"`
}

// Scale maps each axis of points linearly onto [lo, hi]. A zero-range axis
// maps to the midpoint. It returns the scaled points and their new bounds.
func Scale(points [][]float64, lo, hi float64) ([][]float32, Bounds, error) {
	if !(lo < hi) {
		return nil, Bounds{}, fmt.Errorf("projection: invalid scale range [%v, %v]", lo, hi)
	}
	if len(points) == 0 {
		return nil, Bounds{}, nil
	}
	src := Bounds{
		Min: [2]float64{math.Inf(1), math.Inf(1)},
		Max: [2]float64{math.Inf(-1), math.Inf(-1)},
	}
	for n, p := range points {
		if len(p) != 2 {
			return nil, Bounds{}, fmt.Errorf("projection: point %d has %d dimensions, want 2", n, len(p))
		}
		for d := 0; d < 2; d++ {
			src.Min[d] = math.Min(src.Min[d], p[d])
			src.Max[d] = math.Max(src.Max[d], p[d])
		}
	}
	out := make([][]float32, len(points))
	dst := Bounds{
		Min: [2]float64{math.Inf(1), math.Inf(1)},
		Max: [2]float64{math.Inf(-1), math.Inf(-1)},
	}
	for n, p := range points {
		q := make([]float32, 2)
		for d := 0; d < 2; d++ {
			v := (lo + hi) / 2
			if span := src.Max[d] - src.Min[d]; span > 0 {
				v = (p[d]-src.Min[d])/span*(hi-lo) + lo
			}
			q[d] = float32(v)
			dst.Min[d] = math.Min(dst.Min[d], float64(q[d]))
			dst.Max[d] = math.Max(dst.Max[d], float64(q[d]))
		}
		out[n] = q
	}
	return out, dst, nil
}
