package vector

import (
	"fmt"

	"github.com/viant/vec/search"
)

// CosineSimilarity computes the cosine similarity between two vectors. It
// returns an error if the vectors have different lengths or if either vector
// has zero magnitude.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector: cosine similarity dimension mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("vector: cosine similarity on empty vectors")
	}
	va := search.Float32s(a)
	ma := va.Magnitude()
	mb := search.Float32s(b).Magnitude()
	if ma == 0 || mb == 0 {
		return 0, fmt.Errorf("vector: cosine similarity with zero-magnitude vector")
	}
	return 1 - float64(CosineDistanceWithMagnitude(va, b, ma, mb)), nil
}

// CosineDistanceWithMagnitude returns 1 - cosine similarity of a and b given
// their precomputed magnitudes. A zero magnitude gives distance 1; mismatched
// lengths give 0, matching search.Float32s.CosineDistance.
func CosineDistanceWithMagnitude(a, b []float32, ma, mb float32) float32 {
	if ma == 0 || mb == 0 {
		return 1
	}
	if len(a) != len(b) {
		return 0
	}
	var dot float32
	for i := range a {
		dot += a[i] * b[i]
	}
	return 1 - float32(float64(dot)/(float64(ma)*float64(mb)))
}

// L2Distance computes the Euclidean (L2) distance between two vectors. It
// returns an error if the vectors have different lengths.
func L2Distance(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector: L2 distance dimension mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}
	return float64(search.Float32s(a).EuclideanDistance(b)), nil
}

// CosineDistanceMatrix returns the symmetric matrix of 1 - cosine similarity
// for every pair of rows. The diagonal is 0; a zero-magnitude row has
// similarity 0 (distance 1) to every other row.
func CosineDistanceMatrix(rows [][]float32) ([][]float64, error) {
	n := len(rows)
	if n == 0 {
		return nil, nil
	}
	dim := len(rows[0])
	mags := make([]float32, n)
	for i, row := range rows {
		if len(row) != dim {
			return nil, fmt.Errorf("vector: row %d dimension %d != %d", i, len(row), dim)
		}
		mags[i] = search.Float32s(row).Magnitude()
	}
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := 1.0
			if mags[i] != 0 && mags[j] != 0 {
				d = float64(CosineDistanceWithMagnitude(rows[i], rows[j], mags[i], mags[j]))
			}
			out[i][j] = d
			out[j][i] = d
		}
	}
	return out, nil
}
