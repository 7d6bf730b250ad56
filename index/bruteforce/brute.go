package bruteforce

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/viant/quadrec/index"
	"github.com/viant/quadrec/vector"
	"github.com/viant/vec/search"
)

// Index is a brute-force vector index implementing cosine similarity.
type Index struct {
	mu       sync.RWMutex
	ids      []string
	vecs     [][]float32
	dim      int
	mags     []float32
	position map[string]int
}

// Build loads ids and vectors and precomputes magnitudes.
func (i *Index) Build(ids []string, vectors [][]float32) error {
	if len(ids) != len(vectors) {
		return fmt.Errorf("bruteforce: ids and vectors length mismatch: %d != %d", len(ids), len(vectors))
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	if len(ids) == 0 {
		i.ids, i.vecs, i.mags, i.dim, i.position = nil, nil, nil, 0, map[string]int{}
		return nil
	}
	dim := len(vectors[0])
	mags := make([]float32, len(vectors))
	position := make(map[string]int, len(ids))
	for j := range vectors {
		if len(vectors[j]) != dim {
			return fmt.Errorf("bruteforce: inconsistent vector dims %d vs %d", len(vectors[j]), dim)
		}
		mags[j] = search.Float32s(vectors[j]).Magnitude()
		if _, ok := position[ids[j]]; !ok {
			position[ids[j]] = j
		}
	}
	i.ids = append([]string(nil), ids...)
	i.vecs = append([][]float32(nil), vectors...)
	i.dim = dim
	i.mags = mags
	i.position = position
	return nil
}

// Query returns top-k by cosine similarity. k <= 0 returns every scored vector.
func (i *Index) Query(query []float32, k int) ([]string, []float64, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.query(query, search.Float32s(query).Magnitude(), k, -1)
}

// Similar returns the k ids most similar to id, excluding id itself.
func (i *Index) Similar(id string, k int) ([]string, error) {
	if k <= 0 {
		return nil, nil
	}
	i.mu.RLock()
	defer i.mu.RUnlock()
	if i.position == nil {
		return nil, index.ErrNotBuilt
	}
	pos, ok := i.position[id]
	if !ok {
		return nil, nil
	}
	ids, _, err := i.query(i.vecs[pos], i.mags[pos], k, pos)
	return ids, err
}

func (i *Index) query(query []float32, qm float32, k int, skip int) ([]string, []float64, error) {
	if i.dim == 0 || len(i.vecs) == 0 {
		return nil, nil, nil
	}
	if len(query) != i.dim {
		return nil, nil, fmt.Errorf("bruteforce: query dim %d != index dim %d", len(query), i.dim)
	}
	if qm == 0 {
		return nil, nil, nil
	}
	type scored struct {
		idx   int
		score float64
	}
	scoreds := make([]scored, 0, len(i.vecs))
	for j := range i.vecs {
		if j == skip || i.mags[j] == 0 || (skip >= 0 && i.ids[j] == i.ids[skip]) {
			continue
		}
		s := 1 - float64(vector.CosineDistanceWithMagnitude(query, i.vecs[j], qm, i.mags[j]))
		if math.IsNaN(s) {
			continue
		}
		scoreds = append(scoreds, scored{idx: j, score: s})
	}
	sort.SliceStable(scoreds, func(a, b int) bool { return scoreds[a].score > scoreds[b].score })
	if k <= 0 || k > len(scoreds) {
		k = len(scoreds)
	}
	outIDs := make([]string, k)
	outScores := make([]float64, k)
	for n := 0; n < k; n++ {
		outIDs[n] = i.ids[scoreds[n].idx]
		outScores[n] = scoreds[n].score
	}
	return outIDs, outScores, nil
}

var _ index.Index = (*Index)(nil)
