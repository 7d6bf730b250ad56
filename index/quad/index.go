package quad

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog"
	"github.com/viant/quadrec/index"
	"github.com/viant/quadrec/internal/quad/tree"
)

// Region is the rectangular coverage of the index.
type Region = tree.Region

// Stats summarises the last Build.
type Stats struct {
	Expected int    `json:"expected"`
	Stored   int    `json:"stored"`
	Skipped  int    `json:"skipped"`
	Nodes    int    `json:"nodes"`
	Bounds   Region `json:"bounds"`
}

// Index answers approximate neighbour queries over 2-D points.
type Index struct {
	mu       sync.RWMutex
	tree     *tree.Tree
	stats    Stats
	maxDepth int
	logger   zerolog.Logger
}

// Option configures an Index.
type Option func(*Index)

// WithMaxDepth caps quadtree depth.
func WithMaxDepth(depth int) Option {
	return func(i *Index) { i.maxDepth = depth }
}

// WithLogger sets the logger used during Build.
func WithLogger(logger zerolog.Logger) Option {
	return func(i *Index) { i.logger = logger }
}

// New creates an empty index.
func New(opts ...Option) *Index {
	i := &Index{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Bounds returns the bounding box of points, widening any zero-range axis by
// half a unit on each side.
func Bounds(points [][]float32) (Region, error) {
	if len(points) == 0 {
		return Region{}, fmt.Errorf("quad: no points")
	}
	xMin, yMin := math.Inf(1), math.Inf(1)
	xMax, yMax := math.Inf(-1), math.Inf(-1)
	for n, p := range points {
		if len(p) != 2 {
			return Region{}, fmt.Errorf("quad: point %d has %d dimensions, want 2", n, len(p))
		}
		x, y := float64(p[0]), float64(p[1])
		xMin, xMax = math.Min(xMin, x), math.Max(xMax, x)
		yMin, yMax = math.Min(yMin, y), math.Max(yMax, y)
	}
	if xMin == xMax {
		xMin, xMax = xMin-0.5, xMax+0.5
	}
	if yMin == yMax {
		yMin, yMax = yMin-0.5, yMax+0.5
	}
	return tree.NewRegion(xMin, xMax, yMin, yMax)
}

// Build replaces the index contents with the given labelled 2-D points.
// Points hitting the depth cap are skipped and counted in Stats.
func (i *Index) Build(ids []string, vectors [][]float32) error {
	if len(ids) != len(vectors) {
		return fmt.Errorf("quad: ids and vectors length mismatch: %d != %d", len(ids), len(vectors))
	}
	if len(ids) == 0 {
		i.mu.Lock()
		i.tree, i.stats = nil, Stats{}
		i.mu.Unlock()
		return nil
	}
	bounds, err := Bounds(vectors)
	if err != nil {
		return err
	}
	t, err := tree.New(bounds, tree.WithMaxDepth(i.maxDepth), tree.WithLogger(i.logger))
	if err != nil {
		return err
	}
	stats := Stats{Expected: len(ids), Bounds: bounds}
	for n, id := range ids {
		ok, err := t.Insert(id, float64(vectors[n][0]), float64(vectors[n][1]))
		if err != nil {
			if !errors.Is(err, tree.ErrDegenerate) {
				return err
			}
			i.logger.Warn().Err(err).Str("label", id).Msg("point skipped")
			stats.Skipped++
			continue
		}
		if !ok {
			stats.Skipped++
		}
	}
	stats.Stored = t.Len()
	stats.Nodes = t.Size()
	i.logger.Info().
		Int("inserted", stats.Stored).
		Int("expected", stats.Expected).
		Int("nodes", stats.Nodes).
		Msgf("%d inserted vs %d expected", stats.Stored, stats.Expected)

	i.mu.Lock()
	i.tree, i.stats = t, stats
	i.mu.Unlock()
	return nil
}

// Similar returns up to k approximate neighbours of id in discovery order.
func (i *Index) Similar(id string, k int) ([]string, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if i.tree == nil {
		return nil, index.ErrNotBuilt
	}
	return i.tree.FindApproximateNeighbors(id, k), nil
}

// Stored returns the number of points held by the index.
func (i *Index) Stored() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if i.tree == nil {
		return 0
	}
	return i.tree.Count(tree.RootID)
}

// Stats returns the statistics of the last Build.
func (i *Index) Stats() Stats {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.stats
}

var _ index.Index = (*Index)(nil)
