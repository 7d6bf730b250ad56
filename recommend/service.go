package recommend

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/viant/quadrec/catalog"
	"github.com/viant/quadrec/embedding"
	"github.com/viant/quadrec/index/bruteforce"
	"github.com/viant/quadrec/index/quad"
	"github.com/viant/quadrec/projection"
)

// Stats describes the built index.
type Stats struct {
	Items      int               `json:"items"`
	Attributes int               `json:"attributes"`
	Expected   int               `json:"expected"`
	Stored     int               `json:"stored"`
	Skipped    int               `json:"skipped"`
	Nodes      int               `json:"nodes"`
	Bounds     projection.Bounds `json:"bounds"`
}

// Service answers recommendations for a catalog.
type Service struct {
	mu      sync.RWMutex
	catalog *catalog.Catalog
	matrix  *embedding.Matrix
	coords  [][]float32
	bounds  projection.Bounds
	approx  *quad.Index
	exact   *bruteforce.Index
	built   bool

	projection projection.Options
	scaleMin   float64
	scaleMax   float64
	maxDepth   int
	maxK       int
	store      *catalog.SQLiteStore
	logger     zerolog.Logger
}

// New creates an unbuilt service.
func New(opts ...Option) *Service {
	s := &Service{
		projection: projection.DefaultOptions(),
		scaleMin:   0,
		scaleMax:   100,
		maxK:       DefaultMaxK,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.projection.Logger = s.logger
	return s
}

// Build embeds, projects and indexes every item of c, then persists the
// result when a store is configured.
func (s *Service) Build(ctx context.Context, c *catalog.Catalog) error {
	items := c.Items()
	matrix := embedding.Build(items)
	s.logger.Info().Int("items", len(items)).Int("attributes", len(matrix.Attributes)).Msg("feature matrix built")

	raw, err := projection.Embed(ctx, matrix.Rows, s.projection)
	if err != nil {
		return fmt.Errorf("recommend: project: %w", err)
	}
	coords, bounds, err := projection.Scale(raw, s.scaleMin, s.scaleMax)
	if err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	if err := s.install(c, matrix, coords, bounds); err != nil {
		return err
	}
	if s.store == nil {
		return nil
	}
	if err := s.store.SaveItems(ctx, items); err != nil {
		return fmt.Errorf("recommend: persist items: %w", err)
	}
	if err := s.store.SaveEmbeddings(ctx, matrix.Labels, matrix.Rows, coords); err != nil {
		return fmt.Errorf("recommend: persist embeddings: %w", err)
	}
	return nil
}

// Restore rebuilds the service from the configured store without rerunning
// the projection.
func (s *Service) Restore(ctx context.Context) error {
	if s.store == nil {
		return fmt.Errorf("recommend: restore: no store")
	}
	items, err := s.store.LoadItems(ctx)
	if err != nil {
		return fmt.Errorf("recommend: restore items: %w", err)
	}
	names, stored, err := s.store.Coordinates(ctx)
	if err != nil {
		return fmt.Errorf("recommend: restore coordinates: %w", err)
	}
	byName := make(map[string][]float32, len(names))
	for n, name := range names {
		byName[name] = stored[n]
	}
	c := catalog.New(items...)
	matrix := embedding.Build(c.Items())
	coords := make([][]float32, len(matrix.Labels))
	for n, label := range matrix.Labels {
		coord, ok := byName[label]
		if !ok {
			return fmt.Errorf("recommend: restore: no coordinate for %q", label)
		}
		coords[n] = coord
	}
	bounds := boundsOf(coords)
	s.logger.Info().Int("items", len(items)).Msg("restored from store")
	return s.install(c, matrix, coords, bounds)
}

func (s *Service) install(c *catalog.Catalog, matrix *embedding.Matrix, coords [][]float32, bounds projection.Bounds) error {
	approx := quad.New(quad.WithMaxDepth(s.maxDepth), quad.WithLogger(s.logger))
	if err := approx.Build(matrix.Labels, coords); err != nil {
		return fmt.Errorf("recommend: quad index: %w", err)
	}
	exact := &bruteforce.Index{}
	if err := exact.Build(matrix.Labels, matrix.Rows); err != nil {
		return fmt.Errorf("recommend: exact index: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog, s.matrix, s.coords, s.bounds = c, matrix, coords, bounds
	s.approx, s.exact, s.built = approx, exact, true
	return nil
}

// Recommend returns up to k approximate neighbours of the item named by a
// primary name or alias.
func (s *Service) Recommend(name string, k int) ([]string, error) {
	label, err := s.resolve(name, k)
	if err != nil || k == 0 {
		return nil, err
	}
	s.mu.RLock()
	approx := s.approx
	s.mu.RUnlock()
	return approx.Similar(label, k)
}

// Exact returns the k items with the highest feature cosine similarity.
func (s *Service) Exact(name string, k int) ([]string, error) {
	label, err := s.resolve(name, k)
	if err != nil || k == 0 {
		return nil, err
	}
	s.mu.RLock()
	exact := s.exact
	s.mu.RUnlock()
	return exact.Similar(label, k)
}

// Similar implements the neighbour source used by the SQL virtual table.
func (s *Service) Similar(name string, k int) ([]string, error) {
	return s.Recommend(name, k)
}

func (s *Service) resolve(name string, k int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.built {
		return "", ErrNotBuilt
	}
	if k < 0 || k > s.maxK {
		return "", &KError{K: k, MaxK: s.maxK}
	}
	label, ok := s.catalog.Primary(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownItem, strings.TrimSpace(name))
	}
	return label, nil
}

// Item returns the catalog item named by a primary name or alias.
func (s *Service) Item(name string) (*catalog.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.catalog == nil {
		return nil, false
	}
	return s.catalog.Get(name)
}

// Coordinate returns the scaled 2-D position of the named item.
func (s *Service) Coordinate(name string) ([]float32, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.catalog == nil {
		return nil, false
	}
	label, ok := s.catalog.Primary(name)
	if !ok {
		return nil, false
	}
	for n, l := range s.matrix.Labels {
		if l == label {
			return s.coords[n], true
		}
	}
	return nil, false
}

// Stats reports the state of the last build.
func (s *Service) Stats() (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.built {
		return Stats{}, ErrNotBuilt
	}
	qs := s.approx.Stats()
	return Stats{
		Items:      s.catalog.Len(),
		Attributes: len(s.matrix.Attributes),
		Expected:   qs.Expected,
		Stored:     qs.Stored,
		Skipped:    qs.Skipped,
		Nodes:      qs.Nodes,
		Bounds:     s.bounds,
	}, nil
}

func boundsOf(coords [][]float32) projection.Bounds {
	var b projection.Bounds
	for n, c := range coords {
		for d := 0; d < 2; d++ {
			v := float64(c[d])
			if n == 0 || v < b.Min[d] {
				b.Min[d] = v
			}
			if n == 0 || v > b.Max[d] {
				b.Max[d] = v
			}
		}
	}
	return b
}
