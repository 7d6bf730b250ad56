package recommend

import (
	"github.com/rs/zerolog"
	"github.com/viant/quadrec/catalog"
	"github.com/viant/quadrec/projection"
)

// DefaultMaxK bounds the neighbour count of a single query.
const DefaultMaxK = 200

// Option configures a Service.
type Option func(*Service)

// WithProjection sets the t-SNE options.
func WithProjection(opts projection.Options) Option {
	return func(s *Service) { s.projection = opts }
}

// WithScale sets the square the projection is scaled into.
func WithScale(lo, hi float64) Option {
	return func(s *Service) { s.scaleMin, s.scaleMax = lo, hi }
}

// WithMaxDepth caps quadtree depth.
func WithMaxDepth(depth int) Option {
	return func(s *Service) { s.maxDepth = depth }
}

// WithMaxK bounds k.
func WithMaxK(k int) Option {
	return func(s *Service) {
		if k > 0 {
			s.maxK = k
		}
	}
}

// WithStore persists items, features and coordinates on Build.
func WithStore(store *catalog.SQLiteStore) Option {
	return func(s *Service) { s.store = store }
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}
