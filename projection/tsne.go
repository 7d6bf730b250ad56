package projection

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/viant/vec/search"
	"golang.org/x/sync/errgroup"
)

const (
	perplexityTolerance = 1e-5
	perplexitySteps     = 50
	minProbability      = 1e-12
	minGain             = 0.01
)

// Embed projects rows to 2-D using squared Euclidean input distances.
func Embed(ctx context.Context, rows [][]float32, opts Options) ([][]float64, error) {
	n := len(rows)
	if n == 0 {
		return nil, nil
	}
	dim := len(rows[0])
	for i, row := range rows {
		if len(row) != dim {
			return nil, fmt.Errorf("projection: row %d dimension %d != %d", i, len(row), dim)
		}
	}
	opts = opts.withDefaults()
	dist := make([][]float64, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := range rows {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row := make([]float64, n)
			v := search.Float32s(rows[i])
			for j := range rows {
				if j != i {
					d := float64(v.EuclideanDistance(rows[j]))
					row[j] = d * d
				}
			}
			dist[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return EmbedDistances(ctx, dist, opts)
}

// EmbedDistances projects points given their pairwise distance matrix.
func EmbedDistances(ctx context.Context, dist [][]float64, opts Options) ([][]float64, error) {
	n := len(dist)
	for i := range dist {
		if len(dist[i]) != n {
			return nil, fmt.Errorf("projection: distance matrix row %d has %d columns, want %d", i, len(dist[i]), n)
		}
	}
	switch n {
	case 0:
		return nil, nil
	case 1:
		return [][]float64{{0, 0}}, nil
	}
	opts = opts.withDefaults()
	perplexity := math.Min(opts.Perplexity, float64(n-1)/3)
	if perplexity < 1 {
		perplexity = 1
	}
	opts.Logger.Debug().Int("points", n).Float64("perplexity", perplexity).Msg("tsne affinities")

	p, err := affinities(ctx, dist, perplexity, opts.Workers)
	if err != nil {
		return nil, err
	}
	return optimise(ctx, p, opts)
}

// affinities computes the symmetric joint probabilities P.
func affinities(ctx context.Context, dist [][]float64, perplexity float64, workers int) ([][]float64, error) {
	n := len(dist)
	cond := make([][]float64, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	target := math.Log(perplexity)
	for i := range dist {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cond[i] = conditionalRow(dist[i], i, target)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	p := make([][]float64, n)
	for i := range p {
		p[i] = make([]float64, n)
	}
	scale := 2 * float64(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := math.Max((cond[i][j]+cond[j][i])/scale, minProbability)
			p[i][j], p[j][i] = v, v
		}
	}
	return p, nil
}

// conditionalRow finds by bisection the precision whose row entropy matches
// target and returns P(j|i).
func conditionalRow(dist []float64, i int, target float64) []float64 {
	row := make([]float64, len(dist))
	beta, lo, hi := 1.0, math.Inf(-1), math.Inf(1)
	for step := 0; step < perplexitySteps; step++ {
		var sum, weighted float64
		for j, d := range dist {
			if j == i {
				row[j] = 0
				continue
			}
			row[j] = math.Exp(-d * beta)
			sum += row[j]
			weighted += d * row[j]
		}
		if sum == 0 {
			sum = minProbability
		}
		entropy := math.Log(sum) + beta*weighted/sum
		for j := range row {
			row[j] /= sum
		}
		diff := entropy - target
		if math.Abs(diff) < perplexityTolerance {
			break
		}
		if diff > 0 {
			lo = beta
			if math.IsInf(hi, 1) {
				beta *= 2
			} else {
				beta = (beta + hi) / 2
			}
		} else {
			hi = beta
			if math.IsInf(lo, -1) {
				beta /= 2
			} else {
				beta = (beta + lo) / 2
			}
		}
	}
	return row
}

func optimise(ctx context.Context, p [][]float64, opts Options) ([][]float64, error) {
	n := len(p)
	rng := rand.New(rand.NewSource(opts.Seed))
	y := make([][]float64, n)
	update := make([][]float64, n)
	gains := make([][]float64, n)
	grad := make([][]float64, n)
	num := make([][]float64, n)
	for i := range y {
		y[i] = []float64{rng.NormFloat64() * 1e-4, rng.NormFloat64() * 1e-4}
		update[i] = make([]float64, 2)
		gains[i] = []float64{1, 1}
		grad[i] = make([]float64, 2)
		num[i] = make([]float64, n)
	}
	rowSums := make([]float64, n)

	for iter := 0; iter < opts.Iterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		exaggeration, momentum := 1.0, opts.FinalMomentum
		if iter < opts.ExaggerationIters {
			exaggeration, momentum = opts.Exaggeration, opts.InitialMomentum
		}

		g, _ := errgroup.WithContext(ctx)
		g.SetLimit(opts.Workers)
		for i := 0; i < n; i++ {
			g.Go(func() error {
				var sum float64
				for j := 0; j < n; j++ {
					if i == j {
						num[i][j] = 0
						continue
					}
					dx, dy := y[i][0]-y[j][0], y[i][1]-y[j][1]
					num[i][j] = 1 / (1 + dx*dx + dy*dy)
					sum += num[i][j]
				}
				rowSums[i] = sum
				return nil
			})
		}
		_ = g.Wait()
		var sumQ float64
		for _, s := range rowSums {
			sumQ += s
		}
		if sumQ == 0 {
			sumQ = minProbability
		}

		g, _ = errgroup.WithContext(ctx)
		g.SetLimit(opts.Workers)
		for i := 0; i < n; i++ {
			g.Go(func() error {
				var gx, gy float64
				for j := 0; j < n; j++ {
					if i == j {
						continue
					}
					q := math.Max(num[i][j]/sumQ, minProbability)
					m := (exaggeration*p[i][j] - q) * num[i][j]
					gx += m * (y[i][0] - y[j][0])
					gy += m * (y[i][1] - y[j][1])
				}
				grad[i][0], grad[i][1] = 4*gx, 4*gy
				return nil
			})
		}
		_ = g.Wait()

		var meanX, meanY float64
		for i := 0; i < n; i++ {
			for d := 0; d < 2; d++ {
				if (grad[i][d] > 0) != (update[i][d] > 0) {
					gains[i][d] += 0.2
				} else {
					gains[i][d] *= 0.8
				}
				gains[i][d] = math.Max(gains[i][d], minGain)
				update[i][d] = momentum*update[i][d] - opts.LearningRate*gains[i][d]*grad[i][d]
				y[i][d] += update[i][d]
			}
			meanX += y[i][0]
			meanY += y[i][1]
		}
		meanX /= float64(n)
		meanY /= float64(n)
		for i := range y {
			y[i][0] -= meanX
			y[i][1] -= meanY
		}
		if (iter+1)%100 == 0 {
			opts.Logger.Debug().Int("iteration", iter+1).Msg("tsne progress")
		}
	}
	return y, nil
}
