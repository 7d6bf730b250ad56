package projection

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoClusters returns 20 rows: the first ten share bits 0-5, the rest bits 6-11,
// each with one extra bit toggled.
func twoClusters() [][]float32 {
	var rows [][]float32
	for c := 0; c < 2; c++ {
		for v := 0; v < 10; v++ {
			row := make([]float32, 12)
			for b := 0; b < 6; b++ {
				row[c*6+b] = 1
			}
			flip := (c*6 + 6 + v) % 12
			if v >= 6 {
				flip = c*6 + v - 6
			}
			row[flip] = 1 - row[flip]
			rows = append(rows, row)
		}
	}
	return rows
}

func TestEmbed_SeparatesClusters(t *testing.T) {
	rows := twoClusters()
	opts := DefaultOptions()
	opts.LearningRate = 5
	opts.Iterations = 500
	for _, seed := range []int64{1, 7, 42} {
		opts.Seed = seed
		y, err := Embed(context.Background(), rows, opts)
		require.NoError(t, err)
		require.Len(t, y, len(rows))

		var within, between float64
		var nWithin, nBetween int
		for i := range y {
			nearest, best := -1, math.Inf(1)
			for j := range y {
				if i == j {
					continue
				}
				d := math.Hypot(y[i][0]-y[j][0], y[i][1]-y[j][1])
				if i/10 == j/10 {
					within += d
					nWithin++
				} else {
					between += d
					nBetween++
				}
				if d < best {
					nearest, best = j, d
				}
			}
			assert.Equal(t, i/10, nearest/10, "seed %d point %d nearest %d", seed, i, nearest)
		}
		within /= float64(nWithin)
		between /= float64(nBetween)
		assert.Less(t, within, between/10, "seed %d", seed)
	}
}

func TestEmbed_Deterministic(t *testing.T) {
	opts := DefaultOptions()
	opts.Iterations = 200
	opts.Seed = 7
	a, err := Embed(context.Background(), twoClusters(), opts)
	require.NoError(t, err)
	opts.Workers = 1
	b, err := Embed(context.Background(), twoClusters(), opts)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEmbed_Edges(t *testing.T) {
	y, err := Embed(context.Background(), nil, DefaultOptions())
	require.NoError(t, err)
	assert.Nil(t, y)

	y, err = Embed(context.Background(), [][]float32{{1, 0}}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0}}, y)

	y, err = Embed(context.Background(), [][]float32{{1, 0}, {0, 1}}, Options{Iterations: 10})
	require.NoError(t, err)
	assert.Len(t, y, 2)

	_, err = Embed(context.Background(), [][]float32{{1, 0}, {0}}, DefaultOptions())
	assert.Error(t, err)

	_, err = EmbedDistances(context.Background(), [][]float64{{0, 1}}, DefaultOptions())
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Embed(ctx, twoClusters(), DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}
