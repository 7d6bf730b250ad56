package quad

import (
	"bytes"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/quadrec/index"
)

func TestBounds(t *testing.T) {
	var testCases = []struct {
		description string
		points      [][]float32
		expect      Region
		expectErr   bool
	}{
		{
			description: "min max per axis",
			points:      [][]float32{{10, 10}, {90, 90}, {10, 90}},
			expect:      Region{XMin: 10, XMax: 90, YMin: 10, YMax: 90},
		},
		{
			description: "zero range padded",
			points:      [][]float32{{5, 1}, {5, 3}},
			expect:      Region{XMin: 4.5, XMax: 5.5, YMin: 1, YMax: 3},
		},
		{description: "empty", expectErr: true},
		{description: "wrong dimension", points: [][]float32{{1, 2, 3}}, expectErr: true},
	}
	for _, testCase := range testCases {
		actual, err := Bounds(testCase.points)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestIndex_BuildAndSimilar(t *testing.T) {
	var buf bytes.Buffer
	idx := New(WithLogger(zerolog.New(&buf)))

	_, err := idx.Similar("a", 1)
	assert.ErrorIs(t, err, index.ErrNotBuilt)

	require.NoError(t, idx.Build(
		[]string{"a", "b", "c"},
		[][]float32{{10, 10}, {90, 90}, {10, 90}},
	))
	actual, err := idx.Similar("a", 2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"b", "c"}, actual)

	actual, err = idx.Similar("unknown", 2)
	require.NoError(t, err)
	assert.Empty(t, actual)

	stats := idx.Stats()
	assert.Equal(t, 3, stats.Expected)
	assert.Equal(t, 3, stats.Stored)
	assert.Equal(t, 0, stats.Skipped)
	assert.Equal(t, 3, idx.Stored())
	assert.Contains(t, buf.String(), "3 inserted vs 3 expected")
}

func TestIndex_BuildSkipsDegenerate(t *testing.T) {
	idx := New(WithMaxDepth(1))
	require.NoError(t, idx.Build(
		[]string{"p", "q", "r"},
		[][]float32{{5, 5}, {5, 5}, {5, 5}},
	))
	stats := idx.Stats()
	assert.Equal(t, 2, stats.Stored)
	assert.Equal(t, 1, stats.Skipped)
}

func TestIndex_ConcurrentReaders(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	ids := make([]string, 100)
	points := make([][]float32, 100)
	for n := range ids {
		ids[n] = fmt.Sprintf("i%d", n)
		points[n] = []float32{rng.Float32() * 100, rng.Float32() * 100}
	}
	idx := New()
	require.NoError(t, idx.Build(ids, points))

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for n := w; n < len(ids); n += 8 {
				out, err := idx.Similar(ids[n], 5)
				assert.NoError(t, err)
				assert.LessOrEqual(t, len(out), 5)
				assert.NotContains(t, out, ids[n])
			}
		}(w)
	}
	wg.Wait()
}
