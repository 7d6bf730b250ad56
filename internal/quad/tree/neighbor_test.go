package tree

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_FindApproximateNeighbors(t *testing.T) {
	type point struct {
		label string
		x, y  float64
	}
	var testCases = []struct {
		description string
		points      []point
		label       string
		k           int
		expect      []string
	}{
		{
			description: "root-held target searches its subtree",
			points:      []point{{"a", 10, 10}, {"b", 90, 90}, {"c", 10, 90}},
			label:       "a",
			k:           2,
			expect:      []string{"b", "c"},
		},
		{
			description: "k caps the result",
			points:      []point{{"a", 10, 10}, {"b", 90, 90}, {"c", 10, 90}},
			label:       "a",
			k:           1,
			expect:      []string{"b"},
		},
		{
			description: "single point",
			points:      []point{{"only", 50, 50}},
			label:       "only",
			k:           5,
		},
		{
			description: "unknown label",
			points:      []point{{"a", 10, 10}, {"b", 90, 90}},
			label:       "no-such-label",
			k:           3,
		},
		{
			description: "zero k",
			points:      []point{{"a", 10, 10}, {"b", 90, 90}},
			label:       "a",
			k:           0,
		},
		{
			description: "siblings before cousins",
			points: []point{
				{"root", 50, 50},
				{"ne1", 75, 75},
				{"sw1", 25, 25},
				{"ne2", 80, 90},
				{"ne3", 60, 60},
			},
			label:  "ne2",
			k:      10,
			expect: []string{"ne3", "ne1", "sw1"},
		},
	}

	for _, testCase := range testCases {
		tr := newTestTree(t, 100, 100)
		for _, p := range testCase.points {
			ok, err := tr.Insert(p.label, p.x, p.y)
			require.NoError(t, err, testCase.description)
			require.True(t, ok, testCase.description)
		}
		actual := tr.FindApproximateNeighbors(testCase.label, testCase.k)
		if len(testCase.expect) == 0 {
			assert.Empty(t, actual, testCase.description)
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestTree_FindApproximateNeighbors_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tr := newTestTree(t, 100, 100)
	const n = 200
	for i := 0; i < n; i++ {
		_, err := tr.Insert(fmt.Sprintf("p%d", i), rng.Float64()*100, rng.Float64()*100)
		require.NoError(t, err)
	}
	for _, k := range []int{0, 1, 3, 17, 1000} {
		for i := 0; i < n; i += 13 {
			label := fmt.Sprintf("p%d", i)
			actual := tr.FindApproximateNeighbors(label, k)
			assert.LessOrEqual(t, len(actual), k)
			assert.NotContains(t, actual, label)
			seen := map[string]bool{}
			for _, l := range actual {
				assert.False(t, seen[l], "duplicate %s", l)
				seen[l] = true
			}
		}
	}
	// the root's own point is never a ring member, every other point is reachable
	all := tr.FindApproximateNeighbors("p100", 1000)
	assert.Len(t, all, n-2)
}
