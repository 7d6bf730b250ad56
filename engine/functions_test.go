package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/quadrec/vector"
)

func TestRegisterFeatureFunctions(t *testing.T) {
	require.NoError(t, RegisterFeatureFunctions(nil))
	require.NoError(t, RegisterFeatureFunctions(nil), "second registration is a no-op")
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	rose := vector.PackFeatures([]float32{1, 1, 0, 0})
	tulip := vector.PackFeatures([]float32{1, 0, 1, 0})
	fern := vector.PackFeatures([]float32{0, 0, 0, 1})

	var testCases = []struct {
		description string
		query       string
		args        []interface{}
		expect      float64
	}{
		{description: "feature cosine overlap", query: `SELECT feature_cosine(?, ?)`, args: []interface{}{rose, tulip}, expect: 0.5},
		{description: "feature cosine disjoint", query: `SELECT feature_cosine(?, ?)`, args: []interface{}{rose, fern}, expect: 0},
		{description: "feature cosine self", query: `SELECT feature_cosine(?, ?)`, args: []interface{}{rose, rose}, expect: 1},
		{description: "feature l2", query: `SELECT feature_l2(?, ?)`, args: []interface{}{rose, fern}, expect: 1.7320508},
	}
	for _, testCase := range testCases {
		var actual float64
		require.NoError(t, db.QueryRow(testCase.query, testCase.args...).Scan(&actual), testCase.description)
		assert.InDelta(t, testCase.expect, actual, 1e-5, testCase.description)
	}

	zero, err := vector.EncodeEmbedding([]float32{0, 0})
	require.NoError(t, err)
	threeFour, err := vector.EncodeEmbedding([]float32{3, 4})
	require.NoError(t, err)
	var dist float64
	require.NoError(t, db.QueryRow(`SELECT vec_l2(?, ?)`, zero, threeFour).Scan(&dist))
	assert.InDelta(t, 5, dist, 1e-6)

	var null interface{}
	require.NoError(t, db.QueryRow(`SELECT feature_cosine(NULL, ?)`, rose).Scan(&null))
	assert.Nil(t, null)
}
