package tree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegion(t *testing.T) {
	var testCases = []struct {
		description string
		bounds      [4]float64
		expectErr   bool
	}{
		{description: "valid", bounds: [4]float64{0, 100, 0, 100}},
		{description: "negative span", bounds: [4]float64{-5, -1, -3, 7}},
		{description: "zero width", bounds: [4]float64{1, 1, 0, 1}, expectErr: true},
		{description: "inverted y", bounds: [4]float64{0, 1, 2, 1}, expectErr: true},
		{description: "nan", bounds: [4]float64{math.NaN(), 1, 0, 1}, expectErr: true},
		{description: "inf", bounds: [4]float64{0, math.Inf(1), 0, 1}, expectErr: true},
	}
	for _, testCase := range testCases {
		b := testCase.bounds
		_, err := NewRegion(b[0], b[1], b[2], b[3])
		if testCase.expectErr {
			assert.ErrorIs(t, err, ErrInvalidRegion, testCase.description)
			continue
		}
		assert.NoError(t, err, testCase.description)
	}
}

func TestRegion_Contains(t *testing.T) {
	r, err := NewRegion(0, 100, 0, 100)
	require.NoError(t, err)

	var testCases = []struct {
		description string
		x, y        float64
		expect      bool
	}{
		{description: "interior", x: 10, y: 20, expect: true},
		{description: "lower corner", x: 0, y: 0, expect: true},
		{description: "upper corner", x: 100, y: 100, expect: true},
		{description: "within epsilon", x: 100 + 1e-11, y: 50, expect: true},
		{description: "beyond epsilon", x: 100 + 1e-9, y: 50, expect: false},
		{description: "below min", x: -1e-12, y: 50, expect: false},
		{description: "nan", x: math.NaN(), y: 50, expect: false},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, r.Contains(testCase.x, testCase.y), testCase.description)
	}
}

func TestRegion_Quadrant(t *testing.T) {
	r := Region{XMin: 0, XMax: 100, YMin: 0, YMax: 50}
	assert.Equal(t, Region{XMin: 50, XMax: 100, YMin: 25, YMax: 50}, r.Quadrant(NE))
	assert.Equal(t, Region{XMin: 0, XMax: 50, YMin: 25, YMax: 50}, r.Quadrant(NW))
	assert.Equal(t, Region{XMin: 0, XMax: 50, YMin: 0, YMax: 25}, r.Quadrant(SW))
	assert.Equal(t, Region{XMin: 50, XMax: 100, YMin: 0, YMax: 25}, r.Quadrant(SE))
	for _, q := range Quadrants {
		assert.True(t, r.Quadrant(q).Within(r), q.String())
	}
}
