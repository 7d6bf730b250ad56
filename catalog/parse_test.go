package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseName(t *testing.T) {
	var testCases = []struct {
		description   string
		input         string
		expectName    string
		expectAliases []string
	}{
		{description: "primary only", input: " Rose ", expectName: "rose"},
		{
			description:   "aliases",
			input:         "Alstroemeria (Peruvian Lily; Lily of the Incas)",
			expectName:    "alstroemeria",
			expectAliases: []string{"peruvian lily", "lily of the incas"},
		},
		{description: "empty alias dropped", input: "Fern (; Boston Fern)", expectName: "fern", expectAliases: []string{"boston fern"}},
	}
	for _, testCase := range testCases {
		name, aliases := ParseName(testCase.input)
		assert.Equal(t, testCase.expectName, name, testCase.description)
		assert.Equal(t, testCase.expectAliases, aliases, testCase.description)
	}
}

func TestParseZoneRange(t *testing.T) {
	lo, hi, err := ParseZoneRange(" 3 - 8 ")
	require.NoError(t, err)
	assert.Equal(t, 3, lo)
	assert.Equal(t, 8, hi)

	for _, input := range []string{"7", "a-3", "3-b", "9-3"} {
		_, _, err := ParseZoneRange(input)
		assert.ErrorIs(t, err, ErrInvalidZone, input)
	}
}

func TestExtractColors(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      []string
	}{
		{description: "synonyms", input: "Crimson, scarlet and ivory", expect: []string{"red", "white"}},
		{description: "punctuation", input: "pink/coral-ish; gold!", expect: []string{"pink", "gold"}},
		{description: "no colours", input: "variegated foliage"},
		{description: "golden maps to yellow", input: "Golden yellow with brown center", expect: []string{"yellow", "brown"}},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, ExtractColors(testCase.input), testCase.description)
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"full sun", "partial sun"}, SplitList("Full Sun, Partial Sun,"))
	assert.Nil(t, SplitList(""))
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("sunneeds")
	require.NoError(t, err)
	assert.Equal(t, SunNeeds, c)
	_, err = ParseCategory("height")
	assert.Error(t, err)
}
