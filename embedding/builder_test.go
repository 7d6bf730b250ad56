package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/quadrec/catalog"
)

func testItems() []*catalog.Item {
	return []*catalog.Item{
		{
			Name: "Rose", MinZone: 5, MaxZone: 6,
			PlantTypes: []string{"shrubs"}, Colors: []string{"red"},
			BloomSeasons: []string{"summer", "spring"}, SunNeeds: []string{"full sun"},
			WaterNeeds: "average", Maintenance: "hard",
		},
		{
			Name: "fern", MinZone: 9, MaxZone: 9,
			PlantTypes: []string{"perennials"}, Colors: []string{"green"},
			BloomSeasons: []string{"summer"}, SunNeeds: []string{"full shade"},
			WaterNeeds: "high", Maintenance: "moderate",
		},
	}
}

func TestVocabulary(t *testing.T) {
	m := Build(testItems())
	expect := []string{
		"Zone1", "Zone2", "Zone3", "Zone4", "Zone5", "Zone6", "Zone7", "Zone8", "Zone9", "Zone10", "Zone11", "Zone12", "Zone13",
		"BloomSeasons:spring", "BloomSeasons:summer",
		"Colors:green", "Colors:red",
		"Maintenance:hard", "Maintenance:moderate",
		"PlantType:perennials", "PlantType:shrubs",
		"SunNeeds:full shade", "SunNeeds:full sun",
		"WaterNeeds:average", "WaterNeeds:high",
	}
	assert.Equal(t, expect, m.AttributeNames())
}

func TestBuild(t *testing.T) {
	m := Build(testItems())
	assert.Equal(t, []string{"rose", "fern"}, m.Labels)
	require.Len(t, m.Rows, 2)

	rose, ok := m.Row("ROSE")
	require.True(t, ok)
	assert.Equal(t, []float32{
		0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0,
		1, 1,
		0, 1,
		1, 0,
		0, 1,
		0, 1,
		1, 0,
	}, rose)

	fern, ok := m.Row("fern")
	require.True(t, ok)
	var sum float32
	for _, v := range fern {
		sum += v
	}
	assert.Equal(t, float32(7), sum)

	_, ok = m.Row("tulip")
	assert.False(t, ok)
}

func TestBuild_Empty(t *testing.T) {
	m := Build(nil)
	assert.Empty(t, m.Labels)
	assert.Len(t, m.Attributes, 13)
}
