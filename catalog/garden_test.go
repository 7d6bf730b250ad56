package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGarden_Suitable(t *testing.T) {
	s := loadSearch(t)
	var testCases = []struct {
		description string
		garden      Garden
		expect      []string
	}{
		{
			description: "sunny average",
			garden:      Garden{Zone: 7, SunExposure: "Full Sun", WaterSupply: "Average"},
			expect:      []string{"alstroemeria", "rose", "sunflower", "clematis"},
		},
		{
			description: "shade",
			garden:      Garden{Zone: 9, SunExposure: "full shade", WaterSupply: "high"},
			expect:      []string{"hosta", "fern"},
		},
		{
			description: "zone outside every range",
			garden:      Garden{Zone: 1, SunExposure: "full sun", WaterSupply: "low"},
		},
		{
			description: "unset zone",
			garden:      Garden{SunExposure: "full sun", WaterSupply: "low"},
		},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, names(testCase.garden.Suitable(s)), testCase.description)
	}
}

func TestGarden_Validate(t *testing.T) {
	assert.NoError(t, (&Garden{Zone: 5, SunExposure: "full sun", WaterSupply: "low"}).Validate())
	assert.Error(t, (&Garden{Zone: 14, SunExposure: "full sun", WaterSupply: "low"}).Validate())
	assert.Error(t, (&Garden{Zone: 5}).Validate())
}

func TestGarden_PlantRemove(t *testing.T) {
	g := &Garden{}
	g.Plant(&Item{Name: "rose"})
	g.Plant(&Item{Name: "tulip"})
	assert.True(t, g.Remove("Rose"))
	assert.False(t, g.Remove("rose"))
	assert.Len(t, g.Planted, 1)
}
