package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Garden describes growing conditions and the items already planted.
type Garden struct {
	Size        float64 `json:"size" validate:"gte=0"`
	Zone        int     `json:"zone" validate:"min=1,max=13"`
	SunExposure string  `json:"sunExposure" validate:"required"`
	WaterSupply string  `json:"waterSupply" validate:"required"`
	Planted     []*Item `json:"planted,omitempty"`
}

// Validate checks the garden conditions.
func (g *Garden) Validate() error {
	if err := validate.Struct(g); err != nil {
		return fmt.Errorf("catalog: garden: %w", err)
	}
	return nil
}

// Plant adds item to the garden.
func (g *Garden) Plant(item *Item) {
	g.Planted = append(g.Planted, item)
}

// Remove drops the first planted item named name.
func (g *Garden) Remove(name string) bool {
	n := slices.IndexFunc(g.Planted, func(item *Item) bool { return strings.EqualFold(item.Name, name) })
	if n < 0 {
		return false
	}
	g.Planted = slices.Delete(g.Planted, n, n+1)
	return true
}

// Suitable returns the items hardy in the garden zone whose sun needs include
// the garden exposure and whose water needs equal the supply.
func (g *Garden) Suitable(s *Search) []*Item {
	if g.Zone < MinZone {
		return nil
	}
	return s.collect(s.match(g.Zone, map[Category]string{
		SunNeeds:   g.SunExposure,
		WaterNeeds: g.WaterSupply,
	}))
}
