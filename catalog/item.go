package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Category names an attribute family used for search and embedding.
type Category string

const (
	BloomSeasons Category = "BloomSeasons"
	Colors       Category = "Colors"
	Maintenance  Category = "Maintenance"
	PlantType    Category = "PlantType"
	SunNeeds     Category = "SunNeeds"
	WaterNeeds   Category = "WaterNeeds"
)

// Categories lists every category in sorted order.
var Categories = []Category{BloomSeasons, Colors, Maintenance, PlantType, SunNeeds, WaterNeeds}

// ParseCategory resolves a category name ignoring case.
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(string(c), strings.TrimSpace(name)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("catalog: unknown category %q", name)
}

// Zone bounds of the hardiness scale.
const (
	MinZone = 1
	MaxZone = 13
)

// Item is a catalog entry. Text fields are lower-cased on load.
type Item struct {
	Name         string   `json:"name"`
	Aliases      []string `json:"aliases,omitempty"`
	Description  string   `json:"description,omitempty"`
	PlantTypes   []string `json:"plantTypes,omitempty"`
	ColorText    string   `json:"colorText,omitempty"`
	Colors       []string `json:"colors,omitempty"`
	MinZone      int      `json:"minZone"`
	MaxZone      int      `json:"maxZone"`
	BloomSeasons []string `json:"bloomSeasons,omitempty"`
	SunNeeds     []string `json:"sunNeeds,omitempty"`
	WaterNeeds   string   `json:"waterNeeds,omitempty"`
	Maintenance  string   `json:"maintenance,omitempty"`
}

// Values returns the item's values for category.
func (i *Item) Values(category Category) []string {
	switch category {
	case PlantType:
		return i.PlantTypes
	case Colors:
		return i.Colors
	case BloomSeasons:
		return i.BloomSeasons
	case SunNeeds:
		return i.SunNeeds
	case WaterNeeds:
		return single(i.WaterNeeds)
	case Maintenance:
		return single(i.Maintenance)
	}
	return nil
}

// Has reports whether the item carries value under category.
func (i *Item) Has(category Category, value string) bool {
	return slices.Contains(i.Values(category), strings.ToLower(value))
}

// InZone reports whether zone lies in the item's hardiness range.
func (i *Item) InZone(zone int) bool {
	return zone >= i.MinZone && zone <= i.MaxZone
}

// Names returns the primary name followed by the aliases.
func (i *Item) Names() []string {
	return append([]string{i.Name}, i.Aliases...)
}

func single(v string) []string {
	if v == "" {
		return nil
	}
	return []string{v}
}
