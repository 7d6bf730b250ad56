package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// CSV column headers, matched ignoring case.
const (
	ColumnName        = "name"
	ColumnDesc        = "desc"
	ColumnPlantType   = "planttype"
	ColumnColor       = "color"
	ColumnZones       = "hardinesszones"
	ColumnBloomsIn    = "bloomsin"
	ColumnSunNeeds    = "sunneeds"
	ColumnWaterNeeds  = "waterneeds"
	ColumnMaintenance = "maintenance"
)

var requiredColumns = []string{
	ColumnName, ColumnDesc, ColumnPlantType, ColumnColor, ColumnZones,
	ColumnBloomsIn, ColumnSunNeeds, ColumnWaterNeeds, ColumnMaintenance,
}

// LoadCSV reads items from a header-led CSV stream.
func LoadCSV(r io.Reader) ([]*Item, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("catalog: read header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for n, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = n
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("catalog: missing column %q", name)
		}
	}
	var items []*Item
	for row := 2; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return items, nil
		}
		if err != nil {
			return nil, fmt.Errorf("catalog: row %d: %w", row, err)
		}
		field := func(name string) string { return strings.TrimSpace(record[columns[name]]) }
		item, err := newItem(field)
		if err != nil {
			return nil, fmt.Errorf("catalog: row %d: %w", row, err)
		}
		items = append(items, item)
	}
}

// LoadFile reads items from a CSV file.
func LoadFile(path string) ([]*Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	defer f.Close()
	return LoadCSV(f)
}

func newItem(field func(string) string) (*Item, error) {
	name, aliases := ParseName(field(ColumnName))
	if name == "" {
		return nil, errors.New("empty name")
	}
	minZone, maxZone, err := ParseZoneRange(field(ColumnZones))
	if err != nil {
		return nil, err
	}
	colorText := strings.ToLower(field(ColumnColor))
	return &Item{
		Name:         name,
		Aliases:      aliases,
		Description:  field(ColumnDesc),
		PlantTypes:   SplitList(field(ColumnPlantType)),
		ColorText:    colorText,
		Colors:       ExtractColors(colorText),
		MinZone:      minZone,
		MaxZone:      maxZone,
		BloomSeasons: SplitList(field(ColumnBloomsIn)),
		SunNeeds:     SplitList(field(ColumnSunNeeds)),
		WaterNeeds:   strings.ToLower(field(ColumnWaterNeeds)),
		Maintenance:  strings.ToLower(field(ColumnMaintenance)),
	}, nil
}
