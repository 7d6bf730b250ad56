package embedding

import (
	"fmt"
	"slices"
	"strings"

	"github.com/viant/quadrec/catalog"
)

// Attribute is one column of the feature matrix.
type Attribute struct {
	Name     string
	Zone     int
	Category catalog.Category
	Value    string
}

func (a Attribute) present(item *catalog.Item) bool {
	if a.Zone > 0 {
		return item.InZone(a.Zone)
	}
	return slices.Contains(item.Values(a.Category), a.Value)
}

// Vocabulary lists Zone1..Zone13, then every category in sorted order with
// its observed values sorted, named "Category:value".
func Vocabulary(items []*catalog.Item) []Attribute {
	attrs := make([]Attribute, 0, catalog.MaxZone)
	for zone := catalog.MinZone; zone <= catalog.MaxZone; zone++ {
		attrs = append(attrs, Attribute{Name: fmt.Sprintf("Zone%d", zone), Zone: zone})
	}
	for _, category := range catalog.Categories {
		seen := map[string]bool{}
		var values []string
		for _, item := range items {
			for _, v := range item.Values(category) {
				v = strings.ToLower(v)
				if !seen[v] {
					seen[v] = true
					values = append(values, v)
				}
			}
		}
		slices.Sort(values)
		for _, v := range values {
			attrs = append(attrs, Attribute{Name: catalog.Key(category, v), Category: category, Value: v})
		}
	}
	return attrs
}

// Matrix is the binary item-by-attribute matrix.
type Matrix struct {
	Labels     []string
	Attributes []Attribute
	Rows       [][]float32
}

// Build embeds items in the given order. Labels are lower-cased primary names.
func Build(items []*catalog.Item) *Matrix {
	attrs := Vocabulary(items)
	m := &Matrix{
		Labels:     make([]string, len(items)),
		Attributes: attrs,
		Rows:       make([][]float32, len(items)),
	}
	for i, item := range items {
		m.Labels[i] = strings.ToLower(item.Name)
		row := make([]float32, len(attrs))
		for j, attr := range attrs {
			if attr.present(item) {
				row[j] = 1
			}
		}
		m.Rows[i] = row
	}
	return m
}

// AttributeNames returns the column names.
func (m *Matrix) AttributeNames() []string {
	out := make([]string, len(m.Attributes))
	for i, a := range m.Attributes {
		out[i] = a.Name
	}
	return out
}

// Row returns the feature vector for label.
func (m *Matrix) Row(label string) ([]float32, bool) {
	n := slices.Index(m.Labels, strings.ToLower(label))
	if n < 0 {
		return nil, false
	}
	return m.Rows[n], true
}
