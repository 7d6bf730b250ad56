package catalog

import (
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// Search indexes a snapshot of catalog items by name, zone and category.
// Posting lists hold item positions, so results come back in catalog order.
type Search struct {
	items    []*Item
	names    map[string]uint32
	zones    map[int]*roaring.Bitmap
	postings map[string]*roaring.Bitmap
}

// NewSearch indexes items.
func NewSearch(items []*Item) *Search {
	s := &Search{
		items:    items,
		names:    make(map[string]uint32, len(items)),
		zones:    make(map[int]*roaring.Bitmap),
		postings: make(map[string]*roaring.Bitmap),
	}
	for n, item := range items {
		pos := uint32(n)
		for _, name := range item.Names() {
			s.names[strings.ToLower(name)] = pos
		}
		for zone := item.MinZone; zone <= item.MaxZone; zone++ {
			posting(s.zones, zone).Add(pos)
		}
		for _, category := range Categories {
			for _, value := range item.Values(category) {
				posting(s.postings, key(category, value)).Add(pos)
			}
		}
	}
	return s
}

// Key formats a category/value pair as "Category:value".
func Key(category Category, value string) string { return key(category, value) }

func key(category Category, value string) string {
	return string(category) + ":" + strings.ToLower(strings.TrimSpace(value))
}

func posting[K comparable](m map[K]*roaring.Bitmap, k K) *roaring.Bitmap {
	b, ok := m[k]
	if !ok {
		b = roaring.New()
		m[k] = b
	}
	return b
}

// ByName returns the item whose primary name or alias is name.
func (s *Search) ByName(name string) (*Item, bool) {
	pos, ok := s.names[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}
	return s.items[pos], true
}

// ByZone returns items hardy in zone.
func (s *Search) ByZone(zone int) []*Item {
	return s.collect(s.zones[zone])
}

// ByCategory returns items carrying value under category.
func (s *Search) ByCategory(category Category, value string) []*Item {
	return s.collect(s.postings[key(category, value)])
}

// ByCategories returns items matching every criterion. Empty criteria match
// nothing.
func (s *Search) ByCategories(criteria map[Category]string) []*Item {
	return s.collect(s.match(0, criteria))
}

// match intersects the zone posting (when zone > 0) with every criterion,
// stopping early on an empty intersection.
func (s *Search) match(zone int, criteria map[Category]string) *roaring.Bitmap {
	var result *roaring.Bitmap
	and := func(b *roaring.Bitmap) bool {
		if b == nil {
			result = nil
			return false
		}
		if result == nil {
			result = b.Clone()
		} else {
			result.And(b)
		}
		return !result.IsEmpty()
	}
	if zone > 0 && !and(s.zones[zone]) {
		return nil
	}
	for _, category := range Categories {
		value, ok := criteria[category]
		if !ok {
			continue
		}
		if !and(s.postings[key(category, value)]) {
			return nil
		}
	}
	return result
}

func (s *Search) collect(b *roaring.Bitmap) []*Item {
	if b == nil || b.IsEmpty() {
		return nil
	}
	out := make([]*Item, 0, b.GetCardinality())
	it := b.Iterator()
	for it.HasNext() {
		out = append(out, s.items[it.Next()])
	}
	return out
}
