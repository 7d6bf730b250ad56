package catalog

import (
	"slices"
	"strings"
	"sync"
)

// Catalog maps primary names and aliases to items. Items keep insertion order.
type Catalog struct {
	mu      sync.RWMutex
	order   []string
	items   map[string]*Item
	primary map[string]string
}

// New creates a catalog holding items.
func New(items ...*Item) *Catalog {
	c := &Catalog{
		items:   make(map[string]*Item),
		primary: make(map[string]string),
	}
	for _, item := range items {
		c.Add(item)
	}
	return c
}

// Add stores item under its primary name and aliases, replacing any item with
// the same primary name in place.
func (c *Catalog) Add(item *Item) {
	name := strings.ToLower(item.Name)
	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.items[name]; ok {
		c.unlinkAliases(prev)
	} else {
		c.order = append(c.order, name)
	}
	c.items[name] = item
	c.primary[name] = name
	for _, alias := range item.Aliases {
		alias = strings.ToLower(alias)
		if _, taken := c.items[alias]; taken && alias != name {
			continue
		}
		c.primary[alias] = name
	}
}

// Get returns the item for a primary name or alias.
func (c *Catalog) Get(name string) (*Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	primary, ok := c.primary[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}
	item, ok := c.items[primary]
	return item, ok
}

// Has reports whether name is a known primary name or alias.
func (c *Catalog) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.primary[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Primary resolves a primary name or alias to the primary name.
func (c *Catalog) Primary(name string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	primary, ok := c.primary[strings.ToLower(strings.TrimSpace(name))]
	return primary, ok
}

// Delete removes the item that name resolves to, with all its aliases.
func (c *Catalog) Delete(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	primary, ok := c.primary[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return false
	}
	c.unlinkAliases(c.items[primary])
	delete(c.primary, primary)
	delete(c.items, primary)
	if n := slices.Index(c.order, primary); n >= 0 {
		c.order = slices.Delete(c.order, n, n+1)
	}
	return true
}

// Items returns the items in insertion order.
func (c *Catalog) Items() []*Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Item, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.items[name])
	}
	return out
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

func (c *Catalog) unlinkAliases(item *Item) {
	name := strings.ToLower(item.Name)
	for _, alias := range item.Aliases {
		alias = strings.ToLower(alias)
		if c.primary[alias] == name && alias != name {
			delete(c.primary, alias)
		}
	}
}
