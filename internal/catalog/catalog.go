package catalog

import (
	"errors"
	"sort"
	"strings"
)

// Variant is one orderable size of an item, with its own stock code.
type Variant struct {
	Code string `json:"code"`
	Size string `json:"size"`
}

// Item is an immutable PPE catalog entry.
type Item struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ReferenceCode string    `json:"reference_code"`
	Category      string    `json:"category"`
	Type          string    `json:"type"`
	Variants      []Variant `json:"variants"`
}

// HasSize reports whether the item is available in the given size.
func (it Item) HasSize(size string) bool {
	size = strings.TrimSpace(size)
	for _, v := range it.Variants {
		if v.Size == size {
			return true
		}
	}
	return false
}

var ErrNotFound = errors.New("catalog: item not found")

// Catalog is a read-only collection of items. It is populated once and never
// mutated, so lookups need no locking.
type Catalog struct {
	byID  map[string]Item
	items []Item
}

// New builds a catalog from the given items. Later duplicates of an id win.
func New(items []Item) *Catalog {
	c := &Catalog{byID: make(map[string]Item, len(items))}
	for _, it := range items {
		c.byID[it.ID] = it
	}
	c.items = make([]Item, 0, len(c.byID))
	for _, it := range c.byID {
		c.items = append(c.items, it)
	}
	sort.Slice(c.items, func(i, j int) bool { return c.items[i].ID < c.items[j].ID })
	return c
}

// Item looks up an item by id.
func (c *Catalog) Item(id string) (Item, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// List returns all items ordered by id.
func (c *Catalog) List() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.items) }
