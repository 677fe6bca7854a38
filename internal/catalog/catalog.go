// Package catalog holds the ordered set of controllable objects the
// cursor navigates. Items are opaque to the control core: shape and
// rendering details live in the payload and only matter to the renderer.
package catalog

import (
	"encoding/json"
	"sort"
)

// Item is one controllable object. Payload is passed through verbatim to
// the renderer.
type Item struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Payload  json.RawMessage `json:"payload"`
	Position int             `json:"position"`
}

// Catalog is a fixed, ordered list of items. It only answers length and
// lookup questions; the cursor itself is owned by the control session.
type Catalog struct {
	items []Item
}

// New builds a catalog ordered by item position.
func New(items []Item) *Catalog {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})
	return &Catalog{items: sorted}
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// At returns the item at index i, which must be in [0, Len).
func (c *Catalog) At(i int) (Item, bool) {
	if i < 0 || i >= len(c.items) {
		return Item{}, false
	}
	return c.items[i], true
}

// Items returns a copy of the ordered items.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}
