// Package recipe is the primary consumer of parsed matchers: crafting
// recipes configured as lookup strings, tested positionally against
// item grids at runtime.
package recipe

import (
	"fmt"

	"github.com/hollowforge/itemkit/internal/domain"
	"github.com/hollowforge/itemkit/internal/item"
)

// Recipe is an ordered list of matchers, one per grid slot. Parts are
// parsed once at load time; Test is the hot path and does no parsing.
type Recipe struct {
	name  string
	parts []item.TestableItem
}

// New parses each part spec through the lookup. A part that fails to
// resolve invalidates the whole recipe: a recipe with a hole would
// silently craft from the wrong inputs.
func New(name string, lookup *item.Lookup, partSpecs []string) (*Recipe, error) {
	if len(partSpecs) == 0 {
		return nil, fmt.Errorf("%w: recipe %q has no parts", domain.ErrInvalidInput, name)
	}

	parts := make([]item.TestableItem, len(partSpecs))
	for i, spec := range partSpecs {
		part := lookup.Parse(spec)
		if item.IsEmpty(part) {
			return nil, fmt.Errorf("%w: recipe %q part %d (%q)", domain.ErrEmptyRecipePart, name, i, spec)
		}
		parts[i] = part
	}

	return &Recipe{name: name, parts: parts}, nil
}

// Name returns the recipe name.
func (r *Recipe) Name() string {
	return r.name
}

// Parts returns the recipe's matchers in slot order.
func (r *Recipe) Parts() []item.TestableItem {
	out := make([]item.TestableItem, len(r.parts))
	copy(out, r.parts)
	return out
}

// Test reports whether the grid satisfies the recipe: same length,
// every slot accepted by its matcher.
func (r *Recipe) Test(grid []*domain.ItemInstance) bool {
	if len(grid) != len(r.parts) {
		return false
	}
	for i, part := range r.parts {
		if !part.Matches(grid[i]) {
			return false
		}
	}
	return true
}

// Displays returns one representative instance per slot, for rendering
// the recipe in a GUI.
func (r *Recipe) Displays() []*domain.ItemInstance {
	out := make([]*domain.ItemInstance, len(r.parts))
	for i, part := range r.parts {
		out[i] = part.Item()
	}
	return out
}
