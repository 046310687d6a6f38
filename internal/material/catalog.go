// Package material holds the vanilla material table the lookup engine
// resolves identity tokens against. The host environment owns the real
// material list; this catalog is the module's view of it.
package material

import (
	"fmt"
	"strings"

	"github.com/hollowforge/itemkit/internal/domain"
)

// Resolver resolves a material name to a material, case-insensitively.
// The "no item" sentinel is never resolvable.
type Resolver interface {
	Resolve(name string) (*domain.Material, bool)
}

// Catalog is an immutable material table. Built once at startup, read
// from any thread afterwards.
type Catalog struct {
	byName map[string]*domain.Material
}

// NewCatalog builds a catalog from material definitions. Duplicate
// names (case-insensitive) are rejected.
func NewCatalog(defs []domain.Material) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, domain.ErrMsgNoMaterialsFound)
	}

	byName := make(map[string]*domain.Material, len(defs))
	for i := range defs {
		def := defs[i]
		name := strings.ToLower(def.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: material at index %d has no name", domain.ErrInvalidInput, i)
		}
		if _, ok := byName[name]; ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateKey, def.Name)
		}
		if def.MaxStack < 1 {
			def.MaxStack = DefaultMaxStack
		}
		byName[name] = &def
	}

	return &Catalog{byName: byName}, nil
}

// Resolve returns the material for name, case-insensitively. The air
// sentinel resolves to nothing: "no item" is not an item.
func (c *Catalog) Resolve(name string) (*domain.Material, bool) {
	mat, ok := c.byName[strings.ToLower(name)]
	if !ok || mat.IsAir() {
		return nil, false
	}
	return mat, true
}

// Len returns the number of materials, including the air sentinel.
func (c *Catalog) Len() int {
	return len(c.byName)
}

// All returns a snapshot of every material in the catalog.
func (c *Catalog) All() []*domain.Material {
	out := make([]*domain.Material, 0, len(c.byName))
	for _, mat := range c.byName {
		out = append(out, mat)
	}
	return out
}

// DefaultCatalog returns a catalog seeded with the built-in material
// table. Hosts with a real material list should load their own.
func DefaultCatalog() *Catalog {
	catalog, err := NewCatalog(defaultMaterials)
	if err != nil {
		// The built-in table is compile-time data; failing to build it
		// is a programming error.
		panic(err)
	}
	return catalog
}

var defaultMaterials = []domain.Material{
	{Name: domain.MaterialAir, MaxStack: 1},
	{Name: "stone", MaxStack: 64},
	{Name: "cobblestone", MaxStack: 64},
	{Name: "oak_planks", MaxStack: 64},
	{Name: "stick", MaxStack: 64},
	{Name: "iron_ingot", MaxStack: 64},
	{Name: "gold_ingot", MaxStack: 64},
	{Name: "diamond", MaxStack: 64},
	{Name: "emerald", MaxStack: 64},
	{Name: "diamond_sword", MaxStack: 1},
	{Name: "diamond_pickaxe", MaxStack: 1},
	{Name: "iron_sword", MaxStack: 1},
	{Name: "bow", MaxStack: 1},
	{Name: "arrow", MaxStack: 64},
	{Name: "ender_pearl", MaxStack: 16},
	{Name: "egg", MaxStack: 16},
	{Name: "book", MaxStack: 64},
	{Name: "enchanted_book", MaxStack: 1},
}
