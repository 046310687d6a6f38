// Package item is the item identity and lookup engine: a registry of
// custom item definitions, a lookup grammar parser, and the matcher
// hierarchy the rest of the system tests items against.
//
// A matcher is deliberately coarser than full equality. An instance
// with extra lore lines, a different display name or bonus metadata
// from another plugin still matches as long as the composed tests
// pass. Recipes and filters configured against a lookup string stay
// correct even when runtime instances differ cosmetically.
package item

import (
	"github.com/hollowforge/itemkit/internal/domain"
)

// Predicate tests a single candidate instance. Predicates are stateless
// once constructed and safe to evaluate from any thread.
type Predicate func(*domain.ItemInstance) bool

// TestableItem is the single abstraction everything else depends on:
// something that can test whether an arbitrary instance is "the same
// kind of item", and produce a canonical representative instance.
//
// Matches and Item must be safe to call concurrently and must not
// mutate shared state. Matches does no parsing and no registry lookups.
// Every non-empty matcher accepts its own representative:
// m.Matches(m.Item()) holds.
type TestableItem interface {
	Matches(ins *domain.ItemInstance) bool
	Item() *domain.ItemInstance
}

type emptyItem struct{}

// Empty returns the matcher representing lookup failure. It matches
// nothing, unconditionally, and has no representative instance.
func Empty() TestableItem {
	return emptyItem{}
}

func (emptyItem) Matches(*domain.ItemInstance) bool { return false }

func (emptyItem) Item() *domain.ItemInstance { return nil }

// IsEmpty reports whether the matcher represents lookup failure.
func IsEmpty(t TestableItem) bool {
	if t == nil {
		return true
	}
	_, ok := t.(emptyItem)
	return ok
}

// MaterialItem matches any instance of a single material, regardless of
// amount or metadata.
type MaterialItem struct {
	material *domain.Material
}

// NewMaterialItem builds a matcher for the given material.
func NewMaterialItem(material *domain.Material) *MaterialItem {
	return &MaterialItem{material: material}
}

func (m *MaterialItem) Matches(ins *domain.ItemInstance) bool {
	return ins != nil && m.material.Equals(ins.Material)
}

func (m *MaterialItem) Item() *domain.ItemInstance {
	return domain.NewInstance(m.material)
}

// Material returns the matched material.
func (m *MaterialItem) Material() *domain.Material {
	return m.material
}

// ModifiedItem narrows a base matcher with an extra predicate composed
// from modifier tokens. The example instance carries the metadata the
// modifiers imply; it is used only for display and acquisition, never
// for matching.
type ModifiedItem struct {
	base    TestableItem
	test    Predicate
	example *domain.ItemInstance
}

// NewModifiedItem wraps base with an additional test.
func NewModifiedItem(base TestableItem, test Predicate, example *domain.ItemInstance) *ModifiedItem {
	return &ModifiedItem{
		base:    base,
		test:    test,
		example: example,
	}
}

func (m *ModifiedItem) Matches(ins *domain.ItemInstance) bool {
	return ins != nil && m.base.Matches(ins) && m.test(ins)
}

func (m *ModifiedItem) Item() *domain.ItemInstance {
	return m.example.Clone()
}

// Base returns the wrapped matcher.
func (m *ModifiedItem) Base() TestableItem {
	return m.base
}

// StackItem requires a base match plus a stack amount, compared under
// the configured policy.
type StackItem struct {
	base   TestableItem
	amount int
	policy domain.StackPolicy
}

// NewStackItem wraps base with an amount requirement.
func NewStackItem(base TestableItem, amount int, policy domain.StackPolicy) *StackItem {
	return &StackItem{
		base:   base,
		amount: amount,
		policy: policy,
	}
}

func (s *StackItem) Matches(ins *domain.ItemInstance) bool {
	return ins != nil && s.base.Matches(ins) && s.policy.Satisfies(ins.Amount, s.amount)
}

func (s *StackItem) Item() *domain.ItemInstance {
	return s.base.Item().WithAmount(s.amount)
}

// Amount returns the required stack amount.
func (s *StackItem) Amount() int {
	return s.amount
}

// Base returns the wrapped matcher.
func (s *StackItem) Base() TestableItem {
	return s.base
}
