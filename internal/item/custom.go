package item

import (
	"fmt"

	"github.com/hollowforge/itemkit/internal/domain"
)

// CustomItem is a plugin-defined item identity registered under a
// namespaced key. It is itself a matcher: the definition decides what
// counts as "this item", typically by checking a marker tag in the
// metadata.
type CustomItem struct {
	key     Key
	test    Predicate
	example func() *domain.ItemInstance
}

// NewCustomItem builds a custom item from an explicit test and a
// representative supplier. A definition that cannot accept its own
// representative is a programming error on the registering plugin's
// side and is rejected here, before it can corrupt matching.
func NewCustomItem(key Key, test Predicate, example func() *domain.ItemInstance) (*CustomItem, error) {
	if test == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNilTest, key)
	}
	if example == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNilExample, key)
	}

	representative := example()
	if representative == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNilExample, key)
	}
	if !test(representative) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotReflexive, key)
	}

	return &CustomItem{
		key:     key,
		test:    test,
		example: example,
	}, nil
}

// NewDelegatingItem builds a custom item that defers to another
// matcher. Custom items may wrap other custom items by reference;
// composition depth is bounded by configuration, but an item
// delegating to itself would recurse forever, so that is rejected.
func NewDelegatingItem(key Key, delegate TestableItem) (*CustomItem, error) {
	if IsEmpty(delegate) {
		return nil, fmt.Errorf("%w: %s has no delegate", domain.ErrNilTest, key)
	}
	if custom, ok := delegate.(*CustomItem); ok && custom.key == key {
		return nil, fmt.Errorf("%w: %s", domain.ErrSelfReference, key)
	}

	return NewCustomItem(key, delegate.Matches, delegate.Item)
}

func (c *CustomItem) Matches(ins *domain.ItemInstance) bool {
	return ins != nil && c.test(ins)
}

func (c *CustomItem) Item() *domain.ItemInstance {
	return c.example().Clone()
}

// Key returns the registry key.
func (c *CustomItem) Key() Key {
	return c.key
}
