package item

import (
	"sync"

	"github.com/hollowforge/itemkit/internal/domain"
	"github.com/hollowforge/itemkit/internal/metrics"
)

// Registry maps namespaced keys to registered custom items.
// Registration happens during plugin startup, lookups happen from
// gameplay handlers on the simulation thread and from async tasks, so
// every method is safe for concurrent use without caller-side locking.
type Registry struct {
	mu    sync.RWMutex
	items map[Key]*CustomItem
}

// NewRegistry creates an empty custom item registry.
func NewRegistry() *Registry {
	return &Registry{
		items: make(map[Key]*CustomItem),
	}
}

// Register inserts or replaces the item under its key. Replacing an
// existing registration is not an error; the last registration wins.
// Matchers parsed before a replacement keep the definition they bound.
func (r *Registry) Register(item *CustomItem) {
	if item == nil {
		return
	}

	r.mu.Lock()
	r.items[item.Key()] = item
	size := len(r.items)
	r.mu.Unlock()

	metrics.CustomItemsActive.Set(float64(size))
}

// Remove deletes the registration under key. Removing an absent key is
// a no-op.
func (r *Registry) Remove(key Key) {
	r.mu.Lock()
	delete(r.items, key)
	size := len(r.items)
	r.mu.Unlock()

	metrics.CustomItemsActive.Set(float64(size))
}

// Get returns the item registered under key.
func (r *Registry) Get(key Key) (*CustomItem, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[key]
	return item, ok
}

// All returns a snapshot of every registered item. The slice is a copy;
// it never reflects a half-completed update.
func (r *Registry) All() []*CustomItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*CustomItem, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	return out
}

// Len returns the number of registered items.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// IsCustomInstance reports whether the instance matches any registered
// custom item.
func (r *Registry) IsCustomInstance(ins *domain.ItemInstance) bool {
	_, ok := r.CustomFor(ins)
	return ok
}

// CustomFor returns the first registered custom item matching the
// instance. Iteration order is unspecified; definitions are expected
// not to overlap.
func (r *Registry) CustomFor(ins *domain.ItemInstance) (*CustomItem, bool) {
	if ins == nil {
		return nil, false
	}

	for _, item := range r.All() {
		if item.Matches(ins) {
			return item, true
		}
	}
	return nil, false
}
