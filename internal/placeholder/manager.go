// Package placeholder handles placeholder registration and text
// substitution. Results are memoized in a short-TTL cache: placeholder
// values change constantly on a live server, so the cache exists only
// to absorb bursts of identical lookups within a tick.
package placeholder

import (
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/hollowforge/itemkit/internal/metrics"
)

// Entry is a single registered placeholder.
type Entry struct {
	// Identifier is the placeholder name, matched case-insensitively.
	Identifier string

	// RequiresPlayer marks placeholders that cannot resolve without a
	// player context.
	RequiresPlayer bool

	// Resolve computes the placeholder value. player is the host's
	// opaque player identifier, empty when no player is in context.
	Resolve func(player string) string
}

// Integration is an external placeholder engine bridged into this one.
type Integration interface {
	Translate(text, player string) string
	FindIn(text string) []string
}

type cacheKey struct {
	plugin     string
	identifier string
	player     string
}

// Manager registers placeholders per owning plugin and resolves them
// with a fallback to the core plugin's namespace.
type Manager struct {
	corePlugin string

	mu           sync.RWMutex
	entries      map[string]map[string]Entry
	integrations []Integration

	cache *expirable.LRU[cacheKey, string]
}

// NewManager creates a manager. corePlugin names the namespace used
// when a caller does not specify an owning plugin.
func NewManager(corePlugin string, cacheSize int, cacheTTL time.Duration) *Manager {
	return &Manager{
		corePlugin: corePlugin,
		entries:    make(map[string]map[string]Entry),
		cache:      expirable.NewLRU[cacheKey, string](cacheSize, nil, cacheTTL),
	}
}

// Register adds a placeholder under the owning plugin, replacing any
// previous entry with the same identifier.
func (m *Manager) Register(plugin string, entry Entry) {
	if plugin == "" {
		plugin = m.corePlugin
	}
	identifier := strings.ToLower(entry.Identifier)

	m.mu.Lock()
	defer m.mu.Unlock()

	byID, ok := m.entries[plugin]
	if !ok {
		byID = make(map[string]Entry)
		m.entries[plugin] = byID
	}
	byID[identifier] = entry
}

// AddIntegration registers an external placeholder engine.
func (m *Manager) AddIntegration(integration Integration) {
	if integration == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.integrations = append(m.integrations, integration)
}

// Result resolves a placeholder with respect to a player. An entry
// missing under the named plugin falls back to the core plugin's
// namespace; a placeholder that is still unknown, or that requires a
// player when none is in context, resolves to the empty string.
func (m *Manager) Result(player, identifier, plugin string) string {
	if plugin == "" {
		plugin = m.corePlugin
	}
	identifier = strings.ToLower(identifier)

	entry, ok := m.lookup(plugin, identifier)
	if !ok && plugin != m.corePlugin {
		entry, ok = m.lookup(m.corePlugin, identifier)
	}
	if !ok {
		return ""
	}

	if entry.RequiresPlayer && player == "" {
		return ""
	}

	key := cacheKey{plugin: plugin, identifier: identifier, player: player}
	if cached, hit := m.cache.Get(key); hit {
		metrics.PlaceholderCacheHits.Inc()
		return cached
	}
	metrics.PlaceholderCacheMisses.Inc()

	value := entry.Resolve(player)
	m.cache.Add(key, value)
	return value
}

func (m *Manager) lookup(plugin, identifier string) (Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[plugin][identifier]
	return entry, ok
}

// Translate runs the text through every registered integration.
func (m *Manager) Translate(text, player string) string {
	for _, integration := range m.snapshot() {
		text = integration.Translate(text, player)
	}
	return text
}

// FindIn collects every placeholder the integrations recognize in text.
func (m *Manager) FindIn(text string) []string {
	var found []string
	for _, integration := range m.snapshot() {
		found = append(found, integration.FindIn(text)...)
	}
	return found
}

func (m *Manager) snapshot() []Integration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Integration, len(m.integrations))
	copy(out, m.integrations)
	return out
}
