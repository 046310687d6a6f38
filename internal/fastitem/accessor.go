// Package fastitem converts between the host's raw item payloads and
// engine instances. Matching raw payloads is frequent enough during
// inventory scans that the accessor keeps a pool of scratch instances
// instead of allocating a fresh conversion per test.
package fastitem

import (
	"strings"
	"sync"

	"github.com/hollowforge/itemkit/internal/domain"
	"github.com/hollowforge/itemkit/internal/item"
)

// Raw is the host's loosely typed wire form of an item.
type Raw map[string]any

// Raw payload keys
const (
	KeyMaterial    = "material"
	KeyAmount      = "amount"
	KeyName        = "name"
	KeyLore        = "lore"
	KeyEnchants    = "enchants"
	KeyUnbreakable = "unbreakable"
	KeyTags        = "tags"
)

// Accessor converts raw payloads. Safe for concurrent use.
type Accessor struct {
	materials item.MaterialResolver
	pool      sync.Pool
}

type scratch struct {
	ins  domain.ItemInstance
	meta domain.Metadata
}

// NewAccessor creates an accessor resolving materials through the
// given resolver.
func NewAccessor(materials item.MaterialResolver) *Accessor {
	return &Accessor{
		materials: materials,
		pool: sync.Pool{
			New: func() any { return &scratch{} },
		},
	}
}

// FromRaw converts a raw payload into a freshly allocated instance.
// Payloads without a resolvable material convert to nothing.
func (a *Accessor) FromRaw(raw Raw) (*domain.ItemInstance, bool) {
	s := &scratch{}
	if !a.fill(s, raw) {
		return nil, false
	}
	ins := s.ins.Clone()
	return ins, true
}

// ToRaw converts an instance back into the host's wire form.
func (a *Accessor) ToRaw(ins *domain.ItemInstance) Raw {
	if ins == nil || ins.Material == nil {
		return nil
	}

	raw := Raw{
		KeyMaterial: ins.Material.Name,
		KeyAmount:   ins.Amount,
	}

	meta := ins.Meta
	if meta == nil {
		return raw
	}
	if meta.DisplayName != "" {
		raw[KeyName] = meta.DisplayName
	}
	if len(meta.Lore) > 0 {
		raw[KeyLore] = append([]string(nil), meta.Lore...)
	}
	if len(meta.Enchants) > 0 {
		enchants := make(map[string]any, len(meta.Enchants))
		for name, level := range meta.Enchants {
			enchants[name] = level
		}
		raw[KeyEnchants] = enchants
	}
	if meta.Unbreakable {
		raw[KeyUnbreakable] = true
	}
	if len(meta.Tags) > 0 {
		tags := make(map[string]any, len(meta.Tags))
		for k, v := range meta.Tags {
			tags[k] = v
		}
		raw[KeyTags] = tags
	}

	return raw
}

// TestRaw matches a raw payload against a matcher without retaining
// the converted instance: the conversion lives on pooled scratch
// space for the duration of the test.
func (a *Accessor) TestRaw(matcher item.TestableItem, raw Raw) bool {
	s := a.pool.Get().(*scratch)
	defer func() {
		s.reset()
		a.pool.Put(s)
	}()

	if !a.fill(s, raw) {
		return false
	}
	return matcher.Matches(&s.ins)
}

func (a *Accessor) fill(s *scratch, raw Raw) bool {
	s.reset()

	name, _ := raw[KeyMaterial].(string)
	mat, ok := a.materials.Resolve(name)
	if !ok {
		return false
	}

	s.ins.Material = mat
	s.ins.Amount = 1
	s.ins.Meta = &s.meta

	if amount, ok := asInt(raw[KeyAmount]); ok && amount > 0 {
		s.ins.Amount = amount
	}

	if display, ok := raw[KeyName].(string); ok {
		s.meta.DisplayName = display
	}
	if lore, ok := raw[KeyLore].([]string); ok {
		s.meta.Lore = append(s.meta.Lore, lore...)
	} else if lore, ok := raw[KeyLore].([]any); ok {
		for _, line := range lore {
			if str, ok := line.(string); ok {
				s.meta.Lore = append(s.meta.Lore, str)
			}
		}
	}
	if enchants, ok := raw[KeyEnchants].(map[string]any); ok {
		for name, level := range enchants {
			if lvl, ok := asInt(level); ok {
				s.meta.AddEnchant(name, lvl)
			}
		}
	}
	if unbreakable, ok := raw[KeyUnbreakable].(bool); ok {
		s.meta.Unbreakable = unbreakable
	}
	if tags, ok := raw[KeyTags].(map[string]any); ok {
		for k, v := range tags {
			if str, ok := v.(string); ok {
				if s.meta.Tags == nil {
					s.meta.Tags = make(map[string]string, len(tags))
				}
				s.meta.Tags[strings.ToLower(k)] = str
			}
		}
	}

	return true
}

func (s *scratch) reset() {
	s.ins = domain.ItemInstance{}
	s.meta.DisplayName = ""
	s.meta.Lore = s.meta.Lore[:0]
	s.meta.Unbreakable = false
	clear(s.meta.Enchants)
	clear(s.meta.Tags)
}

// asInt accepts the integer encodings JSON decoding produces.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
