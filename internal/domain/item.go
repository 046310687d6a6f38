package domain

import "strings"

// Material represents a host-defined item type tag. It carries no
// instance-specific state; two instances of the same material differ
// only in amount and metadata.
type Material struct {
	Name     string `json:"name" validate:"required"`
	MaxStack int    `json:"max_stack" validate:"gte=1"`
}

// MaterialAir is the "no item" sentinel name. Lookups must never
// resolve to it.
const MaterialAir = "air"

// IsAir reports whether the material is the "no item" sentinel.
func (m *Material) IsAir() bool {
	return m == nil || strings.EqualFold(m.Name, MaterialAir)
}

// Equals compares materials by name, case-insensitively. Catalogs hand
// out shared pointers but instances built by hand in tests may not be
// pointer-identical.
func (m *Material) Equals(other *Material) bool {
	if m == nil || other == nil {
		return m == other
	}
	return strings.EqualFold(m.Name, other.Name)
}

// Metadata is the inspectable, mutable metadata blob attached to an
// item instance: display name, lore, enchantments and free-form tags.
// Matching treats metadata as opaque; only modifier predicates look
// inside it.
type Metadata struct {
	DisplayName string
	Lore        []string
	Enchants    map[string]int
	Unbreakable bool
	Tags        map[string]string
}

// Clone returns a deep copy of the metadata.
func (m *Metadata) Clone() *Metadata {
	if m == nil {
		return nil
	}
	out := &Metadata{
		DisplayName: m.DisplayName,
		Unbreakable: m.Unbreakable,
	}
	if m.Lore != nil {
		out.Lore = append([]string(nil), m.Lore...)
	}
	if m.Enchants != nil {
		out.Enchants = make(map[string]int, len(m.Enchants))
		for k, v := range m.Enchants {
			out.Enchants[k] = v
		}
	}
	if m.Tags != nil {
		out.Tags = make(map[string]string, len(m.Tags))
		for k, v := range m.Tags {
			out.Tags[k] = v
		}
	}
	return out
}

// EnchantLevel returns the level of the named enchantment, or 0 when
// absent. Enchantment names are stored lowercased.
func (m *Metadata) EnchantLevel(name string) int {
	if m == nil || m.Enchants == nil {
		return 0
	}
	return m.Enchants[strings.ToLower(name)]
}

// AddEnchant records an enchantment at the given level.
func (m *Metadata) AddEnchant(name string, level int) {
	if m.Enchants == nil {
		m.Enchants = make(map[string]int)
	}
	m.Enchants[strings.ToLower(name)] = level
}

// ItemInstance is a concrete item as the host hands it to us: a
// material, an amount and a metadata blob. The engine never mutates
// instances it is asked to match.
type ItemInstance struct {
	Material *Material
	Amount   int
	Meta     *Metadata
}

// NewInstance produces a one-unit representative instance of the
// material with empty metadata.
func NewInstance(material *Material) *ItemInstance {
	return &ItemInstance{
		Material: material,
		Amount:   1,
		Meta:     &Metadata{},
	}
}

// Clone returns a deep copy of the instance.
func (i *ItemInstance) Clone() *ItemInstance {
	if i == nil {
		return nil
	}
	return &ItemInstance{
		Material: i.Material,
		Amount:   i.Amount,
		Meta:     i.Meta.Clone(),
	}
}

// WithAmount returns a copy of the instance at the given amount.
func (i *ItemInstance) WithAmount(amount int) *ItemInstance {
	out := i.Clone()
	if out != nil {
		out.Amount = amount
	}
	return out
}
