// Package args ships the built-in lookup arg parsers. Each one obeys
// the permissive composition rule: tokens it does not recognize are
// left alone and the returned predicate accepts everything.
package args

import (
	"strconv"
	"strings"

	"github.com/hollowforge/itemkit/internal/domain"
	"github.com/hollowforge/itemkit/internal/item"
)

// EnchantParser recognizes "<enchant>:<level>" modifier tokens for a
// known set of enchantment names. A matched token requires candidates
// to carry the enchantment at the given level or higher, and stamps
// the enchantment onto the metadata snapshot so representative
// instances display it.
type EnchantParser struct {
	known map[string]bool
}

// NewEnchantParser builds a parser for the given enchantment names.
func NewEnchantParser(enchants []string) *EnchantParser {
	known := make(map[string]bool, len(enchants))
	for _, name := range enchants {
		known[strings.ToLower(name)] = true
	}
	return &EnchantParser{known: known}
}

// DefaultEnchants is the built-in enchantment name table.
var DefaultEnchants = []string{
	"sharpness",
	"smite",
	"efficiency",
	"fortune",
	"unbreaking",
	"protection",
	"power",
	"mending",
	"silk_touch",
}

func (p *EnchantParser) ParseArguments(tokens []string, meta *domain.Metadata) item.Predicate {
	type requirement struct {
		name  string
		level int
	}
	var required []requirement

	for _, token := range tokens {
		parts := strings.Split(strings.ToLower(token), ":")
		if len(parts) != 2 || !p.known[parts[0]] {
			continue
		}
		level, err := strconv.Atoi(parts[1])
		if err != nil || level < 1 {
			continue
		}

		meta.AddEnchant(parts[0], level)
		required = append(required, requirement{name: parts[0], level: level})
	}

	if len(required) == 0 {
		return nil
	}

	return func(ins *domain.ItemInstance) bool {
		if ins == nil || ins.Meta == nil {
			return false
		}
		for _, req := range required {
			if ins.Meta.EnchantLevel(req.name) < req.level {
				return false
			}
		}
		return true
	}
}
