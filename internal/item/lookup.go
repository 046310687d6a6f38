package item

import (
	"strconv"
	"strings"
	"time"

	"github.com/hollowforge/itemkit/internal/domain"
	"github.com/hollowforge/itemkit/internal/metrics"
)

// MaterialResolver resolves a vanilla material name, case-insensitively.
// The "no item" sentinel must never resolve.
type MaterialResolver interface {
	Resolve(name string) (*domain.Material, bool)
}

// Lookup turns lookup strings into matchers. It is the only place the
// grammar is parsed; the matchers it returns never re-parse and never
// touch the registries again.
type Lookup struct {
	materials MaterialResolver
	registry  *Registry
	parsers   *ParserRegistry
	policy    domain.StackPolicy
}

// NewLookup wires a lookup service. The stack policy decides how stack
// matchers compare amounts; an unknown policy falls back to at-least.
func NewLookup(materials MaterialResolver, registry *Registry, parsers *ParserRegistry, policy domain.StackPolicy) *Lookup {
	if !policy.Valid() {
		policy = domain.StackAtLeast
	}
	return &Lookup{
		materials: materials,
		registry:  registry,
		parsers:   parsers,
		policy:    policy,
	}
}

// Parse resolves a lookup string to a matcher. Parse is total: every
// malformed, unknown or ambiguous input degrades to the empty matcher
// so one bad configuration line disables one rule instead of crashing
// the host.
//
// Grammar, in order of application: '?' alternation (first non-empty
// alternative wins), space tokenization, identity resolution on the
// first token (material, namespace:id, or the legacy colon-amount
// forms), an optional amount token, then modifier tokens handed to
// every registered arg parser.
func (l *Lookup) Parse(spec string) TestableItem {
	start := time.Now()
	result := l.parse(spec)
	metrics.RecordLookup(!IsEmpty(result), time.Since(start).Seconds())
	return result
}

func (l *Lookup) parse(spec string) TestableItem {
	if strings.Contains(spec, AlternationSeparator) {
		for _, option := range strings.Split(spec, AlternationSeparator) {
			if result := l.parse(option); !IsEmpty(result) {
				return result
			}
		}
		return Empty()
	}

	args := strings.Split(spec, TokenSeparator)

	var base TestableItem
	amount := 1

	parts := strings.Split(strings.ToLower(args[0]), KeySeparator)
	switch len(parts) {
	case 1:
		mat, ok := l.materials.Resolve(parts[0])
		if !ok {
			return Empty()
		}
		base = NewMaterialItem(mat)

	case 2:
		if custom, ok := l.registry.Get(NewKey(parts[0], parts[1])); ok {
			base = custom
			break
		}
		// Legacy material:amount format, superseded by "material amount".
		mat, ok := l.materials.Resolve(parts[0])
		if !ok {
			return Empty()
		}
		base = NewMaterialItem(mat)
		if n, err := strconv.Atoi(parts[1]); err == nil {
			amount = n
		}

	case 3:
		// Legacy namespace:id:amount format, superseded by "namespace:id amount".
		custom, ok := l.registry.Get(NewKey(parts[0], parts[1]))
		if !ok {
			return Empty()
		}
		base = custom
		if n, err := strconv.Atoi(parts[2]); err == nil {
			amount = n
		}

	default:
		return Empty()
	}

	// A second token that parses as an integer is the stack amount and
	// is consumed; anything else is left for the modifier parsers.
	usingNewStackFormat := false
	if len(args) >= 2 {
		if n, err := strconv.Atoi(args[1]); err == nil {
			amount = n
			usingNewStackFormat = true
		}
	}

	modifierArgs := args[1:]
	if usingNewStackFormat {
		modifierArgs = args[2:]
	}

	result := base

	parsers := l.parsers.Parsers()
	if len(parsers) > 0 {
		example := base.Item()
		predicates := make([]Predicate, 0, len(parsers))
		for _, parser := range parsers {
			predicate := parser.ParseArguments(modifierArgs, example.Meta)
			if predicate == nil {
				predicate = matchAll
			}
			predicates = append(predicates, predicate)
		}
		result = NewModifiedItem(base, allOf(predicates), example)
	}

	if amount == 1 {
		return result
	}
	return NewStackItem(result, amount, l.policy)
}
