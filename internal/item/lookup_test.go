package item

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowforge/itemkit/internal/domain"
)

// stubResolver is a minimal material table for lookup tests.
type stubResolver struct {
	materials map[string]*domain.Material
}

func newStubResolver(mats ...*domain.Material) *stubResolver {
	r := &stubResolver{materials: make(map[string]*domain.Material)}
	for _, mat := range mats {
		r.materials[strings.ToLower(mat.Name)] = mat
	}
	return r
}

func (r *stubResolver) Resolve(name string) (*domain.Material, bool) {
	mat, ok := r.materials[strings.ToLower(name)]
	if !ok || mat.IsAir() {
		return nil, false
	}
	return mat, true
}

func newTestLookup(t *testing.T, policy domain.StackPolicy) (*Lookup, *Registry, *ParserRegistry) {
	t.Helper()

	registry := NewRegistry()
	parsers := NewParserRegistry()
	air := &domain.Material{Name: domain.MaterialAir, MaxStack: 1}
	lookup := NewLookup(newStubResolver(diamond, stone, air), registry, parsers, policy)
	return lookup, registry, parsers
}

func TestLookup_Materials(t *testing.T) {
	lookup, _, _ := newTestLookup(t, domain.StackAtLeast)

	t.Run("known material matches any amount", func(t *testing.T) {
		matcher := lookup.Parse("DIAMOND")
		require.False(t, IsEmpty(matcher))

		assert.True(t, matcher.Matches(instanceOf(diamond, 1)))
		assert.True(t, matcher.Matches(instanceOf(diamond, 64)))
		assert.False(t, matcher.Matches(instanceOf(stone, 1)))
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		for _, spec := range []string{"diamond", "Diamond", "DIAMOND"} {
			assert.False(t, IsEmpty(lookup.Parse(spec)), "spec %q", spec)
		}
	})

	t.Run("unknown material is empty", func(t *testing.T) {
		matcher := lookup.Parse("unknown_material_xyz")
		assert.True(t, IsEmpty(matcher))
		assert.False(t, matcher.Matches(instanceOf(diamond, 1)))
	})

	t.Run("air sentinel is empty", func(t *testing.T) {
		assert.True(t, IsEmpty(lookup.Parse("air")))
	})

	t.Run("empty string is empty", func(t *testing.T) {
		assert.True(t, IsEmpty(lookup.Parse("")))
	})

	t.Run("too many colon parts is empty", func(t *testing.T) {
		assert.True(t, IsEmpty(lookup.Parse("a:b:c:d")))
	})
}

func TestLookup_Amounts(t *testing.T) {
	lookup, _, _ := newTestLookup(t, domain.StackAtLeast)

	t.Run("new format amount", func(t *testing.T) {
		matcher := lookup.Parse("DIAMOND 5")
		require.False(t, IsEmpty(matcher))

		assert.False(t, matcher.Matches(instanceOf(diamond, 4)))
		assert.True(t, matcher.Matches(instanceOf(diamond, 5)))
		assert.False(t, matcher.Matches(instanceOf(stone, 5)))

		stack, ok := matcher.(*StackItem)
		require.True(t, ok)
		assert.Equal(t, 5, stack.Amount())
	})

	t.Run("amount of one stays unwrapped", func(t *testing.T) {
		matcher := lookup.Parse("DIAMOND 1")
		_, isStack := matcher.(*StackItem)
		assert.False(t, isStack)
	})

	t.Run("legacy material:amount", func(t *testing.T) {
		matcher := lookup.Parse("diamond:5")
		require.False(t, IsEmpty(matcher))

		assert.True(t, matcher.Matches(instanceOf(diamond, 5)))
		assert.False(t, matcher.Matches(instanceOf(diamond, 4)))
	})

	t.Run("new format overrides legacy amount", func(t *testing.T) {
		matcher := lookup.Parse("diamond:5 3")
		require.False(t, IsEmpty(matcher))

		assert.True(t, matcher.Matches(instanceOf(diamond, 3)))
	})

	t.Run("malformed legacy amount is swallowed", func(t *testing.T) {
		matcher := lookup.Parse("diamond:lots")
		require.False(t, IsEmpty(matcher))
		assert.True(t, matcher.Matches(instanceOf(diamond, 1)))
	})

	t.Run("exact policy", func(t *testing.T) {
		exact, _, _ := newTestLookup(t, domain.StackExact)
		matcher := exact.Parse("DIAMOND 5")

		assert.True(t, matcher.Matches(instanceOf(diamond, 5)))
		assert.False(t, matcher.Matches(instanceOf(diamond, 6)))
	})
}

func TestLookup_Alternation(t *testing.T) {
	lookup, _, _ := newTestLookup(t, domain.StackAtLeast)

	t.Run("first resolvable alternative wins", func(t *testing.T) {
		matcher := lookup.Parse("unknown_material_xyz?DIAMOND")
		require.False(t, IsEmpty(matcher))

		reference := lookup.Parse("DIAMOND")
		assert.True(t, matcher.Matches(instanceOf(diamond, 1)))
		assert.Equal(t, reference.Matches(instanceOf(diamond, 1)), matcher.Matches(instanceOf(diamond, 1)))
		assert.Equal(t, reference.Matches(instanceOf(stone, 1)), matcher.Matches(instanceOf(stone, 1)))
	})

	t.Run("earlier alternatives shadow later ones", func(t *testing.T) {
		matcher := lookup.Parse("STONE?DIAMOND")
		assert.True(t, matcher.Matches(instanceOf(stone, 1)))
		assert.False(t, matcher.Matches(instanceOf(diamond, 1)))
	})

	t.Run("all alternatives failing is empty", func(t *testing.T) {
		assert.True(t, IsEmpty(lookup.Parse("nope?also_nope?still_nope")))
	})

	t.Run("alternatives carry their own amounts", func(t *testing.T) {
		matcher := lookup.Parse("nope?DIAMOND 5")
		assert.True(t, matcher.Matches(instanceOf(diamond, 5)))
		assert.False(t, matcher.Matches(instanceOf(diamond, 1)))
	})
}

func TestLookup_CustomItems(t *testing.T) {
	lookup, registry, _ := newTestLookup(t, domain.StackAtLeast)
	registry.Register(taggedCustomItem(t, NewKey("myplugin", "hammer"), "hammer"))

	hammer := func(amount int) *domain.ItemInstance {
		ins := instanceOf(diamond, amount)
		ins.Meta.Tags = map[string]string{"id": "hammer"}
		return ins
	}

	t.Run("namespace:id resolves", func(t *testing.T) {
		matcher := lookup.Parse("myplugin:hammer")
		require.False(t, IsEmpty(matcher))

		assert.True(t, matcher.Matches(hammer(1)))
		assert.False(t, matcher.Matches(instanceOf(diamond, 1)))
	})

	t.Run("case-insensitive key", func(t *testing.T) {
		assert.False(t, IsEmpty(lookup.Parse("MyPlugin:Hammer")))
	})

	t.Run("unknown id falls back to legacy then empty", func(t *testing.T) {
		assert.True(t, IsEmpty(lookup.Parse("myplugin:mallet")))
	})

	t.Run("legacy ns:id:amount equals ns:id amount", func(t *testing.T) {
		legacy := lookup.Parse("myplugin:hammer:3")
		current := lookup.Parse("myplugin:hammer 3")
		require.False(t, IsEmpty(legacy))
		require.False(t, IsEmpty(current))

		for _, candidate := range []*domain.ItemInstance{hammer(1), hammer(2), hammer(3), hammer(4), instanceOf(diamond, 3)} {
			assert.Equal(t, current.Matches(candidate), legacy.Matches(candidate))
		}
	})

	t.Run("legacy three-part form requires a registered key", func(t *testing.T) {
		assert.True(t, IsEmpty(lookup.Parse("myplugin:mallet:3")))
		assert.True(t, IsEmpty(lookup.Parse("diamond:5:3")))
	})

	t.Run("matcher binds definition at parse time", func(t *testing.T) {
		bound := lookup.Parse("myplugin:hammer")
		registry.Register(taggedCustomItem(t, NewKey("myplugin", "hammer"), "hammer_v2"))

		// The already-parsed matcher keeps the old definition.
		assert.True(t, bound.Matches(hammer(1)))

		fresh := lookup.Parse("myplugin:hammer")
		assert.False(t, fresh.Matches(hammer(1)))
	})
}

func TestLookup_Modifiers(t *testing.T) {
	t.Run("tokens after amount go to every parser", func(t *testing.T) {
		lookup, _, parsers := newTestLookup(t, domain.StackAtLeast)
		first := &recordingParser{name: "first"}
		second := &recordingParser{name: "second"}
		parsers.Register(first)
		parsers.Register(second)

		lookup.Parse("DIAMOND 5 glow loud")

		require.Len(t, first.seen, 1)
		assert.Equal(t, []string{"glow", "loud"}, first.seen[0])
		assert.Equal(t, first.seen, second.seen)
	})

	t.Run("non-integer second token is a modifier token", func(t *testing.T) {
		lookup, _, parsers := newTestLookup(t, domain.StackAtLeast)
		parser := &recordingParser{}
		parsers.Register(parser)

		matcher := lookup.Parse("DIAMOND glow")

		require.Len(t, parser.seen, 1)
		assert.Equal(t, []string{"glow"}, parser.seen[0])

		// No amount was consumed, so no stack wrapper.
		_, isStack := matcher.(*StackItem)
		assert.False(t, isStack)
	})

	t.Run("registered parsers wrap the result", func(t *testing.T) {
		lookup, _, parsers := newTestLookup(t, domain.StackAtLeast)
		parsers.Register(&recordingParser{})

		matcher := lookup.Parse("DIAMOND")
		_, isModified := matcher.(*ModifiedItem)
		assert.True(t, isModified)
		assert.True(t, matcher.Matches(matcher.Item()))
	})

	t.Run("predicates are ANDed with the base", func(t *testing.T) {
		lookup, _, parsers := newTestLookup(t, domain.StackAtLeast)
		parsers.Register(&recordingParser{predicate: func(ins *domain.ItemInstance) bool {
			return ins.Meta != nil && ins.Meta.Unbreakable
		}})

		matcher := lookup.Parse("DIAMOND")

		plain := instanceOf(diamond, 1)
		assert.False(t, matcher.Matches(plain))

		plain.Meta.Unbreakable = true
		assert.True(t, matcher.Matches(plain))

		wrong := instanceOf(stone, 1)
		wrong.Meta.Unbreakable = true
		assert.False(t, matcher.Matches(wrong))
	})

	t.Run("nil predicate is treated as always true", func(t *testing.T) {
		lookup, _, parsers := newTestLookup(t, domain.StackAtLeast)
		parsers.Register(&recordingParser{predicate: nil})

		matcher := lookup.Parse("DIAMOND")
		assert.True(t, matcher.Matches(instanceOf(diamond, 1)))
	})

	t.Run("metadata mutation shows up in the example", func(t *testing.T) {
		lookup, _, parsers := newTestLookup(t, domain.StackAtLeast)
		parsers.Register(argParserFunc(func(args []string, meta *domain.Metadata) Predicate {
			for _, arg := range args {
				if arg == "glow" {
					meta.AddEnchant("glow", 1)
					return func(ins *domain.ItemInstance) bool {
						return ins.Meta.EnchantLevel("glow") >= 1
					}
				}
			}
			return nil
		}))

		matcher := lookup.Parse("DIAMOND glow")
		example := matcher.Item()
		require.NotNil(t, example)
		assert.Equal(t, 1, example.Meta.EnchantLevel("glow"))
		assert.True(t, matcher.Matches(example))
	})

	t.Run("stack wraps outside the modifier", func(t *testing.T) {
		lookup, _, parsers := newTestLookup(t, domain.StackAtLeast)
		parsers.Register(&recordingParser{})

		matcher := lookup.Parse("DIAMOND 5 glow")
		stack, ok := matcher.(*StackItem)
		require.True(t, ok)
		_, ok = stack.Base().(*ModifiedItem)
		assert.True(t, ok)
	})
}

// argParserFunc adapts a function to the ArgParser interface.
type argParserFunc func(args []string, meta *domain.Metadata) Predicate

func (f argParserFunc) ParseArguments(args []string, meta *domain.Metadata) Predicate {
	return f(args, meta)
}

func TestLookup_Reflexivity(t *testing.T) {
	lookup, registry, parsers := newTestLookup(t, domain.StackAtLeast)
	registry.Register(taggedCustomItem(t, NewKey("myplugin", "hammer"), "hammer"))
	parsers.Register(&recordingParser{})

	specs := []string{
		"DIAMOND",
		"DIAMOND 5",
		"diamond:5",
		"myplugin:hammer",
		"myplugin:hammer 3",
		"myplugin:hammer:3",
		"nope?STONE 2",
	}

	for _, spec := range specs {
		t.Run(spec, func(t *testing.T) {
			matcher := lookup.Parse(spec)
			require.False(t, IsEmpty(matcher))
			assert.True(t, matcher.Matches(matcher.Item()), "matcher must accept its own representative")
		})
	}
}

func TestLookup_ConcurrentUse(t *testing.T) {
	lookup, registry, _ := newTestLookup(t, domain.StackAtLeast)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(2)

		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := NewKey("plugin", fmt.Sprintf("item%d", i%8))
				registry.Register(taggedCustomItem(t, key, key.ID))
			}
		}(w)

		go func() {
			defer wg.Done()
			candidate := instanceOf(diamond, 5)
			for i := 0; i < 100; i++ {
				matcher := lookup.Parse("DIAMOND 5?plugin:item3")
				if !IsEmpty(matcher) {
					matcher.Matches(candidate)
				}
			}
		}()
	}

	wg.Wait()
}
