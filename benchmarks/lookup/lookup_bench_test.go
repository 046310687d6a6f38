package lookup_bench

import (
	"fmt"
	"testing"

	"github.com/hollowforge/itemkit/internal/args"
	"github.com/hollowforge/itemkit/internal/domain"
	"github.com/hollowforge/itemkit/internal/fastitem"
	"github.com/hollowforge/itemkit/internal/item"
	"github.com/hollowforge/itemkit/internal/material"
)

// newBenchLookup builds a lookup with the default catalog, the built-in
// arg parsers and a populated registry, approximating a live install.
func newBenchLookup(b *testing.B, customCount int) (*item.Lookup, *item.Registry) {
	b.Helper()

	catalog := material.DefaultCatalog()

	registry := item.NewRegistry()
	for i := 0; i < customCount; i++ {
		tag := fmt.Sprintf("item_%d", i)
		custom, err := item.NewCustomItem(item.NewKey("bench", tag),
			func(ins *domain.ItemInstance) bool {
				return ins.Meta != nil && ins.Meta.Tags["bench:id"] == tag
			},
			func() *domain.ItemInstance {
				mat, _ := catalog.Resolve("diamond")
				ins := domain.NewInstance(mat)
				ins.Meta.Tags = map[string]string{"bench:id": tag}
				return ins
			})
		if err != nil {
			b.Fatalf("custom item: %v", err)
		}
		registry.Register(custom)
	}

	parsers := item.NewParserRegistry()
	parsers.Register(args.NewEnchantParser(args.DefaultEnchants))
	parsers.Register(args.NewNameParser())
	parsers.Register(args.NewUnbreakableParser())

	return item.NewLookup(catalog, registry, parsers, domain.StackAtLeast), registry
}

func BenchmarkParseMaterial(b *testing.B) {
	lookup, _ := newBenchLookup(b, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lookup.Parse("diamond")
	}
}

func BenchmarkParseCustom(b *testing.B) {
	lookup, _ := newBenchLookup(b, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lookup.Parse("bench:item_42")
	}
}

func BenchmarkParseModified(b *testing.B) {
	lookup, _ := newBenchLookup(b, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lookup.Parse("diamond_sword 2 sharpness:3 name:Oathkeeper unbreakable")
	}
}

func BenchmarkParseAlternation(b *testing.B) {
	lookup, _ := newBenchLookup(b, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lookup.Parse("nope:missing ? also_unknown ? diamond 3")
	}
}

// BenchmarkMatches measures the hot path: a pre-parsed matcher tested
// against a candidate, as a recipe check would do per slot.
func BenchmarkMatches(b *testing.B) {
	lookup, _ := newBenchLookup(b, 100)

	matcher := lookup.Parse("diamond_sword sharpness:3 unbreakable")
	candidate := matcher.Item()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !matcher.Matches(candidate) {
			b.Fatal("matcher rejected its own representative")
		}
	}
}

func BenchmarkMatchesMiss(b *testing.B) {
	lookup, _ := newBenchLookup(b, 100)

	matcher := lookup.Parse("diamond_sword sharpness:3")
	candidate := lookup.Parse("stone").Item()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if matcher.Matches(candidate) {
			b.Fatal("matcher accepted the wrong material")
		}
	}
}

// BenchmarkTestRaw measures matching straight off the raw map form,
// through the pooled accessor.
func BenchmarkTestRaw(b *testing.B) {
	lookup, _ := newBenchLookup(b, 100)

	matcher := lookup.Parse("diamond_sword sharpness:3")
	accessor := fastitem.NewAccessor(material.DefaultCatalog())
	raw := accessor.ToRaw(matcher.Item())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !accessor.TestRaw(matcher, raw) {
			b.Fatal("raw candidate rejected")
		}
	}
}

func BenchmarkCustomFor(b *testing.B) {
	lookup, registry := newBenchLookup(b, 100)

	candidate := lookup.Parse("bench:item_42").Item()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := registry.CustomFor(candidate); !ok {
			b.Fatal("custom item not found")
		}
	}
}
