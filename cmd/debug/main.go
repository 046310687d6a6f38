// Command debug resolves lookup strings against a seeded catalog and
// registry, for poking at the grammar from a terminal:
//
//	go run ./cmd/debug "diamond_sword sharpness:3 name:Oathkeeper"
//
// Without arguments it reads one lookup string per line from stdin.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hollowforge/itemkit/internal/args"
	"github.com/hollowforge/itemkit/internal/config"
	"github.com/hollowforge/itemkit/internal/domain"
	"github.com/hollowforge/itemkit/internal/item"
	"github.com/hollowforge/itemkit/internal/logger"
	"github.com/hollowforge/itemkit/internal/material"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	initLogger(cfg)

	catalog, err := loadCatalog(cfg)
	if err != nil {
		log.Fatalf("Failed to load material catalog: %v", err)
	}

	lookup := buildLookup(cfg, catalog)

	if len(os.Args) > 1 {
		describe(lookup, strings.Join(os.Args[1:], " "))
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		describe(lookup, line)
	}
}

func initLogger(cfg *config.Config) {
	addSource := cfg.Environment == logger.EnvironmentDev
	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		logger.DefaultVersion,
		cfg.Environment,
		addSource,
	))
}

func loadCatalog(cfg *config.Config) (*material.Catalog, error) {
	if cfg.MaterialsPath == "" {
		return material.DefaultCatalog(), nil
	}
	return material.LoadCatalog(cfg.MaterialsPath)
}

func buildLookup(cfg *config.Config, catalog *material.Catalog) *item.Lookup {
	registry := item.NewRegistry()
	parsers := item.NewParserRegistry()
	parsers.Register(args.NewEnchantParser(args.DefaultEnchants))
	parsers.Register(args.NewNameParser())
	parsers.Register(args.NewUnbreakableParser())

	seedRegistry(registry, catalog)

	return item.NewLookup(catalog, registry, parsers, cfg.StackPolicy)
}

// seedRegistry registers a couple of sample custom items so namespaced
// lookups have something to hit.
func seedRegistry(registry *item.Registry, catalog *material.Catalog) {
	samples := []struct {
		key item.Key
		mat string
		tag string
	}{
		{item.NewKey("demo", "hammer"), "iron_sword", "hammer"},
		{item.NewKey("demo", "lucky_gem"), "diamond", "lucky_gem"},
	}

	for _, sample := range samples {
		mat, ok := catalog.Resolve(sample.mat)
		if !ok {
			continue
		}
		tag := sample.tag
		custom, err := item.NewCustomItem(sample.key,
			func(ins *domain.ItemInstance) bool {
				return ins.Meta != nil && ins.Meta.Tags["demo:id"] == tag
			},
			func() *domain.ItemInstance {
				ins := domain.NewInstance(mat)
				ins.Meta.Tags = map[string]string{"demo:id": tag}
				return ins
			})
		if err != nil {
			logger.Error("Sample item rejected", "key", sample.key.String(), "error", err)
			continue
		}
		registry.Register(custom)
	}
}

func describe(lookup *item.Lookup, spec string) {
	matcher := lookup.Parse(spec)
	fmt.Printf("%-40q -> %s\n", spec, render(matcher))
}

func render(matcher item.TestableItem) string {
	switch m := matcher.(type) {
	case *item.MaterialItem:
		return fmt.Sprintf("material(%s)", m.Material().Name)
	case *item.CustomItem:
		return fmt.Sprintf("custom(%s)", m.Key())
	case *item.ModifiedItem:
		example := m.Item()
		return fmt.Sprintf("modified(%s, name=%q, enchants=%v, unbreakable=%v)",
			render(m.Base()), example.Meta.DisplayName, example.Meta.Enchants, example.Meta.Unbreakable)
	case *item.StackItem:
		return fmt.Sprintf("stack(%s x%d)", render(m.Base()), m.Amount())
	default:
		if item.IsEmpty(matcher) {
			return "empty"
		}
		return fmt.Sprintf("%T", matcher)
	}
}
