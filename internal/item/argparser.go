package item

import (
	"sync"

	"github.com/hollowforge/itemkit/internal/domain"
	"github.com/hollowforge/itemkit/internal/metrics"
)

// ArgParser turns leftover lookup tokens into an extra match predicate.
//
// Every registered parser receives the entire leftover token array and
// the base item's metadata snapshot on every lookup. A parser that
// recognizes none of the tokens must return a predicate that accepts
// everything (or nil, which is treated the same) so that it never
// blocks constraints contributed by other parsers. A parser that
// claims tokens it does not understand silently corrupts unrelated
// matching; that is a contract violation, not a recoverable error.
//
// Parsers may mutate the metadata snapshot so the representative
// instance displays what the predicate requires.
type ArgParser interface {
	ParseArguments(args []string, meta *domain.Metadata) Predicate
}

// ParserRegistry holds arg parsers in registration order. Order is
// semantically significant: metadata mutations apply in registration
// order on every lookup.
type ParserRegistry struct {
	mu      sync.RWMutex
	parsers []ArgParser
}

// NewParserRegistry creates an empty parser registry.
func NewParserRegistry() *ParserRegistry {
	return &ParserRegistry{}
}

// Register appends a parser. Nil parsers are ignored.
func (r *ParserRegistry) Register(parser ArgParser) {
	if parser == nil {
		return
	}

	r.mu.Lock()
	r.parsers = append(r.parsers, parser)
	size := len(r.parsers)
	r.mu.Unlock()

	metrics.ArgParsersActive.Set(float64(size))
}

// Parsers returns a snapshot of the registered parsers in registration
// order.
func (r *ParserRegistry) Parsers() []ArgParser {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ArgParser, len(r.parsers))
	copy(out, r.parsers)
	return out
}

// Len returns the number of registered parsers.
func (r *ParserRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.parsers)
}

func matchAll(*domain.ItemInstance) bool { return true }

// allOf combines predicates with logical AND.
func allOf(predicates []Predicate) Predicate {
	return func(ins *domain.ItemInstance) bool {
		for _, predicate := range predicates {
			if !predicate(ins) {
				return false
			}
		}
		return true
	}
}
