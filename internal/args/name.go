package args

import (
	"strings"

	"github.com/hollowforge/itemkit/internal/domain"
	"github.com/hollowforge/itemkit/internal/item"
)

// NamePrefix marks a display name modifier token.
const NamePrefix = "name:"

// NameParser recognizes "name:<text>" modifier tokens. Underscores
// stand in for spaces since the grammar tokenizes on single spaces.
// The candidate's display name must equal the required name exactly.
type NameParser struct{}

// NewNameParser builds the display name parser.
func NewNameParser() *NameParser {
	return &NameParser{}
}

func (p *NameParser) ParseArguments(tokens []string, meta *domain.Metadata) item.Predicate {
	required := ""
	for _, token := range tokens {
		if !strings.HasPrefix(strings.ToLower(token), NamePrefix) {
			continue
		}
		raw := token[len(NamePrefix):]
		if raw == "" {
			continue
		}
		required = strings.ReplaceAll(raw, "_", " ")
	}

	if required == "" {
		return nil
	}

	meta.DisplayName = required

	return func(ins *domain.ItemInstance) bool {
		return ins != nil && ins.Meta != nil && ins.Meta.DisplayName == required
	}
}
