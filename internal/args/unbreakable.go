package args

import (
	"strings"

	"github.com/hollowforge/itemkit/internal/domain"
	"github.com/hollowforge/itemkit/internal/item"
)

// UnbreakableToken marks the unbreakable flag modifier.
const UnbreakableToken = "unbreakable"

// UnbreakableParser recognizes the bare "unbreakable" modifier token.
type UnbreakableParser struct{}

// NewUnbreakableParser builds the unbreakable flag parser.
func NewUnbreakableParser() *UnbreakableParser {
	return &UnbreakableParser{}
}

func (p *UnbreakableParser) ParseArguments(tokens []string, meta *domain.Metadata) item.Predicate {
	found := false
	for _, token := range tokens {
		if strings.EqualFold(token, UnbreakableToken) {
			found = true
			break
		}
	}

	if !found {
		return nil
	}

	meta.Unbreakable = true

	return func(ins *domain.ItemInstance) bool {
		return ins != nil && ins.Meta != nil && ins.Meta.Unbreakable
	}
}
