package domain

// StackPolicy controls how a stack matcher compares a candidate's
// amount against the required amount. The original behavior is not
// pinned down anywhere authoritative, so it is a configuration knob
// rather than a hardcoded choice.
type StackPolicy string

const (
	// StackAtLeast accepts candidates carrying the required amount or
	// more. This is the default: recipe checks consume from stacks.
	StackAtLeast StackPolicy = "at_least"

	// StackExact accepts only candidates carrying exactly the required
	// amount.
	StackExact StackPolicy = "exact"
)

// Satisfies reports whether amount meets required under the policy.
// Unknown policies fall back to at-least.
func (p StackPolicy) Satisfies(amount, required int) bool {
	if p == StackExact {
		return amount == required
	}
	return amount >= required
}

// Valid reports whether p is a known policy value.
func (p StackPolicy) Valid() bool {
	return p == StackAtLeast || p == StackExact
}
