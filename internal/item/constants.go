package item

// Lookup grammar separators
const (
	// AlternationSeparator splits a spec into fallback alternatives,
	// tried left to right.
	AlternationSeparator = "?"

	// TokenSeparator splits a single alternative into tokens.
	TokenSeparator = " "

	// KeySeparator splits the identity token into namespace/id parts.
	KeySeparator = ":"
)
