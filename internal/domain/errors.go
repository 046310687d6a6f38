package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Material errors
	ErrMsgUnknownMaterial  = "unknown material"
	ErrMsgAirMaterial      = "material is the empty sentinel"
	ErrMsgDuplicateKey     = "duplicate material name"
	ErrMsgInvalidMaxStack  = "max stack must be positive"
	ErrMsgNoMaterialsFound = "no materials defined"

	// Custom item errors
	ErrMsgNilTest           = "custom item test is nil"
	ErrMsgNilExample        = "custom item example is nil"
	ErrMsgSelfReference     = "custom item delegates to itself"
	ErrMsgNotReflexive      = "custom item does not match its own representative"
	ErrMsgEmptyRecipePart   = "recipe part did not resolve"
	ErrMsgInvalidStackCount = "stack amount must be positive"

	// Placeholder errors
	ErrMsgUnknownPlaceholder = "unknown placeholder"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, detail) for additional context.
var (
	ErrUnknownMaterial = errors.New(ErrMsgUnknownMaterial)
	ErrAirMaterial     = errors.New(ErrMsgAirMaterial)
	ErrDuplicateKey    = errors.New(ErrMsgDuplicateKey)

	ErrNilTest       = errors.New(ErrMsgNilTest)
	ErrNilExample    = errors.New(ErrMsgNilExample)
	ErrSelfReference = errors.New(ErrMsgSelfReference)
	ErrNotReflexive  = errors.New(ErrMsgNotReflexive)

	ErrEmptyRecipePart = errors.New(ErrMsgEmptyRecipePart)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
