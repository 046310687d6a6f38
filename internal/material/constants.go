package material

// DefaultMaxStack is used when a programmatic definition omits the
// stack size.
const DefaultMaxStack = 64

// SchemaName identifies the embedded materials schema to the validator
const SchemaName = "materials.schema.json"

// Error message formats for config loading
const (
	ErrMsgReadConfigFileFailed = "failed to read materials config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse materials config: %w"
	ErrMsgConfigNil            = "config is nil"
)
