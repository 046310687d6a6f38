package material

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hollowforge/itemkit/internal/domain"
	"github.com/hollowforge/itemkit/internal/validation"
)

//go:embed materials.schema.json
var materialsSchema []byte

// Config represents the JSON configuration for the material table
type Config struct {
	Version     string `json:"version" validate:"required"`
	Description string `json:"description"`

	Materials []domain.Material `json:"materials" validate:"required,min=1,dive"`
}

// Loader handles loading and validating material configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
}

type materialLoader struct {
	schemaValidator validation.SchemaValidator
	structValidator *validator.Validate
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &materialLoader{
		schemaValidator: validation.NewSchemaValidator(),
		structValidator: validator.New(),
	}
}

// Load reads and parses a materials JSON file
func (l *materialLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	// Validate against schema first
	if err := l.schemaValidator.ValidateBytes(data, SchemaName, materialsSchema); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks the material configuration for errors
func (l *materialLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgConfigNil)
	}

	if err := l.structValidator.Struct(config); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	// Track names for duplicate detection
	names := make(map[string]bool, len(config.Materials))
	for i := range config.Materials {
		name := strings.ToLower(config.Materials[i].Name)
		if names[name] {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateKey, config.Materials[i].Name)
		}
		names[name] = true
	}

	return nil
}

// LoadCatalog loads, validates and builds a catalog from path.
func LoadCatalog(path string) (*Catalog, error) {
	loader := NewLoader()

	config, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	if err := loader.Validate(config); err != nil {
		return nil, err
	}

	return NewCatalog(config.Materials)
}
