package app

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"falling-sand/internal/sims/sand"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed config.schema.json
var configSchemaSource string

var configSchema = jsonschema.MustCompileString("config.schema.json", configSchemaSource)

// fileConfig is the YAML layout: the world settings at the top level next to
// the shell settings.
type fileConfig struct {
	sand.Config `yaml:",inline"`

	Scale    int    `yaml:"scale"`
	TPS      int    `yaml:"tps"`
	LogLevel string `yaml:"log_level"`
}

// LoadFile overlays the YAML file at path onto cfg. The document is checked
// against the embedded JSON schema before any field is applied.
func LoadFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := validateDocument(raw); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fc := fileConfig{Config: cfg.Sim, Scale: cfg.Scale, TPS: cfg.TPS, LogLevel: cfg.LogLevel}
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	cfg.Sim = fc.Config
	cfg.Scale = fc.Scale
	cfg.TPS = fc.TPS
	cfg.LogLevel = fc.LogLevel
	return nil
}

func validateDocument(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}
	if doc == nil {
		doc = map[string]any{}
	}
	// Round-trip through JSON so the validator sees JSON value types.
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var generic any
	if err := json.Unmarshal(b, &generic); err != nil {
		return err
	}
	if err := configSchema.Validate(generic); err != nil {
		return fmt.Errorf("%w: %v", sand.ErrInvalidConfig, err)
	}
	return nil
}
