package compose

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/renga-collective/renga/model"
	"github.com/renga-collective/renga/store"
)

// DefaultGenerator is the strategy used when none is named.
const DefaultGenerator = "closure"

// Config holds initialization parameters for a composition run. Each
// subsystem section delegates to that subsystem's config-driven
// constructor.
type Config struct {
	Model     model.Config `json:"model"`
	Store     store.Config `json:"store"`
	Generator string       `json:"generator,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults for all subsystems.
func DefaultConfig() Config {
	return Config{
		Model:     model.DefaultConfig(),
		Store:     store.DefaultConfig(),
		Generator: DefaultGenerator,
	}
}

// Merge applies non-zero values from source into c, delegating to each
// subsystem's Merge method.
func (c *Config) Merge(source *Config) {
	c.Model.Merge(&source.Model)
	c.Store.Merge(&source.Store)

	if source.Generator != "" {
		c.Generator = source.Generator
	}
}

// LoadConfig reads a JSON config file, merges it with defaults, and returns
// the resulting Config.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
