// Package store persists finished poems as JSON files in a poems
// directory.
package store

import (
	"context"

	"github.com/renga-collective/renga/poem"
)

// DefaultDir is the poems directory used when none is configured.
const DefaultDir = "poems"

// Store saves and retrieves poem records by name. Implementations are
// stateless; they perform I/O on each call without caching.
type Store interface {
	// Save persists a record and returns the name it was stored under.
	Save(ctx context.Context, rec poem.Record) (string, error)
	// Load retrieves the record stored under name.
	Load(ctx context.Context, name string) (poem.Record, error)
	// List returns all stored names, oldest first.
	List(ctx context.Context) ([]string, error)
}

// Config holds store initialization parameters.
type Config struct {
	Dir string `json:"dir,omitempty"` // Poems directory; empty means DefaultDir.
}

// DefaultConfig returns the default store configuration.
func DefaultConfig() Config {
	return Config{Dir: DefaultDir}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Dir != "" {
		c.Dir = source.Dir
	}
}

// NewStore creates a Store from configuration.
func NewStore(cfg *Config) (Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = DefaultDir
	}
	return NewFileStore(dir), nil
}
