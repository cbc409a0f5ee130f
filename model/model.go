// Package model defines the text-generation backend boundary for poem
// composition.
package model

import "context"

// Defaults for generation parameters.
const (
	DefaultModel        = "gpt2"
	DefaultTemperature  = 0.7
	DefaultMaxNewTokens = 20
)

// Options control a single generation call. Zero values fall back to the
// client's configured defaults.
type Options struct {
	MaxNewTokens int
	Temperature  float64
}

// Client produces one poem line per call. Implementations must return a
// single line: output is truncated at the first newline and surrounding
// whitespace is trimmed before returning. Failures propagate to the caller
// untouched; no retries happen at this layer.
type Client interface {
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
}
