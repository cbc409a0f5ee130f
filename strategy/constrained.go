package strategy

import (
	"context"
	"fmt"

	"github.com/renga-collective/renga/model"
	"github.com/renga-collective/renga/poem"
)

// Defaults for constrained generation.
const (
	DefaultCandidates   = 8
	DefaultMaxNewTokens = 20
)

type constrainedConfig struct {
	candidates   int
	maxNewTokens int
}

// ConstrainedOption configures a constrained generator.
type ConstrainedOption func(*constrainedConfig)

// WithCandidates sets how many candidates are sampled per turn.
// Non-positive values keep the default.
func WithCandidates(n int) ConstrainedOption {
	return func(c *constrainedConfig) {
		if n > 0 {
			c.candidates = n
		}
	}
}

// WithMaxNewTokens sets the token budget for each candidate call.
// Non-positive values keep the default.
func WithMaxNewTokens(n int) ConstrainedOption {
	return func(c *constrainedConfig) {
		if n > 0 {
			c.maxNewTokens = n
		}
	}
}

// Constrained builds a rejection-sampling generator. Each turn it computes
// the selector's prompt once, asks the backend for a fixed number of
// candidates with that same prompt, one call at a time, then scores them
// with the factory's per-turn cost function and returns the cheapest.
// Ties go to the earliest candidate, so a fixed backend sequence selects
// deterministically. Any failed candidate call fails the whole turn; there
// is no partial recovery.
func Constrained(selector ContextSelector, factory ScoreFactory, opts ...ConstrainedOption) Generator {
	cfg := constrainedConfig{
		candidates:   DefaultCandidates,
		maxNewTokens: DefaultMaxNewTokens,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return GeneratorFunc(func(ctx context.Context, p *poem.Poem, client model.Client) (string, error) {
		prompt := selector.Select(p)

		candidates := make([]string, 0, cfg.candidates)
		for range cfg.candidates {
			line, err := client.Generate(ctx, prompt, model.Options{MaxNewTokens: cfg.maxNewTokens})
			if err != nil {
				return "", fmt.Errorf("candidate %d: %w", len(candidates)+1, err)
			}
			candidates = append(candidates, line)
		}

		score, err := factory.Build(p)
		if err != nil {
			return "", err
		}

		best := 0
		bestCost := score(candidates[0])
		for i := 1; i < len(candidates); i++ {
			if cost := score(candidates[i]); cost < bestCost {
				best, bestCost = i, cost
			}
		}
		return candidates[best], nil
	})
}
