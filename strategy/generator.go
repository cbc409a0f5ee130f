package strategy

import (
	"context"

	"github.com/renga-collective/renga/model"
	"github.com/renga-collective/renga/poem"
)

// Generator produces the next poem line from poem state and a backend
// client.
type Generator interface {
	Generate(ctx context.Context, p *poem.Poem, client model.Client) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, p *poem.Poem, client model.Client) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, p *poem.Poem, client model.Client) (string, error) {
	return f(ctx, p, client)
}

// New builds a generator that prompts the backend once with the selector's
// context and returns the reply verbatim.
func New(selector ContextSelector) Generator {
	return GeneratorFunc(func(ctx context.Context, p *poem.Poem, client model.Client) (string, error) {
		return client.Generate(ctx, selector.Select(p), model.Options{})
	})
}

// Predicate is a boolean test over poem state. Predicates never reach the
// backend.
type Predicate func(p *poem.Poem) bool

// Conditional dispatches to ifTrue when cond holds and ifFalse otherwise.
// The combinator is a generic two-way switch; it holds no state and adds no
// logic of its own.
func Conditional(cond Predicate, ifTrue, ifFalse Generator) Generator {
	return GeneratorFunc(func(ctx context.Context, p *poem.Poem, client model.Client) (string, error) {
		if cond(p) {
			return ifTrue.Generate(ctx, p, client)
		}
		return ifFalse.Generate(ctx, p, client)
	})
}

// ClosingTurn is true exactly when the next appended line will be the
// poem's last.
func ClosingTurn() Predicate {
	return func(p *poem.Poem) bool {
		return p.Len() == p.MaxLines()-1
	}
}
