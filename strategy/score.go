package strategy

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/renga-collective/renga/poem"
)

// DefaultRhymeChars is the rhyme key length used when none is given.
const DefaultRhymeChars = 3

// ScoreFunc assigns a cost to a candidate line. Lower is better.
type ScoreFunc func(candidate string) float64

// ScoreFactory builds a per-turn cost function from poem state. Build runs
// once per generation turn, so factories that need an external capability
// surface its absence here rather than at construction.
type ScoreFactory interface {
	Build(p *poem.Poem) (ScoreFunc, error)
}

// FactoryFunc adapts a function to the ScoreFactory interface.
type FactoryFunc func(p *poem.Poem) (ScoreFunc, error)

func (f FactoryFunc) Build(p *poem.Poem) (ScoreFunc, error) { return f(p) }

// Syllables scores candidates by distance from a target syllable count.
// Counting is the vowel-cluster approximation of CountSyllables; poem state
// is not consulted.
func Syllables(target int) ScoreFactory {
	return FactoryFunc(func(*poem.Poem) (ScoreFunc, error) {
		return func(candidate string) float64 {
			return math.Abs(float64(CountSyllables(candidate) - target))
		}, nil
	})
}

// Rhyme scores candidates against the poem's newest line: 0 when the last
// words share an ending of chars characters, 1 otherwise. With no line to
// rhyme against (or a newest line with no words) every candidate scores 0.
// A candidate with no words scores 1. Non-positive chars falls back to
// DefaultRhymeChars. The ending comparison is plain spelling; "rough" and
// "though" count as a rhyme.
func Rhyme(chars int) ScoreFactory {
	if chars < 1 {
		chars = DefaultRhymeChars
	}
	return FactoryFunc(func(p *poem.Poem) (ScoreFunc, error) {
		if p == nil || p.Len() == 0 {
			return unconstrained, nil
		}
		words := strings.Fields(p.Text(p.Len() - 1))
		if len(words) == 0 {
			return unconstrained, nil
		}
		ref := endSound(words[len(words)-1], chars)
		return func(candidate string) float64 {
			cw := strings.Fields(candidate)
			if len(cw) == 0 {
				return 1
			}
			if endSound(cw[len(cw)-1], chars) == ref {
				return 0
			}
			return 1
		}, nil
	})
}

func unconstrained(string) float64 { return 0 }

// Combine sums the costs of several factories with equal weight.
func Combine(factories ...ScoreFactory) ScoreFactory {
	return FactoryFunc(func(p *poem.Poem) (ScoreFunc, error) {
		scores, err := buildAll(p, factories)
		if err != nil {
			return nil, err
		}
		return func(candidate string) float64 {
			var total float64
			for _, score := range scores {
				total += score(candidate)
			}
			return total
		}, nil
	})
}

// Weighted sums the costs of several factories, scaling each by its weight.
// It fails with ErrWeights when the two lists differ in length.
func Weighted(weights []float64, factories ...ScoreFactory) (ScoreFactory, error) {
	if len(weights) != len(factories) {
		return nil, fmt.Errorf("%w: %d weights for %d factories", ErrWeights, len(weights), len(factories))
	}
	weights = slices.Clone(weights)
	return FactoryFunc(func(p *poem.Poem) (ScoreFunc, error) {
		scores, err := buildAll(p, factories)
		if err != nil {
			return nil, err
		}
		return func(candidate string) float64 {
			var total float64
			for i, score := range scores {
				total += weights[i] * score(candidate)
			}
			return total
		}, nil
	}), nil
}

func buildAll(p *poem.Poem, factories []ScoreFactory) ([]ScoreFunc, error) {
	scores := make([]ScoreFunc, len(factories))
	for i, factory := range factories {
		score, err := factory.Build(p)
		if err != nil {
			return nil, err
		}
		scores[i] = score
	}
	return scores, nil
}

// CountSyllables approximates the syllable count of text as the number of
// maximal vowel runs (a e i o u y, case-insensitive) across the whole
// string, floored at 1. The approximation is deliberately crude: silent e
// and diphthongs are not modeled, and downstream scoring depends on its
// exact quirks staying put.
func CountSyllables(text string) int {
	count := 0
	inRun := false
	for _, r := range strings.ToLower(text) {
		if strings.ContainsRune("aeiouy", r) {
			if !inRun {
				count++
				inRun = true
			}
		} else {
			inRun = false
		}
	}
	if count == 0 {
		return 1
	}
	return count
}

// endSound is the rhyme key of a word: lower-cased, trailing punctuation
// stripped, last chars characters (the whole word when shorter). Counted
// in runes, not bytes, so accented endings keep their full key.
func endSound(word string, chars int) string {
	runes := []rune(strings.ToLower(strings.TrimRight(word, `.,!?;:'"`)))
	if len(runes) <= chars {
		return string(runes)
	}
	return string(runes[len(runes)-chars:])
}
