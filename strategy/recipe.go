package strategy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Recipe is a YAML-declared constrained generator: one context selector,
// one or more weighted scorers, and sampling parameters.
//
//	context:
//	  selector: last
//	  n: 2
//	scorers:
//	  - kind: syllables
//	    target: 7
//	    weight: 2
//	  - kind: rhyme
//	candidates: 8
//	max_new_tokens: 20
type Recipe struct {
	Context      RecipeContext  `yaml:"context"`
	Scorers      []RecipeScorer `yaml:"scorers"`
	Candidates   int            `yaml:"candidates"`
	MaxNewTokens int            `yaml:"max_new_tokens"`
}

// RecipeContext names a context selector and its argument. Selector is one
// of last, first, last_words, first_words, lines or span; N serves the
// first four, Indices serves lines and Span serves span.
type RecipeContext struct {
	Selector string `yaml:"selector"`
	N        int    `yaml:"n"`
	Indices  []int  `yaml:"indices"`
	Span     string `yaml:"span"`
}

// RecipeScorer names a score factory. Kind is one of syllables, rhyme or
// sentiment; Target serves syllables (an integer cluster count) and
// sentiment (a polarity in [-1, 1]), Chars serves rhyme. A zero Weight
// means 1.
type RecipeScorer struct {
	Kind   string  `yaml:"kind"`
	Target float64 `yaml:"target"`
	Chars  int     `yaml:"chars"`
	Weight float64 `yaml:"weight"`
}

// LoadRecipe reads and compiles a recipe file.
func LoadRecipe(path string) (Generator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecipe, err)
	}
	return ParseRecipe(data)
}

// ParseRecipe compiles YAML recipe bytes into a constrained generator.
// Structural problems fail with ErrInvalidRecipe.
func ParseRecipe(data []byte) (Generator, error) {
	var recipe Recipe
	if err := yaml.Unmarshal(data, &recipe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecipe, err)
	}
	return recipe.Compile()
}

// Compile builds the constrained generator the recipe describes. Omitted
// candidates and max_new_tokens fall back to the package defaults; omitted
// scorer weights default to 1.
func (r Recipe) Compile() (Generator, error) {
	selector, err := r.Context.selector()
	if err != nil {
		return nil, err
	}

	if len(r.Scorers) == 0 {
		return nil, fmt.Errorf("%w: at least one scorer required", ErrInvalidRecipe)
	}
	weights := make([]float64, len(r.Scorers))
	factories := make([]ScoreFactory, len(r.Scorers))
	for i, s := range r.Scorers {
		factory, err := s.factory()
		if err != nil {
			return nil, err
		}
		factories[i] = factory
		weights[i] = s.Weight
		if weights[i] == 0 {
			weights[i] = 1
		}
		if weights[i] < 0 {
			return nil, fmt.Errorf("%w: scorer %q has negative weight %v", ErrInvalidRecipe, s.Kind, s.Weight)
		}
	}
	factory, err := Weighted(weights, factories...)
	if err != nil {
		return nil, err
	}

	return Constrained(selector, factory,
		WithCandidates(r.Candidates),
		WithMaxNewTokens(r.MaxNewTokens),
	), nil
}

func (c RecipeContext) selector() (ContextSelector, error) {
	needN := func() (int, error) {
		if c.N < 1 {
			return 0, fmt.Errorf("%w: selector %q needs a positive n", ErrInvalidRecipe, c.Selector)
		}
		return c.N, nil
	}

	switch c.Selector {
	case "last":
		n, err := needN()
		if err != nil {
			return nil, err
		}
		return LastLines(n), nil
	case "first":
		n, err := needN()
		if err != nil {
			return nil, err
		}
		return FirstLines(n), nil
	case "last_words":
		n, err := needN()
		if err != nil {
			return nil, err
		}
		return LastWords(n), nil
	case "first_words":
		n, err := needN()
		if err != nil {
			return nil, err
		}
		return FirstWords(n), nil
	case "lines":
		if len(c.Indices) == 0 {
			return nil, fmt.Errorf("%w: selector \"lines\" needs indices", ErrInvalidRecipe)
		}
		return LineWindow(Pick(c.Indices)), nil
	case "span":
		span, err := ParseSpan(c.Span)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRecipe, err)
		}
		return LineWindow(span), nil
	case "":
		return nil, fmt.Errorf("%w: context selector required", ErrInvalidRecipe)
	default:
		return nil, fmt.Errorf("%w: unknown selector %q", ErrInvalidRecipe, c.Selector)
	}
}

func (s RecipeScorer) factory() (ScoreFactory, error) {
	switch s.Kind {
	case "syllables":
		target := int(s.Target)
		if float64(target) != s.Target || target < 1 {
			return nil, fmt.Errorf("%w: syllables target must be a positive integer, got %v", ErrInvalidRecipe, s.Target)
		}
		return Syllables(target), nil
	case "rhyme":
		if s.Chars < 0 {
			return nil, fmt.Errorf("%w: rhyme chars cannot be negative", ErrInvalidRecipe)
		}
		return Rhyme(s.Chars), nil
	case "sentiment":
		if s.Target < -1 || s.Target > 1 {
			return nil, fmt.Errorf("%w: sentiment target %v outside [-1, 1]", ErrInvalidRecipe, s.Target)
		}
		return Sentiment(s.Target), nil
	case "":
		return nil, fmt.Errorf("%w: scorer kind required", ErrInvalidRecipe)
	default:
		return nil, fmt.Errorf("%w: unknown scorer %q", ErrInvalidRecipe, s.Kind)
	}
}
