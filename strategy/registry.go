package strategy

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Builder constructs a generator from the argument portion of a spec
// string. The argument is empty for bare names.
type Builder func(arg string) (Generator, error)

var (
	mu       sync.RWMutex
	builders = map[string]Builder{
		"last":        buildLast,
		"first":       buildFirst,
		"closure":     buildClosure,
		"window":      buildWindow,
		"bookend":     buildBookend,
		"alternating": buildAlternating,
		"span":        buildSpan,
		"lastwords":   buildLastWords,
		"firstwords":  buildFirstWords,
		"rhyme":       buildRhyme,
		"syllables":   buildSyllables,
		"sentiment":   buildSentiment,
	}
)

// Resolve turns a generator spec ("name" or "name:arg") into a Generator.
// Unknown names fail with ErrUnknownGenerator; malformed arguments fail
// with ErrInvalidArgument.
func Resolve(spec string) (Generator, error) {
	name, arg, _ := strings.Cut(spec, ":")

	mu.RLock()
	builder, ok := builders[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGenerator, name)
	}
	return builder(arg)
}

// Register adds a named builder. Registering an existing name fails with
// ErrAlreadyRegistered; built-ins cannot be replaced.
func Register(name string, builder Builder) error {
	if name == "" {
		return ErrEmptyName
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := builders[name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, name)
	}
	builders[name] = builder
	return nil
}

// Names returns every registered generator name, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func buildLast(arg string) (Generator, error) {
	if err := noArg("last", arg); err != nil {
		return nil, err
	}
	return New(LastLines(1)), nil
}

func buildFirst(arg string) (Generator, error) {
	if err := noArg("first", arg); err != nil {
		return nil, err
	}
	return New(FirstLines(1)), nil
}

// closure follows the newest line until the poem's final turn, then reaches
// back to the opening line to close the loop.
func buildClosure(arg string) (Generator, error) {
	if err := noArg("closure", arg); err != nil {
		return nil, err
	}
	return Conditional(ClosingTurn(), New(FirstLines(1)), New(LastLines(1))), nil
}

func buildWindow(arg string) (Generator, error) {
	n := 3
	if arg != "" {
		var err error
		if n, err = positiveArg("window", arg); err != nil {
			return nil, err
		}
	}
	return New(LineWindow(Tail(n))), nil
}

func buildBookend(arg string) (Generator, error) {
	if err := noArg("bookend", arg); err != nil {
		return nil, err
	}
	return New(LineWindow(Pick{0, -1})), nil
}

func buildAlternating(arg string) (Generator, error) {
	if err := noArg("alternating", arg); err != nil {
		return nil, err
	}
	return New(LineWindow(Span{Step: 2})), nil
}

func buildSpan(arg string) (Generator, error) {
	if arg == "" {
		return nil, fmt.Errorf("%w: span needs a start:stop:step argument", ErrInvalidArgument)
	}
	span, err := ParseSpan(arg)
	if err != nil {
		return nil, err
	}
	return New(LineWindow(span)), nil
}

func buildLastWords(arg string) (Generator, error) {
	n, err := positiveArg("lastwords", arg)
	if err != nil {
		return nil, err
	}
	return New(LastWords(n)), nil
}

func buildFirstWords(arg string) (Generator, error) {
	n, err := positiveArg("firstwords", arg)
	if err != nil {
		return nil, err
	}
	return New(FirstWords(n)), nil
}

func buildRhyme(arg string) (Generator, error) {
	chars := DefaultRhymeChars
	if arg != "" {
		var err error
		if chars, err = positiveArg("rhyme", arg); err != nil {
			return nil, err
		}
	}
	return Constrained(LastLines(1), Rhyme(chars)), nil
}

func buildSyllables(arg string) (Generator, error) {
	target, err := positiveArg("syllables", arg)
	if err != nil {
		return nil, err
	}
	return Constrained(LastLines(1), Syllables(target)), nil
}

func buildSentiment(arg string) (Generator, error) {
	target, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: sentiment needs a numeric target", ErrInvalidArgument)
	}
	if target < -1 || target > 1 {
		return nil, fmt.Errorf("%w: sentiment target %v outside [-1, 1]", ErrInvalidArgument, target)
	}
	return Constrained(LastLines(1), Sentiment(target)), nil
}

func noArg(name, arg string) error {
	if arg != "" {
		return fmt.Errorf("%w: %s takes no argument", ErrInvalidArgument, name)
	}
	return nil
}

func positiveArg(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %s needs a positive integer, got %q", ErrInvalidArgument, name, arg)
	}
	return n, nil
}
