// Package sentiment provides polarity scoring for candidate lines behind a
// process-lifetime, lazily created analyzer handle.
package sentiment

import (
	"errors"
	"sync"
)

// ErrUnavailable is returned when no analyzer can be constructed. Scoring
// paths that depend on sentiment surface it on first use, not at strategy
// construction.
var ErrUnavailable = errors.New("sentiment analyzer unavailable")

// Analyzer scores the polarity of a piece of text. Compound returns a
// normalized score in [-1, 1], negative for negative text and positive for
// positive text.
type Analyzer interface {
	Compound(text string) float64
}

// Lazy defers analyzer construction until the first Get call and caches the
// outcome for its lifetime. The construction runs at most once even under
// concurrent first use.
type Lazy struct {
	once sync.Once
	fn   func() (Analyzer, error)

	analyzer Analyzer
	err      error
}

// NewLazy wraps an analyzer constructor. A nil constructor yields
// ErrUnavailable from Get.
func NewLazy(fn func() (Analyzer, error)) *Lazy {
	return &Lazy{fn: fn}
}

// Get returns the wrapped analyzer, constructing it on the first call. The
// outcome of that first call, success or failure, is permanent: a failed
// construction is not retried.
func (l *Lazy) Get() (Analyzer, error) {
	l.once.Do(func() {
		if l.fn == nil {
			l.err = ErrUnavailable
			return
		}
		l.analyzer, l.err = l.fn()
		if l.err == nil && l.analyzer == nil {
			l.err = ErrUnavailable
		}
	})
	return l.analyzer, l.err
}

var std = NewLazy(NewVader)

// Default returns the process-wide analyzer, creating it on first use and
// reusing it thereafter. Loading the lexicon is not free, so the handle is
// shared rather than rebuilt per score.
func Default() (Analyzer, error) {
	return std.Get()
}
