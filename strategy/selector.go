package strategy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/renga-collective/renga/poem"
)

// ContextSelector derives the prompt for a generation call from poem state.
// Selectors are pure: the same poem always yields the same prompt.
type ContextSelector interface {
	Select(p *poem.Poem) string
}

// SelectorFunc adapts a function to the ContextSelector interface.
type SelectorFunc func(p *poem.Poem) string

func (f SelectorFunc) Select(p *poem.Poem) string { return f(p) }

// LastLines selects the last n lines' text joined by newlines. A poem with
// fewer lines contributes them all; n <= 0 selects nothing.
func LastLines(n int) ContextSelector {
	return LineWindow(Tail(n))
}

// FirstLines selects the first n lines' text joined by newlines. A poem
// with fewer lines contributes them all; n <= 0 selects nothing.
func FirstLines(n int) ContextSelector {
	return SelectorFunc(func(p *poem.Poem) string {
		if n <= 0 {
			return ""
		}
		size := min(n, p.Len())
		texts := make([]string, 0, size)
		for i := range size {
			texts = append(texts, p.Text(i))
		}
		return strings.Join(texts, "\n")
	})
}

// LastWords selects the last n words of the whole poem joined by single
// spaces. Words are counted across line boundaries.
func LastWords(n int) ContextSelector {
	return SelectorFunc(func(p *poem.Poem) string {
		if n <= 0 {
			return ""
		}
		words := poemWords(p)
		if len(words) > n {
			words = words[len(words)-n:]
		}
		return strings.Join(words, " ")
	})
}

// FirstWords selects the first n words of the whole poem joined by single
// spaces. Words are counted across line boundaries.
func FirstWords(n int) ContextSelector {
	return SelectorFunc(func(p *poem.Poem) string {
		if n <= 0 {
			return ""
		}
		words := poemWords(p)
		if len(words) > n {
			words = words[:n]
		}
		return strings.Join(words, " ")
	})
}

func poemWords(p *poem.Poem) []string {
	texts := make([]string, 0, p.Len())
	for i := range p.Len() {
		texts = append(texts, p.Text(i))
	}
	return strings.Fields(strings.Join(texts, " "))
}

// LineWindow selects the lines picked by w and joins their text with
// newlines, preserving the window's order.
func LineWindow(w Window) ContextSelector {
	return SelectorFunc(func(p *poem.Poem) string {
		idx := w.indices(p.Len())
		texts := make([]string, len(idx))
		for j, i := range idx {
			texts[j] = p.Text(i)
		}
		return strings.Join(texts, "\n")
	})
}

// Window picks a subset of line indices from a poem of a given size. The
// three implementations are a tail count (Tail), explicit indices (Pick)
// and a stepped span (Span).
type Window interface {
	indices(size int) []int
}

// Tail selects the last n lines in order. Non-positive counts select
// nothing.
type Tail int

func (t Tail) indices(size int) []int {
	n := int(t)
	if n <= 0 {
		return nil
	}
	start := size - n
	if start < 0 {
		start = 0
	}
	idx := make([]int, 0, size-start)
	for i := start; i < size; i++ {
		idx = append(idx, i)
	}
	return idx
}

// Pick selects explicit indices in the order given, without deduplication.
// Negative indices count from the end; indices outside [-size, size) are
// silently dropped.
type Pick []int

func (p Pick) indices(size int) []int {
	idx := make([]int, 0, len(p))
	for _, i := range p {
		if i < -size || i >= size {
			continue
		}
		if i < 0 {
			i += size
		}
		idx = append(idx, i)
	}
	return idx
}

// Span selects a half-open [start, stop) index range with a step. Nil
// bounds extend to the ends of the sequence (reversed under a negative
// step), negative bounds count from the end, and out-of-range bounds clip
// to the sequence. A zero Step means 1, so the zero value selects every
// line. The clipping rules match the renga recipe format's span literals,
// which ParseSpan reads.
type Span struct {
	Start *int
	Stop  *int
	Step  int
}

// Bound is a convenience for Span literals: Span{Start: Bound(1)}.
func Bound(i int) *int { return &i }

func (s Span) indices(size int) []int {
	step := s.Step
	if step == 0 {
		step = 1
	}

	lower, upper := 0, size
	if step < 0 {
		lower, upper = -1, size-1
	}

	start := lower
	if step < 0 {
		start = upper
	}
	if s.Start != nil {
		start = clip(*s.Start, size, lower, upper)
	}

	stop := upper
	if step < 0 {
		stop = lower
	}
	if s.Stop != nil {
		stop = clip(*s.Stop, size, lower, upper)
	}

	var idx []int
	if step > 0 {
		for i := start; i < stop; i += step {
			idx = append(idx, i)
		}
	} else {
		for i := start; i > stop; i += step {
			idx = append(idx, i)
		}
	}
	return idx
}

// clip resolves a possibly negative bound against the sequence length and
// clamps it to [lower, upper].
func clip(i, size, lower, upper int) int {
	if i < 0 {
		i += size
		if i < lower {
			return lower
		}
		return i
	}
	if i > upper {
		return upper
	}
	return i
}

// ParseSpan reads a "start:stop:step" literal into a Span. Empty positions
// are open bounds: "2:" selects from the third line on, "::2" every other
// line, "::-1" every line in reverse.
func ParseSpan(s string) (Span, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return Span{}, fmt.Errorf("%w: span %q has too many parts", ErrInvalidArgument, s)
	}

	var span Span
	for i, part := range parts {
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return Span{}, fmt.Errorf("%w: span %q: %q is not an integer", ErrInvalidArgument, s, part)
		}
		switch i {
		case 0:
			span.Start = &v
		case 1:
			span.Stop = &v
		case 2:
			if v == 0 {
				return Span{}, fmt.Errorf("%w: span step cannot be zero", ErrInvalidArgument)
			}
			span.Step = v
		}
	}
	return span, nil
}
