// Package poem models a collaborative poem as an append-only sequence of
// authored lines with a fixed capacity.
package poem

import (
	"fmt"
	"slices"
	"time"
)

// Author identifies who contributed a line.
type Author string

const (
	AuthorHuman Author = "human"
	AuthorAI    Author = "ai"
)

// Line is a single contribution to a poem. Immutable once appended.
type Line struct {
	Author Author `json:"author"`
	Text   string `json:"text"`
}

// Poem is an ordered, append-only sequence of lines with a fixed maximum
// length. Capacity, generator name and model name are set at construction
// and never change. A Poem is mutated only through Add and is not safe for
// concurrent use; the composition loop is its single writer.
type Poem struct {
	maxLines  int
	generator string
	model     string
	createdAt time.Time
	lines     []Line
}

// New creates an empty poem that will hold at most maxLines lines.
// The generator and model names are recorded for provenance only; the poem
// itself never calls either.
func New(maxLines int, generator, model string) (*Poem, error) {
	if maxLines < 1 {
		return nil, fmt.Errorf("%w: %d", ErrMaxLines, maxLines)
	}
	return &Poem{
		maxLines:  maxLines,
		generator: generator,
		model:     model,
		createdAt: time.Now(),
	}, nil
}

// Add appends a line. It fails with ErrFull once the poem has reached its
// maximum length and with ErrAuthor for an author other than AuthorHuman or
// AuthorAI; the poem is unchanged on failure.
func (p *Poem) Add(text string, author Author) error {
	if p.IsFull() {
		return ErrFull
	}
	if author != AuthorHuman && author != AuthorAI {
		return fmt.Errorf("%w: %q", ErrAuthor, author)
	}
	p.lines = append(p.lines, Line{Author: author, Text: text})
	return nil
}

// IsFull reports whether the poem has reached its maximum length.
func (p *Poem) IsFull() bool {
	return len(p.lines) >= p.maxLines
}

// Len returns the number of lines appended so far.
func (p *Poem) Len() int {
	return len(p.lines)
}

// Text returns the text of the line at index i. It panics if i is out of
// range, like a slice index.
func (p *Poem) Text(i int) string {
	return p.lines[i].Text
}

// MaxLines returns the poem's fixed capacity.
func (p *Poem) MaxLines() int {
	return p.maxLines
}

// Generator returns the generator name recorded at construction.
func (p *Poem) Generator() string {
	return p.generator
}

// Model returns the model name recorded at construction.
func (p *Poem) Model() string {
	return p.model
}

// CreatedAt returns the poem's creation time.
func (p *Poem) CreatedAt() time.Time {
	return p.createdAt
}

// Lines returns a defensive copy of the lines appended so far.
func (p *Poem) Lines() []Line {
	return slices.Clone(p.lines)
}
