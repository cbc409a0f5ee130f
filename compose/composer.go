// Package compose drives the turn-based composition loop: a human line,
// then a generated line, until the poem is full.
package compose

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/renga-collective/renga/model"
	"github.com/renga-collective/renga/observability"
	"github.com/renga-collective/renga/poem"
	"github.com/renga-collective/renga/strategy"
)

// Renderer formats a generated line for echoing back to the human.
type Renderer func(line poem.Line) string

// Option configures a Composer after default initialization.
type Option func(*Composer)

// WithReader overrides the default stdin reader.
func WithReader(r LineReader) Option {
	return func(c *Composer) { c.reader = r }
}

// WithOutput overrides the default stdout echo destination.
func WithOutput(w io.Writer) Option {
	return func(c *Composer) { c.out = w }
}

// WithRenderer overrides the plain-text echo format.
func WithRenderer(r Renderer) Option {
	return func(c *Composer) { c.render = r }
}

// WithObserver overrides the default no-op observer.
func WithObserver(o observability.Observer) Option {
	return func(c *Composer) { c.observer = o }
}

// Composer runs the turn loop for one poem. It is single-threaded: lines
// are read, generated and appended strictly in sequence, and the poem has
// no other writer.
type Composer struct {
	poem      *poem.Poem
	client    model.Client
	generator strategy.Generator
	reader    LineReader
	out       io.Writer
	render    Renderer
	observer  observability.Observer
	runID     string
}

// New creates a Composer for the given poem, backend client and strategy.
// By default it reads from stdin, echoes generated lines to stdout
// unstyled, and emits no events.
func New(p *poem.Poem, client model.Client, generator strategy.Generator, opts ...Option) *Composer {
	c := &Composer{
		poem:      p,
		client:    client,
		generator: generator,
		reader:    NewScanReader(os.Stdin),
		out:       os.Stdout,
		render:    func(line poem.Line) string { return line.Text },
		observer:  observability.NoOpObserver{},
		runID:     uuid.Must(uuid.NewV7()).String(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RunID returns the identifier attached to this run's events.
func (c *Composer) RunID() string {
	return c.runID
}

// Run executes the composition loop until the poem is full. The human
// leads every turn; a generated line follows unless the human's line
// completed the poem. Cancellation is honored between turns, and any
// reader or backend failure ends the run with the poem as it stands.
func (c *Composer) Run(ctx context.Context) error {
	start := time.Now()

	c.emit(ctx, EventRunStart, observability.LevelInfo, map[string]any{
		"run_id":    c.runID,
		"max_lines": c.poem.MaxLines(),
		"size":      c.poem.Len(),
		"generator": c.poem.Generator(),
		"model":     c.poem.Model(),
	})

	for !c.poem.IsFull() {
		if err := ctx.Err(); err != nil {
			return c.fail(ctx, err)
		}

		line, err := c.reader.ReadLine(ctx)
		if err != nil {
			return c.fail(ctx, err)
		}
		if err := c.poem.Add(line, poem.AuthorHuman); err != nil {
			return c.fail(ctx, err)
		}
		c.emit(ctx, EventLineHuman, observability.LevelVerbose, map[string]any{
			"run_id": c.runID,
			"size":   c.poem.Len(),
		})

		if c.poem.IsFull() {
			break
		}
		if err := ctx.Err(); err != nil {
			return c.fail(ctx, err)
		}

		text, err := c.generator.Generate(ctx, c.poem, c.client)
		if err != nil {
			return c.fail(ctx, fmt.Errorf("generate line %d: %w", c.poem.Len()+1, err))
		}
		if err := c.poem.Add(text, poem.AuthorAI); err != nil {
			return c.fail(ctx, err)
		}
		c.emit(ctx, EventLineAI, observability.LevelVerbose, map[string]any{
			"run_id": c.runID,
			"size":   c.poem.Len(),
		})

		fmt.Fprintln(c.out, c.render(poem.Line{Author: poem.AuthorAI, Text: text}))
	}

	c.emit(ctx, EventRunComplete, observability.LevelInfo, map[string]any{
		"run_id":      c.runID,
		"lines":       c.poem.Len(),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return nil
}

func (c *Composer) fail(ctx context.Context, err error) error {
	c.emit(ctx, EventRunError, observability.LevelError, map[string]any{
		"run_id": c.runID,
		"size":   c.poem.Len(),
		"error":  err.Error(),
	})
	return err
}

func (c *Composer) emit(ctx context.Context, typ observability.EventType, level observability.Level, data map[string]any) {
	c.observer.OnEvent(ctx, observability.Event{
		Type:      typ,
		Level:     level,
		Timestamp: time.Now(),
		Source:    "compose.Run",
		Data:      data,
	})
}
