package compose_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/renga-collective/renga/compose"
	"github.com/renga-collective/renga/model/mock"
	"github.com/renga-collective/renga/observability"
	"github.com/renga-collective/renga/poem"
	"github.com/renga-collective/renga/strategy"
)

// scriptReader plays back canned human lines, then reports closed input.
type scriptReader struct {
	lines []string
	idx   int
}

func (r *scriptReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if r.idx >= len(r.lines) {
		return "", compose.ErrInputClosed
	}
	line := r.lines[r.idx]
	r.idx++
	return line, nil
}

// captureObserver records every event it sees.
type captureObserver struct {
	events []observability.Event
}

func (c *captureObserver) OnEvent(_ context.Context, event observability.Event) {
	c.events = append(c.events, event)
}

func (c *captureObserver) types() []observability.EventType {
	types := make([]observability.EventType, len(c.events))
	for i, e := range c.events {
		types[i] = e.Type
	}
	return types
}

func TestComposer_Run(t *testing.T) {
	p, err := poem.New(4, "last", "mock")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	client := mock.New(mock.WithLines("soft on the ground", "closing the day"))
	var out bytes.Buffer
	obs := &captureObserver{}

	c := compose.New(p, client, strategy.New(strategy.LastLines(1)),
		compose.WithReader(&scriptReader{lines: []string{"the rain falls", "night comes on"}}),
		compose.WithOutput(&out),
		compose.WithObserver(obs),
	)

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	want := []poem.Line{
		{Author: poem.AuthorHuman, Text: "the rain falls"},
		{Author: poem.AuthorAI, Text: "soft on the ground"},
		{Author: poem.AuthorHuman, Text: "night comes on"},
		{Author: poem.AuthorAI, Text: "closing the day"},
	}
	if diff := cmp.Diff(want, p.Lines()); diff != "" {
		t.Errorf("poem mismatch (-want +got):\n%s", diff)
	}

	if got := out.String(); got != "soft on the ground\nclosing the day\n" {
		t.Errorf("got echo %q", got)
	}

	wantTypes := []observability.EventType{
		compose.EventRunStart,
		compose.EventLineHuman,
		compose.EventLineAI,
		compose.EventLineHuman,
		compose.EventLineAI,
		compose.EventRunComplete,
	}
	if diff := cmp.Diff(wantTypes, obs.types()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}

	for _, e := range obs.events {
		if e.Data["run_id"] != c.RunID() {
			t.Errorf("event %s carries run_id %v, want %q", e.Type, e.Data["run_id"], c.RunID())
		}
	}
}

func TestComposer_Run_HumanFinishesPoem(t *testing.T) {
	p, err := poem.New(3, "last", "mock")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	client := mock.New(mock.WithLines("a middle line"))
	c := compose.New(p, client, strategy.New(strategy.LastLines(1)),
		compose.WithReader(&scriptReader{lines: []string{"opening", "closing"}}),
		compose.WithOutput(&bytes.Buffer{}),
	)

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	// The human's second line fills the poem; no generation follows it.
	if client.Calls() != 1 {
		t.Errorf("got %d backend calls, want 1", client.Calls())
	}
	if p.Text(2) != "closing" {
		t.Errorf("got final line %q, want the human's", p.Text(2))
	}
}

func TestComposer_Run_InputClosedEarly(t *testing.T) {
	p, err := poem.New(4, "last", "mock")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	obs := &captureObserver{}
	c := compose.New(p, mock.New(), strategy.New(strategy.LastLines(1)),
		compose.WithReader(&scriptReader{lines: []string{"only line"}}),
		compose.WithOutput(&bytes.Buffer{}),
		compose.WithObserver(obs),
	)

	err = c.Run(context.Background())
	if !errors.Is(err, compose.ErrInputClosed) {
		t.Fatalf("got %v, want ErrInputClosed", err)
	}
	if p.Len() != 2 {
		t.Errorf("got %d lines before the failure, want 2", p.Len())
	}

	last := obs.events[len(obs.events)-1]
	if last.Type != compose.EventRunError {
		t.Errorf("last event %s, want %s", last.Type, compose.EventRunError)
	}
}

func TestComposer_Run_BackendFailure(t *testing.T) {
	p, err := poem.New(4, "last", "mock")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	wantErr := errors.New("backend down")
	c := compose.New(p, mock.New(mock.WithErr(wantErr)), strategy.New(strategy.LastLines(1)),
		compose.WithReader(&scriptReader{lines: []string{"the rain falls"}}),
		compose.WithOutput(&bytes.Buffer{}),
	)

	if err := c.Run(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want the backend error", err)
	}
	if p.Len() != 1 {
		t.Errorf("got %d lines, want the human line only", p.Len())
	}
}

func TestComposer_Run_Cancelled(t *testing.T) {
	p, err := poem.New(4, "last", "mock")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := compose.New(p, mock.New(), strategy.New(strategy.LastLines(1)),
		compose.WithReader(&scriptReader{lines: []string{"never read"}}),
		compose.WithOutput(&bytes.Buffer{}),
	)

	if err := c.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	if p.Len() != 0 {
		t.Errorf("got %d lines after cancelled run, want 0", p.Len())
	}
}

func TestComposer_Run_StyledEcho(t *testing.T) {
	p, err := poem.New(2, "last", "mock")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	var out bytes.Buffer
	c := compose.New(p, mock.New(mock.WithLines("soft on the ground")), strategy.New(strategy.LastLines(1)),
		compose.WithReader(&scriptReader{lines: []string{"the rain falls"}}),
		compose.WithOutput(&out),
		compose.WithRenderer(func(line poem.Line) string { return "AI> " + line.Text }),
	)

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got := out.String(); got != "AI> soft on the ground\n" {
		t.Errorf("got echo %q", got)
	}
}

func TestNewScanReader(t *testing.T) {
	r := compose.NewScanReader(strings.NewReader("first line\nsecond line\n"))
	ctx := context.Background()

	for _, want := range []string{"first line", "second line"} {
		got, err := r.ReadLine(ctx)
		if err != nil {
			t.Fatalf("ReadLine returned error: %v", err)
		}
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}

	if _, err := r.ReadLine(ctx); !errors.Is(err, compose.ErrInputClosed) {
		t.Errorf("got %v at end of input, want ErrInputClosed", err)
	}
}

func TestNewScanReader_Cancelled(t *testing.T) {
	r := compose.NewScanReader(strings.NewReader("pending\n"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.ReadLine(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
