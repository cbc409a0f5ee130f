package poem_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/renga-collective/renga/poem"
)

func TestNew(t *testing.T) {
	p, err := poem.New(4, "last", "gpt2")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if p.Len() != 0 {
		t.Errorf("new poem should have 0 lines, got %d", p.Len())
	}
	if p.IsFull() {
		t.Error("new poem should not be full")
	}
	if p.MaxLines() != 4 {
		t.Errorf("got max lines %d, want 4", p.MaxLines())
	}
	if p.Generator() != "last" {
		t.Errorf("got generator %q, want %q", p.Generator(), "last")
	}
	if p.Model() != "gpt2" {
		t.Errorf("got model %q, want %q", p.Model(), "gpt2")
	}
	if p.CreatedAt().IsZero() {
		t.Error("created at should be set")
	}
}

func TestNew_InvalidMaxLines(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := poem.New(n, "last", "gpt2"); !errors.Is(err, poem.ErrMaxLines) {
			t.Errorf("New(%d): got %v, want ErrMaxLines", n, err)
		}
	}
}

func TestPoem_Add(t *testing.T) {
	p, _ := poem.New(2, "last", "gpt2")

	if err := p.Add("the rain falls", poem.AuthorHuman); err != nil {
		t.Fatalf("first Add returned error: %v", err)
	}
	if err := p.Add("soft on the ground", poem.AuthorAI); err != nil {
		t.Fatalf("second Add returned error: %v", err)
	}

	if !p.IsFull() {
		t.Error("poem should be full after max lines appends")
	}

	want := []poem.Line{
		{Author: poem.AuthorHuman, Text: "the rain falls"},
		{Author: poem.AuthorAI, Text: "soft on the ground"},
	}
	if diff := cmp.Diff(want, p.Lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestPoem_Add_Full(t *testing.T) {
	p, _ := poem.New(1, "last", "gpt2")
	if err := p.Add("only line", poem.AuthorHuman); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	err := p.Add("one too many", poem.AuthorAI)
	if !errors.Is(err, poem.ErrFull) {
		t.Fatalf("got %v, want ErrFull", err)
	}
	if err.Error() != "poem is full" {
		t.Errorf("got message %q, want %q", err.Error(), "poem is full")
	}
	if p.Len() != 1 {
		t.Errorf("failed Add changed size: got %d, want 1", p.Len())
	}
	if p.Text(0) != "only line" {
		t.Errorf("failed Add changed content: got %q", p.Text(0))
	}
}

func TestPoem_Add_UnknownAuthor(t *testing.T) {
	p, _ := poem.New(2, "last", "gpt2")

	err := p.Add("line", poem.Author("editor"))
	if !errors.Is(err, poem.ErrAuthor) {
		t.Fatalf("got %v, want ErrAuthor", err)
	}
	if p.Len() != 0 {
		t.Errorf("failed Add changed size: got %d, want 0", p.Len())
	}
}

func TestPoem_TextAndLen(t *testing.T) {
	p, _ := poem.New(3, "last", "gpt2")
	texts := []string{"a", "b", "c"}
	for i, text := range texts {
		author := poem.AuthorHuman
		if i%2 == 1 {
			author = poem.AuthorAI
		}
		if err := p.Add(text, author); err != nil {
			t.Fatalf("Add(%q) returned error: %v", text, err)
		}
	}

	if p.Len() != 3 {
		t.Fatalf("got len %d, want 3", p.Len())
	}
	for i, want := range texts {
		if got := p.Text(i); got != want {
			t.Errorf("Text(%d): got %q, want %q", i, got, want)
		}
	}
}

func TestPoem_IsFull_Boundary(t *testing.T) {
	p, _ := poem.New(2, "last", "gpt2")

	if p.IsFull() {
		t.Error("size 0 of 2 should not be full")
	}
	p.Add("one", poem.AuthorHuman)
	if p.IsFull() {
		t.Error("size 1 of 2 should not be full")
	}
	p.Add("two", poem.AuthorAI)
	if !p.IsFull() {
		t.Error("size 2 of 2 should be full")
	}
}

func TestPoem_Lines_DefensiveCopy(t *testing.T) {
	p, _ := poem.New(3, "last", "gpt2")
	p.Add("original", poem.AuthorHuman)

	lines := p.Lines()
	lines[0].Text = "tampered"
	lines = append(lines, poem.Line{Author: poem.AuthorAI, Text: "extra"})

	if p.Len() != 1 {
		t.Fatalf("got %d lines, want 1", p.Len())
	}
	if p.Text(0) != "original" {
		t.Errorf("line was mutated: got %q, want %q", p.Text(0), "original")
	}
}

func TestPoem_Record(t *testing.T) {
	p, _ := poem.New(2, "closure", "gpt2")
	p.Add("the rain falls", poem.AuthorHuman)
	p.Add("soft on the ground", poem.AuthorAI)

	rec := p.Record()

	if rec.SchemaVersion != poem.SchemaVersion {
		t.Errorf("got schema version %d, want %d", rec.SchemaVersion, poem.SchemaVersion)
	}
	if rec.Generator != "closure" {
		t.Errorf("got generator %q, want %q", rec.Generator, "closure")
	}
	if rec.Model != "gpt2" {
		t.Errorf("got model %q, want %q", rec.Model, "gpt2")
	}
	if _, err := time.Parse(time.RFC3339, rec.CreatedAt); err != nil {
		t.Errorf("created_at %q is not RFC 3339: %v", rec.CreatedAt, err)
	}

	want := []poem.Line{
		{Author: poem.AuthorHuman, Text: "the rain falls"},
		{Author: poem.AuthorAI, Text: "soft on the ground"},
	}
	if diff := cmp.Diff(want, rec.Lines); diff != "" {
		t.Errorf("record lines mismatch (-want +got):\n%s", diff)
	}
}

func TestPoem_Record_SharesNoState(t *testing.T) {
	p, _ := poem.New(2, "last", "gpt2")
	p.Add("first", poem.AuthorHuman)

	rec := p.Record()
	rec.Lines[0].Text = "tampered"

	if p.Text(0) != "first" {
		t.Errorf("record mutation reached the poem: got %q", p.Text(0))
	}
}
