// Package mock provides scriptable model clients for tests.
package mock

import (
	"context"
	"sync"

	"github.com/renga-collective/renga/model"
)

// Option configures a mock Client.
type Option func(*Client)

// WithLines scripts the client to return the given lines in order, cycling
// back to the start when exhausted.
func WithLines(lines ...string) Option {
	return func(c *Client) { c.lines = lines }
}

// WithErr makes every Generate call fail with err.
func WithErr(err error) Option {
	return func(c *Client) { c.err = err }
}

// WithErrAt makes the nth Generate call (1-based) fail with err; other
// calls behave normally.
func WithErrAt(call int, err error) Option {
	return func(c *Client) {
		c.errAt = call
		c.atErr = err
	}
}

// Client is a scriptable model.Client that records every call. Without
// scripted lines it echoes the prompt in brackets, so tests can assert the
// exact context a strategy produced. Safe for concurrent use.
type Client struct {
	mu      sync.Mutex
	lines   []string
	idx     int
	err     error
	errAt   int
	atErr   error
	prompts []string
	options []model.Options
}

// New creates a mock client configured by opts.
func New(opts ...Option) *Client {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Generate(ctx context.Context, prompt string, opts model.Options) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.prompts = append(c.prompts, prompt)
	c.options = append(c.options, opts)

	if c.err != nil {
		return "", c.err
	}
	if c.errAt > 0 && len(c.prompts) == c.errAt {
		return "", c.atErr
	}
	if len(c.lines) > 0 {
		line := c.lines[c.idx%len(c.lines)]
		c.idx++
		return line, nil
	}
	return "[" + prompt + "]", nil
}

// Calls returns how many times Generate has been invoked.
func (c *Client) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.prompts)
}

// Prompts returns a copy of every prompt seen, in call order.
func (c *Client) Prompts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.prompts))
	copy(out, c.prompts)
	return out
}

// LastPrompt returns the most recent prompt, or "" before any call.
func (c *Client) LastPrompt() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.prompts) == 0 {
		return ""
	}
	return c.prompts[len(c.prompts)-1]
}

// Options returns a copy of the options passed to every call, in call order.
func (c *Client) Options() []model.Options {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Options, len(c.options))
	copy(out, c.options)
	return out
}
