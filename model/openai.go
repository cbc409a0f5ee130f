package model

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAI is a Client for OpenAI-compatible chat completion endpoints.
type OpenAI struct {
	model       string
	temperature float64
	maxTokens   int
	system      string
	client      openai.Client
}

// NewOpenAI creates a client from configuration. The API key falls back to
// the SDK's environment lookup when unset; BaseURL redirects requests to a
// compatible local server.
func NewOpenAI(cfg *Config) (*OpenAI, error) {
	if cfg == nil || cfg.Name == "" {
		return nil, ErrModelName
	}

	var opts []option.RequestOption
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAI{
		model:       cfg.Name,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxNewTokens,
		system:      cfg.SystemPrompt,
		client:      openai.NewClient(opts...),
	}, nil
}

// Generate requests one chat completion for the prompt and returns the
// first line of the model's reply.
func (o *OpenAI) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	temperature := o.temperature
	if opts.Temperature != 0 {
		temperature = opts.Temperature
	}
	maxTokens := o.maxTokens
	if opts.MaxNewTokens > 0 {
		maxTokens = opts.MaxNewTokens
	}
	if maxTokens <= 0 {
		maxTokens = DefaultMaxNewTokens
	}

	var messages []openai.ChatCompletionMessageParamUnion
	if o.system != "" {
		messages = append(messages, openai.SystemMessage(o.system))
	}
	messages = append(messages, openai.UserMessage(prompt))

	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(o.model),
		Messages:    messages,
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(int64(maxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return firstLine(resp.Choices[0].Message.Content), nil
}

// firstLine truncates at the first newline and trims surrounding whitespace,
// keeping chat replies on a single poem line.
func firstLine(text string) string {
	text, _, _ = strings.Cut(text, "\n")
	return strings.TrimSpace(text)
}
