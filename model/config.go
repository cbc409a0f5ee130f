package model

// DefaultSystemPrompt frames the completion request for chat endpoints.
const DefaultSystemPrompt = "Continue the poem. Respond with a single line."

// Config holds generation backend parameters. BaseURL points the client at
// any OpenAI-compatible endpoint, including local inference servers.
type Config struct {
	Name         string  `json:"name,omitempty"`
	BaseURL      string  `json:"base_url,omitempty"`
	APIKey       string  `json:"api_key,omitempty"`
	Temperature  float64 `json:"temperature,omitempty"`
	MaxNewTokens int     `json:"max_new_tokens,omitempty"`
	SystemPrompt string  `json:"system_prompt,omitempty"`
}

// DefaultConfig returns a Config with the default model and sampling
// parameters.
func DefaultConfig() Config {
	return Config{
		Name:         DefaultModel,
		Temperature:  DefaultTemperature,
		MaxNewTokens: DefaultMaxNewTokens,
		SystemPrompt: DefaultSystemPrompt,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Name != "" {
		c.Name = source.Name
	}
	if source.BaseURL != "" {
		c.BaseURL = source.BaseURL
	}
	if source.APIKey != "" {
		c.APIKey = source.APIKey
	}
	if source.Temperature != 0 {
		c.Temperature = source.Temperature
	}
	if source.MaxNewTokens > 0 {
		c.MaxNewTokens = source.MaxNewTokens
	}
	if source.SystemPrompt != "" {
		c.SystemPrompt = source.SystemPrompt
	}
}
