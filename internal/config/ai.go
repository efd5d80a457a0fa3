package config

import "os"

// AIConfig holds the configuration for the generative text backend used
// for question generation and assessment scoring.
type AIConfig struct {
	APIKey    string `json:"-"` // Never serialize
	BaseURL   string `json:"baseUrl"`
	Model     string `json:"model"`
	Version   string `json:"version"`
	TimeoutMS int    `json:"timeoutMs"`
}

// DefaultAIConfig returns the default AI configuration.
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:    os.Getenv("ANTHROPIC_API_KEY"),
		BaseURL:   getEnv("ANTHROPIC_BASE_URL", "https://api.anthropic.com/v1/messages"),
		Model:     getEnv("ANTHROPIC_MODEL", "claude-3-haiku-20240307"),
		Version:   "2023-06-01",
		TimeoutMS: 10000, // 10 second default timeout
	}
}

// IsEnabled returns true if the AI API is configured.
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}
