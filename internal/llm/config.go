// Package llm provides the generative-text client abstraction and its
// configuration. The client is injected into handlers so tests can
// substitute a stub.
package llm

// Provider represents a generative-text provider
type Provider string

// Provider constants define supported providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Model    string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    "gemini-2.5-flash",
	}
}

// WithModel returns a new Config with the given model name
func (c *Config) WithModel(model string) *Config {
	return &Config{
		Provider: c.Provider,
		Model:    model,
	}
}
