// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultOutputDir is where generated files land when the user does not
// name a folder.
const DefaultOutputDir = "outputs"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags or the environment.
type Config struct {
	APIKey    string `json:"api_key,omitempty"`    // Gemini API key
	Model     string `json:"model,omitempty"`      // Model name override
	OutputDir string `json:"output_dir,omitempty"` // Default output folder
	Verbose   bool   `json:"verbose,omitempty"`    // Print per-task detail
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// MergeWithEnv fills the API key from the environment when the config
// and flags left it empty. Resolution order is flag > config file > env.
func (c *Config) MergeWithEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("config error: API key is required (set GEMINI_API_KEY or 'api_key' in the config file)")
	}
	return nil
}
