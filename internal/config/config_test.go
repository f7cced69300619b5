package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantError bool
		validate  func(*testing.T, *Config)
	}{
		{
			name:    "Full config",
			content: `{"api_key": "test-key", "model": "gemini-2.5-pro", "output_dir": "docs", "verbose": true}`,
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "test-key", cfg.APIKey)
				assert.Equal(t, "gemini-2.5-pro", cfg.Model)
				assert.Equal(t, "docs", cfg.OutputDir)
				assert.True(t, cfg.Verbose)
			},
		},
		{
			name:    "Empty object",
			content: `{}`,
			validate: func(t *testing.T, cfg *Config) {
				assert.Empty(t, cfg.APIKey)
				assert.Empty(t, cfg.Model)
			},
		},
		{
			name:      "Invalid JSON",
			content:   `{not json}`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.content)
			cfg, err := LoadConfig(path)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestMergeWithEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg := &Config{}
	cfg.MergeWithEnv()

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
}

func TestMergeWithEnv_ExplicitValuesWin(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg := &Config{APIKey: "flag-key", OutputDir: "elsewhere"}
	cfg.MergeWithEnv()

	assert.Equal(t, "flag-key", cfg.APIKey)
	assert.Equal(t, "elsewhere", cfg.OutputDir)
}

func TestValidate(t *testing.T) {
	cfg := &Config{APIKey: "k"}
	assert.NoError(t, cfg.Validate())

	cfg = &Config{}
	assert.Error(t, cfg.Validate())
}
