// Package config loads hiredesk configuration from .hiredesk/config.yaml
// with environment-variable overrides for secrets.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"hiredesk/internal/logging"
)

// Config holds all hiredesk configuration.
type Config struct {
	Name string `yaml:"name"`

	// LLM backend configuration
	LLM LLMConfig `yaml:"llm"`

	// Candidate/company directory
	Directory DirectoryConfig `yaml:"directory"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// UI settings
	UI UIConfig `yaml:"ui"`
}

// LLMConfig configures the backend AI provider.
type LLMConfig struct {
	Provider string `yaml:"provider"` // genai, openai
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
	Timeout  string `yaml:"timeout"`
}

// ParsedTimeout returns the request timeout, falling back to two minutes.
func (l LLMConfig) ParsedTimeout() time.Duration {
	if l.Timeout == "" {
		return 2 * time.Minute
	}
	d, err := time.ParseDuration(l.Timeout)
	if err != nil {
		return 2 * time.Minute
	}
	return d
}

// DirectoryConfig configures the candidate/company store.
type DirectoryConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// LoggingConfig configures categorized file logging.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Categories map[string]bool `yaml:"categories"`
	Level      string          `yaml:"level"`
}

// Settings converts to the logging package's settings value.
func (l LoggingConfig) Settings() logging.Settings {
	return logging.Settings{
		DebugMode:  l.DebugMode,
		Categories: l.Categories,
		Level:      l.Level,
	}
}

// UIConfig configures the chat TUI.
type UIConfig struct {
	Theme string `yaml:"theme"` // dark, light
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Name: "hiredesk",
		LLM: LLMConfig{
			Provider: "genai",
			Model:    "gemini-2.5-flash",
			Timeout:  "2m",
		},
		Directory: DirectoryConfig{
			DatabasePath: filepath.Join(".hiredesk", "directory.db"),
		},
		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
		},
		UI: UIConfig{Theme: "dark"},
	}
}

// Path returns the config file path for a workspace.
func Path(workspace string) string {
	return filepath.Join(workspace, ".hiredesk", "config.yaml")
}

// Load reads the config for a workspace. A missing file yields defaults; a
// malformed file is an error. Environment variables override the API key so
// secrets stay out of the file.
func Load(workspace string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path(workspace))
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnv(cfg)
	logging.Config("Config loaded from %s (provider=%s, model=%s)", Path(workspace), cfg.LLM.Provider, cfg.LLM.Model)
	return cfg, nil
}

// applyEnv fills the API key from the environment when the file omits it.
// Priority: HIREDESK_API_KEY > GEMINI_API_KEY > OPENAI_API_KEY.
func applyEnv(cfg *Config) {
	if cfg.LLM.APIKey != "" {
		return
	}
	if key := os.Getenv("HIREDESK_API_KEY"); key != "" {
		cfg.LLM.APIKey = key
		return
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.LLM.APIKey = key
		if cfg.LLM.Provider == "" {
			cfg.LLM.Provider = "genai"
		}
		return
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.LLM.APIKey = key
		if cfg.LLM.Provider == "" {
			cfg.LLM.Provider = "openai"
		}
	}
}

// Save writes the config to the workspace, creating .hiredesk if needed.
func (c *Config) Save(workspace string) error {
	path := Path(workspace)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
