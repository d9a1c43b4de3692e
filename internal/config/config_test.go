package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("HIREDESK_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "hiredesk", cfg.Name)
	assert.Equal(t, "genai", cfg.LLM.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.Model)
	assert.Equal(t, filepath.Join(".hiredesk", "directory.db"), cfg.Directory.DatabasePath)
	assert.False(t, cfg.Logging.DebugMode)
	assert.Equal(t, "dark", cfg.UI.Theme)
}

func TestLoad_MalformedFileIsAnError(t *testing.T) {
	ws := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(ws, ".hiredesk"), 0755))
	require.NoError(t, os.WriteFile(Path(ws), []byte("llm: [not a mapping"), 0644))

	_, err := Load(ws)
	assert.Error(t, err)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	t.Setenv("HIREDESK_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	ws := t.TempDir()
	cfg := Default()
	cfg.LLM.Provider = "openai"
	cfg.LLM.Model = "gpt-4o-mini"
	cfg.UI.Theme = "light"
	cfg.Logging.DebugMode = true
	require.NoError(t, cfg.Save(ws))

	loaded, err := Load(ws)
	require.NoError(t, err)
	assert.Equal(t, "openai", loaded.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", loaded.LLM.Model)
	assert.Equal(t, "light", loaded.UI.Theme)
	assert.True(t, loaded.Logging.DebugMode)
}

func TestApplyEnv_Priority(t *testing.T) {
	t.Run("HIREDESK_API_KEY wins", func(t *testing.T) {
		t.Setenv("HIREDESK_API_KEY", "hd-key")
		t.Setenv("GEMINI_API_KEY", "gm-key")
		t.Setenv("OPENAI_API_KEY", "oa-key")

		cfg := &Config{}
		applyEnv(cfg)
		assert.Equal(t, "hd-key", cfg.LLM.APIKey)
	})

	t.Run("GEMINI_API_KEY sets genai provider", func(t *testing.T) {
		t.Setenv("HIREDESK_API_KEY", "")
		t.Setenv("GEMINI_API_KEY", "gm-key")
		t.Setenv("OPENAI_API_KEY", "oa-key")

		cfg := &Config{}
		applyEnv(cfg)
		assert.Equal(t, "gm-key", cfg.LLM.APIKey)
		assert.Equal(t, "genai", cfg.LLM.Provider)
	})

	t.Run("OPENAI_API_KEY sets openai provider", func(t *testing.T) {
		t.Setenv("HIREDESK_API_KEY", "")
		t.Setenv("GEMINI_API_KEY", "")
		t.Setenv("OPENAI_API_KEY", "oa-key")

		cfg := &Config{}
		applyEnv(cfg)
		assert.Equal(t, "oa-key", cfg.LLM.APIKey)
		assert.Equal(t, "openai", cfg.LLM.Provider)
	})

	t.Run("file key is never overridden", func(t *testing.T) {
		t.Setenv("HIREDESK_API_KEY", "hd-key")

		cfg := &Config{LLM: LLMConfig{APIKey: "file-key"}}
		applyEnv(cfg)
		assert.Equal(t, "file-key", cfg.LLM.APIKey)
	})

	t.Run("env key does not override configured provider", func(t *testing.T) {
		t.Setenv("HIREDESK_API_KEY", "")
		t.Setenv("GEMINI_API_KEY", "gm-key")

		cfg := &Config{LLM: LLMConfig{Provider: "openai"}}
		applyEnv(cfg)
		assert.Equal(t, "openai", cfg.LLM.Provider)
	})
}

func TestParsedTimeout(t *testing.T) {
	assert.Equal(t, 2*time.Minute, LLMConfig{}.ParsedTimeout())
	assert.Equal(t, 2*time.Minute, LLMConfig{Timeout: "bogus"}.ParsedTimeout())
	assert.Equal(t, 30*time.Second, LLMConfig{Timeout: "30s"}.ParsedTimeout())
}
