package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "claude", cfg.LLM.Provider)
	assert.Equal(t, ";", cfg.Catalog.SkillsDelimiter)
	assert.Equal(t, 40.0, cfg.Matcher.MinScore)
	assert.Equal(t, 5, cfg.Matcher.DefaultTopK)
	assert.Equal(t, 60, cfg.Dispatch.SendsPerMin)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)
}

func TestLoadConfig_YAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9090
llm:
  provider: gemini
  model: gemini-2.5-flash
matcher:
  default_top_k: 3
cache:
  backend: redis
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.Model)
	assert.Equal(t, 3, cfg.Matcher.DefaultTopK)
	assert.Equal(t, "redis", cfg.Cache.Backend)

	// Untouched sections keep their defaults
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 40.0, cfg.Matcher.MinScore)
}

func TestLoadConfig_EnvVarExpansion(t *testing.T) {
	t.Setenv("TEST_MAIL_KEY", "secret-token")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
dispatch:
  mail_api_key: ${TEST_MAIL_KEY}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-token", cfg.Dispatch.MailAPIKey)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("LLM_API_KEY", "key-123")
	t.Setenv("CACHE_TTL", "15m")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "key-123", cfg.LLM.APIKey)
	assert.Equal(t, 15*time.Minute, cfg.Cache.TTL)
}

func TestLoadConfig_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}
