package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{EnvLogLevel, EnvAPIKey, EnvModel, EnvBaseURL, EnvLLMTimeout} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Empty(t, cfg.APIKey)
	assert.Empty(t, cfg.Model)
	assert.Empty(t, cfg.BaseURL)
	assert.Equal(t, DefaultLLMTimeout, cfg.LLMTimeout)
	assert.Empty(t, cfg.EnvFiles)
	assert.Empty(t, cfg.Warnings)
}

func TestLoad_AllVarsSet(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvAPIKey, "sk-test")
	t.Setenv(EnvModel, "gpt-test")
	t.Setenv(EnvBaseURL, "http://localhost:8081/v1")
	t.Setenv(EnvLLMTimeout, "90s")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "gpt-test", cfg.Model)
	assert.Equal(t, "http://localhost:8081/v1", cfg.BaseURL)
	assert.Equal(t, 90*time.Second, cfg.LLMTimeout)
	assert.NoError(t, cfg.RequireAPIKey())
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)

	// godotenv only fills variables that are absent, not empty.
	require.NoError(t, os.Unsetenv(EnvAPIKey))
	require.NoError(t, os.Unsetenv(EnvModel))

	t.Setenv(EnvLogLevel, "warn")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(
		"OPENAI_API_KEY=sk-from-file\n"+
			"OPENAI_MODEL=gpt-file\n"+
			"INFA2SQL_LOG_LEVEL=error\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{path}, cfg.EnvFiles)
	assert.Equal(t, "sk-from-file", cfg.APIKey)
	assert.Equal(t, "gpt-file", cfg.Model)
	assert.Equal(t, "warn", cfg.LogLevel, "environment wins over .env")
}

func TestLoad_BadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLLMTimeout, "soon")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, DefaultLLMTimeout, cfg.LLMTimeout)
	require.Len(t, cfg.Warnings, 1)
	assert.Contains(t, cfg.Warnings[0], EnvLLMTimeout)
}

func TestLoad_UnreadableEnvFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestConfig_ModelOr(t *testing.T) {
	assert.Equal(t, DefaultAgentModel, (&Config{}).ModelOr(DefaultAgentModel))
	assert.Equal(t, "custom", (&Config{Model: "custom"}).ModelOr(DefaultModel))
}

func TestConfig_RequireAPIKey(t *testing.T) {
	err := (&Config{}).RequireAPIKey()
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.EqualError(t, err, "OPENAI_API_KEY not set. Provide it via env or a .env file.")
}
