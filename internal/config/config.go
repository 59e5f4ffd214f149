// Package config loads infa2sql settings from the environment and .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults.
const (
	DefaultEnvFile    = ".env"
	DefaultLogLevel   = "info"
	DefaultModel      = "gpt-5-mini"
	DefaultAgentModel = "gpt-4o-mini"
	DefaultLLMTimeout = 60 * time.Second
)

// Environment variable names.
const (
	EnvLogLevel   = "INFA2SQL_LOG_LEVEL"
	EnvAPIKey     = "OPENAI_API_KEY"
	EnvModel      = "OPENAI_MODEL"
	EnvBaseURL    = "OPENAI_BASE_URL"
	EnvLLMTimeout = "INFA2SQL_LLM_TIMEOUT"
)

// ErrMissingAPIKey is returned when an LLM command runs without an API key.
var ErrMissingAPIKey = errors.New(EnvAPIKey + " not set. Provide it via env or a .env file.")

// Config holds the runtime configuration.
type Config struct {
	LogLevel string // debug, info, warn, error (default "info")

	// LLM settings, only read by the llm and agent commands.
	APIKey     string
	Model      string // empty means the command's default model
	BaseURL    string // empty means the public OpenAI endpoint
	LLMTimeout time.Duration

	// EnvFiles lists the .env files that were actually loaded.
	EnvFiles []string

	// Warnings collects non-fatal problems found while loading.
	// They are logged by the caller once the logger exists.
	Warnings []string
}

// Load reads the given .env files, then the environment. Variables already
// set in the environment win over .env values. Missing files are skipped;
// with no files given the .env in the working directory is tried.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}

	cfg := &Config{}

	for _, f := range envFiles {
		err := godotenv.Load(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}

		cfg.EnvFiles = append(cfg.EnvFiles, f)
	}

	cfg.LogLevel = envOr(EnvLogLevel, DefaultLogLevel)
	cfg.APIKey = strings.TrimSpace(os.Getenv(EnvAPIKey))
	cfg.Model = strings.TrimSpace(os.Getenv(EnvModel))
	cfg.BaseURL = strings.TrimSpace(os.Getenv(EnvBaseURL))
	cfg.LLMTimeout = DefaultLLMTimeout

	if v := strings.TrimSpace(os.Getenv(EnvLLMTimeout)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			cfg.Warnings = append(cfg.Warnings,
				fmt.Sprintf("ignoring %s=%q: want a positive duration such as 90s", EnvLLMTimeout, v))
		} else {
			cfg.LLMTimeout = d
		}
	}

	return cfg, nil
}

// ModelOr returns the configured model, or fallback when none is set.
func (c *Config) ModelOr(fallback string) string {
	if c.Model != "" {
		return c.Model
	}

	return fallback
}

// RequireAPIKey returns ErrMissingAPIKey when no API key is configured.
func (c *Config) RequireAPIKey() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}

	return nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return fallback
}
