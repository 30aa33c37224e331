package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL", "OPENAI_TEMPERATURE",
		"OPENAI_MAX_TOKENS", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(k, "")
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_MissingAPIKey(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFrom(missingEnvFile(t))
	require.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Nil(t, cfg)
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test-1234567890")

	cfg, err := LoadFrom(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, "sk-test-1234567890", cfg.OpenAIAPIKey)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAIModel)
	assert.InDelta(t, 0.7, cfg.OpenAITemperature, 0.0001)
	assert.Equal(t, 700, cfg.OpenAIMaxTokens)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Empty(t, cfg.OpenAIBaseURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test-1234567890")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("OPENAI_TEMPERATURE", "0.2")
	t.Setenv("OPENAI_MAX_TOKENS", "300")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadFrom(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.InDelta(t, 0.2, cfg.OpenAITemperature, 0.0001)
	assert.Equal(t, 300, cfg.OpenAIMaxTokens)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OPENAI_API_KEY=sk-from-dotenv-abcd\nOPENAI_MODEL=gpt-4o\n"), 0o600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "sk-from-dotenv-abcd", cfg.OpenAIAPIKey)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
}

func TestValidate(t *testing.T) {
	base := Config{OpenAIAPIKey: "k", OpenAIMaxTokens: 700, OpenAITemperature: 0.7, LogFormat: "console"}
	assert.NoError(t, base.Validate())

	c := base
	c.OpenAIMaxTokens = 0
	assert.Error(t, c.Validate())

	c = base
	c.OpenAITemperature = 3
	assert.Error(t, c.Validate())

	c = base
	c.LogFormat = "xml"
	assert.Error(t, c.Validate())
}

func TestMaskedAPIKey(t *testing.T) {
	c := Config{OpenAIAPIKey: "sk-abcdefghijklmnop"}
	assert.Equal(t, "sk-ab...mnop", c.MaskedAPIKey())

	c.OpenAIAPIKey = "short"
	assert.Equal(t, "*****", c.MaskedAPIKey())
}
