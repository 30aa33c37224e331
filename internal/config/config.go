package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned by Load when no completion credential is
// configured.  It is fatal before any input is read.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is required")

// Config is the process-wide configuration.  It is built once in main and
// handed to the components that need it.
type Config struct {
	OpenAIAPIKey      string  `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel       string  `mapstructure:"OPENAI_MODEL"`
	OpenAIBaseURL     string  `mapstructure:"OPENAI_BASE_URL"`
	OpenAITemperature float32 `mapstructure:"OPENAI_TEMPERATURE"`
	OpenAIMaxTokens   int     `mapstructure:"OPENAI_MAX_TOKENS"`
	LogLevel          string  `mapstructure:"LOG_LEVEL"`
	LogFormat         string  `mapstructure:"LOG_FORMAT"`
}

// Load reads configuration from the environment, falling back to a .env file
// in the working directory.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit dotenv path.  A missing file is not an
// error.
func LoadFrom(envFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("OPENAI_MODEL", "gpt-3.5-turbo")
	v.SetDefault("OPENAI_TEMPERATURE", 0.7)
	v.SetDefault("OPENAI_MAX_TOKENS", 700)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("OPENAI_MODEL")
	v.BindEnv("OPENAI_BASE_URL")
	v.BindEnv("OPENAI_TEMPERATURE")
	v.BindEnv("OPENAI_MAX_TOKENS")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("LOG_FORMAT")

	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.OpenAIAPIKey = strings.TrimSpace(cfg.OpenAIAPIKey)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values Load cannot default.
func (c *Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return ErrMissingAPIKey
	}
	if c.OpenAIMaxTokens <= 0 {
		return fmt.Errorf("OPENAI_MAX_TOKENS must be positive, got %d", c.OpenAIMaxTokens)
	}
	if c.OpenAITemperature < 0 || c.OpenAITemperature > 2 {
		return fmt.Errorf("OPENAI_TEMPERATURE must be between 0 and 2, got %v", c.OpenAITemperature)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be \"console\" or \"json\", got %q", c.LogFormat)
	}
	return nil
}

// MaskedAPIKey returns the credential with everything but its first five and
// last four characters hidden, for logging.
func (c *Config) MaskedAPIKey() string {
	k := c.OpenAIAPIKey
	if len(k) <= 9 {
		return strings.Repeat("*", len(k))
	}
	return k[:5] + "..." + k[len(k)-4:]
}
