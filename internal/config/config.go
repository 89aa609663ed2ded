// Package config loads application configuration from an optional file and
// environment variables.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/youqu117/Bookkeeping/internal/assistant"
)

// Config is the application configuration. The API key reaches the
// assistant exactly as loaded here; an empty key makes the assistant answer
// with its configure-key message instead of calling the model.
type Config struct {
	APIKey   string `mapstructure:"api_key"`
	Model    string `mapstructure:"model"`
	Port     string `mapstructure:"port"`
	SeedFile string `mapstructure:"seed_file"`
}

// Load reads configuration from the given file (optional) and from
// BOOKKEEPING_* environment variables. GEMINI_API_KEY is honored as a
// fallback for the API key.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("model", assistant.DefaultModel)
	v.SetDefault("port", "8080")

	v.SetEnvPrefix("BOOKKEEPING")
	v.AutomaticEnv()
	if err := v.BindEnv("api_key", "BOOKKEEPING_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind api_key env: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
