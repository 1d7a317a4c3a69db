package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultStorePath    = "kwacha.json"
	defaultLogLevel     = "info"
	defaultCurrency     = "ZMW"
	defaultHistoryLimit = 10
)

// Config captures runtime configuration. Values come from environment
// variables, with an optional .env file in the working directory.
type Config struct {
	StorePath    string `mapstructure:"STORE_PATH"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`
	Currency     string `mapstructure:"CURRENCY"`
	HistoryLimit int    `mapstructure:"HISTORY_LIMIT"`
}

// Load reads configuration from the environment and populates a Config.
func Load() (Config, error) {
	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName(".env")
	v.SetConfigType("env")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("STORE_PATH", defaultStorePath)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("CURRENCY", defaultCurrency)
	v.SetDefault("HISTORY_LIMIT", defaultHistoryLimit)

	for _, key := range []string{"STORE_PATH", "LOG_LEVEL", "CURRENCY", "HISTORY_LIMIT"} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	// The .env file is optional; only a malformed one is an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.Currency = strings.ToUpper(cfg.Currency)
	if cfg.StorePath == "" {
		return Config{}, fmt.Errorf("STORE_PATH must not be empty")
	}
	if cfg.HistoryLimit < 0 {
		return Config{}, fmt.Errorf("HISTORY_LIMIT must not be negative")
	}
	return cfg, nil
}
