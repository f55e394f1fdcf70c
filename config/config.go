// Package config provides configuration management for fintrack.
// It loads configuration from defaults, an optional YAML config file, a .env
// file and FINTRACK_* environment variables, in increasing order of priority.
package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment variable read by fintrack.
	EnvPrefix = "FINTRACK"

	// DefaultLedgerFile is the ledger location when nothing else is configured.
	DefaultLedgerFile = "data/transactions.csv"

	keyLedgerFile = "ledger_file"
	keyVerbose    = "verbose"
)

// Config represents the application configuration.
type Config struct {
	LedgerFile string // path of the ledger file
	Verbose    bool   // log debug messages
	Source     string // config file used, if any
}

// Load reads the configuration.
//
// If configFile is empty, a "fintrack.yaml" file is searched for in the current
// directory and in $HOME/.config/fintrack; not finding one is not an error.
// An explicit configFile must exist.
//
// A .env file in the current directory, if any, is loaded into the environment
// first.
func Load(configFile string) (*Config, error) {
	// Try to load .env from current directory (ignore error if not found)
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault(keyLedgerFile, DefaultLedgerFile)
	v.SetDefault(keyVerbose, false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("fintrack")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/fintrack")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		LedgerFile: v.GetString(keyLedgerFile),
		Verbose:    v.GetBool(keyVerbose),
		Source:     v.ConfigFileUsed(),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.LedgerFile == "" {
		return fmt.Errorf("%s is required", keyLedgerFile)
	}
	return nil
}
