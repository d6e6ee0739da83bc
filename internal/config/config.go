package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/N3moAhead/household/internal/money"
)

type Config struct {
	// Logging
	LogMode string
	LogFile string

	// Money
	DefaultCurrency money.Currency
}

// Load reads envFiles (".env" when none are given) without overriding
// variables already set in the environment, then builds the config.
func Load(envFiles ...string) *Config {
	_ = godotenv.Load(envFiles...)

	return &Config{
		LogMode:         getEnv("HOUSEHOLD_LOG_MODE", "development"),
		LogFile:         getEnv("HOUSEHOLD_LOG_FILE", ""),
		DefaultCurrency: money.Currency(strings.ToUpper(getEnv("HOUSEHOLD_DEFAULT_CURRENCY", string(money.USD)))),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var problems []string

	switch strings.ToLower(c.LogMode) {
	case "development", "dev", "production", "prod":
	default:
		problems = append(problems, fmt.Sprintf("invalid log mode '%s': must be development or production", c.LogMode))
	}

	if _, err := money.ParseCurrency(string(c.DefaultCurrency)); err != nil {
		problems = append(problems, fmt.Sprintf("invalid default currency '%s': must be one of %v", c.DefaultCurrency, money.Currencies()))
	}

	if len(problems) > 0 {
		return errors.New("configuration validation failed:\n  - " + strings.Join(problems, "\n  - "))
	}
	return nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}
