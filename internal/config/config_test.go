package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/N3moAhead/household/internal/money"
)

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		prev, ok := os.LookupEnv(k)
		require.NoError(t, os.Unsetenv(k))
		t.Cleanup(func() {
			if ok {
				_ = os.Setenv(k, prev)
			} else {
				_ = os.Unsetenv(k)
			}
		})
	}
}

var keys = []string{"HOUSEHOLD_LOG_MODE", "HOUSEHOLD_LOG_FILE", "HOUSEHOLD_DEFAULT_CURRENCY"}

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, keys...)

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "development", cfg.LogMode)
	assert.Equal(t, "", cfg.LogFile)
	assert.Equal(t, money.USD, cfg.DefaultCurrency)
	require.NoError(t, cfg.Validate())
}

func TestLoadEnvFile(t *testing.T) {
	unsetenv(t, keys...)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HOUSEHOLD_DEFAULT_CURRENCY=gbp\nHOUSEHOLD_LOG_MODE=production\n"), 0o600))

	cfg := Load(path)
	assert.Equal(t, money.GBP, cfg.DefaultCurrency)
	assert.Equal(t, "production", cfg.LogMode)
}

func TestEnvironmentWinsOverFile(t *testing.T) {
	unsetenv(t, keys...)
	t.Setenv("HOUSEHOLD_DEFAULT_CURRENCY", "EUR")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HOUSEHOLD_DEFAULT_CURRENCY=CAN\n"), 0o600))

	cfg := Load(path)
	assert.Equal(t, money.EUR, cfg.DefaultCurrency)
}

func TestValidate(t *testing.T) {
	cfg := &Config{LogMode: "verbose", DefaultCurrency: "JPY"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log mode 'verbose'")
	assert.Contains(t, err.Error(), "invalid default currency 'JPY'")
}
