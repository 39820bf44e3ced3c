package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LOG_LEVEL", "GEO_FILE", "CATALOG_DSN", "STATE_AGGREGATES", "BASE_PRICE_FILE", "CORS_ORIGINS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "5250", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, AggregatesStatic, cfg.StateAggregates)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Empty(t, cfg.BasePriceFile)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STATE_AGGREGATES", " Derived ")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, AggregatesDerived, cfg.StateAggregates)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestLoadConfigRejectsAggregateMode(t *testing.T) {
	t.Setenv("STATE_AGGREGATES", "live")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoadConfigEnvFile(t *testing.T) {
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9090\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoadConfigUnreadableEnvFile(t *testing.T) {
	// a directory opens but cannot be read as a file
	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestLoadBasePrices(t *testing.T) {
	t.Run("Built-in table without a file", func(t *testing.T) {
		table, err := LoadBasePrices("")
		require.NoError(t, err)
		assert.Equal(t, 18000.0, table.Prices["Mumbai"])
		assert.Equal(t, 7000.0, table.Default)
	})

	t.Run("File overrides and extends", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prices.json")
		body := `{"base_prices": {"mumbai": 20000, "Goa": 9500}, "default_base_price": 6500}`
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))

		table, err := LoadBasePrices(path)
		require.NoError(t, err)
		assert.Equal(t, 20000.0, table.Prices["mumbai"])
		assert.NotContains(t, table.Prices, "Mumbai")
		assert.Equal(t, 9500.0, table.Prices["Goa"])
		assert.Equal(t, 12000.0, table.Prices["Delhi"])
		assert.Equal(t, 6500.0, table.Default)
	})

	t.Run("Invalid files", func(t *testing.T) {
		dir := t.TempDir()
		broken := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(broken, []byte(`{"base_prices":`), 0644))
		negative := filepath.Join(dir, "negative.json")
		require.NoError(t, os.WriteFile(negative, []byte(`{"base_prices": {"Pune": -1}}`), 0644))

		for _, path := range []string{broken, negative, filepath.Join(dir, "missing.json")} {
			_, err := LoadBasePrices(path)
			assert.Error(t, err, path)
		}
	})
}
