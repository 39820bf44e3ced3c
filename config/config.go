package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	AggregatesStatic  = "static"
	AggregatesDerived = "derived"
)

type Config struct {
	Port     string `env:"PORT" envDefault:"5250"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// GeoJSON FeatureCollection of Indian states keyed by st_nm
	GeoFile string `env:"GEO_FILE" envDefault:"data/india-states-geo.json"`

	// SQLite DSN of the catalog the dataset is seeded into at boot
	CatalogDSN string `env:"CATALOG_DSN" envDefault:"file::memory:?cache=shared"`

	// "static" serves the published state table, "derived" averages localities
	StateAggregates string `env:"STATE_AGGREGATES" envDefault:"static"`

	// Optional JSON file overriding the property value base prices
	BasePriceFile string `env:"BASE_PRICE_FILE"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

// LoadConfig reads an optional .env file and then the process environment
func LoadConfig(files ...string) (*Config, error) {
	// a missing .env is fine, an unreadable one is not
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %v", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %v", err)
	}

	cfg.StateAggregates = strings.ToLower(strings.TrimSpace(cfg.StateAggregates))
	switch cfg.StateAggregates {
	case AggregatesStatic, AggregatesDerived:
	default:
		return nil, fmt.Errorf("invalid STATE_AGGREGATES %q: want %s or %s",
			cfg.StateAggregates, AggregatesStatic, AggregatesDerived)
	}
	return cfg, nil
}
