package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"adwallet/internal/config/configs"
	"adwallet/internal/core/domain"
)

// Storage backends selectable through STORAGE.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library;
// nested structs are parsed with their envPrefix.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	// Storage selects where the wallet and campaigns live. The memory
	// backend loses everything on restart.
	Storage string `env:"STORAGE" envDefault:"postgres"`

	HTTP configs.HTTP `envPrefix:"HTTP_"`

	Log configs.Logger `envPrefix:"LOG_"`

	Psql configs.Postgres `envPrefix:"PSQL_"`

	Funding configs.Funding `envPrefix:"FUNDING_"`
}

// Load reads configuration from environment variables into a Config and
// rejects values the service cannot run with.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Storage {
	case StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE %q", c.Storage)
	}
	if !domain.KnownCurrency(c.Funding.Currency) {
		return fmt.Errorf("unknown FUNDING_CURRENCY %q", c.Funding.Currency)
	}
	// Amount columns are numeric(14, 2).
	if c.Storage == StoragePostgres && domain.Currency(c.Funding.Currency).Fraction > 2 {
		return fmt.Errorf("FUNDING_CURRENCY %s needs more than 2 decimal places", c.Funding.Currency)
	}
	if err := domain.CheckAmount("FUNDING_INITIAL_BALANCE", c.Funding.InitialBalance); err != nil {
		return err
	}
	if c.Funding.InitialBalance.IsNegative() {
		return errors.New("FUNDING_INITIAL_BALANCE must not be negative")
	}
	if !domain.FitsCurrency(c.Funding.InitialBalance, c.Funding.Currency) {
		return fmt.Errorf("FUNDING_INITIAL_BALANCE has more decimal places than %s allows", c.Funding.Currency)
	}
	return nil
}
