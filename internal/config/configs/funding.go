package configs

import (
	"time"

	"github.com/shopspring/decimal"
)

// Funding configures the wallet and the funding coordinator.
type Funding struct {
	// Currency is the ISO 4217 code of the wallet.
	Currency string `env:"CURRENCY" envDefault:"USD"`
	// InitialBalance is the opening balance of a newly created wallet.
	InitialBalance decimal.Decimal `env:"INITIAL_BALANCE" envDefault:"1000"`
	// OperationTimeout bounds the store write and compensation that follow
	// a ledger mutation.
	OperationTimeout time.Duration `env:"OPERATION_TIMEOUT" envDefault:"30s"`

	Compensation Compensation `envPrefix:"COMPENSATION_"`
}

// Compensation bounds retries of a failed ledger reversal.
type Compensation struct {
	MaxTries        uint          `env:"MAX_TRIES" envDefault:"5"`
	InitialInterval time.Duration `env:"INITIAL_INTERVAL" envDefault:"100ms"`
	MaxInterval     time.Duration `env:"MAX_INTERVAL" envDefault:"2s"`
	MaxElapsed      time.Duration `env:"MAX_ELAPSED" envDefault:"15s"`
}
