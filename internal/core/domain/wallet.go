package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet holds the spendable balance campaigns reserve their funds from.
// Version is bumped by every committed balance mutation.
type Wallet struct {
	ID        int64
	Balance   decimal.Decimal
	Currency  string
	Version   int64
	UpdatedAt time.Time
}
