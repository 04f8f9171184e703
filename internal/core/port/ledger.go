package port

import (
	"context"

	"github.com/shopspring/decimal"

	"adwallet/internal/core/domain"
)

// Ledger is the sole mutator of the wallet balance. It is an outbound port
// in hexagonal architecture. Implementations must perform the balance check
// and the balance write as one indivisible step and must never serve a
// balance captured before a previous call.
type Ledger interface {
	// Wallet returns the current wallet state without side effects.
	Wallet(ctx context.Context) (domain.Wallet, error)
	// Debit reduces the balance by amount (> 0) and returns the new balance.
	// It fails with *domain.InsufficientFundsError, leaving the balance
	// unchanged, when the balance does not cover amount.
	Debit(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)
	// Credit increases the balance by amount (> 0) and returns the new balance.
	Credit(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)
	// Adjust applies a signed reservation change: a positive delta debits,
	// a negative delta credits and zero succeeds without touching the wallet.
	Adjust(ctx context.Context, delta decimal.Decimal) (decimal.Decimal, error)
}
