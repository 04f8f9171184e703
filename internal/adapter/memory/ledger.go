// Package memory implements the outbound ports in process memory. It backs
// the STORAGE=memory mode and the concurrency tests of the funding use case.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"adwallet/internal/core/domain"
	"adwallet/internal/core/port"
)

var _ port.Ledger = (*Ledger)(nil)

// Ledger keeps a single wallet behind a mutex. Every mutation checks and
// writes the balance while holding the lock.
type Ledger struct {
	mu     sync.Mutex
	wallet domain.Wallet
}

// NewLedger returns a ledger seeded with balance in the given currency.
func NewLedger(balance decimal.Decimal, currency string) *Ledger {
	return &Ledger{wallet: domain.Wallet{
		ID:        1,
		Balance:   balance,
		Currency:  currency,
		UpdatedAt: time.Now().UTC(),
	}}
}

// Wallet returns a snapshot of the wallet.
func (l *Ledger) Wallet(ctx context.Context) (domain.Wallet, error) {
	if err := ctx.Err(); err != nil {
		return domain.Wallet{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.wallet, nil
}

// Debit reduces the balance by amount when it is covered.
func (l *Ledger) Debit(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("debit amount %s: must be positive", amount)
	}
	return l.apply(ctx, amount.Neg())
}

// Credit increases the balance by amount.
func (l *Ledger) Credit(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("credit amount %s: must be positive", amount)
	}
	return l.apply(ctx, amount)
}

// Adjust debits a positive delta and credits a negative one.
func (l *Ledger) Adjust(ctx context.Context, delta decimal.Decimal) (decimal.Decimal, error) {
	if delta.IsZero() {
		w, err := l.Wallet(ctx)
		return w.Balance, err
	}
	return l.apply(ctx, delta.Neg())
}

// apply adds change to the balance, refusing to go below zero.
func (l *Ledger) apply(ctx context.Context, change decimal.Decimal) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.wallet.Balance.Add(change)
	if next.IsNegative() {
		return l.wallet.Balance, &domain.InsufficientFundsError{
			Required:  change.Neg(),
			Available: l.wallet.Balance,
		}
	}
	l.wallet.Balance = next
	l.wallet.Version++
	l.wallet.UpdatedAt = time.Now().UTC()
	return next, nil
}
