package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"adwallet/internal/core/domain"
	"adwallet/internal/core/port"
)

var _ port.Ledger = (*Ledger)(nil)

// Ledger implements port.Ledger on the wallets table. Each mutation is a
// single conditional UPDATE, so the sufficiency check and the write are
// one atomic statement and the balance is never cached between calls.
type Ledger struct {
	db       querier
	walletID int64
}

// NewLedger returns a ledger bound to one wallet row.
func NewLedger(pool *pgxpool.Pool, walletID int64) *Ledger {
	return &Ledger{db: pool, walletID: walletID}
}

// Wallet returns the wallet row.
func (l *Ledger) Wallet(ctx context.Context) (domain.Wallet, error) {
	var w domain.Wallet
	err := l.db.QueryRow(ctx, `
		SELECT id, balance, currency, version, updated_at
		FROM wallets
		WHERE id = $1`, l.walletID).
		Scan(&w.ID, &w.Balance, &w.Currency, &w.Version, &w.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return w, &domain.NotFoundError{Entity: "wallet", ID: l.walletID}
	}
	if err != nil {
		return w, classify(fmt.Errorf("get wallet: %w", err))
	}
	return w, nil
}

// Debit reduces the balance when it covers amount.
func (l *Ledger) Debit(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("debit amount %s: must be positive", amount)
	}
	return l.apply(ctx, amount.Neg())
}

// Credit increases the balance.
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

// apply adds change to the balance unless the result would be negative.
func (l *Ledger) apply(ctx context.Context, change decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := l.db.QueryRow(ctx, `
		UPDATE wallets
		SET balance = balance + $2::numeric,
		    version = version + 1,
		    updated_at = now()
		WHERE id = $1
		  AND balance + $2::numeric >= 0
		RETURNING balance`, l.walletID, change.String()).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		// Either the wallet is gone or the guard refused the change; the
		// balance reported here is informational only.
		w, werr := l.Wallet(ctx)
		if werr != nil {
			return decimal.Zero, werr
		}
		return w.Balance, &domain.InsufficientFundsError{Required: change.Neg(), Available: w.Balance}
	}
	if err != nil {
		return decimal.Zero, classify(fmt.Errorf("update wallet balance: %w", err))
	}
	return balance, nil
}
