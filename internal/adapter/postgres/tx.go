package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"adwallet/internal/core/port"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so the adapters
// run unchanged inside or outside a funding transaction.
type querier interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// withTx runs fn inside a transaction, or inside a savepoint when db is
// already a transaction. It commits if fn returns nil, otherwise it rolls
// back and returns fn's error unchanged.
func withTx(ctx context.Context, db querier, fn func(pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return classify(fmt.Errorf("begin tx: %w", err))
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback after fn error: %v (fn err: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return classify(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

var _ port.Transactor = (*Transactor)(nil)

// Transactor binds a Ledger and a CampaignRepository to one transaction.
// The wallet row stays locked from the first balance update until commit,
// so funding operations on the wallet are serialized and no reader sees a
// balance without the campaign write that pays for it.
type Transactor struct {
	pool     *pgxpool.Pool
	walletID int64
	currency string
}

// NewTransactor returns a Transactor for the wallet walletID whose campaigns
// are kept in currency.
func NewTransactor(pool *pgxpool.Pool, walletID int64, currency string) *Transactor {
	return &Transactor{pool: pool, walletID: walletID, currency: currency}
}

// InTx implements port.Transactor.
func (t *Transactor) InTx(ctx context.Context, fn func(context.Context, port.Ledger, port.CampaignStore) error) error {
	return withTx(ctx, t.pool, func(tx pgx.Tx) error {
		return fn(ctx,
			&Ledger{db: tx, walletID: t.walletID},
			&CampaignRepository{db: tx, currency: t.currency})
	})
}
