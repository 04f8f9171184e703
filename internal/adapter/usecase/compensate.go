package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adwallet/internal/core/domain"
	"adwallet/internal/core/port"
)

// RetryPolicy bounds how long a compensation is retried on transient
// ledger failures.
type RetryPolicy struct {
	MaxTries        uint
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsed      time.Duration
}

// DefaultRetryPolicy returns the policy used when none is configured.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxTries:        5,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     2 * time.Second,
		MaxElapsed:      15 * time.Second,
	}
}

type (
	ledgerStep func(ctx context.Context, ledger port.Ledger) (decimal.Decimal, error)
	storeStep  func(ctx context.Context, store port.CampaignStore) error
)

// move books a ledger movement and the store write paired with it and
// returns the resulting balance. With a Transactor both steps share one
// transaction. Without one the steps run on a context detached from the
// caller, so abandoning the request cannot strand a half-applied movement,
// and a failed write is compensated by c.
func (u *FundingUseCase) move(ctx context.Context, log *slog.Logger, c compensation, book ledgerStep, write storeStep) (decimal.Decimal, error) {
	if tx := u.opts.Transactor; tx != nil {
		var balance decimal.Decimal
		err := tx.InTx(ctx, func(ctx context.Context, ledger port.Ledger, store port.CampaignStore) (err error) {
			if balance, err = book(ctx, ledger); err != nil {
				return err
			}
			return write(ctx, store)
		})
		return balance, err
	}

	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}
	ctx, cancel := u.detach(ctx)
	defer cancel()

	balance, err := book(ctx, u.ledger)
	if err != nil {
		return balance, err
	}
	if err = write(ctx, u.store); err != nil {
		c.cause = err
		return balance, u.compensate(ctx, log, c)
	}
	return balance, nil
}

// compensation describes a ledger movement that must be undone because the
// paired store write failed. amount is the signed adjustment to apply:
// negative credits the wallet, positive debits it.
type compensation struct {
	op         domain.Operation
	opID       uuid.UUID
	campaignID int64
	amount     decimal.Decimal
	cause      error
}

// compensate reverses a ledger movement, retrying transient failures with
// exponential backoff. It returns the original cause when the reversal
// succeeds. Otherwise the discrepancy is recorded for manual reconciliation
// and the cause is returned joined with domain.ErrReconciliationRequired.
func (u *FundingUseCase) compensate(ctx context.Context, log *slog.Logger, c compensation) error {
	log = log.With(slog.String("compensation", c.amount.String()), slog.Any("cause", c.cause))

	p := u.opts.Retry
	b := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		b.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		b.MaxInterval = p.MaxInterval
	}
	opts := []backoff.RetryOption{
		backoff.WithBackOff(b),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Warn("compensation attempt failed", slog.Any("error", err), slog.Duration("retry_in", next))
		}),
	}
	if p.MaxTries > 0 {
		opts = append(opts, backoff.WithMaxTries(p.MaxTries))
	}
	if p.MaxElapsed > 0 {
		opts = append(opts, backoff.WithMaxElapsedTime(p.MaxElapsed))
	}

	balance, err := backoff.Retry(ctx, func() (decimal.Decimal, error) {
		bal, err := u.ledger.Adjust(ctx, c.amount)
		if err != nil && !errors.Is(err, domain.ErrTransient) {
			return bal, backoff.Permanent(err)
		}
		return bal, err
	}, opts...)
	if err == nil {
		log.Warn("ledger movement compensated", slog.String("balance", balance.String()))
		return c.cause
	}

	d := domain.Discrepancy{
		ID:          uuid.New(),
		OperationID: c.opID,
		Operation:   c.op,
		CampaignID:  c.campaignID,
		Amount:      c.amount,
		Reason:      fmt.Sprintf("%v; compensation failed: %v", c.cause, err),
		CreatedAt:   time.Now().UTC(),
	}
	if rerr := u.recon.Record(ctx, d); rerr != nil {
		log.Error("discrepancy could not be recorded",
			slog.Any("error", rerr),
			slog.String("discrepancy_id", d.ID.String()),
			slog.Int64("campaign_id", d.CampaignID),
			slog.String("amount", d.Amount.String()),
			slog.String("reason", d.Reason))
	} else {
		log.Error("compensation failed, discrepancy recorded",
			slog.Any("error", err),
			slog.String("discrepancy_id", d.ID.String()))
	}
	return errors.Join(c.cause, domain.ErrReconciliationRequired)
}
