package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adwallet/internal/core/domain"
	"adwallet/internal/core/port"
)

var _ port.FundingUseCase = (*FundingUseCase)(nil)

// Options tunes the funding use case.
type Options struct {
	// Currency is the wallet currency amounts are validated against.
	Currency string
	// OperationTimeout bounds the part of an operation that runs after the
	// ledger was touched and no longer follows caller cancellation.
	OperationTimeout time.Duration
	// Retry controls how compensations are retried on transient failures.
	Retry RetryPolicy
	// Transactor, when set, runs each ledger movement and its campaign
	// write in one storage transaction. Compensation is then never needed.
	Transactor port.Transactor
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		Currency:         domain.DefaultCurrency,
		OperationTimeout: 30 * time.Second,
		Retry:            DefaultRetryPolicy(),
	}
}

// FundingUseCase coordinates the ledger and the campaign store so that a
// campaign's fund and the wallet balance always move together. It is the
// only place where a campaign's fund changes.
type FundingUseCase struct {
	ledger  port.Ledger
	store   port.CampaignStore
	catalog port.Catalog
	recon   port.ReconciliationLog
	logger  *slog.Logger
	opts    Options
	locks   *keyLock
}

// NewFundingUseCase wires the use case to its outbound ports.
func NewFundingUseCase(
	ledger port.Ledger,
	store port.CampaignStore,
	catalog port.Catalog,
	recon port.ReconciliationLog,
	logger *slog.Logger,
	opts Options,
) *FundingUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Currency == "" {
		opts.Currency = domain.DefaultCurrency
	}
	if opts.OperationTimeout <= 0 {
		opts.OperationTimeout = DefaultOptions().OperationTimeout
	}
	return &FundingUseCase{
		ledger:  ledger,
		store:   store,
		catalog: catalog,
		recon:   recon,
		logger:  logger,
		opts:    opts,
		locks:   newKeyLock(),
	}
}

// CreateCampaign debits the draft's fund and stores the campaign as one
// unit: inside a transaction when the storage offers one, otherwise with the
// debit credited back when the store rejects the campaign.
func (u *FundingUseCase) CreateCampaign(ctx context.Context, draft domain.CampaignDraft) (*domain.Campaign, error) {
	opID := uuid.New()
	log := u.logger.With(slog.String("op", string(domain.OpCreate)), slog.String("op_id", opID.String()))

	if err := domain.ValidateFund(draft.CampaignFund, u.opts.Currency); err != nil {
		return nil, err
	}
	if err := draft.Campaign().Validate(u.opts.Currency); err != nil {
		return nil, err
	}
	refs, err := u.loadReferences(ctx)
	if err != nil {
		return nil, err
	}
	if draft.Keywords, err = refs.check(draft.Campaign(), allRefs); err != nil {
		return nil, err
	}

	fund := draft.CampaignFund
	var c *domain.Campaign
	balance, err := u.move(ctx, log,
		compensation{op: domain.OpCreate, opID: opID, amount: fund.Neg()},
		func(ctx context.Context, ledger port.Ledger) (decimal.Decimal, error) {
			return ledger.Debit(ctx, fund)
		},
		func(ctx context.Context, store port.CampaignStore) (err error) {
			c, err = store.Create(ctx, draft)
			return err
		})
	if err != nil {
		return nil, err
	}

	log.Info("campaign created",
		slog.Int64("campaign_id", c.ID),
		slog.String("fund", fund.String()),
		slog.String("balance", balance.String()))
	return c, nil
}

// UpdateCampaign applies a patch. When the fund changes, the difference is
// moved between the wallet and the campaign together with the record
// change.
func (u *FundingUseCase) UpdateCampaign(ctx context.Context, id int64, patch domain.CampaignPatch) (*domain.Campaign, error) {
	unlock, err := u.locks.Lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	opID := uuid.New()
	log := u.logger.With(
		slog.String("op", string(domain.OpUpdate)),
		slog.String("op_id", opID.String()),
		slog.Int64("campaign_id", id))

	cur, err := u.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.CampaignFund != nil {
		if err = domain.ValidateFund(*patch.CampaignFund, u.opts.Currency); err != nil {
			return nil, err
		}
	}
	next := cur.Apply(patch)
	if err = next.Validate(u.opts.Currency); err != nil {
		return nil, err
	}
	if which := patchedRefs(patch); which != 0 {
		refs, err := u.loadReferences(ctx)
		if err != nil {
			return nil, err
		}
		kw, err := refs.check(next, which)
		if err != nil {
			return nil, err
		}
		if patch.Keywords != nil {
			patch.Keywords = kw
		}
	}

	if !patch.ChangesFund(cur.CampaignFund) {
		return u.store.Update(ctx, id, patch.WithoutFund())
	}

	delta := next.CampaignFund.Sub(cur.CampaignFund)
	var updated *domain.Campaign
	balance, err := u.move(ctx, log,
		compensation{op: domain.OpUpdate, opID: opID, campaignID: id, amount: delta.Neg()},
		func(ctx context.Context, ledger port.Ledger) (decimal.Decimal, error) {
			return ledger.Adjust(ctx, delta)
		},
		func(ctx context.Context, store port.CampaignStore) (err error) {
			updated, err = store.Reserve(ctx, id, patch, cur.CampaignFund, next.CampaignFund)
			return err
		})
	if err != nil {
		return nil, err
	}

	log.Info("campaign fund adjusted",
		slog.String("from", cur.CampaignFund.String()),
		slog.String("to", next.CampaignFund.String()),
		slog.String("balance", balance.String()))
	return updated, nil
}

// DeleteCampaign credits the campaign's fund back to the wallet and removes
// the record. The record stays when the refund cannot be booked, and the
// refund does not stand when the record cannot be removed.
func (u *FundingUseCase) DeleteCampaign(ctx context.Context, id int64) error {
	unlock, err := u.locks.Lock(ctx, id)
	if err != nil {
		return err
	}
	defer unlock()

	opID := uuid.New()
	log := u.logger.With(
		slog.String("op", string(domain.OpDelete)),
		slog.String("op_id", opID.String()),
		slog.Int64("campaign_id", id))

	cur, err := u.store.Get(ctx, id)
	if err != nil {
		return err
	}

	fund := cur.CampaignFund
	if !fund.IsPositive() {
		return u.store.Delete(ctx, id, fund)
	}
	balance, err := u.move(ctx, log,
		compensation{op: domain.OpDelete, opID: opID, campaignID: id, amount: fund},
		func(ctx context.Context, ledger port.Ledger) (decimal.Decimal, error) {
			return ledger.Credit(ctx, fund)
		},
		func(ctx context.Context, store port.CampaignStore) error {
			return store.Delete(ctx, id, fund)
		})
	if err != nil {
		return err
	}

	log.Info("campaign deleted",
		slog.String("refund", fund.String()),
		slog.String("balance", balance.String()))
	return nil
}

// GetCampaign returns one campaign with its product name filled in.
func (u *FundingUseCase) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := u.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	products, err := u.catalog.Products(ctx)
	if err != nil {
		return nil, err
	}
	c.ProductName = productNames(products)[c.ProductID]
	return c, nil
}

// ListCampaigns returns all campaigns with product names filled in.
func (u *FundingUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	campaigns, err := u.store.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := u.catalog.Products(ctx)
	if err != nil {
		return nil, err
	}
	names := productNames(products)
	for i := range campaigns {
		campaigns[i].ProductName = names[campaigns[i].ProductID]
	}
	return campaigns, nil
}

// GetWallet returns the wallet as the ledger currently records it.
func (u *FundingUseCase) GetWallet(ctx context.Context) (domain.Wallet, error) {
	return u.ledger.Wallet(ctx)
}

// Towns lists the towns campaigns may be targeted at.
func (u *FundingUseCase) Towns(ctx context.Context) ([]domain.Town, error) {
	return u.catalog.Towns(ctx)
}

// Products lists the products campaigns may advertise.
func (u *FundingUseCase) Products(ctx context.Context) ([]domain.Product, error) {
	return u.catalog.Products(ctx)
}

// Keywords lists the keywords campaigns may target.
func (u *FundingUseCase) Keywords(ctx context.Context) ([]domain.Keyword, error) {
	return u.catalog.Keywords(ctx)
}

// Discrepancies lists ledger movements whose compensation failed.
func (u *FundingUseCase) Discrepancies(ctx context.Context) ([]domain.Discrepancy, error) {
	return u.recon.List(ctx)
}

// ResolveDiscrepancy marks a discrepancy as settled. The wallet is not
// touched: the operator has already applied the owed adjustment.
func (u *FundingUseCase) ResolveDiscrepancy(ctx context.Context, id uuid.UUID) error {
	if err := u.recon.Resolve(ctx, id); err != nil {
		return err
	}
	u.logger.Info("discrepancy resolved", slog.String("discrepancy_id", id.String()))
	return nil
}

// detach returns a context that ignores the caller's cancellation but is
// still bounded by the operation timeout.
func (u *FundingUseCase) detach(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), u.opts.OperationTimeout)
}

func productNames(products []domain.Product) map[int64]string {
	names := make(map[int64]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	return names
}
