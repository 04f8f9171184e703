package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"adwallet/internal/core/domain"
	"adwallet/internal/core/port"
)

var _ port.CampaignStore = (*CampaignRepository)(nil)

const campaignColumns = `id, name, status, town, radius, keywords, bid_amount, min_amount,
	campaign_fund, product_id, created_at, updated_at`

// CampaignRepository implements port.CampaignStore on a pool or, inside
// Transactor.InTx, on a transaction.
type CampaignRepository struct {
	db       querier
	currency string
}

// NewCampaignRepository returns a repository validating amounts against currency.
func NewCampaignRepository(pool *pgxpool.Pool, currency string) *CampaignRepository {
	return &CampaignRepository{db: pool, currency: currency}
}

// Create validates and inserts a campaign.
func (r *CampaignRepository) Create(ctx context.Context, draft domain.CampaignDraft) (*domain.Campaign, error) {
	c := draft.Campaign()
	if err := c.Validate(r.currency); err != nil {
		return nil, err
	}
	kw, err := json.Marshal(c.Keywords)
	if err != nil {
		return nil, fmt.Errorf("encode keywords: %w", err)
	}
	err = r.db.QueryRow(ctx, `
		INSERT INTO campaigns
		    (name, status, town, radius, keywords, bid_amount, min_amount, campaign_fund, product_id)
		VALUES ($1, $2, $3, $4, $5, $6::numeric, $7::numeric, $8::numeric, $9)
		RETURNING id, created_at, updated_at`,
		c.Name, string(c.Status), c.Town, c.Radius, kw,
		c.BidAmount.String(), c.MinAmount.String(), c.CampaignFund.String(), c.ProductID).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, classify(fmt.Errorf("insert campaign: %w", err))
	}
	return &c, nil
}

// Get returns a campaign by id.
func (r *CampaignRepository) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(r.db.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.CampaignNotFound(id)
	}
	if err != nil {
		return nil, classify(fmt.Errorf("get campaign: %w", err))
	}
	return c, nil
}

// List returns all campaigns ordered by id.
func (r *CampaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.db.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY id`)
	if err != nil {
		return nil, classify(fmt.Errorf("list campaigns: %w", err))
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
	if err != nil {
		return nil, classify(fmt.Errorf("scan campaigns: %w", err))
	}
	return out, nil
}

// Update merges a patch that leaves the fund untouched.
func (r *CampaignRepository) Update(ctx context.Context, id int64, patch domain.CampaignPatch) (*domain.Campaign, error) {
	return r.write(ctx, id, func(cur domain.Campaign) (domain.Campaign, error) {
		if patch.ChangesFund(cur.CampaignFund) {
			return cur, domain.Invalid("campaignFund", "can only be changed through a funding operation")
		}
		return cur.Apply(patch.WithoutFund()), nil
	})
}

// Reserve merges a patch and moves the fund from `from` to `to`.
func (r *CampaignRepository) Reserve(ctx context.Context, id int64, patch domain.CampaignPatch, from, to decimal.Decimal) (*domain.Campaign, error) {
	return r.write(ctx, id, func(cur domain.Campaign) (domain.Campaign, error) {
		if !cur.CampaignFund.Equal(from) {
			return cur, domain.ErrFundConflict
		}
		next := cur.Apply(patch.WithoutFund())
		next.CampaignFund = to
		return next, nil
	})
}

// Delete removes a campaign whose stored fund equals fund.
func (r *CampaignRepository) Delete(ctx context.Context, id int64, fund decimal.Decimal) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM campaigns WHERE id = $1 AND campaign_fund = $2::numeric`, id, fund.String())
	if err != nil {
		return classify(fmt.Errorf("delete campaign: %w", err))
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	var exists bool
	err = r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM campaigns WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return classify(fmt.Errorf("check campaign exists: %w", err))
	}
	if !exists {
		return domain.CampaignNotFound(id)
	}
	return domain.ErrFundConflict
}

// write locks the row, applies fn, validates the result and saves it.
func (r *CampaignRepository) write(ctx context.Context, id int64, fn func(domain.Campaign) (domain.Campaign, error)) (*domain.Campaign, error) {
	var out *domain.Campaign
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		cur, err := scanCampaign(tx.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, id))
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CampaignNotFound(id)
		}
		if err != nil {
			return classify(fmt.Errorf("lock campaign: %w", err))
		}
		next, err := fn(*cur)
		if err != nil {
			return err
		}
		if err = next.Validate(r.currency); err != nil {
			return err
		}
		kw, err := json.Marshal(next.Keywords)
		if err != nil {
			return fmt.Errorf("encode keywords: %w", err)
		}
		err = tx.QueryRow(ctx, `
			UPDATE campaigns
			SET name = $2, status = $3, town = $4, radius = $5, keywords = $6,
			    bid_amount = $7::numeric, min_amount = $8::numeric, campaign_fund = $9::numeric, product_id = $10,
			    updated_at = now()
			WHERE id = $1
			RETURNING updated_at`,
			id, next.Name, string(next.Status), next.Town, next.Radius, kw,
			next.BidAmount.String(), next.MinAmount.String(), next.CampaignFund.String(), next.ProductID).
			Scan(&next.UpdatedAt)
		if err != nil {
			return classify(fmt.Errorf("update campaign: %w", err))
		}
		out = &next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c      domain.Campaign
		status string
		kw     []byte
	)
	err := row.Scan(&c.ID, &c.Name, &status, &c.Town, &c.Radius, &kw, &c.BidAmount, &c.MinAmount,
		&c.CampaignFund, &c.ProductID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Status = domain.Status(status)
	if err = json.Unmarshal(kw, &c.Keywords); err != nil {
		return nil, fmt.Errorf("decode keywords of campaign %d: %w", c.ID, err)
	}
	return &c, nil
}
