package port

import (
	"context"

	"github.com/shopspring/decimal"

	"adwallet/internal/core/domain"
)

// CampaignStore persists campaign records independently of funding. It
// validates per-record invariants and never touches the Ledger. Missing
// ids yield *domain.NotFoundError and a failed call leaves the store as it
// was.
type CampaignStore interface {
	// Create validates the draft, assigns an identity and stores it.
	Create(ctx context.Context, draft domain.CampaignDraft) (*domain.Campaign, error)
	// Get returns a campaign by id.
	Get(ctx context.Context, id int64) (*domain.Campaign, error)
	// List returns all campaigns ordered by id.
	List(ctx context.Context) ([]domain.Campaign, error)
	// Update merges a patch into the stored record. Patches that change
	// CampaignFund are rejected with a validation error; only Reserve may
	// move a campaign's fund.
	Update(ctx context.Context, id int64, patch domain.CampaignPatch) (*domain.Campaign, error)
	// Reserve merges a patch and sets the fund to `to`, provided the stored
	// fund still equals `from`. Otherwise it fails with domain.ErrFundConflict.
	Reserve(ctx context.Context, id int64, patch domain.CampaignPatch, from, to decimal.Decimal) (*domain.Campaign, error)
	// Delete removes the campaign if its stored fund still equals fund.
	Delete(ctx context.Context, id int64, fund decimal.Decimal) error
}
