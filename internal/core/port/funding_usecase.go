package port

import (
	"context"

	"github.com/google/uuid"

	"adwallet/internal/core/domain"
)

// FundingUseCase defines the operations exposed to the presentation layer.
// It is the primary port into the application domain and the only entry
// point allowed to change a campaign's fund.
type FundingUseCase interface {
	// CreateCampaign reserves the draft's fund from the wallet and stores
	// the campaign. Either both happen or neither does.
	CreateCampaign(ctx context.Context, draft domain.CampaignDraft) (*domain.Campaign, error)

	// UpdateCampaign applies a patch. A fund change moves the difference
	// between wallet and campaign in the same logical transaction.
	UpdateCampaign(ctx context.Context, id int64, patch domain.CampaignPatch) (*domain.Campaign, error)

	// DeleteCampaign releases the campaign's fund back to the wallet and
	// removes the record.
	DeleteCampaign(ctx context.Context, id int64) error

	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)

	// ListCampaigns returns all campaigns with their product names resolved.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)

	// GetWallet returns the current wallet, balance included.
	GetWallet(ctx context.Context) (domain.Wallet, error)

	Towns(ctx context.Context) ([]domain.Town, error)
	Products(ctx context.Context) ([]domain.Product, error)
	Keywords(ctx context.Context) ([]domain.Keyword, error)

	// Discrepancies lists ledger movements awaiting manual reconciliation.
	Discrepancies(ctx context.Context) ([]domain.Discrepancy, error)

	// ResolveDiscrepancy marks a discrepancy as settled once an operator
	// has corrected the wallet by hand.
	ResolveDiscrepancy(ctx context.Context, id uuid.UUID) error
}
