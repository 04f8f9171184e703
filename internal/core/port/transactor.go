package port

import "context"

// Transactor runs a ledger movement and the campaign write it pays for as
// one storage transaction. fn receives a Ledger and a CampaignStore bound
// to that transaction. Both commit if fn returns nil; otherwise neither
// change is visible to anyone.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context, ledger Ledger, store CampaignStore) error) error
}
