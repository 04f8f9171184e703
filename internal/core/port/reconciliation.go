package port

import (
	"context"

	"github.com/google/uuid"

	"adwallet/internal/core/domain"
)

// ReconciliationLog stores discrepancies that need a human to settle them.
type ReconciliationLog interface {
	Record(ctx context.Context, d domain.Discrepancy) error
	List(ctx context.Context) ([]domain.Discrepancy, error)
	// Resolve marks a discrepancy as settled. Unknown ids yield
	// domain.ErrNotFound; resolving twice is not an error.
	Resolve(ctx context.Context, id uuid.UUID) error
}
