package port

import (
	"context"

	"adwallet/internal/core/domain"
)

// Catalog exposes the read-only reference data campaigns refer to.
type Catalog interface {
	Towns(ctx context.Context) ([]domain.Town, error)
	Products(ctx context.Context) ([]domain.Product, error)
	Keywords(ctx context.Context) ([]domain.Keyword, error)
}
