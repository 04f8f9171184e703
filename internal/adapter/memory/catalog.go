package memory

import (
	"context"
	"slices"

	"adwallet/internal/core/domain"
	"adwallet/internal/core/port"
)

var _ port.Catalog = (*Catalog)(nil)

// Catalog serves fixed reference data.
type Catalog struct {
	towns    []domain.Town
	products []domain.Product
	keywords []domain.Keyword
}

// NewCatalog returns a catalog over the given reference data.
func NewCatalog(towns []domain.Town, products []domain.Product, keywords []domain.Keyword) *Catalog {
	return &Catalog{towns: towns, products: products, keywords: keywords}
}

// Towns returns all towns.
func (c *Catalog) Towns(context.Context) ([]domain.Town, error) { return slices.Clone(c.towns), nil }

// Products returns all products.
func (c *Catalog) Products(context.Context) ([]domain.Product, error) {
	return slices.Clone(c.products), nil
}

// Keywords returns all keywords.
func (c *Catalog) Keywords(context.Context) ([]domain.Keyword, error) {
	return slices.Clone(c.keywords), nil
}
