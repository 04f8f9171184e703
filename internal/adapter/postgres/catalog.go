package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adwallet/internal/core/domain"
	"adwallet/internal/core/port"
)

var _ port.Catalog = (*Catalog)(nil)

// Catalog reads the reference tables.
type Catalog struct {
	pool *pgxpool.Pool
}

// NewCatalog returns a catalog reading the seeded reference tables.
func NewCatalog(pool *pgxpool.Pool) *Catalog {
	return &Catalog{pool: pool}
}

// Towns returns all towns ordered by name.
func (c *Catalog) Towns(ctx context.Context) ([]domain.Town, error) {
	return listNamed[domain.Town](ctx, c.pool, "towns")
}

// Products returns all products ordered by name.
func (c *Catalog) Products(ctx context.Context) ([]domain.Product, error) {
	return listNamed[domain.Product](ctx, c.pool, "products")
}

// Keywords returns all keywords ordered by name.
func (c *Catalog) Keywords(ctx context.Context) ([]domain.Keyword, error) {
	return listNamed[domain.Keyword](ctx, c.pool, "keywords")
}

// listNamed selects (id, name) pairs from a reference table. table is always
// one of the constants above, never user input.
func listNamed[T any](ctx context.Context, pool *pgxpool.Pool, table string) ([]T, error) {
	rows, err := pool.Query(ctx, `SELECT id, name FROM `+table+` ORDER BY name`)
	if err != nil {
		return nil, classify(fmt.Errorf("list %s: %w", table, err))
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByPos[T])
	if err != nil {
		return nil, classify(fmt.Errorf("scan %s: %w", table, err))
	}
	return out, nil
}
