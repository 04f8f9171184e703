package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Reference data loaded by Seed.
var (
	SeedTowns    = []string{"Kraków", "Warszawa", "Gdańsk", "Wrocław", "Poznań", "Łódź"}
	SeedProducts = []string{"Boots", "Sandals", "Sneakers", "Jackets", "Backpacks"}
	SeedKeywords = []string{"boots", "winter", "summer", "sale", "outdoor", "leather", "sport"}
)

// EnsureWallet returns the id of the oldest wallet, creating one with the
// given opening balance when the table is empty.
func EnsureWallet(ctx context.Context, pool *pgxpool.Pool, balance decimal.Decimal, currency string) (int64, error) {
	var id int64
	err := pool.QueryRow(ctx, `SELECT id FROM wallets ORDER BY id LIMIT 1`).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("find wallet: %w", err)
	}
	err = pool.QueryRow(ctx, `
		INSERT INTO wallets (balance, currency)
		VALUES ($1::numeric, $2)
		RETURNING id`, balance.String(), currency).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create wallet: %w", err)
	}
	return id, nil
}

// Seed fills the reference tables. Existing names are left untouched.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	batch := &pgx.Batch{}
	queue := func(table string, names []string) {
		for _, n := range names {
			batch.Queue(`INSERT INTO `+table+` (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, n)
		}
	}
	queue("towns", SeedTowns)
	queue("products", SeedProducts)
	queue("keywords", SeedKeywords)

	if err := pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return nil
}
