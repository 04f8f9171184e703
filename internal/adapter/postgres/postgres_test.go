package postgres

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adwallet/internal/core/domain"
	"adwallet/internal/db"
	"adwallet/internal/db/pgtest"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newLedger(t *testing.T, pool *pgxpool.Pool, balance string) *Ledger {
	t.Helper()
	id, err := db.EnsureWallet(context.Background(), pool, dec(balance), "USD")
	require.NoError(t, err)
	return NewLedger(pool, id)
}

func draft() domain.CampaignDraft {
	return domain.CampaignDraft{
		Name:         "Winter boots",
		Status:       domain.StatusOn,
		Town:         "Gdańsk",
		Radius:       5,
		Keywords:     []domain.Keyword{{ID: 1, Name: "boots"}},
		BidAmount:    dec("2"),
		MinAmount:    dec("1"),
		CampaignFund: dec("50"),
		ProductID:    1,
	}
}

func TestLedger(t *testing.T) {
	pool := pgtest.NewPool(t)
	ctx := context.Background()
	l := newLedger(t, pool, "100")

	bal, err := l.Debit(ctx, dec("30.50"))
	require.NoError(t, err)
	assert.True(t, bal.Equal(dec("69.50")), bal.String())

	bal, err = l.Credit(ctx, dec("0.50"))
	require.NoError(t, err)
	assert.True(t, bal.Equal(dec("70")), bal.String())

	_, err = l.Debit(ctx, dec("70.01"))
	var insufficient *domain.InsufficientFundsError
	require.ErrorAs(t, err, &insufficient)
	assert.True(t, insufficient.Available.Equal(dec("70")))
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	w, err := l.Wallet(ctx)
	require.NoError(t, err)
	assert.True(t, w.Balance.Equal(dec("70")))
	assert.Equal(t, int64(2), w.Version)
	assert.Equal(t, "USD", w.Currency)
}

func TestLedgerConcurrentDebits(t *testing.T) {
	pool := pgtest.NewPool(t)
	ctx := context.Background()
	l := newLedger(t, pool, "100")

	var (
		wg sync.WaitGroup
		mu sync.Mutex
		ok int
	)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := l.Debit(ctx, dec("3")); err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	w, err := l.Wallet(ctx)
	require.NoError(t, err)
	assert.Equal(t, 33, ok)
	assert.True(t, w.Balance.Equal(dec("1")), w.Balance.String())
}

func TestLedgerMissingWallet(t *testing.T) {
	pool := pgtest.NewPool(t)
	_, err := NewLedger(pool, 42).Wallet(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCampaignRepository(t *testing.T) {
	pool := pgtest.NewPool(t)
	ctx := context.Background()
	r := NewCampaignRepository(pool, "USD")

	c, err := r.Create(ctx, draft())
	require.NoError(t, err)
	assert.NotZero(t, c.ID)

	got, err := r.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Winter boots", got.Name)
	assert.Equal(t, []domain.Keyword{{ID: 1, Name: "boots"}}, got.Keywords)
	assert.True(t, got.CampaignFund.Equal(dec("50")))

	name := "Summer sandals"
	updated, err := r.Update(ctx, c.ID, domain.CampaignPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)

	fund := dec("70")
	_, err = r.Update(ctx, c.ID, domain.CampaignPatch{CampaignFund: &fund})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = r.Reserve(ctx, c.ID, domain.CampaignPatch{}, dec("40"), dec("70"))
	assert.ErrorIs(t, err, domain.ErrFundConflict)

	reserved, err := r.Reserve(ctx, c.ID, domain.CampaignPatch{}, dec("50"), dec("70"))
	require.NoError(t, err)
	assert.True(t, reserved.CampaignFund.Equal(dec("70")))

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	assert.ErrorIs(t, r.Delete(ctx, c.ID, dec("50")), domain.ErrFundConflict)
	require.NoError(t, r.Delete(ctx, c.ID, dec("70")))
	assert.ErrorIs(t, r.Delete(ctx, c.ID, dec("70")), domain.ErrNotFound)

	_, err = r.Get(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCampaignRepositoryRejectsInvalid(t *testing.T) {
	pool := pgtest.NewPool(t)
	r := NewCampaignRepository(pool, "USD")

	bad := draft()
	bad.MinAmount = dec("3")
	_, err := r.Create(context.Background(), bad)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalog(t *testing.T) {
	pool := pgtest.NewPool(t)
	ctx := context.Background()
	require.NoError(t, db.Seed(ctx, pool))
	require.NoError(t, db.Seed(ctx, pool))

	c := NewCatalog(pool)
	towns, err := c.Towns(ctx)
	require.NoError(t, err)
	assert.Len(t, towns, len(db.SeedTowns))

	products, err := c.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, products, len(db.SeedProducts))

	keywords, err := c.Keywords(ctx)
	require.NoError(t, err)
	assert.Len(t, keywords, len(db.SeedKeywords))
	for _, k := range keywords {
		assert.NotZero(t, k.ID)
	}
}

func TestReconciliationLog(t *testing.T) {
	pool := pgtest.NewPool(t)
	ctx := context.Background()
	r := NewReconciliationLog(pool)

	d := domain.Discrepancy{
		ID:          uuid.New(),
		OperationID: uuid.New(),
		Operation:   domain.OpDelete,
		CampaignID:  7,
		Amount:      dec("-12.50"),
		Reason:      "store down",
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, r.Record(ctx, d))
	require.NoError(t, r.Record(ctx, d))

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, d.ID, list[0].ID)
	assert.Equal(t, domain.OpDelete, list[0].Operation)
	assert.True(t, list[0].Amount.Equal(dec("-12.50")))
	assert.False(t, list[0].Resolved)

	require.NoError(t, r.Resolve(ctx, d.ID))
	require.NoError(t, r.Resolve(ctx, d.ID))
	list, err = r.List(ctx)
	require.NoError(t, err)
	assert.True(t, list[0].Resolved)

	assert.ErrorIs(t, r.Resolve(ctx, uuid.New()), domain.ErrNotFound)
}

func TestClassify(t *testing.T) {
	assert.NoError(t, classify(nil))
	assert.ErrorIs(t, classify(&pgconn.PgError{Code: "40001"}), domain.ErrTransient)
	assert.ErrorIs(t, classify(&pgconn.PgError{Code: "08006"}), domain.ErrTransient)
	assert.NotErrorIs(t, classify(&pgconn.PgError{Code: "23505"}), domain.ErrTransient)
	assert.NotErrorIs(t, classify(errors.New("boom")), domain.ErrTransient)
}
