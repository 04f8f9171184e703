package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adwallet/internal/core/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestLedgerDebitCredit(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(dec("100"), "USD")

	bal, err := l.Debit(ctx, dec("30.25"))
	require.NoError(t, err)
	assert.True(t, bal.Equal(dec("69.75")), "got %s", bal)

	bal, err = l.Credit(ctx, dec("0.25"))
	require.NoError(t, err)
	assert.True(t, bal.Equal(dec("70")), "got %s", bal)

	w, err := l.Wallet(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), w.Version)
}

func TestLedgerDebitInsufficient(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(dec("10"), "USD")

	_, err := l.Debit(ctx, dec("20"))
	var ferr *domain.InsufficientFundsError
	require.ErrorAs(t, err, &ferr)
	assert.True(t, ferr.Required.Equal(dec("20")))
	assert.True(t, ferr.Available.Equal(dec("10")))

	w, _ := l.Wallet(ctx)
	assert.True(t, w.Balance.Equal(dec("10")))
	assert.Equal(t, int64(0), w.Version)
}

func TestLedgerRejectsNonPositiveAmounts(t *testing.T) {
	l := NewLedger(dec("10"), "USD")
	_, err := l.Debit(context.Background(), decimal.Zero)
	assert.Error(t, err)
	_, err = l.Credit(context.Background(), dec("-1"))
	assert.Error(t, err)
}

func TestLedgerAdjust(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(dec("100"), "USD")

	bal, err := l.Adjust(ctx, dec("30"))
	require.NoError(t, err)
	assert.True(t, bal.Equal(dec("70")))

	bal, err = l.Adjust(ctx, dec("-50"))
	require.NoError(t, err)
	assert.True(t, bal.Equal(dec("120")))

	bal, err = l.Adjust(ctx, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, bal.Equal(dec("120")))

	_, err = l.Adjust(ctx, dec("121"))
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
}

func TestLedgerConcurrentDebits(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(dec("100"), "USD")

	var ok atomic.Int32
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := l.Debit(ctx, dec("3")); err == nil {
				ok.Add(1)
			}
		}()
	}
	wg.Wait()

	w, _ := l.Wallet(ctx)
	assert.Equal(t, int32(33), ok.Load())
	assert.True(t, w.Balance.Equal(dec("1")), "got %s", w.Balance)
}
