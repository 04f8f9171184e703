package domain

import (
	"errors"
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCampaign() Campaign {
	return CampaignDraft{
		Name:         "Spring sale",
		Status:       StatusOn,
		Town:         "Kraków",
		Radius:       10,
		Keywords:     []Keyword{{ID: 1, Name: "shoes"}},
		BidAmount:    decimal.RequireFromString("2.50"),
		MinAmount:    decimal.RequireFromString("1.00"),
		CampaignFund: decimal.RequireFromString("50"),
		ProductID:    3,
	}.Campaign()
}

func TestCampaignValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Campaign)
		wantField string
		wantErr   error
	}{
		{name: "valid", mutate: func(*Campaign) {}},
		{name: "min equal to bid", mutate: func(c *Campaign) { c.MinAmount = c.BidAmount }},
		{name: "missing name", mutate: func(c *Campaign) { c.Name = "  " }, wantField: "name"},
		{name: "bad status", mutate: func(c *Campaign) { c.Status = "paused" }, wantField: "status"},
		{name: "missing town", mutate: func(c *Campaign) { c.Town = "" }, wantField: "town"},
		{name: "negative radius", mutate: func(c *Campaign) { c.Radius = -1 }, wantField: "radius"},
		{name: "no keywords", mutate: func(c *Campaign) { c.Keywords = nil }, wantField: "keywords"},
		{name: "no product", mutate: func(c *Campaign) { c.ProductID = 0 }, wantField: "productId"},
		{name: "zero bid", mutate: func(c *Campaign) { c.BidAmount = decimal.Zero }, wantField: "bidAmount"},
		{name: "negative min", mutate: func(c *Campaign) { c.MinAmount = decimal.NewFromInt(-1) }, wantField: "minAmount"},
		{name: "min above bid", mutate: func(c *Campaign) { c.MinAmount = decimal.NewFromInt(3) }, wantField: "minAmount"},
		{name: "sub-cent bid", mutate: func(c *Campaign) { c.BidAmount = decimal.RequireFromString("2.501") }, wantField: "bidAmount"},
		{name: "huge radius", mutate: func(c *Campaign) { c.Radius = math.MaxInt32 + 1 }, wantField: "radius"},
		{name: "bid at column limit", mutate: func(c *Campaign) { c.BidAmount = decimal.New(1, 12) }, wantField: "bidAmount"},
		{name: "min with huge exponent", mutate: func(c *Campaign) { c.MinAmount = decimal.RequireFromString("1e50000000") }, wantField: "minAmount"},
		{name: "largest fund", mutate: func(c *Campaign) { c.CampaignFund = decimal.RequireFromString("999999999999.99") }},
		{name: "fund at column limit", mutate: func(c *Campaign) { c.CampaignFund = decimal.New(1, 12) }, wantField: "campaignFund"},
		{name: "fund with huge exponent", mutate: func(c *Campaign) { c.CampaignFund = decimal.RequireFromString("1e50000000") }, wantField: "campaignFund"},
		{name: "fund with tiny exponent", mutate: func(c *Campaign) { c.CampaignFund = decimal.RequireFromString("1e-50000000") }, wantField: "campaignFund"},
		{name: "zero fund", mutate: func(c *Campaign) { c.CampaignFund = decimal.Zero }, wantErr: ErrInvalidFund},
		{name: "negative fund", mutate: func(c *Campaign) { c.CampaignFund = decimal.NewFromInt(-5) }, wantErr: ErrInvalidFund},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCampaign()
			tt.mutate(&c)
			err := c.Validate("USD")
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.wantField != "":
				var verr *ValidationError
				require.True(t, errors.As(err, &verr), "got %v", err)
				assert.Equal(t, tt.wantField, verr.Field)
				assert.ErrorIs(t, err, ErrValidation)
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestDraftDefaultsAndKeywordOrder(t *testing.T) {
	c := CampaignDraft{
		Keywords: []Keyword{{ID: 2, Name: "b"}, {ID: 1, Name: "a"}, {ID: 2, Name: "b"}},
	}.Campaign()
	assert.Equal(t, StatusOff, c.Status)
	assert.Equal(t, []Keyword{{ID: 2, Name: "b"}, {ID: 1, Name: "a"}}, c.Keywords)
}

func TestCampaignApply(t *testing.T) {
	c := validCampaign()
	name := "Renamed"
	fund := decimal.NewFromInt(80)
	patched := c.Apply(CampaignPatch{Name: &name, CampaignFund: &fund})

	assert.Equal(t, "Renamed", patched.Name)
	assert.True(t, patched.CampaignFund.Equal(fund))
	assert.Equal(t, "Spring sale", c.Name, "original must not change")
	assert.True(t, CampaignPatch{CampaignFund: &fund}.ChangesFund(c.CampaignFund))
	assert.False(t, CampaignPatch{CampaignFund: &fund}.ChangesFund(fund))
	assert.Nil(t, CampaignPatch{CampaignFund: &fund}.WithoutFund().CampaignFund)
}

func TestErrorsMatchSentinels(t *testing.T) {
	err := &InsufficientFundsError{Required: decimal.NewFromInt(20), Available: decimal.NewFromInt(10)}
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, "insufficient funds: required 20.00, available 10.00", err.Error())
	assert.ErrorIs(t, CampaignNotFound(7), ErrNotFound)
	assert.ErrorIs(t, Transient(errors.New("conn reset")), ErrTransient)
	assert.Nil(t, Transient(nil))
}

func TestMoneyHelpers(t *testing.T) {
	assert.True(t, FitsCurrency(decimal.RequireFromString("10.25"), "USD"))
	assert.False(t, FitsCurrency(decimal.RequireFromString("10.255"), "USD"))
	assert.True(t, FitsCurrency(decimal.NewFromInt(100), "JPY"))
	assert.False(t, FitsCurrency(decimal.RequireFromString("1.5"), "JPY"))
	assert.True(t, KnownCurrency("eur"))
	assert.False(t, KnownCurrency("XXX1"))
	assert.Equal(t, "$1,234.50", FormatMoney(decimal.RequireFromString("1234.5"), "USD"))
}

func TestCheckAmountRejectsHugeInputQuickly(t *testing.T) {
	huge := decimal.RequireFromString("1e5000000")
	start := time.Now()
	err := ValidateFund(huge, "USD")
	require.ErrorIs(t, err, ErrValidation)
	assert.Less(t, len(err.Error()), 100)
	assert.Less(t, time.Since(start), 50*time.Millisecond)

	wide := decimal.NewFromBigInt(new(big.Int).Lsh(big.NewInt(1), 4096), -8)
	assert.ErrorIs(t, CheckAmount("amount", wide), ErrValidation)
	assert.NoError(t, CheckAmount("amount", decimal.RequireFromString("-999999999999.99")))
	assert.NoError(t, CheckAmount("amount", decimal.Zero))
}
