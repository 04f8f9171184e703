package domain

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	maxNameLength = 200
	maxRadius     = math.MaxInt32

	// Amounts are stored as numeric(14, 2): at most 12 integer digits.
	maxAmountDigits = 12
	// maxAmountScale bounds the fractional digits accepted on input, before
	// the currency check narrows them further.
	maxAmountScale = 8
	// maxAmountBits bounds the coefficient before decimal arithmetic is
	// attempted. Anything wider exceeds maxAmount at any accepted scale.
	maxAmountBits = 128
)

// MaxAmount is the smallest amount rejected as too large.
var MaxAmount = decimal.New(1, maxAmountDigits)

// CheckAmount rejects amounts whose magnitude or precision the wallet
// cannot hold. It only inspects the exponent and coefficient size before
// comparing, so arbitrarily large inputs are refused without rescaling.
func CheckAmount(field string, amount decimal.Decimal) error {
	if amount.IsZero() {
		return nil
	}
	exp := amount.Exponent()
	if exp < -maxAmountScale {
		return Invalid(field, "too many decimal places")
	}
	if exp > maxAmountDigits || amount.Coefficient().BitLen() > maxAmountBits ||
		amount.Abs().GreaterThanOrEqual(MaxAmount) {
		return Invalid(field, "must be less than "+MaxAmount.String())
	}
	return nil
}

// ValidateFund checks that a campaign fund is a positive amount
// representable in the wallet currency.
func ValidateFund(fund decimal.Decimal, currency string) error {
	if !fund.IsPositive() {
		return ErrInvalidFund
	}
	if err := CheckAmount("campaignFund", fund); err != nil {
		return err
	}
	if !FitsCurrency(fund, currency) {
		return Invalid("campaignFund", "too many decimal places for "+Currency(currency).Code)
	}
	return nil
}

// Validate checks the per-record invariants of a campaign. It does not
// consult the catalog.
func (c Campaign) Validate(currency string) error {
	name := strings.TrimSpace(c.Name)
	switch {
	case name == "":
		return Invalid("name", "is required")
	case utf8.RuneCountInString(name) > maxNameLength:
		return Invalid("name", "is too long")
	}
	if c.Status != StatusOn && c.Status != StatusOff {
		return Invalid("status", `must be "on" or "off"`)
	}
	if strings.TrimSpace(c.Town) == "" {
		return Invalid("town", "is required")
	}
	switch {
	case c.Radius < 0:
		return Invalid("radius", "must not be negative")
	case int64(c.Radius) > maxRadius:
		return Invalid("radius", "is too large")
	}
	if len(c.Keywords) == 0 {
		return Invalid("keywords", "at least one keyword is required")
	}
	if c.ProductID <= 0 {
		return Invalid("productId", "is required")
	}
	if !c.BidAmount.IsPositive() {
		return Invalid("bidAmount", "must be greater than zero")
	}
	if err := CheckAmount("bidAmount", c.BidAmount); err != nil {
		return err
	}
	if c.MinAmount.IsNegative() {
		return Invalid("minAmount", "must not be negative")
	}
	if err := CheckAmount("minAmount", c.MinAmount); err != nil {
		return err
	}
	if c.MinAmount.GreaterThan(c.BidAmount) {
		return Invalid("minAmount", "cannot be greater than bid amount")
	}
	if !FitsCurrency(c.BidAmount, currency) {
		return Invalid("bidAmount", "too many decimal places")
	}
	if !FitsCurrency(c.MinAmount, currency) {
		return Invalid("minAmount", "too many decimal places")
	}
	return ValidateFund(c.CampaignFund, currency)
}
