package domain

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a wallet does not name its currency.
const DefaultCurrency = "USD"

// Currency returns the go-money definition for code. Unknown codes fall
// back to DefaultCurrency so callers always get a usable fraction.
func Currency(code string) *money.Currency {
	if c := money.GetCurrency(strings.ToUpper(code)); c != nil {
		return c
	}
	return money.GetCurrency(DefaultCurrency)
}

// KnownCurrency reports whether code is an ISO currency known to go-money.
func KnownCurrency(code string) bool {
	return money.GetCurrency(strings.ToUpper(code)) != nil
}

// FitsCurrency reports whether amount has no more fractional digits than
// the currency allows (e.g. cents for USD).
func FitsCurrency(amount decimal.Decimal, code string) bool {
	frac := int32(Currency(code).Fraction)
	return amount.Equal(amount.Truncate(frac))
}

// FormatMoney renders amount using the currency's symbol and separators.
func FormatMoney(amount decimal.Decimal, code string) string {
	cur := Currency(code)
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}
