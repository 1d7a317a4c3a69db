// Package money converts between human-entered decimal amounts and the
// int64 minor-unit representation the ledger stores. All rounding decisions
// happen here, at the boundary; the core never sees a float.
package money

import (
	"errors"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var (
	// ErrMalformedAmount indicates the input is not a decimal number.
	ErrMalformedAmount = errors.New("malformed amount")

	// ErrTooPrecise indicates the input carries more fraction digits than
	// the currency has. Amounts are never silently rounded.
	ErrTooPrecise = errors.New("amount has too many decimal places")
)

// Fraction returns the number of fraction digits the currency carries.
// Unknown codes fall back to two.
func Fraction(currencyCode string) int32 {
	cur := money.GetCurrency(currencyCode)
	if cur == nil {
		return 2
	}
	return int32(cur.Fraction)
}

// Parse converts a decimal string like "100.50" into minor units for the
// given currency. Exact conversion only: excess precision is rejected
// rather than rounded.
func Parse(s, currencyCode string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedAmount, s)
	}

	fraction := Fraction(currencyCode)
	minor := d.Shift(fraction)
	if !minor.IsInteger() {
		return 0, fmt.Errorf("%w: %q", ErrTooPrecise, s)
	}
	if !minor.BigInt().IsInt64() {
		return 0, fmt.Errorf("%w: %q out of range", ErrMalformedAmount, s)
	}
	return minor.IntPart(), nil
}

// Format renders minor units as a display string in the given currency.
func Format(minor int64, currencyCode string) string {
	return money.New(minor, currencyCode).Display()
}
