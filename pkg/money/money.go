// Package money holds currency codes and minor-unit formatting.
//
// Amounts on the wire are integers in the smallest currency unit (e.g. cents
// for USD); this package only renders them for display.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidCurrency is returned when a currency code is not three upper-case letters.
var ErrInvalidCurrency = errors.New("invalid currency code")

// Amount represents a monetary amount as an integer in the
// smallest currency unit (e.g., cents for USD).
type Amount = int64

// Decimals returns the number of minor-unit digits for c. Unknown but
// well-formed codes default to 2.
func (c Currency) Decimals() int32 {
	switch {
	case zeroDecimal[c]:
		return 0
	case threeDecimal[c]:
		return 3
	}
	return 2
}

// Major converts a minor-unit amount to its decimal value in major units.
func Major(amount Amount, c Currency) decimal.Decimal {
	return decimal.New(amount, -c.Decimals())
}

// FormatMinor renders a minor-unit amount as "<major> <code>", e.g.
// FormatMinor(1050, USD) == "10.50 USD".
func FormatMinor(amount Amount, c Currency) (string, error) {
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, c)
	}
	return fmt.Sprintf("%s %s", Major(amount, c).StringFixed(c.Decimals()), c), nil
}
