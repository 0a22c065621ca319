package swap

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidateAmount parses amount, expressed in the asset's smallest unit, and
// checks that it is a positive integer.
func ValidateAmount(amount string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if !d.IsInteger() || d.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return d, nil
}

// canonicalAmount renders a validated amount as a plain base-10 integer.
// Amounts that fail validation are returned unchanged.
func canonicalAmount(amount string) string {
	d, err := ValidateAmount(amount)
	if err != nil {
		return amount
	}
	return d.String()
}
