package invoice

import "github.com/shopspring/decimal"

var (
	half = decimal.NewFromFloat(0.5)
)

// RoundToCents rounds half up at the second decimal place. Float inputs should
// enter through decimal.NewFromFloat, whose shortest representation absorbs the
// binary error that would otherwise push 1.005 below the half-cent.
func RoundToCents(amount decimal.Decimal) decimal.Decimal {
	return amount.Shift(2).Add(half).Floor().Shift(-2)
}

// nonNegative clamps negative amounts to zero
func nonNegative(amount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}
