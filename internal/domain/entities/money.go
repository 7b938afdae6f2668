package entities

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	hundred        = decimal.NewFromInt(100)
	maxMinorAmount = decimal.NewFromInt(math.MaxInt64)
)

// ToMinorUnits converts a decimal currency amount to integer minor units
// (grosz, cents). The scaled value is rounded half away from zero using
// exact decimal arithmetic: 19.99 -> 1999, 10.005 -> 1001, 0.125 -> 13.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

// FitsMinorUnits reports whether amount converts to a non-negative int64
// without overflow. ToMinorUnits is only defined for such amounts.
func FitsMinorUnits(amount decimal.Decimal) bool {
	scaled := amount.Mul(hundred).Round(0)
	return !scaled.IsNegative() && scaled.LessThanOrEqual(maxMinorAmount)
}

// FromMinorUnits is the inverse of ToMinorUnits, up to the rounding step.
func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}
