// Package units converts between display amounts and the base units the
// ledger settles in. Token conversions are decimal-aware and truncate;
// hbar conversions are fixed at eight decimals and round half-up so a
// fractional tinybar never silently under-credits the recipient.
package units

import (
	"github.com/shopspring/decimal"
)

// HbarDecimals is the fixed scale of the native currency (1 hbar = 10^8 tinybars).
const HbarDecimals = 8

func init() {
	// Large supplies with 18 decimals need more headroom than the
	// library default of 16 digits.
	if decimal.DivisionPrecision < 30 {
		decimal.DivisionPrecision = 30
	}
}

// ToBaseUnit converts a display amount into base units for a token with the
// given number of decimals. The result is truncated toward zero; fractional
// base units are not representable on the ledger.
func ToBaseUnit(amount decimal.Decimal, decimals int32) int64 {
	return amount.Shift(decimals).Floor().IntPart()
}

// ToDisplayUnit converts a base-unit amount back into display units.
// The shift is exact; no division precision is involved.
func ToDisplayUnit(baseAmount int64, decimals int32) decimal.Decimal {
	return decimal.NewFromInt(baseAmount).Shift(-decimals)
}

// ToTinybars converts an hbar display amount into tinybars, rounding half-up
// to the nearest whole tinybar.
func ToTinybars(hbar decimal.Decimal) int64 {
	return hbar.Shift(HbarDecimals).Round(0).IntPart()
}

// FromTinybars converts a tinybar amount into display hbar.
func FromTinybars(tinybars int64) decimal.Decimal {
	return decimal.NewFromInt(tinybars).Shift(-HbarDecimals)
}
