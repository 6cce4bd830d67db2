package hedera

import (
	"fmt"

	"github.com/shopspring/decimal"

	"hedera-agent-go/internal/units"
)

// Hbar is a native-currency amount held in tinybars.
type Hbar struct {
	tinybars int64
}

// HbarFromDecimal converts a display amount into an Hbar value, rounding
// half-up to the nearest tinybar.
func HbarFromDecimal(amount decimal.Decimal) Hbar {
	return Hbar{tinybars: units.ToTinybars(amount)}
}

// HbarFromTinybars wraps a raw tinybar amount.
func HbarFromTinybars(tinybars int64) Hbar {
	return Hbar{tinybars: tinybars}
}

// Tinybars returns the base-unit amount.
func (h Hbar) Tinybars() int64 { return h.tinybars }

// Decimal returns the display amount in hbar.
func (h Hbar) Decimal() decimal.Decimal { return units.FromTinybars(h.tinybars) }

// Negated returns the additive inverse, used for the debit side of a
// zero-sum transfer list.
func (h Hbar) Negated() Hbar { return Hbar{tinybars: -h.tinybars} }

// IsZero reports whether the amount is exactly zero.
func (h Hbar) IsZero() bool { return h.tinybars == 0 }

func (h Hbar) String() string {
	return fmt.Sprintf("%s hbar", h.Decimal())
}
