package units

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestToBaseUnitTruncates(t *testing.T) {
	cases := []struct {
		amount   string
		decimals int32
		want     int64
	}{
		{"5", 2, 500},
		{"10", 2, 1000},
		{"2.5", 8, 250000000},
		{"1.999", 2, 199},
		{"0.0000001", 2, 0},
		{"123456789.123456789", 9, 123456789123456789},
		{"7", 0, 7},
	}
	for _, tc := range cases {
		got := ToBaseUnit(decimal.RequireFromString(tc.amount), tc.decimals)
		if got != tc.want {
			t.Errorf("ToBaseUnit(%s, %d) = %d, want %d", tc.amount, tc.decimals, got, tc.want)
		}
	}
}

func TestRoundTripIsLossless(t *testing.T) {
	for decimals := int32(0); decimals <= 18; decimals++ {
		amount := decimal.RequireFromString("3.5").Round(decimals)
		if decimals == 0 {
			amount = decimal.NewFromInt(3)
		}
		base := ToBaseUnit(amount, decimals)
		back := ToDisplayUnit(base, decimals)
		if !back.Equal(amount) {
			t.Errorf("decimals=%d: round trip %s -> %d -> %s", decimals, amount, base, back)
		}
	}
}

func TestToTinybarsRoundsHalfUp(t *testing.T) {
	cases := []struct {
		hbar string
		want int64
	}{
		{"1.5", 150000000},
		{"0.123456785", 12345679},
		{"0.123456784", 12345678},
		{"0.00000001", 1},
		{"0", 0},
		{"10", 1000000000},
	}
	for _, tc := range cases {
		got := ToTinybars(decimal.RequireFromString(tc.hbar))
		if got != tc.want {
			t.Errorf("ToTinybars(%s) = %d, want %d", tc.hbar, got, tc.want)
		}
	}
}

func TestFromTinybars(t *testing.T) {
	got := FromTinybars(150000000)
	if !got.Equal(decimal.RequireFromString("1.5")) {
		t.Errorf("FromTinybars(150000000) = %s, want 1.5", got)
	}
}

func TestLargeSupplyPrecision(t *testing.T) {
	// Nine billion tokens at nine decimals sits just inside int64 and
	// must convert without drift.
	amount := decimal.RequireFromString("9000000000")
	base := ToBaseUnit(amount, 9)
	if base != 9000000000000000000 {
		t.Errorf("ToBaseUnit(9e9, 9) = %d, want 9000000000000000000", base)
	}
	if !ToDisplayUnit(base, 9).Equal(amount) {
		t.Errorf("display round trip drifted: %s", ToDisplayUnit(base, 9))
	}
}
