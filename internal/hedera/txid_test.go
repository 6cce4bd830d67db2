package hedera

import (
	"strings"
	"testing"
	"time"
)

func TestNormalizeTransactionID(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"at form", "0.0.90@1756968265.343000618", "0.0.90-1756968265-343000618"},
		{"at form short nanos", "0.0.90@1756968265.3", "0.0.90-1756968265-000000003"},
		{"dash form passes through", "0.0.4177806-1755187961-311801857", "0.0.4177806-1755187961-311801857"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeTransactionID(tc.in)
			if err != nil {
				t.Fatalf("NormalizeTransactionID(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("NormalizeTransactionID(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeTransactionIDInvalid(t *testing.T) {
	for _, in := range []string{"", "not-a-txid", "0.0.90@abc.def", "0.0.90", "0.0.90-123"} {
		_, err := NormalizeTransactionID(in)
		if err == nil {
			t.Fatalf("NormalizeTransactionID(%q): expected error", in)
		}
		if !strings.Contains(err.Error(), "Invalid transactionId format") {
			t.Fatalf("NormalizeTransactionID(%q): unexpected message %q", in, err.Error())
		}
	}
}

func TestParseTransactionIDRoundTrip(t *testing.T) {
	id, err := ParseTransactionID("0.0.90@1756968265.343000618")
	if err != nil {
		t.Fatalf("ParseTransactionID: %v", err)
	}
	if id.AccountID.String() != "0.0.90" {
		t.Fatalf("payer = %s, want 0.0.90", id.AccountID)
	}
	if got := id.String(); got != "0.0.90-1756968265-343000618" {
		t.Fatalf("String() = %q", got)
	}
}

func TestTransactionIDStringPadsNanos(t *testing.T) {
	id := TransactionID{
		AccountID:  AccountID{Num: 1001},
		ValidStart: time.Unix(1700000000, 42),
	}
	if got := id.String(); got != "0.0.1001-1700000000-000000042" {
		t.Fatalf("String() = %q", got)
	}
}
