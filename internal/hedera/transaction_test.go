package hedera

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseAccountID(t *testing.T) {
	id, err := ParseAccountID("0.0.1001")
	if err != nil {
		t.Fatalf("ParseAccountID: %v", err)
	}
	if id.String() != "0.0.1001" {
		t.Fatalf("String() = %s", id)
	}
	for _, in := range []string{"", "0.0", "0.0.x", "1001", "0.0.1001.2"} {
		if _, err := ParseAccountID(in); err == nil {
			t.Fatalf("ParseAccountID(%q): expected error", in)
		}
	}
}

func TestTransactionFreezeAndBytes(t *testing.T) {
	tx := NewTransaction(KindSubmitTopicMessage, map[string]string{"message": "hello"})
	if _, err := tx.Bytes(); err == nil {
		t.Fatal("Bytes before Freeze should fail")
	}

	id := TransactionID{AccountID: AccountID{Num: 90}, ValidStart: time.Unix(1756968265, 343000618)}
	if err := tx.Freeze(id); err != nil {
		t.Fatalf("Freeze: %v", err)
	}
	if err := tx.Freeze(id); err == nil {
		t.Fatal("double Freeze should fail")
	}

	data, err := tx.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	var decoded struct {
		TransactionID string `json:"transactionId"`
		Kind          Kind   `json:"kind"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal signable bytes: %v", err)
	}
	if decoded.TransactionID != "0.0.90-1756968265-343000618" {
		t.Fatalf("transactionId = %s", decoded.TransactionID)
	}
	if decoded.Kind != KindSubmitTopicMessage {
		t.Fatalf("kind = %s", decoded.Kind)
	}
}

func TestHbarRounding(t *testing.T) {
	h := HbarFromTinybars(150_000_000)
	if h.Decimal().String() != "1.5" {
		t.Fatalf("Decimal() = %s", h.Decimal())
	}
	if h.Negated().Tinybars() != -150_000_000 {
		t.Fatalf("Negated() = %d", h.Negated().Tinybars())
	}
	if !HbarFromTinybars(0).IsZero() {
		t.Fatal("zero hbar should report IsZero")
	}
}
