package mirrornode

import "testing"

func TestDecodeMessages(t *testing.T) {
	messages := []TopicMessage{
		{Message: "aGVsbG8=", SequenceNumber: 1},
		{Message: "%%not-base64%%", SequenceNumber: 2},
	}

	decoded := DecodeMessages(messages, "utf-8")
	if decoded[0].Message != "hello" {
		t.Fatalf("decoded[0] = %q", decoded[0].Message)
	}
	if decoded[1].Message != "%%not-base64%%" {
		t.Fatalf("undecodable entry changed: %q", decoded[1].Message)
	}
	if messages[0].Message != "aGVsbG8=" {
		t.Fatal("input slice must stay untouched")
	}

	passthrough := DecodeMessages(messages, "base64")
	if passthrough[0].Message != "aGVsbG8=" {
		t.Fatal("base64 encoding should pass messages through")
	}
}

func TestDecodeMessage(t *testing.T) {
	if got := DecodeMessage("aGVsbG8="); got != "hello" {
		t.Fatalf("DecodeMessage = %q", got)
	}
	if got := DecodeMessage("%%nope%%"); got != "%%nope%%" {
		t.Fatalf("DecodeMessage = %q", got)
	}
}

func TestBaseURLForNetwork(t *testing.T) {
	if got := BaseURLForNetwork("testnet"); got != "https://testnet.mirrornode.hedera.com/api/v1" {
		t.Fatalf("testnet url = %s", got)
	}
	if got := BaseURLForNetwork("localnet"); got != "" {
		t.Fatalf("unknown network url = %s", got)
	}
}

func TestHbarPriceInCents(t *testing.T) {
	rate := &ExchangeRate{CurrentRate: Rate{CentEquivalent: 30, HbarEquivalent: 5}}
	if got := rate.HbarPriceInCents(); got != 6 {
		t.Fatalf("price = %v", got)
	}
	zero := &ExchangeRate{}
	if got := zero.HbarPriceInCents(); got != 0 {
		t.Fatalf("zero rate price = %v", got)
	}
}
