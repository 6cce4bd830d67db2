package hedera

import (
	"strings"
	"testing"
)

const (
	rawEd25519Hex = "e0c8ec2758a5879ffac226a13c0c516b799e72e35141a0dd828f94d37988a4b7"
	// DER subject public key info wrapping the raw key above.
	derEd25519Hex = "302a300506032b6570032100" + rawEd25519Hex
	// Compressed secp256k1 generator point, a known-valid curve point.
	rawECDSAHex = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
)

func TestParsePublicKeyRawEd25519(t *testing.T) {
	key, err := ParsePublicKey(rawEd25519Hex)
	if err != nil {
		t.Fatalf("ParsePublicKey: %v", err)
	}
	if key.Type() != KeyTypeEd25519 {
		t.Fatalf("type = %s, want %s", key.Type(), KeyTypeEd25519)
	}
	if key.StringRaw() != rawEd25519Hex {
		t.Fatalf("raw = %s, want %s", key.StringRaw(), rawEd25519Hex)
	}
}

func TestParsePublicKeyDEREd25519(t *testing.T) {
	key, err := ParsePublicKey(derEd25519Hex)
	if err != nil {
		t.Fatalf("ParsePublicKey: %v", err)
	}
	if key.Type() != KeyTypeEd25519 {
		t.Fatalf("type = %s, want %s", key.Type(), KeyTypeEd25519)
	}
	if key.StringRaw() != rawEd25519Hex {
		t.Fatalf("DER parse lost raw bytes: %s", key.StringRaw())
	}
}

func TestParsePublicKeyCompressedECDSA(t *testing.T) {
	key, err := ParsePublicKey(rawECDSAHex)
	if err != nil {
		t.Fatalf("ParsePublicKey: %v", err)
	}
	if key.Type() != KeyTypeECDSA {
		t.Fatalf("type = %s, want %s", key.Type(), KeyTypeECDSA)
	}
}

func TestParsePublicKeyHexPrefix(t *testing.T) {
	key, err := ParsePublicKey("0x" + rawEd25519Hex)
	if err != nil {
		t.Fatalf("ParsePublicKey with 0x prefix: %v", err)
	}
	if key.StringRaw() != rawEd25519Hex {
		t.Fatalf("raw = %s", key.StringRaw())
	}
}

func TestParsePublicKeyRejectsGarbage(t *testing.T) {
	if _, err := ParsePublicKey("zz-not-hex"); err == nil {
		t.Fatal("expected error for non-hex input")
	}
	if _, err := ParsePublicKey("abcd"); err == nil {
		t.Fatal("expected error for hex of the wrong length")
	}
	if _, err := ParsePublicKey(""); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestPublicKeyDERRoundTrip(t *testing.T) {
	key, err := ParsePublicKey(rawEd25519Hex)
	if err != nil {
		t.Fatalf("ParsePublicKey: %v", err)
	}
	der := key.StringDER()
	if !strings.HasPrefix(der, "302a300506032b6570") {
		t.Fatalf("unexpected DER prefix: %s", der)
	}
	again, err := ParsePublicKey(der)
	if err != nil {
		t.Fatalf("reparse DER: %v", err)
	}
	if !key.Equal(again) {
		t.Fatal("DER round trip changed the key")
	}
}

func TestPublicKeyEqualAndZero(t *testing.T) {
	var zero PublicKey
	if !zero.IsZero() {
		t.Fatal("zero value should report IsZero")
	}
	a, _ := ParsePublicKey(rawEd25519Hex)
	b, _ := ParsePublicKey(rawECDSAHex)
	if a.Equal(b) {
		t.Fatal("keys of different curves must not compare equal")
	}
	if a.IsZero() {
		t.Fatal("parsed key should not be zero")
	}
}
