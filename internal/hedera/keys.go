package hedera

import (
	"bytes"
	"crypto/ed25519"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"

	xerrors "hedera-agent-go/internal/errors"
)

// KeyType names the curve family of a public key.
type KeyType string

const (
	KeyTypeEd25519 KeyType = "ED25519"
	KeyTypeECDSA   KeyType = "ECDSA_SECP256K1"
)

var (
	oidEd25519     = asn1.ObjectIdentifier{1, 3, 101, 112}
	oidECPublicKey = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidSecp256k1   = asn1.ObjectIdentifier{1, 3, 132, 0, 10}
)

// PublicKey is an Ed25519 or ECDSA-secp256k1 public key in its compact raw
// encoding (32 bytes Ed25519, 33 bytes compressed secp256k1).
type PublicKey struct {
	keyType KeyType
	raw     []byte
}

// Ed25519PublicKey wraps a raw 32-byte Ed25519 public key.
func Ed25519PublicKey(raw []byte) (PublicKey, error) {
	if len(raw) != ed25519.PublicKeySize {
		return PublicKey{}, xerrors.Newf(xerrors.CodeInvalidKeyFormat,
			"ed25519 public key must be %d bytes, got %d", ed25519.PublicKeySize, len(raw))
	}
	return PublicKey{keyType: KeyTypeEd25519, raw: bytes.Clone(raw)}, nil
}

// ECDSAPublicKey wraps a secp256k1 public key, validating that the bytes
// describe a point on the curve. Uncompressed 65-byte points are accepted
// and stored compressed.
func ECDSAPublicKey(raw []byte) (PublicKey, error) {
	if len(raw) == 65 {
		pub, err := crypto.UnmarshalPubkey(raw)
		if err != nil {
			return PublicKey{}, xerrors.Wrap(xerrors.CodeInvalidKeyFormat, err, "invalid secp256k1 public key")
		}
		return PublicKey{keyType: KeyTypeECDSA, raw: crypto.CompressPubkey(pub)}, nil
	}
	if _, err := crypto.DecompressPubkey(raw); err != nil {
		return PublicKey{}, xerrors.Wrap(xerrors.CodeInvalidKeyFormat, err, "invalid secp256k1 public key")
	}
	return PublicKey{keyType: KeyTypeECDSA, raw: bytes.Clone(raw)}, nil
}

// ParsePublicKey decodes a textual public key, attempting each supported
// encoding in order: DER (either curve), raw Ed25519, raw compressed
// secp256k1. The first successful decoding wins.
func ParsePublicKey(s string) (PublicKey, error) {
	data, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if err != nil {
		return PublicKey{}, xerrors.Newf(xerrors.CodeInvalidKeyFormat, "public key is not valid hex: %q", s)
	}

	attempts := []func([]byte) (PublicKey, error){
		parseDER,
		Ed25519PublicKey,
		ECDSAPublicKey,
	}
	for _, attempt := range attempts {
		if key, attemptErr := attempt(data); attemptErr == nil {
			return key, nil
		}
	}
	return PublicKey{}, xerrors.Newf(xerrors.CodeInvalidKeyFormat, "unrecognized public key encoding: %q", s)
}

type subjectPublicKeyInfo struct {
	Algorithm pkix.AlgorithmIdentifier
	PublicKey asn1.BitString
}

func parseDER(data []byte) (PublicKey, error) {
	var info subjectPublicKeyInfo
	rest, err := asn1.Unmarshal(data, &info)
	if err != nil || len(rest) != 0 {
		return PublicKey{}, fmt.Errorf("not a DER subject public key info")
	}
	keyBytes := info.PublicKey.RightAlign()
	switch {
	case info.Algorithm.Algorithm.Equal(oidEd25519):
		return Ed25519PublicKey(keyBytes)
	case info.Algorithm.Algorithm.Equal(oidECPublicKey):
		var params asn1.ObjectIdentifier
		if _, err := asn1.Unmarshal(info.Algorithm.Parameters.FullBytes, &params); err != nil {
			return PublicKey{}, fmt.Errorf("unreadable EC curve parameters")
		}
		if !params.Equal(oidSecp256k1) {
			return PublicKey{}, fmt.Errorf("unsupported EC curve %v", params)
		}
		return ECDSAPublicKey(keyBytes)
	default:
		return PublicKey{}, fmt.Errorf("unsupported key algorithm %v", info.Algorithm.Algorithm)
	}
}

// Type returns the curve family.
func (k PublicKey) Type() KeyType { return k.keyType }

// Bytes returns a copy of the raw key material.
func (k PublicKey) Bytes() []byte { return bytes.Clone(k.raw) }

// IsZero reports whether the key is unset.
func (k PublicKey) IsZero() bool { return len(k.raw) == 0 }

// Equal compares two keys by type and raw bytes.
func (k PublicKey) Equal(other PublicKey) bool {
	return k.keyType == other.keyType && bytes.Equal(k.raw, other.raw)
}

// StringRaw returns the raw encoding as lowercase hex.
func (k PublicKey) StringRaw() string { return hex.EncodeToString(k.raw) }

// StringDER returns the DER subject public key info as lowercase hex.
func (k PublicKey) StringDER() string {
	var der []byte
	switch k.keyType {
	case KeyTypeEd25519:
		der, _ = asn1.Marshal(subjectPublicKeyInfo{
			Algorithm: pkix.AlgorithmIdentifier{Algorithm: oidEd25519},
			PublicKey: asn1.BitString{Bytes: k.raw, BitLength: len(k.raw) * 8},
		})
	case KeyTypeECDSA:
		curve, _ := asn1.Marshal(oidSecp256k1)
		der, _ = asn1.Marshal(subjectPublicKeyInfo{
			Algorithm: pkix.AlgorithmIdentifier{
				Algorithm:  oidECPublicKey,
				Parameters: asn1.RawValue{FullBytes: curve},
			},
			PublicKey: asn1.BitString{Bytes: k.raw, BitLength: len(k.raw) * 8},
		})
	}
	return hex.EncodeToString(der)
}

func (k PublicKey) String() string { return k.StringDER() }
