package resolve

import (
	xerrors "hedera-agent-go/internal/errors"
	"hedera-agent-go/internal/hedera"
)

// Key resolves a raw key directive into an optional public key.
//
//   - nil or false: no key is set (present=false).
//   - true: the caller wants their own key; userKey is returned unchanged.
//   - a string: decoded as a DER or raw encoded Ed25519 or ECDSA-secp256k1
//     public key; decode attempts run in a fixed order and the first success
//     wins.
//
// Any other shape, or a string no decoding accepts, is an
// INVALID_KEY_FORMAT error.
func Key(raw any, userKey hedera.PublicKey) (hedera.PublicKey, bool, error) {
	switch value := raw.(type) {
	case nil:
		return hedera.PublicKey{}, false, nil
	case bool:
		if !value {
			return hedera.PublicKey{}, false, nil
		}
		if userKey.IsZero() {
			return hedera.PublicKey{}, false, xerrors.New(xerrors.CodeMissingDefaultAccount,
				"Could not determine public key: no user key available")
		}
		return userKey, true, nil
	case string:
		key, err := hedera.ParsePublicKey(value)
		if err != nil {
			return hedera.PublicKey{}, false, err
		}
		return key, true, nil
	default:
		return hedera.PublicKey{}, false, xerrors.Newf(xerrors.CodeInvalidKeyFormat,
			"unsupported key directive of type %T", raw)
	}
}
