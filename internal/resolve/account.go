// Package resolve turns optional, loosely-typed identifier and key inputs
// into concrete domain values, applying the operator-account fallback chain.
package resolve

import (
	"hedera-agent-go/internal/config"
	xerrors "hedera-agent-go/internal/errors"
	"hedera-agent-go/internal/hedera"
)

// IsHederaAddress reports whether s is a canonical shard.realm.num address.
func IsHederaAddress(s string) bool {
	return hedera.IsValidAddress(s)
}

// Account resolves an optional raw account identifier. A present raw value
// must be a well-formed address; an absent one falls back through the
// context default and the client operator.
func Account(raw string, ctx *config.Context, client hedera.Client) (hedera.AccountID, error) {
	if raw != "" {
		return hedera.ParseAccountID(raw)
	}
	return DefaultAccount(ctx, client)
}

// DefaultAccount returns the context default account when configured,
// otherwise the client's operator account.
func DefaultAccount(ctx *config.Context, client hedera.Client) (hedera.AccountID, error) {
	if ctx != nil && ctx.AccountID != "" {
		return hedera.ParseAccountID(ctx.AccountID)
	}
	if client != nil {
		if operator, ok := client.OperatorAccountID(); ok {
			return operator, nil
		}
	}
	return hedera.AccountID{}, xerrors.New(xerrors.CodeMissingDefaultAccount,
		"neither context.account_id nor operator account is configured")
}

// DefaultPublicKey returns the context default public key when configured,
// otherwise the client operator's public key.
func DefaultPublicKey(ctx *config.Context, client hedera.Client) (hedera.PublicKey, error) {
	if ctx != nil && !ctx.PublicKey.IsZero() {
		return ctx.PublicKey, nil
	}
	if client != nil {
		if key, ok := client.OperatorPublicKey(); ok {
			return key, nil
		}
	}
	return hedera.PublicKey{}, xerrors.New(xerrors.CodeMissingDefaultAccount,
		"Could not determine public key: neither context nor operator provides one")
}
