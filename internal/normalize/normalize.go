// Package normalize validates raw tool-call parameters and turns them into
// the domain-typed records consumed by the transaction builder. Each
// normalizer resolves optional accounts and key directives, converts
// display-unit amounts to base units, and surfaces malformed input as coded
// errors before anything reaches the ledger.
package normalize

import (
	"context"
	"strconv"

	"hedera-agent-go/internal/config"
	xerrors "hedera-agent-go/internal/errors"
	"hedera-agent-go/internal/hedera"
	"hedera-agent-go/internal/mirrornode"
	"hedera-agent-go/internal/params"
	"hedera-agent-go/internal/resolve"
)

// scheduling resolves an optional scheduling block. The admin key directive
// falls back to the caller's key; the payer must be a well-formed address.
func scheduling(raw *params.SchedulingParams, agent *config.Context, client hedera.Client) (*params.SchedulingNormalised, error) {
	if raw == nil || !raw.IsScheduled {
		return nil, nil
	}
	userKey, _ := resolve.DefaultPublicKey(agent, client)
	adminKey, ok, err := resolve.Key(raw.AdminKey, userKey)
	if err != nil {
		return nil, err
	}
	out := &params.SchedulingNormalised{
		WaitForExpiry: raw.WaitForExpiry,
		Memo:          raw.ScheduleMemo,
	}
	if ok {
		out.AdminKey = &adminKey
	}
	if raw.PayerAccountID != "" {
		payer, err := hedera.ParseAccountID(raw.PayerAccountID)
		if err != nil {
			return nil, err
		}
		out.Payer = &payer
	}
	return out, nil
}

// keySlot resolves one optional key directive into a nullable key.
func keySlot(raw any, userKey hedera.PublicKey) (*hedera.PublicKey, error) {
	key, ok, err := resolve.Key(raw, userKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &key, nil
}

// tokenDecimals fetches a token's decimal count from the mirror node. The
// REST API renders decimals as a string.
func tokenDecimals(ctx context.Context, mirror mirrornode.Service, tokenID string) (int32, error) {
	info, err := mirror.TokenInfo(ctx, tokenID)
	if err != nil {
		return 0, err
	}
	decimals, err := strconv.ParseInt(info.Decimals, 10, 32)
	if err != nil {
		return 0, xerrors.Wrap(xerrors.CodeMirrorFailure, err,
			"token "+tokenID+" reports unparseable decimals "+info.Decimals)
	}
	return int32(decimals), nil
}
