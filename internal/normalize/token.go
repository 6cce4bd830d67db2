package normalize

import (
	"context"

	"hedera-agent-go/internal/config"
	xerrors "hedera-agent-go/internal/errors"
	"hedera-agent-go/internal/hedera"
	"hedera-agent-go/internal/mirrornode"
	"hedera-agent-go/internal/params"
	"hedera-agent-go/internal/resolve"
	"hedera-agent-go/internal/units"
)

// CreateFungibleToken resolves the treasury and key directives and converts
// the initial supply to base units.
func CreateFungibleToken(raw params.CreateFungibleToken, agent *config.Context, client hedera.Client) (*params.CreateFungibleTokenNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	treasury, err := resolve.Account(raw.TreasuryAccountID, agent, client)
	if err != nil {
		return nil, err
	}
	userKey, _ := resolve.DefaultPublicKey(agent, client)
	keys, err := tokenKeys(map[string]any{
		"admin_key":  raw.AdminKey,
		"supply_key": raw.SupplyKey,
		"freeze_key": raw.FreezeKey,
		"wipe_key":   raw.WipeKey,
		"kyc_key":    raw.KYCKey,
		"pause_key":  raw.PauseKey,
	}, userKey)
	if err != nil {
		return nil, err
	}
	sched, err := scheduling(raw.Scheduling, agent, client)
	if err != nil {
		return nil, err
	}
	return &params.CreateFungibleTokenNormalised{
		TokenName:     raw.TokenName,
		TokenSymbol:   raw.TokenSymbol,
		InitialSupply: units.ToBaseUnit(raw.InitialSupply, raw.Decimals),
		Decimals:      raw.Decimals,
		Treasury:      treasury,
		Keys:          keys,
		TokenMemo:     raw.TokenMemo,
		Scheduling:    sched,
	}, nil
}

// CreateNonFungibleToken resolves the treasury and keys. The supply key
// defaults to the caller's key since minting serials requires one.
func CreateNonFungibleToken(raw params.CreateNonFungibleToken, agent *config.Context, client hedera.Client) (*params.CreateNonFungibleTokenNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	treasury, err := resolve.Account(raw.TreasuryAccountID, agent, client)
	if err != nil {
		return nil, err
	}
	userKey, _ := resolve.DefaultPublicKey(agent, client)
	keys, err := tokenKeys(map[string]any{
		"admin_key":  raw.AdminKey,
		"supply_key": raw.SupplyKey,
	}, userKey)
	if err != nil {
		return nil, err
	}
	if keys.SupplyKey == nil {
		def, err := resolve.DefaultPublicKey(agent, client)
		if err != nil {
			return nil, err
		}
		keys.SupplyKey = &def
	}
	sched, err := scheduling(raw.Scheduling, agent, client)
	if err != nil {
		return nil, err
	}
	return &params.CreateNonFungibleTokenNormalised{
		TokenName:   raw.TokenName,
		TokenSymbol: raw.TokenSymbol,
		MaxSupply:   raw.MaxSupply,
		Treasury:    treasury,
		Keys:        keys,
		TokenMemo:   raw.TokenMemo,
		Scheduling:  sched,
	}, nil
}

// UpdateToken resolves key directives and checks them against the mirrored
// token: the caller must hold the admin key, and a key slot can only be
// updated when the token was created with it.
func UpdateToken(ctx context.Context, raw params.UpdateToken, agent *config.Context, client hedera.Client, mirror mirrornode.Service) (*params.UpdateTokenNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	tokenID, err := hedera.ParseTokenID(raw.TokenID)
	if err != nil {
		return nil, err
	}
	userKey, _ := resolve.DefaultPublicKey(agent, client)
	keys, err := tokenKeys(map[string]any{
		"admin_key":  raw.AdminKey,
		"supply_key": raw.SupplyKey,
		"freeze_key": raw.FreezeKey,
		"wipe_key":   raw.WipeKey,
		"kyc_key":    raw.KYCKey,
		"pause_key":  raw.PauseKey,
	}, userKey)
	if err != nil {
		return nil, err
	}

	info, err := mirror.TokenInfo(ctx, raw.TokenID)
	if err != nil {
		return nil, err
	}
	if err := checkAdminPermission(info, userKey); err != nil {
		return nil, err
	}
	updated := map[string]*hedera.PublicKey{
		"admin_key":  keys.AdminKey,
		"supply_key": keys.SupplyKey,
		"freeze_key": keys.FreezeKey,
		"wipe_key":   keys.WipeKey,
		"kyc_key":    keys.KYCKey,
		"pause_key":  keys.PauseKey,
	}
	for _, slot := range []string{"admin_key", "kyc_key", "freeze_key", "wipe_key", "supply_key", "pause_key"} {
		if updated[slot] != nil && info.KeyNamed(slot) == nil {
			return nil, xerrors.Newf(xerrors.CodeInvalidParameters,
				"Cannot update %s: token was created without a %s", slot, slot)
		}
	}

	return &params.UpdateTokenNormalised{
		TokenID:     tokenID,
		TokenName:   raw.TokenName,
		TokenSymbol: raw.TokenSymbol,
		TokenMemo:   raw.TokenMemo,
		Keys:        keys,
	}, nil
}

// checkAdminPermission verifies the caller's key matches the token admin
// key. Tokens without an admin key are immutable and pass no check here;
// the ledger rejects the update itself.
func checkAdminPermission(info *mirrornode.TokenInfo, userKey hedera.PublicKey) error {
	if info.AdminKey == nil || info.AdminKey.Key == "" {
		return nil
	}
	if userKey.IsZero() {
		return nil
	}
	adminKey, err := hedera.ParsePublicKey(info.AdminKey.Key)
	if err != nil || !adminKey.Equal(userKey) {
		return xerrors.Newf(xerrors.CodeInvalidParameters,
			"You do not have permission to update this token. The adminKey (%s) does not match your public key.",
			info.AdminKey.Key)
	}
	return nil
}

// MintFungibleToken converts the display amount to base units using the
// token's mirrored decimal count.
func MintFungibleToken(ctx context.Context, raw params.MintFungibleToken, mirror mirrornode.Service) (*params.MintFungibleTokenNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	tokenID, err := hedera.ParseTokenID(raw.TokenID)
	if err != nil {
		return nil, err
	}
	decimals, err := tokenDecimals(ctx, mirror, raw.TokenID)
	if err != nil {
		return nil, err
	}
	amount := units.ToBaseUnit(raw.Amount, decimals)
	if amount <= 0 {
		return nil, xerrors.Newf(xerrors.CodeInvalidParameters,
			"Invalid mint amount: %s", raw.Amount)
	}
	return &params.MintFungibleTokenNormalised{TokenID: tokenID, Amount: amount}, nil
}

// MintNonFungibleToken encodes each metadata URI as raw bytes, one serial
// per URI.
func MintNonFungibleToken(raw params.MintNonFungibleToken) (*params.MintNonFungibleTokenNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	tokenID, err := hedera.ParseTokenID(raw.TokenID)
	if err != nil {
		return nil, err
	}
	metadata := make([][]byte, 0, len(raw.URIs))
	for _, uri := range raw.URIs {
		metadata = append(metadata, []byte(uri))
	}
	return &params.MintNonFungibleTokenNormalised{TokenID: tokenID, Metadata: metadata}, nil
}

// AssociateToken resolves the target account and parses every token id.
func AssociateToken(raw params.AssociateToken, agent *config.Context, client hedera.Client) (*params.AssociateTokenNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	account, err := resolve.Account(raw.AccountID, agent, client)
	if err != nil {
		return nil, err
	}
	tokenIDs, err := parseTokenIDs(raw.TokenIDs)
	if err != nil {
		return nil, err
	}
	return &params.AssociateTokenNormalised{AccountID: account, TokenIDs: tokenIDs}, nil
}

// DissociateToken resolves the target account and parses every token id.
func DissociateToken(raw params.DissociateToken, agent *config.Context, client hedera.Client) (*params.DissociateTokenNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	account, err := resolve.Account(raw.AccountID, agent, client)
	if err != nil {
		return nil, err
	}
	tokenIDs, err := parseTokenIDs(raw.TokenIDs)
	if err != nil {
		return nil, err
	}
	return &params.DissociateTokenNormalised{AccountID: account, TokenIDs: tokenIDs}, nil
}

// AirdropFungibleToken builds the zero-sum token transfer list: one credit
// per recipient in base units plus a single negated debit from the source.
func AirdropFungibleToken(ctx context.Context, raw params.AirdropFungibleToken, agent *config.Context, client hedera.Client, mirror mirrornode.Service) (*params.AirdropFungibleTokenNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	tokenID, err := hedera.ParseTokenID(raw.TokenID)
	if err != nil {
		return nil, err
	}
	source, err := resolve.Account(raw.SourceAccountID, agent, client)
	if err != nil {
		return nil, err
	}
	decimals, err := tokenDecimals(ctx, mirror, raw.TokenID)
	if err != nil {
		return nil, err
	}
	transfers, err := tokenTransferList(raw.Recipients, source, decimals)
	if err != nil {
		return nil, err
	}
	sched, err := scheduling(raw.Scheduling, agent, client)
	if err != nil {
		return nil, err
	}
	return &params.AirdropFungibleTokenNormalised{
		TokenID:    tokenID,
		Transfers:  transfers,
		Scheduling: sched,
	}, nil
}

// TransferFungibleToken builds the same zero-sum list as an airdrop, plus
// the transaction memo.
func TransferFungibleToken(ctx context.Context, raw params.TransferFungibleToken, agent *config.Context, client hedera.Client, mirror mirrornode.Service) (*params.TransferFungibleTokenNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	tokenID, err := hedera.ParseTokenID(raw.TokenID)
	if err != nil {
		return nil, err
	}
	source, err := resolve.Account(raw.SourceAccountID, agent, client)
	if err != nil {
		return nil, err
	}
	decimals, err := tokenDecimals(ctx, mirror, raw.TokenID)
	if err != nil {
		return nil, err
	}
	transfers, err := tokenTransferList(raw.Transfers, source, decimals)
	if err != nil {
		return nil, err
	}
	sched, err := scheduling(raw.Scheduling, agent, client)
	if err != nil {
		return nil, err
	}
	return &params.TransferFungibleTokenNormalised{
		TokenID:         tokenID,
		Transfers:       transfers,
		TransactionMemo: raw.TransactionMemo,
		Scheduling:      sched,
	}, nil
}

// TransferFungibleTokenWithAllowance builds the approved zero-sum token
// transfer list for an allowance spend. The owner is the named source
// account and never falls back to the operator.
func TransferFungibleTokenWithAllowance(ctx context.Context, raw params.TransferFungibleTokenWithAllowance, agent *config.Context, client hedera.Client, mirror mirrornode.Service) (*params.TransferFungibleTokenWithAllowanceNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	if raw.SourceAccountID == "" {
		return nil, xerrors.New(xerrors.CodeInvalidParameters,
			"source_account_id is required for allowance transfers")
	}
	owner, err := hedera.ParseAccountID(raw.SourceAccountID)
	if err != nil {
		return nil, err
	}
	tokenID, err := hedera.ParseTokenID(raw.TokenID)
	if err != nil {
		return nil, err
	}
	decimals, err := tokenDecimals(ctx, mirror, raw.TokenID)
	if err != nil {
		return nil, err
	}

	transfers := make([]params.TokenTransfer, 0, len(raw.Transfers)+1)
	var total int64
	for _, entry := range raw.Transfers {
		amount := units.ToBaseUnit(entry.Amount, decimals)
		if amount <= 0 {
			return nil, xerrors.Newf(xerrors.CodeInvalidParameters,
				"Invalid transfer amount: %s", entry.Amount)
		}
		recipient, err := hedera.ParseAccountID(entry.AccountID)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, params.TokenTransfer{AccountID: recipient, Amount: amount})
		total += amount
	}
	transfers = append(transfers, params.TokenTransfer{AccountID: owner, Amount: -total})

	sched, err := scheduling(raw.Scheduling, agent, client)
	if err != nil {
		return nil, err
	}
	return &params.TransferFungibleTokenWithAllowanceNormalised{
		TokenID:         tokenID,
		Transfers:       transfers,
		TransactionMemo: raw.TransactionMemo,
		Scheduling:      sched,
	}, nil
}

// TransferNonFungibleTokenWithAllowance builds one approved transfer per
// serial, all sent from the named owner account.
func TransferNonFungibleTokenWithAllowance(raw params.TransferNonFungibleTokenWithAllowance) (*params.TransferNonFungibleTokenWithAllowanceNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	if raw.SourceAccountID == "" {
		return nil, xerrors.New(xerrors.CodeInvalidParameters,
			"source_account_id is required for allowance transfers")
	}
	owner, err := hedera.ParseAccountID(raw.SourceAccountID)
	if err != nil {
		return nil, err
	}
	tokenID, err := hedera.ParseTokenID(raw.TokenID)
	if err != nil {
		return nil, err
	}
	transfers := make([]params.NFTApprovedTransfer, 0, len(raw.Recipients))
	for _, entry := range raw.Recipients {
		receiver, err := hedera.ParseAccountID(entry.Recipient)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, params.NFTApprovedTransfer{
			Sender:       owner,
			Receiver:     receiver,
			SerialNumber: entry.SerialNumber,
			IsApproval:   true,
		})
	}
	return &params.TransferNonFungibleTokenWithAllowanceNormalised{
		TokenID:         tokenID,
		Transfers:       transfers,
		TransactionMemo: raw.TransactionMemo,
	}, nil
}

// TransferNonFungibleToken resolves the sender and builds one transfer per
// serial.
func TransferNonFungibleToken(raw params.TransferNonFungibleToken, agent *config.Context, client hedera.Client) (*params.TransferNonFungibleTokenNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	tokenID, err := hedera.ParseTokenID(raw.TokenID)
	if err != nil {
		return nil, err
	}
	sender, err := resolve.Account(raw.SenderAccountID, agent, client)
	if err != nil {
		return nil, err
	}
	receiver, err := hedera.ParseAccountID(raw.ReceiverAccountID)
	if err != nil {
		return nil, err
	}
	transfers := make([]params.NFTTransfer, 0, len(raw.SerialNumbers))
	for _, serial := range raw.SerialNumbers {
		transfers = append(transfers, params.NFTTransfer{
			Sender:       sender,
			Receiver:     receiver,
			SerialNumber: serial,
		})
	}
	return &params.TransferNonFungibleTokenNormalised{
		TokenID:         tokenID,
		Transfers:       transfers,
		TransactionMemo: raw.TransactionMemo,
	}, nil
}

// ApproveTokenAllowance converts the allowance amount to base units using
// the token's mirrored decimal count.
func ApproveTokenAllowance(ctx context.Context, raw params.ApproveTokenAllowance, agent *config.Context, client hedera.Client, mirror mirrornode.Service) (*params.ApproveTokenAllowanceNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	owner, err := resolve.Account(raw.OwnerAccountID, agent, client)
	if err != nil {
		return nil, err
	}
	spender, err := hedera.ParseAccountID(raw.SpenderAccountID)
	if err != nil {
		return nil, err
	}
	tokenID, err := hedera.ParseTokenID(raw.TokenID)
	if err != nil {
		return nil, err
	}
	decimals, err := tokenDecimals(ctx, mirror, raw.TokenID)
	if err != nil {
		return nil, err
	}
	return &params.ApproveTokenAllowanceNormalised{
		Allowances: []params.TokenAllowance{{
			OwnerAccountID:   owner,
			SpenderAccountID: spender,
			TokenID:          tokenID,
			Amount:           units.ToBaseUnit(raw.Amount, decimals),
		}},
		TransactionMemo: raw.TransactionMemo,
	}, nil
}

// DeleteTokenAllowance revokes by approving an amount of exactly zero for
// each listed token.
func DeleteTokenAllowance(raw params.DeleteTokenAllowance, agent *config.Context, client hedera.Client) (*params.ApproveTokenAllowanceNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	owner, err := resolve.Account(raw.OwnerAccountID, agent, client)
	if err != nil {
		return nil, err
	}
	spender, err := hedera.ParseAccountID(raw.SpenderAccountID)
	if err != nil {
		return nil, err
	}
	allowances := make([]params.TokenAllowance, 0, len(raw.TokenIDs))
	for _, id := range raw.TokenIDs {
		tokenID, err := hedera.ParseTokenID(id)
		if err != nil {
			return nil, err
		}
		allowances = append(allowances, params.TokenAllowance{
			OwnerAccountID:   owner,
			SpenderAccountID: spender,
			TokenID:          tokenID,
			Amount:           0,
		})
	}
	return &params.ApproveTokenAllowanceNormalised{
		Allowances:      allowances,
		TransactionMemo: raw.TransactionMemo,
	}, nil
}

// ApproveNFTAllowance approves either specific serials or all serials for a
// spender.
func ApproveNFTAllowance(raw params.ApproveNFTAllowance, agent *config.Context, client hedera.Client) (*params.ApproveNFTAllowanceNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	if len(raw.SerialNumbers) == 0 && !raw.AllSerials {
		return nil, xerrors.New(xerrors.CodeInvalidParameters,
			"either serial_numbers or all_serials must be provided")
	}
	owner, err := resolve.Account(raw.OwnerAccountID, agent, client)
	if err != nil {
		return nil, err
	}
	spender, err := hedera.ParseAccountID(raw.SpenderAccountID)
	if err != nil {
		return nil, err
	}
	tokenID, err := hedera.ParseTokenID(raw.TokenID)
	if err != nil {
		return nil, err
	}
	return &params.ApproveNFTAllowanceNormalised{
		Allowances: []params.NFTAllowance{{
			OwnerAccountID:   owner,
			SpenderAccountID: &spender,
			TokenID:          tokenID,
			SerialNumbers:    raw.SerialNumbers,
			AllSerials:       raw.AllSerials,
		}},
		TransactionMemo: raw.TransactionMemo,
	}, nil
}

// DeleteNFTAllowance revokes serial approvals by wiping the (owner, token,
// serials) entries; no spender appears in the wipe list.
func DeleteNFTAllowance(raw params.DeleteNFTAllowance, agent *config.Context, client hedera.Client) (*params.DeleteNFTAllowanceNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	if len(raw.SerialNumbers) == 0 {
		return nil, xerrors.New(xerrors.CodeInvalidParameters, "serial_numbers must be provided")
	}
	owner, err := resolve.Account(raw.OwnerAccountID, agent, client)
	if err != nil {
		return nil, err
	}
	tokenID, err := hedera.ParseTokenID(raw.TokenID)
	if err != nil {
		return nil, err
	}
	return &params.DeleteNFTAllowanceNormalised{
		Wipe: []params.NFTAllowance{{
			OwnerAccountID: owner,
			TokenID:        tokenID,
			SerialNumbers:  raw.SerialNumbers,
		}},
		TransactionMemo: raw.TransactionMemo,
	}, nil
}

func parseTokenIDs(raw []string) ([]hedera.TokenID, error) {
	out := make([]hedera.TokenID, 0, len(raw))
	for _, id := range raw {
		tokenID, err := hedera.ParseTokenID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, tokenID)
	}
	return out, nil
}

// tokenTransferList converts display amounts to base units and appends the
// source debit balancing the recipient credits.
func tokenTransferList(entries []params.TransferEntry, source hedera.AccountID, decimals int32) ([]params.TokenTransfer, error) {
	transfers := make([]params.TokenTransfer, 0, len(entries)+1)
	var total int64
	for _, entry := range entries {
		amount := units.ToBaseUnit(entry.Amount, decimals)
		if amount <= 0 {
			return nil, xerrors.Newf(xerrors.CodeInvalidParameters,
				"Invalid recipient amount: %s", entry.Amount)
		}
		recipient, err := hedera.ParseAccountID(entry.AccountID)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, params.TokenTransfer{AccountID: recipient, Amount: amount})
		total += amount
	}
	transfers = append(transfers, params.TokenTransfer{AccountID: source, Amount: -total})
	return transfers, nil
}

// tokenKeys resolves a set of key slot directives against the caller's key.
func tokenKeys(slots map[string]any, userKey hedera.PublicKey) (params.TokenKeys, error) {
	var keys params.TokenKeys
	targets := map[string]**hedera.PublicKey{
		"admin_key":  &keys.AdminKey,
		"supply_key": &keys.SupplyKey,
		"freeze_key": &keys.FreezeKey,
		"wipe_key":   &keys.WipeKey,
		"kyc_key":    &keys.KYCKey,
		"pause_key":  &keys.PauseKey,
	}
	for slot, raw := range slots {
		key, err := keySlot(raw, userKey)
		if err != nil {
			return params.TokenKeys{}, err
		}
		*targets[slot] = key
	}
	return keys, nil
}
