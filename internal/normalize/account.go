package normalize

import (
	"hedera-agent-go/internal/config"
	xerrors "hedera-agent-go/internal/errors"
	"hedera-agent-go/internal/hedera"
	"hedera-agent-go/internal/params"
	"hedera-agent-go/internal/resolve"
)

// TransferHbar builds the zero-sum transfer list: one positive credit per
// recipient followed by a single negated debit from the source account.
func TransferHbar(raw params.TransferHbar, agent *config.Context, client hedera.Client) (*params.TransferHbarNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	source, err := resolve.Account(raw.SourceAccountID, agent, client)
	if err != nil {
		return nil, err
	}

	transfers := make([]params.HbarTransfer, 0, len(raw.Transfers)+1)
	var total int64
	for _, entry := range raw.Transfers {
		amount := hedera.HbarFromDecimal(entry.Amount)
		if amount.Tinybars() <= 0 {
			return nil, xerrors.Newf(xerrors.CodeInvalidParameters,
				"Invalid transfer amount: %s", entry.Amount)
		}
		recipient, err := hedera.ParseAccountID(entry.AccountID)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, params.HbarTransfer{AccountID: recipient, Amount: amount})
		total += amount.Tinybars()
	}
	transfers = append(transfers, params.HbarTransfer{
		AccountID: source,
		Amount:    hedera.HbarFromTinybars(-total),
	})

	sched, err := scheduling(raw.Scheduling, agent, client)
	if err != nil {
		return nil, err
	}
	return &params.TransferHbarNormalised{
		Transfers:       transfers,
		TransactionMemo: raw.TransactionMemo,
		Scheduling:      sched,
	}, nil
}

// TransferHbarWithAllowance builds the approved zero-sum transfer list for
// an allowance spend. The owner is the named source account; it never falls
// back to the operator, since the allowance was granted to a specific payer.
func TransferHbarWithAllowance(raw params.TransferHbarWithAllowance, agent *config.Context, client hedera.Client) (*params.TransferHbarWithAllowanceNormalised, error) {
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

	transfers := make([]params.HbarTransfer, 0, len(raw.Transfers)+1)
	var total int64
	for _, entry := range raw.Transfers {
		amount := hedera.HbarFromDecimal(entry.Amount)
		if amount.Tinybars() <= 0 {
			return nil, xerrors.Newf(xerrors.CodeInvalidParameters,
				"Invalid transfer amount: %s", entry.Amount)
		}
		recipient, err := hedera.ParseAccountID(entry.AccountID)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, params.HbarTransfer{AccountID: recipient, Amount: amount})
		total += amount.Tinybars()
	}
	transfers = append(transfers, params.HbarTransfer{
		AccountID: owner,
		Amount:    hedera.HbarFromTinybars(-total),
	})

	sched, err := scheduling(raw.Scheduling, agent, client)
	if err != nil {
		return nil, err
	}
	return &params.TransferHbarWithAllowanceNormalised{
		Transfers:       transfers,
		TransactionMemo: raw.TransactionMemo,
		Scheduling:      sched,
	}, nil
}

// ApproveHbarAllowance resolves the owner and converts the allowance amount
// to tinybars.
func ApproveHbarAllowance(raw params.ApproveHbarAllowance, agent *config.Context, client hedera.Client) (*params.ApproveHbarAllowanceNormalised, error) {
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
	sched, err := scheduling(raw.Scheduling, agent, client)
	if err != nil {
		return nil, err
	}
	return &params.ApproveHbarAllowanceNormalised{
		Allowances: []params.HbarAllowance{{
			OwnerAccountID:   owner,
			SpenderAccountID: spender,
			Amount:           hedera.HbarFromDecimal(raw.Amount),
		}},
		TransactionMemo: raw.TransactionMemo,
		Scheduling:      sched,
	}, nil
}

// DeleteHbarAllowance revokes by approving an amount of exactly zero.
func DeleteHbarAllowance(raw params.DeleteHbarAllowance, agent *config.Context, client hedera.Client) (*params.ApproveHbarAllowanceNormalised, error) {
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
	return &params.ApproveHbarAllowanceNormalised{
		Allowances: []params.HbarAllowance{{
			OwnerAccountID:   owner,
			SpenderAccountID: spender,
			Amount:           hedera.HbarFromTinybars(0),
		}},
		TransactionMemo: raw.TransactionMemo,
	}, nil
}

// CreateAccount resolves the new account's key, defaulting to the caller's
// key, and converts the initial balance to tinybars.
func CreateAccount(raw params.CreateAccount, agent *config.Context, client hedera.Client) (*params.CreateAccountNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	var key hedera.PublicKey
	if raw.PublicKey != "" {
		parsed, err := hedera.ParsePublicKey(raw.PublicKey)
		if err != nil {
			return nil, err
		}
		key = parsed
	} else {
		def, err := resolve.DefaultPublicKey(agent, client)
		if err != nil {
			return nil, err
		}
		key = def
	}
	return &params.CreateAccountNormalised{
		Key:                           key,
		InitialBalance:                hedera.HbarFromDecimal(raw.InitialBalance),
		AccountMemo:                   raw.AccountMemo,
		MaxAutomaticTokenAssociations: raw.MaxAutomaticTokenAssociations,
	}, nil
}

// UpdateAccount resolves the target account; unset pointer fields stay
// untouched on the ledger.
func UpdateAccount(raw params.UpdateAccount, agent *config.Context, client hedera.Client) (*params.UpdateAccountNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	account, err := resolve.Account(raw.AccountID, agent, client)
	if err != nil {
		return nil, err
	}
	return &params.UpdateAccountNormalised{
		AccountID:                     account,
		AccountMemo:                   raw.AccountMemo,
		MaxAutomaticTokenAssociations: raw.MaxAutomaticTokenAssociations,
		DeclineStakingReward:          raw.DeclineStakingReward,
	}, nil
}

// DeleteAccount requires an explicit target address and sweeps the balance
// to the transfer account, defaulting to the operator.
func DeleteAccount(raw params.DeleteAccount, agent *config.Context, client hedera.Client) (*params.DeleteAccountNormalised, error) {
	if err := params.Validate(raw); err != nil {
		return nil, err
	}
	if !resolve.IsHederaAddress(raw.AccountID) {
		return nil, xerrors.New(xerrors.CodeInvalidAddress, "Account ID must be a Hedera address")
	}
	account, err := hedera.ParseAccountID(raw.AccountID)
	if err != nil {
		return nil, err
	}
	target, err := resolve.Account(raw.TransferAccountID, agent, client)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.CodeMissingTransferTarget, err,
			"could not determine an account to receive the remaining balance")
	}
	return &params.DeleteAccountNormalised{
		AccountID:         account,
		TransferAccountID: target,
	}, nil
}
