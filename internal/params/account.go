package params

import (
	"github.com/shopspring/decimal"

	"hedera-agent-go/internal/hedera"
)

// TransferHbar moves hbar from one source to one or more recipients.
type TransferHbar struct {
	SourceAccountID string            `json:"source_account_id,omitempty" jsonschema:"description=Source account; defaults to the operator"`
	Transfers       []TransferEntry   `json:"transfers" validate:"required,min=1,dive" jsonschema:"description=Recipients and display-unit amounts"`
	TransactionMemo string            `json:"transaction_memo,omitempty"`
	Scheduling      *SchedulingParams `json:"scheduling_params,omitempty"`
}

// HbarTransfer is one signed tinybar movement in the normalized zero-sum
// transfer list.
type HbarTransfer struct {
	AccountID hedera.AccountID `json:"accountId"`
	Amount    hedera.Hbar      `json:"amount"`
}

// TransferHbarNormalised is the zero-sum transfer list: one credit per
// recipient followed by a single negated debit from the source.
type TransferHbarNormalised struct {
	Transfers       []HbarTransfer        `json:"hbarTransfers"`
	TransactionMemo string                `json:"transactionMemo,omitempty"`
	Scheduling      *SchedulingNormalised `json:"-"`
}

// TransferHbarWithAllowance spends a previously approved hbar allowance on
// behalf of the owner. The owner must be named explicitly; there is no
// operator fallback for allowance spends.
type TransferHbarWithAllowance struct {
	SourceAccountID string            `json:"source_account_id,omitempty" jsonschema:"description=Account of the allowance owner whose balance is spent"`
	Transfers       []TransferEntry   `json:"transfers" validate:"required,min=1,dive" jsonschema:"description=Recipients and display-unit amounts"`
	TransactionMemo string            `json:"transaction_memo,omitempty"`
	Scheduling      *SchedulingParams `json:"scheduling_params,omitempty"`
}

// TransferHbarWithAllowanceNormalised is the approved zero-sum transfer
// list: recipient credits plus a single negated debit from the owner.
type TransferHbarWithAllowanceNormalised struct {
	Transfers       []HbarTransfer        `json:"hbarApprovedTransfers"`
	TransactionMemo string                `json:"transactionMemo,omitempty"`
	Scheduling      *SchedulingNormalised `json:"-"`
}

// ApproveHbarAllowance pre-authorizes a spender for an hbar amount.
type ApproveHbarAllowance struct {
	OwnerAccountID   string            `json:"owner_account_id,omitempty" jsonschema:"description=Owner account; defaults to the operator"`
	SpenderAccountID string            `json:"spender_account_id" validate:"required"`
	Amount           decimal.Decimal   `json:"amount" validate:"required"`
	TransactionMemo  string            `json:"transaction_memo,omitempty"`
	Scheduling       *SchedulingParams `json:"scheduling_params,omitempty"`
}

// DeleteHbarAllowance revokes a spender's hbar allowance.
type DeleteHbarAllowance struct {
	OwnerAccountID   string `json:"owner_account_id,omitempty"`
	SpenderAccountID string `json:"spender_account_id" validate:"required"`
	TransactionMemo  string `json:"transaction_memo,omitempty"`
}

// HbarAllowance is one normalized owner/spender/amount entry. A zero amount
// is the ledger's convention for revocation.
type HbarAllowance struct {
	OwnerAccountID   hedera.AccountID `json:"ownerAccountId"`
	SpenderAccountID hedera.AccountID `json:"spenderAccountId"`
	Amount           hedera.Hbar      `json:"amount"`
}

// ApproveHbarAllowanceNormalised carries the allowance entries to submit.
type ApproveHbarAllowanceNormalised struct {
	Allowances      []HbarAllowance       `json:"hbarAllowances"`
	TransactionMemo string                `json:"transactionMemo,omitempty"`
	Scheduling      *SchedulingNormalised `json:"-"`
}

// CreateAccount opens a new account, optionally seeded with a balance.
type CreateAccount struct {
	PublicKey                     string          `json:"public_key,omitempty" jsonschema:"description=Encoded public key for the new account; defaults to the caller's key"`
	InitialBalance                decimal.Decimal `json:"initial_balance,omitempty" jsonschema:"description=Initial balance in hbar"`
	AccountMemo                   string          `json:"account_memo,omitempty"`
	MaxAutomaticTokenAssociations int32           `json:"max_automatic_token_associations,omitempty"`
}

// CreateAccountNormalised is ready for an account-create transaction.
type CreateAccountNormalised struct {
	Key                           hedera.PublicKey `json:"key"`
	InitialBalance                hedera.Hbar      `json:"initialBalance"`
	AccountMemo                   string           `json:"accountMemo,omitempty"`
	MaxAutomaticTokenAssociations int32            `json:"maxAutomaticTokenAssociations,omitempty"`
}

// UpdateAccount changes mutable account properties. Nil pointers leave the
// property untouched.
type UpdateAccount struct {
	AccountID                     string  `json:"account_id,omitempty" jsonschema:"description=Account to update; defaults to the operator"`
	AccountMemo                   *string `json:"account_memo,omitempty"`
	MaxAutomaticTokenAssociations *int32  `json:"max_automatic_token_associations,omitempty"`
	DeclineStakingReward          *bool   `json:"decline_staking_reward,omitempty"`
}

// UpdateAccountNormalised is ready for an account-update transaction.
type UpdateAccountNormalised struct {
	AccountID                     hedera.AccountID `json:"accountId"`
	AccountMemo                   *string          `json:"accountMemo,omitempty"`
	MaxAutomaticTokenAssociations *int32           `json:"maxAutomaticTokenAssociations,omitempty"`
	DeclineStakingReward          *bool            `json:"declineStakingReward,omitempty"`
}

// DeleteAccount removes an account, sweeping its balance to a target.
type DeleteAccount struct {
	AccountID         string `json:"account_id" validate:"required" jsonschema:"description=Account to delete; must be an explicit address"`
	TransferAccountID string `json:"transfer_account_id,omitempty" jsonschema:"description=Account receiving the remaining balance; defaults to the operator"`
}

// DeleteAccountNormalised is ready for an account-delete transaction.
type DeleteAccountNormalised struct {
	AccountID         hedera.AccountID `json:"accountId"`
	TransferAccountID hedera.AccountID `json:"transferAccountId"`
}
