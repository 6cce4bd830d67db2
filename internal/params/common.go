// Package params declares the raw tool-call parameter records and their
// normalized, domain-typed counterparts. Raw records are flat and loosely
// typed (identifiers as strings, amounts as decimals, key directives as
// bool-or-string); normalizers in internal/normalize turn them into the
// *Normalised types consumed by the transaction layer.
package params

import (
	"github.com/shopspring/decimal"

	"hedera-agent-go/internal/hedera"
)

// SchedulingParams optionally wraps an operation into a scheduled
// transaction. The key directive is a bool ("use my key") or an encoded
// public key string.
type SchedulingParams struct {
	IsScheduled    bool   `json:"is_scheduled,omitempty" jsonschema:"description=Set true to wrap the transaction into a schedule-create"`
	AdminKey       any    `json:"admin_key,omitempty" jsonschema:"description=Schedule admin key: true for the caller's key or an encoded public key"`
	PayerAccountID string `json:"payer_account_id,omitempty" jsonschema:"description=Account that pays for the scheduled transaction"`
	WaitForExpiry  bool   `json:"wait_for_expiry,omitempty" jsonschema:"description=Execute at expiry instead of when the last signature arrives"`
	ScheduleMemo   string `json:"schedule_memo,omitempty" jsonschema:"description=Memo on the outer schedule entity"`
}

// SchedulingNormalised is the schedule-create wrapper ready for building.
type SchedulingNormalised struct {
	AdminKey      *hedera.PublicKey `json:"adminKey,omitempty"`
	Payer         *hedera.AccountID `json:"payerAccountId,omitempty"`
	WaitForExpiry bool              `json:"waitForExpiry,omitempty"`
	Memo          string            `json:"memo,omitempty"`
}

// ScheduleCreateBody wraps an inner transaction body for deferred signing.
type ScheduleCreateBody struct {
	InnerKind     hedera.Kind       `json:"innerKind"`
	InnerBody     any               `json:"innerBody"`
	AdminKey      *hedera.PublicKey `json:"adminKey,omitempty"`
	Payer         *hedera.AccountID `json:"payerAccountId,omitempty"`
	WaitForExpiry bool              `json:"waitForExpiry,omitempty"`
	Memo          string            `json:"memo,omitempty"`
}

// TransferEntry is one (account, display amount) pair in a transfer or
// airdrop request.
type TransferEntry struct {
	AccountID string          `json:"account_id" validate:"required" jsonschema:"description=Recipient account in shard.realm.num form"`
	Amount    decimal.Decimal `json:"amount" validate:"required" jsonschema:"description=Amount in display units"`
}
