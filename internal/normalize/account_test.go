package normalize

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"hedera-agent-go/internal/config"
	xerrors "hedera-agent-go/internal/errors"
	"hedera-agent-go/internal/params"
)

func TestTransferHbarBuildsZeroSumList(t *testing.T) {
	agent := &config.Context{AccountID: "0.0.7"}
	normalised, err := TransferHbar(params.TransferHbar{
		Transfers: []params.TransferEntry{
			{AccountID: "0.0.2", Amount: decimal.NewFromFloat(1.5)},
			{AccountID: "0.0.3", Amount: decimal.NewFromInt(2)},
		},
	}, agent, &fakeClient{})
	if err != nil {
		t.Fatalf("TransferHbar: %v", err)
	}
	if len(normalised.Transfers) != 3 {
		t.Fatalf("transfer count = %d, want 3", len(normalised.Transfers))
	}
	var sum int64
	for _, entry := range normalised.Transfers {
		sum += entry.Amount.Tinybars()
	}
	if sum != 0 {
		t.Fatalf("transfer list sums to %d, want 0", sum)
	}
	debit := normalised.Transfers[2]
	if debit.AccountID.String() != "0.0.7" {
		t.Fatalf("debit account = %s, want 0.0.7", debit.AccountID)
	}
	if debit.Amount.Tinybars() != -350_000_000 {
		t.Fatalf("debit = %d tinybars", debit.Amount.Tinybars())
	}
}

func TestTransferHbarRejectsNonPositiveAmount(t *testing.T) {
	agent := &config.Context{AccountID: "0.0.7"}
	_, err := TransferHbar(params.TransferHbar{
		Transfers: []params.TransferEntry{
			{AccountID: "0.0.2", Amount: decimal.NewFromInt(0)},
		},
	}, agent, &fakeClient{})
	if err == nil {
		t.Fatal("expected error for zero amount")
	}
	if !strings.Contains(err.Error(), "Invalid transfer amount: 0") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestTransferHbarWithAllowanceBuildsZeroSumList(t *testing.T) {
	agent := &config.Context{AccountID: "0.0.7"}
	normalised, err := TransferHbarWithAllowance(params.TransferHbarWithAllowance{
		SourceAccountID: "0.0.50",
		Transfers: []params.TransferEntry{
			{AccountID: "0.0.2", Amount: decimal.NewFromInt(1)},
			{AccountID: "0.0.3", Amount: decimal.NewFromFloat(0.5)},
		},
	}, agent, &fakeClient{})
	if err != nil {
		t.Fatalf("TransferHbarWithAllowance: %v", err)
	}
	if len(normalised.Transfers) != 3 {
		t.Fatalf("transfer count = %d, want 3", len(normalised.Transfers))
	}
	var sum int64
	for _, entry := range normalised.Transfers {
		sum += entry.Amount.Tinybars()
	}
	if sum != 0 {
		t.Fatalf("transfer list sums to %d, want 0", sum)
	}
	debit := normalised.Transfers[2]
	if debit.AccountID.String() != "0.0.50" {
		t.Fatalf("debit account = %s, want the allowance owner", debit.AccountID)
	}
	if debit.Amount.Tinybars() != -150_000_000 {
		t.Fatalf("debit = %d tinybars", debit.Amount.Tinybars())
	}
}

func TestTransferHbarWithAllowanceRequiresSource(t *testing.T) {
	// The owner never defaults to the operator; the allowance was granted
	// against a specific account.
	agent := &config.Context{AccountID: "0.0.7"}
	_, err := TransferHbarWithAllowance(params.TransferHbarWithAllowance{
		Transfers: []params.TransferEntry{
			{AccountID: "0.0.2", Amount: decimal.NewFromInt(1)},
		},
	}, agent, &fakeClient{})
	if err == nil {
		t.Fatal("expected error for missing source account")
	}
	if !strings.Contains(err.Error(), "source_account_id is required for allowance transfers") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestTransferHbarWithAllowanceRejectsNonPositiveAmount(t *testing.T) {
	agent := &config.Context{AccountID: "0.0.7"}
	_, err := TransferHbarWithAllowance(params.TransferHbarWithAllowance{
		SourceAccountID: "0.0.50",
		Transfers: []params.TransferEntry{
			{AccountID: "0.0.2", Amount: decimal.NewFromInt(0)},
		},
	}, agent, &fakeClient{})
	if err == nil {
		t.Fatal("expected error for zero amount")
	}
	if !strings.Contains(err.Error(), "Invalid transfer amount: 0") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestDeleteHbarAllowanceApprovesZero(t *testing.T) {
	agent := &config.Context{AccountID: "0.0.7"}
	normalised, err := DeleteHbarAllowance(params.DeleteHbarAllowance{
		SpenderAccountID: "0.0.9",
	}, agent, &fakeClient{})
	if err != nil {
		t.Fatalf("DeleteHbarAllowance: %v", err)
	}
	if len(normalised.Allowances) != 1 {
		t.Fatalf("allowance count = %d", len(normalised.Allowances))
	}
	entry := normalised.Allowances[0]
	if !entry.Amount.IsZero() {
		t.Fatalf("revocation amount = %d, want 0", entry.Amount.Tinybars())
	}
	if entry.OwnerAccountID.String() != "0.0.7" || entry.SpenderAccountID.String() != "0.0.9" {
		t.Fatalf("owner/spender = %s/%s", entry.OwnerAccountID, entry.SpenderAccountID)
	}
}

func TestCreateAccountDefaultsToCallerKey(t *testing.T) {
	userKey := mustKey(userKeyHex)
	agent := &config.Context{AccountID: "0.0.7", PublicKey: userKey}
	normalised, err := CreateAccount(params.CreateAccount{
		InitialBalance: decimal.NewFromInt(1),
	}, agent, &fakeClient{})
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	if !normalised.Key.Equal(userKey) {
		t.Fatal("new account key should default to the caller's key")
	}
	if normalised.InitialBalance.Tinybars() != 100_000_000 {
		t.Fatalf("initial balance = %d tinybars", normalised.InitialBalance.Tinybars())
	}

	if _, err := CreateAccount(params.CreateAccount{}, &config.Context{}, &fakeClient{}); err == nil {
		t.Fatal("no key anywhere should fail")
	}
}

func TestDeleteAccountRequiresExplicitAddress(t *testing.T) {
	agent := &config.Context{AccountID: "0.0.7"}
	_, err := DeleteAccount(params.DeleteAccount{AccountID: "not-an-address"}, agent, &fakeClient{})
	if err == nil {
		t.Fatal("expected error for malformed address")
	}
	if !strings.Contains(err.Error(), "Account ID must be a Hedera address") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestDeleteAccountTransferTargetFallback(t *testing.T) {
	agent := &config.Context{AccountID: "0.0.7"}
	normalised, err := DeleteAccount(params.DeleteAccount{AccountID: "0.0.100"}, agent, &fakeClient{})
	if err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}
	if normalised.TransferAccountID.String() != "0.0.7" {
		t.Fatalf("transfer target = %s, want the default account", normalised.TransferAccountID)
	}

	_, err = DeleteAccount(params.DeleteAccount{AccountID: "0.0.100"}, &config.Context{}, &fakeClient{})
	if err == nil {
		t.Fatal("no transfer target anywhere should fail")
	}
	if !xerrors.IsCode(err, xerrors.CodeMissingTransferTarget) {
		t.Fatalf("code = %s, want MISSING_TRANSFER_TARGET", xerrors.CodeOf(err))
	}
}
