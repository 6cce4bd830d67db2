package normalize

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"hedera-agent-go/internal/config"
	"hedera-agent-go/internal/mirrornode"
	"hedera-agent-go/internal/params"
)

func TestAirdropFungibleTokenUsesMirroredDecimals(t *testing.T) {
	agent := &config.Context{AccountID: "0.0.7"}
	mirror := &fakeMirror{token: &mirrornode.TokenInfo{Decimals: "2"}}
	normalised, err := AirdropFungibleToken(context.Background(), params.AirdropFungibleToken{
		TokenID: "0.0.500",
		Recipients: []params.TransferEntry{
			{AccountID: "0.0.2", Amount: decimal.NewFromFloat(1.5)},
			{AccountID: "0.0.3", Amount: decimal.NewFromInt(2)},
		},
	}, agent, &fakeClient{}, mirror)
	if err != nil {
		t.Fatalf("AirdropFungibleToken: %v", err)
	}
	if len(normalised.Transfers) != 3 {
		t.Fatalf("transfer count = %d, want 3", len(normalised.Transfers))
	}
	if normalised.Transfers[0].Amount != 150 || normalised.Transfers[1].Amount != 200 {
		t.Fatalf("credits = %d, %d", normalised.Transfers[0].Amount, normalised.Transfers[1].Amount)
	}
	debit := normalised.Transfers[2]
	if debit.AccountID.String() != "0.0.7" || debit.Amount != -350 {
		t.Fatalf("debit = %s %d", debit.AccountID, debit.Amount)
	}
}

func TestAirdropFungibleTokenRejectsNonPositiveAmount(t *testing.T) {
	agent := &config.Context{AccountID: "0.0.7"}
	mirror := &fakeMirror{token: &mirrornode.TokenInfo{Decimals: "2"}}
	_, err := AirdropFungibleToken(context.Background(), params.AirdropFungibleToken{
		TokenID: "0.0.500",
		Recipients: []params.TransferEntry{
			{AccountID: "0.0.2", Amount: decimal.NewFromInt(0)},
		},
	}, agent, &fakeClient{}, mirror)
	if err == nil {
		t.Fatal("expected error for zero amount")
	}
	if !strings.Contains(err.Error(), "Invalid recipient amount: 0") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestTransferFungibleTokenWithAllowanceBuildsZeroSumList(t *testing.T) {
	agent := &config.Context{AccountID: "0.0.7"}
	mirror := &fakeMirror{token: &mirrornode.TokenInfo{Decimals: "2"}}
	normalised, err := TransferFungibleTokenWithAllowance(context.Background(), params.TransferFungibleTokenWithAllowance{
		TokenID:         "0.0.500",
		SourceAccountID: "0.0.50",
		Transfers: []params.TransferEntry{
			{AccountID: "0.0.2", Amount: decimal.NewFromInt(100)},
			{AccountID: "0.0.3", Amount: decimal.NewFromFloat(0.5)},
		},
	}, agent, &fakeClient{}, mirror)
	if err != nil {
		t.Fatalf("TransferFungibleTokenWithAllowance: %v", err)
	}
	if len(normalised.Transfers) != 3 {
		t.Fatalf("transfer count = %d, want 3", len(normalised.Transfers))
	}
	if normalised.Transfers[0].Amount != 10000 || normalised.Transfers[1].Amount != 50 {
		t.Fatalf("credits = %d, %d", normalised.Transfers[0].Amount, normalised.Transfers[1].Amount)
	}
	debit := normalised.Transfers[2]
	if debit.AccountID.String() != "0.0.50" || debit.Amount != -10050 {
		t.Fatalf("debit = %s %d", debit.AccountID, debit.Amount)
	}
}

func TestTransferFungibleTokenWithAllowanceRequiresSource(t *testing.T) {
	agent := &config.Context{AccountID: "0.0.7"}
	mirror := &fakeMirror{token: &mirrornode.TokenInfo{Decimals: "2"}}
	_, err := TransferFungibleTokenWithAllowance(context.Background(), params.TransferFungibleTokenWithAllowance{
		TokenID: "0.0.500",
		Transfers: []params.TransferEntry{
			{AccountID: "0.0.2", Amount: decimal.NewFromInt(1)},
		},
	}, agent, &fakeClient{}, mirror)
	if err == nil {
		t.Fatal("expected error for missing source account")
	}
	if !strings.Contains(err.Error(), "source_account_id is required for allowance transfers") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestTransferFungibleTokenWithAllowanceRejectsNonPositiveAmount(t *testing.T) {
	agent := &config.Context{AccountID: "0.0.7"}
	mirror := &fakeMirror{token: &mirrornode.TokenInfo{Decimals: "2"}}
	_, err := TransferFungibleTokenWithAllowance(context.Background(), params.TransferFungibleTokenWithAllowance{
		TokenID:         "0.0.500",
		SourceAccountID: "0.0.50",
		Transfers: []params.TransferEntry{
			{AccountID: "0.0.2", Amount: decimal.NewFromInt(0)},
		},
	}, agent, &fakeClient{}, mirror)
	if err == nil {
		t.Fatal("expected error for zero amount")
	}
	if !strings.Contains(err.Error(), "Invalid transfer amount: 0") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestTransferNonFungibleTokenWithAllowanceMarksApprovals(t *testing.T) {
	normalised, err := TransferNonFungibleTokenWithAllowance(params.TransferNonFungibleTokenWithAllowance{
		TokenID:         "0.0.500",
		SourceAccountID: "0.0.50",
		Recipients: []params.NFTRecipientEntry{
			{Recipient: "0.0.2", SerialNumber: 1},
			{Recipient: "0.0.3", SerialNumber: 7},
		},
	})
	if err != nil {
		t.Fatalf("TransferNonFungibleTokenWithAllowance: %v", err)
	}
	if len(normalised.Transfers) != 2 {
		t.Fatalf("transfer count = %d, want 2", len(normalised.Transfers))
	}
	for _, entry := range normalised.Transfers {
		if !entry.IsApproval {
			t.Fatal("every transfer must spend the approval")
		}
		if entry.Sender.String() != "0.0.50" {
			t.Fatalf("sender = %s, want the allowance owner", entry.Sender)
		}
	}
	if normalised.Transfers[1].Receiver.String() != "0.0.3" || normalised.Transfers[1].SerialNumber != 7 {
		t.Fatalf("second transfer = %s serial %d", normalised.Transfers[1].Receiver, normalised.Transfers[1].SerialNumber)
	}

	_, err = TransferNonFungibleTokenWithAllowance(params.TransferNonFungibleTokenWithAllowance{
		TokenID: "0.0.500",
		Recipients: []params.NFTRecipientEntry{
			{Recipient: "0.0.2", SerialNumber: 1},
		},
	})
	if err == nil {
		t.Fatal("expected error for missing source account")
	}
	if !strings.Contains(err.Error(), "source_account_id is required for allowance transfers") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestMintFungibleTokenRejectsNonPositiveAmount(t *testing.T) {
	mirror := &fakeMirror{token: &mirrornode.TokenInfo{Decimals: "2"}}
	_, err := MintFungibleToken(context.Background(), params.MintFungibleToken{
		TokenID: "0.0.500",
		Amount:  decimal.NewFromInt(0),
	}, mirror)
	if err == nil {
		t.Fatal("expected error for zero amount")
	}
	if !strings.Contains(err.Error(), "Invalid mint amount: 0") {
		t.Fatalf("unexpected message: %v", err)
	}

	normalised, err := MintFungibleToken(context.Background(), params.MintFungibleToken{
		TokenID: "0.0.500",
		Amount:  decimal.NewFromFloat(1.5),
	}, mirror)
	if err != nil {
		t.Fatalf("MintFungibleToken: %v", err)
	}
	if normalised.Amount != 150 {
		t.Fatalf("mint amount = %d, want 150", normalised.Amount)
	}
}

func TestUpdateTokenRejectsMissingKeySlot(t *testing.T) {
	userKey := mustKey(userKeyHex)
	agent := &config.Context{AccountID: "0.0.7", PublicKey: userKey}
	mirror := &fakeMirror{token: &mirrornode.TokenInfo{
		Decimals: "0",
		AdminKey: &mirrornode.Key{Type: "ED25519", Key: userKeyHex},
	}}
	_, err := UpdateToken(context.Background(), params.UpdateToken{
		TokenID:   "0.0.500",
		SupplyKey: true,
	}, agent, &fakeClient{}, mirror)
	if err == nil {
		t.Fatal("expected error for absent supply key slot")
	}
	if !strings.Contains(err.Error(), "Cannot update supply_key: token was created without a supply_key") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestUpdateTokenRejectsForeignAdminKey(t *testing.T) {
	agent := &config.Context{AccountID: "0.0.7", PublicKey: mustKey(userKeyHex)}
	mirror := &fakeMirror{token: &mirrornode.TokenInfo{
		Decimals: "0",
		AdminKey: &mirrornode.Key{Type: "ECDSA_SECP256K1", Key: otherKeyHex},
	}}
	_, err := UpdateToken(context.Background(), params.UpdateToken{
		TokenID:  "0.0.500",
		AdminKey: true,
	}, agent, &fakeClient{}, mirror)
	if err == nil {
		t.Fatal("expected permission error")
	}
	if !strings.Contains(err.Error(), "You do not have permission to update this token") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestUpdateTokenAcceptsMatchingAdminKey(t *testing.T) {
	userKey := mustKey(userKeyHex)
	agent := &config.Context{AccountID: "0.0.7", PublicKey: userKey}
	mirror := &fakeMirror{token: &mirrornode.TokenInfo{
		Decimals:  "0",
		AdminKey:  &mirrornode.Key{Type: "ED25519", Key: userKeyHex},
		SupplyKey: &mirrornode.Key{Type: "ED25519", Key: userKeyHex},
	}}
	name := "Renamed"
	normalised, err := UpdateToken(context.Background(), params.UpdateToken{
		TokenID:   "0.0.500",
		TokenName: &name,
		SupplyKey: true,
	}, agent, &fakeClient{}, mirror)
	if err != nil {
		t.Fatalf("UpdateToken: %v", err)
	}
	if normalised.Keys.SupplyKey == nil || !normalised.Keys.SupplyKey.Equal(userKey) {
		t.Fatal("supply key should resolve to the caller's key")
	}
	if normalised.TokenName == nil || *normalised.TokenName != "Renamed" {
		t.Fatal("token name should carry through")
	}
}

func TestCreateNonFungibleTokenDefaultsSupplyKey(t *testing.T) {
	userKey := mustKey(userKeyHex)
	agent := &config.Context{AccountID: "0.0.7", PublicKey: userKey}
	normalised, err := CreateNonFungibleToken(params.CreateNonFungibleToken{
		TokenName:   "Collection",
		TokenSymbol: "COLL",
	}, agent, &fakeClient{})
	if err != nil {
		t.Fatalf("CreateNonFungibleToken: %v", err)
	}
	if normalised.Keys.SupplyKey == nil || !normalised.Keys.SupplyKey.Equal(userKey) {
		t.Fatal("supply key should default to the caller's key")
	}

	_, err = CreateNonFungibleToken(params.CreateNonFungibleToken{
		TokenName:   "Collection",
		TokenSymbol: "COLL",
	}, &config.Context{AccountID: "0.0.7"}, &fakeClient{})
	if err == nil {
		t.Fatal("no supply key available should fail")
	}
}

func TestApproveNFTAllowanceRequiresSerialsOrAll(t *testing.T) {
	agent := &config.Context{AccountID: "0.0.7"}
	_, err := ApproveNFTAllowance(params.ApproveNFTAllowance{
		SpenderAccountID: "0.0.9",
		TokenID:          "0.0.500",
	}, agent, &fakeClient{})
	if err == nil {
		t.Fatal("expected error when neither serials nor all_serials given")
	}
	if !strings.Contains(err.Error(), "either serial_numbers or all_serials must be provided") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestDeleteNFTAllowanceBuildsWipeList(t *testing.T) {
	agent := &config.Context{AccountID: "0.0.7"}

	_, err := DeleteNFTAllowance(params.DeleteNFTAllowance{TokenID: "0.0.500"}, agent, &fakeClient{})
	if err == nil {
		t.Fatal("expected error for empty serials")
	}
	if !strings.Contains(err.Error(), "serial_numbers must be provided") {
		t.Fatalf("unexpected message: %v", err)
	}

	normalised, err := DeleteNFTAllowance(params.DeleteNFTAllowance{
		TokenID:       "0.0.500",
		SerialNumbers: []int64{1, 2},
	}, agent, &fakeClient{})
	if err != nil {
		t.Fatalf("DeleteNFTAllowance: %v", err)
	}
	if len(normalised.Wipe) != 1 {
		t.Fatalf("wipe count = %d", len(normalised.Wipe))
	}
	entry := normalised.Wipe[0]
	if entry.SpenderAccountID != nil {
		t.Fatal("wipe entries must not name a spender")
	}
	if entry.OwnerAccountID.String() != "0.0.7" || len(entry.SerialNumbers) != 2 {
		t.Fatalf("wipe entry = %s serials %v", entry.OwnerAccountID, entry.SerialNumbers)
	}
}

func TestDeleteTokenAllowanceApprovesZeroPerToken(t *testing.T) {
	agent := &config.Context{AccountID: "0.0.7"}
	normalised, err := DeleteTokenAllowance(params.DeleteTokenAllowance{
		SpenderAccountID: "0.0.9",
		TokenIDs:         []string{"0.0.500", "0.0.501"},
	}, agent, &fakeClient{})
	if err != nil {
		t.Fatalf("DeleteTokenAllowance: %v", err)
	}
	if len(normalised.Allowances) != 2 {
		t.Fatalf("allowance count = %d", len(normalised.Allowances))
	}
	for _, entry := range normalised.Allowances {
		if entry.Amount != 0 {
			t.Fatalf("revocation amount = %d, want 0", entry.Amount)
		}
	}
}
