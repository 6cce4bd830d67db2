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

const recipientEVM = "0x00000000000000000000000000000000000186a0"

func TestCreateERC20UsesTestnetFactory(t *testing.T) {
	normalised, err := CreateERC20(params.CreateERC20{
		TokenName:   "Example",
		TokenSymbol: "EXM",
	}, "testnet")
	if err != nil {
		t.Fatalf("CreateERC20: %v", err)
	}
	if normalised.ContractID.String() != "0.0.6471814" {
		t.Fatalf("factory = %s", normalised.ContractID)
	}
	if normalised.Gas != 3_000_000 {
		t.Fatalf("gas = %d", normalised.Gas)
	}
	if len(normalised.FunctionParameters) <= 4 {
		t.Fatal("call data should carry a selector plus arguments")
	}
}

func TestCreateERC20RejectsUnsupportedNetwork(t *testing.T) {
	_, err := CreateERC20(params.CreateERC20{
		TokenName:   "Example",
		TokenSymbol: "EXM",
	}, "mainnet")
	if err == nil {
		t.Fatal("expected error for mainnet")
	}
	if !strings.Contains(err.Error(), "Network type mainnet not supported for ERC20 factory") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestCreateERC20RejectsOutOfRangeDecimals(t *testing.T) {
	decimals := int64(300)
	_, err := CreateERC20(params.CreateERC20{
		TokenName:   "Example",
		TokenSymbol: "EXM",
		Decimals:    &decimals,
	}, "testnet")
	if err == nil {
		t.Fatal("expected error for decimals > 255")
	}
}

func TestCreateERC721UsesTestnetFactory(t *testing.T) {
	normalised, err := CreateERC721(params.CreateERC721{
		TokenName:   "Gallery",
		TokenSymbol: "ART",
		BaseURI:     "ipfs://example/",
	}, "testnet")
	if err != nil {
		t.Fatalf("CreateERC721: %v", err)
	}
	if normalised.ContractID.String() != "0.0.6510666" {
		t.Fatalf("factory = %s", normalised.ContractID)
	}
	if normalised.Gas != 3_000_000 {
		t.Fatalf("gas = %d", normalised.Gas)
	}
}

func TestTransferERC20EncodesCall(t *testing.T) {
	mirror := &fakeMirror{}
	normalised, err := TransferERC20(context.Background(), params.TransferERC20{
		ContractID:       "0.0.600",
		RecipientAddress: recipientEVM,
		Amount:           decimal.NewFromInt(5),
	}, mirror)
	if err != nil {
		t.Fatalf("TransferERC20: %v", err)
	}
	if normalised.ContractID.String() != "0.0.600" {
		t.Fatalf("contract = %s", normalised.ContractID)
	}
	if normalised.Gas != 100_000 {
		t.Fatalf("gas = %d", normalised.Gas)
	}
	// selector + two 32-byte words
	if len(normalised.FunctionParameters) != 68 {
		t.Fatalf("call data length = %d", len(normalised.FunctionParameters))
	}
}

func TestTransferERC20RejectsNonPositiveAmount(t *testing.T) {
	mirror := &fakeMirror{}
	_, err := TransferERC20(context.Background(), params.TransferERC20{
		ContractID:       "0.0.600",
		RecipientAddress: recipientEVM,
		Amount:           decimal.NewFromInt(0),
	}, mirror)
	if err == nil {
		t.Fatal("expected error for zero amount")
	}
	if !strings.Contains(err.Error(), "Invalid transfer amount: 0") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestTransferERC20ResolvesRecipientViaMirror(t *testing.T) {
	mirror := &fakeMirror{account: &mirrornode.AccountInfo{
		AccountID:  "0.0.9",
		EvmAddress: recipientEVM,
	}}
	normalised, err := TransferERC20(context.Background(), params.TransferERC20{
		ContractID:       "0.0.600",
		RecipientAddress: "0.0.9",
		Amount:           decimal.NewFromInt(5),
	}, mirror)
	if err != nil {
		t.Fatalf("TransferERC20: %v", err)
	}
	if len(normalised.FunctionParameters) != 68 {
		t.Fatalf("call data length = %d", len(normalised.FunctionParameters))
	}
}

func TestMintERC721DefaultsToOperator(t *testing.T) {
	agent := &config.Context{AccountID: "0.0.7"}
	mirror := &fakeMirror{account: &mirrornode.AccountInfo{
		AccountID:  "0.0.7",
		EvmAddress: recipientEVM,
	}}
	normalised, err := MintERC721(context.Background(), params.MintERC721{
		ContractID: "0.0.600",
	}, agent, &fakeClient{}, mirror)
	if err != nil {
		t.Fatalf("MintERC721: %v", err)
	}
	if normalised.Gas != 3_000_000 {
		t.Fatalf("gas = %d", normalised.Gas)
	}
	// selector + one 32-byte word
	if len(normalised.FunctionParameters) != 36 {
		t.Fatalf("call data length = %d", len(normalised.FunctionParameters))
	}
}
