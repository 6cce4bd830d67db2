package params

import (
	"github.com/shopspring/decimal"

	"hedera-agent-go/internal/hedera"
)

// CreateERC20 deploys a fungible ERC-20 through the network factory
// contract.
type CreateERC20 struct {
	TokenName     string `json:"token_name" validate:"required"`
	TokenSymbol   string `json:"token_symbol" validate:"required"`
	Decimals      *int64 `json:"decimals,omitempty" jsonschema:"description=Token decimals; defaults to 18"`
	InitialSupply *int64 `json:"initial_supply,omitempty" jsonschema:"description=Initial supply in base units; defaults to 0"`
}

// CreateERC721 deploys an ERC-721 collection through the network factory
// contract.
type CreateERC721 struct {
	TokenName   string `json:"token_name" validate:"required"`
	TokenSymbol string `json:"token_symbol" validate:"required"`
	BaseURI     string `json:"base_uri,omitempty"`
}

// TransferERC20 calls transfer(address,uint256) on an ERC-20 contract.
type TransferERC20 struct {
	ContractID       string          `json:"contract_id" validate:"required" jsonschema:"description=ERC-20 contract id or EVM address"`
	RecipientAddress string          `json:"recipient_address" validate:"required" jsonschema:"description=Recipient account id or EVM address"`
	Amount           decimal.Decimal `json:"amount" validate:"required" jsonschema:"description=Amount in base units"`
}

// TransferERC721 calls safeTransferFrom on an ERC-721 contract.
type TransferERC721 struct {
	ContractID  string `json:"contract_id" validate:"required"`
	FromAddress string `json:"from_address,omitempty" jsonschema:"description=Current owner; defaults to the operator"`
	ToAddress   string `json:"to_address" validate:"required"`
	TokenID     int64  `json:"token_id"`
}

// MintERC721 calls mint(address) on an ERC-721 contract.
type MintERC721 struct {
	ContractID string `json:"contract_id" validate:"required"`
	ToAddress  string `json:"to_address,omitempty" jsonschema:"description=Mint target; defaults to the operator"`
}

// ContractExecuteNormalised is a ready contract call: target, gas ceiling
// and ABI-encoded call data.
type ContractExecuteNormalised struct {
	ContractID         hedera.ContractID `json:"contractId"`
	Gas                int64             `json:"gas"`
	FunctionParameters []byte            `json:"functionParameters"`
}
