package params

import (
	"github.com/shopspring/decimal"

	"hedera-agent-go/internal/hedera"
)

// CreateFungibleToken creates a new fungible token class. Key directives are
// bool ("use my key") or encoded public key strings, resolved independently
// per slot.
type CreateFungibleToken struct {
	TokenName         string            `json:"token_name" validate:"required"`
	TokenSymbol       string            `json:"token_symbol" validate:"required"`
	InitialSupply     decimal.Decimal   `json:"initial_supply,omitempty" jsonschema:"description=Initial supply in display units"`
	Decimals          int32             `json:"decimals,omitempty"`
	TreasuryAccountID string            `json:"treasury_account_id,omitempty" jsonschema:"description=Treasury account; defaults to the operator"`
	AdminKey          any               `json:"admin_key,omitempty"`
	SupplyKey         any               `json:"supply_key,omitempty"`
	FreezeKey         any               `json:"freeze_key,omitempty"`
	WipeKey           any               `json:"wipe_key,omitempty"`
	KYCKey            any               `json:"kyc_key,omitempty"`
	PauseKey          any               `json:"pause_key,omitempty"`
	TokenMemo         string            `json:"token_memo,omitempty"`
	Scheduling        *SchedulingParams `json:"scheduling_params,omitempty"`
}

// TokenKeys carries the optional key slots of a token class.
type TokenKeys struct {
	AdminKey  *hedera.PublicKey `json:"adminKey,omitempty"`
	SupplyKey *hedera.PublicKey `json:"supplyKey,omitempty"`
	FreezeKey *hedera.PublicKey `json:"freezeKey,omitempty"`
	WipeKey   *hedera.PublicKey `json:"wipeKey,omitempty"`
	KYCKey    *hedera.PublicKey `json:"kycKey,omitempty"`
	PauseKey  *hedera.PublicKey `json:"pauseKey,omitempty"`
}

// CreateFungibleTokenNormalised is ready for a token-create transaction;
// the initial supply is in base units.
type CreateFungibleTokenNormalised struct {
	TokenName     string                `json:"tokenName"`
	TokenSymbol   string                `json:"tokenSymbol"`
	InitialSupply int64                 `json:"initialSupply"`
	Decimals      int32                 `json:"decimals"`
	Treasury      hedera.AccountID      `json:"treasuryAccountId"`
	Keys          TokenKeys             `json:"keys"`
	TokenMemo     string                `json:"tokenMemo,omitempty"`
	Scheduling    *SchedulingNormalised `json:"-"`
}

// CreateNonFungibleToken creates an NFT class.
type CreateNonFungibleToken struct {
	TokenName         string            `json:"token_name" validate:"required"`
	TokenSymbol       string            `json:"token_symbol" validate:"required"`
	MaxSupply         int64             `json:"max_supply,omitempty"`
	TreasuryAccountID string            `json:"treasury_account_id,omitempty"`
	AdminKey          any               `json:"admin_key,omitempty"`
	SupplyKey         any               `json:"supply_key,omitempty" jsonschema:"description=Defaults to the caller's key; minting requires it"`
	TokenMemo         string            `json:"token_memo,omitempty"`
	Scheduling        *SchedulingParams `json:"scheduling_params,omitempty"`
}

// CreateNonFungibleTokenNormalised is ready for an NFT-class create.
type CreateNonFungibleTokenNormalised struct {
	TokenName   string                `json:"tokenName"`
	TokenSymbol string                `json:"tokenSymbol"`
	MaxSupply   int64                 `json:"maxSupply"`
	Treasury    hedera.AccountID      `json:"treasuryAccountId"`
	Keys        TokenKeys             `json:"keys"`
	TokenMemo   string                `json:"tokenMemo,omitempty"`
	Scheduling  *SchedulingNormalised `json:"-"`
}

// UpdateToken changes token metadata and key slots.
type UpdateToken struct {
	TokenID     string  `json:"token_id" validate:"required"`
	TokenName   *string `json:"token_name,omitempty"`
	TokenSymbol *string `json:"token_symbol,omitempty"`
	TokenMemo   *string `json:"token_memo,omitempty"`
	AdminKey    any     `json:"admin_key,omitempty"`
	SupplyKey   any     `json:"supply_key,omitempty"`
	FreezeKey   any     `json:"freeze_key,omitempty"`
	WipeKey     any     `json:"wipe_key,omitempty"`
	KYCKey      any     `json:"kyc_key,omitempty"`
	PauseKey    any     `json:"pause_key,omitempty"`
}

// UpdateTokenNormalised is ready for a token-update transaction.
type UpdateTokenNormalised struct {
	TokenID     hedera.TokenID `json:"tokenId"`
	TokenName   *string        `json:"tokenName,omitempty"`
	TokenSymbol *string        `json:"tokenSymbol,omitempty"`
	TokenMemo   *string        `json:"tokenMemo,omitempty"`
	Keys        TokenKeys      `json:"keys"`
}

// MintFungibleToken mints additional supply to the treasury.
type MintFungibleToken struct {
	TokenID string          `json:"token_id" validate:"required"`
	Amount  decimal.Decimal `json:"amount" validate:"required"`
}

// MintFungibleTokenNormalised carries the base-unit mint amount.
type MintFungibleTokenNormalised struct {
	TokenID hedera.TokenID `json:"tokenId"`
	Amount  int64          `json:"amount"`
}

// MintNonFungibleToken mints serials carrying metadata URIs.
type MintNonFungibleToken struct {
	TokenID string   `json:"token_id" validate:"required"`
	URIs    []string `json:"uris" jsonschema:"description=One metadata URI per serial to mint"`
}

// MintNonFungibleTokenNormalised carries the metadata as raw bytes.
type MintNonFungibleTokenNormalised struct {
	TokenID  hedera.TokenID `json:"tokenId"`
	Metadata [][]byte       `json:"metadata"`
}

// AssociateToken associates token classes with an account.
type AssociateToken struct {
	AccountID string   `json:"account_id,omitempty" jsonschema:"description=Account to associate; defaults to the operator"`
	TokenIDs  []string `json:"token_ids" validate:"required,min=1"`
}

// AssociateTokenNormalised is ready for a token-associate transaction.
type AssociateTokenNormalised struct {
	AccountID hedera.AccountID `json:"accountId"`
	TokenIDs  []hedera.TokenID `json:"tokenIds"`
}

// DissociateToken removes token associations from an account.
type DissociateToken struct {
	AccountID string   `json:"account_id,omitempty"`
	TokenIDs  []string `json:"token_ids" validate:"required,min=1"`
}

// DissociateTokenNormalised is ready for a token-dissociate transaction.
type DissociateTokenNormalised struct {
	AccountID hedera.AccountID `json:"accountId"`
	TokenIDs  []hedera.TokenID `json:"tokenIds"`
}

// AirdropFungibleToken distributes a fungible token to many recipients.
type AirdropFungibleToken struct {
	TokenID         string            `json:"token_id" validate:"required"`
	SourceAccountID string            `json:"source_account_id,omitempty"`
	Recipients      []TransferEntry   `json:"recipients" validate:"required,min=1,dive"`
	Scheduling      *SchedulingParams `json:"scheduling_params,omitempty"`
}

// TokenTransfer is one signed base-unit movement of a token.
type TokenTransfer struct {
	AccountID hedera.AccountID `json:"accountId"`
	Amount    int64            `json:"amount"`
}

// AirdropFungibleTokenNormalised is the zero-sum token transfer list.
type AirdropFungibleTokenNormalised struct {
	TokenID    hedera.TokenID        `json:"tokenId"`
	Transfers  []TokenTransfer       `json:"tokenTransfers"`
	Scheduling *SchedulingNormalised `json:"-"`
}

// TransferFungibleToken moves a fungible token between accounts.
type TransferFungibleToken struct {
	TokenID         string            `json:"token_id" validate:"required"`
	SourceAccountID string            `json:"source_account_id,omitempty"`
	Transfers       []TransferEntry   `json:"transfers" validate:"required,min=1,dive"`
	TransactionMemo string            `json:"transaction_memo,omitempty"`
	Scheduling      *SchedulingParams `json:"scheduling_params,omitempty"`
}

// TransferFungibleTokenNormalised is the zero-sum token transfer list plus
// memo.
type TransferFungibleTokenNormalised struct {
	TokenID         hedera.TokenID        `json:"tokenId"`
	Transfers       []TokenTransfer       `json:"tokenTransfers"`
	TransactionMemo string                `json:"transactionMemo,omitempty"`
	Scheduling      *SchedulingNormalised `json:"-"`
}

// TransferFungibleTokenWithAllowance spends a previously approved fungible
// token allowance on behalf of the owner.
type TransferFungibleTokenWithAllowance struct {
	TokenID         string            `json:"token_id" validate:"required"`
	SourceAccountID string            `json:"source_account_id,omitempty" jsonschema:"description=Account of the allowance owner whose tokens are spent"`
	Transfers       []TransferEntry   `json:"transfers" validate:"required,min=1,dive"`
	TransactionMemo string            `json:"transaction_memo,omitempty"`
	Scheduling      *SchedulingParams `json:"scheduling_params,omitempty"`
}

// TransferFungibleTokenWithAllowanceNormalised is the approved zero-sum
// token transfer list.
type TransferFungibleTokenWithAllowanceNormalised struct {
	TokenID         hedera.TokenID        `json:"tokenId"`
	Transfers       []TokenTransfer       `json:"ftApprovedTransfers"`
	TransactionMemo string                `json:"transactionMemo,omitempty"`
	Scheduling      *SchedulingNormalised `json:"-"`
}

// NFTRecipientEntry names one serial and its receiver in an approved NFT
// transfer.
type NFTRecipientEntry struct {
	Recipient    string `json:"recipient" validate:"required"`
	SerialNumber int64  `json:"serial_number" validate:"required,gt=0"`
}

// TransferNonFungibleTokenWithAllowance spends an NFT allowance to move
// specific serials on behalf of the owner.
type TransferNonFungibleTokenWithAllowance struct {
	TokenID         string              `json:"token_id" validate:"required"`
	SourceAccountID string              `json:"source_account_id,omitempty" jsonschema:"description=Account of the allowance owner the serials move from"`
	Recipients      []NFTRecipientEntry `json:"recipients" validate:"required,min=1,dive"`
	TransactionMemo string              `json:"transaction_memo,omitempty"`
}

// NFTApprovedTransfer is one approved serial movement.
type NFTApprovedTransfer struct {
	Sender       hedera.AccountID `json:"senderAccountId"`
	Receiver     hedera.AccountID `json:"receiverAccountId"`
	SerialNumber int64            `json:"serialNumber"`
	IsApproval   bool             `json:"isApproval"`
}

// TransferNonFungibleTokenWithAllowanceNormalised is ready for an approved
// NFT transfer.
type TransferNonFungibleTokenWithAllowanceNormalised struct {
	TokenID         hedera.TokenID        `json:"tokenId"`
	Transfers       []NFTApprovedTransfer `json:"nftApprovedTransfers"`
	TransactionMemo string                `json:"transactionMemo,omitempty"`
}

// TransferNonFungibleToken moves specific serials of an NFT class.
type TransferNonFungibleToken struct {
	TokenID           string  `json:"token_id" validate:"required"`
	SenderAccountID   string  `json:"sender_account_id,omitempty"`
	ReceiverAccountID string  `json:"receiver_account_id" validate:"required"`
	SerialNumbers     []int64 `json:"serial_numbers" validate:"required,min=1"`
	TransactionMemo   string  `json:"transaction_memo,omitempty"`
}

// NFTTransfer is one serial movement.
type NFTTransfer struct {
	Sender       hedera.AccountID `json:"senderAccountId"`
	Receiver     hedera.AccountID `json:"receiverAccountId"`
	SerialNumber int64            `json:"serialNumber"`
}

// TransferNonFungibleTokenNormalised is ready for an NFT transfer.
type TransferNonFungibleTokenNormalised struct {
	TokenID         hedera.TokenID `json:"tokenId"`
	Transfers       []NFTTransfer  `json:"nftTransfers"`
	TransactionMemo string         `json:"transactionMemo,omitempty"`
}

// ApproveTokenAllowance pre-authorizes a spender for a fungible amount.
type ApproveTokenAllowance struct {
	OwnerAccountID   string          `json:"owner_account_id,omitempty"`
	SpenderAccountID string          `json:"spender_account_id" validate:"required"`
	TokenID          string          `json:"token_id" validate:"required"`
	Amount           decimal.Decimal `json:"amount" validate:"required"`
	TransactionMemo  string          `json:"transaction_memo,omitempty"`
}

// TokenAllowance is one owner/spender/token/base-amount entry.
type TokenAllowance struct {
	OwnerAccountID   hedera.AccountID `json:"ownerAccountId"`
	SpenderAccountID hedera.AccountID `json:"spenderAccountId"`
	TokenID          hedera.TokenID   `json:"tokenId"`
	Amount           int64            `json:"amount"`
}

// ApproveTokenAllowanceNormalised carries the token allowance entries.
type ApproveTokenAllowanceNormalised struct {
	Allowances      []TokenAllowance `json:"tokenAllowances"`
	TransactionMemo string           `json:"transactionMemo,omitempty"`
}

// DeleteTokenAllowance revokes fungible allowances for a set of tokens.
type DeleteTokenAllowance struct {
	OwnerAccountID   string   `json:"owner_account_id,omitempty"`
	SpenderAccountID string   `json:"spender_account_id" validate:"required"`
	TokenIDs         []string `json:"token_ids" validate:"required,min=1"`
	TransactionMemo  string   `json:"transaction_memo,omitempty"`
}

// ApproveNFTAllowance pre-authorizes a spender for specific serials.
type ApproveNFTAllowance struct {
	OwnerAccountID   string  `json:"owner_account_id,omitempty"`
	SpenderAccountID string  `json:"spender_account_id" validate:"required"`
	TokenID          string  `json:"token_id" validate:"required"`
	SerialNumbers    []int64 `json:"serial_numbers,omitempty" jsonschema:"description=Serials to approve; empty approves all serials"`
	AllSerials       bool    `json:"all_serials,omitempty"`
	TransactionMemo  string  `json:"transaction_memo,omitempty"`
}

// NFTAllowance is one owner/spender/token/serials entry. A nil spender with
// serials present revokes via wipe.
type NFTAllowance struct {
	OwnerAccountID   hedera.AccountID  `json:"ownerAccountId"`
	SpenderAccountID *hedera.AccountID `json:"spenderAccountId,omitempty"`
	TokenID          hedera.TokenID    `json:"tokenId"`
	SerialNumbers    []int64           `json:"serialNumbers,omitempty"`
	AllSerials       bool              `json:"allSerials,omitempty"`
}

// ApproveNFTAllowanceNormalised carries the NFT allowance entries.
type ApproveNFTAllowanceNormalised struct {
	Allowances      []NFTAllowance `json:"nftAllowances"`
	TransactionMemo string         `json:"transactionMemo,omitempty"`
}

// DeleteNFTAllowance revokes NFT allowances for specific serials.
type DeleteNFTAllowance struct {
	OwnerAccountID  string  `json:"owner_account_id,omitempty"`
	TokenID         string  `json:"token_id" validate:"required"`
	SerialNumbers   []int64 `json:"serial_numbers"`
	TransactionMemo string  `json:"transaction_memo,omitempty"`
}

// DeleteNFTAllowanceNormalised is the wipe list: (owner, token, serials)
// with no spender.
type DeleteNFTAllowanceNormalised struct {
	Wipe            []NFTAllowance `json:"nftWipe"`
	TransactionMemo string         `json:"transactionMemo,omitempty"`
}
