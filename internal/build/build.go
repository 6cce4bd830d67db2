// Package build turns normalized parameter records into transactions. Each
// builder pairs the right body kind with its payload; operations that carry
// a scheduling block are wrapped into a schedule-create envelope here.
package build

import (
	"hedera-agent-go/internal/hedera"
	"hedera-agent-go/internal/params"
)

// wrapScheduled moves the inner body into a schedule-create envelope when a
// scheduling block is present.
func wrapScheduled(tx *hedera.Transaction, sched *params.SchedulingNormalised) *hedera.Transaction {
	if sched == nil {
		return tx
	}
	return hedera.NewTransaction(hedera.KindScheduleCreate, params.ScheduleCreateBody{
		InnerKind:     tx.Kind(),
		InnerBody:     tx.Body(),
		AdminKey:      sched.AdminKey,
		Payer:         sched.Payer,
		WaitForExpiry: sched.WaitForExpiry,
		Memo:          sched.Memo,
	})
}

// TransferHbar builds an hbar crypto-transfer transaction.
func TransferHbar(p *params.TransferHbarNormalised) *hedera.Transaction {
	tx := hedera.NewTransaction(hedera.KindTransferHbar, *p)
	return wrapScheduled(tx, p.Scheduling)
}

// TransferHbarWithAllowance builds an approved hbar transfer spending an
// existing allowance.
func TransferHbarWithAllowance(p *params.TransferHbarWithAllowanceNormalised) *hedera.Transaction {
	tx := hedera.NewTransaction(hedera.KindTransferHbarWithAllowance, *p)
	return wrapScheduled(tx, p.Scheduling)
}

// ApproveHbarAllowance builds an hbar allowance-approve transaction. The
// same body revokes when the amount is zero.
func ApproveHbarAllowance(p *params.ApproveHbarAllowanceNormalised) *hedera.Transaction {
	tx := hedera.NewTransaction(hedera.KindApproveHbarAllowance, *p)
	return wrapScheduled(tx, p.Scheduling)
}

// ApproveTokenAllowance builds a token allowance-approve transaction.
func ApproveTokenAllowance(p *params.ApproveTokenAllowanceNormalised) *hedera.Transaction {
	return hedera.NewTransaction(hedera.KindApproveTokenAllowance, *p)
}

// ApproveNFTAllowance builds an NFT allowance-approve transaction.
func ApproveNFTAllowance(p *params.ApproveNFTAllowanceNormalised) *hedera.Transaction {
	return hedera.NewTransaction(hedera.KindApproveNFTAllowance, *p)
}

// DeleteNFTAllowance builds the allowance wipe transaction.
func DeleteNFTAllowance(p *params.DeleteNFTAllowanceNormalised) *hedera.Transaction {
	return hedera.NewTransaction(hedera.KindDeleteNFTAllowance, *p)
}

// CreateFungibleToken builds a token-create transaction.
func CreateFungibleToken(p *params.CreateFungibleTokenNormalised) *hedera.Transaction {
	tx := hedera.NewTransaction(hedera.KindCreateFungibleToken, *p)
	return wrapScheduled(tx, p.Scheduling)
}

// CreateNonFungibleToken builds an NFT-class create transaction.
func CreateNonFungibleToken(p *params.CreateNonFungibleTokenNormalised) *hedera.Transaction {
	tx := hedera.NewTransaction(hedera.KindCreateNonFungibleToken, *p)
	return wrapScheduled(tx, p.Scheduling)
}

// UpdateToken builds a token-update transaction.
func UpdateToken(p *params.UpdateTokenNormalised) *hedera.Transaction {
	return hedera.NewTransaction(hedera.KindUpdateToken, *p)
}

// MintFungibleToken builds a supply-mint transaction.
func MintFungibleToken(p *params.MintFungibleTokenNormalised) *hedera.Transaction {
	return hedera.NewTransaction(hedera.KindMintFungibleToken, *p)
}

// MintNonFungibleToken builds a serial-mint transaction.
func MintNonFungibleToken(p *params.MintNonFungibleTokenNormalised) *hedera.Transaction {
	return hedera.NewTransaction(hedera.KindMintNonFungibleToken, *p)
}

// AssociateToken builds a token-associate transaction.
func AssociateToken(p *params.AssociateTokenNormalised) *hedera.Transaction {
	return hedera.NewTransaction(hedera.KindAssociateToken, *p)
}

// DissociateToken builds a token-dissociate transaction.
func DissociateToken(p *params.DissociateTokenNormalised) *hedera.Transaction {
	return hedera.NewTransaction(hedera.KindDissociateToken, *p)
}

// AirdropFungibleToken builds a token-airdrop transaction.
func AirdropFungibleToken(p *params.AirdropFungibleTokenNormalised) *hedera.Transaction {
	tx := hedera.NewTransaction(hedera.KindAirdropFungibleToken, *p)
	return wrapScheduled(tx, p.Scheduling)
}

// TransferFungibleToken builds a token crypto-transfer transaction.
func TransferFungibleToken(p *params.TransferFungibleTokenNormalised) *hedera.Transaction {
	tx := hedera.NewTransaction(hedera.KindTransferFungibleToken, *p)
	return wrapScheduled(tx, p.Scheduling)
}

// TransferFungibleTokenWithAllowance builds an approved token transfer
// spending an existing allowance.
func TransferFungibleTokenWithAllowance(p *params.TransferFungibleTokenWithAllowanceNormalised) *hedera.Transaction {
	tx := hedera.NewTransaction(hedera.KindTransferFungibleTokenWithAllowance, *p)
	return wrapScheduled(tx, p.Scheduling)
}

// TransferNonFungibleTokenWithAllowance builds an approved NFT transfer.
func TransferNonFungibleTokenWithAllowance(p *params.TransferNonFungibleTokenWithAllowanceNormalised) *hedera.Transaction {
	return hedera.NewTransaction(hedera.KindTransferNonFungibleTokenWithAllowance, *p)
}

// TransferNonFungibleToken builds an NFT transfer transaction.
func TransferNonFungibleToken(p *params.TransferNonFungibleTokenNormalised) *hedera.Transaction {
	return hedera.NewTransaction(hedera.KindTransferNonFungibleToken, *p)
}

// CreateTopic builds a consensus topic-create transaction.
func CreateTopic(p *params.CreateTopicNormalised) *hedera.Transaction {
	tx := hedera.NewTransaction(hedera.KindCreateTopic, *p)
	return wrapScheduled(tx, p.Scheduling)
}

// UpdateTopic builds a topic-update transaction.
func UpdateTopic(p *params.UpdateTopicNormalised) *hedera.Transaction {
	tx := hedera.NewTransaction(hedera.KindUpdateTopic, *p)
	return wrapScheduled(tx, p.Scheduling)
}

// DeleteTopic builds a topic-delete transaction.
func DeleteTopic(p *params.DeleteTopicNormalised) *hedera.Transaction {
	return hedera.NewTransaction(hedera.KindDeleteTopic, *p)
}

// SubmitTopicMessage builds a consensus message-submit transaction.
func SubmitTopicMessage(p *params.SubmitTopicMessageNormalised) *hedera.Transaction {
	tx := hedera.NewTransaction(hedera.KindSubmitTopicMessage, *p)
	return wrapScheduled(tx, p.Scheduling)
}

// CreateAccount builds an account-create transaction.
func CreateAccount(p *params.CreateAccountNormalised) *hedera.Transaction {
	return hedera.NewTransaction(hedera.KindCreateAccount, *p)
}

// UpdateAccount builds an account-update transaction.
func UpdateAccount(p *params.UpdateAccountNormalised) *hedera.Transaction {
	return hedera.NewTransaction(hedera.KindUpdateAccount, *p)
}

// DeleteAccount builds an account-delete transaction.
func DeleteAccount(p *params.DeleteAccountNormalised) *hedera.Transaction {
	return hedera.NewTransaction(hedera.KindDeleteAccount, *p)
}

// ContractExecute builds a contract-call transaction.
func ContractExecute(p *params.ContractExecuteNormalised) *hedera.Transaction {
	return hedera.NewTransaction(hedera.KindContractExecute, *p)
}

// SignSchedule builds a schedule-sign transaction.
func SignSchedule(p *params.SignScheduleNormalised) *hedera.Transaction {
	return hedera.NewTransaction(hedera.KindScheduleSign, *p)
}

// DeleteSchedule builds a schedule-delete transaction.
func DeleteSchedule(p *params.DeleteScheduleNormalised) *hedera.Transaction {
	return hedera.NewTransaction(hedera.KindScheduleDelete, *p)
}
