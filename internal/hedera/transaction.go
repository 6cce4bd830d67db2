package hedera

import (
	"encoding/json"

	xerrors "hedera-agent-go/internal/errors"
)

// Kind discriminates the transaction body carried by a Transaction.
type Kind string

const (
	KindTransferHbar                          Kind = "TRANSFER_HBAR"
	KindTransferHbarWithAllowance             Kind = "TRANSFER_HBAR_WITH_ALLOWANCE"
	KindApproveHbarAllowance                  Kind = "APPROVE_HBAR_ALLOWANCE"
	KindApproveTokenAllowance                 Kind = "APPROVE_TOKEN_ALLOWANCE"
	KindApproveNFTAllowance                   Kind = "APPROVE_NFT_ALLOWANCE"
	KindDeleteNFTAllowance                    Kind = "DELETE_NFT_ALLOWANCE"
	KindCreateFungibleToken                   Kind = "CREATE_FUNGIBLE_TOKEN"
	KindCreateNonFungibleToken                Kind = "CREATE_NON_FUNGIBLE_TOKEN"
	KindUpdateToken                           Kind = "UPDATE_TOKEN"
	KindMintFungibleToken                     Kind = "MINT_FUNGIBLE_TOKEN"
	KindMintNonFungibleToken                  Kind = "MINT_NON_FUNGIBLE_TOKEN"
	KindAssociateToken                        Kind = "ASSOCIATE_TOKEN"
	KindDissociateToken                       Kind = "DISSOCIATE_TOKEN"
	KindAirdropFungibleToken                  Kind = "AIRDROP_FUNGIBLE_TOKEN"
	KindTransferFungibleToken                 Kind = "TRANSFER_FUNGIBLE_TOKEN"
	KindTransferFungibleTokenWithAllowance    Kind = "TRANSFER_FUNGIBLE_TOKEN_WITH_ALLOWANCE"
	KindTransferNonFungibleToken              Kind = "TRANSFER_NON_FUNGIBLE_TOKEN"
	KindTransferNonFungibleTokenWithAllowance Kind = "TRANSFER_NON_FUNGIBLE_TOKEN_WITH_ALLOWANCE"
	KindCreateTopic                           Kind = "CREATE_TOPIC"
	KindUpdateTopic                           Kind = "UPDATE_TOPIC"
	KindDeleteTopic                           Kind = "DELETE_TOPIC"
	KindSubmitTopicMessage                    Kind = "SUBMIT_TOPIC_MESSAGE"
	KindCreateAccount                         Kind = "CREATE_ACCOUNT"
	KindUpdateAccount                         Kind = "UPDATE_ACCOUNT"
	KindDeleteAccount                         Kind = "DELETE_ACCOUNT"
	KindContractExecute                       Kind = "CONTRACT_EXECUTE"
	KindScheduleCreate                        Kind = "SCHEDULE_CREATE"
	KindScheduleSign                          Kind = "SCHEDULE_SIGN"
	KindScheduleDelete                        Kind = "SCHEDULE_DELETE"
)

// Transaction pairs a body kind with its normalized payload. It is built by
// the tool layer from normalized parameters and either executed through a
// Client or frozen and serialized for external signing.
type Transaction struct {
	kind   Kind
	body   any
	frozen bool
	txID   TransactionID
}

// NewTransaction wraps a normalized body under the given kind.
func NewTransaction(kind Kind, body any) *Transaction {
	return &Transaction{kind: kind, body: body}
}

// Kind returns the body discriminator.
func (t *Transaction) Kind() Kind { return t.kind }

// Body returns the normalized payload.
func (t *Transaction) Body() any { return t.body }

// Freeze pins the transaction id, after which the signable bytes are stable.
func (t *Transaction) Freeze(id TransactionID) error {
	if t.frozen {
		return xerrors.New(xerrors.CodeInvalidParameters, "transaction is already frozen")
	}
	t.txID = id
	t.frozen = true
	return nil
}

// IsFrozen reports whether a transaction id has been assigned.
func (t *Transaction) IsFrozen() bool { return t.frozen }

// TransactionID returns the assigned id once frozen.
func (t *Transaction) TransactionID() (TransactionID, bool) {
	return t.txID, t.frozen
}

type signableBody struct {
	TransactionID string `json:"transactionId"`
	Kind          Kind   `json:"kind"`
	Body          any    `json:"body"`
}

// Bytes serializes the frozen transaction into its signable wire form.
// The encoding is the canonical JSON of the frozen body; external signers
// sign exactly these bytes.
func (t *Transaction) Bytes() ([]byte, error) {
	if !t.frozen {
		return nil, xerrors.New(xerrors.CodeInvalidParameters, "transaction must be frozen before serialization")
	}
	return json.Marshal(signableBody{
		TransactionID: t.txID.String(),
		Kind:          t.kind,
		Body:          t.body,
	})
}
