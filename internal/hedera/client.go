package hedera

import "context"

// Status is a consensus status code as reported in a transaction receipt.
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusUnknown Status = "UNKNOWN"
)

// IsSuccess reports whether the receipt reached consensus successfully.
func (s Status) IsSuccess() bool { return s == StatusSuccess }

// Receipt summarizes the consensus outcome of an executed transaction.
// Entity id fields are populated only when the transaction created the
// corresponding entity.
type Receipt struct {
	Status        Status
	TransactionID TransactionID
	AccountID     *AccountID
	TokenID       *TokenID
	TopicID       *TopicID
	ScheduleID    *ScheduleID
	ContractID    *ContractID
	SerialNumbers []int64
}

// Client is the narrow surface of a Hedera consensus client the kit depends
// on. Signing, node selection and receipt polling stay behind it.
type Client interface {
	// Network names the ledger the client is connected to ("mainnet",
	// "testnet", "previewnet" or a local network name).
	Network() string
	// OperatorAccountID returns the configured operator account, if any.
	OperatorAccountID() (AccountID, bool)
	// OperatorPublicKey returns the operator's public key, if known.
	OperatorPublicKey() (PublicKey, bool)
	// Execute submits a transaction, waits for the receipt and returns it.
	// A non-success consensus status is returned as an error.
	Execute(ctx context.Context, tx *Transaction) (*Receipt, error)
}
