package params

// AccountQuery fetches mirror-node state for one account.
type AccountQuery struct {
	AccountID string `json:"account_id,omitempty" jsonschema:"description=Account to look up; defaults to the operator"`
}

// HbarBalanceQuery fetches an account's hbar balance.
type HbarBalanceQuery struct {
	AccountID string `json:"account_id,omitempty" jsonschema:"description=Account to look up; defaults to the operator"`
}

// TokenBalancesQuery fetches an account's token balances.
type TokenBalancesQuery struct {
	AccountID string `json:"account_id,omitempty" jsonschema:"description=Account to look up; defaults to the operator"`
	TokenID   string `json:"token_id,omitempty" jsonschema:"description=Restrict the result to one token"`
}

// TokenInfoQuery fetches mirror-node metadata for one token.
type TokenInfoQuery struct {
	TokenID string `json:"token_id" validate:"required"`
}

// TopicInfoQuery fetches mirror-node metadata for one topic.
type TopicInfoQuery struct {
	TopicID string `json:"topic_id" validate:"required"`
}

// TopicMessagesQuery fetches messages from a topic, optionally bounded by
// consensus timestamps.
type TopicMessagesQuery struct {
	TopicID        string `json:"topic_id" validate:"required"`
	StartTimestamp string `json:"start_timestamp,omitempty" jsonschema:"description=Inclusive lower consensus timestamp bound"`
	EndTimestamp   string `json:"end_timestamp,omitempty" jsonschema:"description=Inclusive upper consensus timestamp bound"`
	Limit          int    `json:"limit,omitempty" jsonschema:"description=Maximum number of messages to return"`
}

// ContractInfoQuery fetches mirror-node metadata for one contract.
type ContractInfoQuery struct {
	ContractID string `json:"contract_id" validate:"required" jsonschema:"description=Contract id or EVM address"`
}

// TransactionRecordQuery fetches the record of a submitted transaction.
type TransactionRecordQuery struct {
	TransactionID string `json:"transaction_id" validate:"required" jsonschema:"description=Transaction id in payer@seconds.nanos or payer-seconds-nanos form"`
	Nonce         *int   `json:"nonce,omitempty"`
}

// PendingAirdropQuery fetches the airdrops an account has not yet claimed.
type PendingAirdropQuery struct {
	AccountID string `json:"account_id,omitempty" jsonschema:"description=Account to look up; defaults to the operator"`
}

// ExchangeRateQuery fetches the network hbar/USD exchange rate.
type ExchangeRateQuery struct {
	Timestamp string `json:"timestamp,omitempty" jsonschema:"description=Consensus timestamp to query the rate at; defaults to the current rate"`
}
