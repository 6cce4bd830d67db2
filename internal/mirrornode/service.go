// Package mirrornode reads eventually-consistent ledger state from a Hedera
// mirror node over its public REST API. All lookups are context-aware and
// return NOT_FOUND errors for missing entities.
package mirrornode

import (
	"context"
)

// Service is the read-only lookup surface consumed by normalizers and query
// tools.
type Service interface {
	TokenInfo(ctx context.Context, tokenID string) (*TokenInfo, error)
	Account(ctx context.Context, idOrAlias string) (*AccountInfo, error)
	ContractInfo(ctx context.Context, idOrEvmAddress string) (*ContractInfo, error)
	TopicInfo(ctx context.Context, topicID string) (*TopicInfo, error)
	TopicMessages(ctx context.Context, query TopicMessagesQuery) (*TopicMessagesPage, error)
	TransactionRecord(ctx context.Context, transactionID string, nonce *int) (*TransactionsPage, error)
	PendingAirdrops(ctx context.Context, accountID string) (*TokenAirdropsPage, error)
	ExchangeRate(ctx context.Context, timestamp string) (*ExchangeRate, error)
}

// BaseURLForNetwork returns the public mirror node endpoint for a named
// network, or empty when the network has no public mirror.
func BaseURLForNetwork(network string) string {
	switch network {
	case "mainnet":
		return "https://mainnet-public.mirrornode.hedera.com/api/v1"
	case "testnet":
		return "https://testnet.mirrornode.hedera.com/api/v1"
	case "previewnet":
		return "https://previewnet.mirrornode.hedera.com/api/v1"
	default:
		return ""
	}
}

// ForNetwork returns the injected service when present, otherwise a REST
// client for the named network.
func ForNetwork(injected Service, network string) Service {
	if injected != nil {
		return injected
	}
	return NewRESTClient(BaseURLForNetwork(network))
}
