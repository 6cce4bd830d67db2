package normalize

import (
	"context"

	"hedera-agent-go/internal/hedera"
	"hedera-agent-go/internal/mirrornode"
)

const (
	userKeyHex  = "e0c8ec2758a5879ffac226a13c0c516b799e72e35141a0dd828f94d37988a4b7"
	otherKeyHex = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
)

type fakeClient struct {
	operator    hedera.AccountID
	hasOperator bool
	key         hedera.PublicKey
	hasKey      bool
}

func (c *fakeClient) Network() string { return "testnet" }

func (c *fakeClient) OperatorAccountID() (hedera.AccountID, bool) {
	return c.operator, c.hasOperator
}

func (c *fakeClient) OperatorPublicKey() (hedera.PublicKey, bool) {
	return c.key, c.hasKey
}

func (c *fakeClient) Execute(ctx context.Context, tx *hedera.Transaction) (*hedera.Receipt, error) {
	return nil, nil
}

type fakeMirror struct {
	token    *mirrornode.TokenInfo
	account  *mirrornode.AccountInfo
	contract *mirrornode.ContractInfo
	err      error
}

func (m *fakeMirror) TokenInfo(ctx context.Context, tokenID string) (*mirrornode.TokenInfo, error) {
	return m.token, m.err
}

func (m *fakeMirror) Account(ctx context.Context, idOrAlias string) (*mirrornode.AccountInfo, error) {
	return m.account, m.err
}

func (m *fakeMirror) ContractInfo(ctx context.Context, idOrEvmAddress string) (*mirrornode.ContractInfo, error) {
	return m.contract, m.err
}

func (m *fakeMirror) TopicInfo(ctx context.Context, topicID string) (*mirrornode.TopicInfo, error) {
	return nil, m.err
}

func (m *fakeMirror) TopicMessages(ctx context.Context, query mirrornode.TopicMessagesQuery) (*mirrornode.TopicMessagesPage, error) {
	return nil, m.err
}

func (m *fakeMirror) TransactionRecord(ctx context.Context, transactionID string, nonce *int) (*mirrornode.TransactionsPage, error) {
	return nil, m.err
}

func (m *fakeMirror) PendingAirdrops(ctx context.Context, accountID string) (*mirrornode.TokenAirdropsPage, error) {
	return nil, m.err
}

func (m *fakeMirror) ExchangeRate(ctx context.Context, timestamp string) (*mirrornode.ExchangeRate, error) {
	return nil, m.err
}

func mustKey(s string) hedera.PublicKey {
	key, err := hedera.ParsePublicKey(s)
	if err != nil {
		panic(err)
	}
	return key
}
