package txmode

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"hedera-agent-go/internal/config"
	xerrors "hedera-agent-go/internal/errors"
	"hedera-agent-go/internal/hedera"
	"hedera-agent-go/internal/response"
)

type fakeClient struct {
	executed int
	receipt  *hedera.Receipt
	err      error
}

func (c *fakeClient) Network() string { return "testnet" }

func (c *fakeClient) OperatorAccountID() (hedera.AccountID, bool) { return hedera.AccountID{}, false }

func (c *fakeClient) OperatorPublicKey() (hedera.PublicKey, bool) { return hedera.PublicKey{}, false }

func (c *fakeClient) Execute(ctx context.Context, tx *hedera.Transaction) (*hedera.Receipt, error) {
	c.executed++
	return c.receipt, c.err
}

func TestForModeSelection(t *testing.T) {
	if _, ok := ForMode(config.ModeReturnBytes).(ReturnBytesStrategy); !ok {
		t.Fatal("RETURN_BYTES should select the bytes strategy")
	}
	if _, ok := ForMode(config.ModeAutonomous).(ExecuteStrategy); !ok {
		t.Fatal("AUTONOMOUS should select the execute strategy")
	}
	if _, ok := ForMode("").(ExecuteStrategy); !ok {
		t.Fatal("unset mode should execute")
	}
}

func TestExecuteStrategyRunsTransaction(t *testing.T) {
	topicID, _ := hedera.ParseTopicID("0.0.123")
	client := &fakeClient{receipt: &hedera.Receipt{
		Status:        hedera.StatusSuccess,
		TransactionID: hedera.TransactionID{AccountID: hedera.AccountID{Num: 7}},
		TopicID:       &topicID,
	}}
	tx := hedera.NewTransaction(hedera.KindCreateTopic, map[string]string{})

	resp, err := Handle(context.Background(), tx, client, &config.Context{}, func(outcome *response.RawTransactionOutcome) string {
		return "Topic created: " + outcome.TopicID.String()
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if client.executed != 1 {
		t.Fatalf("executed %d times", client.executed)
	}
	if resp.Type != response.TypeExecutedTransaction {
		t.Fatalf("type = %s", resp.Type)
	}
	if resp.HumanMessage != "Topic created: 0.0.123" {
		t.Fatalf("human message = %q", resp.HumanMessage)
	}
}

func TestExecuteStrategyWithoutClient(t *testing.T) {
	tx := hedera.NewTransaction(hedera.KindCreateTopic, map[string]string{})
	_, err := Handle(context.Background(), tx, nil, &config.Context{}, nil)
	if err == nil {
		t.Fatal("expected error without a client")
	}
	if !xerrors.IsCode(err, xerrors.CodeExecutionFailure) {
		t.Fatalf("code = %s", xerrors.CodeOf(err))
	}
}

func TestExecuteStrategyDefaultSummaryIsJSON(t *testing.T) {
	client := &fakeClient{receipt: &hedera.Receipt{
		Status:        hedera.StatusSuccess,
		TransactionID: hedera.TransactionID{AccountID: hedera.AccountID{Num: 7}},
	}}
	tx := hedera.NewTransaction(hedera.KindTransferHbar, map[string]string{})

	resp, err := Handle(context.Background(), tx, client, &config.Context{}, nil)
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(resp.HumanMessage), &decoded); err != nil {
		t.Fatalf("default summary should be JSON: %v", err)
	}
	if decoded["status"] != "SUCCESS" {
		t.Fatalf("status = %v", decoded["status"])
	}
}

func TestReturnBytesStrategyRequiresContextAccount(t *testing.T) {
	tx := hedera.NewTransaction(hedera.KindTransferHbar, map[string]string{})

	for _, agent := range []*config.Context{nil, {Mode: config.ModeReturnBytes}} {
		_, err := Handle(context.Background(), tx, nil, agent, nil)
		if agent == nil {
			// a nil agent falls back to execute mode, which fails on the
			// missing client instead
			if !xerrors.IsCode(err, xerrors.CodeExecutionFailure) {
				t.Fatalf("nil agent: code = %s", xerrors.CodeOf(err))
			}
			continue
		}
		if err == nil {
			t.Fatal("expected error without a context account")
		}
		if !strings.Contains(err.Error(), "Context account_id is required for RETURN_BYTES mode") {
			t.Fatalf("unexpected message: %v", err)
		}
		if !xerrors.IsCode(err, xerrors.CodeMissingAccountID) {
			t.Fatalf("code = %s", xerrors.CodeOf(err))
		}
	}
}

func TestReturnBytesStrategyFreezesAndSerializes(t *testing.T) {
	agent := &config.Context{AccountID: "0.0.90", Mode: config.ModeReturnBytes}
	tx := hedera.NewTransaction(hedera.KindTransferHbar, map[string]any{"memo": "pay"})
	client := &fakeClient{}

	resp, err := Handle(context.Background(), tx, client, agent, nil)
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if client.executed != 0 {
		t.Fatal("RETURN_BYTES must not execute the transaction")
	}
	if resp.Type != response.TypeReturnBytes {
		t.Fatalf("type = %s", resp.Type)
	}
	if !tx.IsFrozen() {
		t.Fatal("transaction should be frozen")
	}
	var decoded struct {
		TransactionID string `json:"transactionId"`
	}
	if err := json.Unmarshal(resp.Bytes, &decoded); err != nil {
		t.Fatalf("unmarshal bytes: %v", err)
	}
	if !strings.HasPrefix(decoded.TransactionID, "0.0.90-") {
		t.Fatalf("payer of transaction id = %s, want the context account", decoded.TransactionID)
	}
}
