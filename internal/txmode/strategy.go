// Package txmode decides what happens to a built transaction: execute it
// now through the client, or freeze and serialize it so an external wallet
// can sign. The mode comes from the agent context and every tool goes
// through the same Handle entry point.
package txmode

import (
	"context"
	"encoding/json"

	"hedera-agent-go/internal/config"
	xerrors "hedera-agent-go/internal/errors"
	"hedera-agent-go/internal/hedera"
	"hedera-agent-go/internal/response"
)

// PostProcessor renders a human-readable summary from a consensus outcome.
type PostProcessor func(*response.RawTransactionOutcome) string

// Strategy handles a built transaction according to the agent mode.
type Strategy interface {
	Handle(ctx context.Context, tx *hedera.Transaction, client hedera.Client, agent *config.Context, post PostProcessor) (*response.ToolResponse, error)
}

// ForMode returns the strategy for an agent mode. Anything other than
// RETURN_BYTES executes immediately.
func ForMode(mode config.Mode) Strategy {
	if mode == config.ModeReturnBytes {
		return ReturnBytesStrategy{}
	}
	return ExecuteStrategy{}
}

// Handle routes a transaction through the strategy selected by the agent
// context.
func Handle(ctx context.Context, tx *hedera.Transaction, client hedera.Client, agent *config.Context, post PostProcessor) (*response.ToolResponse, error) {
	var mode config.Mode
	if agent != nil {
		mode = agent.Mode
	}
	return ForMode(mode).Handle(ctx, tx, client, agent, post)
}

// ExecuteStrategy submits the transaction and waits for its receipt.
type ExecuteStrategy struct{}

// Handle executes the transaction and summarizes the receipt. When no
// post-processor is given the summary is the indented JSON of the outcome.
func (ExecuteStrategy) Handle(ctx context.Context, tx *hedera.Transaction, client hedera.Client, agent *config.Context, post PostProcessor) (*response.ToolResponse, error) {
	if client == nil {
		return nil, xerrors.New(xerrors.CodeExecutionFailure, "no client available to execute the transaction")
	}
	receipt, err := client.Execute(ctx, tx)
	if err != nil {
		return nil, err
	}
	outcome := response.OutcomeFromReceipt(receipt)
	if post == nil {
		post = defaultPostProcess
	}
	return response.Executed(post(outcome), outcome), nil
}

func defaultPostProcess(outcome *response.RawTransactionOutcome) string {
	rendered, err := json.MarshalIndent(outcome.ToDict(), "", "  ")
	if err != nil {
		return outcome.Status
	}
	return string(rendered)
}

// ReturnBytesStrategy freezes the transaction under a fresh transaction id
// paid by the context account and serializes it for external signing.
type ReturnBytesStrategy struct{}

// Handle requires a context account to own the transaction id; without one
// there is nobody to sign as.
func (ReturnBytesStrategy) Handle(_ context.Context, tx *hedera.Transaction, _ hedera.Client, agent *config.Context, _ PostProcessor) (*response.ToolResponse, error) {
	if agent == nil || agent.AccountID == "" {
		return nil, xerrors.New(xerrors.CodeMissingAccountID,
			"Context account_id is required for RETURN_BYTES mode")
	}
	payer, err := hedera.ParseAccountID(agent.AccountID)
	if err != nil {
		return nil, err
	}
	if err := tx.Freeze(hedera.NewTransactionID(payer)); err != nil {
		return nil, err
	}
	data, err := tx.Bytes()
	if err != nil {
		return nil, err
	}
	return response.ReturnBytes("Transaction bytes ready for external signing.", data), nil
}
