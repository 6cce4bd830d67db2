// Package plugins assembles the concrete tool bundles: account and hbar
// operations, token operations, consensus topics, EVM contract calls,
// read-only queries and schedule management. Every tool follows the same
// path: decode, normalize, build, then hand the transaction to the
// execution strategy. Failures never escape as errors; they come back as
// failure responses with a "Failed to ..." message.
package plugins

import (
	"context"
	"fmt"

	"hedera-agent-go/internal/config"
	"hedera-agent-go/internal/hedera"
	"hedera-agent-go/internal/mirrornode"
	"hedera-agent-go/internal/response"
	"hedera-agent-go/internal/tool"
	"hedera-agent-go/internal/txmode"
	"hedera-agent-go/pkg/logger"
	"hedera-agent-go/pkg/plugin"
)

// All returns every core plugin bundle.
func All() []plugin.Plugin {
	return []plugin.Plugin{
		Account(),
		Token(),
		Consensus(),
		EVM(),
		Queries(),
		Schedule(),
	}
}

// describe renders the shared description scaffold used by every tool:
// context snippet, summary, parameter list, usage instructions.
func describe(agent *config.Context, summary, parameters string) string {
	return fmt.Sprintf("%s\n\n%s\n\nParameters:\n%s\n\n%s",
		tool.ContextSnippet(agent), summary, parameters, tool.ParameterUsageInstructions())
}

// fail turns an error into the uniform failure response.
func fail(action string, err error) *response.ToolResponse {
	message := fmt.Sprintf("Failed to %s: %v", action, err)
	logger.Named("plugins").Warn("tool failed", "action", action, "error", err)
	return response.Failure(message)
}

// runTransaction routes a built transaction through the mode strategy.
func runTransaction(ctx context.Context, client hedera.Client, agent *config.Context, tx *hedera.Transaction, action string, post txmode.PostProcessor) *response.ToolResponse {
	resp, err := txmode.Handle(ctx, tx, client, agent, post)
	if err != nil {
		return fail(action, err)
	}
	return resp
}

// successMessage renders the standard executed-transaction summary, with a
// schedule-aware variant when the receipt carries a schedule id.
func successMessage(text string) txmode.PostProcessor {
	return func(outcome *response.RawTransactionOutcome) string {
		if outcome.ScheduleID != nil {
			return fmt.Sprintf("Scheduled transaction created successfully.\nTransaction ID: %s\nSchedule ID: %s",
				outcome.TransactionID, outcome.ScheduleID)
		}
		return fmt.Sprintf("%s\nTransaction ID: %s", text, outcome.TransactionID)
	}
}

/// mirrorFor picks the mirror service: the injected one when the context
// carries it, otherwise the public mirror of the client's network.
func mirrorFor(agent *config.Context, client hedera.Client) mirrornode.Service {
	var injected mirrornode.Service
	if agent != nil {
		injected = agent.Mirror
	}
	network := ""
	if client != nil {
		network = client.Network()
	}
	return mirrornode.ForNetwork(injected, network)
}
