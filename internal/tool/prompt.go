package tool

import (
	"fmt"
	"strings"

	"hedera-agent-go/internal/config"
)

// ContextSnippet renders the agent context block prepended to every tool
// description so the model knows which account it acts for.
func ContextSnippet(agent *config.Context) string {
	if agent == nil || agent.AccountID == "" {
		return "No default account is configured; account parameters must be passed explicitly."
	}
	return fmt.Sprintf("The connected account is %s. Account parameters left out default to it.", agent.AccountID)
}

// ParameterUsageInstructions is appended to every tool description.
func ParameterUsageInstructions() string {
	return strings.TrimSpace(`
Only pass the parameters the user asked for; optional parameters left out fall back to sensible defaults.
Identifiers use the shard.realm.num form (for example 0.0.1234) unless the parameter says otherwise.`)
}

// AccountParameterDescription describes an optional account parameter that
// defaults to the connected account.
func AccountParameterDescription(name string, agent *config.Context) string {
	if agent != nil && agent.AccountID != "" {
		return fmt.Sprintf("- %s (str, optional): defaults to the connected account %s", name, agent.AccountID)
	}
	return fmt.Sprintf("- %s (str, optional): defaults to the operator account", name)
}

// ScheduledTransactionParamsDescription documents the shared scheduling
// block on tools that support deferred execution.
func ScheduledTransactionParamsDescription() string {
	return strings.TrimSpace(`
- scheduling_params (object, optional): set {"is_scheduled": true} to wrap the operation into a scheduled
  transaction that executes once all required signatures arrive. Optional fields: admin_key (true or an
  encoded public key), payer_account_id, wait_for_expiry, schedule_memo.`)
}
