package plugins

import (
	"context"
	"encoding/json"
	"fmt"

	"hedera-agent-go/internal/build"
	"hedera-agent-go/internal/config"
	"hedera-agent-go/internal/hedera"
	"hedera-agent-go/internal/normalize"
	"hedera-agent-go/internal/params"
	"hedera-agent-go/internal/response"
	"hedera-agent-go/internal/tool"
	"hedera-agent-go/pkg/plugin"
)

// Tool methods exposed by the account plugin.
const (
	TransferHbarTool              = "transfer_hbar_tool"
	TransferHbarWithAllowanceTool = "transfer_hbar_with_allowance_tool"
	CreateAccountTool             = "create_account_tool"
	UpdateAccountTool             = "update_account_tool"
	DeleteAccountTool             = "delete_account_tool"
	ApproveHbarAllowanceTool      = "approve_hbar_allowance_tool"
	DeleteHbarAllowanceTool       = "delete_hbar_allowance_tool"
)

// Account bundles account lifecycle, hbar transfer and hbar allowance tools.
func Account() plugin.Plugin {
	return plugin.Plugin{
		Name:        "core-account-plugin",
		Version:     "1.0.0",
		Description: "Account lifecycle, HBAR transfers and HBAR allowances",
		Tools: func(agent *config.Context) []*tool.Tool {
			return []*tool.Tool{
				transferHbarTool(agent),
				transferHbarWithAllowanceTool(agent),
				createAccountTool(agent),
				updateAccountTool(agent),
				deleteAccountTool(agent),
				approveHbarAllowanceTool(agent),
				deleteHbarAllowanceTool(agent),
			}
		},
	}
}

func transferHbarTool(agent *config.Context) *tool.Tool {
	description := fmt.Sprintf(`%s

This tool transfers HBAR from one account to one or more recipients.

Parameters:
%s
- transfers (list, required): entries of {account_id, amount} with amounts in HBAR
- transaction_memo (str, optional): memo recorded with the transfer
%s

%s`,
		tool.ContextSnippet(agent),
		tool.AccountParameterDescription("source_account_id", agent),
		tool.ScheduledTransactionParamsDescription(),
		tool.ParameterUsageInstructions())

	return &tool.Tool{
		Method:      TransferHbarTool,
		Name:        "Transfer HBAR",
		Description: description,
		Parameters:  params.Schema(params.TransferHbar{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.TransferHbar](raw)
			if err != nil {
				return fail("transfer HBAR", err)
			}
			normalised, err := normalize.TransferHbar(p, agent, client)
			if err != nil {
				return fail("transfer HBAR", err)
			}
			return runTransaction(ctx, client, agent, build.TransferHbar(normalised),
				"transfer HBAR", successMessage("HBAR successfully transferred."))
		},
	}
}

func transferHbarWithAllowanceTool(agent *config.Context) *tool.Tool {
	description := fmt.Sprintf(`%s

This tool spends a previously approved HBAR allowance, transferring from the owner's balance to one or more recipients.

Parameters:
- source_account_id (str, required): the allowance owner whose balance is spent
- transfers (list, required): entries of {account_id, amount} with amounts in HBAR
- transaction_memo (str, optional): memo recorded with the transfer
%s

%s`,
		tool.ContextSnippet(agent),
		tool.ScheduledTransactionParamsDescription(),
		tool.ParameterUsageInstructions())

	return &tool.Tool{
		Method:      TransferHbarWithAllowanceTool,
		Name:        "Transfer HBAR With Allowance",
		Description: description,
		Parameters:  params.Schema(params.TransferHbarWithAllowance{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.TransferHbarWithAllowance](raw)
			if err != nil {
				return fail("transfer HBAR with allowance", err)
			}
			normalised, err := normalize.TransferHbarWithAllowance(p, agent, client)
			if err != nil {
				return fail("transfer HBAR with allowance", err)
			}
			return runTransaction(ctx, client, agent, build.TransferHbarWithAllowance(normalised),
				"transfer HBAR with allowance", successMessage("HBAR successfully transferred with allowance."))
		},
	}
}

func createAccountTool(agent *config.Context) *tool.Tool {
	description := fmt.Sprintf(`%s

This tool creates a new Hedera account.

Parameters:
- public_key (str, optional): encoded public key for the new account; defaults to the caller's key
- initial_balance (number, optional): starting balance in HBAR
- account_memo (str, optional): memo attached to the account
- max_automatic_token_associations (int, optional)

%s`,
		tool.ContextSnippet(agent),
		tool.ParameterUsageInstructions())

	return &tool.Tool{
		Method:      CreateAccountTool,
		Name:        "Create Account",
		Description: description,
		Parameters:  params.Schema(params.CreateAccount{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.CreateAccount](raw)
			if err != nil {
				return fail("create account", err)
			}
			normalised, err := normalize.CreateAccount(p, agent, client)
			if err != nil {
				return fail("create account", err)
			}
			return runTransaction(ctx, client, agent, build.CreateAccount(normalised),
				"create account", func(outcome *response.RawTransactionOutcome) string {
					if outcome.AccountID != nil {
						return fmt.Sprintf("Account created successfully.\nAccount ID: %s\nTransaction ID: %s",
							outcome.AccountID, outcome.TransactionID)
					}
					return fmt.Sprintf("Account created successfully.\nTransaction ID: %s", outcome.TransactionID)
				})
		},
	}
}

func updateAccountTool(agent *config.Context) *tool.Tool {
	description := fmt.Sprintf(`%s

This tool updates mutable properties of an existing account. Only provided fields change.

Parameters:
%s
- account_memo (str, optional)
- max_automatic_token_associations (int, optional)
- decline_staking_reward (bool, optional)

%s`,
		tool.ContextSnippet(agent),
		tool.AccountParameterDescription("account_id", agent),
		tool.ParameterUsageInstructions())

	return &tool.Tool{
		Method:      UpdateAccountTool,
		Name:        "Update Account",
		Description: description,
		Parameters:  params.Schema(params.UpdateAccount{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.UpdateAccount](raw)
			if err != nil {
				return fail("update account", err)
			}
			normalised, err := normalize.UpdateAccount(p, agent, client)
			if err != nil {
				return fail("update account", err)
			}
			return runTransaction(ctx, client, agent, build.UpdateAccount(normalised),
				"update account", successMessage("Account updated successfully."))
		},
	}
}

func deleteAccountTool(agent *config.Context) *tool.Tool {
	description := fmt.Sprintf(`%s

This tool deletes an account and sweeps its remaining balance to another account.

Parameters:
- account_id (str, required): account to delete, as an explicit shard.realm.num address
%s

%s`,
		tool.ContextSnippet(agent),
		tool.AccountParameterDescription("transfer_account_id", agent),
		tool.ParameterUsageInstructions())

	return &tool.Tool{
		Method:      DeleteAccountTool,
		Name:        "Delete Account",
		Description: description,
		Parameters:  params.Schema(params.DeleteAccount{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.DeleteAccount](raw)
			if err != nil {
				return fail("delete account", err)
			}
			normalised, err := normalize.DeleteAccount(p, agent, client)
			if err != nil {
				return fail("delete account", err)
			}
			return runTransaction(ctx, client, agent, build.DeleteAccount(normalised),
				"delete account", successMessage("Account deleted successfully."))
		},
	}
}

func approveHbarAllowanceTool(agent *config.Context) *tool.Tool {
	description := fmt.Sprintf(`%s

This tool approves an HBAR allowance so a spender can transfer from the owner's balance.

Parameters:
%s
- spender_account_id (str, required)
- amount (number, required): allowance in HBAR
- transaction_memo (str, optional)
%s

%s`,
		tool.ContextSnippet(agent),
		tool.AccountParameterDescription("owner_account_id", agent),
		tool.ScheduledTransactionParamsDescription(),
		tool.ParameterUsageInstructions())

	return &tool.Tool{
		Method:      ApproveHbarAllowanceTool,
		Name:        "Approve HBAR Allowance",
		Description: description,
		Parameters:  params.Schema(params.ApproveHbarAllowance{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.ApproveHbarAllowance](raw)
			if err != nil {
				return fail("approve HBAR allowance", err)
			}
			normalised, err := normalize.ApproveHbarAllowance(p, agent, client)
			if err != nil {
				return fail("approve HBAR allowance", err)
			}
			return runTransaction(ctx, client, agent, build.ApproveHbarAllowance(normalised),
				"approve HBAR allowance", successMessage("HBAR allowance approved successfully."))
		},
	}
}

func deleteHbarAllowanceTool(agent *config.Context) *tool.Tool {
	description := fmt.Sprintf(`%s

This tool revokes a previously approved HBAR allowance by setting it to zero.

Parameters:
%s
- spender_account_id (str, required)
- transaction_memo (str, optional)

%s`,
		tool.ContextSnippet(agent),
		tool.AccountParameterDescription("owner_account_id", agent),
		tool.ParameterUsageInstructions())

	return &tool.Tool{
		Method:      DeleteHbarAllowanceTool,
		Name:        "Delete HBAR Allowance",
		Description: description,
		Parameters:  params.Schema(params.DeleteHbarAllowance{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.DeleteHbarAllowance](raw)
			if err != nil {
				return fail("delete HBAR allowance", err)
			}
			normalised, err := normalize.DeleteHbarAllowance(p, agent, client)
			if err != nil {
				return fail("delete HBAR allowance", err)
			}
			return runTransaction(ctx, client, agent, build.ApproveHbarAllowance(normalised),
				"delete HBAR allowance", successMessage("HBAR allowance deleted successfully."))
		},
	}
}
