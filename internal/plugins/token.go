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

// Tool methods exposed by the token plugin.
const (
	CreateFungibleTokenTool                   = "create_fungible_token_tool"
	CreateNonFungibleTokenTool                = "create_non_fungible_token_tool"
	UpdateTokenTool                           = "update_token_tool"
	MintFungibleTokenTool                     = "mint_fungible_token_tool"
	MintNonFungibleTokenTool                  = "mint_non_fungible_token_tool"
	AssociateTokenTool                        = "associate_token_tool"
	DissociateTokenTool                       = "dissociate_token_tool"
	AirdropFungibleTokenTool                  = "airdrop_fungible_token_tool"
	TransferFungibleTokenTool                 = "transfer_fungible_token_tool"
	TransferFungibleTokenWithAllowanceTool    = "transfer_fungible_token_with_allowance_tool"
	TransferNonFungibleTokenTool              = "transfer_non_fungible_token_tool"
	TransferNonFungibleTokenWithAllowanceTool = "transfer_non_fungible_token_with_allowance_tool"
	ApproveTokenAllowanceTool                 = "approve_token_allowance_tool"
	DeleteTokenAllowanceTool                  = "delete_token_allowance_tool"
	ApproveNFTAllowanceTool                   = "approve_nft_allowance_tool"
	DeleteNFTAllowanceTool                    = "delete_nft_allowance_tool"
)

// Token bundles HTS token lifecycle, supply, transfer and allowance tools.
func Token() plugin.Plugin {
	return plugin.Plugin{
		Name:        "core-token-plugin",
		Version:     "1.0.0",
		Description: "HTS token lifecycle, minting, transfers and allowances",
		Tools: func(agent *config.Context) []*tool.Tool {
			return []*tool.Tool{
				createFungibleTokenTool(agent),
				createNonFungibleTokenTool(agent),
				updateTokenTool(agent),
				mintFungibleTokenTool(agent),
				mintNonFungibleTokenTool(agent),
				associateTokenTool(agent),
				dissociateTokenTool(agent),
				airdropFungibleTokenTool(agent),
				transferFungibleTokenTool(agent),
				transferFungibleTokenWithAllowanceTool(agent),
				transferNonFungibleTokenTool(agent),
				transferNonFungibleTokenWithAllowanceTool(agent),
				approveTokenAllowanceTool(agent),
				deleteTokenAllowanceTool(agent),
				approveNFTAllowanceTool(agent),
				deleteNFTAllowanceTool(agent),
			}
		},
	}
}

func createFungibleTokenTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: CreateFungibleTokenTool,
		Name:   "Create Fungible Token",
		Description: describe(agent,
			"This tool creates a new fungible HTS token. Key fields accept true (use the caller's key) or an encoded public key string.",
			`- token_name (str, required)
- token_symbol (str, required)
- initial_supply (number, optional): in display units
- decimals (int, optional)
`+tool.AccountParameterDescription("treasury_account_id", agent)+`
- admin_key, supply_key, freeze_key, wipe_key, kyc_key, pause_key (bool or str, optional)
- token_memo (str, optional)
`+tool.ScheduledTransactionParamsDescription()),
		Parameters: params.Schema(params.CreateFungibleToken{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.CreateFungibleToken](raw)
			if err != nil {
				return fail("create fungible token", err)
			}
			normalised, err := normalize.CreateFungibleToken(p, agent, client)
			if err != nil {
				return fail("create fungible token", err)
			}
			return runTransaction(ctx, client, agent, build.CreateFungibleToken(normalised),
				"create fungible token", func(outcome *response.RawTransactionOutcome) string {
					if outcome.TokenID != nil {
						return fmt.Sprintf("Token created successfully.\nToken ID: %s\nTransaction ID: %s",
							outcome.TokenID, outcome.TransactionID)
					}
					return fmt.Sprintf("Token created successfully.\nTransaction ID: %s", outcome.TransactionID)
				})
		},
	}
}

func createNonFungibleTokenTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: CreateNonFungibleTokenTool,
		Name:   "Create Non-Fungible Token",
		Description: describe(agent,
			"This tool creates a new NFT class. The supply key defaults to the caller's key since minting serials requires one.",
			`- token_name (str, required)
- token_symbol (str, required)
- max_supply (int, optional)
`+tool.AccountParameterDescription("treasury_account_id", agent)+`
- admin_key, supply_key (bool or str, optional)
- token_memo (str, optional)
`+tool.ScheduledTransactionParamsDescription()),
		Parameters: params.Schema(params.CreateNonFungibleToken{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.CreateNonFungibleToken](raw)
			if err != nil {
				return fail("create non-fungible token", err)
			}
			normalised, err := normalize.CreateNonFungibleToken(p, agent, client)
			if err != nil {
				return fail("create non-fungible token", err)
			}
			return runTransaction(ctx, client, agent, build.CreateNonFungibleToken(normalised),
				"create non-fungible token", func(outcome *response.RawTransactionOutcome) string {
					if outcome.TokenID != nil {
						return fmt.Sprintf("NFT class created successfully.\nToken ID: %s\nTransaction ID: %s",
							outcome.TokenID, outcome.TransactionID)
					}
					return fmt.Sprintf("NFT class created successfully.\nTransaction ID: %s", outcome.TransactionID)
				})
		},
	}
}

func updateTokenTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: UpdateTokenTool,
		Name:   "Update Token",
		Description: describe(agent,
			"This tool updates an existing HTS token. Only provided fields change, and a key slot can only be updated when the token was created with it.",
			`- token_id (str, required)
- token_name, token_symbol, token_memo (str, optional)
- admin_key, supply_key, freeze_key, wipe_key, kyc_key, pause_key (bool or str, optional)`),
		Parameters: params.Schema(params.UpdateToken{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.UpdateToken](raw)
			if err != nil {
				return fail("update token", err)
			}
			normalised, err := normalize.UpdateToken(ctx, p, agent, client, mirrorFor(agent, client))
			if err != nil {
				return fail("update token", err)
			}
			return runTransaction(ctx, client, agent, build.UpdateToken(normalised),
				"update token", successMessage("Token successfully updated."))
		},
	}
}

func mintFungibleTokenTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: MintFungibleTokenTool,
		Name:   "Mint Fungible Token",
		Description: describe(agent,
			"This tool mints additional supply of a fungible token to its treasury.",
			`- token_id (str, required)
- amount (number, required): in display units`),
		Parameters: params.Schema(params.MintFungibleToken{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.MintFungibleToken](raw)
			if err != nil {
				return fail("mint fungible token", err)
			}
			normalised, err := normalize.MintFungibleToken(ctx, p, mirrorFor(agent, client))
			if err != nil {
				return fail("mint fungible token", err)
			}
			return runTransaction(ctx, client, agent, build.MintFungibleToken(normalised),
				"mint fungible token", successMessage("Tokens minted successfully."))
		},
	}
}

func mintNonFungibleTokenTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: MintNonFungibleTokenTool,
		Name:   "Mint NFT Serials",
		Description: describe(agent,
			"This tool mints NFT serials, one per metadata URI.",
			`- token_id (str, required)
- uris (list of str, required): one metadata URI per serial`),
		Parameters: params.Schema(params.MintNonFungibleToken{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.MintNonFungibleToken](raw)
			if err != nil {
				return fail("mint NFT", err)
			}
			normalised, err := normalize.MintNonFungibleToken(p)
			if err != nil {
				return fail("mint NFT", err)
			}
			return runTransaction(ctx, client, agent, build.MintNonFungibleToken(normalised),
				"mint NFT", func(outcome *response.RawTransactionOutcome) string {
					if len(outcome.SerialNumbers) > 0 {
						return fmt.Sprintf("NFT serials minted successfully: %v\nTransaction ID: %s",
							outcome.SerialNumbers, outcome.TransactionID)
					}
					return fmt.Sprintf("NFT serials minted successfully.\nTransaction ID: %s", outcome.TransactionID)
				})
		},
	}
}

func associateTokenTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: AssociateTokenTool,
		Name:   "Associate Tokens",
		Description: describe(agent,
			"This tool associates one or more tokens with an account so it can hold them.",
			tool.AccountParameterDescription("account_id", agent)+`
- token_ids (list of str, required)`),
		Parameters: params.Schema(params.AssociateToken{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.AssociateToken](raw)
			if err != nil {
				return fail("associate tokens", err)
			}
			normalised, err := normalize.AssociateToken(p, agent, client)
			if err != nil {
				return fail("associate tokens", err)
			}
			return runTransaction(ctx, client, agent, build.AssociateToken(normalised),
				"associate tokens", successMessage("Tokens associated successfully."))
		},
	}
}

func dissociateTokenTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: DissociateTokenTool,
		Name:   "Dissociate Tokens",
		Description: describe(agent,
			"This tool removes token associations from an account.",
			tool.AccountParameterDescription("account_id", agent)+`
- token_ids (list of str, required)`),
		Parameters: params.Schema(params.DissociateToken{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.DissociateToken](raw)
			if err != nil {
				return fail("dissociate tokens", err)
			}
			normalised, err := normalize.DissociateToken(p, agent, client)
			if err != nil {
				return fail("dissociate tokens", err)
			}
			return runTransaction(ctx, client, agent, build.DissociateToken(normalised),
				"dissociate tokens", successMessage("Tokens dissociated successfully."))
		},
	}
}

func airdropFungibleTokenTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: AirdropFungibleTokenTool,
		Name:   "Airdrop Fungible Token",
		Description: describe(agent,
			"This tool airdrops a fungible token from a source account to multiple recipients.",
			`- token_id (str, required)
`+tool.AccountParameterDescription("source_account_id", agent)+`
- recipients (list, required): entries of {account_id, amount} with amounts in display units
`+tool.ScheduledTransactionParamsDescription()),
		Parameters: params.Schema(params.AirdropFungibleToken{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.AirdropFungibleToken](raw)
			if err != nil {
				return fail("airdrop fungible token", err)
			}
			normalised, err := normalize.AirdropFungibleToken(ctx, p, agent, client, mirrorFor(agent, client))
			if err != nil {
				return fail("airdrop fungible token", err)
			}
			return runTransaction(ctx, client, agent, build.AirdropFungibleToken(normalised),
				"airdrop fungible token", successMessage("Token airdrop executed successfully."))
		},
	}
}

func transferFungibleTokenTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: TransferFungibleTokenTool,
		Name:   "Transfer Fungible Token",
		Description: describe(agent,
			"This tool transfers a fungible token from one account to one or more recipients.",
			`- token_id (str, required)
`+tool.AccountParameterDescription("source_account_id", agent)+`
- transfers (list, required): entries of {account_id, amount} with amounts in display units
- transaction_memo (str, optional)
`+tool.ScheduledTransactionParamsDescription()),
		Parameters: params.Schema(params.TransferFungibleToken{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.TransferFungibleToken](raw)
			if err != nil {
				return fail("transfer fungible token", err)
			}
			normalised, err := normalize.TransferFungibleToken(ctx, p, agent, client, mirrorFor(agent, client))
			if err != nil {
				return fail("transfer fungible token", err)
			}
			return runTransaction(ctx, client, agent, build.TransferFungibleToken(normalised),
				"transfer fungible token", successMessage("Fungible tokens successfully transferred."))
		},
	}
}

func transferFungibleTokenWithAllowanceTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: TransferFungibleTokenWithAllowanceTool,
		Name:   "Transfer Fungible Token With Allowance",
		Description: describe(agent,
			"This tool spends a previously approved fungible token allowance, transferring from the owner's balance to one or more recipients.",
			`- token_id (str, required)
- source_account_id (str, required): the allowance owner whose balance is spent
- transfers (list, required): entries of {account_id, amount} with amounts in display units
- transaction_memo (str, optional)
`+tool.ScheduledTransactionParamsDescription()),
		Parameters: params.Schema(params.TransferFungibleTokenWithAllowance{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.TransferFungibleTokenWithAllowance](raw)
			if err != nil {
				return fail("transfer fungible token with allowance", err)
			}
			normalised, err := normalize.TransferFungibleTokenWithAllowance(ctx, p, agent, client, mirrorFor(agent, client))
			if err != nil {
				return fail("transfer fungible token with allowance", err)
			}
			return runTransaction(ctx, client, agent, build.TransferFungibleTokenWithAllowance(normalised),
				"transfer fungible token with allowance", func(outcome *response.RawTransactionOutcome) string {
					if outcome.ScheduleID != nil {
						return fmt.Sprintf("Scheduled allowance transfer created successfully.\nTransaction ID: %s\nSchedule ID: %s",
							outcome.TransactionID, outcome.ScheduleID)
					}
					return fmt.Sprintf("Fungible tokens successfully transferred with allowance. Transaction ID: %s", outcome.TransactionID)
				})
		},
	}
}

func transferNonFungibleTokenTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: TransferNonFungibleTokenTool,
		Name:   "Transfer NFT",
		Description: describe(agent,
			"This tool transfers specific NFT serials to a receiver.",
			`- token_id (str, required)
`+tool.AccountParameterDescription("sender_account_id", agent)+`
- receiver_account_id (str, required)
- serial_numbers (list of int, required)
- transaction_memo (str, optional)`),
		Parameters: params.Schema(params.TransferNonFungibleToken{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.TransferNonFungibleToken](raw)
			if err != nil {
				return fail("transfer NFT", err)
			}
			normalised, err := normalize.TransferNonFungibleToken(p, agent, client)
			if err != nil {
				return fail("transfer NFT", err)
			}
			return runTransaction(ctx, client, agent, build.TransferNonFungibleToken(normalised),
				"transfer NFT", successMessage("NFT successfully transferred."))
		},
	}
}

func transferNonFungibleTokenWithAllowanceTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: TransferNonFungibleTokenWithAllowanceTool,
		Name:   "Transfer NFT With Allowance",
		Description: describe(agent,
			"This tool spends a previously approved NFT allowance, moving specific serials from the owner to their recipients.",
			`- token_id (str, required)
- source_account_id (str, required): the allowance owner whose serials are moved
- recipients (list, required): entries of {recipient, serial_number}
- transaction_memo (str, optional)`),
		Parameters: params.Schema(params.TransferNonFungibleTokenWithAllowance{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.TransferNonFungibleTokenWithAllowance](raw)
			if err != nil {
				return fail("transfer NFT with allowance", err)
			}
			normalised, err := normalize.TransferNonFungibleTokenWithAllowance(p)
			if err != nil {
				return fail("transfer NFT with allowance", err)
			}
			return runTransaction(ctx, client, agent, build.TransferNonFungibleTokenWithAllowance(normalised),
				"transfer NFT with allowance", successMessage("Non-fungible tokens successfully transferred with allowance."))
		},
	}
}

func approveTokenAllowanceTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: ApproveTokenAllowanceTool,
		Name:   "Approve Token Allowance",
		Description: describe(agent,
			"This tool approves a fungible token allowance for a spender.",
			tool.AccountParameterDescription("owner_account_id", agent)+`
- spender_account_id (str, required)
- token_id (str, required)
- amount (number, required): in display units
- transaction_memo (str, optional)`),
		Parameters: params.Schema(params.ApproveTokenAllowance{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.ApproveTokenAllowance](raw)
			if err != nil {
				return fail("approve token allowance", err)
			}
			normalised, err := normalize.ApproveTokenAllowance(ctx, p, agent, client, mirrorFor(agent, client))
			if err != nil {
				return fail("approve token allowance", err)
			}
			return runTransaction(ctx, client, agent, build.ApproveTokenAllowance(normalised),
				"approve token allowance", successMessage("Token allowance approved successfully."))
		},
	}
}

func deleteTokenAllowanceTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: DeleteTokenAllowanceTool,
		Name:   "Delete Token Allowance",
		Description: describe(agent,
			"This tool revokes fungible token allowances by setting them to zero.",
			tool.AccountParameterDescription("owner_account_id", agent)+`
- spender_account_id (str, required)
- token_ids (list of str, required)
- transaction_memo (str, optional)`),
		Parameters: params.Schema(params.DeleteTokenAllowance{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.DeleteTokenAllowance](raw)
			if err != nil {
				return fail("delete token allowance", err)
			}
			normalised, err := normalize.DeleteTokenAllowance(p, agent, client)
			if err != nil {
				return fail("delete token allowance", err)
			}
			return runTransaction(ctx, client, agent, build.ApproveTokenAllowance(normalised),
				"delete token allowance", successMessage("Token allowance deleted successfully."))
		},
	}
}

func approveNFTAllowanceTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: ApproveNFTAllowanceTool,
		Name:   "Approve NFT Allowance",
		Description: describe(agent,
			"This tool approves an NFT allowance for specific serials or for all serials of a class.",
			tool.AccountParameterDescription("owner_account_id", agent)+`
- spender_account_id (str, required)
- token_id (str, required)
- serial_numbers (list of int, optional)
- all_serials (bool, optional)
- transaction_memo (str, optional)`),
		Parameters: params.Schema(params.ApproveNFTAllowance{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.ApproveNFTAllowance](raw)
			if err != nil {
				return fail("approve NFT allowance", err)
			}
			normalised, err := normalize.ApproveNFTAllowance(p, agent, client)
			if err != nil {
				return fail("approve NFT allowance", err)
			}
			return runTransaction(ctx, client, agent, build.ApproveNFTAllowance(normalised),
				"approve NFT allowance", successMessage("NFT allowance approved successfully."))
		},
	}
}

func deleteNFTAllowanceTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: DeleteNFTAllowanceTool,
		Name:   "Delete NFT Allowance",
		Description: describe(agent,
			"This tool revokes NFT serial approvals.",
			tool.AccountParameterDescription("owner_account_id", agent)+`
- token_id (str, required)
- serial_numbers (list of int, required)
- transaction_memo (str, optional)`),
		Parameters: params.Schema(params.DeleteNFTAllowance{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.DeleteNFTAllowance](raw)
			if err != nil {
				return fail("delete NFT allowance", err)
			}
			normalised, err := normalize.DeleteNFTAllowance(p, agent, client)
			if err != nil {
				return fail("delete NFT allowance", err)
			}
			return runTransaction(ctx, client, agent, build.DeleteNFTAllowance(normalised),
				"delete NFT allowance", successMessage("NFT allowance deleted successfully."))
		},
	}
}
