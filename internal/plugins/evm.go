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

// Tool methods exposed by the EVM plugin.
const (
	CreateERC20Tool    = "create_erc20_tool"
	CreateERC721Tool   = "create_erc721_tool"
	TransferERC20Tool  = "transfer_erc20_tool"
	TransferERC721Tool = "transfer_erc721_tool"
	MintERC721Tool     = "mint_erc721_tool"
)

// EVM bundles ERC-20/ERC-721 deployment and contract-call tools. Token
// deployments go through the per-network factory contracts.
func EVM() plugin.Plugin {
	return plugin.Plugin{
		Name:        "core-evm-plugin",
		Version:     "1.0.0",
		Description: "ERC-20 and ERC-721 deployment and calls through the network factory contracts",
		Tools: func(agent *config.Context) []*tool.Tool {
			return []*tool.Tool{
				createERC20Tool(agent),
				createERC721Tool(agent),
				transferERC20Tool(agent),
				transferERC721Tool(agent),
				mintERC721Tool(agent),
			}
		},
	}
}

func network(client hedera.Client) string {
	if client == nil {
		return ""
	}
	return client.Network()
}

func createERC20Tool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: CreateERC20Tool,
		Name:   "Create ERC20 Token",
		Description: describe(agent,
			"This tool creates an ERC20 token by calling the BaseERC20Factory contract. ERC20 is an EVM-compatible fungible token standard.",
			`- token_name (str, required)
- token_symbol (str, required)
- decimals (int, optional): defaults to 18
- initial_supply (int, optional): in base units, defaults to 0`),
		Parameters: params.Schema(params.CreateERC20{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.CreateERC20](raw)
			if err != nil {
				return fail("create ERC20 token", err)
			}
			normalised, err := normalize.CreateERC20(p, network(client))
			if err != nil {
				return fail("create ERC20 token", err)
			}
			return runTransaction(ctx, client, agent, build.ContractExecute(normalised),
				"create ERC20 token", deployMessage("ERC20 token"))
		},
	}
}

func createERC721Tool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: CreateERC721Tool,
		Name:   "Create ERC721 Token",
		Description: describe(agent,
			"This tool creates an ERC721 collection by calling the BaseERC721Factory contract. ERC721 is an EVM-compatible non-fungible token standard.",
			`- token_name (str, required)
- token_symbol (str, required)
- base_uri (str, optional): prefix for per-token metadata URIs`),
		Parameters: params.Schema(params.CreateERC721{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.CreateERC721](raw)
			if err != nil {
				return fail("create ERC721 token", err)
			}
			normalised, err := normalize.CreateERC721(p, network(client))
			if err != nil {
				return fail("create ERC721 token", err)
			}
			return runTransaction(ctx, client, agent, build.ContractExecute(normalised),
				"create ERC721 token", deployMessage("ERC721 collection"))
		},
	}
}

// deployMessage summarizes a factory deployment; the factory emits the new
// token's address in the call result, surfaced via the contract id when the
// receipt carries one.
func deployMessage(what string) func(*response.RawTransactionOutcome) string {
	return func(outcome *response.RawTransactionOutcome) string {
		if outcome.ScheduleID != nil {
			return fmt.Sprintf("Scheduled creation of %s successfully.\nTransaction ID: %s\nSchedule ID: %s",
				what, outcome.TransactionID, outcome.ScheduleID)
		}
		if outcome.ContractID != nil {
			return fmt.Sprintf("%s created successfully at %s.\nTransaction ID: %s",
				what, outcome.ContractID, outcome.TransactionID)
		}
		return fmt.Sprintf("%s created successfully.\nTransaction ID: %s", what, outcome.TransactionID)
	}
}

func transferERC20Tool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: TransferERC20Tool,
		Name:   "Transfer ERC20 Token",
		Description: describe(agent,
			"This tool transfers an ERC20 token by calling transfer(address,uint256) on the token contract.",
			`- contract_id (str, required): token contract id or EVM address
- recipient_address (str, required): account id or EVM address
- amount (number, required): in base units`),
		Parameters: params.Schema(params.TransferERC20{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.TransferERC20](raw)
			if err != nil {
				return fail("transfer ERC20 token", err)
			}
			normalised, err := normalize.TransferERC20(ctx, p, mirrorFor(agent, client))
			if err != nil {
				return fail("transfer ERC20 token", err)
			}
			return runTransaction(ctx, client, agent, build.ContractExecute(normalised),
				"transfer ERC20 token", successMessage("ERC20 tokens successfully transferred."))
		},
	}
}

func transferERC721Tool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: TransferERC721Tool,
		Name:   "Transfer ERC721 Token",
		Description: describe(agent,
			"This tool transfers an ERC721 token by calling transferFrom(address,address,uint256) on the collection contract.",
			`- contract_id (str, required): collection contract id or EVM address
`+tool.AccountParameterDescription("from_address", agent)+`
- to_address (str, required): account id or EVM address
- token_id (int, required): the ERC721 token number`),
		Parameters: params.Schema(params.TransferERC721{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.TransferERC721](raw)
			if err != nil {
				return fail("transfer ERC721 token", err)
			}
			normalised, err := normalize.TransferERC721(ctx, p, agent, client, mirrorFor(agent, client))
			if err != nil {
				return fail("transfer ERC721 token", err)
			}
			return runTransaction(ctx, client, agent, build.ContractExecute(normalised),
				"transfer ERC721 token", successMessage("ERC721 token successfully transferred."))
		},
	}
}

func mintERC721Tool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: MintERC721Tool,
		Name:   "Mint ERC721 Token",
		Description: describe(agent,
			"This tool mints a new ERC721 token by calling safeMint(address) on the collection contract.",
			`- contract_id (str, required): collection contract id or EVM address
`+tool.AccountParameterDescription("to_address", agent)),
		Parameters: params.Schema(params.MintERC721{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.MintERC721](raw)
			if err != nil {
				return fail("mint ERC721 token", err)
			}
			normalised, err := normalize.MintERC721(ctx, p, agent, client, mirrorFor(agent, client))
			if err != nil {
				return fail("mint ERC721 token", err)
			}
			return runTransaction(ctx, client, agent, build.ContractExecute(normalised),
				"mint ERC721 token", successMessage("ERC721 token minted successfully."))
		},
	}
}
