package plugins

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"hedera-agent-go/internal/config"
	"hedera-agent-go/internal/hedera"
	"hedera-agent-go/internal/mirrornode"
	"hedera-agent-go/internal/params"
	"hedera-agent-go/internal/resolve"
	"hedera-agent-go/internal/response"
	"hedera-agent-go/internal/tool"
	"hedera-agent-go/internal/units"
	"hedera-agent-go/pkg/plugin"
)

// Tool methods exposed by the query plugin.
const (
	GetHbarBalanceTool       = "get_hbar_balance_query_tool"
	GetAccountTool           = "get_account_query_tool"
	GetTokenBalancesTool     = "get_token_balances_query_tool"
	GetTokenInfoTool         = "get_token_info_query_tool"
	GetTopicInfoTool         = "get_topic_info_query_tool"
	GetTopicMessagesTool     = "get_topic_messages_query_tool"
	GetContractInfoTool      = "get_contract_info_query_tool"
	GetTransactionRecordTool = "get_transaction_record_query_tool"
	GetPendingAirdropTool    = "get_pending_airdrop_query_tool"
	GetExchangeRateTool      = "get_exchange_rate_tool"
)

// Queries bundles the read-only mirror-node lookup tools.
func Queries() plugin.Plugin {
	return plugin.Plugin{
		Name:        "core-query-plugin",
		Version:     "1.0.0",
		Description: "Read-only account, token, topic and network lookups via the mirror node",
		Tools: func(agent *config.Context) []*tool.Tool {
			return []*tool.Tool{
				getHbarBalanceTool(agent),
				getAccountTool(agent),
				getTokenBalancesTool(agent),
				getTokenInfoTool(agent),
				getTopicInfoTool(agent),
				getTopicMessagesTool(agent),
				getContractInfoTool(agent),
				getTransactionRecordTool(agent),
				getPendingAirdropTool(agent),
				getExchangeRateTool(agent),
			}
		},
	}
}

// queryAccount resolves an optional account parameter for a query.
func queryAccount(raw string, agent *config.Context, client hedera.Client) (string, error) {
	if raw != "" {
		return raw, nil
	}
	account, err := resolve.DefaultAccount(agent, client)
	if err != nil {
		return "", err
	}
	return account.String(), nil
}

func getHbarBalanceTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: GetHbarBalanceTool,
		Name:   "Get HBAR Balance",
		Description: describe(agent,
			"This tool returns the HBAR balance of an account.",
			tool.AccountParameterDescription("account_id", agent)),
		Parameters: params.Schema(params.HbarBalanceQuery{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.HbarBalanceQuery](raw)
			if err != nil {
				return fail("get HBAR balance", err)
			}
			accountID, err := queryAccount(p.AccountID, agent, client)
			if err != nil {
				return fail("get HBAR balance", err)
			}
			account, err := mirrorFor(agent, client).Account(ctx, accountID)
			if err != nil {
				return fail("get HBAR balance", err)
			}
			balance := units.FromTinybars(account.Balance.Balance)
			return response.Generic(fmt.Sprintf("Account %s has a balance of %s HBAR.", accountID, balance)).
				WithExtra(map[string]any{"account_id": accountID, "tinybars": account.Balance.Balance})
		},
	}
}

func getAccountTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: GetAccountTool,
		Name:   "Get Account",
		Description: describe(agent,
			"This tool returns the mirror-node state of an account: balance, key, memo and EVM address.",
			tool.AccountParameterDescription("account_id", agent)),
		Parameters: params.Schema(params.AccountQuery{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.AccountQuery](raw)
			if err != nil {
				return fail("get account", err)
			}
			accountID, err := queryAccount(p.AccountID, agent, client)
			if err != nil {
				return fail("get account", err)
			}
			account, err := mirrorFor(agent, client).Account(ctx, accountID)
			if err != nil {
				return fail("get account", err)
			}
			var b strings.Builder
			fmt.Fprintf(&b, "Account %s:\n", account.AccountID)
			fmt.Fprintf(&b, "- Balance: %s HBAR\n", units.FromTinybars(account.Balance.Balance))
			if account.Key != nil {
				fmt.Fprintf(&b, "- Key (%s): %s\n", account.Key.Type, account.Key.Key)
			}
			if account.EvmAddress != "" {
				fmt.Fprintf(&b, "- EVM address: %s\n", account.EvmAddress)
			}
			if account.Memo != "" {
				fmt.Fprintf(&b, "- Memo: %s\n", account.Memo)
			}
			if account.Deleted {
				b.WriteString("- Account is deleted\n")
			}
			return response.Generic(b.String())
		},
	}
}

func getTokenBalancesTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: GetTokenBalancesTool,
		Name:   "Get Token Balances",
		Description: describe(agent,
			"This tool returns the token balances held by an account, optionally restricted to one token.",
			tool.AccountParameterDescription("account_id", agent)+`
- token_id (str, optional): restrict the result to one token`),
		Parameters: params.Schema(params.TokenBalancesQuery{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.TokenBalancesQuery](raw)
			if err != nil {
				return fail("get token balances", err)
			}
			accountID, err := queryAccount(p.AccountID, agent, client)
			if err != nil {
				return fail("get token balances", err)
			}
			account, err := mirrorFor(agent, client).Account(ctx, accountID)
			if err != nil {
				return fail("get token balances", err)
			}
			holdings := account.Balance.Tokens
			if p.TokenID != "" {
				// Filter into a fresh slice; the account object may be shared
				// by a caching mirror service.
				filtered := make([]mirrornode.TokenBalance, 0, len(holdings))
				for _, h := range holdings {
					if h.TokenID == p.TokenID {
						filtered = append(filtered, h)
					}
				}
				holdings = filtered
			}
			if len(holdings) == 0 {
				return response.Generic(fmt.Sprintf("Account %s holds no matching tokens.", accountID))
			}
			var b strings.Builder
			fmt.Fprintf(&b, "Token balances for account %s:\n", accountID)
			for _, h := range holdings {
				fmt.Fprintf(&b, "- %s: %d base units\n", h.TokenID, h.Balance)
			}
			return response.Generic(b.String())
		},
	}
}

func getTokenInfoTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: GetTokenInfoTool,
		Name:   "Get Token Info",
		Description: describe(agent,
			"This tool returns the mirror-node metadata of a token.",
			`- token_id (str, required)`),
		Parameters: params.Schema(params.TokenInfoQuery{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.TokenInfoQuery](raw)
			if err != nil {
				return fail("get token info", err)
			}
			if err := params.Validate(p); err != nil {
				return fail("get token info", err)
			}
			info, err := mirrorFor(agent, client).TokenInfo(ctx, p.TokenID)
			if err != nil {
				return fail("get token info", err)
			}
			var b strings.Builder
			fmt.Fprintf(&b, "Token %s (%s):\n", info.Name, info.TokenID)
			fmt.Fprintf(&b, "- Symbol: %s\n- Type: %s\n- Decimals: %s\n- Total supply: %s\n- Treasury: %s\n",
				info.Symbol, info.Type, info.Decimals, info.TotalSupply, info.TreasuryID)
			if info.Memo != "" {
				fmt.Fprintf(&b, "- Memo: %s\n", info.Memo)
			}
			return response.Generic(b.String())
		},
	}
}

func getTopicInfoTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: GetTopicInfoTool,
		Name:   "Get Topic Info",
		Description: describe(agent,
			"This tool returns the mirror-node metadata of a consensus topic.",
			`- topic_id (str, required)`),
		Parameters: params.Schema(params.TopicInfoQuery{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.TopicInfoQuery](raw)
			if err != nil {
				return fail("get topic info", err)
			}
			if err := params.Validate(p); err != nil {
				return fail("get topic info", err)
			}
			info, err := mirrorFor(agent, client).TopicInfo(ctx, p.TopicID)
			if err != nil {
				return fail("get topic info", err)
			}
			var b strings.Builder
			fmt.Fprintf(&b, "Topic %s:\n", info.TopicID)
			if info.Memo != "" {
				fmt.Fprintf(&b, "- Memo: %s\n", info.Memo)
			}
			fmt.Fprintf(&b, "- Admin key set: %t\n- Submit key set: %t\n", info.AdminKey != nil, info.SubmitKey != nil)
			if info.Deleted {
				b.WriteString("- Topic is deleted\n")
			}
			return response.Generic(b.String())
		},
	}
}

func getTopicMessagesTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: GetTopicMessagesTool,
		Name:   "Get Topic Messages",
		Description: describe(agent,
			"This tool returns the messages of a consensus topic, optionally bounded by consensus timestamps.",
			`- topic_id (str, required)
- start_timestamp (str, optional): inclusive lower bound
- end_timestamp (str, optional): inclusive upper bound
- limit (int, optional): maximum number of messages`),
		Parameters: params.Schema(params.TopicMessagesQuery{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.TopicMessagesQuery](raw)
			if err != nil {
				return fail("get topic messages", err)
			}
			if err := params.Validate(p); err != nil {
				return fail("get topic messages", err)
			}
			page, err := mirrorFor(agent, client).TopicMessages(ctx, mirrornode.TopicMessagesQuery{
				TopicID:   p.TopicID,
				StartTime: p.StartTimestamp,
				EndTime:   p.EndTimestamp,
				Limit:     p.Limit,
			})
			if err != nil {
				return fail("get topic messages", err)
			}
			if len(page.Messages) == 0 {
				return response.Generic(fmt.Sprintf("No messages found for topic %s.", p.TopicID))
			}
			decoded := mirrornode.DecodeMessages(page.Messages, "")
			var b strings.Builder
			fmt.Fprintf(&b, "Messages for topic %s:\n", p.TopicID)
			for _, message := range decoded {
				fmt.Fprintf(&b, "%s - posted at: %s\n", message.Message, message.ConsensusTimestamp)
			}
			return response.Generic(b.String())
		},
	}
}

func getContractInfoTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: GetContractInfoTool,
		Name:   "Get Contract Info",
		Description: describe(agent,
			"This tool returns the mirror-node metadata of a smart contract.",
			`- contract_id (str, required): contract id or EVM address`),
		Parameters: params.Schema(params.ContractInfoQuery{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.ContractInfoQuery](raw)
			if err != nil {
				return fail("get contract info", err)
			}
			if err := params.Validate(p); err != nil {
				return fail("get contract info", err)
			}
			info, err := mirrorFor(agent, client).ContractInfo(ctx, p.ContractID)
			if err != nil {
				return fail("get contract info", err)
			}
			var b strings.Builder
			fmt.Fprintf(&b, "Contract %s:\n- EVM address: %s\n", info.ContractID, info.EvmAddress)
			if info.Memo != "" {
				fmt.Fprintf(&b, "- Memo: %s\n", info.Memo)
			}
			if info.Deleted {
				b.WriteString("- Contract is deleted\n")
			}
			return response.Generic(b.String())
		},
	}
}

func getTransactionRecordTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: GetTransactionRecordTool,
		Name:   "Get Transaction Record",
		Description: describe(agent,
			"This tool returns the mirrored record of a submitted transaction. Transaction ids are accepted in payer@seconds.nanos or payer-seconds-nanos form.",
			`- transaction_id (str, required)
- nonce (int, optional)`),
		Parameters: params.Schema(params.TransactionRecordQuery{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.TransactionRecordQuery](raw)
			if err != nil {
				return fail("get transaction record", err)
			}
			if err := params.Validate(p); err != nil {
				return fail("get transaction record", err)
			}
			normalizedID, err := hedera.NormalizeTransactionID(p.TransactionID)
			if err != nil {
				return fail("get transaction record", err)
			}
			page, err := mirrorFor(agent, client).TransactionRecord(ctx, normalizedID, p.Nonce)
			if err != nil {
				return fail("get transaction record", err)
			}
			if len(page.Transactions) == 0 {
				return response.Generic(fmt.Sprintf("No record found for transaction %s.", normalizedID))
			}
			var b strings.Builder
			fmt.Fprintf(&b, "Record for transaction %s:\n", normalizedID)
			for _, tx := range page.Transactions {
				fmt.Fprintf(&b, "- %s: %s at %s\n", tx.Name, tx.Result, tx.ConsensusTimestamp)
			}
			return response.Generic(b.String())
		},
	}
}

func getPendingAirdropTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: GetPendingAirdropTool,
		Name:   "Get Pending Airdrop",
		Description: describe(agent,
			"This tool returns the airdrops an account has received but not yet claimed.",
			tool.AccountParameterDescription("account_id", agent)),
		Parameters: params.Schema(params.PendingAirdropQuery{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.PendingAirdropQuery](raw)
			if err != nil {
				return fail("get pending airdrops", err)
			}
			accountID, err := queryAccount(p.AccountID, agent, client)
			if err != nil {
				return fail("get pending airdrops", err)
			}
			page, err := mirrorFor(agent, client).PendingAirdrops(ctx, accountID)
			if err != nil {
				return fail("get pending airdrops", err)
			}
			extra := map[string]any{"accountId": accountID, "pendingAirdrops": page.Airdrops}
			if len(page.Airdrops) == 0 {
				return response.Generic(fmt.Sprintf("No pending airdrops found for account %s", accountID)).
					WithExtra(extra)
			}
			var b strings.Builder
			fmt.Fprintf(&b, "Here are the pending airdrops for account **%s** (total: %d):\n\n", accountID, len(page.Airdrops))
			for i, drop := range page.Airdrops {
				timestamp := drop.Timestamp.From
				if drop.Timestamp.To != "" {
					timestamp = drop.Timestamp.From + " -> " + drop.Timestamp.To
				}
				fmt.Fprintf(&b, "#%d Token: %s, Amount: %d, Serial: %d, Sender: %s, Receiver: %s, Timestamp: %s\n",
					i+1, drop.TokenID, drop.Amount, drop.SerialNumber, drop.SenderID, drop.ReceiverID, timestamp)
			}
			return response.Generic(b.String()).WithExtra(extra)
		},
	}
}

func getExchangeRateTool(agent *config.Context) *tool.Tool {
	// One rate service per tool instance: the cached pair survives across
	// invocations and only refreshes after the mirror-reported expiration.
	var (
		once    sync.Once
		service *mirrornode.ExchangeRateService
	)
	return &tool.Tool{
		Method: GetExchangeRateTool,
		Name:   "Get Exchange Rate",
		Description: describe(agent,
			"This tool returns the network HBAR/USD exchange rate.",
			`- timestamp (str, optional): consensus timestamp to query the rate at`),
		Parameters: params.Schema(params.ExchangeRateQuery{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.ExchangeRateQuery](raw)
			if err != nil {
				return fail("get exchange rate", err)
			}
			mirror := mirrorFor(agent, client)
			if p.Timestamp != "" {
				rate, err := mirror.ExchangeRate(ctx, p.Timestamp)
				if err != nil {
					return fail("get exchange rate", err)
				}
				return response.Generic(fmt.Sprintf("At %s, 1 HBAR = %.4f US cents.", p.Timestamp, rate.HbarPriceInCents()))
			}
			once.Do(func() { service = mirrornode.NewExchangeRateService(mirror) })
			if !service.Ready() {
				if err := service.Initialize(ctx); err != nil {
					return fail("get exchange rate", err)
				}
			}
			rate, err := service.Current(ctx)
			if err != nil {
				return fail("get exchange rate", err)
			}
			return response.Generic(fmt.Sprintf("1 HBAR = %.4f US cents.", rate.HbarPriceInCents()))
		},
	}
}
