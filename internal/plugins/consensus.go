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

// Tool methods exposed by the consensus plugin.
const (
	CreateTopicTool        = "create_topic_tool"
	UpdateTopicTool        = "update_topic_tool"
	DeleteTopicTool        = "delete_topic_tool"
	SubmitTopicMessageTool = "submit_topic_message_tool"
)

// Consensus bundles the topic lifecycle and message submission tools.
func Consensus() plugin.Plugin {
	return plugin.Plugin{
		Name:        "core-consensus-plugin",
		Version:     "1.0.0",
		Description: "Consensus topic lifecycle and message submission",
		Tools: func(agent *config.Context) []*tool.Tool {
			return []*tool.Tool{
				createTopicTool(agent),
				updateTopicTool(agent),
				deleteTopicTool(agent),
				submitTopicMessageTool(agent),
			}
		},
	}
}

func createTopicTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: CreateTopicTool,
		Name:   "Create Topic",
		Description: describe(agent,
			"This tool creates a consensus topic. Set is_submit_key to restrict message submission to the caller's key.",
			`- topic_memo (str, optional)
- is_submit_key (bool, optional)
`+tool.ScheduledTransactionParamsDescription()),
		Parameters: params.Schema(params.CreateTopic{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.CreateTopic](raw)
			if err != nil {
				return fail("create topic", err)
			}
			normalised, err := normalize.CreateTopic(p, agent, client)
			if err != nil {
				return fail("create topic", err)
			}
			return runTransaction(ctx, client, agent, build.CreateTopic(normalised),
				"create topic", func(outcome *response.RawTransactionOutcome) string {
					if outcome.TopicID != nil {
						return fmt.Sprintf("Topic created successfully.\nTopic ID: %s\nTransaction ID: %s",
							outcome.TopicID, outcome.TransactionID)
					}
					return fmt.Sprintf("Topic created successfully.\nTransaction ID: %s", outcome.TransactionID)
				})
		},
	}
}

func updateTopicTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: UpdateTopicTool,
		Name:   "Update Topic",
		Description: describe(agent,
			"This tool updates a topic's memo or keys. Only provided fields change.",
			`- topic_id (str, required)
- topic_memo (str, optional)
- admin_key, submit_key (bool or str, optional)
`+tool.ScheduledTransactionParamsDescription()),
		Parameters: params.Schema(params.UpdateTopic{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.UpdateTopic](raw)
			if err != nil {
				return fail("update topic", err)
			}
			normalised, err := normalize.UpdateTopic(p, agent, client)
			if err != nil {
				return fail("update topic", err)
			}
			return runTransaction(ctx, client, agent, build.UpdateTopic(normalised),
				"update topic", successMessage("Topic updated successfully."))
		},
	}
}

func deleteTopicTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: DeleteTopicTool,
		Name:   "Delete Topic",
		Description: describe(agent,
			"This tool deletes a consensus topic.",
			`- topic_id (str, required)`),
		Parameters: params.Schema(params.DeleteTopic{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.DeleteTopic](raw)
			if err != nil {
				return fail("delete topic", err)
			}
			normalised, err := normalize.DeleteTopic(p)
			if err != nil {
				return fail("delete topic", err)
			}
			return runTransaction(ctx, client, agent, build.DeleteTopic(normalised),
				"delete topic", successMessage("Topic deleted successfully."))
		},
	}
}

func submitTopicMessageTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: SubmitTopicMessageTool,
		Name:   "Submit Topic Message",
		Description: describe(agent,
			"This tool submits a message to a consensus topic.",
			`- topic_id (str, required)
- message (str, required)
- transaction_memo (str, optional)
`+tool.ScheduledTransactionParamsDescription()),
		Parameters: params.Schema(params.SubmitTopicMessage{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.SubmitTopicMessage](raw)
			if err != nil {
				return fail("submit topic message", err)
			}
			normalised, err := normalize.SubmitTopicMessage(p, agent, client)
			if err != nil {
				return fail("submit topic message", err)
			}
			return runTransaction(ctx, client, agent, build.SubmitTopicMessage(normalised),
				"submit topic message", successMessage("Message submitted successfully."))
		},
	}
}
