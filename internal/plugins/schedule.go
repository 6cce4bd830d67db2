package plugins

import (
	"context"
	"encoding/json"

	"hedera-agent-go/internal/build"
	"hedera-agent-go/internal/config"
	"hedera-agent-go/internal/hedera"
	"hedera-agent-go/internal/normalize"
	"hedera-agent-go/internal/params"
	"hedera-agent-go/internal/response"
	"hedera-agent-go/internal/tool"
	"hedera-agent-go/pkg/plugin"
)

// Tool methods exposed by the schedule plugin.
const (
	SignScheduleTool   = "sign_schedule_tool"
	DeleteScheduleTool = "delete_schedule_tool"
)

// Schedule bundles the tools that act on pending scheduled transactions.
func Schedule() plugin.Plugin {
	return plugin.Plugin{
		Name:        "core-schedule-plugin",
		Version:     "1.0.0",
		Description: "Signing and cancelling pending scheduled transactions",
		Tools: func(agent *config.Context) []*tool.Tool {
			return []*tool.Tool{
				signScheduleTool(agent),
				deleteScheduleTool(agent),
			}
		},
	}
}

func signScheduleTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: SignScheduleTool,
		Name:   "Sign Schedule",
		Description: describe(agent,
			"This tool adds the caller's signature to a pending scheduled transaction.",
			`- schedule_id (str, required)`),
		Parameters: params.Schema(params.SignSchedule{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.SignSchedule](raw)
			if err != nil {
				return fail("sign schedule", err)
			}
			normalised, err := normalize.SignSchedule(p)
			if err != nil {
				return fail("sign schedule", err)
			}
			return runTransaction(ctx, client, agent, build.SignSchedule(normalised),
				"sign schedule", successMessage("Schedule signed successfully."))
		},
	}
}

func deleteScheduleTool(agent *config.Context) *tool.Tool {
	return &tool.Tool{
		Method: DeleteScheduleTool,
		Name:   "Delete Schedule",
		Description: describe(agent,
			"This tool cancels a pending scheduled transaction before it executes.",
			`- schedule_id (str, required)`),
		Parameters: params.Schema(params.DeleteSchedule{}),
		Execute: func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse {
			p, err := tool.DecodeParams[params.DeleteSchedule](raw)
			if err != nil {
				return fail("delete schedule", err)
			}
			normalised, err := normalize.DeleteSchedule(p)
			if err != nil {
				return fail("delete schedule", err)
			}
			return runTransaction(ctx, client, agent, build.DeleteSchedule(normalised),
				"delete schedule", successMessage("Schedule deleted successfully."))
		},
	}
}
