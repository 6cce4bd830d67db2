// Package tool defines the runtime surface an agent framework binds to:
// named tools carrying a JSON parameter schema and an execute function.
// Execution never panics past the boundary and never returns a Go error;
// failures come back as error-carrying tool responses the agent can read.
package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hedera-agent-go/internal/config"
	"hedera-agent-go/internal/hedera"
	"hedera-agent-go/internal/response"
	"hedera-agent-go/pkg/logger"
)

// Handler is a tool's implementation. Raw carries the tool-call arguments
// exactly as the agent framework produced them.
type Handler func(ctx context.Context, client hedera.Client, agent *config.Context, raw json.RawMessage) *response.ToolResponse

// Tool is one callable operation exposed to an agent.
type Tool struct {
	// Method is the stable machine identifier, e.g. "transfer_hbar_tool".
	Method string
	// Name is the human-facing title.
	Name string
	// Description is the full prompt text describing usage and parameters.
	Description string
	// Parameters is the JSON schema of the raw parameters.
	Parameters map[string]any
	// Execute runs the tool.
	Execute Handler
}

// Run executes a tool under a fresh invocation id, logging the call to the
// audit trail. Panics inside handlers are converted into failure responses.
func Run(ctx context.Context, t *Tool, client hedera.Client, agent *config.Context, raw json.RawMessage) (resp *response.ToolResponse) {
	invocationID := uuid.NewString()
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			message := fmt.Sprintf("Failed to execute %s: %v", t.Method, r)
			logger.Named("tool").Error("tool panicked", "invocation_id", invocationID, "method", t.Method, "panic", r)
			resp = response.Failure(message)
		}
		logger.Audit().Info("tool invocation",
			"invocation_id", invocationID,
			"method", t.Method,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", resp.Error,
		)
	}()
	resp = t.Execute(ctx, client, agent, raw)
	if resp == nil {
		resp = response.Failure(fmt.Sprintf("Failed to execute %s: tool returned no response", t.Method))
	}
	return resp
}

// DecodeParams unmarshals raw tool-call arguments into a parameter record.
// A nil raw value decodes to the zero record so optional-only tools accept
// empty calls.
func DecodeParams[T any](raw json.RawMessage) (T, error) {
	var out T
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("could not decode tool parameters: %w", err)
	}
	return out, nil
}
