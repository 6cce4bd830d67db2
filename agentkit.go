// Package agentkit is the embedding surface of the Hedera agent tool kit.
// A host application loads a configuration, supplies a ledger client and a
// set of plugins, and receives a flat tool surface it can hand to any agent
// framework.
package agentkit

import (
	"context"
	"encoding/json"
	"fmt"

	"hedera-agent-go/internal/config"
	"hedera-agent-go/internal/hedera"
	"hedera-agent-go/internal/plugins"
	"hedera-agent-go/internal/response"
	"hedera-agent-go/internal/tool"
	"hedera-agent-go/pkg/logger"
	"hedera-agent-go/pkg/plugin"
)

// Toolkit wires an agent context, a ledger client and a resolved tool
// registry together.
type Toolkit struct {
	client   hedera.Client
	agent    *config.Context
	registry *plugin.Registry
}

// Option customizes toolkit construction.
type Option func(*options)

type options struct {
	plugins []plugin.Plugin
}

// WithPlugins replaces the default core plugin set.
func WithPlugins(bundles ...plugin.Plugin) Option {
	return func(o *options) {
		o.plugins = bundles
	}
}

// New builds a toolkit from a loaded configuration. Without WithPlugins the
// full core plugin set is registered.
func New(cfg *config.Config, client hedera.Client, opts ...Option) (*Toolkit, error) {
	if err := logger.Init(logger.Config{
		Level:       cfg.Logger.Level,
		Format:      cfg.Logger.Format,
		OutputPaths: cfg.Logger.OutputPaths,
		Audit: logger.AuditConfig{
			Enabled: cfg.Logger.AuditPath != "",
			Path:    cfg.Logger.AuditPath,
		},
	}); err != nil {
		return nil, fmt.Errorf("initialise logging: %w", err)
	}

	agent, err := config.NewContext(cfg)
	if err != nil {
		return nil, err
	}

	o := options{plugins: plugins.All()}
	for _, opt := range opts {
		opt(&o)
	}
	registry, err := plugin.NewRegistry(agent, o.plugins...)
	if err != nil {
		return nil, err
	}
	return &Toolkit{client: client, agent: agent, registry: registry}, nil
}

// Context returns the agent context the toolkit was built with.
func (k *Toolkit) Context() *config.Context { return k.agent }

// Tools returns the resolved tool surface sorted by method.
func (k *Toolkit) Tools() []*tool.Tool { return k.registry.Tools() }

// Run executes the named tool with raw JSON arguments. Unknown methods come
// back as failure responses, matching how tools themselves report errors.
func (k *Toolkit) Run(ctx context.Context, method string, raw json.RawMessage) *response.ToolResponse {
	t, ok := k.registry.Get(method)
	if !ok {
		return response.Failure(fmt.Sprintf("Failed to execute %s: unknown tool method", method))
	}
	return tool.Run(ctx, t, k.client, k.agent, raw)
}
