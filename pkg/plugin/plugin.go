// Package plugin groups related tools into named, versioned bundles and
// resolves them into a flat tool registry. Plugins are plain values; there
// is no dynamic loading, an application composes the bundles it wants at
// startup.
package plugin

import (
	"hedera-agent-go/internal/config"
	"hedera-agent-go/internal/tool"
)

// Plugin is a named bundle of tools. Tools are constructed lazily against
// the agent context so descriptions can mention the connected account.
type Plugin struct {
	// Name identifies the bundle, e.g. "core-token-plugin".
	Name string
	// Version is the bundle's semantic version.
	Version string
	// Description says what the bundle's tools do.
	Description string
	// Tools builds the bundle's tools for the given agent context.
	Tools func(agent *config.Context) []*tool.Tool
}

// Build resolves the plugin into its tools.
func (p Plugin) Build(agent *config.Context) []*tool.Tool {
	if p.Tools == nil {
		return nil
	}
	return p.Tools(agent)
}
