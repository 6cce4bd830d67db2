package plugin

import (
	"fmt"
	"sort"
	"sync"

	"hedera-agent-go/internal/config"
	"hedera-agent-go/internal/tool"
)

// Registry resolves plugins into a flat, method-indexed tool set. It is
// safe for concurrent lookup after registration.
type Registry struct {
	mu      sync.RWMutex
	plugins []Plugin
	tools   map[string]*tool.Tool
}

// NewRegistry builds a registry from the given plugins, resolving their
// tools against the agent context. Duplicate tool methods are rejected.
func NewRegistry(agent *config.Context, plugins ...Plugin) (*Registry, error) {
	r := &Registry{tools: make(map[string]*tool.Tool)}
	for _, p := range plugins {
		if err := r.Register(agent, p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register resolves one plugin and adds its tools.
func (r *Registry) Register(agent *config.Context, p Plugin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range p.Build(agent) {
		if t.Method == "" {
			return fmt.Errorf("plugin %s contains a tool without a method", p.Name)
		}
		if _, exists := r.tools[t.Method]; exists {
			return fmt.Errorf("duplicate tool method %s registered by plugin %s", t.Method, p.Name)
		}
		r.tools[t.Method] = t
	}
	r.plugins = append(r.plugins, p)
	return nil
}

// Get returns the tool registered under a method.
func (r *Registry) Get(method string) (*tool.Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[method]
	return t, ok
}

// Tools returns all registered tools sorted by method.
func (r *Registry) Tools() []*tool.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*tool.Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Method < out[j].Method })
	return out
}

// Plugins returns the registered plugins in registration order.
func (r *Registry) Plugins() []Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Plugin(nil), r.plugins...)
}
