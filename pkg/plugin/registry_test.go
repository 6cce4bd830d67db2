package plugin

import (
	"testing"

	"hedera-agent-go/internal/config"
	"hedera-agent-go/internal/tool"
)

func bundle(name string, methods ...string) Plugin {
	return Plugin{
		Name:    name,
		Version: "1.0.0",
		Tools: func(agent *config.Context) []*tool.Tool {
			out := make([]*tool.Tool, 0, len(methods))
			for _, m := range methods {
				out = append(out, &tool.Tool{Method: m, Name: m})
			}
			return out
		},
	}
}

func TestRegistryLookup(t *testing.T) {
	registry, err := NewRegistry(&config.Context{},
		bundle("alpha", "b_tool", "a_tool"),
		bundle("beta", "c_tool"),
	)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	if _, ok := registry.Get("a_tool"); !ok {
		t.Fatal("a_tool should be registered")
	}
	if _, ok := registry.Get("missing_tool"); ok {
		t.Fatal("missing_tool should not resolve")
	}

	tools := registry.Tools()
	if len(tools) != 3 {
		t.Fatalf("tool count = %d", len(tools))
	}
	for i, want := range []string{"a_tool", "b_tool", "c_tool"} {
		if tools[i].Method != want {
			t.Fatalf("tools[%d] = %s, want %s", i, tools[i].Method, want)
		}
	}
	if len(registry.Plugins()) != 2 {
		t.Fatalf("plugin count = %d", len(registry.Plugins()))
	}
}

func TestRegistryRejectsDuplicateMethods(t *testing.T) {
	_, err := NewRegistry(&config.Context{},
		bundle("alpha", "a_tool"),
		bundle("beta", "a_tool"),
	)
	if err == nil {
		t.Fatal("expected duplicate method error")
	}
}

func TestRegistryRejectsEmptyMethod(t *testing.T) {
	_, err := NewRegistry(&config.Context{}, bundle("alpha", ""))
	if err == nil {
		t.Fatal("expected empty method error")
	}
}

func TestBuildWithoutToolsFunc(t *testing.T) {
	p := Plugin{Name: "empty"}
	if tools := p.Build(&config.Context{}); tools != nil {
		t.Fatalf("Build = %v, want nil", tools)
	}
}
