package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	agentkit "hedera-agent-go"
	"hedera-agent-go/internal/config"
	"hedera-agent-go/internal/hedera"
	"hedera-agent-go/internal/mirrornode"
	"hedera-agent-go/internal/response"
)

const usage = `usage: agentkit <command> [arguments]

commands:
  tools                 list the registered tool methods
  schema <method>       print a tool's parameter schema as JSON
  call <method> [json]  invoke a tool with raw JSON parameters

The configuration file is taken from HEDERA_AGENT_CONFIG, defaulting to
configs/agentkit.yaml. Without a consensus client only read-only tools and
RETURN_BYTES mode are usable.`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		log.Fatalf("agentkit: %v", err)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println(usage)
		return nil
	}

	configPath := os.Getenv("HEDERA_AGENT_CONFIG")
	if configPath == "" {
		configPath = filepath.Join("configs", "agentkit.yaml")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Network.MirrorNodeURL == "" {
		cfg.Network.MirrorNodeURL = mirrornode.BaseURLForNetwork(cfg.Network.Name)
	}

	client, err := newOfflineClient(cfg)
	if err != nil {
		return err
	}

	kit, err := agentkit.New(cfg, client)
	if err != nil {
		return err
	}

	switch args[0] {
	case "tools":
		for _, t := range kit.Tools() {
			fmt.Printf("%-40s %s\n", t.Method, t.Name)
		}
		return nil
	case "schema":
		if len(args) < 2 {
			return fmt.Errorf("schema requires a tool method")
		}
		return printSchema(kit, args[1])
	case "call":
		if len(args) < 2 {
			return fmt.Errorf("call requires a tool method")
		}
		var raw json.RawMessage
		if len(args) > 2 {
			raw = json.RawMessage(args[2])
		}
		return printResponse(kit.Run(ctx, args[1], raw))
	default:
		fmt.Println(usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printSchema(kit *agentkit.Toolkit, method string) error {
	for _, t := range kit.Tools() {
		if t.Method != method {
			continue
		}
		encoded, err := json.MarshalIndent(t.Parameters, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
		return nil
	}
	return fmt.Errorf("unknown tool method %q", method)
}

func printResponse(resp *response.ToolResponse) error {
	if resp.IsError() {
		return fmt.Errorf("%s", resp.Error)
	}
	fmt.Println(resp.HumanMessage)
	if len(resp.Bytes) > 0 {
		fmt.Printf("signable bytes (base64): %s\n", base64.StdEncoding.EncodeToString(resp.Bytes))
	}
	return nil
}

// offlineClient satisfies the consensus client surface without a network
// connection. Execute always fails; query tools and RETURN_BYTES mode do not
// need it.
type offlineClient struct {
	network  string
	operator hedera.AccountID
	key      hedera.PublicKey
	hasOp    bool
	hasKey   bool
}

func newOfflineClient(cfg *config.Config) (*offlineClient, error) {
	client := &offlineClient{network: cfg.Network.Name}
	if cfg.Operator.AccountID != "" {
		id, err := hedera.ParseAccountID(cfg.Operator.AccountID)
		if err != nil {
			return nil, err
		}
		client.operator = id
		client.hasOp = true
	}
	if cfg.Operator.PublicKey != "" {
		key, err := hedera.ParsePublicKey(cfg.Operator.PublicKey)
		if err != nil {
			return nil, err
		}
		client.key = key
		client.hasKey = true
	}
	return client, nil
}

func (c *offlineClient) Network() string { return c.network }

func (c *offlineClient) OperatorAccountID() (hedera.AccountID, bool) { return c.operator, c.hasOp }

func (c *offlineClient) OperatorPublicKey() (hedera.PublicKey, bool) { return c.key, c.hasKey }

func (c *offlineClient) Execute(ctx context.Context, tx *hedera.Transaction) (*hedera.Receipt, error) {
	return nil, fmt.Errorf("no consensus client configured; use RETURN_BYTES mode or a read-only tool")
}
