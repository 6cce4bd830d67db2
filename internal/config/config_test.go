package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadYAMLWithDefaults(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
operator:
  account_id: "0.0.7"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Operator.AccountID != "0.0.7" {
		t.Fatalf("account id = %s", cfg.Operator.AccountID)
	}
	if cfg.Network.Name != "testnet" {
		t.Fatalf("default network = %s", cfg.Network.Name)
	}
	if cfg.Agent.Mode != string(ModeAutonomous) {
		t.Fatalf("default mode = %s", cfg.Agent.Mode)
	}
	if cfg.Logger.Level != "info" || cfg.Logger.Format != "json" {
		t.Fatalf("logger defaults = %s/%s", cfg.Logger.Level, cfg.Logger.Format)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
  "network": {"name": "mainnet"},
  "agent": {"mode": "RETURN_BYTES"}
}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Network.Name != "mainnet" {
		t.Fatalf("network = %s", cfg.Network.Name)
	}
	if cfg.Agent.Mode != string(ModeReturnBytes) {
		t.Fatalf("mode = %s", cfg.Agent.Mode)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatal("empty path should fail")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("missing file should fail")
	}
}

func TestNewContextParsesOperatorKey(t *testing.T) {
	cfg := &Config{}
	cfg.Operator.AccountID = "0.0.7"
	cfg.Operator.PublicKey = "e0c8ec2758a5879ffac226a13c0c516b799e72e35141a0dd828f94d37988a4b7"
	cfg.Agent.Mode = string(ModeReturnBytes)

	ctx, err := NewContext(cfg)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if ctx.AccountID != "0.0.7" {
		t.Fatalf("account id = %s", ctx.AccountID)
	}
	if ctx.Mode != ModeReturnBytes {
		t.Fatalf("mode = %s", ctx.Mode)
	}
	if ctx.PublicKey.IsZero() {
		t.Fatal("public key should be parsed")
	}

	cfg.Operator.PublicKey = "not-a-key"
	if _, err := NewContext(cfg); err == nil {
		t.Fatal("malformed key should fail")
	}
}
