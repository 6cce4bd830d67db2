package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes everything the kit needs at startup: which network to
// talk to, the operator identity, execution mode and logging behaviour.
type Config struct {
	Network  NetworkConfig  `json:"network" yaml:"network"`
	Operator OperatorConfig `json:"operator" yaml:"operator"`
	Agent    AgentConfig    `json:"agent" yaml:"agent"`
	Cache    CacheConfig    `json:"cache" yaml:"cache"`
	Logger   LoggerConfig   `json:"logger" yaml:"logger"`
}

// NetworkConfig selects the ledger and the mirror node endpoint.
type NetworkConfig struct {
	Name          string `json:"name" yaml:"name"`
	MirrorNodeURL string `json:"mirror_node_url" yaml:"mirror_node_url"`
}

// CacheConfig controls caching of mirror-node lookups. With an empty redis
// address the cache is process-local.
type CacheConfig struct {
	Enabled       bool   `json:"enabled" yaml:"enabled"`
	RedisAddr     string `json:"redis_addr" yaml:"redis_addr"`
	RedisPassword string `json:"redis_password" yaml:"redis_password"`
	RedisDB       int    `json:"redis_db" yaml:"redis_db"`
	KeyPrefix     string `json:"key_prefix" yaml:"key_prefix"`
}

// OperatorConfig carries the operator account the kit defaults to.
// The private key stays with the consensus client; only the public half is
// needed here, for default-key resolution.
type OperatorConfig struct {
	AccountID string `json:"account_id" yaml:"account_id"`
	PublicKey string `json:"public_key" yaml:"public_key"`
}

// AgentConfig controls how tool calls execute.
type AgentConfig struct {
	Mode string `json:"mode" yaml:"mode"`
}

// LoggerConfig mirrors pkg/logger.Config for file-based setup.
type LoggerConfig struct {
	Level       string   `json:"level" yaml:"level"`
	Format      string   `json:"format" yaml:"format"`
	OutputPaths []string `json:"output_paths" yaml:"output_paths"`
	AuditPath   string   `json:"audit_path" yaml:"audit_path"`
}

// Load parses a YAML or JSON configuration file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults fills the fields a minimal config may omit.
func (c *Config) applyDefaults() {
	if c.Network.Name == "" {
		c.Network.Name = "testnet"
	}
	if c.Agent.Mode == "" {
		c.Agent.Mode = string(ModeAutonomous)
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.Format == "" {
		c.Logger.Format = "json"
	}
}
