package config

import (
	"github.com/redis/go-redis/v9"

	"hedera-agent-go/internal/hedera"
	"hedera-agent-go/internal/mirrornode"
)

// Mode selects how built transactions are handled.
type Mode string

const (
	// ModeAutonomous executes transactions immediately and waits for receipts.
	ModeAutonomous Mode = "AUTONOMOUS"
	// ModeReturnBytes freezes and serializes transactions for external signing.
	ModeReturnBytes Mode = "RETURN_BYTES"
)

// Context is the request-scoped configuration passed into every normalizer
// and execution call. It is constructed once per agent session and treated
// as read-only afterwards.
type Context struct {
	// AccountID is the default account in canonical shard.realm.num form,
	// or empty when the operator account should be used.
	AccountID string
	// PublicKey is the default account's public key when known.
	PublicKey hedera.PublicKey
	// Mode picks the execution strategy.
	Mode Mode
	// Mirror optionally overrides the mirror-node read service; when nil,
	// callers construct one for the client's network.
	Mirror mirrornode.Service
}

// NewContext builds a Context from a loaded file config.
func NewContext(cfg *Config) (*Context, error) {
	ctx := &Context{
		AccountID: cfg.Operator.AccountID,
		Mode:      Mode(cfg.Agent.Mode),
	}
	if cfg.Operator.PublicKey != "" {
		key, err := hedera.ParsePublicKey(cfg.Operator.PublicKey)
		if err != nil {
			return nil, err
		}
		ctx.PublicKey = key
	}
	if cfg.Network.MirrorNodeURL != "" {
		var mirror mirrornode.Service = mirrornode.NewRESTClient(cfg.Network.MirrorNodeURL)
		if cfg.Cache.Enabled {
			mirror = mirrornode.NewCachedService(mirror, newCache(cfg.Cache))
		}
		ctx.Mirror = mirror
	}
	return ctx, nil
}

// newCache picks the cache backend: redis when an address is configured so a
// fleet of agents shares lookups, otherwise process-local memory.
func newCache(cfg CacheConfig) mirrornode.Cache {
	if cfg.RedisAddr == "" {
		return mirrornode.NewMemoryCache()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return mirrornode.NewRedisCache(client, cfg.KeyPrefix)
}
