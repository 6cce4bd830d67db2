package mirrornode

import (
	"context"
	"testing"
	"time"
)

type countingSource struct {
	fakeSource
	tokenCalls int
}

func (s *countingSource) TokenInfo(ctx context.Context, tokenID string) (*TokenInfo, error) {
	s.tokenCalls++
	return &TokenInfo{TokenID: tokenID, Decimals: "2"}, nil
}

func TestMemoryCacheExpiry(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, ok, err := cache.Get(ctx, "k")
	if err != nil || !ok || value != "v" {
		t.Fatalf("Get = %q %v %v", value, ok, err)
	}

	if err := cache.Set(ctx, "gone", "v", -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := cache.Get(ctx, "gone"); ok {
		t.Fatal("expired entry should miss")
	}
	if _, ok, _ := cache.Get(ctx, "absent"); ok {
		t.Fatal("absent entry should miss")
	}
}

func TestMemoryCacheDropsExpiredEntries(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "gone", "v", -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := cache.Get(ctx, "gone"); ok {
		t.Fatal("expired entry should miss")
	}

	cache.mu.RLock()
	_, still := cache.entries["gone"]
	cache.mu.RUnlock()
	if still {
		t.Fatal("expired entry should be removed from the map")
	}
}

func TestCachedServiceServesTokenInfoFromCache(t *testing.T) {
	source := &countingSource{}
	svc := NewCachedService(source, NewMemoryCache())
	ctx := context.Background()

	first, err := svc.TokenInfo(ctx, "0.0.500")
	if err != nil {
		t.Fatalf("TokenInfo: %v", err)
	}
	second, err := svc.TokenInfo(ctx, "0.0.500")
	if err != nil {
		t.Fatalf("TokenInfo: %v", err)
	}
	if source.tokenCalls != 1 {
		t.Fatalf("source fetched %d times, want 1", source.tokenCalls)
	}
	if first.Decimals != second.Decimals || second.Decimals != "2" {
		t.Fatalf("decimals = %s / %s", first.Decimals, second.Decimals)
	}

	// A different token misses the cache.
	if _, err := svc.TokenInfo(ctx, "0.0.501"); err != nil {
		t.Fatalf("TokenInfo: %v", err)
	}
	if source.tokenCalls != 2 {
		t.Fatalf("source fetched %d times, want 2", source.tokenCalls)
	}
}
