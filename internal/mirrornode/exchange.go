package mirrornode

import (
	"context"
	"sync"
	"time"

	xerrors "hedera-agent-go/internal/errors"
)

// ExchangeRateService caches the network HBAR/USD exchange rate. It is an
// explicitly constructed object: callers Initialize it once and may check
// Ready before use. The cached pair refreshes itself once the current rate
// expires.
type ExchangeRateService struct {
	source Service

	mu    sync.RWMutex
	rate  *ExchangeRate
	ready bool
}

// NewExchangeRateService wraps a mirror-node service.
func NewExchangeRateService(source Service) *ExchangeRateService {
	return &ExchangeRateService{source: source}
}

// Initialize fetches the first rate pair. Calling it again refreshes the
// cache.
func (s *ExchangeRateService) Initialize(ctx context.Context) error {
	rate, err := s.source.ExchangeRate(ctx, "")
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.rate = rate
	s.ready = true
	s.mu.Unlock()
	return nil
}

// Ready reports whether Initialize has completed successfully.
func (s *ExchangeRateService) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Current returns the cached rate, refreshing it when the current rate has
// expired.
func (s *ExchangeRateService) Current(ctx context.Context) (*ExchangeRate, error) {
	s.mu.RLock()
	rate := s.rate
	ready := s.ready
	s.mu.RUnlock()

	if !ready {
		return nil, xerrors.New(xerrors.CodeNotInitialized, "exchange rate service is not initialized")
	}
	if time.Now().Unix() >= rate.CurrentRate.ExpirationTime {
		if err := s.Initialize(ctx); err != nil {
			return nil, err
		}
		s.mu.RLock()
		rate = s.rate
		s.mu.RUnlock()
	}
	return rate, nil
}

// UsdToHbar converts a USD amount into hbar at the current rate.
func (s *ExchangeRateService) UsdToHbar(ctx context.Context, usd float64) (float64, error) {
	rate, err := s.Current(ctx)
	if err != nil {
		return 0, err
	}
	cents := rate.HbarPriceInCents()
	if cents == 0 {
		return 0, xerrors.New(xerrors.CodeMirrorFailure, "exchange rate has zero hbar equivalent")
	}
	return usd * 100 / cents, nil
}
