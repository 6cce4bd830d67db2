package mirrornode

import (
	"context"
	"testing"
	"time"
)

type fakeSource struct {
	rate  *ExchangeRate
	err   error
	calls int
}

func (s *fakeSource) TokenInfo(ctx context.Context, tokenID string) (*TokenInfo, error) {
	return nil, s.err
}

func (s *fakeSource) Account(ctx context.Context, idOrAlias string) (*AccountInfo, error) {
	return nil, s.err
}

func (s *fakeSource) ContractInfo(ctx context.Context, idOrEvmAddress string) (*ContractInfo, error) {
	return nil, s.err
}

func (s *fakeSource) TopicInfo(ctx context.Context, topicID string) (*TopicInfo, error) {
	return nil, s.err
}

func (s *fakeSource) TopicMessages(ctx context.Context, query TopicMessagesQuery) (*TopicMessagesPage, error) {
	return nil, s.err
}

func (s *fakeSource) TransactionRecord(ctx context.Context, transactionID string, nonce *int) (*TransactionsPage, error) {
	return nil, s.err
}

func (s *fakeSource) PendingAirdrops(ctx context.Context, accountID string) (*TokenAirdropsPage, error) {
	return nil, s.err
}

func (s *fakeSource) ExchangeRate(ctx context.Context, timestamp string) (*ExchangeRate, error) {
	s.calls++
	return s.rate, s.err
}

func validRate() *ExchangeRate {
	return &ExchangeRate{
		CurrentRate: Rate{
			CentEquivalent: 12,
			HbarEquivalent: 1,
			ExpirationTime: time.Now().Add(time.Hour).Unix(),
		},
	}
}

func TestExchangeRateServiceLifecycle(t *testing.T) {
	source := &fakeSource{rate: validRate()}
	svc := NewExchangeRateService(source)

	if svc.Ready() {
		t.Fatal("service should not be ready before Initialize")
	}
	if _, err := svc.Current(context.Background()); err == nil {
		t.Fatal("Current before Initialize should fail")
	}

	if err := svc.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if !svc.Ready() {
		t.Fatal("service should be ready after Initialize")
	}

	rate, err := svc.Current(context.Background())
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if rate.HbarPriceInCents() != 12 {
		t.Fatalf("price = %v cents", rate.HbarPriceInCents())
	}
	if source.calls != 1 {
		t.Fatalf("source fetched %d times, want 1", source.calls)
	}
}

func TestExchangeRateServiceRefreshesExpiredRate(t *testing.T) {
	expired := validRate()
	expired.CurrentRate.ExpirationTime = time.Now().Add(-time.Minute).Unix()
	source := &fakeSource{rate: expired}
	svc := NewExchangeRateService(source)

	if err := svc.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	source.rate = validRate()

	rate, err := svc.Current(context.Background())
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if source.calls != 2 {
		t.Fatalf("source fetched %d times, want 2", source.calls)
	}
	if rate.CurrentRate.ExpirationTime <= time.Now().Unix() {
		t.Fatal("refresh should replace the expired rate")
	}
}

func TestUsdToHbar(t *testing.T) {
	source := &fakeSource{rate: validRate()}
	svc := NewExchangeRateService(source)
	if err := svc.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	// 12 cents per hbar: 6 USD buys 50 hbar.
	hbar, err := svc.UsdToHbar(context.Background(), 6)
	if err != nil {
		t.Fatalf("UsdToHbar: %v", err)
	}
	if hbar != 50 {
		t.Fatalf("hbar = %v, want 50", hbar)
	}
}
