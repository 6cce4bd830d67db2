package mirrornode

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	xerrors "hedera-agent-go/internal/errors"
)

// RESTClient implements Service against the mirror-node REST API.
type RESTClient struct {
	http *resty.Client
}

// NewRESTClient builds a client for the given base URL
// (e.g. https://testnet.mirrornode.hedera.com/api/v1).
func NewRESTClient(baseURL string) *RESTClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)
	return &RESTClient{http: client}
}

func (c *RESTClient) get(ctx context.Context, path string, query url.Values, out any) error {
	req := c.http.R().SetContext(ctx).SetResult(out)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	resp, err := req.Get(path)
	if err != nil {
		return xerrors.Wrap(xerrors.CodeMirrorFailure, err, fmt.Sprintf("GET %s", path))
	}
	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return xerrors.Newf(xerrors.CodeNotFound, "mirror node has no entry for %s", path)
	case resp.IsError():
		return xerrors.Newf(xerrors.CodeMirrorFailure, "GET %s returned %s", path, resp.Status())
	}
	return nil
}

// TokenInfo fetches token metadata, including its decimal count.
func (c *RESTClient) TokenInfo(ctx context.Context, tokenID string) (*TokenInfo, error) {
	var info TokenInfo
	if err := c.get(ctx, "/tokens/"+tokenID, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Account fetches an account by id, alias or EVM address.
func (c *RESTClient) Account(ctx context.Context, idOrAlias string) (*AccountInfo, error) {
	var info AccountInfo
	if err := c.get(ctx, "/accounts/"+idOrAlias, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ContractInfo fetches a contract by id or EVM address.
func (c *RESTClient) ContractInfo(ctx context.Context, idOrEvmAddress string) (*ContractInfo, error) {
	var info ContractInfo
	if err := c.get(ctx, "/contracts/"+idOrEvmAddress, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// TopicInfo fetches consensus topic metadata.
func (c *RESTClient) TopicInfo(ctx context.Context, topicID string) (*TopicInfo, error) {
	var info TopicInfo
	if err := c.get(ctx, "/topics/"+topicID, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// TopicMessages lists messages for a topic with optional time filters.
func (c *RESTClient) TopicMessages(ctx context.Context, query TopicMessagesQuery) (*TopicMessagesPage, error) {
	params := url.Values{}
	if query.StartTime != "" {
		params.Add("timestamp", "gte:"+query.StartTime)
	}
	if query.EndTime != "" {
		params.Add("timestamp", "lte:"+query.EndTime)
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}
	var page TopicMessagesPage
	if err := c.get(ctx, "/topics/"+query.TopicID+"/messages", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// TransactionRecord fetches the mirrored record(s) for a transaction id in
// the dash-separated mirror form.
func (c *RESTClient) TransactionRecord(ctx context.Context, transactionID string, nonce *int) (*TransactionsPage, error) {
	params := url.Values{}
	if nonce != nil {
		params.Set("nonce", strconv.Itoa(*nonce))
	}
	var page TransactionsPage
	if err := c.get(ctx, "/transactions/"+transactionID, params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// PendingAirdrops lists airdrops sent to an account that it has not yet
// claimed.
func (c *RESTClient) PendingAirdrops(ctx context.Context, accountID string) (*TokenAirdropsPage, error) {
	var page TokenAirdropsPage
	if err := c.get(ctx, "/accounts/"+accountID+"/airdrops/pending", nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ExchangeRate fetches the network HBAR/USD rate, optionally at a consensus
// timestamp.
func (c *RESTClient) ExchangeRate(ctx context.Context, timestamp string) (*ExchangeRate, error) {
	params := url.Values{}
	if timestamp != "" {
		params.Set("timestamp", timestamp)
	}
	var rate ExchangeRate
	if err := c.get(ctx, "/network/exchangerate", params, &rate); err != nil {
		return nil, err
	}
	return &rate, nil
}
