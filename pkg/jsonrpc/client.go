package jsonrpc

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"go.uber.org/ratelimit"
)

const defaultTimeout = 5 * time.Second

var (
	// MaxNumOfFailingRequests is the cap of failing requests after which the
	// circuit breaker may trip.
	MaxNumOfFailingRequests = 10
	// FailingRatio is the ratio of failing requests that trips the breaker.
	FailingRatio = 0.6
)

type request struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      string      `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

type response struct {
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
	ID     string          `json:"id"`
}

// Client is a JSON-RPC 2.0 client over HTTP(S). Credentials, if any, are
// carried by the endpoint URL userinfo and sent as HTTP basic auth.
type Client struct {
	endpoint   *url.URL
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker
	limiter    ratelimit.Limiter
}

// Option is the signature of a Client functional option.
type Option func(*Client)

// WithTimeout overrides the default 5s timeout of the underlying HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithInsecureSkipVerify disables TLS certificate verification to allow
// self-signed certificates on https endpoints.
func WithInsecureSkipVerify() Option {
	return func(c *Client) {
		c.httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
}

// WithRateLimit caps the number of requests per second issued by the client.
func WithRateLimit(rps int) Option {
	return func(c *Client) {
		c.limiter = ratelimit.New(rps)
	}
}

// NewClient returns a Client for the given endpoint, or an error if the
// endpoint misses the host or port part.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, ErrMissingEndpoint
	}
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}
	if parsed.Hostname() == "" {
		return nil, ErrMissingHost
	}
	if parsed.Port() == "" {
		return nil, ErrMissingPort
	}

	client := &Client{
		endpoint:   parsed,
		httpClient: &http.Client{Timeout: defaultTimeout},
		cb:         newCircuitBreaker(parsed.Hostname()),
		limiter:    ratelimit.NewUnlimited(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Endpoint returns the endpoint URL the client was built with, credentials
// included.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// Call performs a single JSON-RPC call and returns the raw result member of
// the response. A non-2xx status or an error member yields a *RPCError.
func (c *Client) Call(
	ctx context.Context, method string, params interface{},
) (json.RawMessage, error) {
	c.limiter.Take()

	iRes, err := c.cb.Execute(func() (interface{}, error) {
		return c.do(ctx, method, params)
	})
	if err != nil {
		return nil, err
	}
	return iRes.(json.RawMessage), nil
}

func (c *Client) do(
	ctx context.Context, method string, params interface{},
) (json.RawMessage, error) {
	body, err := json.Marshal(request{
		JSONRPC: "2.0",
		ID:      uuid.New().String(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.endpoint.String(), bytes.NewReader(body),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if user := c.endpoint.User.Username(); user != "" {
		password, _ := c.endpoint.User.Password()
		req.SetBasicAuth(user, password)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", method, err)
	}

	if res.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}

	var parsed response
	if err := json.Unmarshal(resBody, &parsed); err != nil {
		if res.StatusCode != http.StatusOK {
			return nil, &RPCError{Code: res.StatusCode, Message: http.StatusText(res.StatusCode)}
		}
		return nil, fmt.Errorf("%s: unmarshal response: %w", method, err)
	}
	if parsed.Error != nil {
		return nil, parsed.Error
	}
	if res.StatusCode != http.StatusOK {
		return nil, &RPCError{Code: res.StatusCode, Message: http.StatusText(res.StatusCode)}
	}

	return parsed.Result, nil
}

// newCircuitBreaker returns a *gobreaker.CircuitBreaker with a default
// state-changing function that activates if the overall number of failing
// requests has reached MaxNumOfFailingRequests and the failing ratio has met
// FailingRatio.
func newCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: name,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return int(counts.Requests) > MaxNumOfFailingRequests && ratio >= FailingRatio
		},
	})
}
