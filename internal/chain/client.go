// Package chain implements the JSON-RPC client for the chain node.
package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/utxoset7000-backend/internal/clock"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrEmptyResult marks a well-formed node response that carries no result.
// Callers treat it as fatal for the current cycle, not as a transient failure.
var ErrEmptyResult = errors.New("rpc response has no result")

// RPCError is a decoded error object from the node's response envelope.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Config holds the node connection settings.
type Config struct {
	URL         string
	User        string
	Password    string
	HTTPTimeout time.Duration
	RetryDelay  time.Duration
	// RateLimit caps outbound requests per second; zero means unlimited.
	RateLimit int
}

// Client speaks JSON-RPC 1.0 over a single HTTP endpoint.
//
// Read calls retry transport failures and undecodable responses forever with
// a fixed delay: the indexer stalls rather than skips data, which also means
// a permanently unreachable node blocks the calling loop indefinitely. Only
// context cancellation interrupts the retrying.
type Client struct {
	url        string
	user       string
	password   string
	httpClient *http.Client
	rl         ratelimit.Limiter
	retryDelay time.Duration
	sleep      func(context.Context, time.Duration) error
	logger     *zap.Logger
	rpcMetrics RPCMetrics
	requestID  atomic.Uint64
}

// NewClient constructs an instrumented, rate-limited RPC client.
func NewClient(cfg Config, rpcMetrics RPCMetrics, logger *zap.Logger) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("rpc url is required")
	}
	if rpcMetrics == nil {
		return nil, errors.New("rpc metrics is required")
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 5 * time.Second
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}

	rl := ratelimit.NewUnlimited()
	if cfg.RateLimit > 0 {
		rl = ratelimit.New(cfg.RateLimit)
	}

	return &Client{
		url:        cfg.URL,
		user:       cfg.User,
		password:   cfg.Password,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		rl:         rl,
		retryDelay: cfg.RetryDelay,
		sleep:      clock.SleepWithContext,
		logger:     logger.Named("chainRPC"),
		rpcMetrics: rpcMetrics,
	}, nil
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcEnvelope struct {
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

// post performs a single round trip. Any error it returns is transient:
// the node either was unreachable or produced an undecodable envelope.
func (c *Client) post(ctx context.Context, method string, params []any) (*rpcEnvelope, error) {
	c.rl.Take()

	body, err := json.Marshal(rpcRequest{
		JSONRPC: "1.0",
		ID:      c.requestID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.user != "" {
		req.SetBasicAuth(c.user, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", method, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	// Nodes report rpc-level failures inside the envelope with a 500 status,
	// so the envelope is decoded regardless of the status code.
	var env rpcEnvelope
	if err = json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode %s response (status %d): %w", method, resp.StatusCode, err)
	}
	if env.Error == nil && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s response status %d without rpc error", method, resp.StatusCode)
	}
	return &env, nil
}

// call retries post until the node produces a decodable envelope, then
// surfaces the envelope's verdict: a decoded rpc error or an absent result is
// returned to the caller instead of being retried.
func (c *Client) call(ctx context.Context, operation, method string, params []any) (json.RawMessage, error) {
	for {
		started := time.Now()
		env, err := c.post(ctx, method, params)
		if err != nil {
			c.rpcMetrics.Observe(operation, err, started)
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Warn("rpc call failed, retrying",
				zap.String("method", method),
				zap.Duration("retryDelay", c.retryDelay),
				zap.Error(err),
			)
			if sleepErr := c.sleep(ctx, c.retryDelay); sleepErr != nil {
				return nil, sleepErr
			}
			continue
		}

		switch {
		case env.Error != nil:
			err = env.Error
		case len(env.Result) == 0 || bytes.Equal(env.Result, []byte("null")):
			err = ErrEmptyResult
		}
		c.rpcMetrics.Observe(operation, err, started)
		if err != nil {
			return nil, err
		}
		return env.Result, nil
	}
}

// SubmitRawTransaction broadcasts a raw transaction and returns its txid.
// Unlike the read calls it never retries: the submitter owns retry policy.
func (c *Client) SubmitRawTransaction(ctx context.Context, rawTx string) (txid string, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("send_raw_transaction", err, started)
	}()

	env, err := c.post(ctx, "sendrawtransaction", []any{rawTx})
	if err != nil {
		c.logger.Error("submit raw transaction failed", zap.Error(err))
		return "", err
	}
	if env.Error != nil {
		c.logger.Error("submit raw transaction rejected", zap.Error(env.Error))
		err = env.Error
		return "", err
	}
	if len(env.Result) == 0 || bytes.Equal(env.Result, []byte("null")) {
		err = ErrEmptyResult
		return "", err
	}
	if err = json.Unmarshal(env.Result, &txid); err != nil {
		err = fmt.Errorf("decode sendrawtransaction result: %w", err)
		return "", err
	}
	return txid, nil
}
