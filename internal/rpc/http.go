package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/LeJamon/gocorepc/internal/rpc/rpc_types"
)

// DefaultTimeout bounds a call when no http.Client is supplied.
const DefaultTimeout = 30 * time.Second

// HTTPCaller talks JSON-RPC 1.0 to a node over HTTP.
type HTTPCaller struct {
	url        string
	user       string
	password   string
	cookieFile string
	client     *http.Client
	logger     *zap.Logger
	nextID     *atomic.Uint64
}

// HTTPOption configures an HTTPCaller.
type HTTPOption func(*HTTPCaller)

// WithBasicAuth authenticates with a fixed rpcuser/rpcpassword pair.
func WithBasicAuth(user, password string) HTTPOption {
	return func(c *HTTPCaller) {
		c.user = user
		c.password = password
	}
}

// WithCookieFile authenticates with the node's .cookie file. The file is read on
// every call since the node rewrites it on restart.
func WithCookieFile(path string) HTTPOption {
	return func(c *HTTPCaller) {
		c.cookieFile = path
	}
}

func WithHTTPClient(client *http.Client) HTTPOption {
	return func(c *HTTPCaller) {
		c.client = client
	}
}

func WithLogger(logger *zap.Logger) HTTPOption {
	return func(c *HTTPCaller) {
		c.logger = logger
	}
}

// NewHTTPCaller returns a caller for the node listening at endpoint.
func NewHTTPCaller(endpoint string, opts ...HTTPOption) *HTTPCaller {
	c := &HTTPCaller{
		url:    strings.TrimRight(endpoint, "/"),
		client: &http.Client{Timeout: DefaultTimeout},
		logger: zap.NewNop(),
		nextID: new(atomic.Uint64),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ForWallet returns a caller whose requests address the named wallet, as needed
// when the node has more than one wallet loaded.
func (c *HTTPCaller) ForWallet(name string) *HTTPCaller {
	w := *c
	w.url = c.url + "/wallet/" + url.PathEscape(name)
	w.logger = c.logger.With(zap.String("wallet", name))
	return &w
}

// URL returns the endpoint requests are sent to.
func (c *HTTPCaller) URL() string {
	return c.url
}

func (c *HTTPCaller) Call(ctx context.Context, method string, params []any, result any) error {
	id := c.nextID.Add(1)
	body, err := json.Marshal(rpc_types.NewRequest(id, method, params))
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if err := c.authenticate(req); err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrTransport, method, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("rpc call",
		zap.String("method", method),
		zap.Uint64("id", id),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: %s", ErrUnauthorized, resp.Status)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading %s reply: %w", ErrTransport, method, err)
	}

	// The server also sends error objects with non-2xx statuses, so the body is
	// decoded before the status is judged.
	var reply rpc_types.JsonRpcResponse
	if err := json.Unmarshal(payload, &reply); err != nil {
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%w: %s: %s", ErrTransport, method, resp.Status)
		}
		return fmt.Errorf("%w: %s envelope: %w", ErrDecode, method, err)
	}
	if reply.Error != nil {
		return reply.Error
	}
	if result == nil || !reply.HasResult() {
		return nil
	}
	if err := json.Unmarshal(reply.Result, result); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecode, method, err)
	}
	return nil
}

func (c *HTTPCaller) authenticate(req *http.Request) error {
	if c.cookieFile != "" {
		raw, err := os.ReadFile(c.cookieFile)
		if err != nil {
			return fmt.Errorf("failed to read cookie file: %w", err)
		}
		user, password, ok := strings.Cut(strings.TrimSpace(string(raw)), ":")
		if !ok {
			return fmt.Errorf("malformed cookie file %s", c.cookieFile)
		}
		req.SetBasicAuth(user, password)
		return nil
	}
	if c.user != "" || c.password != "" {
		req.SetBasicAuth(c.user, c.password)
	}
	return nil
}
