// Package catapi is a thin typed client for a cat image/breed REST service.
// Every operation is a single GET against the remote API; there is no
// caching, retrying or batching, and repeated calls repeat the round trip.
package catapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pawmark-hq/catpedia/pkg/httpclient"
	"go.uber.org/zap"
)

const apiKeyHeader = "x-api-key"

const defaultTimeout = 15 * time.Second

// Config carries the remote endpoints and credential for a Client. Tests
// point BaseURL at a local mock server.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.thecatapi.com/v1/".
	BaseURL string
	// ImageCDNURL prefixes reference image ids to form breed image URLs.
	ImageCDNURL string
	// APIKey is sent as x-api-key on breed endpoints. May be empty; the
	// header is then omitted.
	APIKey string
	// HTTPTimeout bounds each round trip when the default transport is used.
	HTTPTimeout time.Duration
}

// Client issues requests against the cat API. Safe for concurrent use; it
// holds no state between calls.
type Client struct {
	cfg  Config
	http httpclient.Client
	log  *zap.SugaredLogger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient injects a transport, replacing the default resty client.
func WithHTTPClient(c httpclient.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// WithLogger injects a logger. The default is a nop logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(cl *Client) { cl.log = log }
}

// New builds a Client from cfg.
func New(cfg Config, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("catapi: base url is empty")
	}
	if strings.TrimSpace(cfg.ImageCDNURL) == "" {
		return nil, fmt.Errorf("catapi: image cdn url is empty")
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = defaultTimeout
	}

	cl := &Client{cfg: cfg}
	for _, opt := range opts {
		opt(cl)
	}
	if cl.http == nil {
		cl.http = httpclient.NewRestyClient(cfg.HTTPTimeout)
	}
	if cl.log == nil {
		cl.log = zap.NewNop().Sugar()
	}
	return cl, nil
}

// endpoint joins the base URL with a relative API path.
func (c *Client) endpoint(path string) string {
	return strings.TrimSuffix(c.cfg.BaseURL, "/") + "/" + path
}

// getJSON performs one GET against path and decodes the body into out.
// withKey controls whether the credential header is attached; the random
// image endpoint does not take one.
func (c *Client) getJSON(ctx context.Context, path string, query map[string]string, withKey bool, out any) error {
	var headers map[string]string
	if withKey && c.cfg.APIKey != "" {
		headers = map[string]string{apiKeyHeader: c.cfg.APIKey}
	}

	resp, err := c.http.Get(ctx, c.endpoint(path), headers, query)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}

	body := resp.Body()
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%s returned status %d body: %s", path, resp.StatusCode(), bodySnippet(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func bodySnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}
