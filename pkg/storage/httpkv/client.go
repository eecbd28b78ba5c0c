// Package httpkv implements the storage.Gateway contract against a remote
// HTTP key-value endpoint guarded by OIDC bearer tokens.
package httpkv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-dynamicform/pkg/auth"
	"github.com/goliatone/go-dynamicform/pkg/storage"
)

// DefaultTimeout bounds each gateway call. The original client relied on
// UI-level button disabling alone; here every request carries a deadline.
const DefaultTimeout = 10 * time.Second

// Option configures the client before construction.
type Option func(*Client)

// WithHTTPClient swaps the underlying *http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the per-call deadline. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// Client talks to a bearer-authenticated key-value endpoint rooted at
// {base}/kv/{key}.
type Client struct {
	baseURL    string
	tokens     auth.TokenSource
	httpClient *http.Client
	timeout    time.Duration
}

var _ storage.Gateway = (*Client)(nil)

// New builds a client for the given base URL. The token source supplies
// the bearer token per call; a nil source makes every call fail with
// storage.ErrNoToken.
func New(baseURL string, tokens auth.TokenSource, options ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errors.New("httpkv: base URL is required")
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("httpkv: invalid base URL: %w", err)
	}

	c := &Client{
		baseURL:    trimmed,
		tokens:     tokens,
		httpClient: http.DefaultClient,
		timeout:    DefaultTimeout,
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// Get fetches the value for a key. A 404 maps to storage.ErrNotFound.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	resp, err := c.do(ctx, http.MethodGet, key, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpkv: read response: %w", err)
	}
	return data, nil
}

// Put stores a value under a key.
func (c *Client) Put(ctx context.Context, key string, value []byte) error {
	resp, err := c.do(ctx, http.MethodPut, key, value)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()
	return nil
}

// Delete removes a key. Deleting an absent key succeeds: the server's 404
// is treated the same as a 2xx here, since the goal state is reached.
func (c *Client) Delete(ctx context.Context, key string) error {
	resp, err := c.do(ctx, http.MethodDelete, key, nil)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}
	_ = resp.Body.Close()
	return nil
}

func (c *Client) do(ctx context.Context, method, key string, body []byte) (*http.Response, error) {
	if strings.TrimSpace(key) == "" {
		return nil, errors.New("httpkv: key is required")
	}
	if c.tokens == nil {
		return nil, storage.ErrNoToken
	}

	token, err := c.tokens.Token(ctx)
	if err != nil || strings.TrimSpace(token) == "" {
		return nil, storage.ErrNoToken
	}

	reqCtx := ctx
	var cancel context.CancelFunc
	if c.timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	endpoint := c.baseURL + "/kv/" + url.PathEscape(key)
	req, err := http.NewRequestWithContext(reqCtx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("httpkv: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpkv: %s %s: %w", method, key, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		_ = resp.Body.Close()
		return nil, storage.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("httpkv: %s %s: unexpected status %s", method, key, resp.Status)
	}
	return resp, nil
}
