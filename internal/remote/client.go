// Package remote is the HTTP facade over the nova dataset service.
// Every request carries the auth token; every operation is attempted
// exactly once.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// AuthHeader carries the bearer token on every request.
const AuthHeader = "Auth-Token"

// DefaultTimeout bounds a single request, including the body transfer.
const DefaultTimeout = 5 * time.Minute

// Client talks to one dataset service with one token.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	log     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithLogger attaches a logger for request tracing.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New builds a Client. An empty remote or token fails before any
// network attempt.
func New(remote, token string, opts ...Option) (*Client, error) {
	if remote == "" {
		return nil, ErrNoRemote
	}
	if token == "" {
		return nil, ErrNoToken
	}
	c := &Client{
		baseURL: strings.TrimRight(remote, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: DefaultTimeout},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CreateDataset registers a new dataset.
func (c *Client) CreateDataset(ctx context.Context, req CreateRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}
	resp, err := c.do(ctx, http.MethodPost, "/api/datasets", bytes.NewReader(body), "application/json")
	if err != nil {
		return err
	}
	return drain(resp)
}

// PushData uploads one packed snapshot of a dataset.
func (c *Client) PushData(ctx context.Context, collection, name string, data io.Reader) error {
	path := fmt.Sprintf("/api/datasets/%s/%s/data", url.PathEscape(collection), url.PathEscape(name))
	resp, err := c.do(ctx, http.MethodPost, path, data, "application/gzip")
	if err != nil {
		return err
	}
	return drain(resp)
}

// CloneData downloads the current snapshot of a dataset. The whole
// stream is buffered so the caller can rewind it for extraction.
func (c *Client) CloneData(ctx context.Context, collection, name string) (*bytes.Reader, error) {
	path := fmt.Sprintf("/api/datasets/%s/%s/data", url.PathEscape(collection), url.PathEscape(name))
	resp, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return bytes.NewReader(data), nil
}

// Search queries datasets visible to the token.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	path := "/api/search?q=" + url.QueryEscape(query)
	resp, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	var results []SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return results, nil
}

// ListDatasets lists the datasets owned by the token.
func (c *Client) ListDatasets(ctx context.Context) ([]Dataset, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/datasets", nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	var datasets []Dataset
	if err := json.NewDecoder(resp.Body).Decode(&datasets); err != nil {
		return nil, fmt.Errorf("decode dataset list: %w", err)
	}
	return datasets, nil
}

// do issues one request and maps non-2xx responses to *APIError. On
// success the caller owns the response body.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set(AuthHeader, c.token)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	c.log.Debug("request", zap.String("method", method), zap.String("path", path))
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Endpoint:   path,
			Message:    errorMessage(resp),
		}
	}
	return resp, nil
}

// errorMessage extracts a human-readable message from an error
// response body.
func errorMessage(resp *http.Response) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return http.StatusText(resp.StatusCode)
}

func drain(resp *http.Response) error {
	defer resp.Body.Close()
	_, err := io.Copy(io.Discard, resp.Body)
	return err
}
