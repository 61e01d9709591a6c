// Package conical is a small REST client for the Conical test tracking
// service: product lookup, test run set search and evidence set creation.
package conical

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/borsuksoftware/conical-es/pkg/models"
)

// ErrNotFound is wrapped by RemoteError when the server answers 404.
var ErrNotFound = errors.New("not found")

// RemoteError is any failure talking to the server: transport errors as well
// as non-2xx answers.
type RemoteError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	msg := fmt.Sprintf("%s: server returned status %d", e.Op, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *RemoteError) Unwrap() error { return e.Err }

// Client talks to one Conical server.
type Client struct {
	baseURL *url.URL
	token   string
	http    *http.Client
	logger  *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout bounds every request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a client for server, which must be an absolute URL.
// token may be empty for anonymous access.
func NewClient(server, token string, opts ...Option) (*Client, error) {
	if server == "" {
		return nil, fmt.Errorf("%w: no server specified", models.ErrConfiguration)
	}
	u, err := url.Parse(server)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("%w: unable to parse %s as a valid url", models.ErrConfiguration, server)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")

	c := &Client{
		baseURL: u,
		token:   token,
		http:    &http.Client{Timeout: 2 * time.Minute},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the server address the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) endpoint(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return c.baseURL.String() + "/api/" + strings.Join(escaped, "/")
}

// do sends one request and decodes a JSON answer into out. There are no
// retries.
func (c *Client) do(ctx context.Context, op, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &RemoteError{Op: op, Err: fmt.Errorf("failed to marshal request: %w", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &RemoteError{Op: op, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			zap.String("op", op),
			zap.String("request_id", requestID),
			zap.Error(err))
		return &RemoteError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("request complete",
		zap.String("op", op),
		zap.String("method", method),
		zap.String("url", endpoint),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		rerr := &RemoteError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(bodyBytes))}
		if resp.StatusCode == http.StatusNotFound {
			rerr.Err = ErrNotFound
		}
		return rerr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RemoteError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

// LookupProduct fetches a product by name.
func (c *Client) LookupProduct(ctx context.Context, name string) (models.Product, error) {
	var p models.Product
	if err := c.do(ctx, "lookup product", http.MethodGet, c.endpoint("products", name), nil, &p); err != nil {
		return models.Product{}, err
	}
	if p.Name == "" {
		p.Name = name
	}
	return p, nil
}

type searchResponse struct {
	Results []models.RunSetSummary `json:"results"`
}

// SearchRunSets runs one test run set search. Results keep the server's order.
func (c *Client) SearchRunSets(ctx context.Context, query models.RunSetQuery) ([]models.RunSetSummary, error) {
	var resp searchResponse
	if err := c.do(ctx, "search test run sets", http.MethodPost, c.endpoint("testrunsets", "search"), query, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// CreateEvidenceSet creates an evidence set inside product.
func (c *Client) CreateEvidenceSet(ctx context.Context, product models.Product, req models.EvidenceSetRequest) (models.EvidenceSet, error) {
	var es models.EvidenceSet
	if err := c.do(ctx, "create evidence set", http.MethodPost, c.endpoint("products", product.Name, "evidencesets"), req, &es); err != nil {
		return models.EvidenceSet{}, err
	}
	if es.Product == "" {
		es.Product = product.Name
	}
	return es, nil
}

// EvidenceSetURL is the browser address of an evidence set.
func (c *Client) EvidenceSetURL(es models.EvidenceSet) string {
	return fmt.Sprintf("%s/products/%s/evidencesets/%d", c.baseURL.String(), url.PathEscape(es.Product), es.ID)
}
