package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-northwind/pkg/customers"
)

const (
	customersPath   = "/public/customers"
	revenuePath     = "/public/customers-with-revenue"
	requestIDHeader = "X-Request-Id"
)

// Client is the REST client for the customer store.
type Client struct {
	base      *url.URL
	http      *http.Client
	timeout   time.Duration
	logger    zerolog.Logger
	requestID func() string
}

// New constructs a Client for the given base URL (for example
// "https://example.com/api").
func New(baseURL string, options ...Option) (*Client, error) {
	opts := NewOptions(baseURL, options...)
	return NewWithOptions(opts)
}

// NewWithOptions builds a Client from a pre-constructed Options value.
func NewWithOptions(opts Options) (*Client, error) {
	raw := strings.TrimSpace(opts.BaseURL)
	if raw == "" {
		return nil, errors.New("client: base url is required")
	}
	base, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("client: parse base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("client: unsupported scheme %q", base.Scheme)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	requestID := opts.RequestID
	if requestID == nil {
		requestID = uuid.NewString
	}
	return &Client{
		base:      base,
		http:      httpClient,
		timeout:   opts.Timeout,
		logger:    opts.Logger,
		requestID: requestID,
	}, nil
}

// Timeout reports the per-call timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// ListCustomers fetches the full customer collection.
func (c *Client) ListCustomers(ctx context.Context) ([]customers.Customer, error) {
	var out []customers.Customer
	if err := c.do(ctx, http.MethodGet, customersPath, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRevenue fetches customers with their order aggregates.
func (c *Client) ListRevenue(ctx context.Context, skip, take int) ([]customers.CustomerRevenue, error) {
	if skip < 0 {
		skip = 0
	}
	query := url.Values{}
	query.Set("skip", strconv.Itoa(skip))
	query.Set("take", strconv.Itoa(take))

	var out []customers.CustomerRevenue
	if err := c.do(ctx, http.MethodGet, revenuePath, query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCustomer posts a new record. The identifier key is stripped so the
// store assigns it.
func (c *Client) CreateCustomer(ctx context.Context, draft customers.Draft) error {
	return c.do(ctx, http.MethodPost, customersPath, nil, draft.WithoutID(), nil)
}

// UpdateCustomer replaces the record identified by id.
func (c *Client) UpdateCustomer(ctx context.Context, id int, draft customers.Draft) error {
	return c.do(ctx, http.MethodPut, customerPath(id), nil, draft, nil)
}

// DeleteCustomer removes the record identified by id.
func (c *Client) DeleteCustomer(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, customerPath(id), nil, nil, nil)
}

func customerPath(id int) string {
	return customersPath + "/" + strconv.Itoa(id)
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(reqCtx, method, c.endpoint(path, query), payload)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := c.requestID()
	req.Header.Set(requestIDHeader, reqID)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug().Str("method", method).Str("path", path).Str("request_id", reqID).Err(err).Msg("request failed")
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("client: %s %s: request timed out after %s: %w", method, path, c.timeout, context.DeadlineExceeded)
		}
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("request_id", reqID).
		Dur("took", time.Since(started)).
		Msg("request completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return StatusError{Code: resp.StatusCode, Method: method, Path: path}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	return nil
}
