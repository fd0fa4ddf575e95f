// Package provider fetches raw candidate records from the remote
// mock-data service. Records come back untyped; normalization into the
// canonical shape happens in the candidate package.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"talent-pipeline/pkg/httpclient"
)

// ErrNotConfigured is returned before any network call when the endpoint
// or API key is missing.
var ErrNotConfigured = errors.New("provider: base URL and API key must be configured")

// APIError carries the HTTP status and response body of a failed fetch so
// callers can surface a distinguishable message.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("provider API %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("provider API %d: %s", e.StatusCode, e.Status)
}

// Provider is the client for the mock-data candidate endpoint.
type Provider struct {
	baseURL      string
	key          string
	schema       string
	defaultCount int
	client       *httpclient.Client
	log          *zap.SugaredLogger
}

type Config struct {
	BaseURL      string
	Key          string
	Schema       string
	DefaultCount int
}

func New(cfg Config, log *zap.SugaredLogger) *Provider {
	count := cfg.DefaultCount
	if count <= 0 {
		count = 100
	}
	schema := cfg.Schema
	if schema == "" {
		schema = "candidates_schema"
	}
	return &Provider{
		baseURL:      cfg.BaseURL,
		key:          cfg.Key,
		schema:       schema,
		defaultCount: count,
		client:       httpclient.NewClient(30 * time.Second),
		log:          log,
	}
}

// Fetch requests count raw records. count <= 0 uses the configured
// default. A non-success status surfaces as *APIError with the response
// body attached; cancelling ctx aborts the request and simply discards
// the result, no store state is touched either way.
func (p *Provider) Fetch(ctx context.Context, count int) ([]map[string]any, error) {
	if p.baseURL == "" || p.key == "" {
		return nil, ErrNotConfigured
	}
	if count <= 0 {
		count = p.defaultCount
	}

	q := url.Values{}
	q.Set("key", p.key)
	q.Set("schema", p.schema)
	q.Set("count", strconv.Itoa(count))
	endpoint := p.baseURL + "?" + q.Encode()

	p.log.Infow("fetching candidates", "count", count, "schema", p.schema)

	res, err := p.client.Get(ctx, endpoint, map[string]string{"Accept": "application/json"})
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return nil, &APIError{StatusCode: res.StatusCode, Status: res.Status, Body: string(body)}
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("provider response read failed: %w", err)
	}

	// The endpoint returns an array for count > 1 but a single object for
	// count = 1; wrap the latter.
	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err != nil {
		var single map[string]any
		if err2 := json.Unmarshal(raw, &single); err2 != nil {
			return nil, fmt.Errorf("provider response decode failed: %w", err)
		}
		records = []map[string]any{single}
	}

	p.log.Infow("fetched candidates", "records", len(records))
	return records, nil
}
