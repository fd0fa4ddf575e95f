package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestProvider(baseURL string) *Provider {
	return New(Config{BaseURL: baseURL, Key: "test-key", DefaultCount: 3}, zap.NewNop().Sugar())
}

func TestProvider_Fetch(t *testing.T) {
	t.Run("fetches and decodes an array", func(t *testing.T) {
		var gotQuery map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = map[string]string{
				"key":    r.URL.Query().Get("key"),
				"schema": r.URL.Query().Get("schema"),
				"count":  r.URL.Query().Get("count"),
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"id":1,"name":"Alice"},{"id":2,"name":"Bob"}]`))
		}))
		defer srv.Close()

		records, err := newTestProvider(srv.URL).Fetch(context.Background(), 2)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Alice", records[0]["name"])

		assert.Equal(t, "test-key", gotQuery["key"])
		assert.Equal(t, "candidates_schema", gotQuery["schema"])
		assert.Equal(t, "2", gotQuery["count"])
	})

	t.Run("wraps a single object into a slice", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":7,"name":"Solo"}`))
		}))
		defer srv.Close()

		records, err := newTestProvider(srv.URL).Fetch(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Solo", records[0]["name"])
	})

	t.Run("non-success status carries status and body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte("invalid api key"))
		}))
		defer srv.Close()

		_, err := newTestProvider(srv.URL).Fetch(context.Background(), 1)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
		assert.Contains(t, apiErr.Error(), "403")
		assert.Contains(t, apiErr.Error(), "invalid api key")
	})

	t.Run("missing key fails before any network call", func(t *testing.T) {
		calls := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer srv.Close()

		p := New(Config{BaseURL: srv.URL}, zap.NewNop().Sugar())
		_, err := p.Fetch(context.Background(), 1)
		assert.True(t, errors.Is(err, ErrNotConfigured))
		assert.Equal(t, 0, calls)
	})

	t.Run("cancelled context aborts the request", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := newTestProvider(srv.URL).Fetch(ctx, 1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
	})

	t.Run("default count applies when non-positive", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "3", r.URL.Query().Get("count"))
			w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		_, err := newTestProvider(srv.URL).Fetch(context.Background(), 0)
		require.NoError(t, err)
	})
}
