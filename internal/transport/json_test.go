package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetview/budgetview-go/internal/types"
)

func TestJSONTransport_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/__/data.json", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, types.UserAgent, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"key": "k1"}]`))
	}))
	defer server.Close()

	transport := NewJSONTransport(&Options{BaseURL: server.URL})

	var doc []interface{}
	err := transport.Get(context.Background(), "/__/data.json", &doc)
	require.NoError(t, err)
	require.Len(t, doc, 1)
}

func TestJSONTransport_AuthHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sekrit", r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	transport := NewJSONTransport(&Options{BaseURL: server.URL})
	transport.SetAuth("sekrit")

	var doc map[string]interface{}
	require.NoError(t, transport.Get(context.Background(), "/", &doc))
}

func TestJSONTransport_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, types.ErrNotAuthenticated},
		{"forbidden", http.StatusForbidden, types.ErrNotAuthenticated},
		{"not found", http.StatusNotFound, types.ErrNotFound},
		{"rate limited", http.StatusTooManyRequests, types.ErrRateLimited},
		{"gateway timeout", http.StatusGatewayTimeout, types.ErrTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			transport := NewJSONTransport(&Options{BaseURL: server.URL})

			var doc interface{}
			err := transport.Get(context.Background(), "/", &doc)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestJSONTransport_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message": "upstream exploded"}`))
	}))
	defer server.Close()

	transport := NewJSONTransport(&Options{BaseURL: server.URL})

	var doc interface{}
	err := transport.Get(context.Background(), "/", &doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrServerError)

	var apiErr *types.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "SERVER_ERROR", apiErr.Code)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "Bad Gateway")
	assert.Contains(t, apiErr.Message, "upstream exploded")
}

func TestJSONTransport_BadRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "malformed query"}`))
	}))
	defer server.Close()

	transport := NewJSONTransport(&Options{BaseURL: server.URL})

	var doc interface{}
	err := transport.Get(context.Background(), "/", &doc)

	var apiErr *types.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "BAD_REQUEST", apiErr.Code)
	assert.Equal(t, "malformed query", apiErr.Message)
}

func TestJSONTransport_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	transport := NewJSONTransport(&Options{BaseURL: server.URL})

	var doc map[string]interface{}
	err := transport.Get(context.Background(), "/", &doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal document")
}

func TestJSONTransport_Retry(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	transport := NewJSONTransport(&Options{
		BaseURL: server.URL,
		RetryConfig: &types.RetryConfig{
			MaxRetries: 3,
			RetryWait:  1,
			MaxWait:    1,
		},
	})

	var doc map[string]interface{}
	err := transport.Get(context.Background(), "/", &doc)
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, true, doc["ok"])
}
