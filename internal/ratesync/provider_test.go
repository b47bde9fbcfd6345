package ratesync

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPProvider_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"usd","date":"2024-01-02","rates":{"EUR":0.91,"jpy":"148.25"}}`))
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL+"/latest", "")
	assert.Equal(t, srv.Listener.Addr().String(), p.Name())

	snap, err := p.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "USD", snap.Base)
	assert.True(t, snap.Date.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))
	require.Len(t, snap.Rates, 2)
	assert.True(t, decimal.RequireFromString("0.91").Equal(snap.Rates["EUR"]))
	assert.True(t, decimal.RequireFromString("148.25").Equal(snap.Rates["JPY"]))
}

func TestHTTPProvider_FetchErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		errText string
	}{
		{name: "non-200", status: http.StatusServiceUnavailable, body: "down", errText: "status 503: down"},
		{name: "malformed json", status: http.StatusOK, body: `{"base":`, errText: "failed to decode"},
		{name: "missing base", status: http.StatusOK, body: `{"date":"2024-01-02","rates":{}}`, errText: "no base currency"},
		{name: "bad date", status: http.StatusOK, body: `{"base":"USD","date":"02/01/2024","rates":{}}`, errText: "invalid date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewHTTPProvider(srv.URL, "feed").Fetch(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestHostOf(t *testing.T) {
	assert.Equal(t, "rates.example.com", hostOf("https://rates.example.com/v1/latest?base=USD"))
	assert.Equal(t, "localhost:9000", hostOf("http://localhost:9000"))
	assert.Equal(t, "feed", hostOf(""))
}

type nopProvider struct{}

func (nopProvider) Name() string { return "nop" }

func (nopProvider) Fetch(context.Context) (*Snapshot, error) { return nil, nil }
