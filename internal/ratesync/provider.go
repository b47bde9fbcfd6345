package ratesync

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const defaultFetchTimeout = 30 * time.Second

// Snapshot is one published set of quotes against a single base currency.
// Rates[code] is the number of units of code per unit of Base.
type Snapshot struct {
	Base  string
	Date  time.Time
	Rates map[string]decimal.Decimal
}

// Provider fetches the current snapshot from an external rate source.
type Provider interface {
	Name() string
	Fetch(ctx context.Context) (*Snapshot, error)
}

// feedResponse is the payload served by JSON rate feeds, e.g.
// {"base":"USD","date":"2024-01-02","rates":{"EUR":0.91}}
type feedResponse struct {
	Base  string                     `json:"base"`
	Date  string                     `json:"date"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// HTTPProvider reads snapshots from a JSON feed over HTTP.
type HTTPProvider struct {
	url    string
	name   string
	client *http.Client
}

// NewHTTPProvider creates a provider for the feed at url. name tags the stored
// rates' source; it defaults to the feed host.
func NewHTTPProvider(url, name string) *HTTPProvider {
	if name == "" {
		name = hostOf(url)
	}
	return &HTTPProvider{
		url:  url,
		name: name,
		client: &http.Client{
			Timeout: defaultFetchTimeout,
		},
	}
}

var _ Provider = (*HTTPProvider)(nil)

func (p *HTTPProvider) Name() string { return p.name }

// Fetch downloads and decodes the feed.
func (p *HTTPProvider) Fetch(ctx context.Context) (*Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rate feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("rate feed returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode rate feed: %w", err)
	}
	return payload.toSnapshot()
}

func (f feedResponse) toSnapshot() (*Snapshot, error) {
	base := strings.ToUpper(strings.TrimSpace(f.Base))
	if base == "" {
		return nil, fmt.Errorf("rate feed has no base currency")
	}
	date, err := time.Parse(time.DateOnly, f.Date)
	if err != nil {
		date, err = time.Parse(time.RFC3339, f.Date)
		if err != nil {
			return nil, fmt.Errorf("rate feed has invalid date %q", f.Date)
		}
	}
	rates := make(map[string]decimal.Decimal, len(f.Rates))
	for code, rate := range f.Rates {
		rates[strings.ToUpper(strings.TrimSpace(code))] = rate
	}
	return &Snapshot{Base: base, Date: date.UTC(), Rates: rates}, nil
}

func hostOf(rawURL string) string {
	s := rawURL
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return "feed"
	}
	return s
}
