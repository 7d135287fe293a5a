// Package quote fetches the quote of the day from an external provider.
// Provider failure is never fatal: every path degrades to a fixed fallback
// pair so the dashboard snapshot never blocks on the network.
package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/daybookhq/daybook/internal/types"
)

// Fallback is returned whenever the provider cannot produce a quote.
var Fallback = types.Quote{
	Text:   "The only way to do great work is to love what you do.",
	Author: "Steve Jobs",
}

// Provider produces the quote for the day containing now.
type Provider interface {
	QuoteOfDay(ctx context.Context, now time.Time) types.Quote
}

// httpDoer is the minimal http.Client surface used by ZenQuotes.
// It enables testing without a network.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ZenQuotes fetches from a zenquotes.io-shaped endpoint: a GET returning a
// JSON array whose first element carries "q" (text) and "a" (author).
type ZenQuotes struct {
	client  httpDoer
	url     string
	timeout time.Duration
}

// NewZenQuotes creates a provider for the given endpoint URL.
func NewZenQuotes(url string, timeout time.Duration) *ZenQuotes {
	return &ZenQuotes{
		client:  &http.Client{},
		url:     url,
		timeout: timeout,
	}
}

type zenQuotesEntry struct {
	Q string `json:"q"`
	A string `json:"a"`
}

// QuoteOfDay performs the fetch. Any failure -- transport error, non-200
// status, malformed payload, timeout -- yields Fallback.
func (z *ZenQuotes) QuoteOfDay(ctx context.Context, now time.Time) types.Quote {
	q, err := z.fetch(ctx)
	if err != nil {
		return Fallback
	}
	return q
}

func (z *ZenQuotes) fetch(ctx context.Context) (types.Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, z.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, z.url, nil)
	if err != nil {
		return types.Quote{}, fmt.Errorf("build quote request: %w", err)
	}

	resp, err := z.client.Do(req)
	if err != nil {
		return types.Quote{}, fmt.Errorf("fetch quote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Quote{}, fmt.Errorf("quote provider returned status %d", resp.StatusCode)
	}

	var entries []zenQuotesEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return types.Quote{}, fmt.Errorf("decode quote payload: %w", err)
	}
	if len(entries) == 0 || entries[0].Q == "" {
		return types.Quote{}, fmt.Errorf("quote payload empty")
	}

	return types.Quote{Text: entries[0].Q, Author: entries[0].A}, nil
}

// Static always returns a fixed quote. Used when no provider is configured
// and as a test double.
type Static struct {
	Quote types.Quote
}

// QuoteOfDay returns the fixed quote.
func (s Static) QuoteOfDay(ctx context.Context, now time.Time) types.Quote {
	return s.Quote
}
