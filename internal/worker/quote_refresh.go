// Package worker hosts the background loops run alongside the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/daybookhq/daybook/internal/quote"
)

// QuoteRefresher periodically warms a day-keyed quote provider so the first
// dashboard request of a day does not pay the fetch latency. Wrapping a
// quote.DayCache makes each tick a cache-refresh; the cache only refetches
// when the day has rolled over.
type QuoteRefresher struct {
	provider quote.Provider
	interval time.Duration
	clock    func() time.Time
}

// NewQuoteRefresher creates a refresher ticking at the given interval.
func NewQuoteRefresher(provider quote.Provider, interval time.Duration) *QuoteRefresher {
	return &QuoteRefresher{
		provider: provider,
		interval: interval,
		clock:    time.Now,
	}
}

// Run starts the refresh loop. Blocks until ctx is cancelled.
//
// The cache is warmed once immediately so startup covers today, then on every
// tick. The provider never returns an error (failures degrade to the fallback
// quote), so the loop has no failure path of its own.
func (w *QuoteRefresher) Run(ctx context.Context) {
	slog.Info("quote refresher started",
		"component", "worker",
		"worker", "quote-refresher",
		"interval", w.interval.String(),
	)

	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("quote refresher stopped",
				"component", "worker",
				"worker", "quote-refresher",
				"reason", "context_cancelled",
			)
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *QuoteRefresher) refresh(ctx context.Context) {
	now := w.clock().UTC()
	q := w.provider.QuoteOfDay(ctx, now)
	slog.Debug("quote cache warmed",
		"component", "worker",
		"worker", "quote-refresher",
		"author", q.Author,
	)
}
