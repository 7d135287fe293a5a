package quote

import (
	"context"
	"sync"
	"time"

	"github.com/daybookhq/daybook/internal/dates"
	"github.com/daybookhq/daybook/internal/types"
)

// DayCache wraps a Provider with a day-keyed cache: the first successful
// production for a calendar day is reused for the rest of that day and the
// previous day's value is discarded. Fallback results are served but never
// stored, so a later call that day retries the inner provider. Concurrent
// callers on an unpopulated day may race to fetch; either result wins and the
// difference is benign because the value is immutable once stored.
type DayCache struct {
	inner Provider

	mu     sync.Mutex
	dayKey string
	cached types.Quote
}

// NewDayCache wraps inner with per-day caching.
func NewDayCache(inner Provider) *DayCache {
	return &DayCache{inner: inner}
}

// QuoteOfDay returns the cached quote for now's calendar day, fetching
// through the inner provider on a miss.
func (c *DayCache) QuoteOfDay(ctx context.Context, now time.Time) types.Quote {
	key := dates.DayKey(now)

	c.mu.Lock()
	if c.dayKey == key {
		q := c.cached
		c.mu.Unlock()
		return q
	}
	c.mu.Unlock()

	// Fetch outside the lock so a slow provider never serializes callers.
	q := c.inner.QuoteOfDay(ctx, now)

	// A fallback means the fetch failed; leave the day unpopulated so the
	// next caller retries instead of pinning the fallback all day.
	if q == Fallback {
		return q
	}

	c.mu.Lock()
	c.dayKey = key
	c.cached = q
	c.mu.Unlock()
	return q
}
