package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/daybookhq/daybook/internal/types"
)

type countingProvider struct {
	calls atomic.Int64
}

func (p *countingProvider) QuoteOfDay(ctx context.Context, now time.Time) types.Quote {
	p.calls.Add(1)
	return types.Quote{Text: "x", Author: "y"}
}

func TestRun_WarmsImmediatelyAndStopsOnCancel(t *testing.T) {
	provider := &countingProvider{}
	w := NewQuoteRefresher(provider, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for provider.calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("initial warm never happened")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on context cancellation")
	}
}

func TestRun_RefreshesOnTick(t *testing.T) {
	provider := &countingProvider{}
	w := NewQuoteRefresher(provider, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	deadline := time.After(2 * time.Second)
	for provider.calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("calls = %d, want at least 3 within deadline", provider.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
}
