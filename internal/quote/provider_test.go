package quote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/daybookhq/daybook/internal/types"
)

var testNow = time.Date(2026, 6, 15, 8, 0, 0, 0, time.UTC)

func newTestProvider(t *testing.T, handler http.HandlerFunc) (*ZenQuotes, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewZenQuotes(srv.URL, 2*time.Second), srv
}

func TestZenQuotes_Success(t *testing.T) {
	p, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"q":"Simplicity is the soul of efficiency.","a":"Austin Freeman"}]`))
	})

	got := p.QuoteOfDay(context.Background(), testNow)
	want := types.Quote{Text: "Simplicity is the soul of efficiency.", Author: "Austin Freeman"}
	if got != want {
		t.Errorf("QuoteOfDay = %+v, want %+v", got, want)
	}
}

func TestZenQuotes_FallsBackOnServerError(t *testing.T) {
	p, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if got := p.QuoteOfDay(context.Background(), testNow); got != Fallback {
		t.Errorf("QuoteOfDay = %+v, want fallback", got)
	}
}

func TestZenQuotes_FallsBackOnMalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "quote of the day"},
		{"empty array", "[]"},
		{"object instead of array", `{"q":"x","a":"y"}`},
		{"missing text", `[{"a":"Nobody"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})
			if got := p.QuoteOfDay(context.Background(), testNow); got != Fallback {
				t.Errorf("QuoteOfDay = %+v, want fallback", got)
			}
		})
	}
}

func TestZenQuotes_FallsBackOnTimeout(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	t.Cleanup(srv.Close)

	p := NewZenQuotes(srv.URL, 50*time.Millisecond)
	start := time.Now()
	got := p.QuoteOfDay(context.Background(), testNow)
	if got != Fallback {
		t.Errorf("QuoteOfDay = %+v, want fallback", got)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("timeout took %v, expected prompt fallback", elapsed)
	}
}

func TestZenQuotes_FallsBackOnUnreachableHost(t *testing.T) {
	p := NewZenQuotes("http://127.0.0.1:1", 200*time.Millisecond)
	if got := p.QuoteOfDay(context.Background(), testNow); got != Fallback {
		t.Errorf("QuoteOfDay = %+v, want fallback", got)
	}
}
