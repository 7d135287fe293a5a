package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/daybookhq/daybook/internal/api"
	"github.com/daybookhq/daybook/internal/config"
	"github.com/daybookhq/daybook/internal/dashboard"
	"github.com/daybookhq/daybook/internal/quote"
	"github.com/daybookhq/daybook/internal/store"
	"github.com/daybookhq/daybook/internal/tasks"
	"github.com/daybookhq/daybook/internal/worker"
)

// Version is set at build time via ldflags: -ldflags "-X main.Version=1.0.0"
var Version = "dev"

// quoteRefreshInterval is deliberately much shorter than a day; the day-keyed
// cache makes extra ticks free and a short interval picks up the new day
// promptly regardless of when the process started.
const quoteRefreshInterval = time.Hour

var rootCmd = &cobra.Command{
	Use:   "daybook",
	Short: "Daybook - personal dashboard service",
	RunE:  run,
}

func run(cmd *cobra.Command, args []string) error {
	// 1. Signal handling
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	// 2. Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// 3. Initialize logger
	setupLogger(cfg, os.Stdout)
	slog.Info("configuration loaded")

	// 4. Initialize store (migrations, WAL mode)
	db, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return err
	}
	slog.Info("store initialized", "path", cfg.Database.Path)

	// 5. Quote provider behind the day-keyed cache
	quotes := quote.NewDayCache(newQuoteProvider(cfg))
	slog.Info("quote provider initialized", "url", cfg.Quote.URL)

	// 6. Engine and HTTP router
	compositor := dashboard.New(db, quotes)
	taskSvc := tasks.NewService(db)
	handler := api.NewHandler(compositor, taskSvc, cfg.Auth.APIKey, Version)
	router := api.NewRouter(handler)
	slog.Info("router initialized")

	// 7. Configure HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout),
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout),
	}

	// 8. Background workers
	var wg sync.WaitGroup
	refresher := worker.NewQuoteRefresher(quotes, quoteRefreshInterval)
	startWorker(ctx, &wg, "quote-refresher", refresher.Run)

	// 9. Start HTTP server in goroutine
	go func() {
		slog.Info("server starting", "address", addr)
		// ErrServerClosed is the expected error when Shutdown() is called
		// gracefully. Anything else is a real failure.
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			cancel()
		}
	}()

	// 10. Block until signal received
	<-ctx.Done()
	slog.Info("shutdown initiated")

	// 11. Graceful shutdown: drain requests, stop workers, close store
	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout))
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	wg.Wait()

	if err := db.Close(); err != nil {
		slog.Error("store close error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}

// newQuoteProvider returns the configured fetcher, or the static fallback
// when no URL is configured.
func newQuoteProvider(cfg *config.Config) quote.Provider {
	if cfg.Quote.URL == "" {
		return quote.Static{Quote: quote.Fallback}
	}
	return quote.NewZenQuotes(cfg.Quote.URL, time.Duration(cfg.Quote.Timeout))
}

func setupLogger(cfg *config.Config, w *os.File) {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.Log.Level)}
	var handler slog.Handler
	if cfg.Log.Format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// startWorker launches a background worker goroutine that respects context
// cancellation. Workers are tracked via WaitGroup for graceful shutdown.
func startWorker(ctx context.Context, wg *sync.WaitGroup, name string, fn func(ctx context.Context)) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		slog.Info("worker started", "worker", name)
		fn(ctx)
		slog.Info("worker stopped", "worker", name)
	}()
}
