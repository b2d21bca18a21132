package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learningassistant"
)

func main() {
	cfg := learningassistant.FromEnv()

	logger, err := learningassistant.NewLogger(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	learningassistant.SetLogger(logger)
	learningassistant.SetVerbose(cfg.Verbose)

	store := newSessionStore(cfg)

	pages := learningassistant.NewPageRegistry()
	client := learningassistant.NewClient(cfg.APIURL, nil)

	server, err := NewServer(pages, client, store)
	if err != nil {
		logger.Fatalw("failed to load templates", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sweepPages(ctx, pages, cfg.SessionIdleTTL)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warnw("shutdown", "error", err)
		}
	}()

	logger.Infow("starting server", "port", cfg.Port, "api_url", cfg.APIURL)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalw("server stopped", "error", err)
	}
}

// sweepPages drops pages of sessions that have gone quiet
func sweepPages(ctx context.Context, pages *learningassistant.PageRegistry, maxIdle time.Duration) {
	interval := maxIdle / 4
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := pages.Sweep(maxIdle); n > 0 {
				learningassistant.VerboseLog("swept idle pages", "removed", n, "live", pages.Size())
			}
		}
	}
}
