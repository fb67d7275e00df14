package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iammorganparry/seans/internal/api"
	"github.com/iammorganparry/seans/internal/board"
	"github.com/iammorganparry/seans/internal/config"
	"github.com/iammorganparry/seans/internal/editor"
	"github.com/iammorganparry/seans/internal/finance"
	"github.com/iammorganparry/seans/internal/store"
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "path to YAML config file")
	flag.Parse()

	// Config
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Logger
	logger := cfg.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	// Sessions live only as long as this process.
	st := store.New()
	ed := editor.New(st, logger, editor.WithMinDateEnforced(cfg.EnforceMinDate))
	b := board.New(st, cfg.ReminderTemplate, logger)
	agg := finance.NewAggregator(st)

	router := api.NewRouter(st, ed, b, agg, cfg.Currency, logger)

	// Server
	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("seans server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-done
	logger.Info("shutting down...", "sessions", st.Len())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("server stopped")
}
