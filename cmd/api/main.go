// Package main is the entry point for the Panchanga API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sankalpam/panchanga-api/internal/api"
	"github.com/sankalpam/panchanga-api/internal/config"
	"github.com/sankalpam/panchanga-api/internal/geo"
	"github.com/sankalpam/panchanga-api/internal/logger"
	"github.com/sankalpam/panchanga-api/internal/lookup"
	"github.com/sankalpam/panchanga-api/internal/panchanga"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Setup structured logging
	log := logger.Setup(cfg)

	// Log startup info
	log.Info("starting panchanga API",
		slog.String("env", cfg.Env),
		slog.Int("port", cfg.Port),
		slog.String("log_level", cfg.LogLevel),
	)

	if err := run(cfg, log); err != nil {
		log.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	// Lookup tables: embedded defaults unless a file path is configured.
	tables, err := lookup.Load(cfg.LookupPath)
	if err != nil {
		return fmt.Errorf("loading lookup tables: %w", err)
	}
	log.Info("lookup tables loaded",
		slog.Int("months", len(tables.MonthRanges())),
		slog.Int("seasons", len(tables.Seasons())))

	locator := geo.NewLocator(cfg.GoogleAPIKey, cfg.RequestTimeout, log)

	client := panchanga.NewClient(panchanga.ClientConfig{
		BaseURL:        cfg.ProviderBaseURL,
		ConnectTimeout: cfg.ConnectTimeout,
		RequestTimeout: cfg.RequestTimeout,
	}, log)
	extractor := panchanga.NewExtractor(tables, log)
	finder := panchanga.NewFinder(client, extractor, log)

	handlers := api.NewHandlers(locator, finder)
	router := api.SetupRoutes(handlers, log)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run the server and wait for a shutdown signal.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", server.Addr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
