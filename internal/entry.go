// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/avendel/folio/internal/api"
	"github.com/avendel/folio/internal/helper"
	"github.com/avendel/folio/internal/literal"
	"github.com/avendel/folio/internal/mcpserver"
	"github.com/avendel/folio/internal/models"
	"github.com/avendel/folio/internal/persist"
	"github.com/avendel/folio/internal/savestatus"
	"github.com/avendel/folio/internal/seed"
	"github.com/avendel/folio/internal/sse"
	"github.com/avendel/folio/internal/storage"
	"github.com/avendel/folio/internal/store"
)

// Run starts the portfolio site and editor API with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	logger := newLogger(cfg)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("data_path", cfg.Data.Path),
		slog.String("save_endpoint", cfg.Save.Endpoint),
		slog.String("log_level", cfg.App.LogLevel.String()))

	file, err := storage.NewDataFile(cfg.Data.Path)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	snapshot, err := loadSnapshot(file, logger)
	if err != nil {
		return err
	}

	// Ensure the data directory exists so the watcher has something to watch
	// before the first save.
	if err := os.MkdirAll(filepath.Dir(file.Path()), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	st := store.New(snapshot)
	broker := sse.NewBroker(500 * time.Millisecond)
	defer broker.Close()

	status := savestatus.NewTracker(time.Duration(cfg.Save.RevertSeconds) * time.Second)
	bridge := persist.NewBridge(cfg.Save.Endpoint, app.clipboard)

	apiRouter := api.NewRouter(st, bridge, status, broker, cfg.Auth.AuthEnabled(), cfg.Auth.Token)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api.
	r.Mount("/api", apiRouter)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Watch the data file for external overwrites (save server, hand-pasted
	// clipboard content) and reload the store.
	g.Go(func() error {
		watchDataFile(gCtx, file, st, broker, logger)
		return nil
	})

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		waitForShutdown(gCtx, logger)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// RunSaveServer starts the local helper process that writes saved portfolio
// data to the data file.
func RunSaveServer(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config
	logger := newLogger(cfg)

	file, err := storage.NewDataFile(cfg.Data.Path)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	httpServer := &http.Server{
		Addr:    cfg.Helper.Address(),
		Handler: helper.NewRouter(file, cfg.Helper.AllowedOrigin),
	}

	logger.Info("Save server starting",
		slog.String("address", cfg.Helper.Address()),
		slog.String("data_path", file.Path()))

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("save server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		waitForShutdown(gCtx, logger)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("save server shutdown error", slog.String("error", err.Error()))
		}
		return nil
	})

	return g.Wait()
}

// RunMCP exposes the editor tools over MCP stdio.
func RunMCP(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Logs go to stderr: stdout carries the MCP transport.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	file, err := storage.NewDataFile(cfg.Data.Path)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	snapshot, err := loadSnapshot(file, logger)
	if err != nil {
		return err
	}

	st := store.New(snapshot)
	bridge := persist.NewBridge(cfg.Save.Endpoint, app.clipboard)

	srv := mcpserver.New(st, bridge)
	return srv.ServeStdio()
}

func newLogger(cfg *Config) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// loadSnapshot reads the data file, falling back to the built-in seed when
// no file exists yet.
func loadSnapshot(file *storage.DataFile, logger *slog.Logger) (*models.PortfolioData, error) {
	if !file.Exists() {
		logger.Info("No data file yet, using built-in seed", slog.String("path", file.Path()))
		return seed.Default(), nil
	}
	data, err := file.Read()
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	snapshot, err := literal.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("parse data file %s: %w", file.Path(), err)
	}
	return snapshot, nil
}

func waitForShutdown(ctx context.Context, logger *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
	case <-ctx.Done():
		logger.Info("Context cancelled, initiating shutdown")
	}

	logger.Info("Shutting down server...")
}
