// Package app initializes and orchestrates the main components of the
// empathic reviewer. It wires together configuration, the response generator,
// the review service, optional report history and the HTTP server.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/salvatoreOm/empathic-code-reviewer/internal/config"
	"github.com/salvatoreOm/empathic-code-reviewer/internal/db"
	"github.com/salvatoreOm/empathic-code-reviewer/internal/llm"
	"github.com/salvatoreOm/empathic-code-reviewer/internal/review"
	"github.com/salvatoreOm/empathic-code-reviewer/internal/server"
	"github.com/salvatoreOm/empathic-code-reviewer/internal/storage"
)

// App holds the main application components.
type App struct {
	ctx       context.Context
	cfg       *config.Config
	server    *server.Server
	logger    *slog.Logger
	dbCleanup func()

	// Service runs review sessions; exposed so non-HTTP front ends (CLI,
	// terminal UI) can share the exact same pipeline.
	Service *review.Service
}

// NewApp sets up the application with all its dependencies. The generator
// variant is fixed here, once, for the lifetime of the app.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	logger.Info("initializing empathic reviewer",
		"provider", cfg.Provider,
		"history_enabled", cfg.DB.Enabled,
	)

	gen, err := NewGenerator(cfg, logger)
	if err != nil {
		return nil, err
	}

	promptMgr, err := llm.NewPromptManager()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize prompt manager: %w", err)
	}

	var store storage.Store
	dbCleanup := func() {}
	if cfg.DB.Enabled {
		dbConn, cleanup, err := db.NewDatabase(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to set up report history: %w", err)
		}
		dbCleanup = cleanup
		store = storage.NewStore(dbConn.DB)
	}

	svc := review.NewService(gen, promptMgr, store, logger)
	httpServer := server.NewServer(ctx, cfg, svc, store, logger)

	logger.Info("application initialized", "generator", gen.Name())
	return &App{
		ctx:       ctx,
		cfg:       cfg,
		server:    httpServer,
		logger:    logger,
		dbCleanup: dbCleanup,
		Service:   svc,
	}, nil
}

// NewGenerator creates the response generator selected by configuration.
// Mock mode needs no settings at all; azure validates its credentials here so
// a misconfigured live session fails before any comment is processed.
func NewGenerator(cfg *config.Config, logger *slog.Logger) (llm.ResponseGenerator, error) {
	switch cfg.Provider {
	case config.ProviderAzure:
		return llm.NewAzureGenerator(cfg.Azure, logger)
	case config.ProviderOllama:
		return llm.NewOllamaGenerator(cfg.Ollama, logger)
	case config.ProviderMock:
		return llm.NewMockGenerator(), nil
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", cfg.Provider)
	}
}

// Start runs the HTTP server.
func (a *App) Start() error {
	a.logger.Info("starting empathic reviewer", "server_port", a.cfg.ServerPort)
	return a.server.Start()
}

// Stop shuts down the application cleanly.
func (a *App) Stop() error {
	a.logger.Info("shutting down")

	err := a.server.Stop()
	if err != nil {
		a.logger.Error("error during HTTP server shutdown", "error", err)
	}

	a.dbCleanup()

	if err != nil {
		return err
	}
	a.logger.Info("stopped successfully")
	return nil
}
