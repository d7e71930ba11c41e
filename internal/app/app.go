// Package app wires configuration, storage, clients, and services together.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattcarrick/advisor/internal/clients/gemini"
	"github.com/mattcarrick/advisor/internal/common"
	"github.com/mattcarrick/advisor/internal/interfaces"
	"github.com/mattcarrick/advisor/internal/services/advisor"
	"github.com/mattcarrick/advisor/internal/services/portfolio"
	"github.com/mattcarrick/advisor/internal/storage/surrealdb"
)

// App holds all initialized services, clients, and storage.
type App struct {
	Config           *common.Config
	Logger           *common.Logger
	Storage          interfaces.StorageManager
	GeminiClient     interfaces.GeminiClient
	AdvisorService   interfaces.AdvisorService
	PortfolioService interfaces.PortfolioService
	StartupTime      time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, storage, clients, and services.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	binDir := getBinaryDir()

	// Load configuration - check provided path, ADVISOR_CONFIG, then binary dir, then fallback
	if configPath == "" {
		configPath = os.Getenv("ADVISOR_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "advisor.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/advisor.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	storageManager, err := surrealdb.NewManager(logger, config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	ctx := context.Background()
	internalStore := storageManager.InternalStore()

	// Resolve the Gemini API key from environment, system KV, or config.
	// A missing key is not fatal: recommendations degrade to a 503 while
	// previews and portfolios keep working.
	var geminiClient interfaces.GeminiClient
	geminiKey, err := common.ResolveAPIKey(ctx, internalStore, "gemini_api_key", config.Clients.Gemini.APIKey)
	if err != nil {
		logger.Warn().Msg("Gemini API key not configured - recommendations will be unavailable")
	} else {
		client, err := gemini.NewClient(ctx, geminiKey,
			gemini.WithModel(config.Clients.Gemini.Model),
			gemini.WithTimeout(config.Clients.Gemini.GetTimeout()),
			gemini.WithMaxRetries(config.Clients.Gemini.MaxRetries),
			gemini.WithRateLimit(config.Clients.Gemini.RateLimit),
			gemini.WithLogger(logger),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		geminiClient = client
	}

	advisorService := advisor.NewService(geminiClient, logger)
	portfolioService := portfolio.NewService(storageManager.PortfolioStore(), logger)

	app := &App{
		Config:           config,
		Logger:           logger,
		Storage:          storageManager,
		GeminiClient:     geminiClient,
		AdvisorService:   advisorService,
		PortfolioService: portfolioService,
		StartupTime:      startupStart,
	}

	logger.Info().
		Dur("startup_duration", time.Since(startupStart)).
		Bool("gemini_configured", geminiClient != nil).
		Msg("Application initialized")

	return app, nil
}

// Close releases all resources held by the application.
func (a *App) Close() error {
	if a.GeminiClient != nil {
		if err := a.GeminiClient.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close Gemini client")
		}
	}
	if a.Storage != nil {
		if err := a.Storage.Close(); err != nil {
			return fmt.Errorf("failed to close storage: %w", err)
		}
	}
	return nil
}
