// Package main is the entry point for the daily-wisdom service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/daily-wisdom/internal/adapters/clients"
	"github.com/jsamuelsen/daily-wisdom/internal/adapters/clients/acl"
	"github.com/jsamuelsen/daily-wisdom/internal/adapters/http"
	"github.com/jsamuelsen/daily-wisdom/internal/adapters/http/handlers"
	"github.com/jsamuelsen/daily-wisdom/internal/adapters/share"
	"github.com/jsamuelsen/daily-wisdom/internal/adapters/storage"
	"github.com/jsamuelsen/daily-wisdom/internal/app"
	"github.com/jsamuelsen/daily-wisdom/internal/platform/config"
	"github.com/jsamuelsen/daily-wisdom/internal/platform/logging"
	"github.com/jsamuelsen/daily-wisdom/internal/platform/telemetry"
	"github.com/jsamuelsen/daily-wisdom/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			Level:      cfg.Log.File.Level,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Create health registry
	healthRegistry := ports.NewHealthRegistry()

	// 6. Create HTTP client for the quotes API
	httpClient, err := clients.New(&clients.Config{
		BaseURL:     cfg.Services.Quote.BaseURL,
		ServiceName: cfg.Services.Quote.Name,
		Timeout:     cfg.Client.Timeout,
		Retry:       cfg.Client.Retry,
		Circuit:     cfg.Client.CircuitBreaker,
		RateLimit:   cfg.Client.RateLimit,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("creating HTTP client: %w", err)
	}

	// 7. Create quote client adapter (ACL pattern).
	// An unreachable quotes API degrades readiness; favorites still work.
	quoteClient := acl.NewQuoteClient(acl.QuoteClientConfig{
		Client:      httpClient,
		ServiceName: cfg.Services.Quote.Name,
		Logger:      logger,
	})

	if err := healthRegistry.RegisterOptional(quoteClient); err != nil {
		return fmt.Errorf("registering quote client health check: %w", err)
	}

	// 8. Open favorites storage
	store, err := storage.New(ctx, cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}

	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("storage close error", slog.Any("error", closeErr))
		}
	}()

	if err := healthRegistry.Register(store); err != nil {
		return fmt.Errorf("registering storage health check: %w", err)
	}

	// 9. Create application services
	metrics := app.NewMetrics(prometheus.DefaultRegisterer)
	cache := app.NewQuoteCache(cfg.Resolver.CacheSize, cfg.Resolver.CacheTTL)
	markers := app.NewCopiedMarkers(app.CopiedMarkerTTL)

	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		QuoteClient:   quoteClient,
		Cache:         cache,
		RandomPageMax: cfg.Quotes.RandomPageMax,
		PageLimit:     cfg.Quotes.PageLimit,
		Logger:        logger,
	})

	favorites := app.NewFavoritesStore(app.FavoritesStoreConfig{
		Store:  store,
		Logger: logger,
	})
	favorites.Load(ctx)

	resolver := app.NewResolver(app.ResolverConfig{
		QuoteClient: quoteClient,
		Cache:       cache,
		Metrics:     metrics,
		MaxPages:    cfg.Resolver.MaxPages,
		PageSize:    cfg.Resolver.PageSize,
		Concurrency: cfg.Resolver.Concurrency,
		Logger:      logger,
	})

	shareService := app.NewShareService(app.ShareServiceConfig{
		Sharer: share.NewCommandSharer(cfg.Share.Command, logger),
		Clipboards: []ports.Clipboard{
			share.NewSystemClipboard(),
			share.NewTerminalSelection(cfg.Share.TTYPath),
		},
		Markers: markers,
		Title:   cfg.Share.Title,
		URL:     cfg.Share.URL,
		Metrics: metrics,
		Logger:  logger,
	})

	// 10. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo, prometheus.DefaultGatherer)

	// 11. Create HTTP server and router
	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:           logger,
		AppConfig:        &cfg.App,
		HealthHandler:    healthHandler,
		QuoteHandler:     handlers.NewQuoteHandler(quoteService, favorites, markers),
		FavoritesHandler: handlers.NewFavoritesHandler(favorites, resolver, markers),
		ShareHandler:     handlers.NewShareHandler(shareService, markers),
		Timeout:          cfg.Server.RequestTimeout,
	})

	// 12. Serve until SIGINT/SIGTERM, then drain in-flight requests
	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
