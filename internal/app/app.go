package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"event-insights/internal/aggregators"
	internalhttp "event-insights/internal/http"
	"event-insights/internal/models"
	"event-insights/internal/pipelines"
	"event-insights/internal/products"
	"event-insights/internal/shared/configs"
	"event-insights/internal/shared/filesources"
	"event-insights/internal/shared/loggers"
	"event-insights/internal/shared/ulid"
	"event-insights/internal/sinks"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	loaderService pipelines.LoaderService
	pointWriter   sinks.PointWriter
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "event-insights").
		Str(loggers.FieldRunID, ulid.NewULID()).
		Logger()

	// Initialize product catalog
	catalog, err := products.LoadCatalog(config.Data.ProductCSV)
	if err != nil {
		if !errors.Is(err, products.ErrCatalogNotFound) {
			return nil, fmt.Errorf("failed to load product catalog: %w", err)
		}
		appLogger.Warn().
			Str(loggers.FieldFilePath, config.Data.ProductCSV).
			Msg("Product catalog not found, resolving all products as not_found")
		catalog = products.Catalog{}
	}
	resolver := products.NewResolver(catalog)

	// Initialize input file sources
	contentPaths, err := listEventFiles(config.Data.ContentEventDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list content event files: %w", err)
	}
	purchasePaths, err := listEventFiles(config.Data.PurchaseEventDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase event files: %w", err)
	}

	// Initialize sink
	pointWriter := sinks.NewInfluxWriter(
		config.Influx.URL,
		config.Influx.Token,
		config.Influx.Org,
		config.Influx.Bucket,
	)
	emitterLogger := appLogger.With().Str(loggers.FieldComponent, "emitter").Logger()
	emitter := sinks.NewEmitter(
		pointWriter,
		config.Influx.BatchSize,
		config.Aggregation.Version,
		models.TimeWindowLabel(config.Aggregation.TimeStepDays),
		emitterLogger,
	)

	// Initialize loader service
	loaderLogger := appLogger.With().Str(loggers.FieldComponent, "loader").Logger()
	loaderService := pipelines.NewLoaderService(
		contentPaths,
		purchasePaths,
		aggregators.NewContentBucketer(resolver, config.Aggregation.ArticleCodeDigits),
		aggregators.NewPurchaseBucketer(resolver, config.Aggregation.ArticleCodeDigits),
		emitter,
		config.Aggregation.TimeStepDays,
		loaderLogger,
	)

	// Create operational HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           internalhttp.NewRouter(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	return &App{
		config:        config,
		appLogger:     appLogger,
		server:        server,
		loaderService: loaderService,
		pointWriter:   pointWriter,
	}, nil
}

// Run executes one full aggregation run. The operational HTTP server is
// served in the background for the duration of the run.
func (app *App) Run(ctx context.Context) error {
	app.appLogger.Info().
		Msgf("Starting event-insights loader (log_level=%s, time_step_days=%d, ops_port=%d)",
			app.config.Log.Level,
			app.config.Aggregation.TimeStepDays,
			app.config.Server.Port)

	go func() {
		if err := app.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.appLogger.Error().Err(err).Msg("Operational server failed")
		}
	}()

	return app.loaderService.Run(ctx)
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown operational server
	app.appLogger.Info().Msg("Shutting down operational server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// 2) Close the sink client
	app.pointWriter.Close()
	app.appLogger.Info().Msg("Shutdown complete")

	return nil
}

func listEventFiles(dir string) ([]string, error) {
	source, err := filesources.NewFileSource(dir)
	if err != nil {
		return nil, err
	}
	return source.List()
}
