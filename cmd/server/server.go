package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"film-platform/studio-api/internal/config"
	"film-platform/studio-api/internal/domain/execution"
	"film-platform/studio-api/internal/domain/project"
	"film-platform/studio-api/internal/domain/tool"
	"film-platform/studio-api/internal/infrastructure/auth"
	"film-platform/studio-api/internal/infrastructure/database"
	"film-platform/studio-api/internal/infrastructure/logger"
	"film-platform/studio-api/internal/infrastructure/metrics"
	"film-platform/studio-api/internal/infrastructure/observability"
	"film-platform/studio-api/internal/infrastructure/replicate"
	executionrepo "film-platform/studio-api/internal/infrastructure/repository/execution"
	projectrepo "film-platform/studio-api/internal/infrastructure/repository/project"
	"film-platform/studio-api/internal/interfaces/httpserver"
)

// @title AI Filmmaking Platform API
// @version 1.0
// @description Tool catalog, model dispatch and project storage for the AI filmmaking studio
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

// Storage bundles the repositories of the selected backend.
type Storage struct {
	Projects   project.Repository
	Executions execution.Repository
	Readiness  []httpserver.ReadinessCheck
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	registry, err := tool.LoadDefaultRegistry()
	if err != nil {
		log.Fatal().Err(err).Msg("load tool catalog")
	}
	demoBank, err := tool.LoadDefaultDemoBank()
	if err != nil {
		log.Fatal().Err(err).Msg("load demo responses")
	}

	store, err := newStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize storage")
	}

	authValidator, err := auth.NewValidator(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize auth")
	}
	defer authValidator.Close()

	executionService := execution.NewService(registry, demoBank, newProvider(cfg, log), store.Executions, newExecutionOptions(cfg), log)
	projectService := project.NewService(store.Projects, cfg.ProjectListLimit, log)

	httpServer := httpserver.New(cfg, log, registry, executionService, projectService, authValidator, store.Readiness...)
	app := NewApplication(httpServer, log)

	log.Info().
		Str("mode", string(executionService.Mode())).
		Str("storage", cfg.StorageBackend).
		Int("tools", registry.Len()).
		Msg("studio api configured")

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

// newStorage selects the repositories for the configured backend.
func newStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Storage, error) {
	if cfg.StorageBackend == config.StorageBackendMemory {
		log.Warn().Msg("using in-memory storage; projects and executions are lost on restart")
		return &Storage{
			Projects:   projectrepo.NewInMemoryRepository(),
			Executions: executionrepo.NewInMemoryRepository(),
		}, nil
	}

	db, err := newGormDB(ctx, newDatabaseConfig(cfg), log)
	if err != nil {
		return nil, err
	}
	return newPostgresStorage(db), nil
}

func newPostgresStorage(db *gorm.DB) *Storage {
	return &Storage{
		Projects:   projectrepo.NewPostgresRepository(db),
		Executions: executionrepo.NewPostgresRepository(db),
		Readiness:  []httpserver.ReadinessCheck{pingDatabase(db)},
	}
}

func newDatabaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		DSN:             cfg.DatabaseURL,
		DatabaseName:    cfg.DatabaseName,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	}
}

func newGormDB(ctx context.Context, cfg database.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}

func pingDatabase(db *gorm.DB) httpserver.ReadinessCheck {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

// newProvider returns nil without credentials, which puts the dispatcher in
// demo mode.
func newProvider(cfg *config.Config, log zerolog.Logger) execution.Provider {
	if cfg.DemoMode() {
		log.Warn().Msg("REPLICATE_API_TOKEN not set; serving demo responses")
		return nil
	}
	return replicate.NewClient(replicate.Config{
		BaseURL:      cfg.ReplicateAPIURL,
		Token:        cfg.ReplicateAPIToken,
		PollInterval: cfg.ProviderPollInterval,
	}, log)
}

func newExecutionOptions(cfg *config.Config) execution.Options {
	return execution.Options{
		ProviderTimeout: cfg.ProviderTimeout,
		ListLimit:       cfg.ExecutionListLimit,
		Recorder:        metrics.NewExecutionRecorder(),
	}
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
