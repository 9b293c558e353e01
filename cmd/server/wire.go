//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	"film-platform/studio-api/internal/config"
	"film-platform/studio-api/internal/domain/execution"
	"film-platform/studio-api/internal/domain/project"
	"film-platform/studio-api/internal/domain/tool"
	"film-platform/studio-api/internal/infrastructure/auth"
	"film-platform/studio-api/internal/infrastructure/logger"
	"film-platform/studio-api/internal/interfaces/httpserver"
)

var catalogSet = wire.NewSet(
	tool.LoadDefaultRegistry,
	tool.LoadDefaultDemoBank,
)

var storageSet = wire.NewSet(
	newStorage,
	wire.FieldsOf(new(*Storage), "Projects", "Executions", "Readiness"),
)

var serviceSet = wire.NewSet(
	newProvider,
	newExecutionOptions,
	execution.NewService,
	provideProjectService,
)

// BuildApplication assembles the studio API with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		auth.NewValidator,
		catalogSet,
		storageSet,
		serviceSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func provideProjectService(repo project.Repository, cfg *config.Config, log zerolog.Logger) project.Service {
	return project.NewService(repo, cfg.ProjectListLimit, log)
}
