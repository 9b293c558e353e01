package handlers

import (
	"film-platform/studio-api/internal/domain/execution"
	"film-platform/studio-api/internal/domain/project"
	"film-platform/studio-api/internal/domain/tool"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Tool    *ToolHandler
	Project *ProjectHandler
	System  *SystemHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(serviceName string, registry *tool.Registry, executionService execution.Service, projectService project.Service) *Provider {
	return &Provider{
		Tool:    NewToolHandler(registry, executionService),
		Project: NewProjectHandler(projectService, executionService),
		System:  NewSystemHandler(serviceName, executionService),
	}
}
