package handlers

import (
	"context"

	"film-platform/studio-api/internal/domain/execution"
	"film-platform/studio-api/internal/domain/project"
	"film-platform/studio-api/internal/interfaces/httpserver/requests"
	"film-platform/studio-api/internal/interfaces/httpserver/responses"
	"film-platform/studio-api/internal/utils/platformerrors"
)

// ProjectHandler invokes domain logic for project use cases.
type ProjectHandler struct {
	projects   project.Service
	executions execution.Service
}

// NewProjectHandler wires dependencies for project routes.
func NewProjectHandler(projects project.Service, executions execution.Service) *ProjectHandler {
	return &ProjectHandler{
		projects:   projects,
		executions: executions,
	}
}

// Create stores a new project.
func (h *ProjectHandler) Create(ctx context.Context, req requests.CreateProjectRequest) (*responses.ProjectCreateResponse, error) {
	params := project.CreateParams{ToolsUsed: req.ToolsUsed}
	if req.Name != nil {
		params.Name = *req.Name
	}
	if req.Description != nil {
		params.Description = *req.Description
	}

	p, err := h.projects.Create(ctx, params)
	if err != nil {
		return nil, err
	}
	return &responses.ProjectCreateResponse{Success: true, Project: p}, nil
}

// List returns the most recent projects.
func (h *ProjectHandler) List(ctx context.Context) (*responses.ProjectListResponse, error) {
	projects, err := h.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	return &responses.ProjectListResponse{Projects: projects}, nil
}

// Get returns one project with its executions.
func (h *ProjectHandler) Get(ctx context.Context, id string) (*responses.ProjectDetailResponse, error) {
	p, err := h.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	executions, err := h.executions.ListByProject(ctx, p.ID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "Failed to fetch project")
	}
	if executions == nil {
		executions = []*execution.Execution{}
	}
	return &responses.ProjectDetailResponse{Project: p, Executions: executions}, nil
}
