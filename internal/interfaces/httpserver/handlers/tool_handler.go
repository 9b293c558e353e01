package handlers

import (
	"context"

	"film-platform/studio-api/internal/domain/execution"
	"film-platform/studio-api/internal/domain/tool"
	"film-platform/studio-api/internal/interfaces/httpserver/requests"
	"film-platform/studio-api/internal/interfaces/httpserver/responses"
)

// ToolHandler serves the catalog and dispatches tool runs.
type ToolHandler struct {
	registry   *tool.Registry
	executions execution.Service
}

// NewToolHandler wires dependencies for tool routes.
func NewToolHandler(registry *tool.Registry, executions execution.Service) *ToolHandler {
	return &ToolHandler{
		registry:   registry,
		executions: executions,
	}
}

// List returns the full catalog in registry order.
func (h *ToolHandler) List() responses.ToolListResponse {
	return responses.ToolListResponse{Tools: h.registry.List()}
}

// ListByCategory filters the catalog. Unknown categories yield no tools.
func (h *ToolHandler) ListByCategory(category string) responses.ToolCategoryResponse {
	return responses.ToolCategoryResponse{
		Tools:    h.registry.ListByCategory(category),
		Category: category,
	}
}

// Schemas returns the JSON Schema of every tool's declared inputs.
func (h *ToolHandler) Schemas() responses.ToolSchemasResponse {
	return responses.ToolSchemasResponse{Schemas: h.registry.InputSchemas()}
}

// Execute runs the requested tool.
func (h *ToolHandler) Execute(ctx context.Context, req requests.ExecuteToolRequest) (*responses.ExecuteToolResponse, error) {
	var toolName string
	if req.ToolName != nil {
		toolName = *req.ToolName
	}
	return h.executions.Execute(ctx, execution.Request{
		ToolName:  toolName,
		Inputs:    req.Inputs,
		ProjectID: req.ProjectID,
	})
}
