package handlers

import (
	"context"

	"film-platform/studio-api/internal/domain/execution"
	"film-platform/studio-api/internal/interfaces/httpserver/responses"
)

// SystemHandler serves health and provider diagnostics.
type SystemHandler struct {
	serviceName string
	executions  execution.Service
}

// NewSystemHandler wires dependencies for system routes.
func NewSystemHandler(serviceName string, executions execution.Service) *SystemHandler {
	return &SystemHandler{
		serviceName: serviceName,
		executions:  executions,
	}
}

// Root identifies the API.
func (h *SystemHandler) Root() responses.RootResponse {
	return responses.RootResponse{Message: h.serviceName + " API"}
}

// Health reports liveness.
func (h *SystemHandler) Health() responses.HealthResponse {
	return responses.HealthResponse{Status: "healthy", Service: h.serviceName}
}

// Probe checks provider connectivity. It never fails.
func (h *SystemHandler) Probe(ctx context.Context) responses.ProbeResponse {
	return responses.NewProbeResponse(h.executions.Probe(ctx))
}

// Mode reports whether tool output is live or canned.
func (h *SystemHandler) Mode() execution.Mode {
	return h.executions.Mode()
}
