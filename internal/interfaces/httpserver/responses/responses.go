package responses

import (
	"github.com/invopop/jsonschema"

	"film-platform/studio-api/internal/domain/execution"
	"film-platform/studio-api/internal/domain/project"
	"film-platform/studio-api/internal/domain/tool"
)

type RootResponse struct {
	Message string `json:"message" example:"AI Filmmaking Platform API"`
}

type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Service string `json:"service" example:"AI Filmmaking Platform"`
}

type ToolListResponse struct {
	Tools []tool.Definition `json:"tools"`
}

type ToolCategoryResponse struct {
	Tools    []tool.Definition `json:"tools"`
	Category string            `json:"category" example:"Pre-Production"`
}

type ToolSchemasResponse struct {
	Schemas map[string]*jsonschema.Schema `json:"schemas" swaggertype:"object"`
}

// ExecuteToolResponse reports a completed dispatch.
type ExecuteToolResponse = execution.Outcome

type ProjectCreateResponse struct {
	Success bool             `json:"success"`
	Project *project.Project `json:"project"`
}

type ProjectListResponse struct {
	Projects []*project.Project `json:"projects"`
}

// ProjectDetailResponse carries a project and its executions, oldest first.
type ProjectDetailResponse struct {
	Project    *project.Project       `json:"project"`
	Executions []*execution.Execution `json:"executions"`
}

// ProbeResponse is always served with 200; Success tells the caller whether
// the provider answered.
type ProbeResponse struct {
	Success bool              `json:"success"`
	Result  *execution.Result `json:"result,omitempty" swaggertype:"string"`
	Error   string            `json:"error,omitempty"`
	Mode    execution.Mode    `json:"mode" example:"demo"`
}

// NewProbeResponse maps a probe outcome onto the wire shape.
func NewProbeResponse(out execution.ProbeOutcome) ProbeResponse {
	resp := ProbeResponse{Success: out.Success, Error: out.Error, Mode: out.Mode}
	if out.Success {
		result := out.Result
		resp.Result = &result
	}
	return resp
}
