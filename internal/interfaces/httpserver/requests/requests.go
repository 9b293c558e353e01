package requests

// ExecuteToolRequest is the body of POST /api/tools/execute. Inputs are
// passed to the provider untouched.
type ExecuteToolRequest struct {
	ToolName  *string        `json:"tool_name" binding:"required" example:"Script Writer"`
	Inputs    map[string]any `json:"inputs" binding:"required" swaggertype:"object"`
	ProjectID *string        `json:"project_id,omitempty"`
}

// CreateProjectRequest is the body of POST /api/projects.
type CreateProjectRequest struct {
	Name        *string  `json:"name" binding:"required" example:"Coffee Shop Heist"`
	Description *string  `json:"description" binding:"required" example:"A short about a heist gone wrong"`
	ToolsUsed   []string `json:"tools_used"`
}
