package execution

import (
	"context"
	"time"
)

// Mode reports where tool output comes from.
type Mode string

const (
	ModeLive Mode = "live"
	ModeDemo Mode = "demo"
)

// Execution is one recorded tool invocation. Records are written once and
// never updated.
type Execution struct {
	ID        string         `json:"id"`
	ToolName  string         `json:"tool_name"`
	Inputs    map[string]any `json:"inputs"`
	Result    Result         `json:"result"`
	ProjectID *string        `json:"project_id"`
	CreatedAt time.Time      `json:"created_at"`
	IsDemo    bool           `json:"is_demo"`
}

// Request carries one tool invocation through the dispatcher.
type Request struct {
	ToolName  string
	Inputs    map[string]any
	ProjectID *string
}

// Outcome is what a successful dispatch reports back to the caller.
type Outcome struct {
	Success     bool   `json:"success"`
	Result      Result `json:"result"`
	ExecutionID string `json:"execution_id"`
	IsDemo      bool   `json:"is_demo"`
}

// ProbeOutcome is the result of a provider connectivity check.
type ProbeOutcome struct {
	Success bool
	Result  Result
	Error   string
	Mode    Mode
}

// Provider runs a remote model. The shape of the returned value is not
// fixed; callers pass it through Normalize.
type Provider interface {
	Run(ctx context.Context, model string, input map[string]any) (any, error)
}

// Repository persists execution records.
type Repository interface {
	Create(ctx context.Context, execution *Execution) error
	ListByProject(ctx context.Context, projectID string, limit int) ([]*Execution, error)
}
