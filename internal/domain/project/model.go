package project

import "time"

// Project groups executions under a user-supplied name and description.
// ID is the public identifier; storage keys never leave the repository.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ToolsUsed   []string  `json:"tools_used"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateParams contains the client-supplied fields of a new project.
type CreateParams struct {
	Name        string
	Description string
	ToolsUsed   []string
}
