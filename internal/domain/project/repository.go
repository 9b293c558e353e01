package project

import "context"

// Repository defines the interface for project persistence.
type Repository interface {
	// Create persists a new project.
	Create(ctx context.Context, project *Project) error

	// List returns at most limit projects, most recently created first.
	List(ctx context.Context, limit int) ([]*Project, error)

	// GetByPublicID returns a NotFound platform error when no project matches.
	GetByPublicID(ctx context.Context, publicID string) (*Project, error)
}
