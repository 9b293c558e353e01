package project

import (
	"context"
	"sync"

	domain "film-platform/studio-api/internal/domain/project"
	"film-platform/studio-api/internal/utils/platformerrors"
)

// InMemoryRepository is a thread-safe repository for demos and tests.
// Entries are kept in insertion order.
type InMemoryRepository struct {
	mu       sync.RWMutex
	entries  []*domain.Project
	byPublic map[string]int
}

// NewInMemoryRepository creates an empty repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byPublic: make(map[string]int)}
}

// Create stores a copy of the project.
func (r *InMemoryRepository) Create(ctx context.Context, project *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byPublic[project.ID]; exists {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"insert project: duplicate public id", nil, "project-create-dup-001")
	}
	r.byPublic[project.ID] = len(r.entries)
	r.entries = append(r.entries, clone(project))
	return nil
}

// List returns at most limit projects, newest first.
func (r *InMemoryRepository) List(_ context.Context, limit int) ([]*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Project, 0, min(limit, len(r.entries)))
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, clone(r.entries[i]))
	}
	return out, nil
}

// GetByPublicID fetches a project by its public id.
func (r *InMemoryRepository) GetByPublicID(ctx context.Context, publicID string) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byPublic[publicID]
	if !ok {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound,
			"project not found", nil, "project-get-notfound-001")
	}
	return clone(r.entries[idx]), nil
}

func clone(p *domain.Project) *domain.Project {
	c := *p
	c.ToolsUsed = make([]string, len(p.ToolsUsed))
	copy(c.ToolsUsed, p.ToolsUsed)
	return &c
}
