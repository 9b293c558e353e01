package execution

import (
	"context"
	"sync"

	domain "film-platform/studio-api/internal/domain/execution"
)

// InMemoryRepository is a thread-safe repository for demos and tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	entries []domain.Execution
}

// NewInMemoryRepository creates an empty repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// Create appends the record.
func (r *InMemoryRepository) Create(_ context.Context, execution *domain.Execution) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *execution)
	return nil
}

// ListByProject returns at most limit executions of a project in insertion order.
func (r *InMemoryRepository) ListByProject(_ context.Context, projectID string, limit int) ([]*domain.Execution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Execution, 0)
	for i := range r.entries {
		if len(out) >= limit {
			break
		}
		entry := r.entries[i]
		if entry.ProjectID == nil || *entry.ProjectID != projectID {
			continue
		}
		out = append(out, &entry)
	}
	return out, nil
}
