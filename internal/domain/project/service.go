package project

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"film-platform/studio-api/internal/utils/platformerrors"
)

const defaultListLimit = 100

// Service defines the interface for project business logic.
type Service interface {
	Create(ctx context.Context, params CreateParams) (*Project, error)
	List(ctx context.Context) ([]*Project, error)
	GetByID(ctx context.Context, id string) (*Project, error)
}

// DefaultService implements Service on top of a Repository.
type DefaultService struct {
	repo      Repository
	listLimit int
	log       zerolog.Logger
	now       func() time.Time
}

// NewService creates a project service. listLimit caps List; non-positive
// values fall back to 100.
func NewService(repo Repository, listLimit int, log zerolog.Logger) Service {
	if listLimit <= 0 {
		listLimit = defaultListLimit
	}
	return &DefaultService{
		repo:      repo,
		listLimit: listLimit,
		log:       log.With().Str("component", "project-service").Logger(),
		now:       time.Now,
	}
}

// Create stores a new project with a fresh public id.
func (s *DefaultService) Create(ctx context.Context, params CreateParams) (*Project, error) {
	toolsUsed := make([]string, len(params.ToolsUsed))
	copy(toolsUsed, params.ToolsUsed)

	now := s.now().UTC()
	p := &Project{
		ID:          uuid.NewString(),
		Name:        params.Name,
		Description: params.Description,
		ToolsUsed:   toolsUsed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "Project creation failed")
	}

	s.log.Debug().Str("project_id", p.ID).Msg("project created")
	return p, nil
}

// List returns the most recent projects.
func (s *DefaultService) List(ctx context.Context) ([]*Project, error) {
	projects, err := s.repo.List(ctx, s.listLimit)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "Failed to fetch projects")
	}
	if projects == nil {
		projects = []*Project{}
	}
	return projects, nil
}

// GetByID resolves a project by its public id.
func (s *DefaultService) GetByID(ctx context.Context, id string) (*Project, error) {
	p, err := s.repo.GetByPublicID(ctx, id)
	if err != nil {
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
			return nil, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
				"Project not found", err, "", map[string]any{"project_id": id})
		}
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "Failed to fetch project")
	}
	return p, nil
}
