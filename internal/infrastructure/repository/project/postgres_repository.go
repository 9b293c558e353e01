package project

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	domain "film-platform/studio-api/internal/domain/project"
	"film-platform/studio-api/internal/infrastructure/database/entities"
	"film-platform/studio-api/internal/utils/platformerrors"
)

// PostgresRepository persists projects via PostgreSQL using GORM.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new project row.
func (r *PostgresRepository) Create(ctx context.Context, project *domain.Project) error {
	entity, err := toEntity(project)
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeInternal,
			"encode project", err, "project-create-map-001")
	}

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"insert project", err, "project-create-db-001")
	}
	return nil
}

// List returns at most limit projects, newest first.
func (r *PostgresRepository) List(ctx context.Context, limit int) ([]*domain.Project, error) {
	var rows []entities.Project
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"list projects", err, "project-list-db-001")
	}

	projects := make([]*domain.Project, 0, len(rows))
	for i := range rows {
		p, err := toDomain(&rows[i])
		if err != nil {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeInternal,
				"decode project", err, "project-list-map-001")
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// GetByPublicID fetches a project by its public id.
func (r *PostgresRepository) GetByPublicID(ctx context.Context, publicID string) (*domain.Project, error) {
	var row entities.Project
	err := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound,
				"project not found", nil, "project-get-notfound-001")
		}
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"query project", err, "project-get-db-001")
	}

	p, err := toDomain(&row)
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeInternal,
			"decode project", err, "project-get-map-001")
	}
	return p, nil
}

func toEntity(p *domain.Project) (*entities.Project, error) {
	toolsUsed := p.ToolsUsed
	if toolsUsed == nil {
		toolsUsed = []string{}
	}
	encoded, err := json.Marshal(toolsUsed)
	if err != nil {
		return nil, err
	}
	return &entities.Project{
		PublicID:    p.ID,
		Name:        p.Name,
		Description: p.Description,
		ToolsUsed:   encoded,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}

func toDomain(e *entities.Project) (*domain.Project, error) {
	toolsUsed := []string{}
	if len(e.ToolsUsed) > 0 {
		if err := json.Unmarshal(e.ToolsUsed, &toolsUsed); err != nil {
			return nil, err
		}
		if toolsUsed == nil {
			toolsUsed = []string{}
		}
	}
	return &domain.Project{
		ID:          e.PublicID,
		Name:        e.Name,
		Description: e.Description,
		ToolsUsed:   toolsUsed,
		CreatedAt:   e.CreatedAt.UTC(),
		UpdatedAt:   e.UpdatedAt.UTC(),
	}, nil
}
