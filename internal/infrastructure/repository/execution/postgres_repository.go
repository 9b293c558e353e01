package execution

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	domain "film-platform/studio-api/internal/domain/execution"
	"film-platform/studio-api/internal/infrastructure/database/entities"
	"film-platform/studio-api/internal/utils/platformerrors"
)

// PostgresRepository persists execution records via PostgreSQL using GORM.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new execution row.
func (r *PostgresRepository) Create(ctx context.Context, execution *domain.Execution) error {
	entity, err := toEntity(execution)
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeInternal,
			"encode execution", err, "execution-create-map-001")
	}

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"insert execution", err, "execution-create-db-001")
	}
	return nil
}

// ListByProject returns at most limit executions of a project, oldest first.
func (r *PostgresRepository) ListByProject(ctx context.Context, projectID string, limit int) ([]*domain.Execution, error) {
	var rows []entities.Execution
	if err := r.db.WithContext(ctx).
		Where("project_public_id = ?", projectID).
		Order("created_at ASC").
		Order("id ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"list executions", err, "execution-list-db-001")
	}

	executions := make([]*domain.Execution, 0, len(rows))
	for i := range rows {
		e, err := toDomain(&rows[i])
		if err != nil {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeInternal,
				"decode execution", err, "execution-list-map-001")
		}
		executions = append(executions, e)
	}
	return executions, nil
}

func toEntity(e *domain.Execution) (*entities.Execution, error) {
	inputs := e.Inputs
	if inputs == nil {
		inputs = map[string]any{}
	}
	encodedInputs, err := json.Marshal(inputs)
	if err != nil {
		return nil, err
	}
	encodedResult, err := json.Marshal(e.Result)
	if err != nil {
		return nil, err
	}
	return &entities.Execution{
		PublicID:        e.ID,
		ToolName:        e.ToolName,
		Inputs:          encodedInputs,
		Result:          encodedResult,
		ProjectPublicID: e.ProjectID,
		CreatedAt:       e.CreatedAt,
		IsDemo:          e.IsDemo,
	}, nil
}

func toDomain(row *entities.Execution) (*domain.Execution, error) {
	inputs := map[string]any{}
	if len(row.Inputs) > 0 {
		if err := json.Unmarshal(row.Inputs, &inputs); err != nil {
			return nil, err
		}
	}

	result := domain.TextResult("")
	if len(row.Result) > 0 {
		if err := json.Unmarshal(row.Result, &result); err != nil {
			return nil, err
		}
	}

	return &domain.Execution{
		ID:        row.PublicID,
		ToolName:  row.ToolName,
		Inputs:    inputs,
		Result:    result,
		ProjectID: row.ProjectPublicID,
		CreatedAt: row.CreatedAt.UTC(),
		IsDemo:    row.IsDemo,
	}, nil
}
