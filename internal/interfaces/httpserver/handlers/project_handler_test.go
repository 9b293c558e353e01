package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"film-platform/studio-api/internal/domain/execution"
	"film-platform/studio-api/internal/domain/project"
	"film-platform/studio-api/internal/interfaces/httpserver/requests"
	"film-platform/studio-api/internal/utils/platformerrors"
)

type MockProjectService struct {
	CreateFunc  func(ctx context.Context, params project.CreateParams) (*project.Project, error)
	ListFunc    func(ctx context.Context) ([]*project.Project, error)
	GetByIDFunc func(ctx context.Context, id string) (*project.Project, error)
}

func (m *MockProjectService) Create(ctx context.Context, params project.CreateParams) (*project.Project, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return &project.Project{Name: params.Name, Description: params.Description, ToolsUsed: params.ToolsUsed}, nil
}

func (m *MockProjectService) List(ctx context.Context) ([]*project.Project, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*project.Project{}, nil
}

func (m *MockProjectService) GetByID(ctx context.Context, id string) (*project.Project, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &project.Project{ID: id}, nil
}

type MockExecutionService struct {
	ListByProjectFunc func(ctx context.Context, projectID string) ([]*execution.Execution, error)
}

func (m *MockExecutionService) Execute(context.Context, execution.Request) (*execution.Outcome, error) {
	return &execution.Outcome{Success: true}, nil
}

func (m *MockExecutionService) Probe(context.Context) execution.ProbeOutcome {
	return execution.ProbeOutcome{Success: true, Mode: execution.ModeDemo}
}

func (m *MockExecutionService) ListByProject(ctx context.Context, projectID string) ([]*execution.Execution, error) {
	if m.ListByProjectFunc != nil {
		return m.ListByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockExecutionService) Mode() execution.Mode {
	return execution.ModeDemo
}

func strPtr(s string) *string { return &s }

func TestProjectHandlerCreate(t *testing.T) {
	var got project.CreateParams
	projects := &MockProjectService{CreateFunc: func(_ context.Context, params project.CreateParams) (*project.Project, error) {
		got = params
		return &project.Project{ID: "p1", Name: params.Name}, nil
	}}
	handler := NewProjectHandler(projects, &MockExecutionService{})

	resp, err := handler.Create(context.Background(), requests.CreateProjectRequest{
		Name:        strPtr("Heist"),
		Description: strPtr("A short"),
		ToolsUsed:   []string{"Music"},
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "p1", resp.Project.ID)
	assert.Equal(t, project.CreateParams{Name: "Heist", Description: "A short", ToolsUsed: []string{"Music"}}, got)
}

func TestProjectHandlerGetWithoutExecutions(t *testing.T) {
	handler := NewProjectHandler(&MockProjectService{}, &MockExecutionService{})

	resp, err := handler.Get(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", resp.Project.ID)
	require.NotNil(t, resp.Executions)
	assert.Empty(t, resp.Executions)
}

func TestProjectHandlerGetExecutionsFailure(t *testing.T) {
	executions := &MockExecutionService{ListByProjectFunc: func(ctx context.Context, _ string) ([]*execution.Execution, error) {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, errors.New("connection reset"), "Failed to fetch executions")
	}}
	handler := NewProjectHandler(&MockProjectService{}, executions)

	_, err := handler.Get(context.Background(), "p1")
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch project: Failed to fetch executions: connection reset", platformerrors.Describe(err))
	assert.Equal(t, 500, platformerrors.ErrorTypeToHTTPStatus(platformerrors.GetPlatformError(err).Type))
}

func TestProjectHandlerGetPassesNotFound(t *testing.T) {
	projects := &MockProjectService{GetByIDFunc: func(ctx context.Context, _ string) (*project.Project, error) {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound, "Project not found", nil, "")
	}}
	handler := NewProjectHandler(projects, &MockExecutionService{})

	_, err := handler.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
	assert.Equal(t, "Project not found", platformerrors.Describe(err))
}
