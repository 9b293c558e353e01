package execution

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"film-platform/studio-api/internal/domain/tool"
	"film-platform/studio-api/internal/utils/platformerrors"
)

type MockProvider struct {
	RunFunc func(ctx context.Context, model string, input map[string]any) (any, error)
}

func (m *MockProvider) Run(ctx context.Context, model string, input map[string]any) (any, error) {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, model, input)
	}
	return nil, nil
}

type MockRepository struct {
	mu      sync.Mutex
	records []*Execution

	CreateFunc func(ctx context.Context, execution *Execution) error
}

func (m *MockRepository) Create(ctx context.Context, execution *Execution) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, execution)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, execution)
	return nil
}

func (m *MockRepository) ListByProject(_ context.Context, projectID string, limit int) ([]*Execution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Execution, 0)
	for _, rec := range m.records {
		if rec.ProjectID != nil && *rec.ProjectID == projectID && len(out) < limit {
			out = append(out, rec)
		}
	}
	return out, nil
}

type recordedObservation struct {
	tool   string
	mode   Mode
	status string
}

type MockRecorder struct {
	observations []recordedObservation
}

func (m *MockRecorder) ObserveExecution(toolName string, mode Mode, status string, _ time.Duration) {
	m.observations = append(m.observations, recordedObservation{tool: toolName, mode: mode, status: status})
}

func newTestService(t *testing.T, provider Provider, repo Repository, opts Options) Service {
	t.Helper()
	registry, err := tool.LoadDefaultRegistry()
	require.NoError(t, err)
	bank, err := tool.LoadDefaultDemoBank()
	require.NoError(t, err)
	return NewService(registry, bank, provider, repo, opts, zerolog.Nop())
}

func strPtr(s string) *string { return &s }

func TestExecuteDemoMode(t *testing.T) {
	repo := &MockRepository{}
	recorder := &MockRecorder{}
	svc := newTestService(t, nil, repo, Options{Recorder: recorder})

	assert.Equal(t, ModeDemo, svc.Mode())

	outcome, err := svc.Execute(context.Background(), Request{
		ToolName:  "Script Writer",
		Inputs:    map[string]any{"prompt": "a heist in a coffee shop"},
		ProjectID: strPtr("proj-1"),
	})
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.True(t, outcome.IsDemo)
	assert.True(t, outcome.Result.IsText())
	assert.True(t, strings.HasPrefix(outcome.Result.Text, "FADE IN:"))
	assert.NotEmpty(t, outcome.ExecutionID)

	require.Len(t, repo.records, 1)
	rec := repo.records[0]
	assert.Equal(t, outcome.ExecutionID, rec.ID)
	assert.Equal(t, "Script Writer", rec.ToolName)
	assert.Equal(t, "a heist in a coffee shop", rec.Inputs["prompt"])
	assert.True(t, rec.IsDemo)
	assert.Equal(t, time.UTC, rec.CreatedAt.Location())

	require.Len(t, recorder.observations, 1)
	assert.Equal(t, recordedObservation{tool: "Script Writer", mode: ModeDemo, status: "success"}, recorder.observations[0])
}

func TestExecuteUnknownTool(t *testing.T) {
	repo := &MockRepository{}
	recorder := &MockRecorder{}
	svc := newTestService(t, &MockProvider{}, repo, Options{Recorder: recorder})

	tests := []string{"Missing Tool", "", "script writer"}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			outcome, err := svc.Execute(context.Background(), Request{ToolName: name})
			assert.Nil(t, outcome)
			require.Error(t, err)
			assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
			assert.Equal(t, "Tool not found", platformerrors.GetPlatformError(err).Message)
		})
	}
	assert.Empty(t, repo.records)
	require.Len(t, recorder.observations, len(tests))
	for _, obs := range recorder.observations {
		assert.Equal(t, recordedObservation{tool: UnknownToolLabel, mode: ModeLive, status: "not_found"}, obs)
	}
}

func TestExecuteLiveMode(t *testing.T) {
	tests := []struct {
		name       string
		raw        any
		wantText   bool
		wantResult any
	}{
		{name: "string", raw: "a storyboard", wantText: true, wantResult: "a storyboard"},
		{name: "sequence of urls", raw: []any{"https://a/1.png", "https://a/2.png"}, wantText: true, wantResult: "https://a/1.pnghttps://a/2.png"},
		{name: "empty sequence", raw: []any{}, wantText: true, wantResult: ""},
		{name: "nil", raw: nil, wantText: true, wantResult: ""},
		{name: "object", raw: map[string]any{"audio": "https://a/track.mp3"}, wantText: false, wantResult: map[string]any{"audio": "https://a/track.mp3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotModel string
			var gotInput map[string]any
			provider := &MockProvider{RunFunc: func(_ context.Context, model string, input map[string]any) (any, error) {
				gotModel = model
				gotInput = input
				return tt.raw, nil
			}}
			repo := &MockRepository{}
			svc := newTestService(t, provider, repo, Options{})

			outcome, err := svc.Execute(context.Background(), Request{
				ToolName: "Story Board Builder",
				Inputs:   map[string]any{"prompt": "opening shot"},
			})
			require.NoError(t, err)
			assert.False(t, outcome.IsDemo)
			assert.Equal(t, tt.wantText, outcome.Result.IsText())
			assert.Equal(t, tt.wantResult, outcome.Result.Interface())

			assert.Contains(t, gotModel, "stability-ai/sdxl")
			assert.Equal(t, "opening shot", gotInput["prompt"])

			require.Len(t, repo.records, 1)
			assert.Nil(t, repo.records[0].ProjectID)
			assert.False(t, repo.records[0].IsDemo)
		})
	}
}

func TestExecuteProviderFailure(t *testing.T) {
	provider := &MockProvider{RunFunc: func(context.Context, string, map[string]any) (any, error) {
		return nil, errors.New("model is unavailable")
	}}
	repo := &MockRepository{}
	svc := newTestService(t, provider, repo, Options{})

	outcome, err := svc.Execute(context.Background(), Request{ToolName: "Voices", Inputs: map[string]any{"text": "hi"}})
	assert.Nil(t, outcome)
	require.Error(t, err)

	pe := platformerrors.GetPlatformError(err)
	require.NotNil(t, pe)
	assert.Equal(t, platformerrors.ErrorTypeInternal, pe.Type)
	assert.Equal(t, "Tool execution failed: model is unavailable", pe.Message)
	assert.Equal(t, 500, platformerrors.ErrorTypeToHTTPStatus(pe.Type))
	assert.Empty(t, repo.records)
}

func TestExecuteProviderTimeout(t *testing.T) {
	provider := &MockProvider{RunFunc: func(ctx context.Context, _ string, _ map[string]any) (any, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}}
	repo := &MockRepository{}
	svc := newTestService(t, provider, repo, Options{ProviderTimeout: 10 * time.Millisecond})

	_, err := svc.Execute(context.Background(), Request{ToolName: "Animation", Inputs: map[string]any{}})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeTimeout))
	assert.True(t, strings.HasPrefix(platformerrors.GetPlatformError(err).Message, "Tool execution failed: provider call timed out"))
	assert.Empty(t, repo.records)
}

func TestExecutePersistenceFailure(t *testing.T) {
	repo := &MockRepository{CreateFunc: func(ctx context.Context, _ *Execution) error {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
			"failed to create execution", errors.New("connection refused"), "")
	}}
	svc := newTestService(t, nil, repo, Options{})

	_, err := svc.Execute(context.Background(), Request{ToolName: "Script Writer"})
	require.Error(t, err)
	pe := platformerrors.GetPlatformError(err)
	require.NotNil(t, pe)
	assert.Equal(t, "Tool execution failed: failed to create execution: connection refused", pe.Message)
	assert.Equal(t, 500, platformerrors.ErrorTypeToHTTPStatus(pe.Type))
}

func TestExecuteNilInputsRecordedAsEmptyObject(t *testing.T) {
	repo := &MockRepository{}
	svc := newTestService(t, nil, repo, Options{})

	_, err := svc.Execute(context.Background(), Request{ToolName: "Editing"})
	require.NoError(t, err)
	require.Len(t, repo.records, 1)
	assert.NotNil(t, repo.records[0].Inputs)
	assert.Empty(t, repo.records[0].Inputs)
}

func TestProbe(t *testing.T) {
	t.Run("demo", func(t *testing.T) {
		svc := newTestService(t, nil, &MockRepository{}, Options{})
		out := svc.Probe(context.Background())
		assert.True(t, out.Success)
		assert.Equal(t, ModeDemo, out.Mode)
		assert.Equal(t, tool.DemoProbeMessage, out.Result.Text)
	})

	t.Run("live success", func(t *testing.T) {
		provider := &MockProvider{RunFunc: func(_ context.Context, model string, input map[string]any) (any, error) {
			assert.Equal(t, ProbeModel, model)
			assert.Equal(t, ProbePrompt, input["prompt"])
			return []any{"Hello", " there"}, nil
		}}
		svc := newTestService(t, provider, &MockRepository{}, Options{})
		out := svc.Probe(context.Background())
		assert.True(t, out.Success)
		assert.Equal(t, ModeLive, out.Mode)
		assert.Equal(t, "Hello there", out.Result.Text)
	})

	t.Run("live failure", func(t *testing.T) {
		provider := &MockProvider{RunFunc: func(context.Context, string, map[string]any) (any, error) {
			return nil, errors.New("invalid token")
		}}
		repo := &MockRepository{}
		svc := newTestService(t, provider, repo, Options{})
		out := svc.Probe(context.Background())
		assert.False(t, out.Success)
		assert.Equal(t, ModeLive, out.Mode)
		assert.Equal(t, "invalid token", out.Error)
		assert.Empty(t, repo.records)
	})
}

func TestListByProject(t *testing.T) {
	repo := &MockRepository{}
	svc := newTestService(t, nil, repo, Options{ListLimit: 2})

	for _, name := range []string{"Script Writer", "Music", "SFX"} {
		_, err := svc.Execute(context.Background(), Request{ToolName: name, ProjectID: strPtr("p1")})
		require.NoError(t, err)
	}
	_, err := svc.Execute(context.Background(), Request{ToolName: "Music", ProjectID: strPtr("p2")})
	require.NoError(t, err)

	got, err := svc.ListByProject(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Script Writer", got[0].ToolName)
	assert.Equal(t, "Music", got[1].ToolName)

	none, err := svc.ListByProject(context.Background(), "missing")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
