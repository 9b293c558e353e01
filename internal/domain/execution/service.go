package execution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"film-platform/studio-api/internal/domain/tool"
	"film-platform/studio-api/internal/utils/platformerrors"
)

const (
	tracerName = "film-platform/studio-api/execution"

	// ProbeModel and ProbePrompt drive the provider connectivity check.
	ProbeModel  = "meta/llama-2-7b-chat:8e6975e5ed6174911a6ff3d60540dfd4844201974602551e10e9e87ab143d81e"
	ProbePrompt = "Hello, this is a test from AI Filmmaking Platform"

	// UnknownToolLabel stands in for names that are not in the catalog so
	// callers cannot mint new metric series.
	UnknownToolLabel = "unknown"

	defaultProviderTimeout = 120 * time.Second
	defaultListLimit       = 100
)

// Recorder receives one observation per dispatch.
type Recorder interface {
	ObserveExecution(toolName string, mode Mode, status string, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveExecution(string, Mode, string, time.Duration) {}

// Options tunes the dispatcher.
type Options struct {
	ProviderTimeout time.Duration
	ListLimit       int
	Recorder        Recorder
}

// Service describes the tool dispatch surface.
type Service interface {
	Execute(ctx context.Context, req Request) (*Outcome, error)
	Probe(ctx context.Context) ProbeOutcome
	ListByProject(ctx context.Context, projectID string) ([]*Execution, error)
	Mode() Mode
}

type service struct {
	registry *tool.Registry
	demo     *tool.DemoBank
	provider Provider
	repo     Repository
	opts     Options
	log      zerolog.Logger
	tracer   trace.Tracer
	now      func() time.Time
}

// NewService wires the dispatcher. A nil provider puts it in demo mode.
func NewService(registry *tool.Registry, demo *tool.DemoBank, provider Provider, repo Repository, opts Options, log zerolog.Logger) Service {
	if opts.ProviderTimeout <= 0 {
		opts.ProviderTimeout = defaultProviderTimeout
	}
	if opts.ListLimit <= 0 {
		opts.ListLimit = defaultListLimit
	}
	if opts.Recorder == nil {
		opts.Recorder = nopRecorder{}
	}
	return &service{
		registry: registry,
		demo:     demo,
		provider: provider,
		repo:     repo,
		opts:     opts,
		log:      log.With().Str("component", "execution-service").Logger(),
		tracer:   otel.Tracer(tracerName),
		now:      time.Now,
	}
}

func (s *service) Mode() Mode {
	if s.provider == nil {
		return ModeDemo
	}
	return ModeLive
}

func (s *service) Execute(ctx context.Context, req Request) (*Outcome, error) {
	ctx, span := s.tracer.Start(ctx, "tool.execute", trace.WithAttributes(
		attribute.String("tool.name", req.ToolName),
		attribute.String("tool.mode", string(s.Mode())),
	))
	defer span.End()

	start := time.Now()
	outcome, err := s.execute(ctx, req)

	status := "success"
	if err != nil {
		status = "error"
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
			status = "not_found"
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, status)
	}
	s.opts.Recorder.ObserveExecution(s.toolLabel(req.ToolName), s.Mode(), status, time.Since(start))
	return outcome, err
}

func (s *service) toolLabel(name string) string {
	if _, ok := s.registry.Get(name); ok {
		return name
	}
	return UnknownToolLabel
}

func (s *service) execute(ctx context.Context, req Request) (*Outcome, error) {
	def, ok := s.registry.Get(req.ToolName)
	if !ok {
		return nil, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"Tool not found", nil, "", map[string]any{"tool_name": req.ToolName})
	}

	inputs := req.Inputs
	if inputs == nil {
		inputs = map[string]any{}
	}

	var result Result
	isDemo := s.provider == nil
	if isDemo {
		result = TextResult(s.demo.Response(def.Name))
	} else {
		raw, err := s.run(ctx, def.ReplicateModel, inputs)
		if err != nil {
			return nil, s.failure(ctx, def.Name, err)
		}
		result = Normalize(raw)
	}

	record := &Execution{
		ID:        uuid.NewString(),
		ToolName:  def.Name,
		Inputs:    inputs,
		Result:    result,
		ProjectID: req.ProjectID,
		CreatedAt: s.now().UTC(),
		IsDemo:    isDemo,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, s.failure(ctx, def.Name, err)
	}

	s.log.Debug().
		Str("tool_name", def.Name).
		Str("execution_id", record.ID).
		Bool("is_demo", isDemo).
		Msg("tool executed")

	return &Outcome{
		Success:     true,
		Result:      result,
		ExecutionID: record.ID,
		IsDemo:      isDemo,
	}, nil
}

func (s *service) Probe(ctx context.Context) ProbeOutcome {
	if s.provider == nil {
		return ProbeOutcome{Success: true, Result: TextResult(tool.DemoProbeMessage), Mode: ModeDemo}
	}

	raw, err := s.run(ctx, ProbeModel, map[string]any{"prompt": ProbePrompt})
	if err != nil {
		s.log.Warn().Err(err).Msg("provider probe failed")
		return ProbeOutcome{Success: false, Error: err.Error(), Mode: ModeLive}
	}
	return ProbeOutcome{Success: true, Result: Normalize(raw), Mode: ModeLive}
}

func (s *service) ListByProject(ctx context.Context, projectID string) ([]*Execution, error) {
	executions, err := s.repo.ListByProject(ctx, projectID, s.opts.ListLimit)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "Failed to fetch executions")
	}
	return executions, nil
}

// run performs the single blocking provider call under the configured timeout.
func (s *service) run(ctx context.Context, model string, inputs map[string]any) (any, error) {
	runCtx, cancel := context.WithTimeout(ctx, s.opts.ProviderTimeout)
	defer cancel()

	raw, err := s.provider.Run(runCtx, model, inputs)
	if err != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeTimeout,
				fmt.Sprintf("provider call timed out after %s", s.opts.ProviderTimeout), err, "")
		}
		return nil, err
	}
	return raw, nil
}

// failure converts anything but NotFound into an internal error carrying the
// original message.
func (s *service) failure(ctx context.Context, toolName string, err error) error {
	if platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		return err
	}

	errorType := platformerrors.ErrorTypeInternal
	if pe := platformerrors.GetPlatformError(err); pe != nil {
		errorType = pe.Type
	}

	return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, errorType,
		"Tool execution failed: "+platformerrors.Describe(err), nil, "", map[string]any{"tool_name": toolName})
}
