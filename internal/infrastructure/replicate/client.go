package replicate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"film-platform/studio-api/internal/domain/execution"
	"film-platform/studio-api/internal/infrastructure/metrics"
	"film-platform/studio-api/internal/infrastructure/observability"
	"film-platform/studio-api/internal/utils/platformerrors"
)

const (
	DefaultBaseURL      = "https://api.replicate.com"
	defaultPollInterval = time.Second
)

// Prediction statuses reported by Replicate.
const (
	StatusStarting   = "starting"
	StatusProcessing = "processing"
	StatusSucceeded  = "succeeded"
	StatusFailed     = "failed"
	StatusCanceled   = "canceled"
)

// Prediction is the subset of the Replicate prediction object the client reads.
type Prediction struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Output json.RawMessage `json:"output"`
	Error  json.RawMessage `json:"error"`
	URLs   struct {
		Get    string `json:"get"`
		Cancel string `json:"cancel"`
	} `json:"urls"`
}

func (p *Prediction) terminal() bool {
	switch p.Status {
	case StatusSucceeded, StatusFailed, StatusCanceled:
		return true
	}
	return false
}

type createPredictionRequest struct {
	Version string         `json:"version,omitempty"`
	Input   map[string]any `json:"input"`
}

type apiError struct {
	Detail string `json:"detail"`
	Title  string `json:"title"`
}

// Config configures the Replicate client.
type Config struct {
	BaseURL      string
	Token        string
	PollInterval time.Duration
}

// Client runs models through the Replicate predictions API. Each Run is a
// single prediction with no retry.
type Client struct {
	httpClient   *resty.Client
	pollInterval time.Duration
	log          zerolog.Logger
}

// NewClient creates a Resty-backed client.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	return &Client{
		httpClient: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json").
			SetHeader("Prefer", "wait").
			SetAuthToken(cfg.Token),
		pollInterval: pollInterval,
		log:          log.With().Str("component", "replicate-client").Logger(),
	}
}

// Run creates a prediction for model and waits for it to finish. model is
// either "owner/name:version" or "owner/name" for official models. The
// returned value is the raw prediction output.
func (c *Client) Run(ctx context.Context, model string, input map[string]any) (any, error) {
	ctx, span := observability.StartProviderSpan(ctx, "replicate", model)
	defer span.End()

	start := time.Now()
	output, err := c.run(ctx, model, input)

	status := StatusSucceeded
	if err != nil {
		status = "error"
		observability.RecordError(span, err)
	}
	metrics.RecordProviderCall(model, status, time.Since(start))
	return output, err
}

func (c *Client) run(ctx context.Context, model string, input map[string]any) (any, error) {
	path, body, err := predictionRequest(model, input)
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeInternal,
			"invalid replicate model identifier", err, "replicate-model-001")
	}

	prediction, err := c.send(ctx, c.httpClient.R().SetBody(body), "POST", path)
	if err != nil {
		return nil, err
	}

	c.log.Debug().
		Str("prediction_id", prediction.ID).
		Str("status", prediction.Status).
		Str("model", model).
		Msg("prediction created")

	if !prediction.terminal() {
		prediction, err = c.wait(ctx, prediction)
		if err != nil {
			return nil, err
		}
	}

	switch prediction.Status {
	case StatusSucceeded:
		return prediction.Output, nil
	case StatusCanceled:
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			fmt.Sprintf("replicate prediction %s was canceled", prediction.ID), nil, "replicate-canceled-001")
	default:
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			fmt.Sprintf("replicate prediction %s failed", prediction.ID), errors.New(predictionError(prediction.Error)), "replicate-failed-001")
	}
}

// wait polls the prediction until it reaches a terminal status or ctx ends.
func (c *Client) wait(ctx context.Context, prediction *Prediction) (*Prediction, error) {
	if prediction.URLs.Get == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			fmt.Sprintf("replicate prediction %s has no status url", prediction.ID), nil, "replicate-poll-001")
	}

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}

		next, err := c.send(ctx, c.httpClient.R(), "GET", prediction.URLs.Get)
		if err != nil {
			return nil, err
		}
		if next.URLs.Get == "" {
			next.URLs = prediction.URLs
		}
		prediction = next
		if prediction.terminal() {
			return prediction, nil
		}
	}
}

func (c *Client) send(ctx context.Context, req *resty.Request, method, url string) (*Prediction, error) {
	var prediction Prediction
	resp, err := req.
		SetContext(ctx).
		SetResult(&prediction).
		SetError(&apiError{}).
		Execute(method, url)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			"replicate request failed", err, "replicate-transport-001")
	}

	if resp.IsError() {
		message := fmt.Sprintf("status %d", resp.StatusCode())
		if apiErr, ok := resp.Error().(*apiError); ok && apiErr.Detail != "" {
			message = fmt.Sprintf("%s: %s", message, apiErr.Detail)
		}
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal,
			"replicate api error", errors.New(message), "replicate-api-001")
	}
	return &prediction, nil
}

// predictionRequest picks the endpoint for a model reference.
func predictionRequest(model string, input map[string]any) (string, createPredictionRequest, error) {
	if input == nil {
		input = map[string]any{}
	}

	name, version, hasVersion := strings.Cut(strings.TrimSpace(model), ":")
	owner, modelName, ok := strings.Cut(name, "/")
	if !ok || owner == "" || modelName == "" || strings.Contains(modelName, "/") {
		return "", createPredictionRequest{}, fmt.Errorf("model %q is not of the form owner/name[:version]", model)
	}

	if hasVersion {
		if version == "" {
			return "", createPredictionRequest{}, fmt.Errorf("model %q has an empty version", model)
		}
		return "/v1/predictions", createPredictionRequest{Version: version, Input: input}, nil
	}
	return fmt.Sprintf("/v1/models/%s/%s/predictions", owner, modelName), createPredictionRequest{Input: input}, nil
}

func predictionError(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return "unknown error"
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// Ensure interface compliance.
var _ execution.Provider = (*Client)(nil)
