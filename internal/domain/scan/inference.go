package scan

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dermacare/dermacare/internal/platform/telemetry"
)

// ErrPredictionFailed is the only error callers see for a failed inference
// call. The status-coded detail is logged, never surfaced.
var ErrPredictionFailed = errors.New("prediction failed")

// Predictor abstracts the inference call for the service and tests.
type Predictor interface {
	Predict(ctx context.Context, filename string, content []byte) (*PredictionResult, error)
}

// InferenceClient submits photos to the remote model endpoint. One attempt
// per call, no retry, no timeout beyond the transport's own; the caller
// decides what to do on failure.
type InferenceClient struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
	metrics *telemetry.Provider
}

// NewInferenceClient builds a client for {baseURL}/predict. metrics may be
// nil.
func NewInferenceClient(baseURL string, client *http.Client, log zerolog.Logger, metrics *telemetry.Provider) *InferenceClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &InferenceClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
		log:     log,
		metrics: metrics,
	}
}

// predictResponse is the wire shape of the model endpoint's answer.
type predictResponse struct {
	Disease         string   `json:"disease"`
	Confidence      float64  `json:"confidence"`
	Description     string   `json:"description"`
	Severity        string   `json:"severity"`
	Recommendations []string `json:"recommendations"`
}

// Predict issues one multipart POST with the photo in the "file" field.
func (c *InferenceClient) Predict(ctx context.Context, filename string, content []byte) (*PredictionResult, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", &body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	start := time.Now()
	resp, err := c.client.Do(req)
	if c.metrics != nil {
		c.metrics.InferenceDuration(time.Since(start))
	}
	if err != nil {
		c.log.Warn().Err(err).Msg("inference request failed")
		return nil, ErrPredictionFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn().Int("status", resp.StatusCode).Msg("inference returned non-success status")
		return nil, ErrPredictionFailed
	}

	var wire predictResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&wire); err != nil {
		c.log.Warn().Err(err).Msg("inference response malformed")
		return nil, ErrPredictionFailed
	}

	return &PredictionResult{
		Disease:         wire.Disease,
		Confidence:      wire.Confidence,
		Description:     wire.Description,
		Severity:        ParseSeverity(wire.Severity),
		Recommendations: wire.Recommendations,
	}, nil
}
