// Package client is the typed boundary to the external schedule
// generation/validation service. The service's algorithm is opaque; this
// package only owns the request/response contract, the fixed timeout, and
// the classification of failures.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/multiparadigm/schedview/pkg/model"
)

const (
	DefaultBaseURL = "http://localhost:8080"

	// Timeout bounds every call. Exceeding it is reported as a distinct
	// timeout error, not a generic failure.
	Timeout = 10 * time.Second
)

type Client struct {
	baseURL string
	httpc   *http.Client
	log     *zap.Logger
	timeout time.Duration
}

// New returns a client for the service at baseURL. A nil logger disables
// logging.
func New(baseURL string, log *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		log:     log,
		timeout: Timeout,
	}
}

// Generate asks the service to produce a schedule for the problem.
func (c *Client) Generate(ctx context.Context, problem model.SchedulingProblem) (model.Schedule, error) {
	if err := requestError(model.ValidateProblem(problem)); err != nil {
		return model.Schedule{}, err
	}
	return post(c, ctx, "/api/schedule/generate", problem, model.DecodeSchedule)
}

// Validate asks the service to check a schedule against a problem.
func (c *Client) Validate(ctx context.Context, problem model.SchedulingProblem, schedule model.Schedule) (model.ValidationResult, error) {
	if err := requestError(append(model.ValidateProblem(problem), model.ValidateSchedule(schedule)...)); err != nil {
		return model.ValidationResult{}, err
	}
	body := model.ValidateRequest{Problem: problem, Schedule: schedule}
	return post(c, ctx, "/api/schedule/validate", body, model.DecodeValidationResult)
}

// GenerateAndValidate combines both operations in a single round trip.
func (c *Client) GenerateAndValidate(ctx context.Context, problem model.SchedulingProblem) (model.GenerateAndValidateResult, error) {
	if err := requestError(model.ValidateProblem(problem)); err != nil {
		return model.GenerateAndValidateResult{}, err
	}
	return post(c, ctx, "/api/schedule/generate-and-validate", problem, model.DecodeGenerateAndValidate)
}

// requestError turns local structural errors into the fail-fast client-side
// category. Such a request never reaches the network.
func requestError(errs []model.FieldError) error {
	if len(errs) == 0 {
		return nil
	}
	details := lo.Map(errs, func(err model.FieldError, _ int) string { return err.Error() })
	return &APIError{
		Status:  StatusBadRequest,
		Message: "Invalid request data",
		Details: strings.Join(details, "; "),
	}
}

func post[T any](c *Client, ctx context.Context, path string, body any, decode func([]byte) (T, error)) (T, error) {
	var zero T

	payload, err := json.Marshal(body)
	if err != nil {
		return zero, &APIError{Status: StatusBadRequest, Message: "Invalid request data", Details: err.Error()}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := c.baseURL + path
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return zero, &APIError{Status: StatusNetwork, Message: "Network error", Details: err.Error()}
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	c.log.Debug("calling scheduling service", zap.String("url", url))

	response, err := c.httpc.Do(request)
	if err != nil {
		apiErr := transportError(ctx, c.timeout, err)
		c.log.Warn("scheduling service call failed", zap.String("url", url), zap.Error(apiErr))
		return zero, apiErr
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		apiErr := transportError(ctx, c.timeout, err)
		c.log.Warn("scheduling service call failed", zap.String("url", url), zap.Error(apiErr))
		return zero, apiErr
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		apiErr := statusError(response.StatusCode, raw)
		c.log.Warn("scheduling service returned error",
			zap.String("url", url), zap.Int("status", response.StatusCode))
		return zero, apiErr
	}

	result, err := decode(raw)
	if err != nil {
		return zero, &APIError{
			Status:  StatusSchema,
			Message: "Invalid response format from server",
			Details: err.Error(),
		}
	}
	return result, nil
}

// transportError tells a timed-out call apart from a connectivity failure.
func transportError(ctx context.Context, timeout time.Duration, err error) *APIError {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &APIError{
			Status:  StatusTimeout,
			Message: "Request timed out",
			Details: fmt.Sprintf("Request exceeded %v second timeout", int(timeout.Seconds())),
		}
	}
	return &APIError{Status: StatusNetwork, Message: "Network error", Details: err.Error()}
}

// statusError builds the error for a non-2xx response. The message comes
// from the body when it is JSON carrying a "message" field; the raw body is
// kept as detail either way.
func statusError(status int, body []byte) *APIError {
	message := fmt.Sprintf("HTTP %d: %v", status, http.StatusText(status))
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		message = parsed.Message
	}
	return &APIError{Status: status, Message: message, Details: string(body)}
}
