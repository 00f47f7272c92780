// Package clients wraps the tournament REST API, one typed client per
// resource. Every client decodes the uniform {data, total} envelope, maps
// failures to a normalized APIError and tears the session down when the
// backend answers 401.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/session"
)

const defaultTimeout = 30 * time.Second

// BaseClient carries the pieces shared by every resource client.
type BaseClient struct {
	baseURL string
	http    *http.Client
	session *session.Store
	logger  *slog.Logger

	// onUnauthorized runs once per observed 401, independently of the
	// caller's own error handling. Defaults to clearing the session store.
	onUnauthorized func()
}

func NewBaseClient(baseURL string, sess *session.Store, logger *slog.Logger) *BaseClient {
	c := &BaseClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		session: sess,
		logger:  logger,
	}
	c.onUnauthorized = func() {
		if err := sess.Clear(); err != nil {
			logger.Error("failed to clear session after 401", slog.Any("error", err))
		}
	}
	return c
}

// envelope is the uniform response wrapper of the API. Success bodies carry
// data and an optional total; error bodies carry a message and, for
// validation failures, an array of {msg} entries.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Total   *int            `json:"total"`
	Message string          `json:"message"`
	Errors  []fieldError    `json:"errors"`
}

type fieldError struct {
	Msg string `json:"msg"`
}

// do performs one API call. When authed is true the current bearer token is
// attached as-is; its absence is not checked here, the backend rejects the
// call authoritatively. On success the envelope's data is decoded into out
// (when non-nil) and the total count is returned.
func (c *BaseClient) do(ctx context.Context, method, path string, payload any, authed bool, out any) (int, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.session.Token())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Transport failures carry no distinct retry path, they normalize to
		// a generic error like any other non-validation failure.
		c.logger.Error("api request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err))
		return 0, &APIError{Message: genericErrorMessage}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, &APIError{Status: resp.StatusCode, Message: genericErrorMessage}
	}

	if resp.StatusCode >= 400 {
		return 0, c.normalizeError(method, path, resp.StatusCode, respBody)
	}

	var env envelope
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &env); err != nil {
			return 0, fmt.Errorf("decode response envelope: %w", err)
		}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return 0, fmt.Errorf("decode response data: %w", err)
		}
	}

	total := 0
	if env.Total != nil {
		total = *env.Total
	}
	return total, nil
}

// normalizeError maps an error response to the {status, message, errors}
// shape the screens consume. A 401 additionally triggers session teardown as
// a side channel.
func (c *BaseClient) normalizeError(method, path string, status int, body []byte) *APIError {
	var env envelope
	_ = json.Unmarshal(body, &env)

	apiErr := &APIError{Status: status, Message: env.Message}
	for _, fe := range env.Errors {
		if fe.Msg != "" {
			apiErr.Errors = append(apiErr.Errors, fe.Msg)
		}
	}

	if status == http.StatusBadRequest && len(apiErr.Errors) > 0 {
		apiErr.Message = apiErr.JoinedErrors()
	}
	if apiErr.Message == "" {
		apiErr.Message = genericErrorMessage
	}

	c.logger.Warn("api error response",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.String("message", apiErr.Message))

	if status == http.StatusUnauthorized && c.onUnauthorized != nil {
		c.onUnauthorized()
	}
	return apiErr
}

func (c *BaseClient) get(ctx context.Context, path string, authed bool, out any) (int, error) {
	return c.do(ctx, http.MethodGet, path, nil, authed, out)
}

func (c *BaseClient) post(ctx context.Context, path string, payload, out any) (int, error) {
	return c.do(ctx, http.MethodPost, path, payload, true, out)
}

func (c *BaseClient) put(ctx context.Context, path string, payload, out any) (int, error) {
	return c.do(ctx, http.MethodPut, path, payload, true, out)
}

func (c *BaseClient) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, true, nil)
	return err
}
