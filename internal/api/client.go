package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestIDHeader carries a per-request id so client and server logs line up.
const RequestIDHeader = "X-Request-ID"

// Client wraps HTTP calls to the operators REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new API client.
func NewClient(baseURL string, timeout ...time.Duration) *Client {
	httpTimeout := DefaultTimeout
	if len(timeout) > 0 && timeout[0] > 0 {
		httpTimeout = timeout[0]
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: httpTimeout,
		},
		logger: zerolog.Nop(),
	}
}

// WithLogger sets the logger used for request diagnostics.
func (c *Client) WithLogger(logger zerolog.Logger) *Client {
	c.logger = logger.With().Str("component", "api").Logger()
	return c
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// get executes a GET request and returns the raw response body.
// Transport failures come back as *NetworkError, HTTP >= 400 as *ApplicationError.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	requestID := uuid.NewString()
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &NetworkError{Op: path, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Str("request_id", requestID).Str("path", path).Err(err).Msg("request failed")
		return nil, &NetworkError{Op: path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: path, Err: fmt.Errorf("read response: %w", err)}
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api request")

	if resp.StatusCode >= 400 {
		msg, ok := extractAPIErrorBody(body)
		if !ok {
			msg = strings.TrimSpace(string(body))
		}
		return nil, &ApplicationError{Op: path, StatusCode: resp.StatusCode, Message: msg}
	}
	return body, nil
}

// decodeEnvelope decodes the {success, data, error} envelope and enforces the success flag.
func decodeEnvelope[T any](op string, data []byte) (T, error) {
	var resp apiResponse[T]
	if err := json.Unmarshal(data, &resp); err != nil {
		var zero T
		return zero, &NetworkError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	if !resp.Success {
		msg, ok := parseErrorValue(resp.Error)
		if !ok {
			msg = "request was not successful"
		}
		var zero T
		return zero, &ApplicationError{Op: op, StatusCode: http.StatusOK, Message: msg}
	}
	return resp.Data, nil
}

// decodeOne decodes a single-item API response.
func decodeOne[T any](op string, data []byte) (*T, error) {
	item, err := decodeEnvelope[T](op, data)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// decodeList decodes a list API response.
func decodeList[T any](op string, data []byte) ([]T, error) {
	items, err := decodeEnvelope[[]T](op, data)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// buildQuery appends query params to a path.
func buildQuery(path string, params QueryParams) string {
	if len(params) == 0 {
		return path
	}
	q := url.Values{}
	for k, v := range params {
		if v != "" {
			q.Set(k, v)
		}
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func extractAPIErrorBody(body []byte) (string, bool) {
	if len(body) == 0 {
		return "", false
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", false
	}

	if msg, ok := parseErrorValue(payload["error"]); ok {
		return msg, true
	}
	if msg, ok := parseErrorValue(payload["detail"]); ok {
		return msg, true
	}
	return "", false
}

func parseErrorValue(raw any) (string, bool) {
	switch value := raw.(type) {
	case string:
		msg := strings.TrimSpace(value)
		if msg == "" {
			return "", false
		}
		return msg, true
	case map[string]any:
		if nested, ok := parseErrorValue(value["error"]); ok {
			return nested, true
		}
		code, _ := value["code"].(string)
		message, _ := value["message"].(string)
		return formatAPIError(code, message)
	}
	return "", false
}

func formatAPIError(code, message string) (string, bool) {
	code = strings.TrimSpace(code)
	message = strings.TrimSpace(message)
	switch {
	case code != "" && message != "":
		return fmt.Sprintf("%s: %s", code, message), true
	case code != "":
		return code, true
	case message != "":
		return message, true
	default:
		return "", false
	}
}
