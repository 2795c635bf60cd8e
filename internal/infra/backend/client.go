package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"fitbook-storefront/internal/infra"
	"fitbook-storefront/internal/pkg/config"
	"fitbook-storefront/internal/pkg/errs"
	"fitbook-storefront/internal/usecase/shared"
)

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

var (
	_ shared.ServerCartClient = (*Client)(nil)
	_ shared.AuthClient       = (*Client)(nil)
	_ shared.CourseCatalog    = (*Client)(nil)
)

// Client talks to the booking backend REST API. It implements the cart, auth and catalog ports.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.BackendConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

// NewClientWithHTTP is used by tests to point the client at an httptest server.
func NewClientWithHTTP(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

// do sends a JSON request and decodes a 2xx body into out when out is non-nil.
// Non-2xx answers and transport failures come back as infra.BackendError.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "encode backend request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.Wrap(err, "build backend request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("Backend request failed", "method", method, "path", path, "error", err.Error())
		return infra.NewBackendError(infra.KindUnavailable, 0, "", errs.Wrap(err, method+" "+path))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		kind := kindOf(resp.StatusCode)
		message := messageOf(raw)
		c.logger.Info("Backend rejected request",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"kind", string(kind),
		)
		return infra.NewBackendError(kind, resp.StatusCode, message, errs.New(method+" "+path+": "+resp.Status))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return infra.NewBackendError(infra.KindDecode, resp.StatusCode, "", errs.Wrap(err, "decode "+method+" "+path))
	}
	return nil
}

// Only 401 means the token is bad. 403 is a refusal of that one request and falls into rejected.
func kindOf(status int) infra.ErrorKind {
	switch {
	case status == http.StatusUnauthorized:
		return infra.KindUnauthorized
	case status == http.StatusConflict, status == http.StatusUnprocessableEntity:
		return infra.KindConflict
	case status == http.StatusNotFound:
		return infra.KindNotFound
	case status >= 500, status == http.StatusTooManyRequests, status == http.StatusRequestTimeout:
		return infra.KindUnavailable
	default:
		return infra.KindRejected
	}
}

// messageOf extracts the backend's "message" field, which is either a string or a list of validation messages.
func messageOf(raw []byte) string {
	var body struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Message) == 0 {
		return ""
	}

	var single string
	if err := json.Unmarshal(body.Message, &single); err == nil {
		return single
	}
	var many []string
	if err := json.Unmarshal(body.Message, &many); err == nil {
		return strings.Join(many, ", ")
	}
	return ""
}
