// Package api implements the gateway contracts over the storefront
// HTTP/JSON API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/gateway"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const headerRequestID = "X-Request-ID"

// Client satisfies every gateway surface.
var (
	_ gateway.Auth    = (*Client)(nil)
	_ gateway.Cart    = (*Client)(nil)
	_ gateway.Orders  = (*Client)(nil)
	_ gateway.Catalog = (*Client)(nil)
)

// genericErrorMessage is the fallback shown when the server provides
// no message of its own.
const genericErrorMessage = "An error occurred"

// envelope is the uniform response shape of every API endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Client wraps outbound requests: it attaches bearer credentials from
// the token source, tags each request with an X-Request-ID and
// normalizes every failure into either a *gateway.RemoteError (server
// rejected) or an ErrGatewayUnavailable wrap (transport failed).
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  service.TokenSource
	logger  *slog.Logger
}

// NewClient is the constructor for Client.
func NewClient(cfg *config.Config, tokens service.TokenSource, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		httpc:   &http.Client{Timeout: cfg.API.Timeout},
		tokens:  tokens,
		logger:  logger,
	}
}

// do performs one request/response round trip against the API. body is
// JSON-encoded when non-nil; out receives the envelope's data field
// when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return errors.Wrap(err, "build request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerRequestID, uuid.New().String())
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("API request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrGatewayUnavailable, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(domainerrors.ErrGatewayUnavailable, err.Error())
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode >= http.StatusBadRequest || (decodeErr == nil && !env.Success) {
		message := env.Message
		if message == "" {
			message = genericErrorMessage
		}
		c.logger.Warn("API error",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("message", message))

		return &gateway.RemoteError{StatusCode: resp.StatusCode, Message: message}
	}

	if decodeErr != nil {
		return errors.Wrap(decodeErr, "decode response envelope")
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrap(err, "decode response data")
		}
	}

	return nil
}
