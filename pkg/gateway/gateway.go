// Package gateway provides a client for an OpenAI-compatible LLM gateway.
package gateway

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	forgeerrors "github.com/forgeworks/forge/pkg/errors"
)

// Gateway API configuration.
const (
	modelsPath = "/v1/models"
)

// Model describes a model exposed by the gateway.
type Model struct {
	ID      string `json:"id"`
	OwnedBy string `json:"owned_by"`
}

// modelsResponse is the OpenAI-compatible list envelope.
type modelsResponse struct {
	Data []Model `json:"data"`
}

// apiError is the OpenAI-compatible error envelope.
type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code,omitempty"`
	} `json:"error"`
}

// Client talks to the LLM gateway.
type Client struct {
	baseURL string
	apiKey  string
	logger  *slog.Logger
	client  *http.Client
}

// NewClient creates a gateway client. The base URL may carry a trailing
// slash; it is normalized away.
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		logger:  logger,
		client:  &http.Client{},
	}
}

// IsAvailable checks if the client is configured and ready.
func (c *Client) IsAvailable() bool {
	return c.apiKey != ""
}

// ListModels fetches the models the gateway exposes. The API key is
// validated before any network I/O.
func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	if c.apiKey == "" {
		return nil, forgeerrors.NewConfigError("gateway.api_key",
			"gateway API key is not set")
	}
	if c.baseURL == "" {
		return nil, forgeerrors.NewConfigError("gateway.base_url",
			"gateway base URL is not set")
	}

	url := c.baseURL + modelsPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, forgeerrors.NewGatewayErrorWithCause("ListModels",
			"failed to create request", err)
	}

	c.setHeaders(req)

	c.logDebug("listing models", "url", url)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, forgeerrors.NewGatewayErrorWithCause("ListModels",
			"request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp, "ListModels")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, forgeerrors.NewGatewayErrorWithCause("ListModels",
			"failed to read response", err)
	}

	var envelope modelsResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, forgeerrors.NewGatewayErrorWithCause("ListModels",
			"failed to parse response", err)
	}

	c.logDebug("received models", "count", len(envelope.Data))

	return envelope.Data, nil
}

// setHeaders sets the required headers for gateway requests.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}

// handleErrorResponse parses error responses from the gateway.
func (c *Client) handleErrorResponse(resp *http.Response, operation string) error {
	body, _ := io.ReadAll(resp.Body)

	var envelope apiError
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return forgeerrors.NewGatewayErrorWithStatus(operation,
			resp.StatusCode, envelope.Error.Message)
	}

	return forgeerrors.NewGatewayErrorWithStatus(operation,
		resp.StatusCode, http.StatusText(resp.StatusCode))
}

// logDebug logs a debug message if verbose logging is enabled.
func (c *Client) logDebug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
