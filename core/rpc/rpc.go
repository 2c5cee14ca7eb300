package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/mozscape/mozgo/core/auth"
	"github.com/mozscape/mozgo/internal/utils"
)

const (
	// DefaultEndpoint is the fixed JSON-RPC endpoint of the Moz API.
	DefaultEndpoint = "https://api.moz.com/jsonrpc"

	jsonRPCVersion = "2.0"
)

// request is the JSON-RPC 2.0 request envelope.
type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

// response is the JSON-RPC 2.0 response envelope. Exactly one of Result
// and Error is populated by a well-behaved server.
type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      string          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *APIError       `json:"error,omitempty"`
}

// Client issues JSON-RPC calls against one fixed endpoint. It holds only
// immutable per-instance configuration; every call builds a fresh request
// envelope with a globally unique id.
//
// The remote result is returned as an opaque decoded value: the provider's
// schema is externally owned, so the client performs no shape validation
// and no coercion beyond JSON decoding.
type Client struct {
	endpoint   string
	resolver   *auth.Resolver
	httpClient *http.Client
}

// Option configures a Client created via [NewClient].
type Option func(*Client)

// WithEndpoint overrides the default JSON-RPC endpoint. Used primarily by
// tests to point the client at a local mock server.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient overrides the underlying *http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a JSON-RPC client authenticating with the given resolver.
func NewClient(resolver *auth.Resolver, options ...Option) *Client {
	client := &Client{
		endpoint:   DefaultEndpoint,
		resolver:   resolver,
		httpClient: http.DefaultClient,
	}
	for _, option := range options {
		option(client)
	}
	return client
}

// Call sends one JSON-RPC request and unwraps the response.
//
// Failure modes:
//   - transport failure or non-2xx status with no parseable envelope:
//     *[NetworkError]
//   - parsed envelope carrying an error member: *[APIError]
//
// Otherwise the decoded result value is returned untouched. No retries,
// no backoff.
func (c *Client) Call(ctx context.Context, method string, params any) (any, error) {
	envelope := request{
		JSONRPC: jsonRPCVersion,
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	}

	jsonBody, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request for %s: %w", method, err)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("error creating request for %s: %w", method, err)
	}

	httpRequest.Header.Set("Content-Type", "application/json")
	httpRequest.Header.Set("Accept", "application/json")
	for name, value := range c.resolver.Headers() {
		httpRequest.Header.Set(name, value)
	}

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		slog.Error("remote call transport failure", "method", method, "error", err.Error())
		return nil, &NetworkError{Message: err.Error()}
	}
	defer utils.CloseWithLog(httpResponse.Body)

	body, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		slog.Error("remote call body read failure", "method", method, "error", err.Error())
		return nil, &NetworkError{Message: fmt.Sprintf("error reading response body: %s", err), StatusCode: httpResponse.StatusCode}
	}

	var parsed response
	parseErr := json.Unmarshal(body, &parsed)

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode >= 300 {
		// A non-2xx status can still carry a well-formed error envelope.
		if parseErr == nil && parsed.Error != nil {
			slog.Warn("remote call returned API error", "method", method, "code", parsed.Error.Code, "message", parsed.Error.Message)
			return nil, parsed.Error
		}
		slog.Error("remote call failed", "method", method, "status", httpResponse.StatusCode, "body", utils.TruncateString(string(body), 200))
		return nil, &NetworkError{
			Message:    fmt.Sprintf("unexpected status for %s", method),
			StatusCode: httpResponse.StatusCode,
			Body:       string(body),
		}
	}

	if parseErr != nil {
		slog.Error("remote call returned unparseable body", "method", method, "error", parseErr.Error())
		return nil, &NetworkError{
			Message:    fmt.Sprintf("error parsing response for %s: %s", method, parseErr),
			StatusCode: httpResponse.StatusCode,
			Body:       string(body),
		}
	}

	if parsed.Error != nil {
		slog.Warn("remote call returned API error", "method", method, "code", parsed.Error.Code, "message", parsed.Error.Message)
		return nil, parsed.Error
	}

	var result any
	if len(parsed.Result) > 0 {
		if err := json.Unmarshal(parsed.Result, &result); err != nil {
			return nil, &NetworkError{
				Message:    fmt.Sprintf("error decoding result for %s: %s", method, err),
				StatusCode: httpResponse.StatusCode,
				Body:       string(body),
			}
		}
	}

	return result, nil
}
