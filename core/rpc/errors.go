package rpc

import "fmt"

// NetworkError reports a transport-level failure: connection problems,
// timeouts, or a non-2xx response with no parseable JSON-RPC body.
// StatusCode and Body are zero-valued when the request never reached the
// point of producing a response.
type NetworkError struct {
	Message    string
	StatusCode int
	Body       string
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("network error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("network error: %s", e.Message)
}

// APIError is a well-formed JSON-RPC error envelope returned by the remote
// service. Code and Message come straight off the wire; Data carries any
// additional detail the provider attached, untouched.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}
