package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/mozscape/mozgo/core/auth"
)

func newTestClient(serverURL string) *Client {
	return NewClient(auth.NewResolver("test-token"), WithEndpoint(serverURL))
}

func TestCall_ResultPassthrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.Method != http.MethodPost {
			t.Errorf("expected POST request, got %s", request.Method)
		}
		if request.Header.Get("x-moz-token") != "test-token" {
			t.Errorf("expected x-moz-token header, got %q", request.Header.Get("x-moz-token"))
		}
		if request.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected Content-Type application/json, got %s", request.Header.Get("Content-Type"))
		}

		var envelope map[string]any
		if err := json.NewDecoder(request.Body).Decode(&envelope); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if envelope["jsonrpc"] != "2.0" {
			t.Errorf("expected jsonrpc 2.0, got %v", envelope["jsonrpc"])
		}
		if envelope["method"] != "data.site.metrics.fetch" {
			t.Errorf("expected method data.site.metrics.fetch, got %v", envelope["method"])
		}
		if envelope["id"] == "" || envelope["id"] == nil {
			t.Error("expected non-empty request id")
		}

		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(`{"jsonrpc":"2.0","id":"1","result":{"a":1}}`))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).Call(context.Background(), "data.site.metrics.fetch", map[string]any{"data": map[string]any{}})
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}

	resultMap, isMap := result.(map[string]any)
	if !isMap {
		t.Fatalf("expected map result, got %T", result)
	}
	if resultMap["a"] != 1.0 {
		t.Errorf("expected result {a:1} untouched, got %v", resultMap)
	}
}

func TestCall_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(`{"jsonrpc":"2.0","id":"1","error":{"code":7,"message":"bad"}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Call(context.Background(), "quota.lookup", nil)
	if err == nil {
		t.Fatal("expected error from error envelope")
	}

	var apiError *APIError
	if !errors.As(err, &apiError) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiError.Code != 7 || apiError.Message != "bad" {
		t.Errorf("expected code=7 message=bad, got %+v", apiError)
	}
}

func TestCall_APIErrorWithNon2xxStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusTooManyRequests)
		writer.Write([]byte(`{"jsonrpc":"2.0","id":"1","error":{"code":-32000,"message":"quota exceeded","data":{"remaining":0}}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Call(context.Background(), "quota.lookup", nil)

	var apiError *APIError
	if !errors.As(err, &apiError) {
		t.Fatalf("expected *APIError for parseable error body, got %T: %v", err, err)
	}
	if apiError.Code != -32000 {
		t.Errorf("expected code -32000, got %d", apiError.Code)
	}
	if apiError.Data == nil {
		t.Error("expected error data to be carried")
	}
}

func TestCall_NetworkErrorOnUnparseableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusBadGateway)
		writer.Write([]byte(`<html>upstream down</html>`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Call(context.Background(), "quota.lookup", nil)

	var networkError *NetworkError
	if !errors.As(err, &networkError) {
		t.Fatalf("expected *NetworkError, got %T: %v", err, err)
	}
	if networkError.StatusCode != http.StatusBadGateway {
		t.Errorf("expected status 502, got %d", networkError.StatusCode)
	}
	if networkError.Body == "" {
		t.Error("expected raw body to be carried")
	}
}

func TestCall_NetworkErrorOnConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // connection refused from here on

	_, err := newTestClient(server.URL).Call(context.Background(), "quota.lookup", nil)

	var networkError *NetworkError
	if !errors.As(err, &networkError) {
		t.Fatalf("expected *NetworkError, got %T: %v", err, err)
	}
	if networkError.StatusCode != 0 {
		t.Errorf("expected no status code, got %d", networkError.StatusCode)
	}
}

func TestCall_UniqueRequestIDs(t *testing.T) {
	var mu sync.Mutex
	seenIDs := make(map[string]bool)

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		var envelope map[string]any
		if err := json.NewDecoder(request.Body).Decode(&envelope); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		id, _ := envelope["id"].(string)

		mu.Lock()
		if seenIDs[id] {
			t.Errorf("request id %q was reused", id)
		}
		seenIDs[id] = true
		mu.Unlock()

		writer.Write([]byte(`{"jsonrpc":"2.0","id":"x","result":{}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	for i := 0; i < 25; i++ {
		if _, err := client.Call(context.Background(), "quota.lookup", nil); err != nil {
			t.Fatalf("Call failed: %v", err)
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if len(seenIDs) != 25 {
		t.Errorf("expected 25 distinct ids, got %d", len(seenIDs))
	}
}

func TestCall_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.Write([]byte(`{"jsonrpc":"2.0","id":"1"}`))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).Call(context.Background(), "quota.lookup", nil)
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if result != nil {
		t.Errorf("expected nil result for empty envelope, got %v", result)
	}
}
