package github

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	apierrors "github.com/amotarao/my-github-mcp-server/internal/errors"
	"github.com/amotarao/my-github-mcp-server/metrics"
	dto "github.com/prometheus/client_model/go"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...ClientOption) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	cfg := &Config{BaseURL: server.URL}
	allOpts := append([]ClientOption{WithLogger(logger)}, opts...)
	return NewClient(cfg, allOpts...)
}

func TestRequestHeaders(t *testing.T) {
	var gotAccept, gotUA, gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotUA = r.Header.Get("User-Agent")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}, WithToken("ghp_fallback"))

	var out struct{}
	if err := client.get(context.Background(), "test", "/test", &out); err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if gotAccept != "application/vnd.github.v3+json" {
		t.Errorf("Accept = %q, want application/vnd.github.v3+json", gotAccept)
	}
	if gotUA != DefaultUserAgent {
		t.Errorf("User-Agent = %q, want %q", gotUA, DefaultUserAgent)
	}
	if gotAuth != "token ghp_fallback" {
		t.Errorf("Authorization = %q, want 'token ghp_fallback'", gotAuth)
	}
}

func TestRequestTokenOverridesFallback(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}, WithToken("ghp_fallback"))

	ctx := WithRequestToken(context.Background(), "ghp_request")
	var out struct{}
	if err := client.get(ctx, "test", "/test", &out); err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if gotAuth != "token ghp_request" {
		t.Errorf("Authorization = %q, want request-scoped token to win", gotAuth)
	}
}

func TestEmptyRequestTokenFallsBack(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}, WithToken("ghp_fallback"))

	ctx := WithRequestToken(context.Background(), "")
	var out struct{}
	if err := client.get(ctx, "test", "/test", &out); err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if gotAuth != "token ghp_fallback" {
		t.Errorf("Authorization = %q, want fallback token", gotAuth)
	}
}

func TestNoTokenOmitsAuthorization(t *testing.T) {
	var gotAuth string
	sawHeader := true
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, sawHeader = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	})

	var out struct{}
	if err := client.get(context.Background(), "test", "/test", &out); err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if sawHeader || gotAuth != "" {
		t.Errorf("Authorization header should be absent, got %q", gotAuth)
	}
}

func TestCustomUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	cfg := &Config{BaseURL: server.URL, UserAgent: "custom-agent/2.0"}
	client := NewClient(cfg)

	var out struct{}
	if err := client.get(context.Background(), "test", "/test", &out); err != nil {
		t.Fatalf("get failed: %v", err)
	}

	if gotUA != "custom-agent/2.0" {
		t.Errorf("User-Agent = %q, want custom-agent/2.0", gotUA)
	}
}

func TestNotFoundClassification(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Not Found"}`))
	})

	var out struct{}
	err := client.get(context.Background(), "test", "/missing", &out)
	if !apierrors.IsNotFound(err) {
		t.Errorf("Expected NotFoundError, got %v", err)
	}
}

func TestHTTPErrorPreservesStatusAndBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"Validation Failed"}`))
	})

	var out struct{}
	err := client.get(context.Background(), "test", "/bad", &out)

	var httpErr *apierrors.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("Expected HTTPError, got %v", err)
	}
	if httpErr.StatusCode != 422 {
		t.Errorf("StatusCode = %d, want 422", httpErr.StatusCode)
	}
	if httpErr.Body != `{"message":"Validation Failed"}` {
		t.Errorf("Body not preserved verbatim: %q", httpErr.Body)
	}
}

func TestTransportErrorIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	cfg := &Config{BaseURL: server.URL}
	client := NewClient(cfg)
	server.Close() // force a connection failure

	var out struct{}
	err := client.get(context.Background(), "test", "/test", &out)
	if !apierrors.IsNetwork(err) {
		t.Errorf("Expected NetworkError, got %v", err)
	}
}

func TestMalformedPayloadIsNetworkError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})

	var out struct{}
	err := client.get(context.Background(), "test", "/test", &out)
	if !apierrors.IsNetwork(err) {
		t.Errorf("Expected NetworkError for malformed 2xx payload, got %v", err)
	}
}

func TestRateLimitGauge(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "1234")
		w.Write([]byte(`{}`))
	})

	var out struct{}
	if err := client.get(context.Background(), "test", "/test", &out); err != nil {
		t.Fatalf("get failed: %v", err)
	}

	var m dto.Metric
	if err := metrics.RateLimitRemaining.Write(&m); err != nil {
		t.Fatalf("failed to read gauge: %v", err)
	}
	if m.Gauge.GetValue() != 1234 {
		t.Errorf("rate limit gauge = %v, want 1234", m.Gauge.GetValue())
	}
}
