package jellyfin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: Config{
				BaseURL: "http://localhost:8096",
				APIKey:  "test-key",
			},
			wantErr: false,
		},
		{
			name: "missing base URL",
			cfg: Config{
				APIKey: "test-key",
			},
			wantErr: true,
		},
		{
			name: "missing API key",
			cfg: Config{
				BaseURL: "http://localhost:8096",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewClient failed: %v", err)
			}
			if client == nil {
				t.Fatal("expected non-nil client")
			}
		})
	}
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client, err := NewClient(Config{
		BaseURL: "http://localhost:8096/",
		APIKey:  "test-key",
	})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if client.baseURL != "http://localhost:8096" {
		t.Errorf("expected trimmed base URL, got %q", client.baseURL)
	}
}

func TestClient_AuthHeader(t *testing.T) {
	var gotAuth, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	if _, err := client.Users().List(context.Background()); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if gotAuth != `MediaBrowser Token="test-key"` {
		t.Errorf("unexpected Authorization header: %q", gotAuth)
	}
	if gotAccept != "application/json" {
		t.Errorf("unexpected Accept header: %q", gotAccept)
	}
}

func TestClient_APIError(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantStatus int
	}{
		{
			name:       "unauthorized",
			statusCode: http.StatusUnauthorized,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not found with message",
			statusCode: http.StatusNotFound,
			body:       "Item not found",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)
			_, err := client.Users().List(context.Background())
			if err == nil {
				t.Fatal("expected error but got nil")
			}

			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *jellyfin.Error, got %T: %v", err, err)
			}
			if apiErr.StatusCode != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, apiErr.StatusCode)
			}
			if tt.body != "" && !strings.Contains(apiErr.Message, tt.body) {
				t.Errorf("expected message containing %q, got %q", tt.body, apiErr.Message)
			}
		})
	}
}

func TestClient_RetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`[{"Id":"u1","Name":"alice"}]`))
	}))
	defer server.Close()

	// Deadline covers the two backoff sleeps (1s + 2s)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := newTestClient(t, server.URL)
	users, err := client.Users().List(ctx)
	if err != nil {
		t.Fatalf("List failed after retries: %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
	if len(users) != 1 || users[0].Name != "alice" {
		t.Errorf("unexpected users: %+v", users)
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(t, server.URL)
	_, err := client.Users().List(ctx)
	if err == nil {
		t.Fatal("expected error after context cancellation")
	}
}

func TestError_Temporary(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		want       bool
	}{
		{"server error", 500, true},
		{"bad gateway", 502, true},
		{"too many requests", 429, true},
		{"unauthorized", 401, false},
		{"not found", 404, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &Error{StatusCode: tt.statusCode}
			if got := err.Temporary(); got != tt.want {
				t.Errorf("Temporary() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{StatusCode: 401, Message: "bad key"}
	if !errors.Is(err, ErrUnauthorized) {
		t.Error("expected errors.Is to match ErrUnauthorized")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("did not expect errors.Is to match ErrNotFound")
	}
}

// newTestClient creates a client pointed at a test server.
func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := NewClient(Config{
		BaseURL: baseURL,
		APIKey:  "test-key",
	})
	if err != nil {
		t.Fatalf("failed to create test client: %v", err)
	}
	return client
}
