package jellyfin

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestImageService_Primary(t *testing.T) {
	imageData := []byte{0xFF, 0xD8, 0xFF, 0xE0} // JPEG magic bytes

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Items/item-1/Images/Primary" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Accept") != "image/*" {
			t.Errorf("expected Accept image/*, got %q", r.Header.Get("Accept"))
		}
		_, _ = w.Write(imageData)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	var buf bytes.Buffer
	if err := client.Images().Primary(context.Background(), "item-1", &buf); err != nil {
		t.Fatalf("Primary failed: %v", err)
	}

	if !bytes.Equal(buf.Bytes(), imageData) {
		t.Errorf("downloaded image does not match: %v", buf.Bytes())
	}
}

func TestImageService_Primary_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	var buf bytes.Buffer
	err := client.Images().Primary(context.Background(), "missing", &buf)
	if err == nil {
		t.Fatal("expected error but got nil")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *jellyfin.Error, got %T", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", apiErr.StatusCode)
	}
}
