package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// fakeImages is an ImageFetcher writing fixed bytes, or failing.
type fakeImages struct {
	data []byte
	err  error
}

func (f *fakeImages) Primary(ctx context.Context, itemID string, w io.Writer) error {
	if f.err != nil {
		return f.err
	}
	_, err := w.Write(f.data)
	return err
}

func TestHTMLRenderer_Render(t *testing.T) {
	dir := t.TempDir()
	r := &HTMLRenderer{
		OutputDir: dir,
		Images:    &fakeImages{data: []byte("jpeg-bytes")},
		Logger:    zerolog.Nop(),
	}

	if err := r.Render(context.Background(), testReports()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	card, err := os.ReadFile(filepath.Join(dir, "alice_wrapped.html"))
	if err != nil {
		t.Fatalf("failed to read card: %v", err)
	}

	out := string(card)
	for _, want := range []string{
		"Jellyfin Wrapped",
		"1. The Beatles",
		"1. Yesterday",
		"2. Let It Be",
		"3. Brian Eno",
		"Minutes Listened: 58",
		`src="./assets/i1"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("card missing %q:\n%s", want, out)
		}
	}

	cover, err := os.ReadFile(filepath.Join(dir, "assets", "i1"))
	if err != nil {
		t.Fatalf("failed to read cover: %v", err)
	}
	if string(cover) != "jpeg-bytes" {
		t.Errorf("unexpected cover contents: %q", cover)
	}

	// Zero-play user still gets a card, without an image
	bobCard, err := os.ReadFile(filepath.Join(dir, "bob_wrapped.html"))
	if err != nil {
		t.Fatalf("failed to read bob's card: %v", err)
	}
	if strings.Contains(string(bobCard), "main_image") {
		t.Error("expected no image in zero-play card")
	}
}

func TestHTMLRenderer_Render_ImageFailure(t *testing.T) {
	dir := t.TempDir()
	r := &HTMLRenderer{
		OutputDir: dir,
		Images:    &fakeImages{err: fmt.Errorf("no image")},
		Logger:    zerolog.Nop(),
	}

	// Cover art is decoration: the render still succeeds
	if err := r.Render(context.Background(), testReports()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	card, err := os.ReadFile(filepath.Join(dir, "alice_wrapped.html"))
	if err != nil {
		t.Fatalf("failed to read card: %v", err)
	}
	if strings.Contains(string(card), "main_image") {
		t.Error("expected card without image after download failure")
	}

	if _, err := os.Stat(filepath.Join(dir, "assets", "i1")); !os.IsNotExist(err) {
		t.Error("expected partial cover file to be removed")
	}
}

func TestHTMLRenderer_Render_NoFetcher(t *testing.T) {
	dir := t.TempDir()
	r := &HTMLRenderer{OutputDir: dir, Logger: zerolog.Nop()}

	if err := r.Render(context.Background(), testReports()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"alice", "alice"},
		{"a/b", "a_b"},
		{"..", "_"},
		{"", "user"},
	}

	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
