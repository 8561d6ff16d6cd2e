package assets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mcaralp/esde-steam-manager/internal/catalog"
)

func TestMaterializeWritesAsset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("png-bytes")); err != nil {
			t.Error(err)
		}
	}))
	defer server.Close()

	folder := t.TempDir()
	d := NewDownloader()

	local, err := d.Materialize(context.Background(), folder, catalog.AssetMarquee, server.URL+"/apps/620/logo_2x.png?t=123", "./Portal 2.bat")
	if err != nil {
		t.Fatalf("Materialize failed: %v", err)
	}

	want := filepath.Join(folder, "ES-DE", "downloaded_media", "steam", "marquees", "Portal 2.png")
	if local != want {
		t.Errorf("Expected path %q, got %q", want, local)
	}
	data, err := os.ReadFile(local)
	if err != nil {
		t.Fatalf("Expected asset file: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("Unexpected content %q", data)
	}
}

func TestMaterializeOverwrites(t *testing.T) {
	content := "first"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(content)); err != nil {
			t.Error(err)
		}
	}))
	defer server.Close()

	folder := t.TempDir()
	d := NewDownloader()
	ctx := context.Background()

	if _, err := d.Materialize(ctx, folder, catalog.AssetCover, server.URL+"/a.jpg", "./game.bat"); err != nil {
		t.Fatal(err)
	}
	content = "second"
	local, err := d.Materialize(ctx, folder, catalog.AssetCover, server.URL+"/a.jpg", "./game.bat")
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(local)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("Expected overwrite, got %q", data)
	}
}

func TestMaterializeNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	d := NewDownloader()
	_, err := d.Materialize(context.Background(), t.TempDir(), catalog.AssetVideo, server.URL+"/movie.mp4", "./game.bat")
	if err == nil {
		t.Fatal("Expected error for 404 response")
	}

	var dlErr *DownloadError
	if !errors.As(err, &dlErr) {
		t.Fatalf("Expected *DownloadError, got %T", err)
	}
	if dlErr.Kind != catalog.AssetVideo {
		t.Errorf("Expected video kind in error, got %s", dlErr.Kind)
	}
	if !strings.Contains(dlErr.URL, "/movie.mp4") {
		t.Errorf("Expected URL in error, got %s", dlErr.URL)
	}
}

func TestMaterializeConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	d := NewDownloader()
	_, err := d.Materialize(context.Background(), t.TempDir(), catalog.AssetCover, server.URL+"/a.jpg", "./game.bat")

	var dlErr *DownloadError
	if !errors.As(err, &dlErr) {
		t.Fatalf("Expected *DownloadError, got %v", err)
	}
}

func TestMaterializeCleansUpPartialFile(t *testing.T) {
	// Announce more bytes than are sent so the client sees a truncated
	// body mid-stream.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "1048576")
		if _, err := w.Write([]byte("truncated")); err != nil {
			t.Error(err)
		}
	}))
	defer server.Close()

	folder := t.TempDir()
	d := NewDownloader()
	_, err := d.Materialize(context.Background(), folder, catalog.AssetVideo, server.URL+"/movie.mp4", "./game.bat")
	if err == nil {
		t.Fatal("Expected error for truncated body")
	}

	videosDir := filepath.Join(folder, "ES-DE", "downloaded_media", "steam", "videos")
	files, readErr := os.ReadDir(videosDir)
	if readErr != nil {
		t.Fatalf("Expected media dir to exist: %v", readErr)
	}
	if len(files) != 0 {
		t.Errorf("Expected no leftover files after failed download, got %v", files)
	}
}
