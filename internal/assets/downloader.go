// Package assets materializes remote game assets (cover art, marquees,
// screenshots, videos) into the ES-DE downloaded media tree.
package assets

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/mcaralp/esde-steam-manager/internal/catalog"
)

// mediaRelPath is where ES-DE expects scraped media for the steam system.
var mediaRelPath = filepath.Join("ES-DE", "downloaded_media", "steam")

// DownloadError reports a failed asset materialization: network error,
// non-success status, or a disk write error.
type DownloadError struct {
	Kind catalog.AssetKind
	URL  string
	Err  error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("failed to download %s asset from %s: %v", e.Kind, e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// Downloader fetches remote assets over HTTP.
type Downloader struct {
	HTTPClient *http.Client
}

// NewDownloader creates a downloader. The timeout is generous because
// video assets can run to tens of megabytes.
func NewDownloader() *Downloader {
	return &Downloader{
		HTTPClient: &http.Client{
			Timeout: 5 * time.Minute,
		},
	}
}

// Materialize downloads remoteURL into the media directory for kind,
// naming the file after the game's base name with the extension of the
// remote URL's path. It returns the path of the downloaded file. Calling
// it again with the same arguments re-downloads and overwrites; there is
// no content hashing or conditional fetch.
//
// The body is streamed to a temporary file that is renamed into place
// only once the download completed, so a failed transfer never leaves a
// partial asset behind.
func (d *Downloader) Materialize(ctx context.Context, folder string, kind catalog.AssetKind, remoteURL, gamePath string) (string, error) {
	remote, err := url.Parse(remoteURL)
	if err != nil {
		return "", &DownloadError{Kind: kind, URL: remoteURL, Err: err}
	}

	base := filepath.Base(gamePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	destDir := filepath.Join(folder, mediaRelPath, kind.MediaDir())
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", &DownloadError{Kind: kind, URL: remoteURL, Err: err}
	}
	dest := filepath.Join(destDir, base+path.Ext(remote.Path))

	if err := d.fetchToFile(ctx, remoteURL, dest); err != nil {
		return "", &DownloadError{Kind: kind, URL: remoteURL, Err: err}
	}

	slog.Info("Downloaded asset", "kind", kind, "url", remoteURL, "path", dest)
	return dest, nil
}

// fetchToFile streams the resource at rawURL into dest via a temp file.
func (d *Downloader) fetchToFile(ctx context.Context, rawURL, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := d.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch asset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("asset URL returned status %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".part-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to stream asset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to finish asset file: %w", err)
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to move asset into place: %w", err)
	}
	return nil
}
