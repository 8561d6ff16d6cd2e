// Package service exposes the catalog manager's operation surface to the
// CLI and API layers. One mutex serializes every operation so that no
// two reconciliation or store-write passes can race on the same folder's
// XML files.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mcaralp/esde-steam-manager/internal/assets"
	"github.com/mcaralp/esde-steam-manager/internal/catalog"
	"github.com/mcaralp/esde-steam-manager/internal/folders"
	"github.com/mcaralp/esde-steam-manager/internal/steam"
)

// Service wires the folder registry, the storefront client, and the
// asset downloader behind a single mutual-exclusion gate.
type Service struct {
	mu         sync.Mutex
	folders    *folders.Store
	steam      *steam.Client
	downloader *assets.Downloader
}

// New builds the service and its collaborators.
func New() (*Service, error) {
	store, err := folders.NewStore()
	if err != nil {
		return nil, err
	}
	return &Service{
		folders:    store,
		steam:      steam.NewClient(),
		downloader: assets.NewDownloader(),
	}, nil
}

// ListFolders returns the configured ES-DE folders.
func (s *Service) ListFolders() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.folders.Folders()
}

// AddFolder registers an ES-DE folder and returns its absolute path.
func (s *Service) AddFolder(folder string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.folders.Add(folder)
}

// ListCatalog returns the catalog entries of one folder.
func (s *Service) ListCatalog(folder string) ([]catalog.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return catalog.List(folder)
}

// CommitCatalog persists entries into both stores, downloading any
// changed assets first.
func (s *Service) CommitCatalog(ctx context.Context, folder string, entries []catalog.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return catalog.Commit(ctx, folder, entries, s.downloader)
}

// SearchRemote searches the storefront by game name.
func (s *Service) SearchRemote(ctx context.Context, name string) ([]steam.SearchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.steam.Search(ctx, name)
}

// RemoteDetails fetches store details and the best-effort review summary
// of an app.
func (s *Service) RemoteDetails(ctx context.Context, appID int, locale string) (*steam.AppDetails, *steam.ReviewSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remoteDetails(ctx, appID, locale)
}

func (s *Service) remoteDetails(ctx context.Context, appID int, locale string) (*steam.AppDetails, *steam.ReviewSummary, error) {
	details, err := s.steam.AppDetails(ctx, appID, locale)
	if err != nil {
		return nil, nil, err
	}
	reviews, err := s.steam.AppReviews(ctx, appID)
	if err != nil {
		// The review summary is best-effort.
		slog.Warn("Unable to fetch review summary", "app_id", appID, "err", err)
		reviews = &steam.ReviewSummary{}
	}
	return details, reviews, nil
}

// Sync reconciles every catalog entry of folder against the storefront:
// search by display name, fetch details and reviews for the best match,
// fill both records, and commit. Games the store does not know are
// logged and skipped. It returns the number of entries synced.
func (s *Service) Sync(ctx context.Context, folder string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := catalog.List(folder)
	if err != nil {
		return 0, err
	}

	var synced []catalog.Entry
	for _, entry := range entries {
		name := entry.Infos.Name
		if name == "" {
			base := filepath.Base(entry.Infos.Path)
			name = strings.TrimSuffix(base, filepath.Ext(base))
		}

		results, err := s.steam.Search(ctx, name)
		if err != nil {
			if errors.Is(err, steam.ErrNoResults) {
				slog.Warn("No store results for game, skipping", "path", entry.Infos.Path, "name", name)
				continue
			}
			return 0, fmt.Errorf("failed to search store for %s: %w", name, err)
		}

		details, reviews, err := s.remoteDetails(ctx, results[0].AppID, "")
		if err != nil {
			if errors.Is(err, steam.ErrUnknownApp) {
				slog.Warn("Store rejected app id, skipping", "path", entry.Infos.Path, "app_id", results[0].AppID)
				continue
			}
			return 0, err
		}

		synced = append(synced, catalog.Entry{
			Infos:    details.GameInfo(entry.Infos.Path, reviews),
			Metadata: details.Metadata(entry.Metadata.Path),
		})
		slog.Info("Matched game", "path", entry.Infos.Path, "app_id", details.AppID, "name", details.Name)
	}

	if len(synced) == 0 {
		return 0, nil
	}
	if err := catalog.Commit(ctx, folder, synced, s.downloader); err != nil {
		return 0, err
	}
	return len(synced), nil
}
