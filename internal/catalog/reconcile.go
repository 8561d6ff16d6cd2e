package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var romsRelPath = filepath.Join("ROMs", "steam")

// Game files are shortcut/launcher stubs; anything else in the ROMs
// directory (artwork, notes) is ignored.
var gameFileExts = map[string]bool{
	".bat": true,
	".lnk": true,
	".url": true,
}

// List enumerates the game files under folder and joins each with its
// info and metadata records, defaulting records the stores do not have
// yet. Entry order follows directory enumeration order.
func List(folder string) ([]Entry, error) {
	romsDir := filepath.Join(folder, romsRelPath)
	files, err := os.ReadDir(romsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list game files in %s: %w", romsDir, err)
	}

	infos := LoadInfos(folder)
	metadata := LoadMetadata(folder)

	var entries []Entry
	for _, file := range files {
		if file.IsDir() || !gameFileExts[strings.ToLower(filepath.Ext(file.Name()))] {
			continue
		}
		gamePath := "./" + file.Name()
		entries = append(entries, Entry{
			Infos:    LookupInfo(infos, gamePath),
			Metadata: LookupMetadata(metadata, gamePath),
		})
	}

	slog.Debug("Listed catalog", "folder", folder, "entries", len(entries))
	return entries, nil
}

// Commit projects entries into their info and metadata records and saves
// both stores. The two saves are independent: both are attempted and
// every failure is reported, but there is no cross-store atomicity — on a
// partial failure one file may hold the new state while the other keeps
// the old one.
func Commit(ctx context.Context, folder string, entries []Entry, m Materializer) error {
	infos := make([]GameInfo, len(entries))
	metadata := make([]SteamMetadata, len(entries))
	for i, e := range entries {
		infos[i] = e.Infos
		metadata[i] = e.Metadata
	}

	return errors.Join(
		SaveInfos(folder, infos),
		SaveMetadata(ctx, folder, metadata, m),
	)
}
