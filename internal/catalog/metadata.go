package catalog

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/mcaralp/esde-steam-manager/internal/xmldoc"
)

var steamidsRelPath = filepath.Join("ES-DE", "gamelists", "steam", "steamids.xml")

// Materializer downloads one remote asset and returns the local path the
// asset field should point to afterwards.
type Materializer interface {
	Materialize(ctx context.Context, folder string, kind AssetKind, remoteURL, gamePath string) (string, error)
}

// LoadMetadata reads every record of the steam metadata store under
// folder. Any read or parse failure degrades to an empty store.
func LoadMetadata(folder string) []SteamMetadata {
	doc := xmldoc.Load(filepath.Join(folder, steamidsRelPath))

	nodes := xmldoc.ChildList(doc, "gameList", "game")
	records := make([]SteamMetadata, 0, len(nodes))
	for _, node := range nodes {
		records = append(records, metadataFromNode(node))
	}
	return records
}

// SaveMetadata upserts records into the steam metadata store and rewrites
// it. Before a record is committed, every asset field whose merged value
// differs from the stored one is materialized through m and rewritten to
// the downloaded file's path; a record with no stored counterpart has all
// its asset fields materialized. A materialization failure aborts the
// whole save before the file is touched, so a persisted asset reference
// always reflects a completed download.
func SaveMetadata(ctx context.Context, folder string, records []SteamMetadata, m Materializer) error {
	file := filepath.Join(folder, steamidsRelPath)
	doc, nodes := loadGameNodes(file)

	for _, rec := range records {
		node := findByPath(nodes, rec.Path)

		var existing SteamMetadata
		if node == nil {
			existing = defaultSteamMetadata(rec.Path)
			node = xmldoc.Document{}
			nodes = append(nodes, node)
		} else {
			existing = metadataFromNode(node)
		}

		merged := mergeMetadata(existing, rec)
		if err := materializeChanged(ctx, folder, &merged, existing, m); err != nil {
			return err
		}
		merged.applyToNode(node)
	}

	setGameNodes(doc, nodes)
	if err := xmldoc.Save(file, doc); err != nil {
		return fmt.Errorf("failed to save steam metadata store: %w", err)
	}
	return nil
}

// materializeChanged downloads every asset field of merged whose value
// changed relative to existing, replacing the field with the local path.
// Unchanged fields are skipped entirely, as are values that are not
// remote URLs (those are local references from an earlier pass or an
// external edit).
func materializeChanged(ctx context.Context, folder string, merged *SteamMetadata, existing SteamMetadata, m Materializer) error {
	fields := []struct {
		kind AssetKind
		old  string
		val  *string
	}{
		{AssetMarquee, existing.Marquee, &merged.Marquee},
		{AssetScreenshot, existing.Screenshot, &merged.Screenshot},
		{AssetVideo, existing.Video, &merged.Video},
		{AssetCover, existing.Cover, &merged.Cover},
	}

	for _, f := range fields {
		if *f.val == f.old || !isRemoteURL(*f.val) {
			continue
		}
		local, err := m.Materialize(ctx, folder, f.kind, *f.val, merged.Path)
		if err != nil {
			return err
		}
		*f.val = local
	}
	return nil
}

// isRemoteURL reports whether an asset field value still awaits
// materialization. The store format has no explicit pending flag; a
// field holds either a remote http(s) URL or a local file path.
func isRemoteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
