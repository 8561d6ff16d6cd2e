// Package catalog implements the two XML-backed record stores behind an
// ES-DE steam system folder (general game info in gameList.xml, steam
// metadata and asset references in steamids.xml) and the reconciler that
// joins them with the folder's game files.
package catalog

import (
	"strconv"
	"strings"

	"github.com/mcaralp/esde-steam-manager/internal/xmldoc"
)

// AssetKind identifies one downloadable asset slot of a game.
type AssetKind string

const (
	AssetMarquee    AssetKind = "marquee"
	AssetScreenshot AssetKind = "screenshot"
	AssetVideo      AssetKind = "video"
	AssetCover      AssetKind = "cover"
	AssetMiximage   AssetKind = "miximage"
)

// MediaDir returns the subdirectory of the downloaded media tree that
// holds assets of this kind.
func (k AssetKind) MediaDir() string {
	return string(k) + "s"
}

// GameInfo is one record of the general info store, keyed by the game's
// path reference (e.g. "./game.bat").
type GameInfo struct {
	Path        string  `json:"path" yaml:"path"`
	Name        string  `json:"name" yaml:"name"`
	Desc        string  `json:"desc" yaml:"desc"`
	Rating      float64 `json:"rating" yaml:"rating"`
	ReleaseDate string  `json:"releasedate" yaml:"releasedate"`
	Developer   string  `json:"developer" yaml:"developer"`
	Publisher   string  `json:"publisher" yaml:"publisher"`
	Genre       string  `json:"genre" yaml:"genre"`
	Players     string  `json:"players" yaml:"players"`
}

// SteamMetadata is one record of the steam metadata store, keyed by the
// same path space as GameInfo. Each asset field holds a remote URL until
// the asset has been downloaded, and the local file path afterwards.
type SteamMetadata struct {
	Path       string `json:"path" yaml:"path"`
	SteamID    int    `json:"steamid" yaml:"steamid"`
	Marquee    string `json:"marquee" yaml:"marquee"`
	Screenshot string `json:"screenshot" yaml:"screenshot"`
	Video      string `json:"video" yaml:"video"`
	Cover      string `json:"cover" yaml:"cover"`
}

// Entry pairs the two records of one game file.
type Entry struct {
	Infos    GameInfo      `json:"infos" yaml:"infos"`
	Metadata SteamMetadata `json:"metadata" yaml:"metadata"`
}

func defaultGameInfo(gamePath string) GameInfo {
	return GameInfo{Path: gamePath}
}

func defaultSteamMetadata(gamePath string) SteamMetadata {
	return SteamMetadata{Path: gamePath}
}

// parseRating parses a rating value. The whole string must parse as a
// float; anything else, including a numeric prefix like "0.8x", coerces
// to 0 so the field never carries a parse-failure sentinel.
func parseRating(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

// parseSteamID parses an app id with the same whole-string rule as
// parseRating: "12abc" coerces to 0, it is not truncated to 12.
func parseSteamID(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func infoFromNode(node xmldoc.Document) GameInfo {
	return GameInfo{
		Path:        xmldoc.Str(node, "path"),
		Name:        xmldoc.Str(node, "name"),
		Desc:        xmldoc.Str(node, "desc"),
		Rating:      parseRating(xmldoc.Str(node, "rating")),
		ReleaseDate: xmldoc.Str(node, "releasedate"),
		Developer:   xmldoc.Str(node, "developer"),
		Publisher:   xmldoc.Str(node, "publisher"),
		Genre:       xmldoc.Str(node, "genre"),
		Players:     xmldoc.Str(node, "players"),
	}
}

func metadataFromNode(node xmldoc.Document) SteamMetadata {
	return SteamMetadata{
		Path:       xmldoc.Str(node, "path"),
		SteamID:    parseSteamID(xmldoc.Str(node, "steamid")),
		Marquee:    xmldoc.Str(node, "marquee"),
		Screenshot: xmldoc.Str(node, "screenshot"),
		Video:      xmldoc.Str(node, "video"),
		Cover:      xmldoc.Str(node, "cover"),
	}
}

// applyToNode writes the record's fields into an existing element node.
// Elements the record does not model are left alone, so external edits to
// the document survive an upsert.
func (g GameInfo) applyToNode(node xmldoc.Document) {
	node["path"] = g.Path
	node["name"] = g.Name
	node["desc"] = g.Desc
	node["rating"] = strconv.FormatFloat(g.Rating, 'f', -1, 64)
	node["releasedate"] = g.ReleaseDate
	node["developer"] = g.Developer
	node["publisher"] = g.Publisher
	node["genre"] = g.Genre
	node["players"] = g.Players
}

func (m SteamMetadata) applyToNode(node xmldoc.Document) {
	node["path"] = m.Path
	node["steamid"] = strconv.Itoa(m.SteamID)
	node["marquee"] = m.Marquee
	node["screenshot"] = m.Screenshot
	node["video"] = m.Video
	node["cover"] = m.Cover
}

// mergeInfos merges an incoming record over an existing one field by
// field. An incoming non-default value wins; a default (empty string,
// zero rating) keeps whatever was stored before.
func mergeInfos(existing, incoming GameInfo) GameInfo {
	merged := existing
	merged.Path = incoming.Path
	if incoming.Name != "" {
		merged.Name = incoming.Name
	}
	if incoming.Desc != "" {
		merged.Desc = incoming.Desc
	}
	if incoming.Rating != 0 {
		merged.Rating = incoming.Rating
	}
	if incoming.ReleaseDate != "" {
		merged.ReleaseDate = incoming.ReleaseDate
	}
	if incoming.Developer != "" {
		merged.Developer = incoming.Developer
	}
	if incoming.Publisher != "" {
		merged.Publisher = incoming.Publisher
	}
	if incoming.Genre != "" {
		merged.Genre = incoming.Genre
	}
	if incoming.Players != "" {
		merged.Players = incoming.Players
	}
	return merged
}

func mergeMetadata(existing, incoming SteamMetadata) SteamMetadata {
	merged := existing
	merged.Path = incoming.Path
	if incoming.SteamID != 0 {
		merged.SteamID = incoming.SteamID
	}
	if incoming.Marquee != "" {
		merged.Marquee = incoming.Marquee
	}
	if incoming.Screenshot != "" {
		merged.Screenshot = incoming.Screenshot
	}
	if incoming.Video != "" {
		merged.Video = incoming.Video
	}
	if incoming.Cover != "" {
		merged.Cover = incoming.Cover
	}
	return merged
}

// LookupInfo returns the record for gamePath, or a defaulted record when
// the store has none. It never fails.
func LookupInfo(records []GameInfo, gamePath string) GameInfo {
	for _, r := range records {
		if r.Path == gamePath {
			return r
		}
	}
	return defaultGameInfo(gamePath)
}

// LookupMetadata is the metadata-store counterpart of LookupInfo.
func LookupMetadata(records []SteamMetadata, gamePath string) SteamMetadata {
	for _, r := range records {
		if r.Path == gamePath {
			return r
		}
	}
	return defaultSteamMetadata(gamePath)
}
