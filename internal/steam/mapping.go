package steam

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/mcaralp/esde-steam-manager/internal/catalog"
)

// Store item assets live on fixed CDN paths derived from the app id; the
// appdetails payload does not carry all of them.
const (
	itemAssetBaseURL = "https://shared.fastly.steamstatic.com/store_item_assets/steam/apps"
	trailerBaseURL   = "https://video.fastly.steamstatic.com/store_trailers"
)

// LogoURL returns the wide logo asset of an app, used as the marquee.
func LogoURL(appID int) string {
	return fmt.Sprintf("%s/%d/logo_2x.png", itemAssetBaseURL, appID)
}

// CapsuleURL returns the tall library capsule of an app, used as the
// cover.
func CapsuleURL(appID int) string {
	return fmt.Sprintf("%s/%d/library_600x900_2x.jpg", itemAssetBaseURL, appID)
}

// TrailerURL returns the 480p mp4 rendition of a store trailer.
func TrailerURL(movieID int) string {
	return fmt.Sprintf("%s/%d/movie480.mp4", trailerBaseURL, movieID)
}

// GameInfo projects store details and a review summary into an info
// record for gamePath. The review score (0-10 on the store) is halved to
// land on the frontend's rating scale.
func (d *AppDetails) GameInfo(gamePath string, reviews *ReviewSummary) catalog.GameInfo {
	info := catalog.GameInfo{
		Path:        gamePath,
		Name:        d.Name,
		Desc:        d.ShortDescription,
		ReleaseDate: formatReleaseDate(d.ReleaseDate),
		Developer:   strings.Join(d.Developers, ", "),
		Publisher:   strings.Join(d.Publishers, ", "),
		Genre:       strings.Join(d.Genres, ", "),
		Players:     "1",
	}
	if d.Multiplayer {
		info.Players = "1+"
	}
	if reviews != nil {
		info.Rating = math.Round(reviews.Score) / 2
	}
	return info
}

// Metadata projects store details into a metadata record for gamePath,
// with every asset field holding the remote URL still to be downloaded.
func (d *AppDetails) Metadata(gamePath string) catalog.SteamMetadata {
	meta := catalog.SteamMetadata{
		Path:    gamePath,
		SteamID: d.AppID,
		Marquee: LogoURL(d.AppID),
		Cover:   CapsuleURL(d.AppID),
	}
	if len(d.Screenshots) > 0 {
		meta.Screenshot = d.Screenshots[0]
	}
	if len(d.MovieIDs) > 0 {
		meta.Video = TrailerURL(d.MovieIDs[0])
	}
	return meta
}

// formatReleaseDate normalizes the store's "2 Jan, 2006" dates to
// yyyy-mm-dd. Unreleased titles come back as "Coming Soon"; dates in an
// unexpected layout pass through unchanged.
func formatReleaseDate(rd ReleaseDate) string {
	if rd.ComingSoon {
		return "Coming Soon"
	}
	t, err := time.Parse("2 Jan, 2006", rd.Date)
	if err != nil {
		return rd.Date
	}
	return t.Format("2006-01-02")
}
