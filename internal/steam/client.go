// Package steam is the read-only client for the Steam storefront APIs:
// store search, app details, and review summaries.
package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/agext/levenshtein"
)

var (
	// ErrNoResults is returned by Search when the store has no hits.
	ErrNoResults = errors.New("no results found")
	// ErrUnknownApp is returned when the store reports an app id as
	// invalid or inaccessible.
	ErrUnknownApp = errors.New("game not found or not accessible")
)

// SearchResult is one store search hit.
type SearchResult struct {
	AppID int    `json:"appId"`
	Name  string `json:"name"`
}

// ReleaseDate carries the store's release date, which may be a
// placeholder for unreleased titles.
type ReleaseDate struct {
	ComingSoon bool   `json:"comingSoon"`
	Date       string `json:"date"`
}

// AppDetails is the subset of the appdetails payload the catalog needs.
type AppDetails struct {
	AppID            int         `json:"appId"`
	Name             string      `json:"name"`
	ShortDescription string      `json:"shortDescription"`
	Developers       []string    `json:"developers"`
	Publishers       []string    `json:"publishers"`
	Genres           []string    `json:"genres"`
	ReleaseDate      ReleaseDate `json:"releaseDate"`
	Multiplayer      bool        `json:"multiplayer"`
	Screenshots      []string    `json:"screenshots"`
	MovieIDs         []int       `json:"movieIds"`
}

// ReviewSummary is the aggregate review score of an app. A zero Score
// with empty Desc means the store reported no summary; callers tolerate
// that.
type ReviewSummary struct {
	Score        float64 `json:"score"`
	Desc         string  `json:"desc"`
	TotalReviews int     `json:"totalReviews"`
}

// Client queries the Steam storefront. Search and details responses are
// cached in memory for the lifetime of the client, matching how rarely
// the store data changes within one session.
type Client struct {
	BaseURL    string
	httpClient *http.Client
	cache      *cache
}

// NewClient creates a storefront client.
func NewClient() *Client {
	return &Client{
		BaseURL: "https://store.steampowered.com",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache: newCache(),
	}
}

// Search looks up store entries matching term and returns them ordered
// by name similarity to the term, best match first. It fails with
// ErrNoResults when the store returns nothing.
func (c *Client) Search(ctx context.Context, term string) ([]SearchResult, error) {
	if cached, ok := c.cache.search(term); ok {
		return cached, nil
	}

	params := url.Values{
		"term": {term},
		"l":    {"en"},
		"cc":   {"us"},
	}

	var payload struct {
		Items []struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"items"`
	}
	if err := c.getJSON(ctx, "/api/storesearch/", params, &payload); err != nil {
		return nil, fmt.Errorf("store search failed: %w", err)
	}

	if len(payload.Items) == 0 {
		return nil, ErrNoResults
	}

	results := make([]SearchResult, 0, len(payload.Items))
	for _, item := range payload.Items {
		results = append(results, SearchResult{AppID: item.ID, Name: item.Name})
	}
	rankResults(results, term)

	c.cache.putSearch(term, results)
	return results, nil
}

// rankResults orders hits by levenshtein similarity between the query
// and the title, keeping store order for ties.
func rankResults(results []SearchResult, term string) {
	q := strings.ToLower(term)
	sort.SliceStable(results, func(i, j int) bool {
		si := levenshtein.Match(q, strings.ToLower(results[i].Name), nil)
		sj := levenshtein.Match(q, strings.ToLower(results[j].Name), nil)
		return si > sj
	})
}

// AppDetails fetches the store details of an app in the given locale.
// It fails with ErrUnknownApp when the store reports the id invalid.
func (c *Client) AppDetails(ctx context.Context, appID int, locale string) (*AppDetails, error) {
	if cached, ok := c.cache.details(appID); ok {
		return cached, nil
	}
	if locale == "" {
		locale = "en"
	}

	params := url.Values{
		"appids": {strconv.Itoa(appID)},
		"l":      {locale},
		"cc":     {"us"},
	}

	var payload map[string]struct {
		Success bool `json:"success"`
		Data    struct {
			Name             string `json:"name"`
			ShortDescription string `json:"short_description"`
			Developers       []string
			Publishers       []string
			Genres           []struct {
				Description string `json:"description"`
			} `json:"genres"`
			Categories []struct {
				ID int `json:"id"`
			} `json:"categories"`
			ReleaseDate struct {
				ComingSoon bool   `json:"coming_soon"`
				Date       string `json:"date"`
			} `json:"release_date"`
			Screenshots []struct {
				PathFull string `json:"path_full"`
			} `json:"screenshots"`
			Movies []struct {
				ID int `json:"id"`
			} `json:"movies"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, "/api/appdetails", params, &payload); err != nil {
		return nil, fmt.Errorf("app details fetch failed: %w", err)
	}

	entry, ok := payload[strconv.Itoa(appID)]
	if !ok || !entry.Success {
		return nil, ErrUnknownApp
	}

	details := &AppDetails{
		AppID:            appID,
		Name:             entry.Data.Name,
		ShortDescription: entry.Data.ShortDescription,
		Developers:       entry.Data.Developers,
		Publishers:       entry.Data.Publishers,
		ReleaseDate: ReleaseDate{
			ComingSoon: entry.Data.ReleaseDate.ComingSoon,
			Date:       entry.Data.ReleaseDate.Date,
		},
	}
	for _, g := range entry.Data.Genres {
		details.Genres = append(details.Genres, g.Description)
	}
	for _, cat := range entry.Data.Categories {
		// Store category 1 is multi-player.
		if cat.ID == 1 {
			details.Multiplayer = true
		}
	}
	for _, s := range entry.Data.Screenshots {
		details.Screenshots = append(details.Screenshots, s.PathFull)
	}
	for _, m := range entry.Data.Movies {
		details.MovieIDs = append(details.MovieIDs, m.ID)
	}

	c.cache.putDetails(appID, details)
	return details, nil
}

// AppReviews fetches the review summary of an app. A missing summary is
// not an error; the zero summary is returned instead.
func (c *Client) AppReviews(ctx context.Context, appID int) (*ReviewSummary, error) {
	params := url.Values{
		"json":  {"1"},
		"count": {"1"},
		"l":     {"en"},
	}

	var payload struct {
		QuerySummary struct {
			ReviewScore     float64 `json:"review_score"`
			ReviewScoreDesc string  `json:"review_score_desc"`
			TotalReviews    int     `json:"total_reviews"`
		} `json:"query_summary"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("/appreviews/%d", appID), params, &payload); err != nil {
		return nil, fmt.Errorf("review summary fetch failed: %w", err)
	}

	return &ReviewSummary{
		Score:        payload.QuerySummary.ReviewScore,
		Desc:         payload.QuerySummary.ReviewScoreDesc,
		TotalReviews: payload.QuerySummary.TotalReviews,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	reqURL := c.BaseURL + endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("store API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
