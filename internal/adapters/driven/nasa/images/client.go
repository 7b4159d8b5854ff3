// Package images implements the media library port against the NASA
// Image and Video Library API (images-api.nasa.gov).
package images

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/astroview-labs/astroview-cli/internal/adapters/driven/nasa"
	"github.com/astroview-labs/astroview-cli/internal/core/domain"
	"github.com/astroview-labs/astroview-cli/internal/core/ports/driven"
	"github.com/astroview-labs/astroview-cli/internal/logger"
)

// DefaultBaseURL is the public image library host.
const DefaultBaseURL = "https://images-api.nasa.gov"

// videoExtensions are the playable asset extensions, checked in order.
var videoExtensions = []string{".mp4", ".webm", ".mov"}

// Ensure Client implements the interface.
var _ driven.MediaLibrary = (*Client)(nil)

// Client searches the NASA image and video library.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a media library client. An empty baseURL selects
// the public host.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    nasa.NewHTTPClient(),
	}
}

// searchResponse is the /search payload.
type searchResponse struct {
	Collection struct {
		Items    []searchItem `json:"items"`
		Metadata struct {
			TotalHits int `json:"total_hits"`
		} `json:"metadata"`
	} `json:"collection"`
}

type searchItem struct {
	Data []struct {
		NasaID      string `json:"nasa_id"`
		Title       string `json:"title"`
		MediaType   string `json:"media_type"`
		DateCreated string `json:"date_created"`
	} `json:"data"`
	Links []struct {
		Href string `json:"href"`
		Rel  string `json:"rel"`
	} `json:"links"`
}

// assetManifest is the /asset/{id} payload.
type assetManifest struct {
	Collection struct {
		Items []struct {
			Href string `json:"href"`
		} `json:"items"`
	} `json:"collection"`
}

// typeResult carries one media type's fetch outcome.
type typeResult struct {
	items     []domain.MediaItem
	totalHits int
	err       error
}

// Search runs one concurrent fetch per requested media type and merges
// the results in type order. A failed type is logged and skipped; the
// search fails only when every type fails. TotalHits is the maximum
// reported across the per-type responses, which is what the pagination
// math is based on. Video items are enriched from their asset manifest;
// an enrichment failure leaves the item playable-URL-less but present.
func (c *Client) Search(
	ctx context.Context, query string, types []domain.MediaType, page, pageSize int,
) (*domain.MediaPage, error) {
	normalized := domain.NormalizeQuery(query)
	if normalized == "" {
		return &domain.MediaPage{Page: page, PageSize: pageSize}, nil
	}
	if len(types) == 0 {
		types = domain.DefaultMediaTypes
	}

	results := make([]typeResult, len(types))
	var wg sync.WaitGroup
	for i, mediaType := range types {
		wg.Add(1)
		go func(i int, mediaType domain.MediaType) {
			defer wg.Done()
			results[i] = c.searchType(ctx, normalized, mediaType, page, pageSize)
		}(i, mediaType)
	}
	wg.Wait()

	merged := &domain.MediaPage{Page: page, PageSize: pageSize}
	failures := 0
	for i, result := range results {
		if result.err != nil {
			failures++
			logger.Warn("images: %s search failed: %v", types[i], result.err)
			continue
		}
		merged.Items = append(merged.Items, result.items...)
		if result.totalHits > merged.TotalHits {
			merged.TotalHits = result.totalHits
		}
	}
	if failures == len(types) {
		return nil, fmt.Errorf("media search for %q: all media types failed: %w",
			normalized, results[0].err)
	}

	c.resolveVideos(ctx, merged.Items)
	return merged, nil
}

// searchType fetches one page of one media type.
func (c *Client) searchType(
	ctx context.Context, query string, mediaType domain.MediaType, page, pageSize int,
) typeResult {
	params := url.Values{}
	params.Set("q", query)
	params.Set("media_type", string(mediaType))
	params.Set("page", strconv.Itoa(page))
	params.Set("page_size", strconv.Itoa(pageSize))
	endpoint := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())
	logger.Debug("images: GET %s", endpoint)

	resp, err := nasa.Get(ctx, c.http, endpoint)
	if err != nil {
		return typeResult{err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return typeResult{err: &nasa.StatusError{StatusCode: resp.StatusCode, URL: endpoint}}
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return typeResult{err: fmt.Errorf("decode search response: %w", err)}
	}

	items := make([]domain.MediaItem, 0, len(payload.Collection.Items))
	for _, raw := range payload.Collection.Items {
		if item, ok := convertItem(raw); ok {
			items = append(items, item)
		}
	}
	return typeResult{items: items, totalHits: payload.Collection.Metadata.TotalHits}
}

// convertItem maps one wire item to the domain. Items without a data
// entry are malformed and dropped.
func convertItem(raw searchItem) (domain.MediaItem, bool) {
	if len(raw.Data) == 0 {
		return domain.MediaItem{}, false
	}

	data := raw.Data[0]
	item := domain.MediaItem{
		NasaID:      data.NasaID,
		Title:       data.Title,
		MediaType:   domain.MediaType(data.MediaType),
		DateCreated: data.DateCreated,
	}
	for _, link := range raw.Links {
		switch link.Rel {
		case "preview":
			item.PreviewURL = link.Href
		case "captions":
			item.CaptionsURL = link.Href
		}
	}
	return item, true
}

// resolveVideos fetches the asset manifest for every video item
// concurrently and fills in the playable URL. One item's failure never
// affects the others.
func (c *Client) resolveVideos(ctx context.Context, items []domain.MediaItem) {
	var wg sync.WaitGroup
	for i := range items {
		if items[i].MediaType != domain.MediaTypeVideo {
			continue
		}
		wg.Add(1)
		go func(item *domain.MediaItem) {
			defer wg.Done()
			videoURL, err := c.firstVideoAsset(ctx, item.NasaID)
			if err != nil {
				logger.Warn("images: asset manifest for %s failed: %v", item.NasaID, err)
				return
			}
			item.VideoURL = videoURL
		}(&items[i])
	}
	wg.Wait()
}

// firstVideoAsset returns the first manifest href with a playable
// extension, or "" when the manifest has none.
func (c *Client) firstVideoAsset(ctx context.Context, nasaID string) (string, error) {
	manifest, err := c.fetchManifest(ctx, nasaID)
	if err != nil {
		return "", err
	}

	for _, asset := range manifest.Collection.Items {
		lower := strings.ToLower(asset.Href)
		for _, ext := range videoExtensions {
			if strings.HasSuffix(lower, ext) {
				return asset.Href, nil
			}
		}
	}
	return "", nil
}

// HighResImageURL resolves the best large image asset for a NASA ID.
// It prefers an original-version asset (href containing "~orig" or a
// plain jpeg, never a tiff) and falls back to the first jpeg in the
// manifest. Returns "" without error when nothing matches.
func (c *Client) HighResImageURL(ctx context.Context, nasaID string) (string, error) {
	manifest, err := c.fetchManifest(ctx, nasaID)
	if err != nil {
		return "", err
	}

	var firstJPEG string
	for _, asset := range manifest.Collection.Items {
		lower := strings.ToLower(asset.Href)
		if strings.Contains(lower, ".tiff") {
			continue
		}

		isJPEG := strings.HasSuffix(lower, ".jpg") || strings.HasSuffix(lower, ".jpeg")
		if strings.Contains(lower, "~orig") || isJPEG {
			if strings.Contains(lower, "~orig") {
				return asset.Href, nil
			}
			if firstJPEG == "" {
				firstJPEG = asset.Href
			}
		}
	}
	return firstJPEG, nil
}

// fetchManifest fetches and decodes the asset manifest for a NASA ID.
func (c *Client) fetchManifest(ctx context.Context, nasaID string) (*assetManifest, error) {
	endpoint := fmt.Sprintf("%s/asset/%s", c.baseURL, url.PathEscape(nasaID))
	logger.Debug("images: GET %s", endpoint)

	resp, err := nasa.Get(ctx, c.http, endpoint)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &nasa.StatusError{StatusCode: resp.StatusCode, URL: endpoint}
	}

	var manifest assetManifest
	if err := json.NewDecoder(resp.Body).Decode(&manifest); err != nil {
		return nil, fmt.Errorf("decode asset manifest: %w", err)
	}
	return &manifest, nil
}
