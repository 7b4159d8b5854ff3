// Package apod implements the image-of-the-day port against the
// api.nasa.gov APOD service. This is the only keyed NASA endpoint the
// application talks to, so requests pass through the shared rate
// limiter before they leave.
package apod

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/astroview-labs/astroview-cli/internal/adapters/driven/nasa"
	"github.com/astroview-labs/astroview-cli/internal/core/domain"
	"github.com/astroview-labs/astroview-cli/internal/core/ports/driven"
	"github.com/astroview-labs/astroview-cli/internal/logger"
)

// DefaultBaseURL is the APOD endpoint.
const DefaultBaseURL = "https://api.nasa.gov/planetary/apod"

// Ensure Client implements the interface.
var _ driven.ImageOfDay = (*Client)(nil)

// Client fetches Astronomy Picture of the Day entries.
type Client struct {
	baseURL     string
	apiKey      string
	http        *http.Client
	rateLimiter *nasa.RateLimiter
}

// NewClient creates an APOD client. An empty baseURL selects the
// public endpoint; the apiKey is required (DEMO_KEY works with a
// reduced quota).
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		http:        nasa.NewHTTPClient(),
		rateLimiter: nasa.NewRateLimiter(),
	}
}

// Today returns the current featured entry.
func (c *Client) Today(ctx context.Context) (*domain.APODEntry, error) {
	return c.fetchOne(ctx, url.Values{})
}

// ByDate returns the entry for an ISO YYYY-MM-DD date.
func (c *Client) ByDate(ctx context.Context, date string) (*domain.APODEntry, error) {
	params := url.Values{}
	params.Set("date", date)
	return c.fetchOne(ctx, params)
}

// Random returns count random entries.
func (c *Client) Random(ctx context.Context, count int) ([]domain.APODEntry, error) {
	params := url.Values{}
	params.Set("count", strconv.Itoa(count))

	body, err := c.fetch(ctx, params)
	if err != nil {
		return nil, err
	}

	var entries []domain.APODEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("decode apod batch: %w", err)
	}
	return entries, nil
}

func (c *Client) fetchOne(ctx context.Context, params url.Values) (*domain.APODEntry, error) {
	body, err := c.fetch(ctx, params)
	if err != nil {
		return nil, err
	}

	var entry domain.APODEntry
	if err := json.Unmarshal(body, &entry); err != nil {
		return nil, fmt.Errorf("decode apod entry: %w", err)
	}
	return &entry, nil
}

// fetch runs one rate-limited GET against the APOD endpoint and
// returns the raw body of a 2xx response.
func (c *Client) fetch(ctx context.Context, params url.Values) ([]byte, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params.Set("api_key", c.apiKey)
	endpoint := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())
	logger.Debug("apod: GET %s", c.baseURL)

	resp, err := nasa.Get(ctx, c.http, endpoint)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := c.rateLimiter.CheckRateLimit(resp); err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &nasa.StatusError{StatusCode: resp.StatusCode, URL: c.baseURL}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read apod response: %w", err)
	}
	return body, nil
}
