// Package osdr implements the mission catalog port against the NASA
// Open Science Data Repository API.
package osdr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/astroview-labs/astroview-cli/internal/adapters/driven/nasa"
	"github.com/astroview-labs/astroview-cli/internal/core/domain"
	"github.com/astroview-labs/astroview-cli/internal/core/ports/driven"
	"github.com/astroview-labs/astroview-cli/internal/logger"
)

// DefaultBaseURL is the OSDR REST base.
const DefaultBaseURL = "https://osdr.nasa.gov/geode-py/ws/api"

// Ensure Client implements the interface.
var _ driven.MissionCatalog = (*Client)(nil)

// Client queries OSDR missions.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an OSDR client. An empty baseURL selects the
// public OSDR host.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    nasa.NewHTTPClient(),
	}
}

// SearchMission looks up a mission by identifier. An empty query
// returns nil without a network call. An unknown identifier answers
// 400 or 404; both map to a zero record so the caller can tell "not
// found" apart from a transport failure.
func (c *Client) SearchMission(ctx context.Context, query string) (*domain.MissionRecord, error) {
	normalized := domain.NormalizeQuery(query)
	if normalized == "" {
		return nil, nil
	}

	endpoint := fmt.Sprintf("%s/mission/%s", c.baseURL, url.PathEscape(normalized))
	logger.Debug("osdr: GET %s", endpoint)

	resp, err := nasa.Get(ctx, c.http, endpoint)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound:
		logger.Debug("osdr: mission %q not found (status %d)", normalized, resp.StatusCode)
		return &domain.MissionRecord{}, nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &nasa.StatusError{StatusCode: resp.StatusCode, URL: endpoint}
	}

	var record domain.MissionRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("decode mission: %w", err)
	}
	return &record, nil
}

// missionList is the bulk catalog payload: one mission resource URL
// per entry, the identifier embedded in the URL path.
type missionList struct {
	Data []struct {
		Mission string `json:"mission"`
	} `json:"data"`
}

// AllMissions fetches the bulk catalog and extracts the identifier of
// every mission. Fails on any non-2xx response.
func (c *Client) AllMissions(ctx context.Context) (domain.MissionIndex, error) {
	endpoint := c.baseURL + "/missions"
	logger.Debug("osdr: GET %s", endpoint)

	resp, err := nasa.Get(ctx, c.http, endpoint)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &nasa.StatusError{StatusCode: resp.StatusCode, URL: endpoint}
	}

	var list missionList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode mission list: %w", err)
	}

	index := make(domain.MissionIndex, 0, len(list.Data))
	for _, entry := range list.Data {
		if identifier := domain.IdentifierFromMissionURL(entry.Mission); identifier != "" {
			index = append(index, identifier)
		}
	}
	return index, nil
}
