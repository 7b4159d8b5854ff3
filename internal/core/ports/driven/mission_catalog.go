package driven

import (
	"context"

	"github.com/astroview-labs/astroview-cli/internal/core/domain"
)

// MissionCatalog fetches OSDR mission metadata.
type MissionCatalog interface {
	// SearchMission looks up a single mission by identifier.
	// An empty or whitespace query returns (nil, nil) without a network
	// call. An unknown identifier (HTTP 400/404) returns a zero-value
	// record and no error, so callers can fall back to fuzzy suggestions.
	// Any other HTTP or transport failure returns an error.
	SearchMission(ctx context.Context, query string) (*domain.MissionRecord, error)

	// AllMissions fetches the bulk catalog and returns the URL-decoded
	// mission identifiers. Fails on any non-2xx response.
	AllMissions(ctx context.Context) (domain.MissionIndex, error)
}
