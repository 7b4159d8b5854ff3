package driving

import (
	"context"

	"github.com/astroview-labs/astroview-cli/internal/core/domain"
)

// ApodService provides Astronomy Picture of the Day entries.
type ApodService interface {
	// Today returns today's entry, or nil when the fetch fails; the
	// failure is logged and the caller falls back to a placeholder.
	Today(ctx context.Context) *domain.APODEntry

	// ByDate returns the entry for a date given with either "/" or "-"
	// separators. Fails on unparseable dates or fetch errors.
	ByDate(ctx context.Context, date string) (*domain.APODEntry, error)

	// Random returns a fixed-size batch of random entries.
	Random(ctx context.Context) ([]domain.APODEntry, error)
}
