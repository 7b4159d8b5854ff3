package driven

import (
	"context"

	"github.com/astroview-labs/astroview-cli/internal/core/domain"
)

// ImageOfDay fetches Astronomy Picture of the Day entries.
type ImageOfDay interface {
	// Today returns the current featured entry.
	Today(ctx context.Context) (*domain.APODEntry, error)

	// ByDate returns the entry for an ISO YYYY-MM-DD date.
	ByDate(ctx context.Context, date string) (*domain.APODEntry, error)

	// Random returns a fixed-size batch of random entries.
	Random(ctx context.Context, count int) ([]domain.APODEntry, error)
}
