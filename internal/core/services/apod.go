package services

import (
	"context"
	"fmt"

	"github.com/astroview-labs/astroview-cli/internal/core/domain"
	"github.com/astroview-labs/astroview-cli/internal/core/ports/driven"
	"github.com/astroview-labs/astroview-cli/internal/core/ports/driving"
	"github.com/astroview-labs/astroview-cli/internal/logger"
)

// Ensure ApodService implements the interface.
var _ driving.ApodService = (*ApodService)(nil)

// RandomAPODBatchSize is the number of entries a random request returns.
const RandomAPODBatchSize = 5

// ApodService fetches Astronomy Picture of the Day entries. A failed
// Today fetch never propagates: the caller renders a placeholder and
// the rest of the page stays usable.
type ApodService struct {
	client driven.ImageOfDay
}

// NewApodService creates an APOD service.
func NewApodService(client driven.ImageOfDay) *ApodService {
	return &ApodService{client: client}
}

// Today returns the current featured entry, or nil when the fetch fails.
func (s *ApodService) Today(ctx context.Context) *domain.APODEntry {
	entry, err := s.client.Today(ctx)
	if err != nil {
		logger.Error("fetching picture of the day: %v", err)
		return nil
	}
	return entry
}

// ByDate returns the entry for a date given with either "/" or "-"
// separators, normalized to ISO form before querying.
func (s *ApodService) ByDate(ctx context.Context, date string) (*domain.APODEntry, error) {
	iso, err := domain.NormalizeAPODDate(date)
	if err != nil {
		return nil, err
	}

	logger.Debug("APOD by date: %s", iso)
	entry, err := s.client.ByDate(ctx, iso)
	if err != nil {
		return nil, fmt.Errorf("apod by date: %w", err)
	}
	return entry, nil
}

// Random returns a fixed-size batch of random entries.
func (s *ApodService) Random(ctx context.Context) ([]domain.APODEntry, error) {
	entries, err := s.client.Random(ctx, RandomAPODBatchSize)
	if err != nil {
		return nil, fmt.Errorf("random apod: %w", err)
	}
	return entries, nil
}
