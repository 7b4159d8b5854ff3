package driven

import (
	"context"

	"github.com/astroview-labs/astroview-cli/internal/core/domain"
)

// MediaLibrary searches the NASA image and video library and resolves
// per-item asset manifests.
type MediaLibrary interface {
	// Search fetches one page of results for each requested media type
	// concurrently and merges them. An empty query returns an empty page
	// without a network call. A failure for one media type is captured
	// and does not abort the others; a manifest failure for one video
	// item leaves that item's VideoURL empty and does not abort the rest.
	Search(ctx context.Context, query string, types []domain.MediaType, page, pageSize int) (*domain.MediaPage, error)

	// HighResImageURL resolves the best high-resolution image URL for a
	// NASA id from its asset manifest. Returns "" (and no error) when no
	// suitable asset exists or the manifest fetch fails.
	HighResImageURL(ctx context.Context, nasaID string) (string, error)
}
