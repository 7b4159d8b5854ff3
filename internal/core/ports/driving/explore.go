package driving

import (
	"context"

	"github.com/astroview-labs/astroview-cli/internal/core/domain"
)

// ExploreService is the search orchestrator: it owns the current mode,
// query, pagination, and rendering phase, dispatches searches to the
// mission catalog or the media library, and assembles the render model.
//
// Methods never surface transport failures as errors; failures become
// the error phase of the returned view (with the catalog fallback in
// mission mode). The one exception is Paginate, which rejects requests
// the exposed controls could not produce.
type ExploreService interface {
	// Submit normalizes and runs a search in the current mode. An empty
	// query (after normalization) is a no-op returning the current view.
	Submit(ctx context.Context, query string) domain.ExploreView

	// Paginate re-runs the current media query for the given 1-based
	// page. It fails with domain.ErrNotMediaMode outside media mode and
	// domain.ErrPageOutOfRange outside [1, TotalPages].
	Paginate(ctx context.Context, page int) (domain.ExploreView, error)

	// SwitchMode activates a search mode, resetting query text, results,
	// suggestions, and pagination to the idle phase.
	SwitchMode(mode domain.SearchMode) domain.ExploreView

	// ShowCatalog renders the full alphabetically-grouped mission catalog.
	ShowCatalog(ctx context.Context) domain.ExploreView

	// Autocomplete returns live mission-identifier suggestions for a
	// partial query. Only meaningful in mission mode.
	Autocomplete(query string) []string

	// HighResImage resolves the high-resolution URL for an image result.
	// Returns "" when unavailable.
	HighResImage(ctx context.Context, nasaID string) string

	// ClearHistory empties the recent-search list.
	ClearHistory(ctx context.Context) domain.ExploreView

	// View returns the current render model without side effects.
	View() domain.ExploreView
}
