package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/astroview-labs/astroview-cli/internal/core/domain"
	"github.com/astroview-labs/astroview-cli/internal/core/ports/driven"
	"github.com/astroview-labs/astroview-cli/internal/core/ports/driving"
	"github.com/astroview-labs/astroview-cli/internal/logger"
)

// Ensure ExploreService implements the interface.
var _ driving.ExploreService = (*ExploreService)(nil)

// ExploreService is the search orchestrator. It owns the active mode,
// query, and pagination state, dispatches to the mission catalog or the
// media library, applies the fuzzy-suggestion fallback on a missed
// mission lookup, and assembles the render model the presentation layer
// paints.
//
// All state is mutated under the mutex; network calls happen unlocked.
// Every search bumps a generation counter, and a response whose
// generation no longer matches at commit time is discarded, so a slow
// response can never overwrite the state of a newer search.
type ExploreService struct {
	catalog driven.MissionCatalog
	media   driven.MediaLibrary
	history driving.HistoryService

	mu         sync.Mutex
	generation uint64
	index      domain.MissionIndex
	view       domain.ExploreView

	// mediaQuery and page track the active media search; a new query
	// resets the page, re-submitting the same query preserves it.
	mediaQuery string
	page       int
	totalPages int
}

// NewExploreService creates the orchestrator with injected collaborators.
// The mission index is fetched lazily on first use.
func NewExploreService(
	catalog driven.MissionCatalog,
	media driven.MediaLibrary,
	history driving.HistoryService,
) *ExploreService {
	s := &ExploreService{
		catalog: catalog,
		media:   media,
		history: history,
		page:    1,
	}
	s.view = domain.ExploreView{
		Mode:   domain.ModeMission,
		Phase:  domain.PhaseIdle,
		Recent: s.recent(),
	}
	return s
}

// LoadMissionIndex fetches the bulk mission catalog and builds the
// in-memory identifier index used for autocomplete and fuzzy fallback.
// Called once at startup; a failure leaves the index empty and is
// logged, matching the degraded-but-usable behavior of the UI.
func (s *ExploreService) LoadMissionIndex(ctx context.Context) {
	index, err := s.catalog.AllMissions(ctx)
	if err != nil {
		logger.Error("loading mission index: %v", err)
		return
	}

	s.mu.Lock()
	s.index = index
	s.mu.Unlock()
	logger.Info("mission index loaded: %d identifiers", len(index))
}

// Submit normalizes and runs a search in the current mode.
func (s *ExploreService) Submit(ctx context.Context, query string) domain.ExploreView {
	normalized := domain.NormalizeQuery(query)
	if normalized == "" {
		return s.View()
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	mode := s.view.Mode
	page := 1
	if mode == domain.ModeMedia {
		if s.mediaQuery != normalized {
			s.page = 1
			s.mediaQuery = normalized
		}
		page = s.page
	}
	s.view.Phase = domain.PhaseLoading
	s.view.Query = normalized
	s.mu.Unlock()

	reqID := uuid.NewString()
	logger.Section("Search")
	logger.Debug("[%s] mode=%s query=%q page=%d", reqID, mode, normalized, page)

	switch mode {
	case domain.ModeMedia:
		return s.searchMedia(ctx, gen, normalized, page)
	default:
		return s.searchMission(ctx, gen, normalized)
	}
}

// Paginate re-runs the active media query for the given 1-based page.
// Requests outside media mode or outside [1, TotalPages] fail; the
// exposed controls cannot produce them, but the port still guards.
func (s *ExploreService) Paginate(ctx context.Context, page int) (domain.ExploreView, error) {
	s.mu.Lock()
	if s.view.Mode != domain.ModeMedia {
		defer s.mu.Unlock()
		return s.snapshotLocked(), domain.ErrNotMediaMode
	}
	if page < 1 || page > s.totalPages {
		defer s.mu.Unlock()
		return s.snapshotLocked(), fmt.Errorf("%w: %d of %d", domain.ErrPageOutOfRange, page, s.totalPages)
	}

	s.generation++
	gen := s.generation
	query := s.mediaQuery
	s.page = page
	s.view.Phase = domain.PhaseLoading
	s.mu.Unlock()

	logger.Debug("paginate: query=%q page=%d", query, page)
	return s.searchMedia(ctx, gen, query, page), nil
}

// SwitchMode activates a mode, clearing query text, results,
// suggestions, and pagination. Any in-flight search is superseded.
func (s *ExploreService) SwitchMode(mode domain.SearchMode) domain.ExploreView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.mediaQuery = ""
	s.page = 1
	s.totalPages = 0
	s.view = domain.ExploreView{
		Mode:   mode,
		Phase:  domain.PhaseIdle,
		Recent: s.recent(),
	}
	logger.Info("search mode changed to %s", mode)
	return s.snapshotLocked()
}

// ShowCatalog renders the full alphabetically-grouped mission catalog.
func (s *ExploreService) ShowCatalog(ctx context.Context) domain.ExploreView {
	index := s.missionIndex(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(index) == 0 {
		s.view.Phase = domain.PhaseError
		s.view.ErrMessage = domain.ErrCatalogUnavailable.Error()
		return s.snapshotLocked()
	}

	s.view.Phase = domain.PhaseCatalog
	s.view.Catalog = index.CatalogGroups()
	s.view.Suggestions = nil
	s.view.Mission = nil
	s.view.Media = nil
	s.view.Recent = s.recent()
	return s.snapshotLocked()
}

// Autocomplete returns live mission-identifier suggestions for a
// partial query. Media mode has no autocomplete.
func (s *ExploreService) Autocomplete(query string) []string {
	s.mu.Lock()
	mode := s.view.Mode
	index := s.index
	s.mu.Unlock()

	if mode != domain.ModeMission {
		return nil
	}
	return index.Autocomplete(query)
}

// HighResImage resolves the high-resolution URL for an image result.
func (s *ExploreService) HighResImage(ctx context.Context, nasaID string) string {
	url, err := s.media.HighResImageURL(ctx, nasaID)
	if err != nil {
		logger.Error("resolving high-res image for %s: %v", nasaID, err)
		return ""
	}
	return url
}

// ClearHistory empties the recent-search list.
func (s *ExploreService) ClearHistory(ctx context.Context) domain.ExploreView {
	if s.history != nil {
		s.history.Clear(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Recent = s.recent()
	return s.snapshotLocked()
}

// View returns the current render model without side effects.
func (s *ExploreService) View() domain.ExploreView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// searchMission runs a mission lookup and commits the resulting view.
// A 400/404 lookup is "not found", never an error: it flows to the
// fuzzy-suggestion phase, or straight to the catalog when no candidate
// exists. Transport failures render an error message plus the catalog
// fallback.
func (s *ExploreService) searchMission(ctx context.Context, gen uint64, query string) domain.ExploreView {
	record, err := s.catalog.SearchMission(ctx, query)
	if err != nil {
		logger.Warn("mission search failed: %v", err)
		index := s.missionIndex(ctx)
		return s.commit(gen, func(v *domain.ExploreView) {
			v.Phase = domain.PhaseError
			v.ErrMessage = fmt.Sprintf("mission lookup for %q failed: %v", query, err)
			if len(index) > 0 {
				v.Catalog = index.CatalogGroups()
			}
		})
	}

	if record.IsZero() {
		index := s.missionIndex(ctx)
		suggestions := index.FuzzySuggestions(query)
		logger.Debug("mission %q not found, %d fuzzy candidates", query, len(suggestions))

		if len(suggestions) == 0 {
			groups := index.CatalogGroups()
			return s.commit(gen, func(v *domain.ExploreView) {
				v.Phase = domain.PhaseCatalog
				v.Catalog = groups
				v.Suggestions = nil
				v.Mission = nil
			})
		}
		return s.commit(gen, func(v *domain.ExploreView) {
			v.Phase = domain.PhaseSuggestions
			v.Suggestions = suggestions
			v.Mission = nil
		})
	}

	if s.history != nil {
		s.history.Add(ctx, query)
	}
	logger.Info("mission found: %s", record.Identifier)
	return s.commit(gen, func(v *domain.ExploreView) {
		v.Phase = domain.PhaseResults
		v.Mission = record
		v.Suggestions = nil
		v.Catalog = nil
	})
}

// searchMedia runs a media search and commits the resulting view.
// Media searches are not recorded in the recent-search list.
func (s *ExploreService) searchMedia(ctx context.Context, gen uint64, query string, page int) domain.ExploreView {
	result, err := s.media.Search(ctx, query, domain.DefaultMediaTypes, page, domain.DefaultPageSize)
	if err != nil {
		logger.Warn("media search failed: %v", err)
		return s.commit(gen, func(v *domain.ExploreView) {
			v.Phase = domain.PhaseError
			v.ErrMessage = fmt.Sprintf("media search for %q failed: %v", query, err)
		})
	}

	totalPages := result.TotalPages()
	logger.Info("media search: %d items, %d total hits, page %d/%d",
		len(result.Items), result.TotalHits, page, totalPages)

	return s.commit(gen, func(v *domain.ExploreView) {
		v.Phase = domain.PhaseResults
		v.Media = result.Items
		v.Page = page
		v.TotalPages = totalPages
		v.Mission = nil
		v.Suggestions = nil
		v.Catalog = nil
		s.totalPages = totalPages
	})
}

// commit applies a mutation to the view if the generation still matches,
// then returns a snapshot. Stale responses mutate nothing.
func (s *ExploreService) commit(gen uint64, apply func(*domain.ExploreView)) domain.ExploreView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		logger.Debug("discarding stale response (generation %d, current %d)", gen, s.generation)
		return s.snapshotLocked()
	}

	apply(&s.view)
	s.view.Recent = s.recent()
	return s.snapshotLocked()
}

// missionIndex returns the cached index, fetching it on first use.
func (s *ExploreService) missionIndex(ctx context.Context) domain.MissionIndex {
	s.mu.Lock()
	index := s.index
	s.mu.Unlock()

	if len(index) > 0 {
		return index
	}

	fetched, err := s.catalog.AllMissions(ctx)
	if err != nil {
		logger.Error("loading mission index: %v", err)
		return nil
	}

	s.mu.Lock()
	s.index = fetched
	s.mu.Unlock()
	return fetched
}

// recent reads the history list; safe with a nil history.
func (s *ExploreService) recent() []string {
	if s.history == nil {
		return nil
	}
	return s.history.List()
}

// snapshotLocked copies the view (caller must hold the lock).
func (s *ExploreService) snapshotLocked() domain.ExploreView {
	v := s.view

	if v.Media != nil {
		media := make([]domain.MediaItem, len(v.Media))
		copy(media, v.Media)
		v.Media = media
	}
	if v.Suggestions != nil {
		suggestions := make([]string, len(v.Suggestions))
		copy(suggestions, v.Suggestions)
		v.Suggestions = suggestions
	}
	return v
}
