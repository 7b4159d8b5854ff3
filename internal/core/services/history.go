package services

import (
	"context"
	"strings"
	"sync"

	"github.com/astroview-labs/astroview-cli/internal/core/ports/driven"
	"github.com/astroview-labs/astroview-cli/internal/core/ports/driving"
	"github.com/astroview-labs/astroview-cli/internal/logger"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// MaxRecentSearches caps the recent-search list; the oldest entry is
// evicted on overflow.
const MaxRecentSearches = 7

// HistoryService keeps the bounded, de-duplicated, most-recent-first
// list of past queries. The in-memory list is authoritative for the
// session; every mutation is persisted through the store, and a
// persistence failure is logged and swallowed.
type HistoryService struct {
	mu       sync.Mutex
	store    driven.HistoryStore
	searches []string
}

// NewHistoryService creates a history service, loading persisted state.
// A load failure starts the session with an empty list rather than
// failing construction.
func NewHistoryService(ctx context.Context, store driven.HistoryStore) *HistoryService {
	s := &HistoryService{store: store}

	if store != nil {
		loaded, err := store.Load(ctx)
		if err != nil {
			logger.Error("loading recent searches: %v", err)
		} else {
			if len(loaded) > MaxRecentSearches {
				loaded = loaded[:MaxRecentSearches]
			}
			s.searches = loaded
		}
	}

	return s
}

// Add records a query at the front of the list. Re-adding an existing
// entry moves it to the front without duplicating. Empty queries are
// ignored.
func (s *HistoryService) Add(ctx context.Context, query string) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]string, 0, len(s.searches)+1)
	kept = append(kept, trimmed)
	for _, existing := range s.searches {
		if existing != trimmed {
			kept = append(kept, existing)
		}
	}
	if len(kept) > MaxRecentSearches {
		kept = kept[:MaxRecentSearches]
	}
	s.searches = kept

	s.persist(ctx)
}

// List returns the recent searches, most recent first.
func (s *HistoryService) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.searches))
	copy(out, s.searches)
	return out
}

// Clear empties the list and persists the empty state.
func (s *HistoryService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.searches = nil
	s.persist(ctx)
}

// persist writes the current list through the store (caller must hold
// the lock). Failures are logged only: the session keeps its state.
func (s *HistoryService) persist(ctx context.Context) {
	if s.store == nil {
		return
	}
	if err := s.store.Save(ctx, s.searches); err != nil {
		logger.Error("saving recent searches: %v", err)
	}
}
