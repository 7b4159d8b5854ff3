// Package memory provides in-memory implementations of driven port
// interfaces, used in tests and in sessions that run without a data
// directory.
package memory

import (
	"context"
	"sync"

	"github.com/astroview-labs/astroview-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu       sync.RWMutex
	searches []string
}

// NewHistoryStore creates an empty in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Load returns the stored recent searches.
func (s *HistoryStore) Load(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.searches...), nil
}

// Save replaces the stored list.
func (s *HistoryStore) Save(_ context.Context, searches []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searches = append([]string(nil), searches...)
	return nil
}
