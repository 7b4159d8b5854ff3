package mcp

import (
	"context"

	"github.com/astroview-labs/astroview-cli/internal/core/domain"
)

// mockExploreService is a mock implementation of driving.ExploreService.
type mockExploreService struct {
	mode        domain.SearchMode
	submitView  domain.ExploreView
	paginated   domain.ExploreView
	paginateErr error
	catalogView domain.ExploreView
	current     domain.ExploreView
	highRes     string
	suggestions []string

	lastQuery string
	lastPage  int
}

func (m *mockExploreService) Submit(_ context.Context, query string) domain.ExploreView {
	m.lastQuery = query
	return m.submitView
}

func (m *mockExploreService) Paginate(_ context.Context, page int) (domain.ExploreView, error) {
	m.lastPage = page
	return m.paginated, m.paginateErr
}

func (m *mockExploreService) SwitchMode(mode domain.SearchMode) domain.ExploreView {
	m.mode = mode
	return domain.ExploreView{Mode: mode}
}

func (m *mockExploreService) ShowCatalog(_ context.Context) domain.ExploreView {
	return m.catalogView
}

func (m *mockExploreService) Autocomplete(_ string) []string {
	return m.suggestions
}

func (m *mockExploreService) HighResImage(_ context.Context, _ string) string {
	return m.highRes
}

func (m *mockExploreService) ClearHistory(_ context.Context) domain.ExploreView {
	return m.current
}

func (m *mockExploreService) View() domain.ExploreView {
	return m.current
}

// mockApodService is a mock implementation of driving.ApodService.
type mockApodService struct {
	entry   *domain.APODEntry
	entries []domain.APODEntry
	err     error

	lastDate string
}

func (m *mockApodService) Today(_ context.Context) *domain.APODEntry {
	return m.entry
}

func (m *mockApodService) ByDate(_ context.Context, date string) (*domain.APODEntry, error) {
	m.lastDate = date
	return m.entry, m.err
}

func (m *mockApodService) Random(_ context.Context) ([]domain.APODEntry, error) {
	return m.entries, m.err
}
