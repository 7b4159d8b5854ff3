package tui

import (
	"context"

	"github.com/astroview-labs/astroview-cli/internal/core/domain"
)

// MockExploreService implements driving.ExploreService for TUI tests.
type MockExploreService struct {
	Current     domain.ExploreView
	SubmitView  domain.ExploreView
	Paginated   domain.ExploreView
	PaginateErr error
	CatalogView domain.ExploreView

	LastQuery string
	LastMode  domain.SearchMode
}

func (m *MockExploreService) Submit(_ context.Context, query string) domain.ExploreView {
	m.LastQuery = query
	return m.SubmitView
}

func (m *MockExploreService) Paginate(_ context.Context, _ int) (domain.ExploreView, error) {
	return m.Paginated, m.PaginateErr
}

func (m *MockExploreService) SwitchMode(mode domain.SearchMode) domain.ExploreView {
	m.LastMode = mode
	m.Current = domain.ExploreView{Mode: mode}
	return m.Current
}

func (m *MockExploreService) ShowCatalog(_ context.Context) domain.ExploreView {
	return m.CatalogView
}

func (m *MockExploreService) Autocomplete(_ string) []string {
	return nil
}

func (m *MockExploreService) HighResImage(_ context.Context, _ string) string {
	return ""
}

func (m *MockExploreService) ClearHistory(_ context.Context) domain.ExploreView {
	return m.Current
}

func (m *MockExploreService) View() domain.ExploreView {
	return m.Current
}

// MockApodService implements driving.ApodService for TUI tests.
type MockApodService struct {
	Entry   *domain.APODEntry
	Entries []domain.APODEntry
	Err     error
}

func (m *MockApodService) Today(_ context.Context) *domain.APODEntry {
	return m.Entry
}

func (m *MockApodService) ByDate(_ context.Context, _ string) (*domain.APODEntry, error) {
	return m.Entry, m.Err
}

func (m *MockApodService) Random(_ context.Context) ([]domain.APODEntry, error) {
	return m.Entries, m.Err
}
