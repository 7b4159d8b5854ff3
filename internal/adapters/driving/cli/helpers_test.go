package cli

import (
	"context"

	"github.com/astroview-labs/astroview-cli/internal/core/domain"
)

// mockExploreService implements driving.ExploreService for testing.
type mockExploreService struct {
	submitView  domain.ExploreView
	paginated   domain.ExploreView
	paginateErr error
	catalogView domain.ExploreView
	highRes     string

	lastMode  domain.SearchMode
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
	m.lastMode = mode
	return domain.ExploreView{Mode: mode}
}

func (m *mockExploreService) ShowCatalog(_ context.Context) domain.ExploreView {
	return m.catalogView
}

func (m *mockExploreService) Autocomplete(_ string) []string {
	return nil
}

func (m *mockExploreService) HighResImage(_ context.Context, _ string) string {
	return m.highRes
}

func (m *mockExploreService) ClearHistory(_ context.Context) domain.ExploreView {
	return domain.ExploreView{}
}

func (m *mockExploreService) View() domain.ExploreView {
	return domain.ExploreView{}
}

// mockApodService implements driving.ApodService for testing.
type mockApodService struct {
	entry   *domain.APODEntry
	entries []domain.APODEntry
	err     error
}

func (m *mockApodService) Today(_ context.Context) *domain.APODEntry {
	return m.entry
}

func (m *mockApodService) ByDate(_ context.Context, _ string) (*domain.APODEntry, error) {
	return m.entry, m.err
}

func (m *mockApodService) Random(_ context.Context) ([]domain.APODEntry, error) {
	return m.entries, m.err
}

// mockHistoryService implements driving.HistoryService for testing.
type mockHistoryService struct {
	recent  []string
	cleared bool
}

func (m *mockHistoryService) Add(_ context.Context, query string) {
	m.recent = append([]string{query}, m.recent...)
}

func (m *mockHistoryService) List() []string {
	return m.recent
}

func (m *mockHistoryService) Clear(_ context.Context) {
	m.cleared = true
	m.recent = nil
}

// setupTestServices installs mock services and returns a cleanup that
// restores the previous ones.
func setupTestServices() func() {
	oldExplore := exploreService
	oldApod := apodService
	oldHistory := historyService

	exploreService = &mockExploreService{}
	apodService = &mockApodService{}
	historyService = &mockHistoryService{}

	return func() {
		exploreService = oldExplore
		apodService = oldApod
		historyService = oldHistory
	}
}
