package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astroview-labs/astroview-cli/internal/core/domain"
)

// --- Mock implementations ---

// mockMissionCatalog implements driven.MissionCatalog for testing.
type mockMissionCatalog struct {
	records   map[string]*domain.MissionRecord
	searchErr error
	index     domain.MissionIndex
	indexErr  error

	// blockQuery, when set, makes SearchMission for that query wait on
	// release after signalling started. Used to force response ordering.
	blockQuery string
	started    chan struct{}
	release    chan struct{}
}

func (m *mockMissionCatalog) SearchMission(_ context.Context, query string) (*domain.MissionRecord, error) {
	if query == m.blockQuery && m.release != nil {
		m.started <- struct{}{}
		<-m.release
	}
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	if rec, ok := m.records[query]; ok {
		return rec, nil
	}
	return &domain.MissionRecord{}, nil // 400/404 maps to a zero record
}

func (m *mockMissionCatalog) AllMissions(_ context.Context) (domain.MissionIndex, error) {
	if m.indexErr != nil {
		return nil, m.indexErr
	}
	return m.index, nil
}

// mockMediaLibrary implements driven.MediaLibrary for testing.
type mockMediaLibrary struct {
	items     []domain.MediaItem
	totalHits int
	searchErr error

	highRes    string
	highResErr error

	lastQuery string
	lastPage  int
}

func (m *mockMediaLibrary) Search(
	_ context.Context, query string, _ []domain.MediaType, page, pageSize int,
) (*domain.MediaPage, error) {
	m.lastQuery = query
	m.lastPage = page
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return &domain.MediaPage{
		Items:     m.items,
		TotalHits: m.totalHits,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

func (m *mockMediaLibrary) HighResImageURL(_ context.Context, _ string) (string, error) {
	if m.highResErr != nil {
		return "", m.highResErr
	}
	return m.highRes, nil
}

func newTestExplore(catalog *mockMissionCatalog, media *mockMediaLibrary) *ExploreService {
	history := NewHistoryService(context.Background(), &mockHistoryStore{})
	return NewExploreService(catalog, media, history)
}

// --- Tests ---

func TestExplore_StartsIdleInMissionMode(t *testing.T) {
	svc := newTestExplore(&mockMissionCatalog{}, &mockMediaLibrary{})

	v := svc.View()
	assert.Equal(t, domain.ModeMission, v.Mode)
	assert.Equal(t, domain.PhaseIdle, v.Phase)
}

func TestExplore_EmptyQueryIsNoOp(t *testing.T) {
	svc := newTestExplore(&mockMissionCatalog{}, &mockMediaLibrary{})

	v := svc.Submit(context.Background(), "   <br>  ")
	assert.Equal(t, domain.PhaseIdle, v.Phase)
}

func TestExplore_MissionFound(t *testing.T) {
	catalog := &mockMissionCatalog{
		records: map[string]*domain.MissionRecord{
			"apollo 11": {Identifier: "Apollo 11", ID: 11},
		},
	}
	svc := newTestExplore(catalog, &mockMediaLibrary{})

	v := svc.Submit(context.Background(), "  Apollo 11 ")
	require.Equal(t, domain.PhaseResults, v.Phase)
	require.NotNil(t, v.Mission)
	assert.Equal(t, "Apollo 11", v.Mission.Identifier)

	// Successful mission searches are recorded, most recent first.
	assert.Equal(t, []string{"apollo 11"}, v.Recent)
}

func TestExplore_MissionNotFoundShowsSuggestionsNeverError(t *testing.T) {
	catalog := &mockMissionCatalog{
		index: domain.MissionIndex{"VSS Unity", "Veggie", "Apollo 11"},
	}
	svc := newTestExplore(catalog, &mockMediaLibrary{})

	v := svc.Submit(context.Background(), "VSS Unity ")
	// The mock has no record for the query, so the lookup misses.
	require.Equal(t, domain.PhaseSuggestions, v.Phase)
	assert.Equal(t, []string{"VSS Unity"}, v.Suggestions)
	assert.NotEqual(t, domain.PhaseError, v.Phase)

	// Missed lookups are not recorded.
	assert.Empty(t, v.Recent)
}

func TestExplore_MissionNotFoundZeroCandidatesShowsCatalog(t *testing.T) {
	catalog := &mockMissionCatalog{
		index: domain.MissionIndex{"Apollo 11", "Skylab 4"},
	}
	svc := newTestExplore(catalog, &mockMediaLibrary{})

	v := svc.Submit(context.Background(), "voyager")
	require.Equal(t, domain.PhaseCatalog, v.Phase)
	require.Len(t, v.Catalog, 2)
	assert.Equal(t, "A", v.Catalog[0].Letter)
	assert.Equal(t, "S", v.Catalog[1].Letter)
}

func TestExplore_MissionTransportErrorFallsBackToCatalog(t *testing.T) {
	catalog := &mockMissionCatalog{
		searchErr: errors.New("status 500"),
		index:     domain.MissionIndex{"Apollo 11"},
	}
	svc := newTestExplore(catalog, &mockMediaLibrary{})

	v := svc.Submit(context.Background(), "apollo 11")
	require.Equal(t, domain.PhaseError, v.Phase)
	assert.Contains(t, v.ErrMessage, "apollo 11")
	assert.NotEmpty(t, v.Catalog)
}

func TestExplore_MediaSearchPagination(t *testing.T) {
	ctx := context.Background()
	media := &mockMediaLibrary{
		items:     []domain.MediaItem{{NasaID: "a", MediaType: domain.MediaTypeImage}},
		totalHits: 95,
	}
	svc := newTestExplore(&mockMissionCatalog{}, media)

	svc.SwitchMode(domain.ModeMedia)
	v := svc.Submit(ctx, "nebula")
	require.Equal(t, domain.PhaseResults, v.Phase)
	assert.Equal(t, 1, v.Page)
	assert.Equal(t, 10, v.TotalPages)

	// Page 11 is out of range.
	_, err := svc.Paginate(ctx, 11)
	assert.ErrorIs(t, err, domain.ErrPageOutOfRange)

	v, err = svc.Paginate(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Page)
	assert.Equal(t, 2, media.lastPage)
	assert.Equal(t, "nebula", media.lastQuery)

	// Media searches are never recorded in history.
	assert.Empty(t, v.Recent)
}

func TestExplore_PaginateOutsideMediaModeFails(t *testing.T) {
	svc := newTestExplore(&mockMissionCatalog{}, &mockMediaLibrary{})

	_, err := svc.Paginate(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrNotMediaMode)
}

func TestExplore_PaginateSinglePageResultIsOutOfRange(t *testing.T) {
	ctx := context.Background()
	media := &mockMediaLibrary{
		items:     []domain.MediaItem{{NasaID: "a", MediaType: domain.MediaTypeImage}},
		totalHits: 5,
	}
	svc := newTestExplore(&mockMissionCatalog{}, media)

	svc.SwitchMode(domain.ModeMedia)
	v := svc.Submit(ctx, "nebula")
	require.Equal(t, 1, v.TotalPages)

	v, err := svc.Paginate(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrPageOutOfRange)
	assert.NotErrorIs(t, err, domain.ErrNotMediaMode)
	assert.Equal(t, domain.ModeMedia, v.Mode)
}

func TestExplore_NewMediaQueryResetsPage(t *testing.T) {
	ctx := context.Background()
	media := &mockMediaLibrary{totalHits: 95}
	svc := newTestExplore(&mockMissionCatalog{}, media)

	svc.SwitchMode(domain.ModeMedia)
	svc.Submit(ctx, "nebula")
	_, err := svc.Paginate(ctx, 3)
	require.NoError(t, err)

	// Re-submitting the same query preserves the page.
	v := svc.Submit(ctx, "nebula")
	assert.Equal(t, 3, v.Page)

	// A different query resets to page 1.
	v = svc.Submit(ctx, "galaxy")
	assert.Equal(t, 1, v.Page)
}

func TestExplore_MediaErrorDoesNotShowCatalog(t *testing.T) {
	media := &mockMediaLibrary{searchErr: errors.New("status 503")}
	svc := newTestExplore(&mockMissionCatalog{}, media)

	svc.SwitchMode(domain.ModeMedia)
	v := svc.Submit(context.Background(), "nebula")
	require.Equal(t, domain.PhaseError, v.Phase)
	assert.Empty(t, v.Catalog)
}

func TestExplore_SwitchModeResetsEverything(t *testing.T) {
	ctx := context.Background()
	media := &mockMediaLibrary{
		items:     []domain.MediaItem{{NasaID: "a"}},
		totalHits: 95,
	}
	svc := newTestExplore(&mockMissionCatalog{}, media)

	svc.SwitchMode(domain.ModeMedia)
	svc.Submit(ctx, "nebula")
	_, err := svc.Paginate(ctx, 2)
	require.NoError(t, err)

	v := svc.SwitchMode(domain.ModeMission)
	assert.Equal(t, domain.PhaseIdle, v.Phase)
	assert.Empty(t, v.Query)
	assert.Empty(t, v.Media)
	assert.Zero(t, v.Page)
	assert.Zero(t, v.TotalPages)

	// Back in media mode the next search starts from page 1.
	svc.SwitchMode(domain.ModeMedia)
	svc.Submit(ctx, "nebula")
	assert.Equal(t, 1, media.lastPage)
}

func TestExplore_ShowCatalog(t *testing.T) {
	catalog := &mockMissionCatalog{index: domain.MissionIndex{"Apollo 11", "Skylab 4"}}
	svc := newTestExplore(catalog, &mockMediaLibrary{})

	v := svc.ShowCatalog(context.Background())
	require.Equal(t, domain.PhaseCatalog, v.Phase)
	require.Len(t, v.Catalog, 2)
}

func TestExplore_ShowCatalogUnavailable(t *testing.T) {
	catalog := &mockMissionCatalog{indexErr: errors.New("status 502")}
	svc := newTestExplore(catalog, &mockMediaLibrary{})

	v := svc.ShowCatalog(context.Background())
	assert.Equal(t, domain.PhaseError, v.Phase)
	assert.Contains(t, v.ErrMessage, "unavailable")
}

func TestExplore_AutocompleteMissionModeOnly(t *testing.T) {
	catalog := &mockMissionCatalog{index: domain.MissionIndex{"Apollo 11", "Apollo 13"}}
	svc := newTestExplore(catalog, &mockMediaLibrary{})
	svc.LoadMissionIndex(context.Background())

	assert.Equal(t, []string{"Apollo 11", "Apollo 13"}, svc.Autocomplete("apo"))

	svc.SwitchMode(domain.ModeMedia)
	assert.Nil(t, svc.Autocomplete("apo"))
}

func TestExplore_HighResImage(t *testing.T) {
	media := &mockMediaLibrary{highRes: "https://images-assets.nasa.gov/image/x/x~orig.jpg"}
	svc := newTestExplore(&mockMissionCatalog{}, media)

	assert.Equal(t, media.highRes, svc.HighResImage(context.Background(), "x"))

	media.highResErr = errors.New("boom")
	assert.Empty(t, svc.HighResImage(context.Background(), "x"))
}

func TestExplore_ClearHistory(t *testing.T) {
	ctx := context.Background()
	catalog := &mockMissionCatalog{
		records: map[string]*domain.MissionRecord{"apollo 11": {Identifier: "Apollo 11"}},
	}
	svc := newTestExplore(catalog, &mockMediaLibrary{})

	svc.Submit(ctx, "apollo 11")
	require.NotEmpty(t, svc.View().Recent)

	v := svc.ClearHistory(ctx)
	assert.Empty(t, v.Recent)
}

func TestExplore_StaleResponseIsDiscarded(t *testing.T) {
	ctx := context.Background()
	catalog := &mockMissionCatalog{
		records: map[string]*domain.MissionRecord{
			"slow": {Identifier: "Slow Mission"},
			"fast": {Identifier: "Fast Mission"},
		},
		blockQuery: "slow",
		started:    make(chan struct{}, 1),
		release:    make(chan struct{}),
	}
	svc := newTestExplore(catalog, &mockMediaLibrary{})

	done := make(chan domain.ExploreView, 1)
	go func() {
		done <- svc.Submit(ctx, "slow")
	}()

	// Wait until the slow search is in flight, then supersede it.
	select {
	case <-catalog.started:
	case <-time.After(2 * time.Second):
		t.Fatal("slow search never started")
	}
	v := svc.Submit(ctx, "fast")
	require.Equal(t, "Fast Mission", v.Mission.Identifier)

	// Release the stale response; it must not overwrite the fresh state.
	close(catalog.release)
	select {
	case stale := <-done:
		assert.Equal(t, "Fast Mission", stale.Mission.Identifier)
	case <-time.After(2 * time.Second):
		t.Fatal("slow search never returned")
	}
	assert.Equal(t, "Fast Mission", svc.View().Mission.Identifier)
}
