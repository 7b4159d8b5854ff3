package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astroview-labs/astroview-cli/internal/core/domain"
)

func TestServer_handleMissionLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("returns mission record", func(t *testing.T) {
		mockExplore := &mockExploreService{
			submitView: domain.ExploreView{
				Mode:  domain.ModeMission,
				Phase: domain.PhaseResults,
				Query: "apollo 11",
				Mission: &domain.MissionRecord{
					Identifier: "Apollo 11",
					ID:         11,
					StartDate:  "1969-07-16",
					Aliases:    []string{"AS-506"},
					Vehicle:    domain.VehicleRef{Vehicle: "https://osdr.nasa.gov/vehicle/Saturn%20V"},
					Parents:    domain.MissionParents{GLDSStudy: []string{"GLDS-1", "GLDS-2"}},
				},
			},
		}

		server, err := NewServer(&Ports{Explore: mockExplore})
		require.NoError(t, err)

		_, output, err := server.handleMissionLookup(ctx, nil, MissionInput{Identifier: "Apollo 11"})

		require.NoError(t, err)
		assert.True(t, output.Found)
		assert.Equal(t, "Apollo 11", output.Identifier)
		assert.Equal(t, []string{"AS-506"}, output.Aliases)
		assert.Equal(t, "Saturn V", output.Vehicle)
		assert.Equal(t, "1969-07-16", output.StartDate)
		assert.Equal(t, "Current", output.EndDate)
		assert.Equal(t, 2, output.StudyCount)
		assert.Equal(t, domain.ModeMission, mockExplore.mode)
		assert.Equal(t, "Apollo 11", mockExplore.lastQuery)
	})

	t.Run("miss returns suggestions without error", func(t *testing.T) {
		mockExplore := &mockExploreService{
			submitView: domain.ExploreView{
				Mode:        domain.ModeMission,
				Phase:       domain.PhaseSuggestions,
				Suggestions: []string{"VSS Unity", "VSS Imagine"},
			},
		}

		server, err := NewServer(&Ports{Explore: mockExplore})
		require.NoError(t, err)

		_, output, err := server.handleMissionLookup(ctx, nil, MissionInput{Identifier: "VSS Untiy"})

		require.NoError(t, err)
		assert.False(t, output.Found)
		assert.Equal(t, []string{"VSS Unity", "VSS Imagine"}, output.Suggestions)
	})

	t.Run("transport failure returns error", func(t *testing.T) {
		mockExplore := &mockExploreService{
			submitView: domain.ExploreView{
				Mode:       domain.ModeMission,
				Phase:      domain.PhaseError,
				ErrMessage: "mission search failed",
			},
		}

		server, err := NewServer(&Ports{Explore: mockExplore})
		require.NoError(t, err)

		_, _, err = server.handleMissionLookup(ctx, nil, MissionInput{Identifier: "Apollo 11"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "mission search failed")
	})
}

func TestServer_handleMediaSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns media items with pagination", func(t *testing.T) {
		mockExplore := &mockExploreService{
			submitView: domain.ExploreView{
				Mode:  domain.ModeMedia,
				Phase: domain.PhaseResults,
				Media: []domain.MediaItem{
					{
						NasaID:      "as11-40-5874",
						Title:       "Aldrin on the Moon",
						MediaType:   domain.MediaTypeImage,
						DateCreated: "1969-07-20",
						PreviewURL:  "https://images-assets.nasa.gov/thumb.jpg",
					},
				},
				Page:       1,
				TotalPages: 10,
			},
		}

		server, err := NewServer(&Ports{Explore: mockExplore})
		require.NoError(t, err)

		_, output, err := server.handleMediaSearch(ctx, nil, MediaSearchInput{Query: "moon"})

		require.NoError(t, err)
		require.Len(t, output.Items, 1)
		assert.Equal(t, "as11-40-5874", output.Items[0].NasaID)
		assert.Equal(t, "image", output.Items[0].MediaType)
		assert.Equal(t, 1, output.Page)
		assert.Equal(t, 10, output.TotalPages)
		assert.Equal(t, domain.ModeMedia, mockExplore.mode)
	})

	t.Run("later page triggers pagination", func(t *testing.T) {
		mockExplore := &mockExploreService{
			submitView: domain.ExploreView{Mode: domain.ModeMedia, Phase: domain.PhaseResults, Page: 1, TotalPages: 10},
			paginated:  domain.ExploreView{Mode: domain.ModeMedia, Phase: domain.PhaseResults, Page: 3, TotalPages: 10},
		}

		server, err := NewServer(&Ports{Explore: mockExplore})
		require.NoError(t, err)

		_, output, err := server.handleMediaSearch(ctx, nil, MediaSearchInput{Query: "moon", Page: 3})

		require.NoError(t, err)
		assert.Equal(t, 3, output.Page)
		assert.Equal(t, 3, mockExplore.lastPage)
	})

	t.Run("out of range page returns error", func(t *testing.T) {
		mockExplore := &mockExploreService{
			submitView:  domain.ExploreView{Mode: domain.ModeMedia, Phase: domain.PhaseResults, Page: 1, TotalPages: 2},
			paginateErr: domain.ErrPageOutOfRange,
		}

		server, err := NewServer(&Ports{Explore: mockExplore})
		require.NoError(t, err)

		_, _, err = server.handleMediaSearch(ctx, nil, MediaSearchInput{Query: "moon", Page: 99})

		assert.ErrorIs(t, err, domain.ErrPageOutOfRange)
	})

	t.Run("search failure returns error", func(t *testing.T) {
		mockExplore := &mockExploreService{
			submitView: domain.ExploreView{
				Mode:       domain.ModeMedia,
				Phase:      domain.PhaseError,
				ErrMessage: "media search failed",
			},
		}

		server, err := NewServer(&Ports{Explore: mockExplore})
		require.NoError(t, err)

		_, _, err = server.handleMediaSearch(ctx, nil, MediaSearchInput{Query: "moon"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "media search failed")
	})
}

func TestServer_handleHighRes(t *testing.T) {
	ctx := context.Background()

	t.Run("returns resolved url", func(t *testing.T) {
		mockExplore := &mockExploreService{highRes: "https://images-assets.nasa.gov/orig.jpg"}

		server, err := NewServer(&Ports{Explore: mockExplore})
		require.NoError(t, err)

		_, output, err := server.handleHighRes(ctx, nil, HighResInput{NasaID: "as11-40-5874"})

		require.NoError(t, err)
		assert.Equal(t, "https://images-assets.nasa.gov/orig.jpg", output.URL)
	})

	t.Run("empty url when unavailable", func(t *testing.T) {
		server, err := NewServer(&Ports{Explore: &mockExploreService{}})
		require.NoError(t, err)

		_, output, err := server.handleHighRes(ctx, nil, HighResInput{NasaID: "unknown"})

		require.NoError(t, err)
		assert.Empty(t, output.URL)
	})
}

func TestServer_handleApod(t *testing.T) {
	ctx := context.Background()

	entry := &domain.APODEntry{
		Title:       "Eagle Nebula",
		Date:        "2026-08-29",
		MediaType:   "image",
		URL:         "https://apod.nasa.gov/eagle.jpg",
		HDURL:       "https://apod.nasa.gov/eagle_hd.jpg",
		Explanation: "Pillars of gas and dust.",
	}

	t.Run("returns today's entry", func(t *testing.T) {
		mockApod := &mockApodService{entry: entry}

		server, err := NewServer(&Ports{Explore: &mockExploreService{}, Apod: mockApod})
		require.NoError(t, err)

		_, output, err := server.handleApod(ctx, nil, ApodInput{})

		require.NoError(t, err)
		assert.Equal(t, "Eagle Nebula", output.Title)
		assert.Equal(t, "https://apod.nasa.gov/eagle_hd.jpg", output.HDURL)
	})

	t.Run("fetches by date", func(t *testing.T) {
		mockApod := &mockApodService{entry: entry}

		server, err := NewServer(&Ports{Explore: &mockExploreService{}, Apod: mockApod})
		require.NoError(t, err)

		_, output, err := server.handleApod(ctx, nil, ApodInput{Date: "2026-08-29"})

		require.NoError(t, err)
		assert.Equal(t, "2026-08-29", mockApod.lastDate)
		assert.Equal(t, "Eagle Nebula", output.Title)
	})

	t.Run("missing apod service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{Explore: &mockExploreService{}})
		require.NoError(t, err)

		_, _, err = server.handleApod(ctx, nil, ApodInput{})

		assert.ErrorIs(t, err, ErrApodUnavailable)
	})

	t.Run("failed fetch returns error", func(t *testing.T) {
		mockApod := &mockApodService{}

		server, err := NewServer(&Ports{Explore: &mockExploreService{}, Apod: mockApod})
		require.NoError(t, err)

		_, _, err = server.handleApod(ctx, nil, ApodInput{})

		assert.ErrorIs(t, err, ErrApodUnavailable)
	})

	t.Run("by date failure returns error", func(t *testing.T) {
		mockApod := &mockApodService{err: errors.New("fetch failed")}

		server, err := NewServer(&Ports{Explore: &mockExploreService{}, Apod: mockApod})
		require.NoError(t, err)

		_, _, err = server.handleApod(ctx, nil, ApodInput{Date: "2026-08-29"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch failed")
	})
}
