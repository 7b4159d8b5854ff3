package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/astroview-labs/astroview-cli/internal/core/domain"
)

// MissionInput is the input schema for the mission_lookup tool.
type MissionInput struct {
	Identifier string `json:"identifier" jsonschema:"the mission identifier to look up, e.g. 'Apollo 11'"`
}

// MissionOutput is the output schema for the mission_lookup tool.
type MissionOutput struct {
	Found       bool     `json:"found"`
	Identifier  string   `json:"identifier,omitempty"`
	Aliases     []string `json:"aliases,omitempty"`
	Vehicle     string   `json:"vehicle,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	StudyCount  int      `json:"study_count,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// MediaSearchInput is the input schema for the media_search tool.
type MediaSearchInput struct {
	Query string `json:"query" jsonschema:"free-text keywords to search the NASA image and video library"`
	Page  int    `json:"page,omitempty" jsonschema:"1-based page of results to return (default 1)"`
}

// MediaSearchOutput is the output schema for the media_search tool.
type MediaSearchOutput struct {
	Items      []MediaItemOutput `json:"items"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
}

// MediaItemOutput represents a single media search result.
type MediaItemOutput struct {
	NasaID      string `json:"nasa_id"`
	Title       string `json:"title"`
	MediaType   string `json:"media_type"`
	DateCreated string `json:"date_created"`
	PreviewURL  string `json:"preview_url,omitempty"`
	VideoURL    string `json:"video_url,omitempty"`
	CaptionsURL string `json:"captions_url,omitempty"`
}

// HighResInput is the input schema for the high_res_image tool.
type HighResInput struct {
	NasaID string `json:"nasa_id" jsonschema:"the NASA media ID of the image to resolve"`
}

// HighResOutput is the output schema for the high_res_image tool.
type HighResOutput struct {
	URL string `json:"url,omitempty"`
}

// ApodInput is the input schema for the picture_of_the_day tool.
type ApodInput struct {
	Date string `json:"date,omitempty" jsonschema:"optional date (YYYY-MM-DD or YYYY/MM/DD); defaults to today"`
}

// ApodOutput is the output schema for the picture_of_the_day tool.
type ApodOutput struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	MediaType   string `json:"media_type"`
	URL         string `json:"url"`
	HDURL       string `json:"hdurl,omitempty"`
	Copyright   string `json:"copyright,omitempty"`
	Explanation string `json:"explanation"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "mission_lookup",
		Description: "Look up an OSDR mission by identifier, with fuzzy suggestions on a miss",
	}, s.handleMissionLookup)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "media_search",
		Description: "Search the NASA image and video library by keywords",
	}, s.handleMediaSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "high_res_image",
		Description: "Resolve the high-resolution URL for a NASA library image",
	}, s.handleHighRes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "picture_of_the_day",
		Description: "Fetch the Astronomy Picture of the Day, optionally for a past date",
	}, s.handleApod)
}

// handleMissionLookup handles the mission_lookup tool invocation.
func (s *Server) handleMissionLookup(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MissionInput,
) (*mcp.CallToolResult, MissionOutput, error) {
	s.ports.Explore.SwitchMode(domain.ModeMission)
	view := s.ports.Explore.Submit(ctx, input.Identifier)

	switch view.Phase {
	case domain.PhaseResults:
		record := view.Mission
		return nil, MissionOutput{
			Found:      true,
			Identifier: record.Identifier,
			Aliases:    record.Aliases,
			Vehicle:    record.VehicleName(),
			StartDate:  record.StartDate,
			EndDate:    record.EndDateOrCurrent(),
			StudyCount: record.StudyCount(),
		}, nil
	case domain.PhaseSuggestions:
		return nil, MissionOutput{Suggestions: view.Suggestions}, nil
	case domain.PhaseError:
		return nil, MissionOutput{}, errors.New(view.ErrMessage)
	default:
		return nil, MissionOutput{}, nil
	}
}

// handleMediaSearch handles the media_search tool invocation.
func (s *Server) handleMediaSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MediaSearchInput,
) (*mcp.CallToolResult, MediaSearchOutput, error) {
	s.ports.Explore.SwitchMode(domain.ModeMedia)
	view := s.ports.Explore.Submit(ctx, input.Query)

	if input.Page > 1 {
		paged, err := s.ports.Explore.Paginate(ctx, input.Page)
		if err != nil {
			return nil, MediaSearchOutput{}, err
		}
		view = paged
	}

	if view.Phase == domain.PhaseError {
		return nil, MediaSearchOutput{}, errors.New(view.ErrMessage)
	}

	output := MediaSearchOutput{
		Items:      make([]MediaItemOutput, len(view.Media)),
		Page:       view.Page,
		TotalPages: view.TotalPages,
	}
	for i := range view.Media {
		item := &view.Media[i]
		output.Items[i] = MediaItemOutput{
			NasaID:      item.NasaID,
			Title:       item.Title,
			MediaType:   string(item.MediaType),
			DateCreated: item.DateCreated,
			PreviewURL:  item.PreviewURL,
			VideoURL:    item.VideoURL,
			CaptionsURL: item.CaptionsURL,
		}
	}

	return nil, output, nil
}

// handleHighRes handles the high_res_image tool invocation.
func (s *Server) handleHighRes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HighResInput,
) (*mcp.CallToolResult, HighResOutput, error) {
	url := s.ports.Explore.HighResImage(ctx, input.NasaID)
	return nil, HighResOutput{URL: url}, nil
}

// handleApod handles the picture_of_the_day tool invocation.
func (s *Server) handleApod(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ApodInput,
) (*mcp.CallToolResult, ApodOutput, error) {
	if s.ports.Apod == nil {
		return nil, ApodOutput{}, ErrApodUnavailable
	}

	var entry *domain.APODEntry
	if input.Date != "" {
		fetched, err := s.ports.Apod.ByDate(ctx, input.Date)
		if err != nil {
			return nil, ApodOutput{}, err
		}
		entry = fetched
	} else {
		entry = s.ports.Apod.Today(ctx)
		if entry == nil {
			return nil, ApodOutput{}, ErrApodUnavailable
		}
	}

	return nil, ApodOutput{
		Title:       entry.Title,
		Date:        entry.Date,
		MediaType:   entry.MediaType,
		URL:         entry.URL,
		HDURL:       entry.HDURL,
		Copyright:   entry.Copyright,
		Explanation: entry.Explanation,
	}, nil
}
