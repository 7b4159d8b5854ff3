package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/astroview-labs/astroview-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for astroview resources.
	uriScheme = "astroview://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "catalog",
		Name:        "mission-catalog",
		Description: "Alphabetically grouped catalog of all OSDR missions",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "recent-searches",
		Name:        "recent-searches",
		Description: "Recent mission searches, most recent first",
		MIMEType:    "application/json",
	}, s.handleRecentResource)
}

// handleCatalogResource returns the grouped mission catalog.
func (s *Server) handleCatalogResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	view := s.ports.Explore.ShowCatalog(ctx)
	if view.Phase == domain.PhaseError {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	type groupInfo struct {
		Letter   string   `json:"letter"`
		Missions []string `json:"missions"`
	}

	groups := make([]groupInfo, len(view.Catalog))
	for i, g := range view.Catalog {
		groups[i] = groupInfo{Letter: g.Letter, Missions: g.Missions}
	}

	data, err := json.MarshalIndent(groups, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling catalog: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleRecentResource returns the recent-search list.
func (s *Server) handleRecentResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	recent := s.ports.Explore.View().Recent
	if recent == nil {
		recent = []string{}
	}

	data, err := json.MarshalIndent(recent, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling recent searches: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
