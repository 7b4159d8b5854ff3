// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/astroview-labs/astroview-cli/internal/core/domain"
)

// SearchCompleted carries the orchestrator's fresh render model back
// to the view after a submit, pagination, or catalog request.
type SearchCompleted struct {
	View domain.ExploreView
}

// APODLoaded carries a picture-of-the-day fetch result. Entry is nil
// when the fetch failed; the view falls back to a placeholder.
type APODLoaded struct {
	Entry *domain.APODEntry
	Err   error
}

// APODBatchLoaded carries a batch of random entries.
type APODBatchLoaded struct {
	Entries []domain.APODEntry
	Err     error
}

// HighResResolved carries a resolved high-resolution image URL.
type HighResResolved struct {
	NasaID string
	URL    string
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewExplore is the search input and results view.
	ViewExplore
	// ViewAPOD is the picture-of-the-day view.
	ViewAPOD
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewExplore:
		return "explore"
	case ViewAPOD:
		return "apod"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}
