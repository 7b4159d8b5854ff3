package domain

// SearchMode selects which backend a search targets. Exactly one mode is
// active at a time; switching modes clears results, pagination, and the
// query text.
type SearchMode int

const (
	// ModeMission searches the OSDR mission catalog.
	ModeMission SearchMode = iota
	// ModeMedia searches the NASA image and video library.
	ModeMedia
)

// String returns the string representation of the search mode.
func (m SearchMode) String() string {
	switch m {
	case ModeMission:
		return "mission"
	case ModeMedia:
		return "media"
	default:
		return "unknown"
	}
}

// Phase is the orchestrator's rendering phase.
type Phase int

const (
	// PhaseIdle means no search has been submitted yet.
	PhaseIdle Phase = iota
	// PhaseLoading means a search is in flight.
	PhaseLoading
	// PhaseResults means the last search produced a payload.
	PhaseResults
	// PhaseSuggestions means a mission lookup missed and near-matches are shown.
	PhaseSuggestions
	// PhaseCatalog means the full alphabetical mission catalog is shown.
	PhaseCatalog
	// PhaseError means a transport or HTTP failure is shown.
	PhaseError
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseResults:
		return "results"
	case PhaseSuggestions:
		return "suggestions"
	case PhaseCatalog:
		return "catalog"
	case PhaseError:
		return "error"
	}
	return "unknown"
}

// ExploreView is the render model the orchestrator hands to the
// presentation layer. It is a value snapshot: mutating it does not
// affect orchestrator state.
type ExploreView struct {
	// Mode is the active search mode.
	Mode SearchMode

	// Phase is the current rendering phase.
	Phase Phase

	// Query is the normalized text of the last submitted search.
	Query string

	// Mission is the record shown in mission-mode results.
	Mission *MissionRecord

	// Media and the pagination fields are populated in media mode.
	Media      []MediaItem
	Page       int
	TotalPages int

	// Suggestions holds fuzzy near-matches after a missed mission lookup.
	Suggestions []string

	// Catalog holds the grouped mission catalog in the catalog phase.
	Catalog []CatalogGroup

	// Recent is the bounded recent-search list, most recent first.
	Recent []string

	// ErrMessage carries the user-facing failure text in the error phase.
	ErrMessage string
}

// CanPaginate reports whether pagination controls apply: media mode with
// more than one page.
func (v *ExploreView) CanPaginate() bool {
	return v.Mode == ModeMedia && v.TotalPages > 1
}

// HasPrevPage reports whether a previous page exists.
func (v *ExploreView) HasPrevPage() bool {
	return v.CanPaginate() && v.Page > 1
}

// HasNextPage reports whether a next page exists.
func (v *ExploreView) HasNextPage() bool {
	return v.CanPaginate() && v.Page < v.TotalPages
}
