// Package explore provides the combined mission and media search view
// for the TUI.
package explore

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/astroview-labs/astroview-cli/internal/adapters/driving/tui/components/input"
	"github.com/astroview-labs/astroview-cli/internal/adapters/driving/tui/components/list"
	"github.com/astroview-labs/astroview-cli/internal/adapters/driving/tui/components/status"
	"github.com/astroview-labs/astroview-cli/internal/adapters/driving/tui/keymap"
	"github.com/astroview-labs/astroview-cli/internal/adapters/driving/tui/messages"
	"github.com/astroview-labs/astroview-cli/internal/adapters/driving/tui/styles"
	"github.com/astroview-labs/astroview-cli/internal/core/domain"
	"github.com/astroview-labs/astroview-cli/internal/core/ports/driving"
)

// View represents the explore view: a query input, the mode indicator,
// and a result area that renders whatever phase the orchestrator is in.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.MediaList
	statusbar *status.Bar

	explore driving.ExploreService
	ctx     context.Context

	// render is the orchestrator's latest render model; everything the
	// view paints comes from here, never from retained widget state.
	render domain.ExploreView

	// suggestIdx is the selection inside the fuzzy-suggestion list.
	suggestIdx int

	// recentIdx is the highlight inside the recent-search list; -1
	// means nothing is highlighted and enter submits the input.
	recentIdx int

	// live holds autocomplete matches for the text being typed.
	live []string

	// hiresID and hiresURL hold the last resolved high-resolution
	// lookup; an empty URL with a set ID means no asset was found.
	hiresID  string
	hiresURL string

	width      int
	height     int
	ready      bool
	focusInput bool
}

// NewView creates a new explore view.
func NewView(s *styles.Styles, km *keymap.KeyMap, explore driving.ExploreService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:     s,
		keymap:     km,
		input:      input.NewSearchInput(s),
		list:       list.NewMediaList(s),
		statusbar:  status.NewBar(s, km),
		explore:    explore,
		ctx:        context.Background(),
		recentIdx:  -1,
		width:      80,
		height:     24,
		focusInput: true,
	}
	if explore != nil {
		v.render = explore.View()
	}
	v.statusbar.SetMode(v.render.Mode.String())
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the explore view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		v.applyRenderModel(msg.View)
		return v, nil

	case messages.HighResResolved:
		v.hiresID = msg.NasaID
		v.hiresURL = msg.URL
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	// Tab switches search mode from anywhere; the orchestrator resets
	// query, results, and pagination, and so does the widget state.
	if keymap.Matches(msg.String(), v.keymap.Mode) {
		next := domain.ModeMedia
		if v.render.Mode == domain.ModeMedia {
			next = domain.ModeMission
		}
		v.applyRenderModel(v.explore.SwitchMode(next))
		v.input.SetValue("")
		v.live = nil
		v.focusInput = true
		v.input.Focus()
		return v, nil
	}

	// Ctrl+x empties the recent-search list from the idle phase.
	if keymap.Matches(msg.String(), v.keymap.ClearRecent) && v.render.Phase == domain.PhaseIdle {
		v.applyRenderModel(v.explore.ClearHistory(v.ctx))
		return v, nil
	}

	// Arrow keys while idle move the recent-search highlight instead of
	// feeding the input.
	if v.focusInput && v.render.Phase == domain.PhaseIdle && len(v.render.Recent) > 0 {
		switch msg.Type {
		case tea.KeyUp:
			v.moveRecent(-1)
			return v, nil
		case tea.KeyDown:
			v.moveRecent(1)
			return v, nil
		}
	}

	if msg.Type == tea.KeyEnter && v.focusInput {
		query := v.input.Value()
		if query == "" {
			// Enter on a highlighted recent entry re-runs that search.
			if v.recentIdx >= 0 && v.recentIdx < len(v.render.Recent) {
				recall := v.render.Recent[v.recentIdx]
				v.input.SetValue(recall)
				v.statusbar.SetState(status.StateSearching)
				v.focusInput = false
				v.input.Blur()
				v.live = nil
				return v, v.submit(recall)
			}
			return v, nil
		}
		v.statusbar.SetState(status.StateSearching)
		v.focusInput = false
		v.input.Blur()
		v.live = nil
		return v, v.submit(query)
	}

	if v.focusInput {
		v.input, _ = v.input.Update(msg)
		v.live = v.explore.Autocomplete(v.input.Value())
		v.recentIdx = -1
		return v, nil
	}

	// Enter on a fuzzy suggestion resubmits it as the query.
	if msg.Type == tea.KeyEnter && v.render.Phase == domain.PhaseSuggestions {
		if v.suggestIdx < len(v.render.Suggestions) {
			suggestion := v.render.Suggestions[v.suggestIdx]
			v.input.SetValue(suggestion)
			v.statusbar.SetState(status.StateSearching)
			return v, v.submit(suggestion)
		}
		return v, nil
	}

	switch {
	case keymap.Matches(msg.String(), v.keymap.PrevPage):
		return v, v.paginate(v.render.Page - 1)
	case keymap.Matches(msg.String(), v.keymap.NextPage):
		return v, v.paginate(v.render.Page + 1)
	case keymap.Matches(msg.String(), v.keymap.Catalog):
		return v, v.showCatalog()
	case keymap.Matches(msg.String(), v.keymap.HighRes):
		return v, v.resolveHighRes()
	case keymap.Matches(msg.String(), v.keymap.NewSearch):
		v.focusInput = true
		v.input.Focus()
		v.input.SetValue("")
		v.live = nil
		return v, nil
	case keymap.Matches(msg.String(), v.keymap.Up):
		v.moveSelection(-1)
		return v, nil
	case keymap.Matches(msg.String(), v.keymap.Down):
		v.moveSelection(1)
		return v, nil
	}

	return v, nil
}

// submit runs a search through the orchestrator.
func (v *View) submit(query string) tea.Cmd {
	return func() tea.Msg {
		return messages.SearchCompleted{View: v.explore.Submit(v.ctx, query)}
	}
}

// paginate requests another media page. Requests the controls cannot
// produce are filtered here, mirroring disabled pagination buttons.
func (v *View) paginate(page int) tea.Cmd {
	if !v.render.CanPaginate() || page < 1 || page > v.render.TotalPages {
		return nil
	}
	v.statusbar.SetState(status.StateSearching)
	return func() tea.Msg {
		fresh, err := v.explore.Paginate(v.ctx, page)
		if err != nil {
			return messages.SearchCompleted{View: v.explore.View()}
		}
		return messages.SearchCompleted{View: fresh}
	}
}

// resolveHighRes looks up the original-size URL for the selected image
// result. Videos and empty lists have nothing to resolve.
func (v *View) resolveHighRes() tea.Cmd {
	if v.render.Phase != domain.PhaseResults || v.render.Mode != domain.ModeMedia {
		return nil
	}
	item := v.list.SelectedItem()
	if item == nil || item.MediaType != domain.MediaTypeImage {
		return nil
	}

	id := item.NasaID
	return func() tea.Msg {
		return messages.HighResResolved{NasaID: id, URL: v.explore.HighResImage(v.ctx, id)}
	}
}

// showCatalog requests the full mission catalog.
func (v *View) showCatalog() tea.Cmd {
	v.statusbar.SetState(status.StateSearching)
	return func() tea.Msg {
		return messages.SearchCompleted{View: v.explore.ShowCatalog(v.ctx)}
	}
}

// moveRecent moves the highlight over the recent-search list.
func (v *View) moveRecent(delta int) {
	next := v.recentIdx + delta
	if next >= 0 && next < len(v.render.Recent) {
		v.recentIdx = next
	}
}

// moveSelection navigates whichever list the current phase shows.
func (v *View) moveSelection(delta int) {
	switch v.render.Phase {
	case domain.PhaseSuggestions:
		next := v.suggestIdx + delta
		if next >= 0 && next < len(v.render.Suggestions) {
			v.suggestIdx = next
		}
	case domain.PhaseResults:
		if delta < 0 {
			v.list.MoveUp()
		} else {
			v.list.MoveDown()
		}
	default:
	}
}

// applyRenderModel replaces the view's state with a fresh render model.
func (v *View) applyRenderModel(render domain.ExploreView) {
	v.render = render
	v.suggestIdx = 0
	v.recentIdx = -1
	v.hiresID = ""
	v.hiresURL = ""
	v.statusbar.SetMode(render.Mode.String())
	v.statusbar.SetPagination(render.Page, render.TotalPages)

	switch render.Phase {
	case domain.PhaseResults:
		v.statusbar.SetState(status.StateResults)
		if render.Mode == domain.ModeMedia {
			v.list.SetItems(render.Media)
			v.statusbar.SetResultCount(len(render.Media))
		} else {
			v.statusbar.SetResultCount(1)
		}
	case domain.PhaseError:
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(render.ErrMessage)
		v.list.SetItems(nil)
	case domain.PhaseLoading:
		v.statusbar.SetState(status.StateSearching)
	default:
		v.statusbar.SetState(status.StateReady)
		v.statusbar.SetMessage("")
		v.statusbar.SetResultCount(0)
		v.list.SetItems(nil)
	}
}

// View renders the explore view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{
		v.styles.Title.Render("Explore"),
		v.styles.Muted.Render(fmt.Sprintf("Mode: %s (tab to switch)", v.render.Mode)),
		v.input.View(),
	}
	if v.focusInput && len(v.live) > 0 {
		sections = append(sections, v.renderLive())
	}
	sections = append(sections,
		"",
		v.renderPhase(),
		"",
		v.statusbar.View(),
	)
	return strings.Join(sections, "\n")
}

// renderPhase paints the result area for the current phase.
func (v *View) renderPhase() string {
	switch v.render.Phase {
	case domain.PhaseIdle:
		return v.renderRecent()
	case domain.PhaseLoading:
		return v.styles.Muted.Render("Searching...")
	case domain.PhaseResults:
		if v.render.Mode == domain.ModeMedia {
			return v.renderMediaResults()
		}
		return v.renderMission()
	case domain.PhaseSuggestions:
		return v.renderSuggestions()
	case domain.PhaseCatalog:
		return v.renderCatalog(v.render.Catalog)
	case domain.PhaseError:
		msg := v.styles.Error.Render("Error: " + v.render.ErrMessage)
		if len(v.render.Catalog) > 0 {
			return msg + "\n\n" + v.renderCatalog(v.render.Catalog)
		}
		return msg
	}
	return ""
}

// renderLive paints autocomplete matches under the input while typing.
func (v *View) renderLive() string {
	lines := make([]string, 0, len(v.live))
	for _, match := range v.live {
		lines = append(lines, "  "+v.styles.Muted.Render(match))
	}
	return strings.Join(lines, "\n")
}

// renderMediaResults paints the media list plus the outcome of the
// last high-resolution lookup, when one was made.
func (v *View) renderMediaResults() string {
	out := v.list.View()
	if v.hiresID == "" {
		return out
	}
	if v.hiresURL == "" {
		return out + "\n\n" + v.styles.Muted.Render("No high-resolution asset available.")
	}
	return out + "\n\n" + v.styles.Normal.Render(fmt.Sprintf("Hi-res (%s): %s", v.hiresID, v.hiresURL))
}

func (v *View) renderRecent() string {
	if len(v.render.Recent) == 0 {
		return v.styles.Muted.Render("Type a query and press enter.")
	}

	lines := []string{v.styles.Subtitle.Render("Recent searches"), ""}
	for i, query := range v.render.Recent {
		cursor := "  "
		style := v.styles.Normal
		if i == v.recentIdx {
			cursor = "> "
			style = v.styles.Selected
		}
		lines = append(lines, cursor+style.Render(query))
	}
	return strings.Join(lines, "\n")
}

func (v *View) renderMission() string {
	mission := v.render.Mission
	if mission == nil {
		return v.styles.Muted.Render("No results")
	}

	lines := []string{
		v.styles.Subtitle.Render(mission.Identifier),
		"",
		fmt.Sprintf("  Vehicle:  %s", mission.VehicleName()),
		fmt.Sprintf("  Launched: %s", mission.StartDate),
		fmt.Sprintf("  Ended:    %s", mission.EndDateOrCurrent()),
		fmt.Sprintf("  Studies:  %d", mission.StudyCount()),
	}
	if len(mission.Aliases) > 0 {
		lines = append(lines, fmt.Sprintf("  Aliases:  %s", strings.Join(mission.Aliases, ", ")))
	}
	return strings.Join(lines, "\n")
}

func (v *View) renderSuggestions() string {
	lines := []string{
		v.styles.Warning.Render(fmt.Sprintf("No mission matches %q. Did you mean:", v.render.Query)),
		"",
	}
	for i, suggestion := range v.render.Suggestions {
		cursor := "  "
		style := v.styles.Normal
		if i == v.suggestIdx {
			cursor = "> "
			style = v.styles.Selected
		}
		lines = append(lines, cursor+style.Render(suggestion))
	}
	return strings.Join(lines, "\n")
}

func (v *View) renderCatalog(groups []domain.CatalogGroup) string {
	lines := []string{v.styles.Subtitle.Render("Mission catalog"), ""}
	for _, group := range groups {
		lines = append(lines, v.styles.Title.Render(group.Letter))
		for _, mission := range group.Missions {
			lines = append(lines, "  "+v.styles.Normal.Render(mission))
		}
	}
	return strings.Join(lines, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-8)
	v.statusbar.SetWidth(width)
}

// Reset returns the view to a fresh input state without touching the
// orchestrator.
func (v *View) Reset() {
	v.focusInput = true
	v.input.Focus()
	v.input.SetValue("")
	v.live = nil
	v.recentIdx = -1
	if v.explore != nil {
		v.applyRenderModel(v.explore.View())
	}
}

// RenderModel returns the current render model (for tests and the app).
func (v *View) RenderModel() domain.ExploreView {
	return v.render
}

// Query returns the current input value.
func (v *View) Query() string {
	return v.input.Value()
}
