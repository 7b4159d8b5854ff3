// Package apod provides the picture-of-the-day view for the TUI.
package apod

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/astroview-labs/astroview-cli/internal/adapters/driving/tui/messages"
	"github.com/astroview-labs/astroview-cli/internal/adapters/driving/tui/styles"
	"github.com/astroview-labs/astroview-cli/internal/core/domain"
	"github.com/astroview-labs/astroview-cli/internal/core/ports/driving"
)

// PlaceholderImageURL is shown when the picture of the day cannot be
// fetched; the view stays usable either way.
const PlaceholderImageURL = "https://apod.nasa.gov/apod/image/placeholder.jpg"

// View represents the picture-of-the-day view.
type View struct {
	styles *styles.Styles
	apod   driving.ApodService
	ctx    context.Context

	entry   *domain.APODEntry
	batch   []domain.APODEntry
	loaded  bool
	failed  bool
	width   int
	height  int
	ready   bool
	loading bool
}

// NewView creates a new picture-of-the-day view.
func NewView(s *styles.Styles, apod driving.ApodService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		apod:   apod,
		ctx:    context.Background(),
		width:  80,
		height: 24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init fetches today's entry.
func (v *View) Init() tea.Cmd {
	if v.loaded || v.apod == nil {
		return nil
	}
	v.loading = true
	return func() tea.Msg {
		return messages.APODLoaded{Entry: v.apod.Today(v.ctx)}
	}
}

// Update handles messages for the view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.APODLoaded:
		v.loading = false
		v.loaded = true
		v.entry = msg.Entry
		v.failed = msg.Entry == nil
		v.batch = nil
		return v, nil

	case messages.APODBatchLoaded:
		v.loading = false
		if msg.Err != nil {
			v.failed = true
			return v, nil
		}
		v.batch = msg.Entries
		return v, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		if msg.String() == "r" && v.apod != nil {
			v.loading = true
			return v, func() tea.Msg {
				entries, err := v.apod.Random(v.ctx)
				return messages.APODBatchLoaded{Entries: entries, Err: err}
			}
		}
	}

	return v, nil
}

// View renders the picture-of-the-day view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Picture of the Day"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading..."))
	case len(v.batch) > 0:
		for i := range v.batch {
			b.WriteString(v.renderEntry(&v.batch[i]))
			b.WriteString("\n")
		}
	case v.failed:
		b.WriteString(v.styles.Warning.Render("Today's picture is unavailable."))
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(PlaceholderImageURL))
	case v.entry != nil:
		b.WriteString(v.renderEntry(v.entry))
	default:
		b.WriteString(v.styles.Muted.Render("Nothing loaded yet."))
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[r] Random batch  [esc] Back"))
	return b.String()
}

func (v *View) renderEntry(entry *domain.APODEntry) string {
	lines := []string{
		v.styles.Subtitle.Render(fmt.Sprintf("%s (%s)", entry.Title, entry.Date)),
	}
	if entry.Copyright != "" {
		lines = append(lines, v.styles.Muted.Render("© "+entry.Copyright))
	}
	if entry.IsVideo() {
		lines = append(lines, v.styles.Normal.Render("Video: "+entry.URL))
	} else {
		lines = append(lines, v.styles.Normal.Render("Image: "+entry.URL))
		if entry.HDURL != "" {
			lines = append(lines, v.styles.Muted.Render("HD:    "+entry.HDURL))
		}
	}
	if entry.Explanation != "" {
		lines = append(lines, "", v.styles.Normal.Render(entry.Explanation))
	}
	return strings.Join(lines, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Entry returns the loaded entry (for tests).
func (v *View) Entry() *domain.APODEntry {
	return v.entry
}
