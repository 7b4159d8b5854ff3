// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/astroview-labs/astroview-cli/internal/adapters/driving/tui/styles"
	"github.com/astroview-labs/astroview-cli/internal/core/domain"
)

// MediaList displays media search results in a navigable list.
type MediaList struct {
	items    []domain.MediaItem
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewMediaList creates a new media list component.
func NewMediaList(s *styles.Styles) *MediaList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &MediaList{
		items:    nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the media list.
func (m *MediaList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (m *MediaList) Update(msg tea.Msg) (*MediaList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			m.MoveUp()
		case tea.KeyDown:
			m.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			m.MoveUp()
		case "j":
			m.MoveDown()
		}
	}
	return m, nil
}

// View renders the media list.
func (m *MediaList) View() string {
	if len(m.items) == 0 {
		return m.styles.Muted.Render("No results")
	}

	lines := make([]string, 0, len(m.items)*2+2)

	header := m.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(m.items)))
	lines = append(lines, header, "")

	// Each item takes 2 lines (title + link), keep the selection visible
	visibleCount := (m.height - 4) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if m.selected >= visibleCount {
		start = m.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(m.items) {
		end = len(m.items)
	}

	for i := start; i < end; i++ {
		lines = append(lines, m.renderItem(i, &m.items[i]))
	}

	return strings.Join(lines, "\n")
}

// renderItem formats a single media item with its link line.
func (m *MediaList) renderItem(index int, item *domain.MediaItem) string {
	indicator := "  "
	if index == m.selected {
		indicator = "> "
	}

	title := item.Title
	if title == "" {
		title = "(Untitled)"
	}

	maxTitleLen := m.width - 14
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	tag := fmt.Sprintf("[%s]", item.MediaType)

	var titleLine string
	if index == m.selected {
		titleLine = m.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxTitleLen, title, tag))
	} else {
		titleLine = m.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxTitleLen, title)) +
			m.styles.Muted.Render(tag)
	}

	link := item.PreviewURL
	switch {
	case item.VideoAvailable():
		link = item.VideoURL
	case item.MediaType == domain.MediaTypeVideo:
		link = "video unavailable"
	}
	linkLine := "    " + m.styles.Muted.Render(link)

	return titleLine + "\n" + linkLine
}

// SetItems replaces the list contents and resets the selection.
func (m *MediaList) SetItems(items []domain.MediaItem) {
	m.items = items
	m.selected = 0
}

// Items returns the current list contents.
func (m *MediaList) Items() []domain.MediaItem {
	return m.items
}

// SelectedItem returns the currently selected item, or nil when empty.
func (m *MediaList) SelectedItem() *domain.MediaItem {
	if m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return &m.items[m.selected]
}

// SelectedIndex returns the selected index.
func (m *MediaList) SelectedIndex() int {
	return m.selected
}

// MoveUp moves the selection up.
func (m *MediaList) MoveUp() {
	if m.selected > 0 {
		m.selected--
	}
}

// MoveDown moves the selection down.
func (m *MediaList) MoveDown() {
	if m.selected < len(m.items)-1 {
		m.selected++
	}
}

// SetDimensions updates the rendering size.
func (m *MediaList) SetDimensions(width, height int) {
	m.width = width
	m.height = height
}
