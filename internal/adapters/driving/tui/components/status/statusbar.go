// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/astroview-labs/astroview-cli/internal/adapters/driving/tui/keymap"
	"github.com/astroview-labs/astroview-cli/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateReady     State = "ready"
	StateSearching State = "searching"
	StateError     State = "error"
	StateResults   State = "results"
)

// Bar displays application status and keybinding hints.
type Bar struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	state       State
	message     string
	mode        string
	page        int
	totalPages  int
	resultCount int
	width       int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	padding := s.width - leftLen - rightLen
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the left side of the status bar.
func (s *Bar) renderLeft() string {
	prefix := ""
	if s.mode != "" {
		prefix = s.styles.Subtitle.Render(s.mode) + " "
	}

	switch s.state {
	case StateSearching:
		return prefix + s.styles.Muted.Render("Searching...")
	case StateError:
		if s.message != "" {
			return prefix + s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return prefix + s.styles.Error.Render("Error")
	case StateResults:
		text := fmt.Sprintf("%d results", s.resultCount)
		if s.totalPages > 1 {
			text = fmt.Sprintf("%s, page %d/%d", text, s.page, s.totalPages)
		}
		return prefix + s.styles.Normal.Render(text)
	case StateReady:
	}
	if s.message != "" {
		return prefix + s.styles.Normal.Render(s.message)
	}
	return prefix + s.styles.Muted.Render("Ready")
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	if s.state == StateResults && s.resultCount > 0 {
		bindings = s.keymap.ResultsHelp()
	} else {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the displayed state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets the status message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// SetMode sets the displayed search mode label.
func (s *Bar) SetMode(mode string) {
	s.mode = mode
}

// SetResultCount sets the displayed result count.
func (s *Bar) SetResultCount(count int) {
	s.resultCount = count
}

// SetPagination sets the displayed page indicator.
func (s *Bar) SetPagination(page, totalPages int) {
	s.page = page
	s.totalPages = totalPages
}

// SetWidth sets the bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}
