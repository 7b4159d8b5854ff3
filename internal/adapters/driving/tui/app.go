package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/astroview-labs/astroview-cli/internal/adapters/driving/tui/keymap"
	"github.com/astroview-labs/astroview-cli/internal/adapters/driving/tui/messages"
	"github.com/astroview-labs/astroview-cli/internal/adapters/driving/tui/styles"
	"github.com/astroview-labs/astroview-cli/internal/adapters/driving/tui/views/apod"
	"github.com/astroview-labs/astroview-cli/internal/adapters/driving/tui/views/explore"
	"github.com/astroview-labs/astroview-cli/internal/adapters/driving/tui/views/menu"
	"github.com/astroview-labs/astroview-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports *Ports
	ctx   context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	menuView    *menu.View
	exploreView *explore.View
	apodView    *apod.View

	currentView messages.ViewType

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		menuView:    menu.NewView(s),
		exploreView: explore.NewView(s, km, ports.Explore),
		apodView:    apod.NewView(s, ports.Apod),
		currentView: messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.exploreView.WithContext(ctx)
	a.apodView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("astroview - NASA Explorer"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.menuView.SetDimensions(msg.Width, msg.Height)
		a.exploreView.SetDimensions(msg.Width, msg.Height)
		a.apodView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd
		case messages.ViewExplore:
			a.exploreView, cmd = a.exploreView.Update(msg)
			return a, cmd
		case messages.ViewAPOD:
			a.apodView, cmd = a.apodView.Update(msg)
			return a, cmd
		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.SearchCompleted, messages.HighResResolved:
		a.exploreView, cmd = a.exploreView.Update(msg)
		return a, cmd

	case messages.APODLoaded, messages.APODBatchLoaded:
		a.apodView, cmd = a.apodView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewExplore:
			a.exploreView.Reset()
			return a, a.exploreView.Init()
		case messages.ViewAPOD:
			return a, a.apodView.Init()
		default:
			return a, nil
		}

	case messages.ErrorOccurred:
		return a, nil
	}

	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewExplore:
		return a.exploreView.View()
	case messages.ViewAPOD:
		return a.apodView.View()
	case messages.ViewHelp:
		return a.helpView()
	}
	return ""
}

// helpView renders the keybinding help.
func (a *App) helpView() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")

	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-8s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Help.Render("[esc] Back to menu"))
	return b.String()
}

// CurrentView returns the active view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// RenderModel returns the explore view's current render model.
func (a *App) RenderModel() domain.ExploreView {
	return a.exploreView.RenderModel()
}
