package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/lexi-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/lexi-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/lexi-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lexi-cli/internal/adapters/driving/tui/views/lookup"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings shared by all views.
	keymap *keymap.KeyMap

	// lookupView is the query and entry view.
	lookupView *lookup.View

	// reloads delivers configuration change notifications, if watched.
	reloads <-chan error

	// currentView tracks which view is active.
	currentView messages.ViewType

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// AppOption configures an App at construction.
type AppOption func(*appConfig)

type appConfig struct {
	theme *styles.Theme
}

// WithTheme renders the app with theme instead of the default palette.
func WithTheme(theme *styles.Theme) AppOption {
	return func(c *appConfig) {
		c.theme = theme
	}
}

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports, opts ...AppOption) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	var cfg appConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	s := styles.NewStyles(cfg.theme)
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		lookupView:  lookup.NewView(s, km, ports.Lookup, ports.Actions),
		currentView: messages.ViewLookup,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.lookupView.WithContext(ctx)
	return a
}

// WithReloads makes the app announce every value received on ch as a
// configuration reload. A nil error means the new settings were applied.
func (a *App) WithReloads(ch <-chan error) *App {
	a.reloads = ch
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("lexi - Dictionary"),
		a.lookupView.Init(),
		a.waitForReload(),
	)
}

// waitForReload blocks on the reload channel and converts the next value into a message.
func (a *App) waitForReload() tea.Cmd {
	if a.reloads == nil {
		return nil
	}
	ch := a.reloads
	return func() tea.Msg {
		err, ok := <-ch
		if !ok {
			return nil
		}
		return messages.ConfigReloaded{Err: err}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), a.keymap.Quit) {
			return a, tea.Quit
		}

		if a.currentView == messages.ViewHelp {
			if keymap.Matches(msg.String(), a.keymap.Back) || keymap.Matches(msg.String(), a.keymap.Help) {
				a.currentView = messages.ViewLookup
			}
			return a, nil
		}

		a.lookupView, cmd = a.lookupView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewLookup {
			a.lookupView.Reset()
		}
		return a, nil

	case messages.ConfigReloaded:
		if msg.Err != nil {
			a.lookupView.SetNotice("Settings reload failed: " + msg.Err.Error())
		} else {
			a.lookupView.SetNotice("Settings reloaded")
		}
		return a, a.waitForReload()

	case messages.Quit:
		return a, tea.Quit
	}

	// Lookup results and action outcomes belong to the lookup view even
	// while help is showing.
	a.lookupView, cmd = a.lookupView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	if a.currentView == messages.ViewHelp {
		return a.viewHelp()
	}
	return a.lookupView.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")

	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-10s %s\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}

	b.WriteString("Typed characters always go to the input; press tab or look up a\n")
	b.WriteString("word to use the entry keys.\n")

	if a.ports.Settings != nil {
		if settings, err := a.ports.Settings.Get(); err == nil {
			b.WriteString("\n")
			b.WriteString(a.styles.Subtitle.Render("Dictionary"))
			b.WriteString("\n")
			fmt.Fprintf(&b, "  %-10s %s\n", "service", settings.Dictionary.BaseURL)
			if settings.Dictionary.RateLimit > 0 {
				fmt.Fprintf(&b, "  %-10s %.2f/s\n", "rate", settings.Dictionary.RateLimit)
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("[esc] back"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// LookupView returns the lookup view.
func (a *App) LookupView() *lookup.View {
	return a.lookupView
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.lookupView.SetDimensions(width, height)
}
