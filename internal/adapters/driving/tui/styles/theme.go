// Package styles provides the colour theme and lipgloss styles for the lexi TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette the styles are built from.
type Theme struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Border    lipgloss.Color

	// Bar is the status bar background.
	Bar lipgloss.Color
}

// DarkTheme is the palette for dark terminal backgrounds.
func DarkTheme() *Theme {
	return &Theme{
		Primary:   lipgloss.Color("#60A5FA"),
		Secondary: lipgloss.Color("#2DD4BF"),
		Text:      lipgloss.Color("#E5E7EB"),
		Muted:     lipgloss.Color("#9CA3AF"),
		Success:   lipgloss.Color("#86EFAC"),
		Warning:   lipgloss.Color("#FDE68A"),
		Error:     lipgloss.Color("#FCA5A5"),
		Border:    lipgloss.Color("#4B5563"),
		Bar:       lipgloss.Color("#1F2937"),
	}
}

// LightTheme is the palette for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		Primary:   lipgloss.Color("#1D4ED8"),
		Secondary: lipgloss.Color("#0F766E"),
		Text:      lipgloss.Color("#111827"),
		Muted:     lipgloss.Color("#6B7280"),
		Success:   lipgloss.Color("#15803D"),
		Warning:   lipgloss.Color("#B45309"),
		Error:     lipgloss.Color("#B91C1C"),
		Border:    lipgloss.Color("#D1D5DB"),
		Bar:       lipgloss.Color("#F3F4F6"),
	}
}

// DefaultTheme returns the dark palette.
func DefaultTheme() *Theme {
	return DarkTheme()
}

// ThemeFor picks the palette matching the terminal background.
func ThemeFor(darkBackground bool) *Theme {
	if darkBackground {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Chrome.
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Selected   lipgloss.Style
	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Help       lipgloss.Style
	Border     lipgloss.Style

	// Outcomes.
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	// Entry rendering.
	Label        lipgloss.Style
	Headword     lipgloss.Style
	Phonetic     lipgloss.Style
	PartOfSpeech lipgloss.Style
	Example      lipgloss.Style
	Related      lipgloss.Style
}

// NewStyles creates styles from a theme. A nil theme uses DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	text := lipgloss.NewStyle().Foreground(theme.Text)

	return &Styles{
		theme: theme,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary),
		Normal:   text,
		Muted:    lipgloss.NewStyle().Foreground(theme.Muted),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Bar).
			Background(theme.Primary),
		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Bar).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Foreground(theme.Muted),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		Error:   lipgloss.NewStyle().Foreground(theme.Error),
		Success: lipgloss.NewStyle().Foreground(theme.Success),
		Warning: lipgloss.NewStyle().Foreground(theme.Warning),

		Label:        lipgloss.NewStyle().Foreground(theme.Secondary),
		Headword:     text.Bold(true).Underline(true),
		Phonetic:     lipgloss.NewStyle().Foreground(theme.Primary),
		PartOfSpeech: lipgloss.NewStyle().Bold(true).Italic(true).Foreground(theme.Secondary),
		Example:      lipgloss.NewStyle().Italic(true).Foreground(theme.Muted),
		Related:      text,
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
