// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/lexi-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/lexi-cli/internal/adapters/driving/tui/styles"
)

// State represents the current lookup state for display.
type State string

const (
	StateReady     State = "ready"
	StateLookingUp State = "looking_up"
	StateError     State = "error"
	StateHelp      State = "help"
	StateFound     State = "found"
)

// Bar displays lookup status and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	notice  string
	width   int
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

// View renders the status bar.
func (s *Bar) View() string {
	// Width includes the style's padding, so the filler fits the inner width.
	inner := s.width - s.styles.StatusBar.GetHorizontalFrameSize()
	left := s.renderLeft()
	right := s.renderRight(inner - lipgloss.Width(left) - 1)

	padding := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the state, followed by any transient notice.
func (s *Bar) renderLeft() string {
	var left string
	switch s.state {
	case StateLookingUp:
		left = s.styles.Muted.Render("Looking up...")
	case StateError:
		left = s.styles.Error.Render(s.message)
	case StateHelp:
		left = s.styles.Normal.Render("Help")
	case StateFound:
		left = s.styles.Success.Render(s.message)
	default:
		left = s.styles.Muted.Render("Ready")
	}

	if s.notice != "" {
		left += s.styles.Warning.Render(" · " + s.notice)
	}
	return left
}

// renderRight renders as many keybinding hints as fit in maxWidth cells.
func (s *Bar) renderRight(maxWidth int) string {
	var bindings []key.Binding
	if s.state == StateFound {
		bindings = s.keymap.EntryHelp()
	} else {
		bindings = s.keymap.InputHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	for len(hints) > 0 && lipgloss.Width(strings.Join(hints, " | ")) > maxWidth {
		hints = hints[:len(hints)-1]
	}
	if len(hints) == 0 {
		return ""
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state and clears any notice.
func (s *Bar) SetState(state State) {
	s.state = state
	s.notice = ""
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets the text shown for StateError and StateFound.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetNotice sets a transient notice such as an action result.
func (s *Bar) SetNotice(notice string) {
	s.notice = notice
}

// Notice returns the current notice.
func (s *Bar) Notice() string {
	return s.notice
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.notice = ""
}
