// Package lookup provides the word lookup view for the TUI.
package lookup

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/lexi-cli/internal/adapters/driving/tui/components/entry"
	"github.com/custodia-labs/lexi-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/lexi-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/lexi-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/lexi-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/lexi-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lexi-cli/internal/core/domain"
	"github.com/custodia-labs/lexi-cli/internal/core/ports/driving"
)

// Entry actions offered in the action menu.
const (
	ActionCopy   = "Copy definition"
	ActionOpen   = "Open pronunciation"
	ActionSave   = "Save"
	ActionCancel = "Cancel"
)

// ActionMenu represents a simple action selection overlay.
type ActionMenu struct {
	actions  []string
	selected int
	entry    *domain.DictionaryEntry
}

// View represents the lookup view with input, entry panel, and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QueryInput
	panel     *entry.Panel
	statusbar *status.Bar

	controller    driving.LookupController
	actionService driving.EntryActionService
	ctx           context.Context

	width      int
	height     int
	ready      bool
	focusInput bool // true = typing a query, false = reading the entry
	pending    uint64
	actionMenu *ActionMenu
}

// NewView creates a new lookup view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	controller driving.LookupController,
	actionService driving.EntryActionService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:        s,
		keymap:        km,
		input:         input.NewQueryInput(s),
		panel:         entry.NewPanel(s),
		statusbar:     status.NewBar(s, km),
		controller:    controller,
		actionService: actionService,
		ctx:           context.Background(),
		width:         80,
		height:        24,
		focusInput:    true,
	}
	if controller != nil {
		v.input.SetValue(controller.Query())
		v.sync(controller.State())
	}
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

// Update handles messages for the lookup view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.LookupSettled:
		v.handleSettled(msg)
		return v, nil

	case messages.ActionCompleted:
		v.handleActionCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.statusbar.SetNotice(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd, _ = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.actionMenu != nil {
		return v.handleActionMenuKey(msg)
	}

	if v.focusInput {
		return v.handleInputKey(msg)
	}
	return v.handleEntryKey(msg)
}

// handleInputKey processes keys while the query input has focus.
func (v *View) handleInputKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), v.keymap.Search):
		return v, v.startLookup()
	case keymap.Matches(msg.String(), v.keymap.Focus):
		if v.panel.HasEntry() {
			v.focusEntry()
		}
		return v, nil
	case keymap.Matches(msg.String(), v.keymap.Back):
		return v, nil
	}

	var cmd tea.Cmd
	var changed bool
	v.input, cmd, changed = v.input.Update(msg)
	if changed && v.controller != nil {
		v.controller.SetQuery(v.input.Value())
	}
	return v, cmd
}

// handleEntryKey processes keys while the entry panel has focus.
func (v *View) handleEntryKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	switch {
	case keymap.Matches(key, v.keymap.Back):
		v.focusQuery()
		return v, nil
	case keymap.Matches(key, v.keymap.Actions):
		if e := v.panel.Entry(); e != nil {
			v.actionMenu = &ActionMenu{
				actions: []string{ActionCopy, ActionOpen, ActionSave, ActionCancel},
				entry:   e,
			}
		}
		return v, nil
	case keymap.Matches(key, v.keymap.NewSearch):
		v.focusQuery()
		v.input.SetValue("")
		if v.controller != nil {
			v.controller.SetQuery("")
		}
		return v, nil
	case keymap.Matches(key, v.keymap.Help):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHelp}
		}
	}

	var cmd tea.Cmd
	v.panel, cmd = v.panel.Update(msg)
	return v, cmd
}

// handleActionMenuKey processes keyboard input when the action menu is visible.
func (v *View) handleActionMenuKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	switch {
	case keymap.Matches(key, v.keymap.Up):
		if v.actionMenu.selected > 0 {
			v.actionMenu.selected--
		}
	case keymap.Matches(key, v.keymap.Down):
		if v.actionMenu.selected < len(v.actionMenu.actions)-1 {
			v.actionMenu.selected++
		}
	case keymap.Matches(key, v.keymap.Select):
		action := v.actionMenu.actions[v.actionMenu.selected]
		e := v.actionMenu.entry
		v.actionMenu = nil
		return v, v.executeAction(action, e)
	case keymap.Matches(key, v.keymap.Back):
		v.actionMenu = nil
	}
	return v, nil
}

// executeAction returns a command running action against e.
// Save is a placeholder and does nothing.
func (v *View) executeAction(action string, e *domain.DictionaryEntry) tea.Cmd {
	if e == nil {
		return nil
	}

	var run func(context.Context, *domain.DictionaryEntry) error
	switch action {
	case ActionCopy:
		if v.actionService != nil {
			run = v.actionService.CopyDefinition
		}
	case ActionOpen:
		if v.actionService != nil {
			run = v.actionService.OpenPronunciation
		}
	default:
		return nil
	}

	if run == nil {
		v.statusbar.SetNotice(action + " not available")
		return nil
	}

	ctx := v.ctx
	return func() tea.Msg {
		return messages.ActionCompleted{Action: action, Err: run(ctx, e)}
	}
}

// handleActionCompleted shows the result of an entry action.
func (v *View) handleActionCompleted(msg messages.ActionCompleted) {
	if msg.Err != nil {
		v.statusbar.SetNotice(fmt.Sprintf("%s: %s", msg.Action, msg.Err))
		return
	}
	switch msg.Action {
	case ActionCopy:
		v.statusbar.SetNotice("Copied to clipboard")
	case ActionOpen:
		v.statusbar.SetNotice("Playing pronunciation...")
	}
}

// startLookup begins a lookup for the current query.
// The previous outcome is cleared immediately; an empty query settles at once.
func (v *View) startLookup() tea.Cmd {
	if v.controller == nil {
		return func() tea.Msg {
			return messages.ErrorOccurred{Err: ErrNoController}
		}
	}

	v.controller.SetQuery(v.input.Value())
	ticket, ok := v.controller.Begin()
	if !ok {
		v.pending = 0
		v.sync(v.controller.State())
		return nil
	}

	v.pending = ticket.Token
	v.sync(v.controller.State())

	controller := v.controller
	ctx := v.ctx
	return func() tea.Msg {
		return messages.LookupSettled{Result: controller.Run(ctx, ticket)}
	}
}

// handleSettled applies a finished lookup if it is still the latest one.
func (v *View) handleSettled(msg messages.LookupSettled) {
	if v.controller == nil || !v.controller.Settle(msg.Result) {
		return
	}
	v.pending = 0
	v.sync(v.controller.State())
}

// sync renders state into the panel and status bar.
func (v *View) sync(state domain.LookupState) {
	v.panel.SetEntry(state.Entry())

	switch {
	case state.HasEntry():
		e := state.Entry()
		v.statusbar.SetState(status.StateFound)
		v.statusbar.SetMessage(fmt.Sprintf("%s · %d definitions", e.Word, e.DefinitionCount()))
		v.focusEntry()
	case state.HasError():
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(state.Message())
	case v.pending != 0:
		v.statusbar.SetState(status.StateLookingUp)
	default:
		v.statusbar.SetState(status.StateReady)
	}
}

func (v *View) focusEntry() {
	v.focusInput = false
	v.input.Blur()
}

func (v *View) focusQuery() {
	v.focusInput = true
	v.actionMenu = nil
	v.input.Focus()
}

// View renders the lookup view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)
	sections = append(sections, v.styles.Title.Render("Lexi"), "", v.input.View(), "")

	if v.controller != nil {
		if state := v.controller.State(); state.HasError() {
			sections = append(sections, v.styles.Error.Render(state.Message()), "")
		}
	}

	if v.panel.HasEntry() {
		sections = append(sections, v.panel.View())
	}

	if v.actionMenu != nil {
		sections = append(sections, "", v.renderActionMenu())
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderActionMenu renders the action menu overlay.
func (v *View) renderActionMenu() string {
	lines := make([]string, 0, len(v.actionMenu.actions))
	for i, action := range v.actionMenu.actions {
		if i == v.actionMenu.selected {
			lines = append(lines, v.styles.Selected.Render("> "+action))
		} else {
			lines = append(lines, v.styles.Normal.Render("  "+action))
		}
	}

	return v.styles.Border.Padding(0, 1).Render(strings.Join(lines, "\n"))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.panel.SetDimensions(width, height-10) // header, input, error line, status
	v.statusbar.SetWidth(width)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the text in the input.
func (v *View) Query() string {
	return v.input.Value()
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// LookingUp returns whether a lookup is in flight.
func (v *View) LookingUp() bool {
	return v.pending != 0
}

// ActionMenuVisible returns whether the action menu is open.
func (v *View) ActionMenuVisible() bool {
	return v.actionMenu != nil
}

// StatusState returns the status bar state.
func (v *View) StatusState() status.State {
	return v.statusbar.State()
}

// StatusNotice returns the transient status bar notice.
func (v *View) StatusNotice() string {
	return v.statusbar.Notice()
}

// SetNotice shows a transient notice in the status bar.
func (v *View) SetNotice(notice string) {
	v.statusbar.SetNotice(notice)
}

// Reset returns the view to input mode without discarding the query.
func (v *View) Reset() {
	if v.controller != nil {
		v.sync(v.controller.State())
	}
	v.focusQuery()
}
