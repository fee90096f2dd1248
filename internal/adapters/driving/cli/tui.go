package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/lexi-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/lexi-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lexi-cli/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive lookup view.

Type a word and press enter to look it up. Once an entry is shown, scroll it
with the arrow keys and press enter for actions (copy the definition, play the
pronunciation).

Controls:
  Enter    - Look up / Actions
  Tab      - Move to the entry
  ↑/k, ↓/j - Scroll the entry
  n        - New word
  Esc      - Back to the input
  ?        - Toggle help
  Ctrl+C   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if err := requireLookup(); err != nil {
		return err
	}

	// Log lines on stderr would tear the alternate screen.
	if logFile == "" {
		logger.SetOutput(io.Discard)
		defer logger.SetOutput(os.Stderr)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	app, err := tui.NewApp(
		tui.NewPorts(newController(), actionService, settingsService),
		tui.WithTheme(styles.ThemeFor(lipgloss.HasDarkBackground())),
	)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(ctx)

	if reloads := watchConfig(ctx); reloads != nil {
		app.WithReloads(reloads)
	}

	if err := app.Run(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// watchConfig starts watching the config file and returns a channel that
// receives the result of every reload. It returns nil when there is nothing
// to watch.
func watchConfig(ctx context.Context) <-chan error {
	watcher, reload := configWatcher, reloadSettings
	if watcher == nil || reload == nil {
		return nil
	}

	reloads := make(chan error, 1)
	go func() {
		err := watcher.Watch(ctx, func() {
			select {
			case reloads <- reload():
			default:
				logger.Debug("config reload notification dropped, previous one pending")
			}
		})
		if err != nil {
			logger.Warn("config watcher stopped: %v", err)
		}
	}()
	return reloads
}
