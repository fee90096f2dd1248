// Package cli provides the lexi command line interface built on cobra.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/lexi-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lexi-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lexi-cli/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Persistent flag values.
var (
	configDir string
	verbose   bool
	logFile   string
	baseURL   string
)

// Options are the global flag values handed to the bootstrap function.
type Options struct {
	ConfigDir string
	BaseURL   string
	Version   string
}

// Services holds everything the commands need from the core.
type Services struct {
	// NewController creates a lookup controller with its own query and state.
	NewController func() driving.LookupController

	// Settings reads and writes dictionary settings.
	Settings driving.SettingsService

	// Actions copies definitions and plays pronunciations. Optional.
	Actions driving.EntryActionService

	// Watcher reports config file changes. Optional.
	Watcher driven.ConfigWatcher

	// Reload re-reads settings and applies them to the dictionary client. Optional.
	Reload func() error

	// LookupErr explains why NewController is unavailable. Commands that
	// need a lookup report it; the others still run.
	LookupErr error
}

// Active services. Tests assign these directly.
var (
	newController   func() driving.LookupController
	settingsService driving.SettingsService
	actionService   driving.EntryActionService
	configWatcher   driven.ConfigWatcher
	reloadSettings  func() error
	lookupErr       error
)

// logOutput is the open --log-file, closed after the command runs.
var logOutput *os.File

// bootstrap builds services once flags are parsed.
var bootstrap func(Options) (*Services, error)

// stdinIsTerminal reports whether stdin is an interactive terminal.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ExitError carries a process exit code for a failure already reported to the user.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

var rootCmd = &cobra.Command{
	Use:   "lexi",
	Short: "Look up English words from the terminal",
	Long: `lexi looks up English words in the Free Dictionary API and shows their
phonetics, meanings, definitions and examples.

Run without arguments on a terminal to open the interactive lookup view,
or use "lexi define <word>" for a one-shot lookup.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
	RunE:              runRoot,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.lexi)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	flags.StringVar(&baseURL, "base-url", "", "dictionary service base URL (overrides settings)")
}

// SetVersion sets the version reported by "lexi version".
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetBootstrap registers the function that builds services after flag parsing.
func SetBootstrap(fn func(Options) (*Services, error)) {
	bootstrap = fn
}

// SetServices installs services directly, bypassing bootstrap.
func SetServices(s *Services) {
	newController = s.NewController
	settingsService = s.Settings
	actionService = s.Actions
	configWatcher = s.Watcher
	reloadSettings = s.Reload
	lookupErr = s.LookupErr
}

// requireLookup reports why lookups cannot run, or nil when they can.
func requireLookup() error {
	if lookupErr != nil {
		return lookupErr
	}
	if newController == nil {
		return errors.New("lookup service not configured")
	}
	return nil
}

// setup configures logging and builds services before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		logger.SetOutput(f)
		logOutput = f
	}

	if newController != nil || lookupErr != nil || bootstrap == nil {
		return nil
	}

	services, err := bootstrap(Options{
		ConfigDir: configDir,
		BaseURL:   baseURL,
		Version:   version,
	})
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	SetServices(services)
	if lookupErr != nil {
		logger.Warn("Lookups unavailable: %v", lookupErr)
	}
	logger.Debug("services ready for %s", cmd.CommandPath())
	return nil
}

// teardown closes the log file opened by setup.
func teardown(_ *cobra.Command, _ []string) {
	if logOutput == nil {
		return
	}
	logger.SetOutput(os.Stderr)
	if err := logOutput.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "closing log file: %v\n", err)
	}
	logOutput = nil
}

// runRoot opens the TUI on a terminal and reads words from stdin otherwise.
func runRoot(cmd *cobra.Command, args []string) error {
	if !stdinIsTerminal() {
		return runDefine(cmd, args)
	}
	return runTUI(cmd, args)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	// PersistentPostRun is skipped when a command fails.
	teardown(rootCmd, nil)
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	return 1
}
