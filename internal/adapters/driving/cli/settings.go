package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lexi-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage dictionary settings",
	Long: `View and configure the dictionary service lexi talks to.

Settings are stored in config.toml inside the configuration directory
(default ~/.lexi). A running "lexi tui" picks up changes immediately.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a single setting",
	Long: `Change a single setting.

Available keys:
  dictionary.base_url    - Service URL; lookups go to <base_url>/<word>
  dictionary.user_agent  - User-Agent header sent with every lookup
  dictionary.rate_limit  - Maximum lookups per second (0 = unlimited)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure the dictionary settings step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Dictionary]")
	cmd.Printf("  Base URL: %s\n", settings.Dictionary.BaseURL)
	cmd.Printf("  User Agent: %s\n", settings.Dictionary.UserAgent)
	cmd.Printf("  Rate Limit: %s\n", formatRateLimit(settings.Dictionary.RateLimit))
	cmd.Println()

	if baseURL != "" {
		cmd.Printf("Note: --base-url overrides the base URL with %s for this run.\n", baseURL)
	}

	if err := settings.Dictionary.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'lexi settings wizard' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w (keys: %s)", key, err, strings.Join(settingsService.Keys(), ", "))
	}

	cmd.Printf("Set %s to %s\n", key, value)
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Lexi Settings Wizard")
	cmd.Println("====================")
	cmd.Println("Press enter to keep the value in brackets.")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Printf("Dictionary base URL [%s]: ", settings.Dictionary.BaseURL)
	if input := readLine(reader); input != "" {
		settings.Dictionary.BaseURL = input
	}

	cmd.Printf("User agent [%s]: ", settings.Dictionary.UserAgent)
	if input := readLine(reader); input != "" {
		settings.Dictionary.UserAgent = input
	}

	cmd.Printf("Rate limit in lookups per second, 0 for unlimited [%s]: ",
		strconv.FormatFloat(settings.Dictionary.RateLimit, 'f', -1, 64))
	settings.Dictionary.RateLimit = parseRate(readLine(reader), settings.Dictionary.RateLimit)

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println()
	cmd.Println("Settings saved.")
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseRate(input string, defaultVal float64) float64 {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.ParseFloat(input, 64)
	if err != nil || domain.ValidateRateLimit(val) != nil {
		return defaultVal
	}
	return val
}

func formatRateLimit(limit float64) string {
	if limit <= 0 {
		return "unlimited"
	}
	return strconv.FormatFloat(limit, 'f', -1, 64) + " lookups/s"
}
