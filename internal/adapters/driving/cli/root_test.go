package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lexi-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/lexi-cli/internal/core/domain"
	"github.com/custodia-labs/lexi-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lexi-cli/internal/core/services"
	"github.com/custodia-labs/lexi-cli/internal/logger"
)

// MockLookupService implements driving.LookupService for CLI tests.
type MockLookupService struct {
	Words []string
}

func (m *MockLookupService) Lookup(_ context.Context, word string) (*domain.DictionaryEntry, error) {
	m.Words = append(m.Words, word)
	switch word {
	case "errorTest":
		return nil, domain.ErrWordNotAvailable
	case "fetchErrorTest":
		return nil, domain.ErrTransport
	default:
		return &domain.DictionaryEntry{
			Word:      word,
			Phonetics: []domain.Phonetic{{Text: "/tɛst/", Audio: "https://example.test/test.mp3"}, {Text: "/other/"}},
			Meanings: []domain.Meaning{{
				PartOfSpeech: "noun",
				Definitions: []domain.Definition{{
					Definition: "A challenge, trial.",
					Example:    "a test of strength",
					Synonyms:   []string{"trial", "exam"},
					Antonyms:   []string{"certainty"},
				}},
			}},
		}, nil
	}
}

// setupTestServices installs in-memory services and returns a cleanup func.
func setupTestServices() func() {
	lookup := &MockLookupService{}
	return setupTestServicesWith(lookup)
}

func setupTestServicesWith(lookup *MockLookupService) func() {
	SetServices(&Services{
		NewController: func() driving.LookupController {
			return services.NewController(lookup)
		},
		Settings: services.NewSettingsService(memory.NewConfigStore()),
	})
	originalTerminal := stdinIsTerminal
	stdinIsTerminal = func() bool { return true }

	return func() {
		SetServices(&Services{})
		stdinIsTerminal = originalTerminal
		bootstrap = nil
		defineJSON = false
		verbose = false
		logFile = ""
		baseURL = ""
		configDir = ""
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}
}

// execute runs the root command with args and returns stdout, stderr and the exit code.
func execute(t *testing.T, stdin string, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(bytes.NewBufferString(stdin))
	rootCmd.SetArgs(args)

	code := Execute()
	return stdout.String(), stderr.String(), code
}

func TestRootCmd_Metadata(t *testing.T) {
	assert.Equal(t, "lexi", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)

	for _, name := range []string{"config-dir", "verbose", "log-file", "base-url"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "v", rootCmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"define", "tui", "mcp", "settings", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRoot_NonTerminalStdinDefinesLines(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	stdinIsTerminal = func() bool { return false }

	stdout, _, code := execute(t, "test\n")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Word: test")
}

func TestSetup_BootstrapReceivesFlags(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	SetServices(&Services{})

	var got Options
	SetBootstrap(func(opts Options) (*Services, error) {
		got = opts
		return &Services{NewController: func() driving.LookupController {
			return services.NewController(&MockLookupService{})
		}}, nil
	})

	stdout, _, code := execute(t, "", "--config-dir", "/tmp/lexi-test", "--base-url", "http://localhost:1", "define", "test")

	assert.Equal(t, 0, code)
	assert.Equal(t, "/tmp/lexi-test", got.ConfigDir)
	assert.Equal(t, "http://localhost:1", got.BaseURL)
	assert.Equal(t, version, got.Version)
	assert.Contains(t, stdout, "Word: test")
}

func TestSetup_BootstrapError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	SetServices(&Services{})
	SetBootstrap(func(Options) (*Services, error) {
		return nil, errors.New("no home directory")
	})

	_, stderr, code := execute(t, "", "define", "test")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error: initialising: no home directory")
}

func TestSetup_LogFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	path := filepath.Join(t.TempDir(), "lexi.log")

	_, _, code := execute(t, "", "--verbose", "--log-file", path, "define", "test")

	assert.Equal(t, 0, code)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG]")
}

func TestTeardown_ClosesLogFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"success", []string{"version"}, 0},
		{"failed command", []string{"define", "errorTest"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "lexi.log")

			_, _, code := execute(t, "", append([]string{"--log-file", path}, tt.args...)...)

			assert.Equal(t, tt.wantCode, code)
			assert.Nil(t, logOutput)
			_, err := os.Stat(path)
			assert.NoError(t, err)
		})
	}
}

func TestSetup_LookupErrLeavesOtherCommandsWorking(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	SetServices(&Services{})
	clientErr := errors.New("creating dictionary client: base URL must use http or https")
	SetBootstrap(func(Options) (*Services, error) {
		return &Services{
			Settings:  services.NewSettingsService(memory.NewConfigStore()),
			LookupErr: clientErr,
		}, nil
	})

	_, _, code := execute(t, "", "--base-url", "ftp://bad", "settings", "set", "dictionary.base_url", "https://api.example.test/v2")
	assert.Equal(t, 0, code)

	stdout, _, code := execute(t, "", "--base-url", "ftp://bad", "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "lexi")

	_, stderr, code := execute(t, "", "--base-url", "ftp://bad", "define", "test")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, clientErr.Error())
}

func TestRequireLookup(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	assert.NoError(t, requireLookup())

	SetServices(&Services{})
	assert.EqualError(t, requireLookup(), "lookup service not configured")

	SetServices(&Services{LookupErr: errors.New("bad client")})
	assert.EqualError(t, requireLookup(), "bad client")
}

func TestSetup_LogFileUnwritable(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, stderr, code := execute(t, "", "--log-file", filepath.Join(t.TempDir(), "missing", "x.log"), "version")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "opening log file")
}

func TestExitError(t *testing.T) {
	err := &ExitError{Code: 3}

	assert.Equal(t, "exit status 3", err.Error())
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("")
	assert.Equal(t, original, version)

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)
}
