package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lexi-cli/internal/core/domain"
	"github.com/custodia-labs/lexi-cli/internal/core/ports/driving"
)

var defineJSON bool

var defineCmd = &cobra.Command{
	Use:   "define [word]",
	Short: "Look up a word",
	Long: `Looks up a word in the dictionary and prints its phonetics, meanings,
definitions and examples.

The word is sent exactly as typed. When no word is given and stdin is not a
terminal, every line of stdin is looked up in turn.

Exit status is 1 when any lookup fails.`,
	Example: `  lexi define serendipity
  lexi define --json test
  printf 'cat\ndog\n' | lexi define`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDefine,
}

func init() {
	defineCmd.Flags().BoolVar(&defineJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(defineCmd)
}

// defineResult is the JSON shape printed by --json.
type defineResult struct {
	Word    string                  `json:"word"`
	Outcome string                  `json:"outcome"`
	Error   string                  `json:"error,omitempty"`
	Entry   *domain.DictionaryEntry `json:"entry,omitempty"`
}

func runDefine(cmd *cobra.Command, args []string) error {
	if err := requireLookup(); err != nil {
		return err
	}
	controller := newController()

	if len(args) == 1 {
		if !defineWord(cmd, controller, args[0], defineJSON) {
			return &ExitError{Code: 1}
		}
		return nil
	}

	if stdinIsTerminal() {
		return errors.New("no word given; run \"lexi define <word>\" or pipe words on stdin")
	}

	failed := false
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		word := strings.TrimSuffix(scanner.Text(), "\r")
		if !defineWord(cmd, controller, word, defineJSON) {
			failed = true
		}
		if !defineJSON {
			fmt.Fprintln(cmd.OutOrStdout())
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	if failed {
		return &ExitError{Code: 1}
	}
	return nil
}

// defineWord looks up word, prints the outcome and reports success.
func defineWord(cmd *cobra.Command, controller driving.LookupController, word string, asJSON bool) bool {
	controller.SetQuery(word)
	state := controller.Search(cmd.Context())

	if asJSON {
		outputDefineJSON(cmd, word, state)
	} else if state.HasEntry() {
		outputEntry(cmd, state.Entry())
	} else {
		cmd.PrintErrln(state.Message())
	}
	return !state.Outcome().IsError()
}

func outputDefineJSON(cmd *cobra.Command, word string, state domain.LookupState) {
	data, err := json.Marshal(defineResult{
		Word:    word,
		Outcome: state.Outcome().String(),
		Error:   state.Message(),
		Entry:   state.Entry(),
	})
	if err != nil {
		cmd.PrintErrf("failed to marshal result: %v\n", err)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
}

func outputEntry(cmd *cobra.Command, e *domain.DictionaryEntry) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Word: %s\n", e.Word)
	if ph := e.PrimaryPhonetic(); ph != nil {
		if ph.Text != "" {
			fmt.Fprintf(out, "Phonetic: %s\n", ph.Text)
		}
		if ph.Audio != "" {
			fmt.Fprintf(out, "Audio: %s\n", ph.Audio)
		}
	}

	for _, m := range e.Meanings {
		fmt.Fprintf(out, "\nPart of Speech: %s\n", m.PartOfSpeech)
		for _, d := range m.Definitions {
			fmt.Fprintf(out, "  Definition: %s\n", d.Definition)
			if d.Example != "" {
				fmt.Fprintf(out, "    Example: %s\n", d.Example)
			}
			if len(d.Synonyms) > 0 {
				fmt.Fprintf(out, "    Synonyms: %s\n", strings.Join(d.Synonyms, ", "))
			}
			if len(d.Antonyms) > 0 {
				fmt.Fprintf(out, "    Antonyms: %s\n", strings.Join(d.Antonyms, ", "))
			}
		}
	}
}
