package services

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"

	"github.com/custodia-labs/lexi-cli/internal/core/domain"
	"github.com/custodia-labs/lexi-cli/internal/core/ports/driving"
)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Ensure EntryActionService implements the interface.
var _ driving.EntryActionService = (*EntryActionService)(nil)

// EntryActionService provides actions on a found entry.
type EntryActionService struct {
	copyText func(text string) error
	open     func(url string) error
}

// NewEntryActionService creates a new entry action service using the system clipboard and opener.
func NewEntryActionService() *EntryActionService {
	return &EntryActionService{
		copyText: clipboard.WriteAll,
		open:     openURL,
	}
}

// CopyDefinition copies the entry's first definition to the system clipboard.
func (s *EntryActionService) CopyDefinition(_ context.Context, entry *domain.DictionaryEntry) error {
	if entry == nil {
		return fmt.Errorf("entry is nil")
	}
	def := entry.FirstDefinition()
	if def == "" {
		return fmt.Errorf("%s has no definition to copy", entry.Word)
	}
	return s.copyText(fmt.Sprintf("%s: %s", entry.Word, def))
}

// OpenPronunciation opens the first phonetic's audio sample.
func (s *EntryActionService) OpenPronunciation(_ context.Context, entry *domain.DictionaryEntry) error {
	if entry == nil {
		return fmt.Errorf("entry is nil")
	}
	ph := entry.PrimaryPhonetic()
	if ph == nil || ph.Audio == "" {
		return fmt.Errorf("%s has no pronunciation audio", entry.Word)
	}
	if err := checkAudioURL(ph.Audio); err != nil {
		return fmt.Errorf("%s pronunciation: %w", entry.Word, err)
	}
	return s.open(ph.Audio)
}

// checkAudioURL accepts only absolute http or https URLs.
func checkAudioURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid audio URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("refusing to open audio URL %q", raw)
	}
	return nil
}

// openURL opens target with the platform's default handler.
func openURL(target string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case osDarwin:
		cmd = exec.Command("open", target)
	case osLinux:
		cmd = exec.Command("xdg-open", target)
	case osWindows:
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
