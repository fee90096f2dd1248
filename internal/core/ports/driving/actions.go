package driving

import (
	"context"

	"github.com/custodia-labs/lexi-cli/internal/core/domain"
)

// EntryActionService provides actions on a found entry for external actors.
// This is used by the TUI adapter.
type EntryActionService interface {
	// CopyDefinition copies the entry's first definition to the system clipboard.
	CopyDefinition(ctx context.Context, entry *domain.DictionaryEntry) error

	// OpenPronunciation opens the entry's first audio sample in the default application.
	OpenPronunciation(ctx context.Context, entry *domain.DictionaryEntry) error
}
