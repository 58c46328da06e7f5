package repositories

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindEntryByID retrieves an entry together with its lines ordered by line number.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a page of a workplace's entries, newest first. An empty status lists all.
	// It returns the entries (without lines), a token for the next page, and an error.
	ListEntries(ctx context.Context, workplaceID string, status domain.EntryStatus, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)

	// FindLineRevisions returns the line sets an entry carried before each replacement, oldest first.
	FindLineRevisions(ctx context.Context, entryID string) ([]domain.LineRevision, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// CreateEntry assigns the next entry number, stores the header and lines and
	// applies balanceChanges, all in one transaction. The assigned number is
	// written back to entry.
	CreateEntry(ctx context.Context, entry *domain.JournalEntry, balanceChanges map[string]decimal.Decimal) error

	// TransitionEntry changes an entry's status if it is still in transition.From
	// at transition.Version, applying its balance changes.
	TransitionEntry(ctx context.Context, transition domain.EntryTransition) error

	// ReplaceLines swaps the line set of a non-reversed entry at replacement.Version.
	ReplaceLines(ctx context.Context, replacement domain.LineReplacement) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
// This is a facade for clients that need access to all operations
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
