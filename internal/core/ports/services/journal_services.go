package services

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetEntry retrieves an entry and its lines.
	GetEntry(ctx context.Context, workplaceID string, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a page of entries in a workplace.
	ListEntries(ctx context.Context, workplaceID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)

	// ListLineRevisions returns the line sets an entry carried before each replacement.
	ListLineRevisions(ctx context.Context, workplaceID string, entryID string) ([]domain.LineRevision, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// PostEntry validates, numbers and posts an entry, updating account balances.
	PostEntry(ctx context.Context, workplaceID string, req dto.PostEntryRequest, userID string) (*domain.JournalEntry, error)

	// CreateDraft stores an unposted entry. Drafts do not affect balances.
	CreateDraft(ctx context.Context, workplaceID string, req dto.PostEntryRequest, userID string) (*domain.JournalEntry, error)

	// PostDraft posts a draft after full validation.
	PostDraft(ctx context.Context, workplaceID string, entryID string, expectedVersion *int, userID string) (*domain.JournalEntry, error)

	// ReverseEntry marks a posted entry reversed. Its lines are kept.
	ReverseEntry(ctx context.Context, workplaceID string, entryID string, expectedVersion *int, userID string) (*domain.JournalEntry, error)

	// ReplaceLines swaps the full line set of a draft or posted entry.
	ReplaceLines(ctx context.Context, workplaceID string, entryID string, req dto.ReplaceLinesRequest, userID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
// This is a facade for clients that need access to all operations
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
