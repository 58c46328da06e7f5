package repositories

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReader aggregates journal lines. Only lines of entries in the given
// status are considered; reversed entries never match POSTED.
type LedgerReader interface {
	// SumAccountLines sums debits and credits of the given accounts within rng.
	SumAccountLines(ctx context.Context, workplaceID string, accountIDs []string, status domain.EntryStatus, rng domain.DateRange) (debit, credit decimal.Decimal, err error)

	// ListLedgerLines returns up to limit posted lines of an account inside rng,
	// strictly after the cursor, ordered by (entry date, created at, entry number, line number).
	ListLedgerLines(ctx context.Context, workplaceID string, accountID string, rng domain.DateRange, after *domain.LedgerCursor, limit int) ([]domain.LedgerRow, error)

	// AccountTotals returns per-account debit and credit sums for every account with lines in rng.
	AccountTotals(ctx context.Context, workplaceID string, rng domain.DateRange, status domain.EntryStatus) ([]domain.AccountTotal, error)
}

// LedgerMaintainer repairs stored projections.
type LedgerMaintainer interface {
	// RebuildBalances rewrites every stored account balance of a workplace from
	// its posted lines and reports how many accounts changed.
	RebuildBalances(ctx context.Context, workplaceID string) (int64, error)
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerMaintainer
}
