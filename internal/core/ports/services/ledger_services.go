package services

import (
	"context"
	"iter"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerBalanceSvc answers balance questions from posted journal lines.
type LedgerBalanceSvc interface {
	// AccountBalanceAsOf folds every posted line dated on or before asOf, signed by normal balance.
	AccountBalanceAsOf(ctx context.Context, workplaceID string, accountID string, asOf time.Time) (decimal.Decimal, error)

	// RollupBalanceAsOf aggregates an account and all descendants on the account's normal side.
	RollupBalanceAsOf(ctx context.Context, workplaceID string, accountID string, asOf time.Time) (decimal.Decimal, error)
}

// LedgerStatementSvc produces ordered account ledgers.
type LedgerStatementSvc interface {
	// LedgerFor lazily yields the ledger of an account inside rng with running balances.
	LedgerFor(ctx context.Context, workplaceID string, accountID string, rng domain.DateRange, pageSize int) iter.Seq2[domain.LedgerRow, error]

	// LedgerPage returns one page of the same ledger with a continuation token.
	LedgerPage(ctx context.Context, workplaceID string, accountID string, rng domain.DateRange, limit int, nextToken *string) (*domain.LedgerPage, error)
}

// LedgerReportSvc aggregates totals across accounts.
type LedgerReportSvc interface {
	AccountTotals(ctx context.Context, workplaceID string, rng domain.DateRange) ([]domain.AccountTotal, error)
	TrialBalance(ctx context.Context, workplaceID string, rng domain.DateRange) (*domain.TrialBalance, error)

	// DraftActivity reports draft sums, kept apart from posted figures.
	DraftActivity(ctx context.Context, workplaceID string, rng domain.DateRange) ([]domain.AccountTotal, error)
}

// LedgerMaintenanceSvc repairs stored projections.
type LedgerMaintenanceSvc interface {
	RebuildBalances(ctx context.Context, workplaceID string) (int64, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerBalanceSvc
	LedgerStatementSvc
	LedgerReportSvc
	LedgerMaintenanceSvc
}
