package services

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/utils/accounting"
	"github.com/SscSPs/ledger_core/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// DefaultLedgerPageSize is used when neither the caller nor configuration sets one.
const DefaultLedgerPageSize = 200

// ledgerService projects balances and ledgers from posted journal lines.
// Stored account balances are a cache; everything here reads the lines.
type ledgerService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	accountRepo portsrepo.AccountReader
	pageSize    int
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, accountRepo portsrepo.AccountReader, pageSize int, options ...ServiceOption) portssvc.LedgerSvcFacade {
	if pageSize <= 0 {
		pageSize = DefaultLedgerPageSize
	}
	svc := &ledgerService{
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
		pageSize:    pageSize,
	}
	for _, option := range options {
		option(&svc.BaseService)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) account(ctx context.Context, workplaceID, accountID string) (*domain.Account, error) {
	acc, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load ledger account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	if acc.WorkplaceID != workplaceID {
		return nil, apperrors.ErrNotFound
	}
	return acc, nil
}

func (s *ledgerService) AccountBalanceAsOf(ctx context.Context, workplaceID string, accountID string, asOf time.Time) (decimal.Decimal, error) {
	acc, err := s.account(ctx, workplaceID, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	debit, credit, err := s.ledgerRepo.SumAccountLines(ctx, workplaceID, []string{accountID}, domain.Posted, domain.Through(domain.DateOnly(asOf)))
	if err != nil {
		s.LogError(ctx, err, "Failed to sum account lines", slog.String("account_id", accountID))
		return decimal.Zero, err
	}
	return accounting.SignedContribution(acc.NormalBalance, debit, credit), nil
}

func (s *ledgerService) RollupBalanceAsOf(ctx context.Context, workplaceID string, accountID string, asOf time.Time) (decimal.Decimal, error) {
	accounts, err := s.accountRepo.ListAccountHierarchy(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load account hierarchy", slog.String("workplace_id", workplaceID))
		return decimal.Zero, err
	}
	tree := domain.NewAccountTree(accounts)
	root, ok := tree.Account(accountID)
	if !ok {
		return decimal.Zero, apperrors.ErrNotFound
	}

	debit, credit, err := s.ledgerRepo.SumAccountLines(ctx, workplaceID, tree.Subtree(accountID), domain.Posted, domain.Through(domain.DateOnly(asOf)))
	if err != nil {
		s.LogError(ctx, err, "Failed to sum subtree lines", slog.String("account_id", accountID))
		return decimal.Zero, err
	}
	return accounting.SignedContribution(root.NormalBalance, debit, credit), nil
}

// openingBalance folds every posted line dated before from.
func (s *ledgerService) openingBalance(ctx context.Context, workplaceID string, acc *domain.Account, from time.Time) (decimal.Decimal, error) {
	if from.IsZero() {
		return decimal.Zero, nil
	}
	before := domain.Through(domain.DateOnly(from).AddDate(0, 0, -1))
	debit, credit, err := s.ledgerRepo.SumAccountLines(ctx, workplaceID, []string{acc.AccountID}, domain.Posted, before)
	if err != nil {
		return decimal.Zero, err
	}
	return accounting.SignedContribution(acc.NormalBalance, debit, credit), nil
}

// fold signs rows in place and carries the running balance forward.
func fold(normal domain.NormalBalance, running decimal.Decimal, rows []domain.LedgerRow) decimal.Decimal {
	for i := range rows {
		rows[i].Contribution = accounting.SignedContribution(normal, rows[i].DebitAmount, rows[i].CreditAmount)
		running = running.Add(rows[i].Contribution)
		rows[i].RunningBalance = running
	}
	return running
}

// LedgerFor yields ledger rows one keyset page at a time. A fetch error is
// yielded once and ends the sequence.
func (s *ledgerService) LedgerFor(ctx context.Context, workplaceID string, accountID string, rng domain.DateRange, pageSize int) iter.Seq2[domain.LedgerRow, error] {
	if pageSize <= 0 {
		pageSize = s.pageSize
	}
	return func(yield func(domain.LedgerRow, error) bool) {
		acc, err := s.account(ctx, workplaceID, accountID)
		if err != nil {
			yield(domain.LedgerRow{}, err)
			return
		}
		running, err := s.openingBalance(ctx, workplaceID, acc, rng.From)
		if err != nil {
			yield(domain.LedgerRow{}, err)
			return
		}

		var cursor *domain.LedgerCursor
		for {
			if err := ctx.Err(); err != nil {
				yield(domain.LedgerRow{}, err)
				return
			}
			rows, err := s.ledgerRepo.ListLedgerLines(ctx, workplaceID, accountID, rng, cursor, pageSize)
			if err != nil {
				s.LogError(ctx, err, "Failed to fetch ledger page", slog.String("account_id", accountID))
				yield(domain.LedgerRow{}, err)
				return
			}
			running = fold(acc.NormalBalance, running, rows)
			for _, row := range rows {
				if !yield(row, nil) {
					return
				}
			}
			if len(rows) < pageSize {
				return
			}
			next := domain.CursorAfter(rows[len(rows)-1])
			cursor = &next
		}
	}
}

func (s *ledgerService) LedgerPage(ctx context.Context, workplaceID string, accountID string, rng domain.DateRange, limit int, nextToken *string) (*domain.LedgerPage, error) {
	if limit <= 0 {
		limit = s.pageSize
	}
	acc, err := s.account(ctx, workplaceID, accountID)
	if err != nil {
		return nil, err
	}
	opening, err := s.openingBalance(ctx, workplaceID, acc, rng.From)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute opening balance", slog.String("account_id", accountID))
		return nil, err
	}

	running := opening
	var cursor *domain.LedgerCursor
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeLedgerCursor(*nextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursor = &c
		running = c.RunningBalance
	}

	// Fetch one extra row to learn whether another page exists.
	rows, err := s.ledgerRepo.ListLedgerLines(ctx, workplaceID, accountID, rng, cursor, limit+1)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch ledger page", slog.String("account_id", accountID))
		return nil, err
	}
	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}
	fold(acc.NormalBalance, running, rows)

	page := &domain.LedgerPage{AccountID: accountID, OpeningBalance: opening, Rows: rows}
	if page.Rows == nil {
		page.Rows = []domain.LedgerRow{}
	}
	if hasMore {
		token := pagination.EncodeLedgerCursor(domain.CursorAfter(rows[len(rows)-1]))
		page.NextToken = &token
	}
	return page, nil
}

func (s *ledgerService) AccountTotals(ctx context.Context, workplaceID string, rng domain.DateRange) ([]domain.AccountTotal, error) {
	totals, err := s.ledgerRepo.AccountTotals(ctx, workplaceID, rng, domain.Posted)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute account totals", slog.String("workplace_id", workplaceID))
		return nil, err
	}
	if totals == nil {
		totals = []domain.AccountTotal{}
	}
	return totals, nil
}

func (s *ledgerService) TrialBalance(ctx context.Context, workplaceID string, rng domain.DateRange) (*domain.TrialBalance, error) {
	totals, err := s.AccountTotals(ctx, workplaceID, rng)
	if err != nil {
		return nil, err
	}
	tb := domain.NewTrialBalance(rng, totals)
	if !tb.IsBalanced {
		s.LogWarn(ctx, errors.New("trial balance does not balance"), "Trial balance out of balance",
			slog.String("workplace_id", workplaceID),
			slog.String("total_debit", tb.TotalDebit.String()),
			slog.String("total_credit", tb.TotalCredit.String()))
	}
	return &tb, nil
}

func (s *ledgerService) DraftActivity(ctx context.Context, workplaceID string, rng domain.DateRange) ([]domain.AccountTotal, error) {
	totals, err := s.ledgerRepo.AccountTotals(ctx, workplaceID, rng, domain.Draft)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute draft activity", slog.String("workplace_id", workplaceID))
		return nil, err
	}
	if totals == nil {
		totals = []domain.AccountTotal{}
	}
	return totals, nil
}

func (s *ledgerService) RebuildBalances(ctx context.Context, workplaceID string) (int64, error) {
	updated, err := s.ledgerRepo.RebuildBalances(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to rebuild balances", slog.String("workplace_id", workplaceID))
		return 0, err
	}
	s.LogInfo(ctx, "Account balances rebuilt",
		slog.String("workplace_id", workplaceID),
		slog.Int64("accounts_updated", updated))
	return updated, nil
}
