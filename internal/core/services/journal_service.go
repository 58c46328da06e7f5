package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Attempts made when no expected version was supplied and the entry moved
// underneath us between the read and the locked write.
const maxVersionRetries = 3

// journalService provides core journal entry operations.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryWithTx
	accountRepo portsrepo.AccountReader
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryWithTx, accountRepo portsrepo.AccountReader, options ...ServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
	for _, option := range options {
		option(&svc.BaseService)
	}
	return svc
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// toDomainLines numbers request lines in the order received.
func toDomainLines(entryID string, reqLines []dto.JournalLineRequest) []domain.JournalLine {
	lines := make([]domain.JournalLine, len(reqLines))
	for i, l := range reqLines {
		lines[i] = domain.JournalLine{
			LineID:       uuid.NewString(),
			EntryID:      entryID,
			AccountID:    strings.TrimSpace(l.AccountID),
			DebitAmount:  l.DebitAmount,
			CreditAmount: l.CreditAmount,
			Description:  l.Description,
			LineNumber:   i + 1,
		}
	}
	return lines
}

// postableAccounts loads the accounts of lines and rejects any line whose
// account is unknown, foreign, inactive or a control account.
func (s *journalService) postableAccounts(ctx context.Context, workplaceID string, lines []domain.JournalLine) (map[string]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, domain.LineAccountIDs(lines))
	if err != nil {
		return nil, err
	}
	if err := domain.CheckPostable(workplaceID, lines, accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// validateLines runs the posting checks in order: line shape, account
// eligibility, then side totals.
func (s *journalService) validateLines(ctx context.Context, workplaceID, subject string, lines []domain.JournalLine, checkBalance bool) (map[string]domain.Account, decimal.Decimal, decimal.Decimal, error) {
	if err := domain.ValidateLineShapes(lines); err != nil {
		return nil, decimal.Zero, decimal.Zero, err
	}
	accounts, err := s.postableAccounts(ctx, workplaceID, lines)
	if err != nil {
		return nil, decimal.Zero, decimal.Zero, err
	}
	if !checkBalance {
		debit, credit := domain.LineTotals(lines)
		return accounts, debit, credit, nil
	}
	debit, credit, err := domain.ValidateBalance(subject, lines)
	if err != nil {
		return nil, debit, credit, err
	}
	return accounts, debit, credit, nil
}

func (s *journalService) PostEntry(ctx context.Context, workplaceID string, req dto.PostEntryRequest, userID string) (*domain.JournalEntry, error) {
	return s.createEntry(ctx, workplaceID, req, userID, domain.Posted)
}

func (s *journalService) CreateDraft(ctx context.Context, workplaceID string, req dto.PostEntryRequest, userID string) (*domain.JournalEntry, error) {
	return s.createEntry(ctx, workplaceID, req, userID, domain.Draft)
}

func (s *journalService) createEntry(ctx context.Context, workplaceID string, req dto.PostEntryRequest, userID string, status domain.EntryStatus) (*domain.JournalEntry, error) {
	entryType := req.EntryType
	if entryType == "" {
		entryType = domain.ManualEntry
	}
	if !entryType.IsValid() {
		return nil, fmt.Errorf("%w: unknown entry type %q", apperrors.ErrValidation, entryType)
	}
	if req.EntryDate.IsZero() {
		return nil, fmt.Errorf("%w: entry date is required", apperrors.ErrValidation)
	}

	entryID := uuid.NewString()
	lines := toDomainLines(entryID, req.Lines)
	subject := "new entry dated " + req.EntryDate.Format("2006-01-02")

	accounts, debit, credit, err := s.validateLines(ctx, workplaceID, subject, lines, status == domain.Posted)
	if err != nil {
		s.logFailure(ctx, err, "Journal entry rejected",
			slog.String("workplace_id", workplaceID),
			slog.String("status", string(status)))
		return nil, err
	}

	var balanceChanges map[string]decimal.Decimal
	if status == domain.Posted {
		balanceChanges, err = accounting.BalanceEffects(lines, accounts)
		if err != nil {
			return nil, err
		}
	}

	entry := domain.JournalEntry{
		EntryID:     entryID,
		WorkplaceID: workplaceID,
		EntryType:   entryType,
		EntryDate:   domain.DateOnly(req.EntryDate),
		Description: req.Description,
		Reference:   req.Reference,
		Status:      status,
		TotalDebit:  debit,
		TotalCredit: credit,
		Lines:       lines,
		Version:     1,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}

	if err := s.journalRepo.CreateEntry(ctx, &entry, balanceChanges); err != nil {
		s.logFailure(ctx, err, "Failed to store journal entry",
			slog.String("entry_id", entryID),
			slog.String("workplace_id", workplaceID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("entry_number", entry.EntryNumber),
		slog.String("status", string(entry.Status)),
		slog.String("workplace_id", workplaceID))
	return &entry, nil
}

func (s *journalService) GetEntry(ctx context.Context, workplaceID string, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	// Obscure existence across workplaces
	if entry.WorkplaceID != workplaceID {
		s.LogDebug(ctx, "Journal entry found but belongs to different workplace",
			slog.String("entry_id", entryID),
			slog.String("requested_workplace", workplaceID))
		return nil, apperrors.ErrNotFound
	}
	return entry, nil
}

func (s *journalService) ListEntries(ctx context.Context, workplaceID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	entries, nextToken, err := s.journalRepo.ListEntries(ctx, workplaceID, params.Status, params.Limit, params.NextToken)
	if err != nil {
		s.logFailure(ctx, err, "Failed to list journal entries", slog.String("workplace_id", workplaceID))
		return nil, fmt.Errorf("failed to retrieve journal entries: %w", err)
	}

	s.LogDebug(ctx, "Journal entries listed", slog.Int("count", len(entries)))
	return &dto.ListEntriesResponse{
		Entries:   dto.ToEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}

func (s *journalService) ListLineRevisions(ctx context.Context, workplaceID string, entryID string) ([]domain.LineRevision, error) {
	if _, err := s.GetEntry(ctx, workplaceID, entryID); err != nil {
		return nil, err
	}
	revisions, err := s.journalRepo.FindLineRevisions(ctx, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list line revisions", slog.String("entry_id", entryID))
		return nil, err
	}
	if revisions == nil {
		revisions = []domain.LineRevision{}
	}
	return revisions, nil
}

// withVersionRetry runs fn once when the caller pinned a version, otherwise
// retries it while it keeps losing optimistic races.
func withVersionRetry(expectedVersion *int, fn func() error) error {
	attempts := 1
	if expectedVersion == nil {
		attempts = maxVersionRetries
	}
	var err error
	for range attempts {
		err = fn()
		if !errors.Is(err, apperrors.ErrConcurrentModification) {
			return err
		}
	}
	return err
}

// loadForUpdate reads an entry and checks a caller-pinned version against it.
func (s *journalService) loadForUpdate(ctx context.Context, workplaceID, entryID string, expectedVersion *int) (*domain.JournalEntry, error) {
	entry, err := s.GetEntry(ctx, workplaceID, entryID)
	if err != nil {
		return nil, err
	}
	if expectedVersion != nil && *expectedVersion != entry.Version {
		return nil, apperrors.NewConflictError(apperrors.ErrConcurrentModification, entry.EntryNumber, "expected version %d, current %d", *expectedVersion, entry.Version)
	}
	return entry, nil
}

func (s *journalService) PostDraft(ctx context.Context, workplaceID string, entryID string, expectedVersion *int, userID string) (*domain.JournalEntry, error) {
	err := withVersionRetry(expectedVersion, func() error {
		entry, err := s.loadForUpdate(ctx, workplaceID, entryID, expectedVersion)
		if err != nil {
			return err
		}
		if entry.Status != domain.Draft {
			return apperrors.NewConflictError(apperrors.ErrNotDraft, entry.EntryNumber, "status is %s", entry.Status)
		}
		accounts, _, _, err := s.validateLines(ctx, workplaceID, entry.EntryNumber, entry.Lines, true)
		if err != nil {
			return err
		}
		changes, err := accounting.BalanceEffects(entry.Lines, accounts)
		if err != nil {
			return err
		}
		return s.journalRepo.TransitionEntry(ctx, domain.EntryTransition{
			EntryID:        entryID,
			From:           domain.Draft,
			To:             domain.Posted,
			Version:        entry.Version,
			BalanceChanges: changes,
			UpdatedBy:      userID,
			UpdatedAt:      s.Now(),
		})
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to post draft", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Draft posted", slog.String("entry_id", entryID))
	return s.GetEntry(ctx, workplaceID, entryID)
}

// ReverseEntry flips a posted entry to reversed and takes its effect back out
// of the stored account balances. No compensating entry is written.
func (s *journalService) ReverseEntry(ctx context.Context, workplaceID string, entryID string, expectedVersion *int, userID string) (*domain.JournalEntry, error) {
	err := withVersionRetry(expectedVersion, func() error {
		entry, err := s.loadForUpdate(ctx, workplaceID, entryID, expectedVersion)
		if err != nil {
			return err
		}
		if entry.Status != domain.Posted {
			return apperrors.NewConflictError(apperrors.ErrAlreadyReversed, entry.EntryNumber, "status is %s", entry.Status)
		}
		accounts, err := s.accountRepo.FindAccountsByIDs(ctx, domain.LineAccountIDs(entry.Lines))
		if err != nil {
			return err
		}
		effects, err := accounting.BalanceEffects(entry.Lines, accounts)
		if err != nil {
			return err
		}
		return s.journalRepo.TransitionEntry(ctx, domain.EntryTransition{
			EntryID:        entryID,
			From:           domain.Posted,
			To:             domain.Reversed,
			Version:        entry.Version,
			BalanceChanges: accounting.Negate(effects),
			UpdatedBy:      userID,
			UpdatedAt:      s.Now(),
		})
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to reverse journal entry", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry reversed", slog.String("entry_id", entryID), slog.String("reversed_by", userID))
	return s.GetEntry(ctx, workplaceID, entryID)
}

// ReplaceLines validates a full new line set and swaps it in. For posted
// entries the stored balances move by the difference between the two sets.
func (s *journalService) ReplaceLines(ctx context.Context, workplaceID string, entryID string, req dto.ReplaceLinesRequest, userID string) (*domain.JournalEntry, error) {
	err := withVersionRetry(req.ExpectedVersion, func() error {
		entry, err := s.loadForUpdate(ctx, workplaceID, entryID, req.ExpectedVersion)
		if err != nil {
			return err
		}
		if entry.Status == domain.Reversed {
			return apperrors.NewConflictError(apperrors.ErrAlreadyReversed, entry.EntryNumber, "reversed entries cannot be edited")
		}

		lines := toDomainLines(entryID, req.Lines)
		newAccounts, debit, credit, err := s.validateLines(ctx, workplaceID, entry.EntryNumber, lines, true)
		if err != nil {
			return err
		}

		replacement := domain.LineReplacement{
			EntryID:     entryID,
			Lines:       lines,
			TotalDebit:  debit,
			TotalCredit: credit,
			Version:     entry.Version,
			UpdatedBy:   userID,
			UpdatedAt:   s.Now(),
		}

		if entry.Status == domain.Posted {
			oldAccounts, err := s.accountRepo.FindAccountsByIDs(ctx, domain.LineAccountIDs(entry.Lines))
			if err != nil {
				return err
			}
			before, err := accounting.BalanceEffects(entry.Lines, oldAccounts)
			if err != nil {
				return err
			}
			after, err := accounting.BalanceEffects(lines, newAccounts)
			if err != nil {
				return err
			}
			replacement.BalanceChanges = accounting.Delta(before, after)
		}

		return s.journalRepo.ReplaceLines(ctx, replacement)
	})
	if err != nil {
		s.logFailure(ctx, err, "Failed to replace journal lines", slog.String("entry_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal lines replaced", slog.String("entry_id", entryID), slog.Int("line_count", len(req.Lines)))
	return s.GetEntry(ctx, workplaceID, entryID)
}
