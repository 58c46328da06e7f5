package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/google/uuid"
)

// reconciliationService matches book items (from the ledger) with bank items (from statements).
type reconciliationService struct {
	BaseService
	reconRepo   portsrepo.ReconciliationRepositoryFacade
	accountRepo portsrepo.AccountReader
	ledgerSvc   portssvc.LedgerSvcFacade
}

// NewReconciliationService creates a new ReconciliationService.
func NewReconciliationService(reconRepo portsrepo.ReconciliationRepositoryFacade, accountRepo portsrepo.AccountReader, ledgerSvc portssvc.LedgerSvcFacade, options ...ServiceOption) portssvc.ReconciliationSvcFacade {
	svc := &reconciliationService{
		reconRepo:   reconRepo,
		accountRepo: accountRepo,
		ledgerSvc:   ledgerSvc,
	}
	for _, option := range options {
		option(&svc.BaseService)
	}
	return svc
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

func (s *reconciliationService) RegisterBankAccount(ctx context.Context, workplaceID string, req dto.RegisterBankAccountRequest, userID string) (*domain.BankAccount, error) {
	chartAccount, err := s.accountRepo.FindAccountByID(ctx, req.ChartAccountID)
	if err != nil {
		return nil, fmt.Errorf("invalid chart account: %w", err)
	}
	if chartAccount.WorkplaceID != workplaceID {
		return nil, fmt.Errorf("invalid chart account: %w", apperrors.ErrNotFound)
	}
	if chartAccount.AccountType != domain.Asset || !chartAccount.CanPost() {
		return nil, apperrors.NewValidationError(apperrors.ErrNonPostableAccount, chartAccount.Code, "bank accounts must link to an active posting asset account")
	}

	bankAccount := domain.BankAccount{
		BankAccountID:  uuid.NewString(),
		WorkplaceID:    workplaceID,
		Name:           strings.TrimSpace(req.Name),
		BankName:       req.BankName,
		AccountNumber:  req.AccountNumber,
		ChartAccountID: chartAccount.AccountID,
		AuditFields:    domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.reconRepo.SaveBankAccount(ctx, bankAccount); err != nil {
		s.logFailure(ctx, err, "Failed to save bank account", slog.String("workplace_id", workplaceID))
		return nil, err
	}

	s.LogInfo(ctx, "Bank account registered",
		slog.String("bank_account_id", bankAccount.BankAccountID),
		slog.String("chart_account_id", bankAccount.ChartAccountID))
	return &bankAccount, nil
}

func (s *reconciliationService) ListBankAccounts(ctx context.Context, workplaceID string) ([]domain.BankAccount, error) {
	accounts, err := s.reconRepo.ListBankAccounts(ctx, workplaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bank accounts", slog.String("workplace_id", workplaceID))
		return nil, err
	}
	if accounts == nil {
		accounts = []domain.BankAccount{}
	}
	return accounts, nil
}

func (s *reconciliationService) bankAccount(ctx context.Context, workplaceID, bankAccountID string) (*domain.BankAccount, error) {
	ba, err := s.reconRepo.FindBankAccountByID(ctx, bankAccountID)
	if err != nil {
		return nil, err
	}
	if ba.WorkplaceID != workplaceID {
		return nil, apperrors.ErrNotFound
	}
	return ba, nil
}

func (s *reconciliationService) session(ctx context.Context, workplaceID, sessionID string) (*domain.ReconciliationSession, error) {
	session, err := s.reconRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load reconciliation session", slog.String("session_id", sessionID))
		}
		return nil, err
	}
	if session.WorkplaceID != workplaceID {
		return nil, apperrors.ErrNotFound
	}
	return session, nil
}

func requireOpen(session *domain.ReconciliationSession) error {
	if session.Status != domain.SessionOpen {
		return apperrors.NewConflictError(apperrors.ErrSessionClosed, session.SessionID, "as of %s", session.AsOfDate.Format("2006-01-02"))
	}
	return nil
}

func (s *reconciliationService) OpenSession(ctx context.Context, workplaceID string, req dto.OpenSessionRequest, userID string) (*domain.ReconciliationSession, error) {
	ba, err := s.bankAccount(ctx, workplaceID, req.BankAccountID)
	if err != nil {
		return nil, fmt.Errorf("invalid bank account: %w", err)
	}

	asOf := domain.DateOnly(req.AsOfDate)
	periodStart := domain.StartOfMonth(asOf)
	if req.PeriodStart != nil {
		periodStart = domain.DateOnly(*req.PeriodStart)
	}
	if !domain.HasStorableScale(req.StatementOpeningBalance) || !domain.HasStorableScale(req.StatementClosingBalance) {
		return nil, apperrors.NewValidationError(apperrors.ErrAmountPrecision, "bank account "+ba.BankAccountID,
			"statement balances %s and %s exceed %d decimal places", req.StatementOpeningBalance, req.StatementClosingBalance, domain.AmountScale)
	}
	if periodStart.After(asOf) {
		return nil, fmt.Errorf("%w: period start %s is after as-of date %s", apperrors.ErrValidation,
			periodStart.Format("2006-01-02"), asOf.Format("2006-01-02"))
	}

	session, err := s.reconRepo.OpenSession(ctx, domain.ReconciliationSession{
		SessionID:               uuid.NewString(),
		WorkplaceID:             workplaceID,
		BankAccountID:           ba.BankAccountID,
		PeriodStart:             periodStart,
		AsOfDate:                asOf,
		StatementOpeningBalance: req.StatementOpeningBalance,
		StatementClosingBalance: req.StatementClosingBalance,
		Status:                  domain.SessionOpen,
		AuditFields:             domain.NewAuditFields(userID, s.Now()),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to open reconciliation session", slog.String("bank_account_id", ba.BankAccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Reconciliation session opened",
		slog.String("session_id", session.SessionID),
		slog.String("as_of", asOf.Format("2006-01-02")))
	return session, nil
}

func (s *reconciliationService) GetSession(ctx context.Context, workplaceID string, sessionID string) (*domain.ReconciliationSession, []domain.ReconciliationItem, error) {
	session, err := s.session(ctx, workplaceID, sessionID)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.reconRepo.ListItems(ctx, sessionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list reconciliation items", slog.String("session_id", sessionID))
		return nil, nil, err
	}
	if items == nil {
		items = []domain.ReconciliationItem{}
	}
	return session, items, nil
}

// SyncBookItems rebuilds the book side from the linked account's posted
// ledger rows inside the session period. A book item whose line is gone is
// removed, and a bank item it was matched to becomes outstanding again.
func (s *reconciliationService) SyncBookItems(ctx context.Context, workplaceID string, sessionID string) (*domain.SyncResult, error) {
	session, err := s.session(ctx, workplaceID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireOpen(session); err != nil {
		return nil, err
	}
	ba, err := s.bankAccount(ctx, workplaceID, session.BankAccountID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	var items []domain.ReconciliationItem
	for row, err := range s.ledgerSvc.LedgerFor(ctx, workplaceID, ba.ChartAccountID, session.Period(), 0) {
		if err != nil {
			s.LogError(ctx, err, "Failed to read ledger for book sync", slog.String("session_id", sessionID))
			return nil, err
		}
		amount := row.DebitAmount.Sub(row.CreditAmount)
		items = append(items, domain.ReconciliationItem{
			ItemID:          uuid.NewString(),
			SessionID:       sessionID,
			SourceType:      domain.BookSource,
			MovementType:    domain.BookMovementType(amount),
			TransactionDate: row.EntryDate,
			Description:     row.Description,
			Amount:          amount,
			NaturalKey:      domain.BookNaturalKey(ba.ChartAccountID, row.EntryDate, amount, row.Description, row.LineID),
			SourceLineID:    row.LineID,
			CreatedAt:       now,
		})
	}

	bookBalance, err := s.ledgerSvc.AccountBalanceAsOf(ctx, workplaceID, ba.ChartAccountID, session.AsOfDate)
	if err != nil {
		return nil, err
	}

	result, err := s.reconRepo.SyncBookItems(ctx, sessionID, items, bookBalance)
	if err != nil {
		s.logFailure(ctx, err, "Failed to store book items", slog.String("session_id", sessionID))
		return nil, err
	}

	s.LogInfo(ctx, "Book items synced",
		slog.String("session_id", sessionID),
		slog.Int("inserted", result.Inserted),
		slog.Int("removed", result.Removed),
		slog.Int("released", result.Released),
		slog.Int("kept", result.Kept))
	return &result, nil
}

// ImportStatement converts statement rows into bank items. The movement type
// wins over the direction; with neither, the amount's sign decides. Bad rows
// are reported and skipped.
func (s *reconciliationService) ImportStatement(ctx context.Context, workplaceID string, sessionID string, movements []domain.StatementMovement) (*domain.StatementImportResult, error) {
	session, err := s.session(ctx, workplaceID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireOpen(session); err != nil {
		return nil, err
	}

	result := &domain.StatementImportResult{Created: []domain.ReconciliationItem{}, Failures: []domain.ImportFailure{}}
	now := s.Now()
	for i, m := range movements {
		row := m.Row
		if row == 0 {
			row = i + 1
		}
		id := fmt.Sprintf("row %d", row)
		if d := strings.TrimSpace(m.Description); d != "" {
			id = fmt.Sprintf("row %d (%s)", row, d)
		}
		movementType, reason := resolveMovementType(m)
		switch {
		case m.Date.IsZero():
			reason = "date is required"
		case m.Amount.IsZero():
			reason = "amount must not be zero"
		case !domain.HasStorableScale(m.Amount):
			reason = fmt.Sprintf("amount %s has more than %d decimal places", m.Amount, domain.AmountScale)
		}
		if reason != "" {
			result.Failures = append(result.Failures, domain.ImportFailure{Identifier: id, Reason: reason})
			continue
		}

		amount := m.Amount.Abs()
		if movementType.Sign() < 0 {
			amount = amount.Neg()
		}
		result.Created = append(result.Created, domain.ReconciliationItem{
			ItemID:          uuid.NewString(),
			SessionID:       sessionID,
			SourceType:      domain.BankSource,
			MovementType:    movementType,
			TransactionDate: domain.DateOnly(m.Date),
			Description:     strings.TrimSpace(m.Description),
			Amount:          amount,
			CreatedAt:       now,
		})
	}

	if len(result.Created) > 0 {
		if err := s.reconRepo.InsertBankItems(ctx, sessionID, result.Created); err != nil {
			s.logFailure(ctx, err, "Failed to store bank items", slog.String("session_id", sessionID))
			return nil, err
		}
	}

	s.LogInfo(ctx, "Statement imported",
		slog.String("session_id", sessionID),
		slog.Int("created", len(result.Created)),
		slog.Int("failed", len(result.Failures)))
	return result, nil
}

// resolveMovementType returns the movement type of a raw row, or a reason it has none.
func resolveMovementType(m domain.StatementMovement) (domain.MovementType, string) {
	if m.MovementType != "" {
		t := domain.MovementType(strings.ToUpper(strings.TrimSpace(string(m.MovementType))))
		if !t.IsValid() {
			return "", fmt.Sprintf("unknown movement type %q", m.MovementType)
		}
		return t, ""
	}
	if m.Direction != "" {
		t, ok := m.Direction.DefaultMovement()
		if !ok {
			return "", fmt.Sprintf("unknown direction %q", m.Direction)
		}
		return t, ""
	}
	return domain.BookMovementType(m.Amount), ""
}

func (s *reconciliationService) MatchItems(ctx context.Context, workplaceID string, bookItemID string, bankItemID string) error {
	items, err := s.reconRepo.FindItemsByIDs(ctx, []string{bookItemID, bankItemID})
	if err != nil {
		return err
	}
	book, okBook := items[bookItemID]
	bank, okBank := items[bankItemID]
	if !okBook || !okBank {
		return apperrors.ErrNotFound
	}
	session, err := s.session(ctx, workplaceID, book.SessionID)
	if err != nil {
		return err
	}

	switch {
	case book.SessionID != bank.SessionID:
		return apperrors.NewValidationError(apperrors.ErrInvalidMatch, bookItemID+"/"+bankItemID, "items belong to different sessions")
	case book.SourceType != domain.BookSource || bank.SourceType != domain.BankSource:
		return apperrors.NewValidationError(apperrors.ErrInvalidMatch, bookItemID+"/"+bankItemID, "a match pairs one book item with one bank item")
	case book.IsMatched():
		return apperrors.NewConflictError(apperrors.ErrAlreadyMatched, bookItemID, "matched to %s", book.MatchedItemID)
	case bank.IsMatched():
		return apperrors.NewConflictError(apperrors.ErrAlreadyMatched, bankItemID, "matched to %s", bank.MatchedItemID)
	}
	if err := requireOpen(session); err != nil {
		return err
	}

	if err := s.reconRepo.MatchItems(ctx, session.SessionID, bookItemID, bankItemID); err != nil {
		s.logFailure(ctx, err, "Failed to match items",
			slog.String("book_item_id", bookItemID),
			slog.String("bank_item_id", bankItemID))
		return err
	}

	s.LogInfo(ctx, "Items matched",
		slog.String("session_id", session.SessionID),
		slog.String("book_item_id", bookItemID),
		slog.String("bank_item_id", bankItemID))
	return nil
}

func (s *reconciliationService) UnmatchItem(ctx context.Context, workplaceID string, itemID string) error {
	items, err := s.reconRepo.FindItemsByIDs(ctx, []string{itemID})
	if err != nil {
		return err
	}
	item, ok := items[itemID]
	if !ok {
		return apperrors.ErrNotFound
	}
	session, err := s.session(ctx, workplaceID, item.SessionID)
	if err != nil {
		return err
	}
	if err := requireOpen(session); err != nil {
		return err
	}
	if !item.IsMatched() {
		return fmt.Errorf("%w: item %s is not matched", apperrors.ErrValidation, itemID)
	}

	if err := s.reconRepo.UnmatchItem(ctx, session.SessionID, itemID); err != nil {
		s.logFailure(ctx, err, "Failed to unmatch item", slog.String("item_id", itemID))
		return err
	}

	s.LogInfo(ctx, "Item unmatched",
		slog.String("item_id", itemID),
		slog.String("counterpart_id", item.MatchedItemID))
	return nil
}

func (s *reconciliationService) ComputeSummary(ctx context.Context, workplaceID string, sessionID string) (*domain.ReconciliationSummary, error) {
	session, items, err := s.GetSession(ctx, workplaceID, sessionID)
	if err != nil {
		return nil, err
	}
	summary := domain.Summarize(*session, items)
	return &summary, nil
}

func (s *reconciliationService) SuggestMatches(ctx context.Context, workplaceID string, sessionID string) ([]domain.MatchSuggestion, error) {
	_, items, err := s.GetSession(ctx, workplaceID, sessionID)
	if err != nil {
		return nil, err
	}
	return domain.SuggestMatches(items), nil
}

// CloseSession closes a session whose statement closing balance is explained
// by the matched bank items. Outstanding items do not block closing.
func (s *reconciliationService) CloseSession(ctx context.Context, workplaceID string, sessionID string, userID string) (*domain.ReconciliationSession, error) {
	session, err := s.session(ctx, workplaceID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := requireOpen(session); err != nil {
		return nil, err
	}

	check := func(current domain.ReconciliationSession, items []domain.ReconciliationItem) error {
		if err := requireOpen(&current); err != nil {
			return err
		}
		summary := domain.Summarize(current, items)
		if !summary.IsBalanced {
			return apperrors.NewConflictError(apperrors.ErrSessionNotBalanced, sessionID, "difference %s", summary.Difference)
		}
		return nil
	}

	closed, err := s.reconRepo.CloseSession(ctx, sessionID, check, userID, s.Now())
	if err != nil {
		s.logFailure(ctx, err, "Failed to close reconciliation session", slog.String("session_id", sessionID))
		return nil, err
	}

	s.LogInfo(ctx, "Reconciliation session closed", slog.String("session_id", sessionID))
	return closed, nil
}
