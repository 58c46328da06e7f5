package services

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
)

// BankAccountSvc manages bank account links.
type BankAccountSvc interface {
	RegisterBankAccount(ctx context.Context, workplaceID string, req dto.RegisterBankAccountRequest, userID string) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context, workplaceID string) ([]domain.BankAccount, error)
}

// ReconciliationSessionSvc manages session lifecycle and contents.
type ReconciliationSessionSvc interface {
	// OpenSession returns the session for (bank account, as-of date), creating it if needed.
	OpenSession(ctx context.Context, workplaceID string, req dto.OpenSessionRequest, userID string) (*domain.ReconciliationSession, error)

	// GetSession returns a session and its items.
	GetSession(ctx context.Context, workplaceID string, sessionID string) (*domain.ReconciliationSession, []domain.ReconciliationItem, error)

	// SyncBookItems refreshes book items from the linked account's posted ledger.
	SyncBookItems(ctx context.Context, workplaceID string, sessionID string) (*domain.SyncResult, error)

	// ImportStatement turns raw statement rows into bank items.
	ImportStatement(ctx context.Context, workplaceID string, sessionID string, movements []domain.StatementMovement) (*domain.StatementImportResult, error)

	// CloseSession closes a balanced session.
	CloseSession(ctx context.Context, workplaceID string, sessionID string, userID string) (*domain.ReconciliationSession, error)
}

// ReconciliationMatchSvc pairs book and bank items.
type ReconciliationMatchSvc interface {
	MatchItems(ctx context.Context, workplaceID string, bookItemID string, bankItemID string) error
	UnmatchItem(ctx context.Context, workplaceID string, itemID string) error
	SuggestMatches(ctx context.Context, workplaceID string, sessionID string) ([]domain.MatchSuggestion, error)
}

// ReconciliationReportSvc computes reconciliation figures.
type ReconciliationReportSvc interface {
	ComputeSummary(ctx context.Context, workplaceID string, sessionID string) (*domain.ReconciliationSummary, error)
}

// ReconciliationSvcFacade combines all reconciliation-related service interfaces
type ReconciliationSvcFacade interface {
	BankAccountSvc
	ReconciliationSessionSvc
	ReconciliationMatchSvc
	ReconciliationReportSvc
}
