package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BankAccountReader defines read operations for bank account links
type BankAccountReader interface {
	FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context, workplaceID string) ([]domain.BankAccount, error)
}

// BankAccountWriter defines write operations for bank account links
type BankAccountWriter interface {
	SaveBankAccount(ctx context.Context, bankAccount domain.BankAccount) error
}

// SessionCloseCheck decides, under the session lock, whether a session may close.
type SessionCloseCheck func(session domain.ReconciliationSession, items []domain.ReconciliationItem) error

// ReconciliationReader defines read operations for reconciliation sessions and items
type ReconciliationReader interface {
	FindSessionByID(ctx context.Context, sessionID string) (*domain.ReconciliationSession, error)

	// ListItems returns a session's items ordered by transaction date, source and creation.
	ListItems(ctx context.Context, sessionID string) ([]domain.ReconciliationItem, error)

	// FindItemsByIDs retrieves items by ID. Missing IDs are absent from the map.
	FindItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.ReconciliationItem, error)
}

// ReconciliationWriter defines write operations for reconciliation sessions and items.
// Every write refuses closed sessions.
type ReconciliationWriter interface {
	// OpenSession inserts the session unless one already exists for the same
	// bank account and as-of date, and returns the stored session.
	OpenSession(ctx context.Context, session domain.ReconciliationSession) (*domain.ReconciliationSession, error)

	// SyncBookItems upserts book items by natural key, removes book items
	// absent from items (unmatching their bank counterparts) and stores the
	// refreshed book balance.
	SyncBookItems(ctx context.Context, sessionID string, items []domain.ReconciliationItem, bookBalance decimal.Decimal) (domain.SyncResult, error)

	// InsertBankItems stores imported statement items.
	InsertBankItems(ctx context.Context, sessionID string, items []domain.ReconciliationItem) error

	// MatchItems links a book and a bank item to each other.
	MatchItems(ctx context.Context, sessionID string, bookItemID string, bankItemID string) error

	// UnmatchItem clears an item and its counterpart.
	UnmatchItem(ctx context.Context, sessionID string, itemID string) error

	// CloseSession closes a session if check accepts its current state.
	CloseSession(ctx context.Context, sessionID string, check SessionCloseCheck, userID string, now time.Time) (*domain.ReconciliationSession, error)
}

// ReconciliationRepositoryFacade combines all reconciliation-related repository interfaces
type ReconciliationRepositoryFacade interface {
	BankAccountReader
	BankAccountWriter
	ReconciliationReader
	ReconciliationWriter
}
