package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByCode retrieves an account by its code within a workplace.
	FindAccountByCode(ctx context.Context, workplaceID string, code string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs. Missing IDs are simply absent from the map.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves a page of a workplace's chart ordered by code.
	ListAccounts(ctx context.Context, workplaceID string, limit int, offset int) ([]domain.Account, error)

	// ListAccountHierarchy retrieves every account of a workplace, used to build the parent index.
	ListAccountHierarchy(ctx context.Context, workplaceID string) ([]domain.Account, error)

	// CountChildren counts the direct children of an account.
	CountChildren(ctx context.Context, accountID string) (int, error)

	// FindAccountReferences counts the journal lines and bank account links pointing at an account.
	FindAccountReferences(ctx context.Context, accountID string) (domain.AccountReferences, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account. A parent is locked and re-checked in
	// the same transaction and loses posting eligibility when it still had it.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's descriptive fields.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// SetAccountStatus activates or deactivates an account.
	SetAccountStatus(ctx context.Context, accountID string, status domain.AccountStatus, userID string, now time.Time) error

	// ApplyHierarchyChange locks the workplace chart, runs plan against the
	// locked tree and applies the resulting change in one transaction.
	ApplyHierarchyChange(ctx context.Context, workplaceID string, plan domain.HierarchyPlan) (domain.HierarchyChange, error)

	// DeleteAccount removes an account that has no children, references or balance.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountTransactionSupport defines operations that support account transactions
type AccountTransactionSupport interface {
	// FindAccountsByIDsForUpdate selects accounts and locks them for update within a transaction.
	// Rows are locked in ascending ID order.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)

	// UpdateAccountBalancesInTx increments the balance of multiple accounts within a given transaction.
	UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
