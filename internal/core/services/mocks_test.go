package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountRepositoryWithTx interface
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryWithTx = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, workplaceID string, code string) (*domain.Account, error) {
	args := m.Called(ctx, workplaceID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, workplaceID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, workplaceID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountHierarchy(ctx context.Context, workplaceID string) ([]domain.Account, error) {
	args := m.Called(ctx, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) CountChildren(ctx context.Context, accountID string) (int, error) {
	args := m.Called(ctx, accountID)
	return args.Int(0), args.Error(1)
}

func (m *MockAccountRepository) FindAccountReferences(ctx context.Context, accountID string) (domain.AccountReferences, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(domain.AccountReferences), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) SetAccountStatus(ctx context.Context, accountID string, status domain.AccountStatus, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, status, userID, now)
	return args.Error(0)
}

// ApplyHierarchyChange runs plan over the chart returned for workplaceID.
// A plan that succeeds is reported as an "ApplyPlannedChange" call so tests
// can match on the change that would be written.
func (m *MockAccountRepository) ApplyHierarchyChange(ctx context.Context, workplaceID string, plan domain.HierarchyPlan) (domain.HierarchyChange, error) {
	args := m.Called(ctx, workplaceID)
	if err := args.Error(1); err != nil {
		return domain.HierarchyChange{}, err
	}
	change, err := plan(domain.NewAccountTree(args.Get(0).([]domain.Account)))
	if err != nil {
		return domain.HierarchyChange{}, err
	}
	if err := m.MethodCalled("ApplyPlannedChange", ctx, change).Error(0); err != nil {
		return domain.HierarchyChange{}, err
	}
	return change, nil
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, balanceChanges, userID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockAccountRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockAccountRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockAccountRepository) WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return m.Called(ctx, fn).Error(0)
}

// MockJournalRepository is a mock type for the JournalRepositoryWithTx interface
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryWithTx = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, workplaceID string, status domain.EntryStatus, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, workplaceID, status, limit, nextToken)
	var entries []domain.JournalEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.JournalEntry)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return entries, next, args.Error(2)
}

func (m *MockJournalRepository) FindLineRevisions(ctx context.Context, entryID string) ([]domain.LineRevision, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineRevision), args.Error(1)
}

func (m *MockJournalRepository) CreateEntry(ctx context.Context, entry *domain.JournalEntry, balanceChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, entry, balanceChanges)
	return args.Error(0)
}

func (m *MockJournalRepository) TransitionEntry(ctx context.Context, transition domain.EntryTransition) error {
	args := m.Called(ctx, transition)
	return args.Error(0)
}

func (m *MockJournalRepository) ReplaceLines(ctx context.Context, replacement domain.LineReplacement) error {
	args := m.Called(ctx, replacement)
	return args.Error(0)
}

func (m *MockJournalRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockJournalRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockJournalRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockJournalRepository) WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return m.Called(ctx, fn).Error(0)
}

// MockLedgerRepository is a mock type for the LedgerRepositoryFacade interface
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) SumAccountLines(ctx context.Context, workplaceID string, accountIDs []string, status domain.EntryStatus, rng domain.DateRange) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, workplaceID, accountIDs, status, rng)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockLedgerRepository) ListLedgerLines(ctx context.Context, workplaceID string, accountID string, rng domain.DateRange, after *domain.LedgerCursor, limit int) ([]domain.LedgerRow, error) {
	args := m.Called(ctx, workplaceID, accountID, rng, after, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// Copy so the service may fold in place without touching the fixture.
	rows := append([]domain.LedgerRow(nil), args.Get(0).([]domain.LedgerRow)...)
	return rows, args.Error(1)
}

func (m *MockLedgerRepository) AccountTotals(ctx context.Context, workplaceID string, rng domain.DateRange, status domain.EntryStatus) ([]domain.AccountTotal, error) {
	args := m.Called(ctx, workplaceID, rng, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountTotal), args.Error(1)
}

func (m *MockLedgerRepository) RebuildBalances(ctx context.Context, workplaceID string) (int64, error) {
	args := m.Called(ctx, workplaceID)
	return args.Get(0).(int64), args.Error(1)
}

// MockReconciliationRepository is a mock type for the ReconciliationRepositoryFacade interface
type MockReconciliationRepository struct {
	mock.Mock
}

var _ portsrepo.ReconciliationRepositoryFacade = (*MockReconciliationRepository)(nil)

func (m *MockReconciliationRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockReconciliationRepository) ListBankAccounts(ctx context.Context, workplaceID string) ([]domain.BankAccount, error) {
	args := m.Called(ctx, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockReconciliationRepository) SaveBankAccount(ctx context.Context, bankAccount domain.BankAccount) error {
	return m.Called(ctx, bankAccount).Error(0)
}

func (m *MockReconciliationRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.ReconciliationSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationSession), args.Error(1)
}

func (m *MockReconciliationRepository) ListItems(ctx context.Context, sessionID string) ([]domain.ReconciliationItem, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReconciliationItem), args.Error(1)
}

func (m *MockReconciliationRepository) FindItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.ReconciliationItem, error) {
	args := m.Called(ctx, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.ReconciliationItem), args.Error(1)
}

func (m *MockReconciliationRepository) OpenSession(ctx context.Context, session domain.ReconciliationSession) (*domain.ReconciliationSession, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationSession), args.Error(1)
}

func (m *MockReconciliationRepository) SyncBookItems(ctx context.Context, sessionID string, items []domain.ReconciliationItem, bookBalance decimal.Decimal) (domain.SyncResult, error) {
	args := m.Called(ctx, sessionID, items, bookBalance)
	return args.Get(0).(domain.SyncResult), args.Error(1)
}

func (m *MockReconciliationRepository) InsertBankItems(ctx context.Context, sessionID string, items []domain.ReconciliationItem) error {
	return m.Called(ctx, sessionID, items).Error(0)
}

func (m *MockReconciliationRepository) MatchItems(ctx context.Context, sessionID string, bookItemID string, bankItemID string) error {
	return m.Called(ctx, sessionID, bookItemID, bankItemID).Error(0)
}

func (m *MockReconciliationRepository) UnmatchItem(ctx context.Context, sessionID string, itemID string) error {
	return m.Called(ctx, sessionID, itemID).Error(0)
}

func (m *MockReconciliationRepository) CloseSession(ctx context.Context, sessionID string, check portsrepo.SessionCloseCheck, userID string, now time.Time) (*domain.ReconciliationSession, error) {
	args := m.Called(ctx, sessionID, check, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationSession), args.Error(1)
}
