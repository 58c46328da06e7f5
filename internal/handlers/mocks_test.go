package handlers_test

import (
	"context"
	"iter"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ChartService ---
type MockChartService struct {
	mock.Mock
}

var _ portssvc.ChartSvcFacade = (*MockChartService)(nil)

func (m *MockChartService) GetAccountByID(ctx context.Context, workplaceID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, workplaceID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockChartService) GetAccountByCode(ctx context.Context, workplaceID string, code string) (*domain.Account, error) {
	args := m.Called(ctx, workplaceID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockChartService) GetAccountsByIDs(ctx context.Context, workplaceID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, workplaceID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}
func (m *MockChartService) ListAccounts(ctx context.Context, workplaceID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, workplaceID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockChartService) AccountTree(ctx context.Context, workplaceID string) (*domain.AccountTree, error) {
	args := m.Called(ctx, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountTree), args.Error(1)
}
func (m *MockChartService) CreateAccount(ctx context.Context, workplaceID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, workplaceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockChartService) UpdateAccount(ctx context.Context, workplaceID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, workplaceID, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockChartService) ReparentAccount(ctx context.Context, workplaceID string, accountID string, newParentID string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, workplaceID, accountID, newParentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockChartService) DeactivateAccount(ctx context.Context, workplaceID string, accountID string, userID string) error {
	return m.Called(ctx, workplaceID, accountID, userID).Error(0)
}
func (m *MockChartService) ActivateAccount(ctx context.Context, workplaceID string, accountID string, userID string) error {
	return m.Called(ctx, workplaceID, accountID, userID).Error(0)
}
func (m *MockChartService) DeleteAccount(ctx context.Context, workplaceID string, accountID string, userID string) error {
	return m.Called(ctx, workplaceID, accountID, userID).Error(0)
}
func (m *MockChartService) ImportChart(ctx context.Context, workplaceID string, rows []domain.ChartImportRow, mode domain.ChartImportMode, userID string) (*domain.ChartImportResult, error) {
	args := m.Called(ctx, workplaceID, rows, mode, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartImportResult), args.Error(1)
}
func (m *MockChartService) SeedDefaultChart(ctx context.Context, workplaceID string, userID string) (*domain.ChartImportResult, error) {
	args := m.Called(ctx, workplaceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartImportResult), args.Error(1)
}

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

func (m *MockJournalService) GetEntry(ctx context.Context, workplaceID string, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, workplaceID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) ListEntries(ctx context.Context, workplaceID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, workplaceID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}
func (m *MockJournalService) ListLineRevisions(ctx context.Context, workplaceID string, entryID string) ([]domain.LineRevision, error) {
	args := m.Called(ctx, workplaceID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineRevision), args.Error(1)
}
func (m *MockJournalService) PostEntry(ctx context.Context, workplaceID string, req dto.PostEntryRequest, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, workplaceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) CreateDraft(ctx context.Context, workplaceID string, req dto.PostEntryRequest, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, workplaceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) PostDraft(ctx context.Context, workplaceID string, entryID string, expectedVersion *int, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, workplaceID, entryID, expectedVersion, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) ReverseEntry(ctx context.Context, workplaceID string, entryID string, expectedVersion *int, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, workplaceID, entryID, expectedVersion, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalService) ReplaceLines(ctx context.Context, workplaceID string, entryID string, req dto.ReplaceLinesRequest, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, workplaceID, entryID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

func (m *MockLedgerService) AccountBalanceAsOf(ctx context.Context, workplaceID string, accountID string, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, workplaceID, accountID, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockLedgerService) RollupBalanceAsOf(ctx context.Context, workplaceID string, accountID string, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, workplaceID, accountID, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockLedgerService) LedgerFor(ctx context.Context, workplaceID string, accountID string, rng domain.DateRange, pageSize int) iter.Seq2[domain.LedgerRow, error] {
	args := m.Called(ctx, workplaceID, accountID, rng, pageSize)
	return args.Get(0).(iter.Seq2[domain.LedgerRow, error])
}
func (m *MockLedgerService) LedgerPage(ctx context.Context, workplaceID string, accountID string, rng domain.DateRange, limit int, nextToken *string) (*domain.LedgerPage, error) {
	args := m.Called(ctx, workplaceID, accountID, rng, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerPage), args.Error(1)
}
func (m *MockLedgerService) AccountTotals(ctx context.Context, workplaceID string, rng domain.DateRange) ([]domain.AccountTotal, error) {
	args := m.Called(ctx, workplaceID, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountTotal), args.Error(1)
}
func (m *MockLedgerService) TrialBalance(ctx context.Context, workplaceID string, rng domain.DateRange) (*domain.TrialBalance, error) {
	args := m.Called(ctx, workplaceID, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalance), args.Error(1)
}
func (m *MockLedgerService) DraftActivity(ctx context.Context, workplaceID string, rng domain.DateRange) ([]domain.AccountTotal, error) {
	args := m.Called(ctx, workplaceID, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountTotal), args.Error(1)
}
func (m *MockLedgerService) RebuildBalances(ctx context.Context, workplaceID string) (int64, error) {
	args := m.Called(ctx, workplaceID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ReconciliationService ---
type MockReconciliationService struct {
	mock.Mock
}

var _ portssvc.ReconciliationSvcFacade = (*MockReconciliationService)(nil)

func (m *MockReconciliationService) RegisterBankAccount(ctx context.Context, workplaceID string, req dto.RegisterBankAccountRequest, userID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, workplaceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}
func (m *MockReconciliationService) ListBankAccounts(ctx context.Context, workplaceID string) ([]domain.BankAccount, error) {
	args := m.Called(ctx, workplaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}
func (m *MockReconciliationService) OpenSession(ctx context.Context, workplaceID string, req dto.OpenSessionRequest, userID string) (*domain.ReconciliationSession, error) {
	args := m.Called(ctx, workplaceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationSession), args.Error(1)
}
func (m *MockReconciliationService) GetSession(ctx context.Context, workplaceID string, sessionID string) (*domain.ReconciliationSession, []domain.ReconciliationItem, error) {
	args := m.Called(ctx, workplaceID, sessionID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.ReconciliationSession), args.Get(1).([]domain.ReconciliationItem), args.Error(2)
}
func (m *MockReconciliationService) SyncBookItems(ctx context.Context, workplaceID string, sessionID string) (*domain.SyncResult, error) {
	args := m.Called(ctx, workplaceID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncResult), args.Error(1)
}
func (m *MockReconciliationService) ImportStatement(ctx context.Context, workplaceID string, sessionID string, movements []domain.StatementMovement) (*domain.StatementImportResult, error) {
	args := m.Called(ctx, workplaceID, sessionID, movements)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatementImportResult), args.Error(1)
}
func (m *MockReconciliationService) CloseSession(ctx context.Context, workplaceID string, sessionID string, userID string) (*domain.ReconciliationSession, error) {
	args := m.Called(ctx, workplaceID, sessionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationSession), args.Error(1)
}
func (m *MockReconciliationService) MatchItems(ctx context.Context, workplaceID string, bookItemID string, bankItemID string) error {
	return m.Called(ctx, workplaceID, bookItemID, bankItemID).Error(0)
}
func (m *MockReconciliationService) UnmatchItem(ctx context.Context, workplaceID string, itemID string) error {
	return m.Called(ctx, workplaceID, itemID).Error(0)
}
func (m *MockReconciliationService) SuggestMatches(ctx context.Context, workplaceID string, sessionID string) ([]domain.MatchSuggestion, error) {
	args := m.Called(ctx, workplaceID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MatchSuggestion), args.Error(1)
}
func (m *MockReconciliationService) ComputeSummary(ctx context.Context, workplaceID string, sessionID string) (*domain.ReconciliationSummary, error) {
	args := m.Called(ctx, workplaceID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationSummary), args.Error(1)
}
