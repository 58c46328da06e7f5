package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func day(d int) time.Time { return time.Date(2026, 10, d, 0, 0, 0, 0, time.UTC) }

func ledgerRow(entryNumber string, date int, line int, debit, credit string) domain.LedgerRow {
	return domain.LedgerRow{
		EntryID:      "e-" + entryNumber,
		EntryNumber:  entryNumber,
		EntryDate:    day(date),
		CreatedAt:    day(date).Add(time.Hour),
		LineID:       fmt.Sprintf("%s-%d", entryNumber, line),
		LineNumber:   line,
		AccountID:    "cash",
		Description:  "movement " + entryNumber,
		DebitAmount:  dec(debit),
		CreditAmount: dec(credit),
	}
}

type LedgerServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	mockLedgerRepo  *MockLedgerRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.LedgerSvcFacade
	cash, sales     domain.Account
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewLedgerService(suite.mockLedgerRepo, suite.mockAccountRepo, 2)
	suite.cash = account("cash", "1101", domain.Asset, "cur", 3, true)
	suite.sales = account("sales", "4101", domain.Income, "", 3, true)
}

func (suite *LedgerServiceTestSuite) TearDownTest() {
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAccountBalanceAsOf_SignsByNormalBalance() {
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, "sales").Return(&suite.sales, nil).Once()
	suite.mockLedgerRepo.On("SumAccountLines", suite.ctx, testWorkplaceID, []string{"sales"}, domain.Posted, domain.Through(day(31))).
		Return(dec("100"), dec("1100"), nil).Once()

	balance, err := suite.service.AccountBalanceAsOf(suite.ctx, testWorkplaceID, "sales", day(31).Add(18*time.Hour))

	suite.Require().NoError(err)
	suite.True(balance.Equal(dec("1000")), "credit-normal account gains credit minus debit, got %s", balance)
}

func (suite *LedgerServiceTestSuite) TestRollupBalanceAsOf_SumsSubtree() {
	current := account("cur", "11", domain.Asset, "", 2, false)
	bank := account("bank", "1102", domain.Asset, "cur", 3, true)
	suite.mockAccountRepo.On("ListAccountHierarchy", suite.ctx, testWorkplaceID).
		Return([]domain.Account{current, suite.cash, bank, suite.sales}, nil).Once()
	suite.mockLedgerRepo.On("SumAccountLines", suite.ctx, testWorkplaceID,
		mock.MatchedBy(func(ids []string) bool { return len(ids) == 3 && ids[0] == "cur" }),
		domain.Posted, domain.Through(day(31))).
		Return(dec("1500"), dec("200"), nil).Once()

	balance, err := suite.service.RollupBalanceAsOf(suite.ctx, testWorkplaceID, "cur", day(31))

	suite.Require().NoError(err)
	suite.True(balance.Equal(dec("1300")))
}

func (suite *LedgerServiceTestSuite) TestLedgerFor_FoldsAcrossPages() {
	rng := domain.DateRange{From: day(1), To: day(31)}
	page1 := []domain.LedgerRow{ledgerRow("ED-20261001", 2, 1, "1000", "0"), ledgerRow("ED-20261002", 5, 2, "0", "300")}
	page2 := []domain.LedgerRow{ledgerRow("ED-20261003", 9, 1, "50", "0")}

	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, "cash").Return(&suite.cash, nil).Once()
	suite.mockLedgerRepo.On("SumAccountLines", suite.ctx, testWorkplaceID, []string{"cash"}, domain.Posted, domain.Through(time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC))).
		Return(dec("200"), dec("0"), nil).Once()
	suite.mockLedgerRepo.On("ListLedgerLines", suite.ctx, testWorkplaceID, "cash", rng, (*domain.LedgerCursor)(nil), 2).
		Return(page1, nil).Once()
	suite.mockLedgerRepo.On("ListLedgerLines", suite.ctx, testWorkplaceID, "cash", rng,
		mock.MatchedBy(func(c *domain.LedgerCursor) bool {
			return c != nil && c.EntryNumber == "ED-20261002" && c.LineNumber == 2
		}), 2).
		Return(page2, nil).Once()

	var balances []string
	for row, err := range suite.service.LedgerFor(suite.ctx, testWorkplaceID, "cash", rng, 0) {
		suite.Require().NoError(err)
		balances = append(balances, row.RunningBalance.String())
	}

	suite.Equal([]string{"1200", "900", "950"}, balances)
}

func (suite *LedgerServiceTestSuite) TestLedgerFor_StopsOnError() {
	rng := domain.DateRange{}
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, "cash").Return(&suite.cash, nil).Once()
	suite.mockLedgerRepo.On("ListLedgerLines", suite.ctx, testWorkplaceID, "cash", rng, (*domain.LedgerCursor)(nil), 5).
		Return(nil, assertErr).Once()

	var errs int
	for _, err := range suite.service.LedgerFor(suite.ctx, testWorkplaceID, "cash", rng, 5) {
		suite.ErrorIs(err, assertErr)
		errs++
	}
	suite.Equal(1, errs)
}

func (suite *LedgerServiceTestSuite) TestLedgerPage_TokenCarriesRunningBalance() {
	rng := domain.DateRange{To: day(31)}
	rows := []domain.LedgerRow{
		ledgerRow("ED-20261001", 2, 1, "1000", "0"),
		ledgerRow("ED-20261002", 5, 1, "0", "300"),
		ledgerRow("ED-20261003", 9, 1, "50", "0"),
	}
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, "cash").Return(&suite.cash, nil).Twice()
	suite.mockLedgerRepo.On("ListLedgerLines", suite.ctx, testWorkplaceID, "cash", rng, (*domain.LedgerCursor)(nil), 3).
		Return(rows, nil).Once()

	first, err := suite.service.LedgerPage(suite.ctx, testWorkplaceID, "cash", rng, 2, nil)
	suite.Require().NoError(err)
	suite.Require().Len(first.Rows, 2)
	suite.Require().NotNil(first.NextToken)
	suite.True(first.Rows[1].RunningBalance.Equal(dec("700")))

	suite.mockLedgerRepo.On("ListLedgerLines", suite.ctx, testWorkplaceID, "cash", rng,
		mock.MatchedBy(func(c *domain.LedgerCursor) bool { return c != nil && c.EntryNumber == "ED-20261002" }), 3).
		Return(rows[2:], nil).Once()

	second, err := suite.service.LedgerPage(suite.ctx, testWorkplaceID, "cash", rng, 2, first.NextToken)
	suite.Require().NoError(err)
	suite.Require().Len(second.Rows, 1)
	suite.Nil(second.NextToken)
	suite.True(second.Rows[0].RunningBalance.Equal(dec("750")))
}

func (suite *LedgerServiceTestSuite) TestLedgerPage_BadToken() {
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, "cash").Return(&suite.cash, nil).Once()
	bad := "%%%"

	_, err := suite.service.LedgerPage(suite.ctx, testWorkplaceID, "cash", domain.DateRange{}, 10, &bad)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestTrialBalance_Totals() {
	totals := []domain.AccountTotal{
		{AccountID: "cash", Code: "1101", NormalBalance: domain.DebitNormal, TotalDebit: dec("1000"), TotalCredit: dec("300")},
		{AccountID: "sales", Code: "4101", NormalBalance: domain.CreditNormal, TotalDebit: dec("300"), TotalCredit: dec("1000")},
	}
	suite.mockLedgerRepo.On("AccountTotals", suite.ctx, testWorkplaceID, domain.DateRange{}, domain.Posted).Return(totals, nil).Once()

	tb, err := suite.service.TrialBalance(suite.ctx, testWorkplaceID, domain.DateRange{})

	suite.Require().NoError(err)
	suite.True(tb.IsBalanced)
	suite.True(tb.TotalDebit.Equal(dec("1300")))
	suite.True(tb.Accounts[1].Net().Equal(dec("700")))
}

func (suite *LedgerServiceTestSuite) TestDraftActivity_UsesDraftStatus() {
	suite.mockLedgerRepo.On("AccountTotals", suite.ctx, testWorkplaceID, domain.DateRange{}, domain.Draft).Return(nil, nil).Once()

	totals, err := suite.service.DraftActivity(suite.ctx, testWorkplaceID, domain.DateRange{})

	suite.Require().NoError(err)
	suite.NotNil(totals)
	suite.Empty(totals)
}

func (suite *LedgerServiceTestSuite) TestRebuildBalances() {
	suite.mockLedgerRepo.On("RebuildBalances", suite.ctx, testWorkplaceID).Return(int64(3), nil).Once()

	n, err := suite.service.RebuildBalances(suite.ctx, testWorkplaceID)

	suite.Require().NoError(err)
	suite.Equal(int64(3), n)
}

var assertErr = errors.New("storage unavailable")

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
