package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestAccountBalance_AsOf() {
	asOf := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	suite.ledger.On("AccountBalanceAsOf", mock.Anything, testWorkplaceID, "acc-bank", asOf).
		Return(decimal.RequireFromString("1250.5"), nil).Once()

	w := suite.do(http.MethodGet, "/accounts/acc-bank/balance?asOf=2026-03-31", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountBalanceResponse
	suite.decode(w, &resp)
	suite.Equal("1250.50", resp.BalanceDisplay)
	suite.False(resp.Rollup)
	suite.True(resp.Balance.Equal(decimal.RequireFromString("1250.5")))
}

func (suite *HandlerTestSuite) TestAccountBalance_RollupDefaultsToToday() {
	suite.ledger.On("RollupBalanceAsOf", mock.Anything, testWorkplaceID, "acc-assets", mock.AnythingOfType("time.Time")).
		Return(decimal.NewFromInt(900), nil).Once()

	w := suite.do(http.MethodGet, "/accounts/acc-assets/balance?rollup=true", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountBalanceResponse
	suite.decode(w, &resp)
	suite.True(resp.Rollup)
	suite.False(resp.AsOf.IsZero())
	suite.ledger.AssertNotCalled(suite.T(), "AccountBalanceAsOf", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestAccountBalance_BadDate() {
	w := suite.do(http.MethodGet, "/accounts/acc-bank/balance?asOf=31-03-2026", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestAccountLedger_Page() {
	rng := domain.DateRange{From: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), To: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)}
	next := "cursor"
	page := &domain.LedgerPage{
		AccountID:      "acc-bank",
		OpeningBalance: decimal.NewFromInt(100),
		Rows: []domain.LedgerRow{{
			EntryID: "je-1", EntryNumber: "JE-2026-000001", AccountID: "acc-bank",
			DebitAmount: decimal.NewFromInt(50), CreditAmount: decimal.Zero,
			Contribution: decimal.NewFromInt(50), RunningBalance: decimal.NewFromInt(150),
		}},
		NextToken: &next,
	}
	suite.ledger.On("LedgerPage", mock.Anything, testWorkplaceID, "acc-bank", rng, 1, (*string)(nil)).Return(page, nil).Once()

	w := suite.do(http.MethodGet, "/accounts/acc-bank/ledger?from=2026-03-01&to=2026-03-31&limit=1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LedgerPageResponse
	suite.decode(w, &resp)
	suite.Equal("100.00", resp.OpeningBalanceDisplay)
	suite.Require().Len(resp.Rows, 1)
	suite.True(resp.Rows[0].RunningBalance.Equal(decimal.NewFromInt(150)))
	suite.Require().NotNil(resp.NextToken)
}

func (suite *HandlerTestSuite) TestAccountLedger_InvertedRange() {
	w := suite.do(http.MethodGet, "/accounts/acc-bank/ledger?from=2026-03-31&to=2026-03-01", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestAccountLedger_BadToken() {
	token := "garbage"
	suite.ledger.On("LedgerPage", mock.Anything, testWorkplaceID, "acc-bank", domain.DateRange{}, 50, &token).
		Return(nil, apperrors.NewValidationError(apperrors.ErrValidation, "nextToken", "malformed")).Once()

	w := suite.do(http.MethodGet, "/accounts/acc-bank/ledger?nextToken=garbage", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestTrialBalance() {
	rng := domain.DateRange{From: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), To: time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)}
	totals := []domain.AccountTotal{
		{AccountID: "a1", Code: "1101", NormalBalance: domain.DebitNormal, TotalDebit: decimal.NewFromInt(500), TotalCredit: decimal.Zero},
		{AccountID: "a2", Code: "4100", NormalBalance: domain.CreditNormal, TotalDebit: decimal.Zero, TotalCredit: decimal.NewFromInt(500)},
	}
	tb := domain.NewTrialBalance(rng, totals)
	suite.ledger.On("TrialBalance", mock.Anything, testWorkplaceID, rng).Return(&tb, nil).Once()

	w := suite.do(http.MethodGet, "/reports/trial-balance?from=2026-01-01&to=2026-01-31", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TrialBalanceResponse
	suite.decode(w, &resp)
	suite.True(resp.IsBalanced)
	suite.Equal("500.00", resp.TotalDebitDisplay)
	suite.Len(resp.Accounts, 2)
}

func (suite *HandlerTestSuite) TestAccountTotalsAndDraftActivity() {
	suite.ledger.On("AccountTotals", mock.Anything, testWorkplaceID, domain.DateRange{}).
		Return([]domain.AccountTotal{{AccountID: "a1"}}, nil).Once()
	suite.ledger.On("DraftActivity", mock.Anything, testWorkplaceID, domain.DateRange{}).
		Return([]domain.AccountTotal{}, nil).Once()

	w := suite.do(http.MethodGet, "/reports/account-totals", nil)
	suite.Equal(http.StatusOK, w.Code)
	var totals dto.AccountTotalsResponse
	suite.decode(w, &totals)
	suite.Len(totals.Accounts, 1)

	w = suite.do(http.MethodGet, "/reports/draft-activity", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestRebuildBalances() {
	suite.ledger.On("RebuildBalances", mock.Anything, testWorkplaceID).Return(int64(3), nil).Once()

	w := suite.do(http.MethodPost, "/maintenance/rebuild-balances", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RebuildBalancesResponse
	suite.decode(w, &resp)
	suite.Equal(int64(3), resp.AccountsUpdated)
}
