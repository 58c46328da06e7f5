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

func testSession(status domain.SessionStatus) *domain.ReconciliationSession {
	return &domain.ReconciliationSession{
		SessionID:               "rs-1",
		WorkplaceID:             testWorkplaceID,
		BankAccountID:           "ba-1",
		PeriodStart:             time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		AsOfDate:                time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		StatementOpeningBalance: decimal.NewFromInt(1000),
		StatementClosingBalance: decimal.NewFromInt(1450),
		BookBalance:             decimal.NewFromInt(1450),
		Status:                  status,
	}
}

func (suite *HandlerTestSuite) TestRegisterBankAccount() {
	req := dto.RegisterBankAccountRequest{Name: "Operating", BankName: "First Bank", ChartAccountID: "acc-bank"}
	suite.reconcile.On("RegisterBankAccount", mock.Anything, testWorkplaceID, req, testUserID).
		Return(&domain.BankAccount{BankAccountID: "ba-1", WorkplaceID: testWorkplaceID, Name: "Operating"}, nil).Once()

	w := suite.do(http.MethodPost, "/bank-accounts", req)

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestRegisterBankAccount_NonPostingAccount() {
	req := dto.RegisterBankAccountRequest{Name: "Operating", ChartAccountID: "acc-assets"}
	suite.reconcile.On("RegisterBankAccount", mock.Anything, testWorkplaceID, req, testUserID).
		Return(nil, apperrors.NewValidationError(apperrors.ErrNonPostableAccount, "acc-assets", "control account")).Once()

	w := suite.do(http.MethodPost, "/bank-accounts", req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestOpenSession() {
	suite.reconcile.On("OpenSession", mock.Anything, testWorkplaceID,
		mock.MatchedBy(func(req dto.OpenSessionRequest) bool {
			return req.BankAccountID == "ba-1" && req.PeriodStart == nil &&
				req.StatementClosingBalance.Equal(decimal.NewFromInt(1450))
		}), testUserID).Return(testSession(domain.SessionOpen), nil).Once()

	w := suite.do(http.MethodPost, "/reconciliations", `{
		"bankAccountID": "ba-1",
		"asOfDate": "2026-03-31T00:00:00Z",
		"statementOpeningBalance": "1000",
		"statementClosingBalance": "1450"
	}`)

	suite.Equal(http.StatusOK, w.Code)
	var session domain.ReconciliationSession
	suite.decode(w, &session)
	suite.Equal("rs-1", session.SessionID)
}

func (suite *HandlerTestSuite) TestGetSession_EmptyItemsSerializeAsArray() {
	suite.reconcile.On("GetSession", mock.Anything, testWorkplaceID, "rs-1").
		Return(testSession(domain.SessionOpen), []domain.ReconciliationItem(nil), nil).Once()

	w := suite.do(http.MethodGet, "/reconciliations/rs-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"items":[]`)
}

func (suite *HandlerTestSuite) TestSyncBookItems_ClosedSession() {
	suite.reconcile.On("SyncBookItems", mock.Anything, testWorkplaceID, "rs-1").
		Return(nil, apperrors.NewConflictError(apperrors.ErrSessionClosed, "rs-1", "session is closed")).Once()

	w := suite.do(http.MethodPost, "/reconciliations/rs-1/sync", nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestSyncBookItems() {
	suite.reconcile.On("SyncBookItems", mock.Anything, testWorkplaceID, "rs-1").
		Return(&domain.SyncResult{Inserted: 2, Removed: 1, Kept: 3, BookBalance: decimal.NewFromInt(1450)}, nil).Once()

	w := suite.do(http.MethodPost, "/reconciliations/rs-1/sync", nil)

	suite.Equal(http.StatusOK, w.Code)
	var result domain.SyncResult
	suite.decode(w, &result)
	suite.Equal(2, result.Inserted)
	suite.Equal(3, result.Kept)
}

func (suite *HandlerTestSuite) TestImportStatement() {
	suite.reconcile.On("ImportStatement", mock.Anything, testWorkplaceID, "rs-1",
		mock.MatchedBy(func(m []domain.StatementMovement) bool {
			return len(m) == 2 && m[0].Direction == domain.Inflow && m[1].Amount.Equal(decimal.NewFromInt(75))
		})).Return(&domain.StatementImportResult{
		Created:  []domain.ReconciliationItem{{ItemID: "it-1"}},
		Failures: []domain.ImportFailure{{Identifier: "row 2", Reason: "unknown direction"}},
	}, nil).Once()

	w := suite.do(http.MethodPost, "/reconciliations/rs-1/statement", `{"movements": [
		{"date": "2026-03-10T00:00:00Z", "description": "Deposit", "amount": "500", "direction": "IN"},
		{"date": "2026-03-12T00:00:00Z", "description": "Fee", "amount": "75", "direction": "SIDEWAYS"}
	]}`)

	suite.Equal(http.StatusOK, w.Code)
	var result domain.StatementImportResult
	suite.decode(w, &result)
	suite.Len(result.Created, 1)
	suite.Len(result.Failures, 1)
}

func (suite *HandlerTestSuite) TestMatchAndUnmatch() {
	suite.reconcile.On("MatchItems", mock.Anything, testWorkplaceID, "book-1", "bank-1").Return(nil).Once()
	suite.reconcile.On("MatchItems", mock.Anything, testWorkplaceID, "book-1", "bank-2").
		Return(apperrors.NewConflictError(apperrors.ErrAlreadyMatched, "book-1", "matched to bank-1")).Once()
	suite.reconcile.On("UnmatchItem", mock.Anything, testWorkplaceID, "book-1").Return(nil).Once()

	suite.Equal(http.StatusNoContent, suite.do(http.MethodPost, "/reconciliations/matches", dto.MatchItemsRequest{BookItemID: "book-1", BankItemID: "bank-1"}).Code)
	suite.Equal(http.StatusConflict, suite.do(http.MethodPost, "/reconciliations/matches", dto.MatchItemsRequest{BookItemID: "book-1", BankItemID: "bank-2"}).Code)
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/reconciliation-items/book-1/match", nil).Code)
}

func (suite *HandlerTestSuite) TestMatchItems_MissingSide() {
	w := suite.do(http.MethodPost, "/reconciliations/matches", map[string]string{"bookItemID": "book-1"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestSuggestMatches_NilIsEmptyArray() {
	suite.reconcile.On("SuggestMatches", mock.Anything, testWorkplaceID, "rs-1").Return([]domain.MatchSuggestion(nil), nil).Once()

	w := suite.do(http.MethodGet, "/reconciliations/rs-1/suggestions", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *HandlerTestSuite) TestSummary_Display() {
	summary := domain.ReconciliationSummary{
		SessionID:                   "rs-1",
		BookBalance:                 decimal.RequireFromString("1450"),
		StatementClosingBalance:     decimal.RequireFromString("1450"),
		TotalOutstandingWithdrawals: decimal.RequireFromString("-20.5"),
		Difference:                  decimal.Zero,
		IsBalanced:                  true,
	}
	suite.reconcile.On("ComputeSummary", mock.Anything, testWorkplaceID, "rs-1").Return(&summary, nil).Once()

	w := suite.do(http.MethodGet, "/reconciliations/rs-1/summary", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SummaryResponse
	suite.decode(w, &resp)
	suite.True(resp.IsBalanced)
	suite.Equal("0.00", resp.Display["difference"])
	suite.Equal("-20.50", resp.Display["totalOutstandingWithdrawals"])
}

func (suite *HandlerTestSuite) TestCloseSession() {
	suite.reconcile.On("CloseSession", mock.Anything, testWorkplaceID, "rs-1", testUserID).
		Return(testSession(domain.SessionClosed), nil).Once()
	suite.reconcile.On("CloseSession", mock.Anything, testWorkplaceID, "rs-2", testUserID).
		Return(nil, apperrors.NewConflictError(apperrors.ErrSessionNotBalanced, "rs-2", "difference 12.00")).Once()

	w := suite.do(http.MethodPost, "/reconciliations/rs-1/close", nil)
	suite.Equal(http.StatusOK, w.Code)
	var session domain.ReconciliationSession
	suite.decode(w, &session)
	suite.Equal(domain.SessionClosed, session.Status)

	suite.Equal(http.StatusConflict, suite.do(http.MethodPost, "/reconciliations/rs-2/close", nil).Code)
}
