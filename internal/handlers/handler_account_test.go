package handlers_test

import (
	"errors"
	"net/http"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func testAccount(id, code string) *domain.Account {
	return &domain.Account{
		AccountID:     id,
		WorkplaceID:   testWorkplaceID,
		Code:          code,
		Name:          "Cash on Hand",
		AccountType:   domain.Asset,
		Level:         3,
		NormalBalance: domain.DebitNormal,
		AllowPosting:  true,
		Balance:       decimal.Zero,
		Status:        domain.AccountActive,
	}
}

func (suite *HandlerTestSuite) TestCreateAccount_Success() {
	parentID := "acc-parent"
	req := dto.CreateAccountRequest{Code: "1101", Name: "Cash on Hand", AccountType: domain.Asset, ParentAccountID: &parentID}
	suite.chart.On("CreateAccount", mock.Anything, testWorkplaceID, req, testUserID).
		Return(testAccount("acc-1", "1101"), nil).Once()

	w := suite.do(http.MethodPost, "/accounts", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.decode(w, &resp)
	suite.Equal("acc-1", resp.AccountID)
	suite.Equal(domain.DebitNormal, resp.NormalBalance)
}

func (suite *HandlerTestSuite) TestCreateAccount_BindingFailure() {
	w := suite.do(http.MethodPost, "/accounts", map[string]string{"code": "1101", "name": "Cash", "accountType": "CASH"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.chart.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateAccount_DuplicateCodeIsConflict() {
	req := dto.CreateAccountRequest{Code: "1101", Name: "Cash", AccountType: domain.Asset}
	suite.chart.On("CreateAccount", mock.Anything, testWorkplaceID, req, testUserID).
		Return(nil, apperrors.NewValidationError(apperrors.ErrDuplicateCode, "1101", "code already used")).Once()

	w := suite.do(http.MethodPost, "/accounts", req)

	suite.Equal(http.StatusConflict, w.Code)
	var body handlers.ErrorResponse
	suite.decode(w, &body)
	suite.Equal(apperrors.ErrDuplicateCode.Error(), body.Rule)
	suite.Equal("1101", body.Subject)
}

func (suite *HandlerTestSuite) TestGetAccount_NotFound() {
	suite.chart.On("GetAccountByID", mock.Anything, testWorkplaceID, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/accounts/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGetAccountByCode() {
	suite.chart.On("GetAccountByCode", mock.Anything, testWorkplaceID, "1101").
		Return(testAccount("acc-1", "1101"), nil).Once()

	w := suite.do(http.MethodGet, "/accounts/by-code/1101", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountResponse
	suite.decode(w, &resp)
	suite.Equal("1101", resp.Code)
}

func (suite *HandlerTestSuite) TestListAccounts_DefaultsAndLimits() {
	suite.chart.On("ListAccounts", mock.Anything, testWorkplaceID, 100, 0).
		Return([]domain.Account{*testAccount("acc-1", "1101"), *testAccount("acc-2", "1102")}, nil).Once()

	w := suite.do(http.MethodGet, "/accounts", nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListAccountsResponse
	suite.decode(w, &resp)
	suite.Len(resp.Accounts, 2)

	w = suite.do(http.MethodGet, "/accounts?limit=5000", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestReparentAccount_ToTopLevel() {
	suite.chart.On("ReparentAccount", mock.Anything, testWorkplaceID, "acc-1", "", testUserID).
		Return(testAccount("acc-1", "1101"), nil).Once()

	w := suite.do(http.MethodPost, "/accounts/acc-1/reparent", map[string]any{})

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestReparentAccount_CycleIsConflict() {
	suite.chart.On("ReparentAccount", mock.Anything, testWorkplaceID, "acc-1", "acc-3", testUserID).
		Return(nil, apperrors.NewConflictError(apperrors.ErrCycle, "acc-1", "acc-3 is a descendant")).Once()

	w := suite.do(http.MethodPost, "/accounts/acc-1/reparent", map[string]string{"parentAccountID": "acc-3"})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteAccount() {
	suite.chart.On("DeleteAccount", mock.Anything, testWorkplaceID, "acc-1", testUserID).Return(nil).Once()
	suite.chart.On("DeleteAccount", mock.Anything, testWorkplaceID, "acc-2", testUserID).
		Return(apperrors.NewReferentialError(apperrors.ErrReferenced, "acc-2", "journal lines reference it")).Once()

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/accounts/acc-1", nil).Code)
	suite.Equal(http.StatusConflict, suite.do(http.MethodDelete, "/accounts/acc-2", nil).Code)
}

func (suite *HandlerTestSuite) TestDeactivateAndActivate() {
	suite.chart.On("DeactivateAccount", mock.Anything, testWorkplaceID, "acc-1", testUserID).Return(nil).Once()
	suite.chart.On("ActivateAccount", mock.Anything, testWorkplaceID, "acc-1", testUserID).Return(nil).Once()

	suite.Equal(http.StatusNoContent, suite.do(http.MethodPost, "/accounts/acc-1/deactivate", nil).Code)
	suite.Equal(http.StatusNoContent, suite.do(http.MethodPost, "/accounts/acc-1/activate", nil).Code)
}

func (suite *HandlerTestSuite) TestImportChart_ReportsFailures() {
	result := &domain.ChartImportResult{
		Created:  []domain.Account{*testAccount("acc-1", "1")},
		Failures: []domain.ImportFailure{{Identifier: "row 2 (9)", Reason: "parent code 8 not found"}},
	}
	suite.chart.On("ImportChart", mock.Anything, testWorkplaceID,
		mock.MatchedBy(func(rows []domain.ChartImportRow) bool { return len(rows) == 2 && rows[1].ParentCode == "8" }),
		domain.ImportExplicit, testUserID).Return(result, nil).Once()

	w := suite.do(http.MethodPost, "/accounts/import", dto.ImportChartRequest{
		Mode: domain.ImportExplicit,
		Rows: []dto.ChartImportRowRequest{
			{Code: "1", Name: "Assets", AccountType: "ASSET"},
			{Code: "9", Name: "Orphan", AccountType: "ASSET", ParentCode: "8"},
		},
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ChartImportResponse
	suite.decode(w, &resp)
	suite.Len(resp.Created, 1)
	suite.Len(resp.Failures, 1)
}

func (suite *HandlerTestSuite) TestSeedChart_InternalErrorHidesDetail() {
	suite.chart.On("SeedDefaultChart", mock.Anything, testWorkplaceID, testUserID).
		Return(nil, apperrors.NewAppError(500, "failed to save account", errors.New("connection reset"))).Once()

	w := suite.do(http.MethodPost, "/accounts/seed", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "connection reset")
}
