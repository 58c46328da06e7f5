package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

const entryBody = `{
	"entryDate": "2026-03-05T00:00:00Z",
	"description": "Office rent",
	"lines": [
		{"accountID": "acc-rent", "debitAmount": "1200.00"},
		{"accountID": "acc-bank", "creditAmount": "1200.00"}
	]
}`

func testEntry(id string, status domain.EntryStatus) *domain.JournalEntry {
	amount := decimal.RequireFromString("1200.00")
	return &domain.JournalEntry{
		EntryID:     id,
		WorkplaceID: testWorkplaceID,
		EntryNumber: "JE-2026-000001",
		EntryType:   domain.ManualEntry,
		EntryDate:   time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Description: "Office rent",
		Status:      status,
		TotalDebit:  amount,
		TotalCredit: amount,
		Version:     1,
		Lines: []domain.JournalLine{
			{LineID: "l1", EntryID: id, AccountID: "acc-rent", DebitAmount: amount, CreditAmount: decimal.Zero, LineNumber: 1},
			{LineID: "l2", EntryID: id, AccountID: "acc-bank", DebitAmount: decimal.Zero, CreditAmount: amount, LineNumber: 2},
		},
	}
}

func balancedRentRequest(req dto.PostEntryRequest) bool {
	return len(req.Lines) == 2 &&
		req.Lines[0].DebitAmount.Equal(decimal.NewFromInt(1200)) &&
		req.Lines[1].CreditAmount.Equal(decimal.NewFromInt(1200)) &&
		req.EntryDate.Equal(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))
}

func (suite *HandlerTestSuite) TestPostEntry_Success() {
	suite.journal.On("PostEntry", mock.Anything, testWorkplaceID, mock.MatchedBy(balancedRentRequest), testUserID).
		Return(testEntry("je-1", domain.Posted), nil).Once()

	w := suite.do(http.MethodPost, "/entries", entryBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.EntryResponse
	suite.decode(w, &resp)
	suite.Equal("JE-2026-000001", resp.EntryNumber)
	suite.Equal(domain.Posted, resp.Status)
	suite.Len(resp.Lines, 2)
}

func (suite *HandlerTestSuite) TestPostEntry_UnbalancedIsBadRequest() {
	suite.journal.On("PostEntry", mock.Anything, testWorkplaceID, mock.Anything, testUserID).
		Return(nil, apperrors.NewValidationError(apperrors.ErrUnbalancedEntry, "", "debits 1200.00 credits 1100.00")).Once()

	w := suite.do(http.MethodPost, "/entries", entryBody)

	suite.Equal(http.StatusBadRequest, w.Code)
	var body handlers.ErrorResponse
	suite.decode(w, &body)
	suite.Equal(apperrors.ErrUnbalancedEntry.Error(), body.Rule)
}

func (suite *HandlerTestSuite) TestPostEntry_NegativeAmountRejectedAtBinding() {
	w := suite.do(http.MethodPost, "/entries", `{
		"entryDate": "2026-03-05T00:00:00Z",
		"description": "bad",
		"lines": [{"accountID": "acc-rent", "debitAmount": "-5"}, {"accountID": "acc-bank", "creditAmount": "-5"}]
	}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.journal.AssertNotCalled(suite.T(), "PostEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestPostEntry_SubScaleAmountRejectedAtBinding() {
	w := suite.do(http.MethodPost, "/entries", `{
		"entryDate": "2026-03-05T00:00:00Z",
		"description": "dust",
		"lines": [{"accountID": "acc-rent", "debitAmount": "0.00004"}, {"accountID": "acc-bank", "creditAmount": "0.00004"}]
	}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.journal.AssertNotCalled(suite.T(), "PostEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateDraft() {
	suite.journal.On("CreateDraft", mock.Anything, testWorkplaceID, mock.MatchedBy(balancedRentRequest), testUserID).
		Return(testEntry("je-2", domain.Draft), nil).Once()

	w := suite.do(http.MethodPost, "/entries/drafts", entryBody)

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestPostDraft_WithoutBodySkipsVersionCheck() {
	suite.journal.On("PostDraft", mock.Anything, testWorkplaceID, "je-2", (*int)(nil), testUserID).
		Return(testEntry("je-2", domain.Posted), nil).Once()

	w := suite.do(http.MethodPost, "/entries/je-2/post", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestPostDraft_NotDraftIsConflict() {
	suite.journal.On("PostDraft", mock.Anything, testWorkplaceID, "je-1", (*int)(nil), testUserID).
		Return(nil, apperrors.NewConflictError(apperrors.ErrNotDraft, "je-1", "status is POSTED")).Once()

	w := suite.do(http.MethodPost, "/entries/je-1/post", nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestReverseEntry_PassesExpectedVersion() {
	suite.journal.On("ReverseEntry", mock.Anything, testWorkplaceID, "je-1",
		mock.MatchedBy(func(v *int) bool { return v != nil && *v == 3 }), testUserID).
		Return(testEntry("je-1", domain.Reversed), nil).Once()

	w := suite.do(http.MethodPost, "/entries/je-1/reverse", `{"expectedVersion": 3}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.EntryResponse
	suite.decode(w, &resp)
	suite.Equal(domain.Reversed, resp.Status)
}

func (suite *HandlerTestSuite) TestReverseEntry_StaleVersionIsConflict() {
	suite.journal.On("ReverseEntry", mock.Anything, testWorkplaceID, "je-1", mock.Anything, testUserID).
		Return(nil, apperrors.NewConflictError(apperrors.ErrConcurrentModification, "je-1", "expected version 1, found 2")).Once()

	w := suite.do(http.MethodPost, "/entries/je-1/reverse", `{"expectedVersion": 1}`)

	suite.Equal(http.StatusConflict, w.Code)
	var body handlers.ErrorResponse
	suite.decode(w, &body)
	suite.Equal(apperrors.ErrConcurrentModification.Error(), body.Rule)
}

func (suite *HandlerTestSuite) TestReplaceLines() {
	suite.journal.On("ReplaceLines", mock.Anything, testWorkplaceID, "je-1",
		mock.MatchedBy(func(req dto.ReplaceLinesRequest) bool { return len(req.Lines) == 2 && req.ExpectedVersion == nil }),
		testUserID).Return(testEntry("je-1", domain.Posted), nil).Once()

	w := suite.do(http.MethodPut, "/entries/je-1/lines", `{"lines": [
		{"accountID": "acc-rent", "debitAmount": "1200.00"},
		{"accountID": "acc-bank", "creditAmount": "1200.00"}
	]}`)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestListEntries() {
	next := "tok"
	params := dto.ListEntriesParams{Status: domain.Posted, Limit: 10}
	suite.journal.On("ListEntries", mock.Anything, testWorkplaceID, params).
		Return(&dto.ListEntriesResponse{Entries: dto.ToEntryResponses([]domain.JournalEntry{*testEntry("je-1", domain.Posted)}), NextToken: &next}, nil).Once()

	w := suite.do(http.MethodGet, "/entries?status=POSTED&limit=10", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListEntriesResponse
	suite.decode(w, &resp)
	suite.Len(resp.Entries, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("tok", *resp.NextToken)
}

func (suite *HandlerTestSuite) TestListEntries_BadStatus() {
	w := suite.do(http.MethodGet, "/entries?status=DELETED", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetEntryAndRevisions() {
	suite.journal.On("GetEntry", mock.Anything, testWorkplaceID, "je-1").Return(testEntry("je-1", domain.Posted), nil).Once()
	suite.journal.On("ListLineRevisions", mock.Anything, testWorkplaceID, "je-1").
		Return([]domain.LineRevision{{EntryID: "je-1", Version: 1, Lines: testEntry("je-1", domain.Posted).Lines, ReplacedBy: testUserID}}, nil).Once()

	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/entries/je-1", nil).Code)

	w := suite.do(http.MethodGet, "/entries/je-1/revisions", nil)
	suite.Equal(http.StatusOK, w.Code)
	var revisions []domain.LineRevision
	suite.decode(w, &revisions)
	suite.Len(revisions, 1)
	suite.Equal(1, revisions[0].Version)
}
