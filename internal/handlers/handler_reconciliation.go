package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/SscSPs/ledger_core/internal/utils/format"
	"github.com/gin-gonic/gin"
)

// reconciliationHandler handles bank accounts, reconciliation sessions and matching.
type reconciliationHandler struct {
	reconService portssvc.ReconciliationSvcFacade
	formatter    format.Formatter
}

func newReconciliationHandler(rs portssvc.ReconciliationSvcFacade, formatter format.Formatter) *reconciliationHandler {
	return &reconciliationHandler{reconService: rs, formatter: formatter}
}

// RegisterReconciliationRoutes registers reconciliation routes on a workplace-scoped group.
func RegisterReconciliationRoutes(rg *gin.RouterGroup, reconService portssvc.ReconciliationSvcFacade, formatter format.Formatter) {
	h := newReconciliationHandler(reconService, formatter)

	bankAccounts := rg.Group("/bank-accounts")
	{
		bankAccounts.POST("", h.registerBankAccount)
		bankAccounts.GET("", h.listBankAccounts)
	}

	sessions := rg.Group("/reconciliations")
	{
		sessions.POST("", h.openSession)
		sessions.POST("/matches", h.matchItems)
		sessions.GET("/:sessionID", h.getSession)
		sessions.POST("/:sessionID/sync", h.syncBookItems)
		sessions.POST("/:sessionID/statement", h.importStatement)
		sessions.GET("/:sessionID/summary", h.getSummary)
		sessions.GET("/:sessionID/suggestions", h.suggestMatches)
		sessions.POST("/:sessionID/close", h.closeSession)
	}

	rg.DELETE("/reconciliation-items/:itemID/match", h.unmatchItem)
}

// registerBankAccount godoc
// @Summary Register a bank account
// @Description Links a bank account to a posting account of the chart.
// @Tags reconciliation
// @Accept json
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param bankAccount body dto.RegisterBankAccountRequest true "Bank account"
// @Success 201 {object} domain.BankAccount
// @Failure 400 {object} handlers.ErrorResponse "Invalid input or non-posting account"
// @Failure 404 {object} handlers.ErrorResponse "Chart account not found"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/bank-accounts [post]
func (h *reconciliationHandler) registerBankAccount(c *gin.Context) {
	workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.RegisterBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	bankAccount, err := h.reconService.RegisterBankAccount(c.Request.Context(), workplaceID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to register bank account")
		return
	}
	c.JSON(http.StatusCreated, bankAccount)
}

// listBankAccounts godoc
// @Summary List bank accounts
// @Tags reconciliation
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Success 200 {array} domain.BankAccount
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/bank-accounts [get]
func (h *reconciliationHandler) listBankAccounts(c *gin.Context) {
	workplaceID, _, ok := requestScope(c)
	if !ok {
		return
	}

	bankAccounts, err := h.reconService.ListBankAccounts(c.Request.Context(), workplaceID)
	if err != nil {
		respondError(c, err, "Failed to list bank accounts")
		return
	}
	c.JSON(http.StatusOK, bankAccounts)
}

// openSession godoc
// @Summary Open a reconciliation session
// @Description Returns the session of the bank account for the as-of date, creating it when it does not exist yet.
// @Tags reconciliation
// @Accept json
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param session body dto.OpenSessionRequest true "Session"
// @Success 200 {object} domain.ReconciliationSession
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 404 {object} handlers.ErrorResponse "Bank account not found"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/reconciliations [post]
func (h *reconciliationHandler) openSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	session, err := h.reconService.OpenSession(c.Request.Context(), workplaceID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to open reconciliation session")
		return
	}

	logger.Info("Reconciliation session ready", slog.String("session_id", session.SessionID), slog.String("status", string(session.Status)))
	c.JSON(http.StatusOK, session)
}

// getSession godoc
// @Summary Get a reconciliation session
// @Tags reconciliation
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param sessionID path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} handlers.ErrorResponse "Session not found"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/reconciliations/{sessionID} [get]
func (h *reconciliationHandler) getSession(c *gin.Context) {
	workplaceID, _, ok := requestScope(c)
	if !ok {
		return
	}

	session, items, err := h.reconService.GetSession(c.Request.Context(), workplaceID, c.Param("sessionID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve reconciliation session")
		return
	}
	if items == nil {
		items = []domain.ReconciliationItem{}
	}
	c.JSON(http.StatusOK, dto.SessionResponse{ReconciliationSession: *session, Items: items})
}

// syncBookItems godoc
// @Summary Refresh book items
// @Description Rebuilds the session's book items from the linked account's posted ledger. Matched items are kept.
// @Tags reconciliation
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param sessionID path string true "Session ID"
// @Success 200 {object} domain.SyncResult
// @Failure 404 {object} handlers.ErrorResponse "Session not found"
// @Failure 409 {object} handlers.ErrorResponse "Session closed"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/reconciliations/{sessionID}/sync [post]
func (h *reconciliationHandler) syncBookItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID, _, ok := requestScope(c)
	if !ok {
		return
	}

	sessionID := c.Param("sessionID")
	result, err := h.reconService.SyncBookItems(c.Request.Context(), workplaceID, sessionID)
	if err != nil {
		respondError(c, err, "Failed to sync book items")
		return
	}

	logger.Info("Book items synced", slog.String("session_id", sessionID),
		slog.Int("inserted", result.Inserted), slog.Int("removed", result.Removed), slog.Int("released", result.Released), slog.Int("kept", result.Kept))
	c.JSON(http.StatusOK, result)
}

// importStatement godoc
// @Summary Import bank statement rows
// @Description Adds statement rows as bank items. Rows that cannot be classified are reported and skipped.
// @Tags reconciliation
// @Accept json
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param sessionID path string true "Session ID"
// @Param statement body dto.ImportStatementRequest true "Statement rows"
// @Success 200 {object} domain.StatementImportResult
// @Failure 409 {object} handlers.ErrorResponse "Session closed"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/reconciliations/{sessionID}/statement [post]
func (h *reconciliationHandler) importStatement(c *gin.Context) {
	workplaceID, _, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.ImportStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.reconService.ImportStatement(c.Request.Context(), workplaceID, c.Param("sessionID"), req.ToStatementMovements())
	if err != nil {
		respondError(c, err, "Failed to import statement")
		return
	}
	c.JSON(http.StatusOK, result)
}

// matchItems godoc
// @Summary Match a book item with a bank item
// @Tags reconciliation
// @Accept json
// @Param workplace_id path string true "Workplace ID"
// @Param match body dto.MatchItemsRequest true "Items to pair"
// @Success 204 "No Content"
// @Failure 400 {object} handlers.ErrorResponse "Items cannot be matched"
// @Failure 409 {object} handlers.ErrorResponse "Already matched or session closed"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/reconciliations/matches [post]
func (h *reconciliationHandler) matchItems(c *gin.Context) {
	workplaceID, _, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.MatchItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	if err := h.reconService.MatchItems(c.Request.Context(), workplaceID, req.BookItemID, req.BankItemID); err != nil {
		respondError(c, err, "Failed to match items")
		return
	}
	c.Status(http.StatusNoContent)
}

// unmatchItem godoc
// @Summary Undo a match
// @Description Clears the match on the item and its counterpart. Unmatched items are left as they are.
// @Tags reconciliation
// @Param workplace_id path string true "Workplace ID"
// @Param itemID path string true "Item ID"
// @Success 204 "No Content"
// @Failure 404 {object} handlers.ErrorResponse "Item not found"
// @Failure 409 {object} handlers.ErrorResponse "Session closed"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/reconciliation-items/{itemID}/match [delete]
func (h *reconciliationHandler) unmatchItem(c *gin.Context) {
	workplaceID, _, ok := requestScope(c)
	if !ok {
		return
	}

	if err := h.reconService.UnmatchItem(c.Request.Context(), workplaceID, c.Param("itemID")); err != nil {
		respondError(c, err, "Failed to unmatch item")
		return
	}
	c.Status(http.StatusNoContent)
}

// suggestMatches godoc
// @Summary Suggest matches
// @Description Pairs unmatched items of equal amount, closest date first.
// @Tags reconciliation
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param sessionID path string true "Session ID"
// @Success 200 {array} domain.MatchSuggestion
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/reconciliations/{sessionID}/suggestions [get]
func (h *reconciliationHandler) suggestMatches(c *gin.Context) {
	workplaceID, _, ok := requestScope(c)
	if !ok {
		return
	}

	suggestions, err := h.reconService.SuggestMatches(c.Request.Context(), workplaceID, c.Param("sessionID"))
	if err != nil {
		respondError(c, err, "Failed to suggest matches")
		return
	}
	if suggestions == nil {
		suggestions = []domain.MatchSuggestion{}
	}
	c.JSON(http.StatusOK, suggestions)
}

// summaryDisplay renders the summary figures with the configured formatter.
func (h *reconciliationHandler) summaryDisplay(s *domain.ReconciliationSummary) map[string]string {
	return map[string]string{
		"bookBalance":                 h.formatter.Amount(s.BookBalance),
		"statementOpeningBalance":     h.formatter.Amount(s.StatementOpeningBalance),
		"statementClosingBalance":     h.formatter.Amount(s.StatementClosingBalance),
		"totalReconciled":             h.formatter.Amount(s.TotalReconciled),
		"totalOutstandingDeposits":    h.formatter.Amount(s.TotalOutstandingDeposits),
		"totalOutstandingWithdrawals": h.formatter.Amount(s.TotalOutstandingWithdrawals),
		"unrecordedBankCredits":       h.formatter.Amount(s.UnrecordedBankCredits),
		"unrecordedBankDebits":        h.formatter.Amount(s.UnrecordedBankDebits),
		"reconciledProjectedClosing":  h.formatter.Amount(s.ReconciledProjectedClosing),
		"difference":                  h.formatter.Amount(s.Difference),
	}
}

// getSummary godoc
// @Summary Reconciliation summary
// @Tags reconciliation
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param sessionID path string true "Session ID"
// @Success 200 {object} dto.SummaryResponse
// @Failure 404 {object} handlers.ErrorResponse "Session not found"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/reconciliations/{sessionID}/summary [get]
func (h *reconciliationHandler) getSummary(c *gin.Context) {
	workplaceID, _, ok := requestScope(c)
	if !ok {
		return
	}

	summary, err := h.reconService.ComputeSummary(c.Request.Context(), workplaceID, c.Param("sessionID"))
	if err != nil {
		respondError(c, err, "Failed to compute reconciliation summary")
		return
	}
	c.JSON(http.StatusOK, dto.SummaryResponse{ReconciliationSummary: *summary, Display: h.summaryDisplay(summary)})
}

// closeSession godoc
// @Summary Close a reconciliation session
// @Description Closes a balanced session. Closed sessions no longer accept changes.
// @Tags reconciliation
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param sessionID path string true "Session ID"
// @Success 200 {object} domain.ReconciliationSession
// @Failure 404 {object} handlers.ErrorResponse "Session not found"
// @Failure 409 {object} handlers.ErrorResponse "Session not balanced or already closed"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/reconciliations/{sessionID}/close [post]
func (h *reconciliationHandler) closeSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	sessionID := c.Param("sessionID")
	session, err := h.reconService.CloseSession(c.Request.Context(), workplaceID, sessionID, userID)
	if err != nil {
		respondError(c, err, "Failed to close reconciliation session")
		return
	}

	logger.Info("Reconciliation session closed", slog.String("session_id", sessionID))
	c.JSON(http.StatusOK, session)
}
