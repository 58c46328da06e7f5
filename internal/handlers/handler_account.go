package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to the chart of accounts.
type accountHandler struct {
	chartService portssvc.ChartSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(cs portssvc.ChartSvcFacade) *accountHandler {
	return &accountHandler{
		chartService: cs,
	}
}

// RegisterAccountRoutes registers chart routes on a workplace-scoped group.
func RegisterAccountRoutes(rg *gin.RouterGroup, chartService portssvc.ChartSvcFacade) {
	h := newAccountHandler(chartService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.POST("/import", h.importChart)
		accounts.POST("/seed", h.seedChart)
		accounts.GET("/by-code/:code", h.getAccountByCode)
		accounts.GET("/:accountID", h.getAccount)
		accounts.PUT("/:accountID", h.updateAccount)
		accounts.DELETE("/:accountID", h.deleteAccount)
		accounts.POST("/:accountID/reparent", h.reparentAccount)
		accounts.POST("/:accountID/deactivate", h.deactivateAccount)
		accounts.POST("/:accountID/activate", h.activateAccount)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates an account in the workplace chart. The parent, when given, must be in the same workplace and the chart is at most five levels deep.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Parent account not found"
// @Failure 409 {object} handlers.ErrorResponse "Duplicate code or parent already carries postings"
// @Failure 500 {object} handlers.ErrorResponse "Failed to create account"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	logger.Info("Received request to create account", slog.String("code", req.Code), slog.String("account_type", string(req.AccountType)))

	newAccount, err := h.chartService.CreateAccount(c.Request.Context(), workplaceID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create account")
		return
	}

	logger.Info("Account created successfully", slog.String("account_id", newAccount.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(newAccount))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   accountID path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Failure 500 {object} handlers.ErrorResponse "Failed to retrieve account"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	workplaceID, _, ok := requestScope(c)
	if !ok {
		return
	}

	account, err := h.chartService.GetAccountByID(c.Request.Context(), workplaceID, c.Param("accountID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// getAccountByCode godoc
// @Summary Get an account by code
// @Tags accounts
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   code path string true "Account code"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/accounts/by-code/{code} [get]
func (h *accountHandler) getAccountByCode(c *gin.Context) {
	workplaceID, _, ok := requestScope(c)
	if !ok {
		return
	}

	account, err := h.chartService.GetAccountByCode(c.Request.Context(), workplaceID, c.Param("code"))
	if err != nil {
		respondError(c, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists the workplace chart ordered by code
// @Tags accounts
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   limit query int false "Page size" default(100)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} handlers.ErrorResponse "Failed to list accounts"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	workplaceID, _, ok := requestScope(c)
	if !ok {
		return
	}

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err, "Invalid query parameters")
		return
	}

	accounts, err := h.chartService.ListAccounts(c.Request.Context(), workplaceID, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

// updateAccount godoc
// @Summary Update an account
// @Description Updates the name and description of an account. Code, type and parent are changed through their own operations.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   accountID path string true "Account ID"
// @Param   account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Failure 500 {object} handlers.ErrorResponse "Failed to update account"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/accounts/{accountID} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	account, err := h.chartService.UpdateAccount(c.Request.Context(), workplaceID, c.Param("accountID"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// reparentAccount godoc
// @Summary Move an account
// @Description Moves an account and its subtree under a new parent, or to the top level when no parent is given.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   accountID path string true "Account ID"
// @Param   parent body dto.ReparentAccountRequest true "New parent"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} handlers.ErrorResponse "Depth exceeded"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Failure 409 {object} handlers.ErrorResponse "Cycle or parent carries postings"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/accounts/{accountID}/reparent [post]
func (h *accountHandler) reparentAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.ReparentAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	newParentID := ""
	if req.ParentAccountID != nil {
		newParentID = *req.ParentAccountID
	}

	accountID := c.Param("accountID")
	account, err := h.chartService.ReparentAccount(c.Request.Context(), workplaceID, accountID, newParentID, userID)
	if err != nil {
		respondError(c, err, "Failed to move account")
		return
	}

	logger.Info("Account moved", slog.String("account_id", accountID), slog.String("parent_account_id", newParentID))
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deactivateAccount godoc
// @Summary Deactivate an account
// @Tags accounts
// @Param   workplace_id path string true "Workplace ID"
// @Param   accountID path string true "Account ID"
// @Success 204 "No Content"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/accounts/{accountID}/deactivate [post]
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	if err := h.chartService.DeactivateAccount(c.Request.Context(), workplaceID, c.Param("accountID"), userID); err != nil {
		respondError(c, err, "Failed to deactivate account")
		return
	}
	c.Status(http.StatusNoContent)
}

// activateAccount godoc
// @Summary Reactivate an account
// @Tags accounts
// @Param   workplace_id path string true "Workplace ID"
// @Param   accountID path string true "Account ID"
// @Success 204 "No Content"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/accounts/{accountID}/activate [post]
func (h *accountHandler) activateAccount(c *gin.Context) {
	workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	if err := h.chartService.ActivateAccount(c.Request.Context(), workplaceID, c.Param("accountID"), userID); err != nil {
		respondError(c, err, "Failed to activate account")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Deletes an account that has no children, a zero balance and no journal or reconciliation references.
// @Tags accounts
// @Param   workplace_id path string true "Workplace ID"
// @Param   accountID path string true "Account ID"
// @Success 204 "No Content"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Failure 409 {object} handlers.ErrorResponse "Account still in use"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/accounts/{accountID} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	accountID := c.Param("accountID")
	if err := h.chartService.DeleteAccount(c.Request.Context(), workplaceID, accountID, userID); err != nil {
		respondError(c, err, "Failed to delete account")
		return
	}

	logger.Info("Account deleted", slog.String("account_id", accountID))
	c.Status(http.StatusNoContent)
}

// importChart godoc
// @Summary Import accounts in bulk
// @Description Creates accounts row by row. Rows that fail are reported with their reason and never abort the batch.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   chart body dto.ImportChartRequest true "Rows to import"
// @Success 200 {object} dto.ChartImportResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/accounts/import [post]
func (h *accountHandler) importChart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.ImportChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.chartService.ImportChart(c.Request.Context(), workplaceID, req.ToChartImportRows(), req.Mode, userID)
	if err != nil {
		respondError(c, err, "Failed to import chart")
		return
	}

	logger.Info("Chart import finished", slog.Int("created", len(result.Created)), slog.Int("failed", len(result.Failures)))
	c.JSON(http.StatusOK, dto.ToChartImportResponse(result))
}

// seedChart godoc
// @Summary Seed the default chart
// @Description Imports the starter chart of accounts. Codes that already exist are reported as failures.
// @Tags accounts
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Success 200 {object} dto.ChartImportResponse
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/accounts/seed [post]
func (h *accountHandler) seedChart(c *gin.Context) {
	workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	result, err := h.chartService.SeedDefaultChart(c.Request.Context(), workplaceID, userID)
	if err != nil {
		respondError(c, err, "Failed to seed chart")
		return
	}
	c.JSON(http.StatusOK, dto.ToChartImportResponse(result))
}
