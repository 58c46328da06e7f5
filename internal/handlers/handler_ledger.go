package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/SscSPs/ledger_core/internal/utils/format"
	"github.com/gin-gonic/gin"
)

// ledgerHandler serves balances, account ledgers and aggregate reports.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
	formatter     format.Formatter
	now           func() time.Time
}

func newLedgerHandler(ledgerService portssvc.LedgerSvcFacade, formatter format.Formatter) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ledgerService,
		formatter:     formatter,
		now:           time.Now,
	}
}

// RegisterLedgerRoutes registers ledger and report routes on a workplace-scoped group.
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, formatter format.Formatter) {
	h := newLedgerHandler(ledgerService, formatter)

	rg.GET("/accounts/:accountID/balance", h.getAccountBalance)
	rg.GET("/accounts/:accountID/ledger", h.getAccountLedger)

	reports := rg.Group("/reports")
	{
		reports.GET("/account-totals", h.getAccountTotals)
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/draft-activity", h.getDraftActivity)
	}

	rg.POST("/maintenance/rebuild-balances", h.rebuildBalances)
}

// getAccountBalance godoc
// @Summary Get an account balance
// @Description Balance from posted lines dated on or before asOf, signed by the account's normal balance. With rollup=true descendants are included.
// @Tags ledger
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param accountID path string true "Account ID"
// @Param asOf query string false "Cut-off date (YYYY-MM-DD), defaults to today"
// @Param rollup query bool false "Include descendant accounts"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid date"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/accounts/{accountID}/balance [get]
func (h *ledgerHandler) getAccountBalance(c *gin.Context) {
	workplaceID, _, ok := requestScope(c)
	if !ok {
		return
	}

	var params dto.BalanceQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err, "Invalid query parameters")
		return
	}
	asOf, err := dto.ParseDate(params.AsOf)
	if err != nil {
		badRequest(c, err, "Invalid asOf")
		return
	}
	if asOf.IsZero() {
		asOf = h.now().UTC()
	}

	accountID := c.Param("accountID")
	balanceFn := h.ledgerService.AccountBalanceAsOf
	if params.Rollup {
		balanceFn = h.ledgerService.RollupBalanceAsOf
	}
	balance, err := balanceFn(c.Request.Context(), workplaceID, accountID, asOf)
	if err != nil {
		respondError(c, err, "Failed to compute balance")
		return
	}

	c.JSON(http.StatusOK, dto.AccountBalanceResponse{
		AccountID:      accountID,
		AsOf:           asOf,
		Balance:        balance,
		BalanceDisplay: h.formatter.Amount(balance),
		Rollup:         params.Rollup,
	})
}

// getAccountLedger godoc
// @Summary Get an account ledger
// @Description Posted lines of an account in date order with running balances. The opening balance covers everything before the range.
// @Tags ledger
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param accountID path string true "Account ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Continuation token"
// @Success 200 {object} dto.LedgerPageResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid range or token"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/accounts/{accountID}/ledger [get]
func (h *ledgerHandler) getAccountLedger(c *gin.Context) {
	workplaceID, _, ok := requestScope(c)
	if !ok {
		return
	}

	var params dto.LedgerQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err, "Invalid query parameters")
		return
	}
	rng, err := dto.ParseDateRange(params.From, params.To)
	if err != nil {
		badRequest(c, err, "Invalid date range")
		return
	}

	page, err := h.ledgerService.LedgerPage(c.Request.Context(), workplaceID, c.Param("accountID"), rng, params.Limit, params.NextToken)
	if err != nil {
		respondError(c, err, "Failed to read ledger")
		return
	}

	c.JSON(http.StatusOK, dto.LedgerPageResponse{
		LedgerPage:            *page,
		OpeningBalanceDisplay: h.formatter.Amount(page.OpeningBalance),
	})
}

// bindRange parses the optional from/to query values of a report.
func bindRange(c *gin.Context) (dto.RangeParams, bool) {
	var params dto.RangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err, "Invalid query parameters")
		return params, false
	}
	return params, true
}

// getAccountTotals godoc
// @Summary Per-account totals
// @Description Sums posted debits and credits per account inside the range.
// @Tags reports
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.AccountTotalsResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid range"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/reports/account-totals [get]
func (h *ledgerHandler) getAccountTotals(c *gin.Context) {
	workplaceID, _, ok := requestScope(c)
	if !ok {
		return
	}
	params, ok := bindRange(c)
	if !ok {
		return
	}
	rng, err := dto.ParseDateRange(params.From, params.To)
	if err != nil {
		badRequest(c, err, "Invalid date range")
		return
	}

	totals, err := h.ledgerService.AccountTotals(c.Request.Context(), workplaceID, rng)
	if err != nil {
		respondError(c, err, "Failed to compute account totals")
		return
	}
	c.JSON(http.StatusOK, dto.AccountTotalsResponse{Range: rng, Accounts: totals})
}

// getTrialBalance godoc
// @Summary Trial balance
// @Description Posted totals per account with grand totals and whether they agree.
// @Tags reports
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid range"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/reports/trial-balance [get]
func (h *ledgerHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID, _, ok := requestScope(c)
	if !ok {
		return
	}
	params, ok := bindRange(c)
	if !ok {
		return
	}
	rng, err := dto.ParseDateRange(params.From, params.To)
	if err != nil {
		badRequest(c, err, "Invalid date range")
		return
	}

	tb, err := h.ledgerService.TrialBalance(c.Request.Context(), workplaceID, rng)
	if err != nil {
		respondError(c, err, "Failed to generate trial balance")
		return
	}
	if !tb.IsBalanced {
		logger.Warn("Trial balance does not agree",
			slog.String("total_debit", tb.TotalDebit.String()), slog.String("total_credit", tb.TotalCredit.String()))
	}

	c.JSON(http.StatusOK, dto.TrialBalanceResponse{
		TrialBalance:       *tb,
		TotalDebitDisplay:  h.formatter.Amount(tb.TotalDebit),
		TotalCreditDisplay: h.formatter.Amount(tb.TotalCredit),
	})
}

// getDraftActivity godoc
// @Summary Draft activity
// @Description Per-account sums of draft entries, reported apart from posted figures.
// @Tags reports
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.AccountTotalsResponse
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/reports/draft-activity [get]
func (h *ledgerHandler) getDraftActivity(c *gin.Context) {
	workplaceID, _, ok := requestScope(c)
	if !ok {
		return
	}
	params, ok := bindRange(c)
	if !ok {
		return
	}
	rng, err := dto.ParseDateRange(params.From, params.To)
	if err != nil {
		badRequest(c, err, "Invalid date range")
		return
	}

	totals, err := h.ledgerService.DraftActivity(c.Request.Context(), workplaceID, rng)
	if err != nil {
		respondError(c, err, "Failed to compute draft activity")
		return
	}
	c.JSON(http.StatusOK, dto.AccountTotalsResponse{Range: rng, Accounts: totals})
}

// rebuildBalances godoc
// @Summary Rebuild stored balances
// @Description Recomputes every stored account balance of the workplace from posted lines.
// @Tags maintenance
// @Produce json
// @Param workplace_id path string true "Workplace ID"
// @Success 200 {object} dto.RebuildBalancesResponse
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/maintenance/rebuild-balances [post]
func (h *ledgerHandler) rebuildBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID, _, ok := requestScope(c)
	if !ok {
		return
	}

	updated, err := h.ledgerService.RebuildBalances(c.Request.Context(), workplaceID)
	if err != nil {
		respondError(c, err, "Failed to rebuild balances")
		return
	}

	logger.Info("Balances rebuilt", slog.Int64("accounts_updated", updated))
	c.JSON(http.StatusOK, dto.RebuildBalancesResponse{AccountsUpdated: updated})
}
