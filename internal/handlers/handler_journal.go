package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: journalService,
	}
}

// RegisterJournalRoutes registers journal entry routes on a workplace-scoped group.
func RegisterJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.postEntry)
		entries.POST("/drafts", h.createDraft)
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
		entries.GET("/:entryID/revisions", h.listRevisions)
		entries.POST("/:entryID/post", h.postDraft)
		entries.POST("/:entryID/reverse", h.reverseEntry)
		entries.PUT("/:entryID/lines", h.replaceLines)
	}
}

// postEntry godoc
// @Summary Post a journal entry
// @Description Validates, numbers and posts a balanced entry. Account balances move in the same transaction.
// @Tags journal
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   entry body dto.PostEntryRequest true "Entry with its lines"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} handlers.ErrorResponse "Unbalanced, mixed or non-postable lines"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Failure 500 {object} handlers.ErrorResponse "Failed to post entry"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/entries [post]
func (h *journalHandler) postEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.PostEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	entry, err := h.journalService.PostEntry(c.Request.Context(), workplaceID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to post entry")
		return
	}

	logger.Info("Journal entry posted", slog.String("entry_id", entry.EntryID), slog.String("entry_number", entry.EntryNumber))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// createDraft godoc
// @Summary Save a draft entry
// @Description Stores an entry without posting it. Drafts never move balances and may be unbalanced.
// @Tags journal
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   entry body dto.PostEntryRequest true "Entry with its lines"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid lines"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/entries/drafts [post]
func (h *journalHandler) createDraft(c *gin.Context) {
	workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.PostEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	entry, err := h.journalService.CreateDraft(c.Request.Context(), workplaceID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to save draft")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// bindTransition reads an optional transition body. An empty body means no version check.
func bindTransition(c *gin.Context) (dto.EntryTransitionRequest, bool) {
	var req dto.EntryTransitionRequest
	if c.Request.ContentLength == 0 {
		return req, true
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return req, false
	}
	return req, true
}

// postDraft godoc
// @Summary Post a draft entry
// @Tags journal
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   entryID path string true "Entry ID"
// @Param   body body dto.EntryTransitionRequest false "Expected version"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} handlers.ErrorResponse "Draft fails validation"
// @Failure 404 {object} handlers.ErrorResponse "Entry not found"
// @Failure 409 {object} handlers.ErrorResponse "Entry is not a draft or was modified concurrently"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/entries/{entryID}/post [post]
func (h *journalHandler) postDraft(c *gin.Context) {
	workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	req, ok := bindTransition(c)
	if !ok {
		return
	}

	entry, err := h.journalService.PostDraft(c.Request.Context(), workplaceID, c.Param("entryID"), req.ExpectedVersion, userID)
	if err != nil {
		respondError(c, err, "Failed to post draft")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// reverseEntry godoc
// @Summary Reverse a posted entry
// @Description Marks a posted entry reversed and takes its effect out of account balances. The lines are kept for audit.
// @Tags journal
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   entryID path string true "Entry ID"
// @Param   body body dto.EntryTransitionRequest false "Expected version"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} handlers.ErrorResponse "Entry not found"
// @Failure 409 {object} handlers.ErrorResponse "Entry is not posted or was modified concurrently"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/entries/{entryID}/reverse [post]
func (h *journalHandler) reverseEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}
	req, ok := bindTransition(c)
	if !ok {
		return
	}

	entryID := c.Param("entryID")
	entry, err := h.journalService.ReverseEntry(c.Request.Context(), workplaceID, entryID, req.ExpectedVersion, userID)
	if err != nil {
		respondError(c, err, "Failed to reverse entry")
		return
	}

	logger.Info("Journal entry reversed", slog.String("entry_id", entryID))
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// replaceLines godoc
// @Summary Replace the lines of an entry
// @Description Replaces the full line set of a draft or posted entry. Posted entries are re-validated and balances move by the difference.
// @Tags journal
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   entryID path string true "Entry ID"
// @Param   lines body dto.ReplaceLinesRequest true "New lines"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid lines"
// @Failure 404 {object} handlers.ErrorResponse "Entry not found"
// @Failure 409 {object} handlers.ErrorResponse "Entry reversed or modified concurrently"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/entries/{entryID}/lines [put]
func (h *journalHandler) replaceLines(c *gin.Context) {
	workplaceID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.ReplaceLinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	entry, err := h.journalService.ReplaceLines(c.Request.Context(), workplaceID, c.Param("entryID"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to replace lines")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// getEntry godoc
// @Summary Get a journal entry
// @Tags journal
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} handlers.ErrorResponse "Entry not found"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/entries/{entryID} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	workplaceID, _, ok := requestScope(c)
	if !ok {
		return
	}

	entry, err := h.journalService.GetEntry(c.Request.Context(), workplaceID, c.Param("entryID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Lists entries newest first with token based pagination.
// @Tags journal
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   status query string false "DRAFT, POSTED or REVERSED"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Continuation token"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid query parameters"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	workplaceID, _, ok := requestScope(c)
	if !ok {
		return
	}

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err, "Invalid query parameters")
		return
	}

	page, err := h.journalService.ListEntries(c.Request.Context(), workplaceID, params)
	if err != nil {
		respondError(c, err, "Failed to list entries")
		return
	}
	c.JSON(http.StatusOK, page)
}

// listRevisions godoc
// @Summary List line revisions of an entry
// @Description Returns the line sets the entry carried before each replacement, oldest first.
// @Tags journal
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   entryID path string true "Entry ID"
// @Success 200 {array} domain.LineRevision
// @Failure 404 {object} handlers.ErrorResponse "Entry not found"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/entries/{entryID}/revisions [get]
func (h *journalHandler) listRevisions(c *gin.Context) {
	workplaceID, _, ok := requestScope(c)
	if !ok {
		return
	}

	revisions, err := h.journalService.ListLineRevisions(c.Request.Context(), workplaceID, c.Param("entryID"))
	if err != nil {
		respondError(c, err, "Failed to list revisions")
		return
	}
	c.JSON(http.StatusOK, revisions)
}
