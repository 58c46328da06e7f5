package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Rule    string `json:"rule,omitempty"`
	Subject string `json:"subject,omitempty"`
}

// statusFor maps an error's kind onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicateCode),
		errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrReferential):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 500 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// respondError writes err with its mapped status. Internal failures are
// logged in full and reported with the generic message only.
func respondError(c *gin.Context, err error, message string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(message, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: message})
		return
	}

	logger.Warn(message, slog.String("error", err.Error()), slog.Int("status", status))
	body := ErrorResponse{Error: err.Error()}
	var ruleErr *apperrors.RuleError
	if errors.As(err, &ruleErr) {
		body.Rule = ruleErr.Rule.Error()
		body.Subject = ruleErr.Subject
	}
	c.JSON(status, body)
}

// badRequest rejects malformed input before it reaches a service.
func badRequest(c *gin.Context, err error, message string) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn(message, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message + ": " + err.Error()})
}

// requestScope returns the workplace in the path and the acting user. It
// writes the error response and returns ok=false when either is missing.
func requestScope(c *gin.Context) (workplaceID string, userID string, ok bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workplaceID = c.Param("workplace_id")
	if workplaceID == "" {
		logger.Error("Workplace ID missing from path")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Workplace ID required in path"})
		return "", "", false
	}
	userID, ok = middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", "", false
	}
	return workplaceID, userID, true
}
