package http

import (
	"errors"
	"log/slog"
	"net/http"

	apperrors "github.com/lorrc/jira-gateway-backend/internal/core/errors"
)

// ErrorResponse is the standard error payload returned to clients
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ErrorHandler translates service errors into HTTP responses
type ErrorHandler struct {
	logger *slog.Logger
}

func NewErrorHandler(logger *slog.Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// HandleError writes the appropriate HTTP response for err
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.StatusCode >= http.StatusInternalServerError {
			h.logger.Error("request failed",
				"method", r.Method,
				"path", r.URL.Path,
				"code", appErr.Code,
				"error", appErr.Err,
			)
		} else {
			h.logger.Warn("request rejected",
				"method", r.Method,
				"path", r.URL.Path,
				"code", appErr.Code,
				"message", appErr.Message,
			)
		}
		writeError(w, appErr.StatusCode, appErr.Code, appErr.Message)
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrIssueNotFound):
		writeError(w, http.StatusNotFound, "ISSUE_NOT_FOUND", "issue not found")
	case errors.Is(err, apperrors.ErrQueryRequired):
		writeError(w, http.StatusBadRequest, "QUERY_REQUIRED", "query parameter is required")
	case errors.Is(err, apperrors.ErrBadRequest):
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
	case errors.Is(err, apperrors.ErrUpstreamForbidden):
		writeError(w, http.StatusBadGateway, "UPSTREAM_FORBIDDEN", "upstream rejected credentials")
	case errors.Is(err, apperrors.ErrUpstreamUnavailable):
		writeError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "upstream request failed")
	default:
		h.logger.Error("unhandled error",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred")
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	WriteJSON(w, status, resp)
}
