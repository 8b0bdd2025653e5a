package http

import (
	"log/slog"
	"net/http"

	"github.com/lorrc/jira-gateway-backend/internal/adapters/primary/validation"
	"github.com/lorrc/jira-gateway-backend/internal/core/ports"
)

// DirectoryHandler serves project metadata lookups
type DirectoryHandler struct {
	directory ports.ProjectDirectory
	errors    *ErrorHandler
	logger    *slog.Logger
}

func NewDirectoryHandler(directory ports.ProjectDirectory, errorHandler *ErrorHandler, logger *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		directory: directory,
		errors:    errorHandler,
		logger:    logger.With("handler", "directory"),
	}
}

// SearchUsers handles GET /api/v1/users
func (h *DirectoryHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	query, err := validation.RequireQueryParam(r, "query")
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	users, err := h.directory.SearchUsers(r.Context(), query)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	WriteList(w, users)
}

// ListPriorities handles GET /api/v1/priorities
func (h *DirectoryHandler) ListPriorities(w http.ResponseWriter, r *http.Request) {
	priorities, err := h.directory.ListPriorities(r.Context())
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	WriteList(w, priorities)
}

// ListIssueTypes handles GET /api/v1/issue-types
func (h *DirectoryHandler) ListIssueTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.directory.ListIssueTypes(r.Context())
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	WriteList(w, types)
}
