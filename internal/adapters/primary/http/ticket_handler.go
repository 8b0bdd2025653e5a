package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lorrc/jira-gateway-backend/internal/adapters/primary/validation"
	"github.com/lorrc/jira-gateway-backend/internal/core/ports"
)

// TicketHandler serves ticket listing and detail endpoints
type TicketHandler struct {
	service ports.TicketQueryService
	errors  *ErrorHandler
	logger  *slog.Logger
}

func NewTicketHandler(service ports.TicketQueryService, errorHandler *ErrorHandler, logger *slog.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		errors:  errorHandler,
		logger:  logger.With("handler", "ticket"),
	}
}

// ListTickets handles GET /api/v1/tickets
func (h *TicketHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	criteria := validation.ParseFilterCriteria(r)

	tickets, err := h.service.ListTickets(r.Context(), criteria)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, tickets)
}

// GetTicketDetails handles GET /api/v1/tickets/{ticketKey}
func (h *TicketHandler) GetTicketDetails(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "ticketKey")

	detail, err := h.service.GetTicketDetails(r.Context(), key)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, detail)
}
