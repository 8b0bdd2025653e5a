package http

import (
	"log/slog"
	"net/http"

	"github.com/lorrc/jira-gateway-backend/internal/adapters/primary/validation"
	"github.com/lorrc/jira-gateway-backend/internal/core/ports"
)

// AnalyticsHandler serves aggregate stats and analytics endpoints
type AnalyticsHandler struct {
	service ports.TicketQueryService
	errors  *ErrorHandler
	logger  *slog.Logger
}

func NewAnalyticsHandler(service ports.TicketQueryService, errorHandler *ErrorHandler, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		errors:  errorHandler,
		logger:  logger.With("handler", "analytics"),
	}
}

// GetStats handles GET /api/v1/stats
func (h *AnalyticsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, stats)
}

// GetAnalytics handles GET /api/v1/analytics
func (h *AnalyticsHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	window := validation.ParseTimeWindow(r)

	report, err := h.service.GetAnalytics(r.Context(), window)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, report)
}
