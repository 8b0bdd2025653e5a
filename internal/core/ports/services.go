package ports

import (
	"context"

	"github.com/lorrc/jira-gateway-backend/internal/core/domain"
)

// TicketQueryService defines the read-side business operations over the
// remote tracker: filtered listings, simple counts and time-bucketed
// analytics. All operations are request-scoped and side-effect free.
type TicketQueryService interface {
	// ListTickets returns the encoded ticket lines that survive the
	// given criteria, grouped by status. Buckets left empty by
	// filtering are omitted entirely.
	ListTickets(ctx context.Context, criteria domain.FilterCriteria) (map[string][]string, error)

	// GetTicketDetails returns the full detail view for one issue.
	GetTicketDetails(ctx context.Context, key string) (*domain.IssueDetail, error)

	// GetStats returns simple per-status and per-assignee counts.
	GetStats(ctx context.Context) (*domain.TicketStats, error)

	// GetAnalytics returns aggregated statistics, limited to the given
	// time window token ("all", "week" or "month"; unknown tokens fail
	// open to "all").
	GetAnalytics(ctx context.Context, window string) (*domain.AnalyticsReport, error)
}
