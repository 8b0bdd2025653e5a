package ports

import (
	"context"

	"github.com/lorrc/jira-gateway-backend/internal/core/domain"
)

// TicketSource is the port to the remote tracker for listing data. The
// listing comes back as the legacy encoded-line format, one ordered slice
// per status label; whatever replaces the real tracker client must honor
// that shape.
type TicketSource interface {
	// FetchTicketsByStatus returns every ticket of the configured
	// project, grouped by status label, each encoded as
	// "KEY: SUMMARY [ASSIGNEE] [TYPE] [PRIORITY]".
	FetchTicketsByStatus(ctx context.Context) (map[string][]string, error)

	// FetchIssueDetail returns the raw detail payload for one issue
	// (timestamps, assignee, priority, type). Implementations return
	// apperrors.ErrIssueNotFound when the key does not exist.
	FetchIssueDetail(ctx context.Context, key string) (*domain.IssueDetail, error)
}

// ProjectDirectory is the port for project-scoped metadata lookups.
type ProjectDirectory interface {
	SearchUsers(ctx context.Context, query string) ([]domain.UserSummary, error)
	ListPriorities(ctx context.Context) ([]string, error)
	ListIssueTypes(ctx context.Context) ([]string, error)
}

// HealthChecker reports whether the upstream tracker is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
