package validation

import (
	"net/http"
	"strings"

	"github.com/lorrc/jira-gateway-backend/internal/core/domain"
	apperrors "github.com/lorrc/jira-gateway-backend/internal/core/errors"
)

// The listing and analytics endpoints deliberately accept anything: unknown
// filter values simply match nothing and unknown window tokens fail open to
// "all", so there is no per-field validation to do here — only extraction.

// ParseFilterCriteria extracts the listing filter criteria from query
// parameters. Missing parameters are the empty string, which the domain
// treats as match-all.
func ParseFilterCriteria(r *http.Request) domain.FilterCriteria {
	q := r.URL.Query()
	return domain.FilterCriteria{
		Search:    strings.TrimSpace(q.Get("search")),
		Assignee:  strings.TrimSpace(q.Get("assignee")),
		IssueType: strings.TrimSpace(q.Get("type")),
		Status:    strings.TrimSpace(q.Get("status")),
		Priority:  strings.TrimSpace(q.Get("priority")),
	}
}

// ParseTimeWindow extracts the analytics time-window token. The default is
// the all-time window.
func ParseTimeWindow(r *http.Request) string {
	token := strings.TrimSpace(r.URL.Query().Get("time"))
	if token == "" {
		return domain.WindowAll
	}
	return token
}

// RequireQueryParam extracts a query parameter that must be present and
// non-blank.
func RequireQueryParam(r *http.Request, key string) (string, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return "", apperrors.NewBadRequestError(apperrors.ErrQueryRequired, "Query parameter '"+key+"' is required")
	}
	return value, nil
}
