package domain

import "time"

// TicketRecord is the structured form of one ticket as it appears in a
// per-status listing. Records are built fresh per request and never stored.
type TicketRecord struct {
	Key         string
	Summary     string
	AssigneeRaw string // literal token from the listing, e.g. "Unassigned"
	Assignee    string // normalized; never empty, see NormalizeAssignee
	IssueType   string
	Priority    string
}

// EnrichedRecord is a TicketRecord extended with the timestamps fetched from
// the per-issue detail endpoint. Any of the times may be nil when the detail
// fetch failed or the tracker value could not be parsed.
type EnrichedRecord struct {
	TicketRecord
	Created  *time.Time
	Resolved *time.Time
	Updated  *time.Time
}

// resolutionTime returns the instant the ticket is considered resolved at,
// falling back to the last-updated time when no explicit resolution date
// exists. Returns nil when neither is known.
func (r EnrichedRecord) resolutionTime() *time.Time {
	if r.Resolved != nil {
		return r.Resolved
	}
	return r.Updated
}

// IssueDetail is the raw per-issue payload returned by the tracker.
// Timestamps stay as tracker-supplied strings; parsing them is the
// aggregation core's concern.
type IssueDetail struct {
	Key            string `json:"key"`
	Summary        string `json:"summary"`
	Description    string `json:"description"`
	Status         string `json:"status"`
	Assignee       string `json:"assignee"`
	Priority       string `json:"priority"`
	IssueType      string `json:"issueType"`
	Reporter       string `json:"reporter"`
	Project        string `json:"project"`
	Created        string `json:"created"`
	ResolutionDate string `json:"resolutionDate,omitempty"`
	Updated        string `json:"updated"`
}

// UserSummary is a tracker user as returned by the user search.
type UserSummary struct {
	AccountID   string `json:"accountId"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email,omitempty"`
}
