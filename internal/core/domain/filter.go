package domain

import "strings"

// matchAllToken is the filter value meaning "do not constrain on this
// criterion". An empty value means the same thing.
const matchAllToken = "all"

// FilterCriteria is a set of independent listing constraints. Each field is
// either the match-all token ("all", case-insensitive, or empty) or a
// literal compared case-insensitively against the corresponding normalized
// record field. Criteria combine by logical AND, so the result is the same
// whatever order they are evaluated in.
type FilterCriteria struct {
	Search    string // substring match over the full encoded line
	Assignee  string
	IssueType string
	Status    string // evaluated per bucket, not per record
	Priority  string
}

func matchAll(token string) bool {
	token = strings.TrimSpace(token)
	return token == "" || strings.EqualFold(token, matchAllToken)
}

// MatchesStatus reports whether a status bucket passes the bucket-level
// status criterion.
func (c FilterCriteria) MatchesStatus(status string) bool {
	return matchAll(c.Status) || strings.EqualFold(strings.TrimSpace(c.Status), status)
}

// MatchesRecord reports whether one record passes every per-record
// criterion. The encoded source line is needed for the free-text search
// criterion, which matches against the full encoded representation.
func (c FilterCriteria) MatchesRecord(rec TicketRecord, encoded string) bool {
	return c.matchesSearch(encoded) &&
		c.matchesAssignee(rec) &&
		c.matchesField(c.IssueType, rec.IssueType) &&
		c.matchesField(c.Priority, rec.Priority)
}

func (c FilterCriteria) matchesSearch(encoded string) bool {
	if matchAll(c.Search) {
		return true
	}
	return strings.Contains(strings.ToLower(encoded), strings.ToLower(strings.TrimSpace(c.Search)))
}

// matchesAssignee normalizes the criterion through the same identity rules
// as record assignees, so any accepted spelling of "unassigned" selects
// exactly the unassigned records. Named assignees match by case-insensitive
// equality, not substring.
func (c FilterCriteria) matchesAssignee(rec TicketRecord) bool {
	if matchAll(c.Assignee) {
		return true
	}
	want := NormalizeAssignee(c.Assignee)
	if IsUnassigned(want) {
		return IsUnassigned(rec.Assignee)
	}
	return strings.EqualFold(want, rec.Assignee)
}

func (c FilterCriteria) matchesField(criterion, value string) bool {
	return matchAll(criterion) || strings.EqualFold(strings.TrimSpace(criterion), value)
}
