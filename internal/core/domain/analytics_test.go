package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorrc/jira-gateway-backend/internal/core/domain"
)

func TestWeekKey(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"mid-year week", time.Date(2024, 1, 30, 10, 0, 0, 0, time.UTC), "2024-05"},
		{"single-digit week is zero-padded", time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), "2024-01"},
		{"early january may belong to previous iso year", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), "2022-52"},
		{"computed in utc", time.Date(2024, 1, 29, 1, 0, 0, 0, time.FixedZone("UTC+5", 5*3600)), "2024-04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.WeekKey(tt.t))
		})
	}
}

func enriched(key, assignee, issueType, priority string, created, resolved, updated *time.Time) domain.EnrichedRecord {
	return domain.EnrichedRecord{
		TicketRecord: domain.TicketRecord{
			Key:         key,
			Summary:     "s",
			AssigneeRaw: assignee,
			Assignee:    domain.NormalizeAssignee(assignee),
			IssueType:   issueType,
			Priority:    priority,
		},
		Created:  created,
		Resolved: resolved,
		Updated:  updated,
	}
}

func TestAggregate(t *testing.T) {
	day := func(d int) *time.Time {
		ts := time.Date(2024, 1, 29+d, 10, 0, 0, 0, time.UTC) // week 2024-05
		return &ts
	}

	records := []domain.EnrichedRecord{
		// resolved after 3 days
		enriched("SUP-1", "Alice", "Bug", "High", day(0), day(3), nil),
		// no resolution date, no update, counts created but not resolved
		enriched("SUP-2", "Unassigned", "Task", "Low", day(1), nil, nil),
		// no created time, contributes to distributions but no week bucket
		enriched("SUP-3", "Bob", "Bug", "", nil, nil, nil),
	}

	report := domain.Aggregate(records, nil)

	assert.Equal(t, 3, report.TotalTickets)
	assert.Equal(t, []domain.WeekCount{{Week: "2024-05", Count: 2}}, report.TicketsPerWeek)
	assert.Equal(t, map[string]int{"High": 1, "Low": 1, domain.LabelUnknown: 1}, report.PriorityDistribution)
	assert.Equal(t, map[string]int{"Bug": 2, "Task": 1}, report.TypeDistribution)
	assert.Equal(t, map[string]int{domain.LabelAssigned: 2, domain.LabelUnassigned: 1}, report.AssignmentDistribution)
	assert.Equal(t, 1, report.ResolvedTickets)
	assert.Equal(t, 3.0, report.AvgResolutionTime)
}

func TestAggregate_ResolutionFallsBackToUpdated(t *testing.T) {
	created := time.Date(2024, 1, 29, 10, 0, 0, 0, time.UTC)
	updated := created.AddDate(0, 0, 2)

	records := []domain.EnrichedRecord{
		enriched("SUP-1", "Alice", "Bug", "High", &created, nil, &updated),
	}

	report := domain.Aggregate(records, nil)

	assert.Equal(t, 1, report.ResolvedTickets)
	assert.Equal(t, 2.0, report.AvgResolutionTime)
}

func TestAggregate_NegativeSpansExcluded(t *testing.T) {
	created := time.Date(2024, 1, 29, 10, 0, 0, 0, time.UTC)
	before := created.AddDate(0, 0, -1)
	after := created.AddDate(0, 0, 4)

	records := []domain.EnrichedRecord{
		// resolution before creation, unreliable data
		enriched("SUP-1", "Alice", "Bug", "High", &created, &before, nil),
		enriched("SUP-2", "Bob", "Bug", "High", &created, &after, nil),
	}

	report := domain.Aggregate(records, nil)

	// the negative span affects neither the count nor the average
	assert.Equal(t, 1, report.ResolvedTickets)
	assert.Equal(t, 4.0, report.AvgResolutionTime)
	assert.Equal(t, 2, report.TotalTickets)
}

func TestAggregate_AverageRounding(t *testing.T) {
	created := time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC)
	resolved := created.Add(60 * time.Hour) // 2.5 days

	records := []domain.EnrichedRecord{
		enriched("SUP-1", "Alice", "Bug", "High", &created, &resolved, nil),
	}

	report := domain.Aggregate(records, nil)
	assert.Equal(t, 2.5, report.AvgResolutionTime)
}

func TestAggregate_Cutoff(t *testing.T) {
	cutoff := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	old := cutoff.AddDate(0, 0, -10)
	recent := cutoff.AddDate(0, 0, 3)

	records := []domain.EnrichedRecord{
		enriched("SUP-1", "Alice", "Bug", "High", &old, nil, nil),
		enriched("SUP-2", "Bob", "Task", "Low", &recent, nil, nil),
		// created time unknown, cannot be tested against the window
		enriched("SUP-3", "Carol", "Bug", "High", nil, nil, nil),
	}

	report := domain.Aggregate(records, &cutoff)

	assert.Equal(t, 1, report.TotalTickets)
	assert.Equal(t, map[string]int{"Low": 1}, report.PriorityDistribution)
	require.Len(t, report.TicketsPerWeek, 1)
	assert.Equal(t, 1, report.TicketsPerWeek[0].Count)
}

func TestAggregate_Empty(t *testing.T) {
	report := domain.Aggregate(nil, nil)

	assert.Equal(t, 0, report.TotalTickets)
	assert.Equal(t, 0, report.ResolvedTickets)
	assert.Equal(t, 0.0, report.AvgResolutionTime)
	assert.NotNil(t, report.TicketsPerWeek)
	assert.Empty(t, report.TicketsPerWeek)
	assert.Empty(t, report.PriorityDistribution)
}

func TestAggregate_WeeksSortedAscending(t *testing.T) {
	week := func(y int, m time.Month, d int) *time.Time {
		ts := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &ts
	}

	records := []domain.EnrichedRecord{
		enriched("SUP-1", "A", "Bug", "High", week(2024, 3, 12), nil, nil),
		enriched("SUP-2", "A", "Bug", "High", week(2024, 1, 30), nil, nil),
		enriched("SUP-3", "A", "Bug", "High", week(2024, 2, 13), nil, nil),
	}

	report := domain.Aggregate(records, nil)

	require.Len(t, report.TicketsPerWeek, 3)
	assert.Equal(t, "2024-05", report.TicketsPerWeek[0].Week)
	assert.Equal(t, "2024-07", report.TicketsPerWeek[1].Week)
	assert.Equal(t, "2024-11", report.TicketsPerWeek[2].Week)
}

func TestBuildStats(t *testing.T) {
	rec := func(key, assignee string) domain.TicketRecord {
		return domain.TicketRecord{
			Key:      key,
			Assignee: domain.NormalizeAssignee(assignee),
		}
	}

	buckets := map[string][]domain.TicketRecord{
		"To Do": {
			rec("SUP-1", "Alice"),
			rec("SUP-2", "Unassigned"),
		},
		"In Progress": {
			rec("SUP-3", "Alice"),
			rec("SUP-4", "Bob"),
			rec("SUP-5", "non assigné"),
		},
		"Done": {},
	}

	stats := domain.BuildStats(buckets)

	assert.Equal(t, 5, stats.TotalTickets)
	assert.Equal(t, map[string]int{"To Do": 2, "In Progress": 3}, stats.ByStatus)
	assert.Equal(t, map[string]int{"Alice": 2, "Bob": 1}, stats.ByAssignee)
	assert.Equal(t, 2, stats.UnassignedCount)
}

func TestBuildStats_Empty(t *testing.T) {
	stats := domain.BuildStats(map[string][]domain.TicketRecord{})

	assert.Equal(t, 0, stats.TotalTickets)
	assert.Empty(t, stats.ByStatus)
	assert.Empty(t, stats.ByAssignee)
	assert.Equal(t, 0, stats.UnassignedCount)
}
