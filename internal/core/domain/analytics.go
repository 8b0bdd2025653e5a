package domain

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Distribution labels.
const (
	LabelUnknown    = "Unknown"
	LabelAssigned   = "Assigned"
	LabelUnassigned = "Unassigned"
)

// WeekCount is one ISO-week bucket of created tickets. Week keys have the
// form "YYYY-WW" (ISO week numbering, zero-padded), so lexicographic order
// coincides with chronological order.
type WeekCount struct {
	Week  string `json:"week"`
	Count int    `json:"count"`
}

// AnalyticsReport is the aggregated view over a set of enriched records.
type AnalyticsReport struct {
	TicketsPerWeek         []WeekCount    `json:"ticketsPerWeek"`
	PriorityDistribution   map[string]int `json:"priorityDistribution"`
	TypeDistribution       map[string]int `json:"typeDistribution"`
	AssignmentDistribution map[string]int `json:"assignmentDistribution"`
	AvgResolutionTime      float64        `json:"avgResolutionTime"`
	TotalTickets           int            `json:"totalTickets"`
	ResolvedTickets        int            `json:"resolvedTickets"`
}

// TicketStats is the simple per-status / per-assignee count view.
type TicketStats struct {
	TotalTickets    int            `json:"totalTickets"`
	ByStatus        map[string]int `json:"byStatus"`
	ByAssignee      map[string]int `json:"byAssignee"`
	UnassignedCount int            `json:"unassignedCount"`
}

// WeekKey returns the ISO year-week bucket key for an instant, computed in
// UTC.
func WeekKey(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d-%02d", year, week)
}

// Aggregate computes the analytics report over a sequence of enriched
// records, optionally restricted to records created at or after cutoff.
//
// Inclusion rules:
//   - With a cutoff set, a record is included only if its created time is
//     known and not before the cutoff; a record whose created time could
//     not be parsed cannot be tested against the window and is excluded.
//   - Without a cutoff every record is included, but a record with no
//     created time still contributes to no weekly bucket.
//   - A record counts as resolved when a resolution instant is known
//     (explicit resolution date, else last-updated) and is not earlier
//     than created. Negative spans are unreliable data and are excluded
//     from both the numerator and denominator of the average.
//
// The result is deterministic for a fixed input order; callers sort records
// by ticket key beforehand.
func Aggregate(records []EnrichedRecord, cutoff *time.Time) *AnalyticsReport {
	report := &AnalyticsReport{
		TicketsPerWeek:         []WeekCount{},
		PriorityDistribution:   make(map[string]int),
		TypeDistribution:       make(map[string]int),
		AssignmentDistribution: make(map[string]int),
	}

	weeks := make(map[string]int)
	var totalDays float64

	for _, rec := range records {
		if cutoff != nil {
			if rec.Created == nil || rec.Created.Before(*cutoff) {
				continue
			}
		}
		report.TotalTickets++

		if rec.Created != nil {
			weeks[WeekKey(*rec.Created)]++
		}

		report.PriorityDistribution[labelOrUnknown(rec.Priority)]++
		report.TypeDistribution[labelOrUnknown(rec.IssueType)]++
		if IsUnassigned(rec.Assignee) {
			report.AssignmentDistribution[LabelUnassigned]++
		} else {
			report.AssignmentDistribution[LabelAssigned]++
		}

		if rec.Created != nil {
			if resolved := rec.resolutionTime(); resolved != nil {
				span := resolved.Sub(*rec.Created)
				if span >= 0 {
					totalDays += span.Hours() / 24
					report.ResolvedTickets++
				}
			}
		}
	}

	if report.ResolvedTickets > 0 {
		avg := totalDays / float64(report.ResolvedTickets)
		report.AvgResolutionTime = math.Round(avg*10) / 10
	}

	for week, count := range weeks {
		report.TicketsPerWeek = append(report.TicketsPerWeek, WeekCount{Week: week, Count: count})
	}
	sort.Slice(report.TicketsPerWeek, func(i, j int) bool {
		return report.TicketsPerWeek[i].Week < report.TicketsPerWeek[j].Week
	})

	return report
}

// BuildStats computes the simple count view over parsed records grouped by
// status bucket. Assignee counts use the normalized identity, so every raw
// spelling of "unassigned" lands in UnassignedCount rather than polluting
// ByAssignee.
func BuildStats(buckets map[string][]TicketRecord) *TicketStats {
	stats := &TicketStats{
		ByStatus:   make(map[string]int),
		ByAssignee: make(map[string]int),
	}

	for status, records := range buckets {
		if len(records) == 0 {
			continue
		}
		stats.ByStatus[status] = len(records)
		stats.TotalTickets += len(records)

		for _, rec := range records {
			if IsUnassigned(rec.Assignee) {
				stats.UnassignedCount++
			} else {
				stats.ByAssignee[rec.Assignee]++
			}
		}
	}

	return stats
}

func labelOrUnknown(value string) string {
	if value == "" {
		return LabelUnknown
	}
	return value
}
