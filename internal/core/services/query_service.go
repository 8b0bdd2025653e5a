package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lorrc/jira-gateway-backend/internal/core/domain"
	"github.com/lorrc/jira-gateway-backend/internal/core/ports"
)

const defaultDetailFetchLimit = 4

// QueryService implements the read-side business logic over the remote
// tracker. It holds no mutable state of its own; every call builds its
// records from scratch and discards them with the response, so it is safe
// to share across concurrent request handlers.
type QueryService struct {
	source      ports.TicketSource
	logger      *slog.Logger
	detailLimit int
}

var _ ports.TicketQueryService = (*QueryService)(nil)

// NewQueryService creates a new query service. detailFetchLimit bounds how
// many per-issue detail fetches run concurrently during analytics; values
// below 1 fall back to a small default.
func NewQueryService(source ports.TicketSource, logger *slog.Logger, detailFetchLimit int) *QueryService {
	if detailFetchLimit < 1 {
		detailFetchLimit = defaultDetailFetchLimit
	}
	return &QueryService{
		source:      source,
		logger:      logger.With("service", "ticket_query"),
		detailLimit: detailFetchLimit,
	}
}

// ListTickets fetches the per-status listing and applies the filter
// criteria. Lines that fail to parse are dropped silently; buckets whose
// status does not match, or that end up with no surviving record, are
// omitted from the result.
func (s *QueryService) ListTickets(ctx context.Context, criteria domain.FilterCriteria) (map[string][]string, error) {
	buckets, err := s.source.FetchTicketsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make(map[string][]string)
	for status, lines := range buckets {
		if !criteria.MatchesStatus(status) {
			continue
		}

		var kept []string
		for _, line := range lines {
			rec, err := domain.ParseTicketLine(line)
			if err != nil {
				s.logger.Debug("dropping unparseable ticket line", "status", status, "error", err)
				continue
			}
			if criteria.MatchesRecord(rec, line) {
				kept = append(kept, line)
			}
		}

		if len(kept) > 0 {
			filtered[status] = kept
		}
	}

	return filtered, nil
}

// GetTicketDetails returns the full detail view for one issue.
func (s *QueryService) GetTicketDetails(ctx context.Context, key string) (*domain.IssueDetail, error) {
	return s.source.FetchIssueDetail(ctx, key)
}

// GetStats computes simple per-status and per-assignee counts from the
// listing. Only lines that parse contribute; an empty upstream result
// yields zero counts, not an error.
func (s *QueryService) GetStats(ctx context.Context) (*domain.TicketStats, error) {
	buckets, err := s.source.FetchTicketsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	parsed := make(map[string][]domain.TicketRecord, len(buckets))
	for status, lines := range buckets {
		for _, line := range lines {
			rec, err := domain.ParseTicketLine(line)
			if err != nil {
				s.logger.Debug("dropping unparseable ticket line", "status", status, "error", err)
				continue
			}
			parsed[status] = append(parsed[status], rec)
		}
	}

	return domain.BuildStats(parsed), nil
}

// GetAnalytics fetches the listing, enriches every parsed record with
// timestamps from the per-issue detail endpoint, and aggregates. Detail
// fetches are independent and run concurrently (bounded by the configured
// limit); a failed fetch only costs that ticket its date-derived fields,
// never the batch. Records are aggregated in key order so the output does
// not depend on fetch completion order.
func (s *QueryService) GetAnalytics(ctx context.Context, window string) (*domain.AnalyticsReport, error) {
	buckets, err := s.source.FetchTicketsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	var records []domain.TicketRecord
	for status, lines := range buckets {
		for _, line := range lines {
			rec, err := domain.ParseTicketLine(line)
			if err != nil {
				s.logger.Debug("dropping unparseable ticket line", "status", status, "error", err)
				continue
			}
			records = append(records, rec)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Key < records[j].Key })

	enriched := s.enrichRecords(ctx, records)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	cutoff, err := domain.ResolveCutoff(window, time.Now(), domain.WindowLenient)
	if err != nil {
		return nil, err
	}

	return domain.Aggregate(enriched, cutoff), nil
}

// enrichRecords issues one detail fetch per record, bounded by the
// configured concurrency limit, and writes results into a slice indexed by
// the record's position so the enriched order mirrors the input order.
func (s *QueryService) enrichRecords(ctx context.Context, records []domain.TicketRecord) []domain.EnrichedRecord {
	enriched := make([]domain.EnrichedRecord, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.detailLimit)

	for i, rec := range records {
		i, rec := i, rec
		enriched[i] = domain.EnrichedRecord{TicketRecord: rec}
		g.Go(func() error {
			detail, err := s.source.FetchIssueDetail(gctx, rec.Key)
			if err != nil || detail == nil {
				s.logger.Warn("detail fetch failed, skipping derived fields", "key", rec.Key, "error", err)
				return nil
			}
			if t, ok := domain.ParseTimestamp(detail.Created); ok {
				enriched[i].Created = &t
			}
			if t, ok := domain.ParseTimestamp(detail.ResolutionDate); ok {
				enriched[i].Resolved = &t
			}
			if t, ok := domain.ParseTimestamp(detail.Updated); ok {
				enriched[i].Updated = &t
			}
			return nil
		})
	}

	// Workers never return errors; failures degrade to missing fields.
	_ = g.Wait()

	return enriched
}
