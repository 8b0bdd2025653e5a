package domain

import (
	"fmt"
	"regexp"
	"strings"

	apperrors "github.com/lorrc/jira-gateway-backend/internal/core/errors"
)

// The listing transport format is a single line per ticket:
//
//	KEY: SUMMARY [ASSIGNEE] [TYPE] [PRIORITY]
//
// This is a legacy compatibility format; everything that speaks it lives in
// this file. The first three bracket groups are always taken to be the
// trailing assignee/type/priority triplet. A summary that contains its own
// bracketed text before the real triplet will therefore misparse; that is a
// structural precondition on the encoding, not something the parser
// re-validates.

var bracketGroup = regexp.MustCompile(`\[([^\]]+)\]`)

// ParseTicketLine decodes one encoded ticket line into a TicketRecord.
// Malformed lines return apperrors.ErrMalformedTicketLine; callers are
// expected to drop the line and move on rather than fail the batch.
func ParseTicketLine(line string) (TicketRecord, error) {
	key, rest, found := strings.Cut(line, ": ")
	if !found {
		return TicketRecord{}, fmt.Errorf("%w: missing key separator", apperrors.ErrMalformedTicketLine)
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return TicketRecord{}, fmt.Errorf("%w: empty key", apperrors.ErrMalformedTicketLine)
	}

	groups := bracketGroup.FindAllStringSubmatchIndex(rest, -1)
	if len(groups) < 3 {
		return TicketRecord{}, fmt.Errorf("%w: expected 3 bracket groups, found %d", apperrors.ErrMalformedTicketLine, len(groups))
	}

	summary := strings.TrimSpace(rest[:groups[0][0]])

	group := func(i int) string { return rest[groups[i][2]:groups[i][3]] }
	assigneeRaw := group(0)

	return TicketRecord{
		Key:         key,
		Summary:     summary,
		AssigneeRaw: assigneeRaw,
		Assignee:    NormalizeAssignee(assigneeRaw),
		IssueType:   group(1),
		Priority:    group(2),
	}, nil
}

// EncodeTicketLine renders a record back into the legacy listing format.
// The raw assignee token is used so that encoding is the exact inverse of
// parsing for well-formed records.
func EncodeTicketLine(rec TicketRecord) string {
	return fmt.Sprintf("%s: %s [%s] [%s] [%s]", rec.Key, rec.Summary, rec.AssigneeRaw, rec.IssueType, rec.Priority)
}
