package jira

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/lorrc/jira-gateway-backend/internal/core/domain"
	"github.com/lorrc/jira-gateway-backend/internal/core/ports"
)

// Sentinels the listing format uses for absent fields.
const (
	assigneeSentinel = "Unassigned"
	prioritySentinel = "None"
)

var _ ports.TicketSource = (*Client)(nil)

// searchResponse is the shape of GET /search.
type searchResponse struct {
	Issues []issue `json:"issues"`
}

type issue struct {
	Key    string      `json:"key"`
	Fields issueFields `json:"fields"`
}

type issueFields struct {
	Summary        string        `json:"summary"`
	Status         namedField    `json:"status"`
	IssueType      namedField    `json:"issuetype"`
	Priority       *namedField   `json:"priority"`
	Assignee       *userField    `json:"assignee"`
	Reporter       *userField    `json:"reporter"`
	Project        *namedField   `json:"project"`
	Description    *adfDocument  `json:"description"`
	Created        string        `json:"created"`
	Updated        string        `json:"updated"`
	ResolutionDate string        `json:"resolutiondate"`
}

type namedField struct {
	Name string `json:"name"`
}

type userField struct {
	AccountID   string `json:"accountId"`
	DisplayName string `json:"displayName"`
	Email       string `json:"emailAddress"`
}

// FetchTicketsByStatus lists every ticket of the configured project grouped
// by status. Records are built structured-first from the issue fields and
// only then rendered through the legacy line codec, so the bracket format
// never leaks out of the codec.
func (c *Client) FetchTicketsByStatus(ctx context.Context) (map[string][]string, error) {
	query := url.Values{}
	query.Set("jql", fmt.Sprintf("project=%s ORDER BY status ASC, created DESC", c.cfg.ProjectKey))

	var result searchResponse
	if err := c.getJSON(ctx, "search", query, &result); err != nil {
		return nil, err
	}

	buckets := make(map[string][]string)
	for _, iss := range result.Issues {
		rec := toTicketRecord(iss)
		status := iss.Fields.Status.Name
		buckets[status] = append(buckets[status], domain.EncodeTicketLine(rec))
	}

	c.logger.Debug("fetched ticket listing", "issues", len(result.Issues), "statuses", len(buckets))
	return buckets, nil
}

// FetchIssueDetail returns the raw detail payload for one issue.
func (c *Client) FetchIssueDetail(ctx context.Context, key string) (*domain.IssueDetail, error) {
	var iss issue
	if err := c.getJSON(ctx, "issue/"+url.PathEscape(key), nil, &iss); err != nil {
		return nil, err
	}

	detail := &domain.IssueDetail{
		Key:            iss.Key,
		Summary:        iss.Fields.Summary,
		Description:    iss.Fields.Description.text(),
		Status:         iss.Fields.Status.Name,
		Assignee:       displayNameOr(iss.Fields.Assignee, assigneeSentinel),
		Priority:       nameOr(iss.Fields.Priority, prioritySentinel),
		IssueType:      iss.Fields.IssueType.Name,
		Reporter:       displayNameOr(iss.Fields.Reporter, ""),
		Project:        nameOr(iss.Fields.Project, ""),
		Created:        iss.Fields.Created,
		ResolutionDate: iss.Fields.ResolutionDate,
		Updated:        iss.Fields.Updated,
	}
	if detail.Key == "" {
		detail.Key = key
	}
	return detail, nil
}

func toTicketRecord(iss issue) domain.TicketRecord {
	assigneeRaw := displayNameOr(iss.Fields.Assignee, assigneeSentinel)
	return domain.TicketRecord{
		Key:         iss.Key,
		Summary:     iss.Fields.Summary,
		AssigneeRaw: assigneeRaw,
		Assignee:    domain.NormalizeAssignee(assigneeRaw),
		IssueType:   iss.Fields.IssueType.Name,
		Priority:    nameOr(iss.Fields.Priority, prioritySentinel),
	}
}

func nameOr(f *namedField, fallback string) string {
	if f == nil || f.Name == "" {
		return fallback
	}
	return f.Name
}

func displayNameOr(u *userField, fallback string) string {
	if u == nil || u.DisplayName == "" {
		return fallback
	}
	return u.DisplayName
}

// adfDocument is a minimal view of Atlassian Document Format content: the
// detail endpoint returns descriptions as a tree of paragraphs and text
// nodes, which we flatten to plain text, one line per paragraph.
type adfDocument struct {
	Content []adfNode `json:"content"`
}

type adfNode struct {
	Type    string    `json:"type"`
	Text    string    `json:"text"`
	Content []adfNode `json:"content"`
}

func (d *adfDocument) text() string {
	if d == nil {
		return ""
	}
	var b strings.Builder
	for _, para := range d.Content {
		for _, node := range para.Content {
			if node.Type == "text" && node.Text != "" {
				b.WriteString(node.Text)
				b.WriteString("\n")
			}
		}
	}
	return strings.TrimSpace(b.String())
}
