package jira

import (
	"context"
	"net/url"

	"github.com/lorrc/jira-gateway-backend/internal/core/domain"
	"github.com/lorrc/jira-gateway-backend/internal/core/ports"
)

var _ ports.ProjectDirectory = (*Client)(nil)

// SearchUsers looks up tracker users by name or email.
func (c *Client) SearchUsers(ctx context.Context, query string) ([]domain.UserSummary, error) {
	params := url.Values{}
	params.Set("query", query)

	var users []userField
	if err := c.getJSON(ctx, "user/search", params, &users); err != nil {
		return nil, err
	}

	summaries := make([]domain.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, domain.UserSummary{
			AccountID:   u.AccountID,
			DisplayName: u.DisplayName,
			Email:       u.Email,
		})
	}
	return summaries, nil
}

// ListPriorities returns the priority names configured on the site, in the
// tracker-defined order.
func (c *Client) ListPriorities(ctx context.Context) ([]string, error) {
	var priorities []namedField
	if err := c.getJSON(ctx, "priority", nil, &priorities); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(priorities))
	for _, p := range priorities {
		names = append(names, p.Name)
	}
	return names, nil
}

// projectResponse is the subset of GET /project/{key} we care about.
type projectResponse struct {
	IssueTypes []struct {
		Name    string `json:"name"`
		Subtask bool   `json:"subtask"`
	} `json:"issueTypes"`
}

// ListIssueTypes returns the project's non-subtask issue type names.
func (c *Client) ListIssueTypes(ctx context.Context) ([]string, error) {
	var project projectResponse
	if err := c.getJSON(ctx, "project/"+url.PathEscape(c.cfg.ProjectKey), nil, &project); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(project.IssueTypes))
	for _, it := range project.IssueTypes {
		if it.Subtask {
			continue
		}
		names = append(names, it.Name)
	}
	return names, nil
}
