package jira_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorrc/jira-gateway-backend/internal/adapters/secondary/jira"
	apperrors "github.com/lorrc/jira-gateway-backend/internal/core/errors"
)

func newTestClient(t *testing.T, handler http.Handler) *jira.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return jira.NewClient(jira.Config{
		BaseURL:      server.URL,
		Email:        "agent@example.com",
		APIToken:     "token",
		ProjectKey:   "SUP",
		Timeout:      5 * time.Second,
		MaxRetries:   2,
		RetryBackoff: time.Millisecond,
	}, logger)
}

func TestClient_Ping(t *testing.T) {
	t.Run("success sends basic auth", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rest/api/3/myself", r.URL.Path)
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "agent@example.com", user)
			assert.Equal(t, "token", pass)
			w.Write([]byte(`{"accountId":"1"}`))
		}))

		assert.NoError(t, client.Ping(context.Background()))
	})

	t.Run("bad credentials", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))

		err := client.Ping(context.Background())
		assert.ErrorIs(t, err, apperrors.ErrUpstreamForbidden)
	})
}

func TestClient_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"accountId":"1"}`))
	}))

	require.NoError(t, client.Ping(context.Background()))
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_RetriesExhausted(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	err := client.Ping(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
	assert.Equal(t, int32(3), calls.Load()) // initial attempt + 2 retries
}

func TestClient_FetchTicketsByStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/search", r.URL.Path)
		assert.Equal(t, "project=SUP ORDER BY status ASC, created DESC", r.URL.Query().Get("jql"))
		w.Write([]byte(`{
			"issues": [
				{
					"key": "SUP-1",
					"fields": {
						"summary": "Fix login page",
						"status": {"name": "To Do"},
						"issuetype": {"name": "Bug"},
						"priority": {"name": "High"},
						"assignee": {"displayName": "Alice Martin"}
					}
				},
				{
					"key": "SUP-2",
					"fields": {
						"summary": "Update docs",
						"status": {"name": "To Do"},
						"issuetype": {"name": "Task"},
						"priority": null,
						"assignee": null
					}
				},
				{
					"key": "SUP-3",
					"fields": {
						"summary": "Mail outage",
						"status": {"name": "Done"},
						"issuetype": {"name": "Incident"},
						"priority": {"name": "Highest"},
						"assignee": {"displayName": "Bob"}
					}
				}
			]
		}`))
	}))

	buckets, err := client.FetchTicketsByStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"To Do": {
			"SUP-1: Fix login page [Alice Martin] [Bug] [High]",
			"SUP-2: Update docs [Unassigned] [Task] [None]",
		},
		"Done": {
			"SUP-3: Mail outage [Bob] [Incident] [Highest]",
		},
	}, buckets)
}

func TestClient_FetchIssueDetail(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rest/api/3/issue/SUP-1", r.URL.Path)
			w.Write([]byte(`{
				"key": "SUP-1",
				"fields": {
					"summary": "Fix login page",
					"status": {"name": "In Progress"},
					"issuetype": {"name": "Bug"},
					"priority": {"name": "High"},
					"assignee": {"displayName": "Alice Martin"},
					"reporter": {"displayName": "Bob"},
					"project": {"name": "Support"},
					"description": {
						"type": "doc",
						"content": [
							{"type": "paragraph", "content": [{"type": "text", "text": "Users cannot log in."}]},
							{"type": "paragraph", "content": [{"type": "text", "text": "Started this morning."}]}
						]
					},
					"created": "2024-01-29T10:00:00.000+0000",
					"updated": "2024-01-30T09:00:00.000+0000",
					"resolutiondate": ""
				}
			}`))
		}))

		detail, err := client.FetchIssueDetail(context.Background(), "SUP-1")

		require.NoError(t, err)
		assert.Equal(t, "SUP-1", detail.Key)
		assert.Equal(t, "Fix login page", detail.Summary)
		assert.Equal(t, "Users cannot log in.\nStarted this morning.", detail.Description)
		assert.Equal(t, "In Progress", detail.Status)
		assert.Equal(t, "Alice Martin", detail.Assignee)
		assert.Equal(t, "High", detail.Priority)
		assert.Equal(t, "Bob", detail.Reporter)
		assert.Equal(t, "Support", detail.Project)
		assert.Equal(t, "2024-01-29T10:00:00.000+0000", detail.Created)
	})

	t.Run("absent fields fall back to sentinels", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"key": "SUP-2", "fields": {"summary": "s", "status": {"name": "To Do"}, "issuetype": {"name": "Task"}}}`))
		}))

		detail, err := client.FetchIssueDetail(context.Background(), "SUP-2")

		require.NoError(t, err)
		assert.Equal(t, "Unassigned", detail.Assignee)
		assert.Equal(t, "None", detail.Priority)
		assert.Equal(t, "", detail.Description)
	})

	t.Run("not found", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		_, err := client.FetchIssueDetail(context.Background(), "SUP-999")
		assert.ErrorIs(t, err, apperrors.ErrIssueNotFound)
	})
}

func TestClient_SearchUsers(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/user/search", r.URL.Path)
		assert.Equal(t, "alice", r.URL.Query().Get("query"))
		w.Write([]byte(`[{"accountId": "a1", "displayName": "Alice Martin", "emailAddress": "alice@example.com"}]`))
	}))

	users, err := client.SearchUsers(context.Background(), "alice")

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "a1", users[0].AccountID)
	assert.Equal(t, "Alice Martin", users[0].DisplayName)
	assert.Equal(t, "alice@example.com", users[0].Email)
}

func TestClient_ListPriorities(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/priority", r.URL.Path)
		w.Write([]byte(`[{"name": "Highest"}, {"name": "High"}, {"name": "Medium"}]`))
	}))

	priorities, err := client.ListPriorities(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Highest", "High", "Medium"}, priorities)
}

func TestClient_ListIssueTypes(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/project/SUP", r.URL.Path)
		w.Write([]byte(`{"issueTypes": [{"name": "Bug", "subtask": false}, {"name": "Sub-task", "subtask": true}, {"name": "Task", "subtask": false}]}`))
	}))

	types, err := client.ListIssueTypes(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Bug", "Task"}, types)
}
