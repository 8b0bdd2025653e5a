package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lorrc/jira-gateway-backend/internal/core/domain"
)

func TestNormalizeAssignee(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", domain.UnassignedLabel},
		{"whitespace only", "   ", domain.UnassignedLabel},
		{"sentinel", "Unassigned", domain.UnassignedLabel},
		{"sentinel uppercase", "UNASSIGNED", domain.UnassignedLabel},
		{"french variant", "non assigné", domain.UnassignedLabel},
		{"french canonical", "Non assigné", domain.UnassignedLabel},
		{"hyphenated ascii variant", "non-assigne", domain.UnassignedLabel},
		{"hyphenated accented variant", "Non-Assigné", domain.UnassignedLabel},
		{"named assignee untouched", "Alice Martin", "Alice Martin"},
		{"named assignee keeps case", "aLiCe", "aLiCe"},
		{"named assignee trimmed", "  Bob  ", "Bob"},
		{"substring of synonym is a real name", "Unassigned2", "Unassigned2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NormalizeAssignee(tt.raw))
		})
	}
}

func TestNormalizeAssignee_Idempotent(t *testing.T) {
	inputs := []string{"", "Unassigned", "non assigné", "Alice Martin", "  Bob  "}

	for _, raw := range inputs {
		once := domain.NormalizeAssignee(raw)
		assert.Equal(t, once, domain.NormalizeAssignee(once), "input %q", raw)
	}
}

func TestIsUnassigned(t *testing.T) {
	assert.True(t, domain.IsUnassigned(domain.UnassignedLabel))
	assert.False(t, domain.IsUnassigned("Alice Martin"))
	// IsUnassigned expects normalized input; raw spellings are not its job.
	assert.False(t, domain.IsUnassigned("Unassigned"))
}
