package domain

import "strings"

// UnassignedLabel is the single canonical value meaning "no assignee",
// regardless of which raw spelling the tracker supplied.
const UnassignedLabel = "Non assigné"

// unassignedSynonyms are the accepted spellings of "no assignee",
// compared case-insensitively. "Unassigned" is the sentinel the listing
// fetch emits for absent assignees; the others are user-facing variants
// carried over from the legacy system.
var unassignedSynonyms = []string{
	"unassigned",
	"non assigné",
	"non-assigne",
	"non-assigné",
}

// NormalizeAssignee maps a raw assignee token to exactly one of: the
// canonical unassigned label, or the input trimmed of surrounding
// whitespace with its case preserved. It is idempotent.
func NormalizeAssignee(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return UnassignedLabel
	}
	for _, synonym := range unassignedSynonyms {
		if strings.EqualFold(trimmed, synonym) {
			return UnassignedLabel
		}
	}
	return trimmed
}

// IsUnassigned reports whether a normalized assignee value is the canonical
// unassigned label.
func IsUnassigned(assignee string) bool {
	return assignee == UnassignedLabel
}
