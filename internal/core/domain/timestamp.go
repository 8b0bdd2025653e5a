package domain

import "time"

// timestampLayouts covers the timestamp shapes the tracker emits: RFC 3339
// with or without fractional seconds, the Jira REST variant with a
// colon-less offset ("2024-01-02T10:04:05.000+0100"), and offset-less
// values. A timestamp without an offset is taken to already be UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999-0700",
	"2006-01-02T15:04:05.999",
	"2006-01-02",
}

// ParseTimestamp parses a tracker-supplied timestamp string. The second
// return value is false when the string is empty or matches none of the
// known layouts; callers treat that as "this statistic is unavailable",
// never as an error.
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
