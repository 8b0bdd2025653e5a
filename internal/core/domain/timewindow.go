package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/lorrc/jira-gateway-backend/internal/core/errors"
)

// Recognized time-window tokens for the analytics endpoint.
const (
	WindowAll   = "all"
	WindowWeek  = "week"
	WindowMonth = "month"
)

// WindowPolicy decides what happens when a time-window token is not one of
// the recognized values.
type WindowPolicy int

const (
	// WindowLenient treats unknown tokens as WindowAll. This is the
	// policy the HTTP layer uses: filters fail open, never reject input.
	WindowLenient WindowPolicy = iota
	// WindowStrict rejects unknown tokens with an error.
	WindowStrict
)

// ResolveCutoff maps a time-window token to an absolute cutoff instant
// relative to now (UTC). WindowAll yields a nil cutoff, meaning no recency
// filtering at all.
func ResolveCutoff(token string, now time.Time, policy WindowPolicy) (*time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case WindowWeek:
		cutoff := now.UTC().AddDate(0, 0, -7)
		return &cutoff, nil
	case WindowMonth:
		cutoff := now.UTC().AddDate(0, 0, -30)
		return &cutoff, nil
	case WindowAll, "":
		return nil, nil
	default:
		if policy == WindowStrict {
			return nil, fmt.Errorf("%w: unknown time window %q", apperrors.ErrBadRequest, token)
		}
		return nil, nil
	}
}
