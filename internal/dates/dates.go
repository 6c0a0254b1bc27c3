// Package dates normalizes loosely formatted calendar-date input.
package dates

import (
	"errors"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ErrInvalidDate is returned when a supplied date string cannot be parsed.
var ErrInvalidDate = errors.New("invalid date")

// DisplayLayout renders a date the way the API exposes it: weekday, month,
// zero-padded day, year. Time-of-day is never shown to callers.
const DisplayLayout = "Mon Jan 02 2006"

// fallbackLayouts cover weekday-prefixed date-only strings that the generic
// parser does not recognize on its own.
var fallbackLayouts = []string{
	"Mon Jan 02 2006",
	"Mon Jan 2 2006",
	"Monday Jan 02 2006",
	"Monday January 2 2006",
}

// Normalize parses an optional date-like string into a point in time.
// An empty input means "now". A present but unparseable input returns
// ErrInvalidDate, which callers must treat differently from absence.
func Normalize(input string) (time.Time, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return time.Now(), nil
	}

	if parsed, err := dateparse.ParseAny(trimmed); err == nil {
		return parsed, nil
	}

	for _, layout := range fallbackLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, ErrInvalidDate
}

// Format renders a time as a date-only display string.
func Format(t time.Time) string {
	return t.Format(DisplayLayout)
}
