package tracker

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are the input formats accepted for exercise dates and log
// bounds; they cover the formats the checker and clients actually send.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"Mon Jan 02 2006",
	"Jan 2 2006",
	"January 2, 2006",
	"01/02/2006",
}

// parseDate parses a date string in UTC, trying each accepted layout.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

// parseDateOrNow returns the current UTC time for an empty input, matching
// the default-to-now behavior on exercise creation.
func parseDateOrNow(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Now().UTC(), nil
	}
	return parseDate(s)
}

// formatDate renders a date the way JS Date.toDateString does,
// e.g. "Sun Jan 15 2023". Both the add-exercise and log responses use it,
// so equal dates always render identically regardless of input format.
func formatDate(t time.Time) string {
	return t.UTC().Format("Mon Jan 02 2006")
}
