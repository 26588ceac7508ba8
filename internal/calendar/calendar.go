package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the storage form of a calendar date. It sorts lexicographically in
// chronological order, so stores can range-filter on the raw string.
const Layout = "2006-01-02"

// LongLayout renders a date the way the log and exercise responses show it,
// e.g. "Sun Jan 01 2023".
const LongLayout = "Mon Jan 02 2006"

// Epoch is the default lower bound of a log query.
const Epoch = "1970-01-01"

// inputLayouts are the accepted input forms, tried in order.
var inputLayouts = []string{
	Layout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	LongLayout,
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// Normalize parses s in any accepted layout and returns it as YYYY-MM-DD.
func Normalize(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty date")
	}
	for _, layout := range inputLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.Format(Layout), nil
		}
	}
	return "", fmt.Errorf("unrecognized date %q, expected YYYY-MM-DD", s)
}

// Today returns the UTC calendar date of now in storage form.
func Today(now time.Time) string {
	return now.UTC().Format(Layout)
}

// Long renders a stored YYYY-MM-DD date in long form. Values that are not in
// storage form are returned unchanged.
func Long(date string) string {
	t, err := time.Parse(Layout, date)
	if err != nil {
		return date
	}
	return t.Format(LongLayout)
}

// InRange reports whether date lies in the inclusive range [from, to]. All
// three must be in storage form.
func InRange(date, from, to string) bool {
	return date >= from && date <= to
}
