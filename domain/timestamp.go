package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// UnknownDate is shown for missing or unparseable timestamps.
const UnknownDate = "Unknown date"

// ISOLayout is the millisecond UTC form used for live comments.
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

type timestampParser func(string) (time.Time, error)

func layout(l string) timestampParser {
	return func(s string) (time.Time, error) {
		return time.ParseInLocation(l, s, time.Local)
	}
}

// timestampParsers is tried in order; the first success wins. Spreadsheet
// exports mostly use the first layout, live comments use RFC 3339.
var timestampParsers = []timestampParser{
	layout("1/2/2006 15:04:05"),
	layout(ISOLayout),
	layout("2006-01-02 15:04:05"),
	layout("01/02/2006 15:04:05"),
	func(s string) (time.Time, error) { return dateparse.ParseLocal(s) },
}

// ParseTimestamp parses a loosely formatted timestamp.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, parse := range timestampParsers {
		if t, err := parse(s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// RelativeAge renders ts as a coarse age relative to now.
func RelativeAge(ts string, now time.Time) string {
	t, ok := ParseTimestamp(ts)
	if !ok {
		return UnknownDate
	}

	d := now.Sub(t)
	switch {
	case d < time.Hour:
		return fmt.Sprintf("%dmin ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	}

	if months := monthsBetween(t, now); months < 12 {
		return fmt.Sprintf("%d months ago", months)
	}
	return "More than 1 year ago"
}

// monthsBetween counts whole calendar months from earlier to later.
func monthsBetween(earlier, later time.Time) int {
	earlier = earlier.In(later.Location())
	months := (later.Year()-earlier.Year())*12 + int(later.Month()-earlier.Month())
	anniversary := earlier.AddDate(0, months, 0)
	if anniversary.After(later) {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
