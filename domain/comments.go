package domain

import (
	"sort"
	"time"
)

// SortCommentsNewestFirst orders comments by timestamp, most recent first.
// Comments with unparseable timestamps go last, keeping their relative order.
func SortCommentsNewestFirst(comments []Comment) {
	parsed := make(map[string]time.Time, len(comments))
	valid := make(map[string]bool, len(comments))
	for _, c := range comments {
		t, ok := ParseTimestamp(c.Timestamp)
		parsed[c.Timestamp] = t
		valid[c.Timestamp] = ok
	}

	sort.SliceStable(comments, func(i, j int) bool {
		a, b := comments[i].Timestamp, comments[j].Timestamp
		switch {
		case valid[a] && valid[b]:
			return parsed[a].After(parsed[b])
		default:
			return valid[a] && !valid[b]
		}
	})
}
