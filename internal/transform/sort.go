package transform

import (
	"sort"
	"time"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006-01",
}

// ParseDate parses the timestamp formats stored by this module (RFC3339
// plus the date-only forms used by press items). Unparsable input yields
// the zero time and ok=false.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortByEffectiveDate stable-sorts records newest-first by their primary
// date, falling back to the secondary date when the primary is empty. An
// unparsable date sorts as the oldest possible value; the function never
// panics on bad input.
//
// This keeps ordering local so that a filtered Firestore query does not
// require a composite filter+order index.
func SortByEffectiveDate[T any](records []T, dates func(T) (primary, fallback string)) {
	sort.SliceStable(records, func(i, j int) bool {
		return effectiveDate(dates(records[i])).After(effectiveDate(dates(records[j])))
	})
}

func effectiveDate(primary, fallback string) time.Time {
	s := primary
	if s == "" {
		s = fallback
	}
	t, _ := ParseDate(s)
	return t
}
