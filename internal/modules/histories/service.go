package histories

import (
	"sort"
	"time"

	"github.com/iwaklele45/siperuk-admin/internal/siperuk"
	"github.com/iwaklele45/siperuk-admin/internal/status"
)

// LatestPerBooking collapses an unordered history list into one row per
// booking: the entry with the greatest timestamp, ties resolved by first
// occurrence after a stable descending sort. Output order follows first
// appearance of each booking in the sorted list. Pure fold, no I/O.
func LatestPerBooking(entries []siperuk.HistoryEntry) []siperuk.HistoryEntry {
	sorted := make([]siperuk.HistoryEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return entryTime(sorted[i]).After(entryTime(sorted[j]))
	})

	seen := make(map[string]bool, len(sorted))
	out := make([]siperuk.HistoryEntry, 0, len(sorted))
	for _, e := range sorted {
		key := e.BookingID.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out
}

// entryTime is the reducer's sort key: changedAt when present, else
// createdAt, else epoch zero.
func entryTime(e siperuk.HistoryEntry) time.Time {
	if t, ok := parseWhen(e.ChangedAt); ok {
		return t
	}
	if t, ok := parseWhen(e.CreatedAt); ok {
		return t
	}
	return time.Time{}
}

func parseWhen(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FilterArchival keeps only the archival statuses (finish, rejected) and
// applies the optional sub-filter. This mirrors the bookings page, which
// hides exactly these entries from its active list.
func FilterArchival(entries []siperuk.HistoryEntry, filter status.Key) []siperuk.HistoryEntry {
	out := make([]siperuk.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		key := status.FromHistory(e)
		if !status.Archived(key) {
			continue
		}
		if filter != status.Unknown && key != filter {
			continue
		}
		out = append(out, e)
	}
	return out
}
