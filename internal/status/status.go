// Package status centralizes derivation of the canonical booking status.
// The API exposes status through three historically grown shapes (a numeric
// bookingStatusId, a string enum, and a nested status object) and views
// must never re-derive the key inline from raw fields.
package status

import (
	"strings"

	"github.com/iwaklele45/siperuk-admin/internal/siperuk"
)

type Key string

const (
	Unknown  Key = ""
	Waiting  Key = "waiting"
	Approved Key = "approved"
	Rejected Key = "rejected"
	Finish   Key = "finish"
)

// idTable is the fixed upstream mapping: 1=Waiting 2=Approved 3=Rejected 4=Finish.
var idTable = map[int]Key{
	1: Waiting,
	2: Approved,
	3: Rejected,
	4: Finish,
}

var labels = map[Key]string{
	Waiting:  "Waiting",
	Approved: "Approved",
	Rejected: "Rejected",
	Finish:   "Finish",
}

// FromID maps a numeric status id to its canonical key. Ids outside 1-4
// are unknown.
func FromID(id int) Key {
	return idTable[id]
}

// FromName maps a free-form status string to its canonical key. The enum
// has drifted over time, so synonyms are folded in: pending means waiting,
// and completed/complete/finished all mean finish.
func FromName(name string) Key {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "waiting", "pending":
		return Waiting
	case "approved":
		return Approved
	case "rejected":
		return Rejected
	case "finish", "finished", "complete", "completed":
		return Finish
	}
	return Unknown
}

// Resolve derives the canonical key from a numeric id and a string
// fallback. A known id always wins, even when the string disagrees: the id
// is the newer representation and the string may be stale. Keep this
// precedence.
func Resolve(id int, name string) Key {
	if k, ok := idTable[id]; ok {
		return k
	}
	return FromName(name)
}

// FromBooking derives the canonical key of a booking record.
func FromBooking(b siperuk.Booking) Key {
	return Resolve(b.BookingStatusID.Int(), b.Status)
}

// FromHistory derives the canonical key of a history entry, which carries
// the id under bookingStatusId or statusId and the name inside the nested
// status object.
func FromHistory(h siperuk.HistoryEntry) Key {
	id := h.BookingStatusID.Int()
	if id == 0 {
		id = h.StatusID.Int()
	}
	name := ""
	if h.BookingStatus != nil {
		name = h.BookingStatus.Name
	}
	return Resolve(id, name)
}

// Archived reports whether the key belongs to the archival views: finished
// and rejected bookings leave the active list and appear in history.
func Archived(k Key) bool {
	return k == Finish || k == Rejected
}

// Label returns the display name for a canonical key, empty for unknown.
func Label(k Key) string {
	return labels[k]
}

// LabelForID returns the display name for a raw status id.
func LabelForID(id int) string {
	return labels[idTable[id]]
}
