package histories

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/iwaklele45/siperuk-admin/internal/middleware"
	"github.com/iwaklele45/siperuk-admin/internal/pkg/view"
	"github.com/iwaklele45/siperuk-admin/internal/session"
	"github.com/iwaklele45/siperuk-admin/internal/siperuk"
	"github.com/iwaklele45/siperuk-admin/internal/status"
)

type APIClient interface {
	ListHistory(ctx context.Context, token string) ([]siperuk.HistoryEntry, error)
	ListHistoryForBooking(ctx context.Context, token, bookingID string) ([]siperuk.HistoryEntry, error)
}

// Row is one reduced history entry prepared for the page.
type Row struct {
	Entry     siperuk.HistoryEntry
	Key       status.Key
	Label     string
	Note      string
	WhenLabel string
	RoomName  string
	UserName  string
	TimeLabel string
	Purpose   string
}

type Handler struct {
	api      APIClient
	sessions *session.Store
}

func NewHandler(api APIClient, sessions *session.Store) *Handler {
	return &Handler{api: api, sessions: sessions}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/histories", h.List)
}

func (h *Handler) List(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	bookingID := strings.TrimSpace(c.Query("booking_id"))

	var (
		entries []siperuk.HistoryEntry
		err     error
	)
	if bookingID != "" {
		entries, err = h.api.ListHistoryForBooking(c.Request.Context(), sess.Token, bookingID)
	} else {
		entries, err = h.api.ListHistory(c.Request.Context(), sess.Token)
	}
	if err != nil {
		if siperuk.IsUnauthorized(err) {
			middleware.UpstreamUnauthorized(c, h.sessions)
			return
		}
		view.Render(c, http.StatusBadGateway, "histories.tmpl", gin.H{
			"Flash":     view.Flash{Err: siperuk.ErrorMessage(err, "Gagal memuat riwayat status")},
			"Rows":      []Row{},
			"BookingID": bookingID,
			"Filter":    "all",
		})
		return
	}

	filter := filterKey(c.Query("filter"))
	reduced := FilterArchival(LatestPerBooking(entries), filter)

	rows := make([]Row, 0, len(reduced))
	for _, e := range reduced {
		rows = append(rows, buildRow(e))
	}

	view.Render(c, http.StatusOK, "histories.tmpl", gin.H{
		"Rows":      rows,
		"BookingID": bookingID,
		"Filter":    c.DefaultQuery("filter", "all"),
	})
}

func filterKey(raw string) status.Key {
	switch raw {
	case "finish":
		return status.Finish
	case "rejected":
		return status.Rejected
	}
	return status.Unknown
}

func buildRow(e siperuk.HistoryEntry) Row {
	key := status.FromHistory(e)
	label := status.Label(key)
	if label == "" && e.BookingStatus != nil {
		label = e.BookingStatus.Name
	}

	note := e.Note
	if note == "" {
		note = e.Notes
	}

	row := Row{
		Entry:     e,
		Key:       key,
		Label:     label,
		Note:      note,
		WhenLabel: whenLabel(e),
	}
	if b := e.Booking; b != nil {
		row.RoomName = b.RoomName
		row.UserName = b.UserName
		row.Purpose = b.Purpose
		row.TimeLabel = timeLabel(b.StartTime, b.EndTime)
	}
	return row
}

func whenLabel(e siperuk.HistoryEntry) string {
	if t := entryTime(e); !t.IsZero() {
		return t.Local().Format("02 Jan 2006 15:04")
	}
	return "-"
}

func timeLabel(startISO, endISO string) string {
	start, okStart := parseWhen(startISO)
	if !okStart {
		return "-"
	}
	out := start.Local().Format("02 Jan 2006 15:04")
	if end, ok := parseWhen(endISO); ok {
		out += " - " + end.Local().Format("15:04")
	}
	return out
}
