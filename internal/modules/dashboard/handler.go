package dashboard

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iwaklele45/siperuk-admin/internal/middleware"
	"github.com/iwaklele45/siperuk-admin/internal/pkg/view"
	"github.com/iwaklele45/siperuk-admin/internal/session"
	"github.com/iwaklele45/siperuk-admin/internal/siperuk"
	"github.com/iwaklele45/siperuk-admin/internal/status"
)

type APIClient interface {
	ListRooms(ctx context.Context, token string) ([]siperuk.Room, error)
	ListBookings(ctx context.Context, token string) ([]siperuk.Booking, error)
}

// Stats is the summary block: live counts, grouped by canonical status.
type Stats struct {
	TotalRooms     int
	AvailableRooms int
	TotalBookings  int
	Waiting        int
	Approved       int
	Rejected       int
	Finished       int
}

type Handler struct {
	api      APIClient
	sessions *session.Store
}

func NewHandler(api APIClient, sessions *session.Store) *Handler {
	return &Handler{api: api, sessions: sessions}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Show)
}

func (h *Handler) Show(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	rooms, err := h.api.ListRooms(c.Request.Context(), sess.Token)
	if err != nil {
		h.fail(c, err, "Gagal memuat data ruangan")
		return
	}
	bookings, err := h.api.ListBookings(c.Request.Context(), sess.Token)
	if err != nil {
		h.fail(c, err, "Gagal memuat data booking")
		return
	}

	view.Render(c, http.StatusOK, "dashboard.tmpl", gin.H{
		"Stats": Summarize(rooms, bookings),
	})
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	if siperuk.IsUnauthorized(err) {
		middleware.UpstreamUnauthorized(c, h.sessions)
		return
	}
	view.Render(c, http.StatusBadGateway, "dashboard.tmpl", gin.H{
		"Flash": view.Flash{Err: siperuk.ErrorMessage(err, fallback)},
		"Stats": Stats{},
	})
}

func Summarize(rooms []siperuk.Room, bookings []siperuk.Booking) Stats {
	stats := Stats{
		TotalRooms:    len(rooms),
		TotalBookings: len(bookings),
	}
	for _, r := range rooms {
		if r.Status == "available" {
			stats.AvailableRooms++
		}
	}
	for _, b := range bookings {
		switch status.FromBooking(b) {
		case status.Waiting:
			stats.Waiting++
		case status.Approved:
			stats.Approved++
		case status.Rejected:
			stats.Rejected++
		case status.Finish:
			stats.Finished++
		}
	}
	return stats
}
