package bookings

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iwaklele45/siperuk-admin/internal/middleware"
	"github.com/iwaklele45/siperuk-admin/internal/pkg/view"
	"github.com/iwaklele45/siperuk-admin/internal/session"
	"github.com/iwaklele45/siperuk-admin/internal/siperuk"
	"github.com/iwaklele45/siperuk-admin/internal/status"
)

// RoomLister feeds the room select of the booking form.
type RoomLister interface {
	ListRooms(ctx context.Context, token string) ([]siperuk.Room, error)
}

type Handler struct {
	service  *Service
	rooms    RoomLister
	sessions *session.Store
}

func NewHandler(service *Service, rooms RoomLister, sessions *session.Store) *Handler {
	return &Handler{service: service, rooms: rooms, sessions: sessions}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.List)
	rg.POST("/bookings", h.Create)
	rg.POST("/bookings/:id", h.Update)
	rg.POST("/bookings/:id/status", h.ChangeStatus)
	rg.POST("/bookings/:id/delete", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	list, err := h.service.List(c.Request.Context(), sess)
	if err != nil {
		if siperuk.IsUnauthorized(err) {
			middleware.UpstreamUnauthorized(c, h.sessions)
			return
		}
		view.Render(c, http.StatusBadGateway, "bookings.tmpl", gin.H{
			"Flash":         view.Flash{Err: siperuk.ErrorMessage(err, "Gagal memuat daftar booking")},
			"Rows":          []Row{},
			"Rooms":         []siperuk.Room{},
			"StatusOptions": StatusOptions,
			"Filter":        "all",
			"CanCreate":     sess.User.Role == session.RoleUser,
			"CanManage":     canManage(sess),
		})
		return
	}

	// The form still works without the room list; a failed fetch only
	// degrades the select.
	rooms, err := h.rooms.ListRooms(c.Request.Context(), sess.Token)
	if err != nil {
		if siperuk.IsUnauthorized(err) {
			middleware.UpstreamUnauthorized(c, h.sessions)
			return
		}
		rooms = nil
	}

	filter := filterKey(c.Query("filter"))
	rows := buildRows(Active(list, filter), rooms)

	view.Render(c, http.StatusOK, "bookings.tmpl", gin.H{
		"Rows":          rows,
		"Rooms":         rooms,
		"StatusOptions": StatusOptions,
		"Filter":        c.DefaultQuery("filter", "all"),
		"CanCreate":     sess.User.Role == session.RoleUser,
		"CanManage":     canManage(sess),
	})
}

func (h *Handler) Create(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var form BookingForm
	_ = c.ShouldBind(&form)

	if err := h.service.Create(c.Request.Context(), sess, form); err != nil {
		h.fail(c, err, "Gagal menyimpan booking")
		return
	}
	view.RedirectOK(c, "/bookings", "Booking berhasil dibuat")
}

func (h *Handler) Update(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var form BookingForm
	_ = c.ShouldBind(&form)

	if err := h.service.Update(c.Request.Context(), sess, c.Param("id"), form); err != nil {
		h.fail(c, err, "Gagal menyimpan booking")
		return
	}
	view.RedirectOK(c, "/bookings", "Booking berhasil diperbarui")
}

func (h *Handler) ChangeStatus(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var form StatusForm
	_ = c.ShouldBind(&form)

	if err := h.service.ChangeStatus(c.Request.Context(), sess, c.Param("id"), form.BookingStatusID); err != nil {
		h.fail(c, err, "Gagal memperbarui status")
		return
	}
	view.RedirectOK(c, "/bookings", "Status booking diperbarui")
}

func (h *Handler) Delete(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	if err := h.service.Delete(c.Request.Context(), sess, c.Param("id")); err != nil {
		h.fail(c, err, "Gagal menghapus booking")
		return
	}
	view.RedirectOK(c, "/bookings", "Booking dihapus")
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	if siperuk.IsUnauthorized(err) {
		middleware.UpstreamUnauthorized(c, h.sessions)
		return
	}
	view.RedirectErr(c, "/bookings", localMessage(err, fallback))
}

func localMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, ErrMissingFields):
		return "Room, tanggal, waktu mulai, waktu selesai, dan keperluan wajib diisi"
	case errors.Is(err, ErrInvalidTime):
		return "Format waktu tidak valid"
	case errors.Is(err, ErrTimeOrder):
		return "Waktu selesai harus lebih besar dari waktu mulai"
	case errors.Is(err, ErrCreateForbidden):
		return "Hanya pengguna dengan role user yang bisa membuat booking"
	case errors.Is(err, ErrManageForbidden):
		return "Hanya admin/staff yang boleh mengubah booking"
	case errors.Is(err, ErrUnknownStatus):
		return "Status booking tidak dikenal"
	case errors.Is(err, ErrNotFound):
		return "Booking tidak ditemukan"
	case errors.Is(err, ErrIncompleteTime):
		return "Data waktu booking tidak lengkap untuk memperbarui status"
	}
	return siperuk.ErrorMessage(err, fallback)
}

func filterKey(raw string) status.Key {
	switch raw {
	case "approved":
		return status.Approved
	case "waiting", "pending":
		return status.Waiting
	}
	return status.Unknown
}

func buildRows(list []siperuk.Booking, rooms []siperuk.Room) []Row {
	roomNames := make(map[string]string, len(rooms))
	for _, r := range rooms {
		roomNames[r.ID.String()] = r.Name
	}

	rows := make([]Row, 0, len(list))
	for _, b := range list {
		key := status.FromBooking(b)
		label := status.Label(key)
		if label == "" {
			label = b.Status
		}

		roomName := b.RoomName
		if roomName == "" {
			roomName = roomNames[b.RoomID.String()]
		}
		if roomName == "" {
			roomName = b.RoomID.String()
		}

		requester := b.Requester
		if requester == "" {
			requester = b.UserName
		}

		rows = append(rows, Row{
			Booking:   b,
			Key:       key,
			Label:     label,
			RoomName:  roomName,
			Requester: requester,
			DateLabel: dateLabel(b),
			TimeLabel: timeLabel(b),
		})
	}
	return rows
}

func dateLabel(b siperuk.Booking) string {
	if t, ok := parseWhen(b.StartTime); ok {
		return t.Local().Format("02 Jan 2006")
	}
	if t, ok := parseWhen(b.Date); ok {
		return t.Format("02 Jan 2006")
	}
	return b.Date
}

func timeLabel(b siperuk.Booking) string {
	start, okStart := parseWhen(b.StartTime)
	end, okEnd := parseWhen(b.EndTime)
	if okStart && okEnd {
		return start.Local().Format("15:04") + " - " + end.Local().Format("15:04")
	}
	return b.TimeRange
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
