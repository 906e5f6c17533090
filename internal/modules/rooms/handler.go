package rooms

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/iwaklele45/siperuk-admin/internal/middleware"
	"github.com/iwaklele45/siperuk-admin/internal/pkg/validator"
	"github.com/iwaklele45/siperuk-admin/internal/pkg/view"
	"github.com/iwaklele45/siperuk-admin/internal/session"
	"github.com/iwaklele45/siperuk-admin/internal/siperuk"
)

type APIClient interface {
	ListRooms(ctx context.Context, token string) ([]siperuk.Room, error)
	CreateRoom(ctx context.Context, token string, payload siperuk.RoomPayload) (*siperuk.Room, error)
	UpdateRoom(ctx context.Context, token, id string, payload siperuk.RoomPayload) (*siperuk.Room, error)
	DeleteRoom(ctx context.Context, token, id string) error
}

type Handler struct {
	api      APIClient
	sessions *session.Store
}

func NewHandler(api APIClient, sessions *session.Store) *Handler {
	return &Handler{api: api, sessions: sessions}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms", h.List)
	rg.POST("/rooms", h.Create)
	rg.POST("/rooms/:id", h.Update)
	rg.POST("/rooms/:id/delete", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	rooms, err := h.api.ListRooms(c.Request.Context(), sess.Token)
	if err != nil {
		if siperuk.IsUnauthorized(err) {
			middleware.UpstreamUnauthorized(c, h.sessions)
			return
		}
		view.Render(c, http.StatusBadGateway, "rooms.tmpl", gin.H{
			"Flash":     view.Flash{Err: siperuk.ErrorMessage(err, "Gagal memuat daftar ruangan")},
			"Rooms":     []siperuk.Room{},
			"CanManage": canManage(sess),
		})
		return
	}

	view.Render(c, http.StatusOK, "rooms.tmpl", gin.H{
		"Rooms":     rooms,
		"CanManage": canManage(sess),
	})
}

func (h *Handler) Create(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if !canManage(sess) {
		view.RedirectErr(c, "/rooms", "Hanya admin/staff yang boleh mengelola ruangan")
		return
	}

	form, msg := h.bindForm(c)
	if msg != "" {
		view.RedirectErr(c, "/rooms", msg)
		return
	}

	if _, err := h.api.CreateRoom(c.Request.Context(), sess.Token, form.payload()); err != nil {
		h.fail(c, err, "Gagal menambahkan ruangan")
		return
	}
	view.RedirectOK(c, "/rooms", "Ruangan berhasil ditambahkan")
}

func (h *Handler) Update(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if !canManage(sess) {
		view.RedirectErr(c, "/rooms", "Hanya admin/staff yang boleh mengelola ruangan")
		return
	}

	form, msg := h.bindForm(c)
	if msg != "" {
		view.RedirectErr(c, "/rooms", msg)
		return
	}

	if _, err := h.api.UpdateRoom(c.Request.Context(), sess.Token, c.Param("id"), form.payload()); err != nil {
		h.fail(c, err, "Gagal memperbarui ruangan")
		return
	}
	view.RedirectOK(c, "/rooms", "Ruangan berhasil diperbarui")
}

func (h *Handler) Delete(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if !canManage(sess) {
		view.RedirectErr(c, "/rooms", "Hanya admin/staff yang boleh mengelola ruangan")
		return
	}

	if err := h.api.DeleteRoom(c.Request.Context(), sess.Token, c.Param("id")); err != nil {
		h.fail(c, err, "Gagal menghapus ruangan")
		return
	}
	view.RedirectOK(c, "/rooms", "Ruangan dihapus")
}

// bindForm binds and validates the room form, returning a user-facing
// message on local validation failure. Local failures never reach the
// network.
func (h *Handler) bindForm(c *gin.Context) (RoomForm, string) {
	var form RoomForm
	_ = c.ShouldBind(&form)

	fields := validator.Validate(form)
	switch {
	case validator.Failed(fields, "Name", "required"),
		validator.Failed(fields, "Location", "required"):
		return form, "Nama dan lokasi ruangan wajib diisi"
	case validator.Failed(fields, "Capacity", "required"),
		validator.Failed(fields, "Capacity", "gt"):
		return form, "Kapasitas harus berupa angka lebih dari 0"
	case validator.Failed(fields, "Status", "oneof"):
		return form, "Status ruangan tidak valid"
	}
	return form, ""
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	if siperuk.IsUnauthorized(err) {
		middleware.UpstreamUnauthorized(c, h.sessions)
		return
	}
	view.RedirectErr(c, "/rooms", siperuk.ErrorMessage(err, fallback))
}

func canManage(sess *session.Session) bool {
	return sess.User.Role == session.RoleAdmin || sess.User.Role == session.RoleStaff
}

// splitFeatures turns the comma-separated features field into tags.
func splitFeatures(raw string) []string {
	out := []string{}
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
