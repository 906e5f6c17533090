package users

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iwaklele45/siperuk-admin/internal/middleware"
	"github.com/iwaklele45/siperuk-admin/internal/pkg/view"
	"github.com/iwaklele45/siperuk-admin/internal/session"
	"github.com/iwaklele45/siperuk-admin/internal/siperuk"
)

type APIClient interface {
	ListUsers(ctx context.Context, token string) ([]siperuk.User, error)
	CreateUser(ctx context.Context, token string, payload siperuk.CreateUserPayload) (*siperuk.User, error)
	UpdateUser(ctx context.Context, token, id string, payload siperuk.UpdateUserPayload) (*siperuk.User, error)
	DeleteUser(ctx context.Context, token, id string) error
}

type Handler struct {
	api      APIClient
	sessions *session.Store
}

func NewHandler(api APIClient, sessions *session.Store) *Handler {
	return &Handler{api: api, sessions: sessions}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.List)
	rg.POST("/users", h.Create)
	rg.POST("/users/:id", h.Update)
	rg.POST("/users/:id/delete", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	list, err := h.api.ListUsers(c.Request.Context(), sess.Token)
	if err != nil {
		if siperuk.IsUnauthorized(err) {
			middleware.UpstreamUnauthorized(c, h.sessions)
			return
		}
		view.Render(c, http.StatusBadGateway, "users.tmpl", gin.H{
			"Flash": view.Flash{Err: siperuk.ErrorMessage(err, "Gagal memuat daftar pengguna")},
			"Users": []siperuk.User{},
		})
		return
	}

	view.Render(c, http.StatusOK, "users.tmpl", gin.H{
		"Users": Visible(list, sess.User.Role),
	})
}

func (h *Handler) Create(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var form UserForm
	_ = c.ShouldBind(&form)

	if msg := form.validateCreate(); msg != "" {
		view.RedirectErr(c, "/users", msg)
		return
	}

	_, err := h.api.CreateUser(c.Request.Context(), sess.Token, siperuk.CreateUserPayload{
		FullName: form.FullName,
		Email:    form.Email,
		Role:     form.Role,
		Password: form.Password,
	})
	if err != nil {
		h.fail(c, err, "Gagal menambahkan pengguna")
		return
	}
	view.RedirectOK(c, "/users", "Pengguna berhasil ditambahkan")
}

func (h *Handler) Update(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var form UserForm
	_ = c.ShouldBind(&form)

	if msg := form.validateUpdate(); msg != "" {
		view.RedirectErr(c, "/users", msg)
		return
	}

	// An empty password means keep the current one; the payload omits the
	// field entirely in that case.
	_, err := h.api.UpdateUser(c.Request.Context(), sess.Token, c.Param("id"), siperuk.UpdateUserPayload{
		FullName: form.FullName,
		Email:    form.Email,
		Role:     form.Role,
		Password: form.Password,
	})
	if err != nil {
		h.fail(c, err, "Gagal memperbarui pengguna")
		return
	}
	view.RedirectOK(c, "/users", "Pengguna berhasil diperbarui")
}

func (h *Handler) Delete(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	if err := h.api.DeleteUser(c.Request.Context(), sess.Token, c.Param("id")); err != nil {
		h.fail(c, err, "Gagal menghapus pengguna")
		return
	}
	view.RedirectOK(c, "/users", "Pengguna dihapus")
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	if siperuk.IsUnauthorized(err) {
		middleware.UpstreamUnauthorized(c, h.sessions)
		return
	}
	view.RedirectErr(c, "/users", siperuk.ErrorMessage(err, fallback))
}

// Visible filters the account list for the viewer: admin accounts are
// never listed, and staff viewers also do not see other staff.
func Visible(list []siperuk.User, viewerRole string) []siperuk.User {
	out := make([]siperuk.User, 0, len(list))
	for _, u := range list {
		if u.Role == session.RoleAdmin {
			continue
		}
		if viewerRole == session.RoleStaff && u.Role == session.RoleStaff {
			continue
		}
		out = append(out, u)
	}
	return out
}
