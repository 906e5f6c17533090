package auth

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/iwaklele45/siperuk-admin/internal/pkg/view"
	"github.com/iwaklele45/siperuk-admin/internal/session"
	"github.com/iwaklele45/siperuk-admin/internal/siperuk"
)

// APIClient is the slice of the upstream client the auth pages need.
type APIClient interface {
	Login(ctx context.Context, email, password string) (*siperuk.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type Handler struct {
	api      APIClient
	sessions *session.Store
}

func NewHandler(api APIClient, sessions *session.Store) *Handler {
	return &Handler{api: api, sessions: sessions}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
}

func (h *Handler) LoginPage(c *gin.Context) {
	if h.sessions.Current(c) != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	view.Render(c, http.StatusOK, "login.tmpl", gin.H{
		"Next":  c.Query("next"),
		"Email": "",
	})
}

func (h *Handler) Login(c *gin.Context) {
	var form LoginForm
	_ = c.ShouldBind(&form)

	if form.Email == "" || form.Password == "" {
		h.renderLoginError(c, http.StatusBadRequest, form, "Email dan kata sandi wajib diisi")
		return
	}

	resp, err := h.api.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		// A 401 here is a wrong password, not a stale session: render the
		// form again instead of the global teardown redirect, otherwise the
		// login page would loop onto itself.
		if siperuk.IsUnauthorized(err) {
			h.sessions.Clear(c)
			h.renderLoginError(c, http.StatusUnauthorized, form, "Email atau kata sandi salah")
			return
		}
		h.renderLoginError(c, http.StatusBadGateway, form,
			siperuk.ErrorMessage(err, "Login gagal: permintaan tidak valid, periksa input anda"))
		return
	}

	name := resp.User.FullName
	if name == "" {
		name = form.Email
	}
	sess := session.Session{
		User: session.User{
			ID:    resp.User.ID.String(),
			Name:  name,
			Email: resp.User.Email,
			Role:  resp.User.Role,
		},
		Token: resp.Token,
	}
	if err := h.sessions.Issue(c, sess); err != nil {
		h.renderLoginError(c, http.StatusInternalServerError, form, "Login gagal")
		return
	}

	c.Redirect(http.StatusFound, safeNext(form.Next))
}

func (h *Handler) Logout(c *gin.Context) {
	if sess := h.sessions.Current(c); sess != nil {
		// Local teardown proceeds no matter what the server says.
		if err := h.api.Logout(c.Request.Context(), sess.Token); err != nil {
			log.Printf("logout request failed, clearing local session anyway: %v", err)
		}
	}
	h.sessions.Clear(c)
	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) renderLoginError(c *gin.Context, code int, form LoginForm, msg string) {
	view.Render(c, code, "login.tmpl", gin.H{
		"Next":  form.Next,
		"Email": form.Email,
		"Flash": view.Flash{Err: msg},
	})
}

// safeNext keeps the post-login redirect inside the app: only local paths
// are honored, everything else falls back to the dashboard.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/dashboard"
	}
	return next
}
