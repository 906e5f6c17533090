package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/iwaklele45/siperuk-admin/internal/session"
)

const sessionKey = "session"

// RequireSession gates protected pages. The cookie restore is synchronous,
// so by the time a handler runs the session state is fully resolved: either
// the context carries a session or the browser was already redirected to
// the login page with the originally requested path preserved.
func RequireSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := store.Current(c)
		if sess == nil {
			next := c.Request.URL.Path
			if q := c.Request.URL.RawQuery; q != "" {
				next += "?" + q
			}
			c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(next))
			c.Abort()
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// CurrentSession returns the session placed on the context by
// RequireSession, nil on public routes.
func CurrentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, ok := v.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}

// RequireRoles redirects role-inappropriate sessions to the given fallback
// page instead of rendering an error: the dashboard always lands the user
// somewhere they are allowed to be. Must run after RequireSession.
func RequireRoles(fallback string, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		for _, r := range roles {
			if sess.User.Role == r {
				c.Next()
				return
			}
		}

		c.Redirect(http.StatusFound, fallback)
		c.Abort()
	}
}

// UpstreamUnauthorized handles a 401 from any upstream call: the stored
// session is stale or revoked, so it is cleared and the browser is sent to
// the login page. Requests already on the login page only clear the cookie,
// avoiding a redirect loop.
func UpstreamUnauthorized(c *gin.Context, store *session.Store) {
	store.Clear(c)
	if c.Request.URL.Path == "/login" {
		return
	}
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}
