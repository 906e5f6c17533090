// Package view carries the shared rendering helpers for the server-side
// pages. Mutations follow post/redirect/get; one-shot messages travel in
// the ok/err query parameters of the redirect target.
package view

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/iwaklele45/siperuk-admin/internal/middleware"
)

type Flash struct {
	OK  string
	Err string
}

func ReadFlash(c *gin.Context) Flash {
	return Flash{OK: c.Query("ok"), Err: c.Query("err")}
}

// Render renders a page template with the session and flash fields every
// layout partial expects.
func Render(c *gin.Context, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = ReadFlash(c)
	}
	if _, ok := data["Session"]; !ok {
		data["Session"] = middleware.CurrentSession(c)
	}
	c.HTML(code, name, data)
}

// RedirectOK finishes a successful mutation.
func RedirectOK(c *gin.Context, path, msg string) {
	c.Redirect(http.StatusFound, path+"?ok="+url.QueryEscape(msg))
}

// RedirectErr finishes a failed mutation with one human-readable message.
func RedirectErr(c *gin.Context, path, msg string) {
	c.Redirect(http.StatusFound, path+"?err="+url.QueryEscape(msg))
}
