package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/iwaklele45/siperuk-admin/internal/config"
	"github.com/iwaklele45/siperuk-admin/internal/middleware"
	"github.com/iwaklele45/siperuk-admin/internal/modules/auth"
	"github.com/iwaklele45/siperuk-admin/internal/modules/bookings"
	"github.com/iwaklele45/siperuk-admin/internal/modules/dashboard"
	"github.com/iwaklele45/siperuk-admin/internal/modules/histories"
	"github.com/iwaklele45/siperuk-admin/internal/modules/rooms"
	"github.com/iwaklele45/siperuk-admin/internal/modules/users"
	"github.com/iwaklele45/siperuk-admin/internal/pkg/view"
	"github.com/iwaklele45/siperuk-admin/internal/session"
	"github.com/iwaklele45/siperuk-admin/internal/siperuk"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	sessions := session.NewStore(cfg.SessionSecret, cfg.CookieName, cfg.SessionTTL, cfg.CookieSecure)
	api := siperuk.New(cfg.APIBaseURL)

	authHandler := auth.NewHandler(api, sessions)
	dashboardHandler := dashboard.NewHandler(api, sessions)
	roomsHandler := rooms.NewHandler(api, sessions)
	bookingsHandler := bookings.NewHandler(bookings.NewService(api), api, sessions)
	historiesHandler := histories.NewHandler(api, sessions)
	usersHandler := users.NewHandler(api, sessions)

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.LoadHTMLGlob("web/templates/*.tmpl")
	r.Static("/static", "web/static")

	r.GET("/", func(c *gin.Context) {
		if sessions.Current(c) != nil {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		c.Redirect(http.StatusFound, "/login")
	})

	authHandler.RegisterRoutes(r)

	protected := r.Group("/")
	protected.Use(middleware.RequireSession(sessions))
	{
		// Staff-level pages bounce the user role to the room list; the
		// history page is admin-only and bounces everyone else to the
		// dashboard.
		adminStaff := protected.Group("/")
		adminStaff.Use(middleware.RequireRoles("/rooms", session.RoleAdmin, session.RoleStaff))
		{
			dashboardHandler.RegisterRoutes(adminStaff)
			usersHandler.RegisterRoutes(adminStaff)
		}

		adminOnly := protected.Group("/")
		adminOnly.Use(middleware.RequireRoles("/dashboard", session.RoleAdmin))
		{
			historiesHandler.RegisterRoutes(adminOnly)
		}

		roomsHandler.RegisterRoutes(protected)
		bookingsHandler.RegisterRoutes(protected)
	}

	r.NoRoute(func(c *gin.Context) {
		view.Render(c, http.StatusNotFound, "notfound.tmpl", nil)
	})

	log.Printf("siperuk admin listening on %s (upstream %s)", cfg.ListenAddr, cfg.APIBaseURL)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
