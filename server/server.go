package server

import (
	"net/http"

	"userdesk/auth"
	"userdesk/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Options struct {
	// SecureCookies sets Secure on the token cookie.
	SecureCookies bool
}

type Server struct {
	auth *auth.Service
	opts Options
}

// New builds the echo instance serving the JSON API under /api and, when
// appHandler is set, the go-app shell for every other path.
func New(svc *auth.Service, appHandler http.Handler, opts Options) *echo.Echo {
	s := &Server{auth: svc, opts: opts}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Output: logger.Std().Out,
	}))
	e.Use(middleware.Recover())

	api := e.Group("/api")
	api.GET("/status", s.status)

	api.POST("/auth/register", s.register)
	api.POST("/auth/login", s.login)
	api.POST("/auth/logout", s.logout)

	protect := RequireAuth(svc)
	api.GET("/auth/me", s.me, protect)
	api.GET("/users", s.listUsers, protect)
	api.DELETE("/users/:id", s.deleteUser, protect)
	api.GET("/logs", s.logs, protect)

	api.Any("/*", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "Not Found")
	})

	if appHandler != nil {
		e.Any("/*", echo.WrapHandler(appHandler))
	}

	return e
}
