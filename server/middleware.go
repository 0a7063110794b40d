package server

import (
	"errors"
	"strings"

	"userdesk/auth"

	"github.com/labstack/echo/v4"
)

const (
	TokenCookie = "token"
	userKey     = "user"
)

// RequireAuth accepts a bearer token or the token cookie set at login and
// stores the resolved *auth.User on the context.
func RequireAuth(svc *auth.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u, err := svc.Authenticate(c.Request().Context(), tokenFrom(c))
			if errors.Is(err, auth.ErrInvalidToken) {
				return unauthorized(c)
			} else if err != nil {
				return err
			}

			c.Set(userKey, u)
			return next(c)
		}
	}
}

func tokenFrom(c echo.Context) string {
	if h := c.Request().Header.Get(echo.HeaderAuthorization); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}

func currentUser(c echo.Context) *auth.User {
	u, _ := c.Get(userKey).(*auth.User)
	return u
}
