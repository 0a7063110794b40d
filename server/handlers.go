package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"userdesk/auth"
	"userdesk/checker"
	"userdesk/logger"

	"github.com/labstack/echo/v4"
)

const (
	defaultLogLimit = 100
	maxLogLimit     = 500
)

func (s *Server) status(c echo.Context) error {
	status, err := checker.CheckSystem(c.Request().Context(), s.auth)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get system status: "+err.Error())
	}
	return c.JSON(http.StatusOK, status)
}

func (s *Server) register(c echo.Context) error {
	var req auth.UserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request")
	}

	u, err := s.auth.Register(c.Request().Context(), req)
	switch {
	case errors.Is(err, auth.ErrMissingField):
		return echo.NewHTTPError(http.StatusBadRequest, "Username and password are required")
	case errors.Is(err, auth.ErrUserExists):
		return echo.NewHTTPError(http.StatusBadRequest, "Username already exists")
	case errors.Is(err, auth.ErrDuplicate):
		return echo.NewHTTPError(http.StatusBadRequest, "Username or email already exists")
	case err != nil:
		return err
	}

	logger.Info("registered user %q", u.Username)
	return c.JSON(http.StatusCreated, auth.UserResponse{Username: u.Username, Email: u.Email})
}

func (s *Server) login(c echo.Context) error {
	var creds auth.Credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request")
	}

	u, token, err := s.auth.Login(c.Request().Context(), creds)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		logger.Warn("failed login for %q", creds.Username)
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid username or password")
	} else if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Expires:  time.Now().Add(s.auth.TokenTTL()),
		HttpOnly: true,
		Secure:   s.opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(http.StatusOK, auth.LoginResponse{
		Message:         "Login successful",
		Username:        u.Username,
		AccessToken:     token,
		AccessTokenType: "bearer",
	})
}

func (s *Server) logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     TokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-1 * time.Hour),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
	return c.JSON(http.StatusOK, auth.ResponseMessage{Message: "Logged out"})
}

func (s *Server) me(c echo.Context) error {
	u := currentUser(c)
	return c.JSON(http.StatusOK, map[string]string{
		"username": u.Username,
	})
}

func (s *Server) listUsers(c echo.Context) error {
	users, err := s.auth.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]auth.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, u.Response())
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) deleteUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user id")
	}

	err = s.auth.Delete(c.Request().Context(), id)
	if errors.Is(err, auth.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	} else if err != nil {
		return err
	}

	logger.Info("user %d deleted by %q", id, currentUser(c).Username)
	return c.JSON(http.StatusOK, auth.ResponseMessage{Message: "User deleted successfully"})
}

func (s *Server) logs(c echo.Context) error {
	limit := defaultLogLimit
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid limit")
		}
		limit = min(n, maxLogLimit)
	}

	entries, err := logger.GetLogs(limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Logs unavailable: "+err.Error())
	}
	return c.JSON(http.StatusOK, entries)
}
