package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jeltev/printbaarn/internal/auth"
	"github.com/jeltev/printbaarn/internal/logging"
	"github.com/jeltev/printbaarn/internal/service"
	"github.com/jeltev/printbaarn/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
	// SecureCookies mirrors APP_ENV=production; local dev has no TLS.
	SecureCookies bool
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, transport.Fail("Gebruikersnaam en wachtwoord zijn verplicht"))
	}
	if req.Username == "" || req.Password == "" {
		l.Warn("login_error", "status", 400, "reason", "missing fields")
		return c.JSON(http.StatusBadRequest, transport.Fail("Gebruikersnaam en wachtwoord zijn verplicht"))
	}

	token, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusUnauthorized, transport.Fail("Ongeldige inloggegevens"))
		}
		l.Error("login_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.Fail("Server error"))
	}

	c.SetCookie(auth.SessionCookie(token, h.SecureCookies))
	return c.JSON(http.StatusOK, transport.OKMessage(nil, "Succesvol ingelogd"))
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	c.SetCookie(auth.ExpiredCookie(h.SecureCookies))
	return c.JSON(http.StatusOK, transport.OKMessage(nil, "Succesvol uitgelogd"))
}
