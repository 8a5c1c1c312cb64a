package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jeltev/printbaarn/internal/logging"
	"github.com/jeltev/printbaarn/internal/service"
	"github.com/jeltev/printbaarn/internal/transport"
)

type SettingsHTTP struct {
	Svc *service.SettingsService
}

func (h *SettingsHTTP) ChangePassword(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "settings_password")

	var req transport.PasswordSettingsRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("password_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.Fail("Alle velden zijn verplicht"))
	}

	newHash, err := h.Svc.ChangePassword(ctx, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusBadRequest, transport.Fail("Alle velden zijn verplicht"))
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, transport.Fail("Huidig wachtwoord is onjuist"))
		}
		l.Error("password_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.Fail("Er ging iets mis bij het wijzigen van het wachtwoord"))
	}

	return c.JSON(http.StatusOK, transport.OKMessage(
		map[string]string{"newHash": newHash},
		"Wachtwoord succesvol gewijzigd. Herstart de server om de wijziging toe te passen.",
	))
}

func (h *SettingsHTTP) UpdateEmail(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "settings_email")

	var req transport.EmailSettingsRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("email_settings_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.Fail("Alle velden zijn verplicht"))
	}

	if err := h.Svc.UpdateEmailSettings(ctx, req); err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusBadRequest, transport.Fail("Alle velden zijn verplicht"))
		}
		l.Error("email_settings_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.Fail("Er ging iets mis bij het opslaan van de email instellingen"))
	}

	return c.JSON(http.StatusOK, transport.OKMessage(nil,
		"Email instellingen succesvol opgeslagen. Herstart de server om de wijziging toe te passen.",
	))
}
