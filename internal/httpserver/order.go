package httpserver

import (
	"context"
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"

	"github.com/jeltev/printbaarn/internal/logging"
	"github.com/jeltev/printbaarn/internal/transport"
)

// MailSender is satisfied by email.Sender; tests plug in a fake.
type MailSender interface {
	SendOrderEmail(ctx context.Context, order transport.OrderRequest) bool
	SendContactEmail(ctx context.Context, req transport.ContactRequest) bool
}

type OrderHTTP struct {
	Mail MailSender
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func (h *OrderHTTP) SubmitOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order_submit")

	var req transport.OrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("order_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.Fail("Vul alle verplichte velden in"))
	}

	if req.Name == "" || req.Address == "" || req.City == "" || req.ContactValue == "" || len(req.Products) == 0 {
		l.Warn("order_error", "status", 400, "reason", "missing fields")
		return c.JSON(http.StatusBadRequest, transport.Fail("Vul alle verplichte velden in"))
	}

	if !h.Mail.SendOrderEmail(ctx, req) {
		l.Error("order_error", "status", 500, "reason", "mail delivery failed")
		return c.JSON(http.StatusInternalServerError, transport.Fail("Er ging iets mis bij het versturen. Probeer het opnieuw."))
	}

	l.Info("order_submitted", "customer", req.Name)
	return c.JSON(http.StatusOK, transport.OKMessage(nil, "Bestelling succesvol verzonden!"))
}

func (h *OrderHTTP) SubmitContact(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "contact_submit")

	var req transport.ContactRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("contact_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.Fail("Vul alle velden in"))
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		l.Warn("contact_error", "status", 400, "reason", "missing fields")
		return c.JSON(http.StatusBadRequest, transport.Fail("Vul alle velden in"))
	}
	if !emailPattern.MatchString(req.Email) {
		l.Warn("contact_error", "status", 400, "reason", "invalid email")
		return c.JSON(http.StatusBadRequest, transport.Fail("Ongeldig e-mailadres"))
	}

	if !h.Mail.SendContactEmail(ctx, req) {
		l.Error("contact_error", "status", 500, "reason", "mail delivery failed")
		return c.JSON(http.StatusInternalServerError, transport.Fail("Er ging iets mis bij het versturen. Probeer het opnieuw."))
	}

	l.Info("contact_submitted", "name", req.Name)
	return c.JSON(http.StatusOK, transport.OKMessage(nil, "Bericht succesvol verzonden!"))
}
