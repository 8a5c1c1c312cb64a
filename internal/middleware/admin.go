package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jeltev/printbaarn/internal/auth"
	"github.com/jeltev/printbaarn/internal/transport"
)

// TokenVerifier is the one dependency of the gate; nil claims mean denied.
type TokenVerifier interface {
	Verify(token string) *auth.Claims
}

// AdminGate protects every mutating admin endpoint. It is the single
// enforcement point between the HTTP surface and the stores.
type AdminGate struct {
	Tokens TokenVerifier
}

func NewAdminGate(v TokenVerifier) *AdminGate {
	return &AdminGate{Tokens: v}
}

func (g *AdminGate) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(auth.CookieName)
		if err != nil || cookie.Value == "" {
			// No cookie: deny without touching the verifier.
			return c.JSON(http.StatusUnauthorized, transport.Fail("Unauthorized"))
		}

		claims := g.Tokens.Verify(cookie.Value)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, transport.Fail("Unauthorized"))
		}

		c.Set("admin_username", claims.Username)
		return next(c)
	}
}
