package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jeltev/printbaarn/internal/middleware"
)

type Deps struct {
	Auth     *AuthHTTP
	Products *ProductHTTP
	Gallery  *GalleryHTTP
	Orders   *OrderHTTP
	Settings *SettingsHTTP
	Gate     *middleware.AdminGate

	// UploadsDir, when set, is served under /uploads. Only the local storage
	// backend needs this; Supabase serves its own public URLs.
	UploadsDir string
}

// Register wires all routes. Reads are public; every mutating admin route
// goes through the gate.
func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	if d.UploadsDir != "" {
		e.Static("/uploads", d.UploadsDir)
	}

	api := e.Group("/api")

	api.POST("/auth/login", d.Auth.Login)
	api.POST("/auth/logout", d.Auth.Logout)

	api.GET("/products", d.Products.List)
	api.GET("/products/:id", d.Products.Get)
	api.GET("/products/slug/:slug", d.Products.GetBySlug)

	api.GET("/gallery", d.Gallery.List)
	api.GET("/gallery/:id", d.Gallery.Get)

	api.POST("/orders", d.Orders.SubmitOrder)
	api.POST("/contact", d.Orders.SubmitContact)

	admin := api.Group("", d.Gate.RequireAdmin)
	admin.POST("/products", d.Products.Create)
	admin.PUT("/products/:id", d.Products.Update)
	admin.DELETE("/products/:id", d.Products.Delete)

	admin.POST("/gallery", d.Gallery.Upload)
	admin.PUT("/gallery/:id", d.Gallery.Update)
	admin.DELETE("/gallery/:id", d.Gallery.Delete)

	admin.POST("/admin/settings/password", d.Settings.ChangePassword)
	admin.POST("/admin/settings/email", d.Settings.UpdateEmail)
}
