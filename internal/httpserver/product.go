package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jeltev/printbaarn/internal/logging"
	"github.com/jeltev/printbaarn/internal/service"
	"github.com/jeltev/printbaarn/internal/store"
	"github.com/jeltev/printbaarn/internal/transport"
)

type ProductHTTP struct {
	Svc *service.CatalogService
}

func (h *ProductHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product_list")

	products, err := h.Svc.List(ctx)
	if err != nil {
		l.Error("list_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.Fail("Kon producten niet ophalen"))
	}
	return c.JSON(http.StatusOK, transport.OK(products))
}

func (h *ProductHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product_get")

	product, err := h.Svc.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, transport.Fail("Product niet gevonden"))
		}
		l.Error("get_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.Fail("Kon product niet ophalen"))
	}
	return c.JSON(http.StatusOK, transport.OK(product))
}

func (h *ProductHTTP) GetBySlug(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product_get_by_slug")

	product, err := h.Svc.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, transport.Fail("Product niet gevonden"))
		}
		l.Error("get_by_slug_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.Fail("Kon product niet ophalen"))
	}
	return c.JSON(http.StatusOK, transport.OK(product))
}

func (h *ProductHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product_create")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.Fail("Ongeldige invoer"))
	}

	product, err := h.Svc.Create(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_error", "status", 400, "reason", "validation", "error", err)
			return c.JSON(http.StatusBadRequest, transport.Fail("Ongeldige invoer"))
		}
		l.Error("create_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.Fail("Kon product niet aanmaken"))
	}

	l.Info("create_success", "product_id", product.ID)
	return c.JSON(http.StatusOK, transport.OKMessage(product, "Product succesvol aangemaakt"))
}

func (h *ProductHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product_update")

	var req transport.PatchProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.Fail("Ongeldige invoer"))
	}

	product, err := h.Svc.Patch(ctx, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, transport.Fail("Product niet gevonden"))
		}
		if errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusBadRequest, transport.Fail("Ongeldige invoer"))
		}
		l.Error("update_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.Fail("Kon product niet bijwerken"))
	}

	l.Info("update_success", "product_id", product.ID)
	return c.JSON(http.StatusOK, transport.OKMessage(product, "Product succesvol bijgewerkt"))
}

func (h *ProductHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product_delete")

	deleted, err := h.Svc.Delete(ctx, c.Param("id"))
	if err != nil {
		l.Error("delete_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.Fail("Kon product niet verwijderen"))
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, transport.Fail("Product niet gevonden"))
	}

	l.Info("delete_success", "product_id", c.Param("id"))
	return c.JSON(http.StatusOK, transport.OKMessage(nil, "Product succesvol verwijderd"))
}
