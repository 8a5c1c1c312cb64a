package httpserver

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jeltev/printbaarn/internal/logging"
	"github.com/jeltev/printbaarn/internal/service"
	"github.com/jeltev/printbaarn/internal/store"
	"github.com/jeltev/printbaarn/internal/transport"
)

type GalleryHTTP struct {
	Svc *service.GalleryService
}

func (h *GalleryHTTP) List(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "gallery_list")

	images, err := h.Svc.List(ctx)
	if err != nil {
		l.Error("list_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.Fail("Kon galerij niet ophalen"))
	}
	return c.JSON(http.StatusOK, transport.OK(images))
}

func (h *GalleryHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "gallery_get")

	img, err := h.Svc.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, transport.Fail("Afbeelding niet gevonden"))
		}
		l.Error("get_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.Fail("Kon afbeelding niet ophalen"))
	}
	return c.JSON(http.StatusOK, transport.OK(img))
}

// Upload accepts one or more files in the "files" multipart field, with
// optional shared alt text and comma-separated tags.
func (h *GalleryHTTP) Upload(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "gallery_upload")

	form, err := c.MultipartForm()
	if err != nil {
		l.Warn("upload_error", "status", 400, "reason", "invalid form", "error", err)
		return c.JSON(http.StatusBadRequest, transport.Fail("No files provided"))
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		return c.JSON(http.StatusBadRequest, transport.Fail("No files provided"))
	}

	files := make([]service.UploadFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		src, err := fh.Open()
		if err != nil {
			l.Error("upload_error", "status", 500, "reason", "cannot open file", "error", err)
			return c.JSON(http.StatusInternalServerError, transport.Fail("Failed to upload images"))
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			l.Error("upload_error", "status", 500, "reason", "cannot read file", "error", err)
			return c.JSON(http.StatusInternalServerError, transport.Fail("Failed to upload images"))
		}
		files = append(files, service.UploadFile{Name: fh.Filename, Data: data})
	}

	alt := c.FormValue("alt")
	var tags []string
	if raw := c.FormValue("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}

	uploaded, err := h.Svc.Upload(ctx, files, alt, tags)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusBadRequest, transport.Fail("No files provided"))
		}
		l.Error("upload_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.Fail("Failed to upload images"))
	}

	l.Info("upload_success", "count", len(uploaded))
	msg := fmt.Sprintf("%d afbeelding(en) geüpload", len(uploaded))
	return c.JSON(http.StatusOK, transport.OKMessage(uploaded, msg))
}

func (h *GalleryHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "gallery_update")

	var req transport.PatchGalleryImageRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.Fail("Ongeldige invoer"))
	}

	img, err := h.Svc.Patch(ctx, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, transport.Fail("Afbeelding niet gevonden"))
		}
		l.Error("update_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.Fail("Kon afbeelding niet bijwerken"))
	}

	return c.JSON(http.StatusOK, transport.OKMessage(img, "Afbeelding succesvol bijgewerkt"))
}

func (h *GalleryHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "gallery_delete")

	deleted, err := h.Svc.Delete(ctx, c.Param("id"))
	if err != nil {
		l.Error("delete_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.Fail("Kon afbeelding niet verwijderen"))
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, transport.Fail("Afbeelding niet gevonden"))
	}

	l.Info("delete_success", "image_id", c.Param("id"))
	return c.JSON(http.StatusOK, transport.OKMessage(nil, "Afbeelding succesvol verwijderd"))
}
