package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/jeltev/printbaarn/internal/logging"
	"github.com/jeltev/printbaarn/internal/models"
	"github.com/jeltev/printbaarn/internal/storage"
	"github.com/jeltev/printbaarn/internal/store"
	"github.com/jeltev/printbaarn/internal/transport"
)

const galleryFolder = "gallery"

type GalleryService struct {
	Store  store.GalleryStore
	Assets storage.Storage
}

// UploadFile is one file from the multipart form.
type UploadFile struct {
	Name string
	Data []byte
}

func (s *GalleryService) List(ctx context.Context) ([]models.GalleryImage, error) {
	return s.Store.ListImages(ctx)
}

func (s *GalleryService) Get(ctx context.Context, id string) (*models.GalleryImage, error) {
	return s.Store.GetImage(ctx, id)
}

// Upload stores every file and records one GalleryImage per file. Filenames
// are regenerated so uploads can never collide with or overwrite each other.
func (s *GalleryService) Upload(ctx context.Context, files []UploadFile, alt string, tags []string) ([]models.GalleryImage, error) {
	l := logging.FromContext(ctx).With("svc", "gallery.upload")

	if len(files) == 0 {
		return nil, ErrValidation
	}

	uploaded := make([]models.GalleryImage, 0, len(files))
	for _, f := range files {
		if len(f.Data) == 0 {
			continue
		}

		filename := fmt.Sprintf("gallery-%d-%s%s", time.Now().UnixMilli(), randSuffix(), path.Ext(f.Name))
		url, err := s.Assets.Upload(ctx, f.Data, galleryFolder, filename)
		if err != nil {
			l.Error("upload_failed", "filename", f.Name, "error", err)
			return nil, err
		}

		imgAlt := alt
		if imgAlt == "" {
			imgAlt = f.Name
		}

		img := models.GalleryImage{
			ID:         uuid.NewString(),
			Filename:   filename,
			Path:       url,
			Alt:        imgAlt,
			Tags:       orEmpty(tags),
			UploadedAt: time.Now().UTC(),
		}
		if err := s.Store.CreateImage(ctx, &img); err != nil {
			l.Error("create_failed", "filename", filename, "error", err)
			return nil, err
		}
		uploaded = append(uploaded, img)
	}

	return uploaded, nil
}

// Patch updates alt text and tags. Everything else is immutable after
// upload.
func (s *GalleryService) Patch(ctx context.Context, id string, req transport.PatchGalleryImageRequest) (*models.GalleryImage, error) {
	img, err := s.Store.GetImage(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Alt != nil {
		img.Alt = *req.Alt
	}
	if req.Tags != nil {
		img.Tags = orEmpty(*req.Tags)
	}

	if err := s.Store.UpdateImage(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

// Delete removes the record and makes a best-effort attempt at removing the
// stored file. A failed asset delete is logged, not fatal; products that
// still reference the path keep their dangling URL.
func (s *GalleryService) Delete(ctx context.Context, id string) (bool, error) {
	l := logging.FromContext(ctx).With("svc", "gallery.delete")

	img, err := s.Store.GetImage(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := s.Assets.Delete(ctx, galleryFolder+"/"+img.Filename); err != nil {
		l.Warn("asset_delete_failed", "filename", img.Filename, "error", err)
	}

	return s.Store.DeleteImage(ctx, id)
}

func randSuffix() string {
	b := make([]byte, 3)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
