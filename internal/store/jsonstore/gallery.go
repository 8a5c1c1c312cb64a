package jsonstore

import (
	"context"

	"github.com/jeltev/printbaarn/internal/models"
	"github.com/jeltev/printbaarn/internal/store"
)

func (s *Store) ListImages(ctx context.Context) ([]models.GalleryImage, error) {
	return readAll[models.GalleryImage](s.path(galleryFile))
}

func (s *Store) GetImage(ctx context.Context, id string) (*models.GalleryImage, error) {
	images, err := s.ListImages(ctx)
	if err != nil {
		return nil, err
	}
	for i := range images {
		if images[i].ID == id {
			return &images[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) CreateImage(ctx context.Context, img *models.GalleryImage) error {
	images, err := s.ListImages(ctx)
	if err != nil {
		return err
	}
	images = append(images, *img)
	return writeAll(s.path(galleryFile), images)
}

func (s *Store) UpdateImage(ctx context.Context, img *models.GalleryImage) error {
	images, err := s.ListImages(ctx)
	if err != nil {
		return err
	}
	for i := range images {
		if images[i].ID == img.ID {
			images[i] = *img
			return writeAll(s.path(galleryFile), images)
		}
	}
	return store.ErrNotFound
}

func (s *Store) DeleteImage(ctx context.Context, id string) (bool, error) {
	images, err := s.ListImages(ctx)
	if err != nil {
		return false, err
	}
	kept := images[:0]
	for _, img := range images {
		if img.ID != id {
			kept = append(kept, img)
		}
	}
	if len(kept) == len(images) {
		return false, nil
	}
	return true, writeAll(s.path(galleryFile), kept)
}
