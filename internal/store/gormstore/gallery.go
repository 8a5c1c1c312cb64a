package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jeltev/printbaarn/internal/models"
	"github.com/jeltev/printbaarn/internal/store"
)

func (s *Store) ListImages(ctx context.Context) ([]models.GalleryImage, error) {
	var items []models.GalleryImage
	if err := s.DB.WithContext(ctx).Order("uploaded_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetImage(ctx context.Context, id string) (*models.GalleryImage, error) {
	var img models.GalleryImage
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&img).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &img, nil
}

func (s *Store) CreateImage(ctx context.Context, img *models.GalleryImage) error {
	return s.DB.WithContext(ctx).Create(img).Error
}

func (s *Store) UpdateImage(ctx context.Context, img *models.GalleryImage) error {
	res := s.DB.WithContext(ctx).Model(&models.GalleryImage{}).Where("id = ?", img.ID).Select("*").Updates(img)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteImage(ctx context.Context, id string) (bool, error) {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.GalleryImage{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
