// Package store defines the persistence contract shared by the JSON-file
// and Postgres backends. Id generation, slugs and timestamps are assigned by
// the service layer; backends only read and write records.
package store

import (
	"context"
	"errors"

	"github.com/jeltev/printbaarn/internal/models"
)

var ErrNotFound = errors.New("record not found")

type ProductStore interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	// UpdateProduct replaces the stored record with the same id, or returns
	// ErrNotFound.
	UpdateProduct(ctx context.Context, p *models.Product) error
	// DeleteProduct reports whether a record was removed. Unknown ids are not
	// an error.
	DeleteProduct(ctx context.Context, id string) (bool, error)
}

type GalleryStore interface {
	ListImages(ctx context.Context) ([]models.GalleryImage, error)
	GetImage(ctx context.Context, id string) (*models.GalleryImage, error)
	CreateImage(ctx context.Context, img *models.GalleryImage) error
	UpdateImage(ctx context.Context, img *models.GalleryImage) error
	DeleteImage(ctx context.Context, id string) (bool, error)
}
