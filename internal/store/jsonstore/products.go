package jsonstore

import (
	"context"

	"github.com/jeltev/printbaarn/internal/models"
	"github.com/jeltev/printbaarn/internal/store"
)

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	return readAll[models.Product](s.path(productsFile))
}

func (s *Store) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].Slug == slug {
			return &products[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) CreateProduct(ctx context.Context, p *models.Product) error {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return err
	}
	products = append(products, *p)
	return writeAll(s.path(productsFile), products)
}

func (s *Store) UpdateProduct(ctx context.Context, p *models.Product) error {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == p.ID {
			products[i] = *p
			return writeAll(s.path(productsFile), products)
		}
	}
	return store.ErrNotFound
}

func (s *Store) DeleteProduct(ctx context.Context, id string) (bool, error) {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return false, err
	}
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return false, nil
	}
	return true, writeAll(s.path(productsFile), kept)
}
