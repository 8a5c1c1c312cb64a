package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jeltev/printbaarn/internal/logging"
	"github.com/jeltev/printbaarn/internal/models"
	"github.com/jeltev/printbaarn/internal/slug"
	"github.com/jeltev/printbaarn/internal/store"
	"github.com/jeltev/printbaarn/internal/transport"
)

// CatalogService owns id generation, slugs and timestamps; the backing
// store only persists records.
type CatalogService struct {
	Store store.ProductStore
}

func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	return s.Store.ListProducts(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id string) (*models.Product, error) {
	return s.Store.GetProduct(ctx, id)
}

func (s *CatalogService) GetBySlug(ctx context.Context, slugVal string) (*models.Product, error) {
	return s.Store.GetProductBySlug(ctx, slugVal)
}

func (s *CatalogService) Create(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.create")

	if req.Name == "" || req.PriceChild < 0 || req.PriceAdult < 0 {
		return nil, ErrValidation
	}

	slugVal := req.Slug
	if slugVal == "" {
		slugVal = slug.Make(req.Name)
	}

	now := time.Now().UTC()
	p := &models.Product{
		ID:               uuid.NewString(),
		Name:             req.Name,
		Slug:             slugVal,
		ShortDescription: req.ShortDescription,
		LongDescription:  req.LongDescription,
		Dimensions:       req.Dimensions,
		Features:         orEmpty(req.Features),
		PriceChild:       req.PriceChild,
		PriceAdult:       req.PriceAdult,
		Images:           orEmpty(req.Images),
		InStock:          req.InStock,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.Store.CreateProduct(ctx, p); err != nil {
		l.Error("create_failed", "error", err)
		return nil, err
	}
	return p, nil
}

// Patch merges the submitted fields into the stored record. Identity and
// creation time always come from the stored record, whatever the patch says.
func (s *CatalogService) Patch(ctx context.Context, id string, req transport.PatchProductRequest) (*models.Product, error) {
	p, err := s.Store.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	baseID, baseCreatedAt := p.ID, p.CreatedAt

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Slug != nil {
		p.Slug = *req.Slug
	}
	if req.ShortDescription != nil {
		p.ShortDescription = *req.ShortDescription
	}
	if req.LongDescription != nil {
		p.LongDescription = *req.LongDescription
	}
	if req.Dimensions != nil {
		p.Dimensions = *req.Dimensions
	}
	if req.Features != nil {
		p.Features = orEmpty(*req.Features)
	}
	if req.PriceChild != nil {
		if *req.PriceChild < 0 {
			return nil, ErrValidation
		}
		p.PriceChild = *req.PriceChild
	}
	if req.PriceAdult != nil {
		if *req.PriceAdult < 0 {
			return nil, ErrValidation
		}
		p.PriceAdult = *req.PriceAdult
	}
	if req.Images != nil {
		p.Images = orEmpty(*req.Images)
	}
	if req.InStock != nil {
		p.InStock = *req.InStock
	}

	p.ID = baseID
	p.CreatedAt = baseCreatedAt
	p.UpdatedAt = time.Now().UTC()

	if err := s.Store.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) (bool, error) {
	return s.Store.DeleteProduct(ctx, id)
}

func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
