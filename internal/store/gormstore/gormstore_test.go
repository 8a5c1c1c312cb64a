package gormstore

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jeltev/printbaarn/internal/models"
	"github.com/jeltev/printbaarn/internal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.GalleryImage{}))

	return New(db)
}

func newProduct(id, name, slug string) *models.Product {
	now := time.Now().UTC()
	return &models.Product{
		ID:               id,
		Name:             name,
		Slug:             slug,
		ShortDescription: "kort",
		LongDescription:  "lang",
		Features:         []string{"kleurig"},
		PriceChild:       3.5,
		PriceAdult:       5,
		Images:           []string{},
		InStock:          true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestProducts_RoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	p := newProduct("p1", "Dino", "dino")
	require.NoError(t, s.CreateProduct(ctx, p))

	got, err := s.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Dino", got.Name)
	assert.Equal(t, []string{"kleurig"}, got.Features)
	assert.Equal(t, 3.5, got.PriceChild)

	bySlug, err := s.GetProductBySlug(ctx, "dino")
	require.NoError(t, err)
	assert.Equal(t, "p1", bySlug.ID)
}

func TestProducts_NotFound(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.GetProduct(ctx, "ghost")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.GetProductBySlug(ctx, "ghost")
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = s.UpdateProduct(ctx, newProduct("ghost", "Ghost", "ghost"))
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestProducts_UpdateReplacesRecord(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	p := newProduct("p1", "Dino", "dino")
	require.NoError(t, s.CreateProduct(ctx, p))

	p.Name = "Dino XL"
	p.InStock = false
	p.UpdatedAt = time.Now().UTC().Add(time.Minute)
	require.NoError(t, s.UpdateProduct(ctx, p))

	got, err := s.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Dino XL", got.Name)
	assert.False(t, got.InStock)
}

func TestProducts_Delete(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateProduct(ctx, newProduct("p1", "Dino", "dino")))

	deleted, err := s.DeleteProduct(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = s.DeleteProduct(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = s.GetProduct(ctx, "p1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGallery_CRUD(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	img := &models.GalleryImage{
		ID:         "g1",
		Filename:   "gallery-1-abc.png",
		Path:       "https://cdn.example/images/gallery/gallery-1-abc.png",
		Alt:        "creeper",
		Tags:       []string{"minecraft", "creeper"},
		UploadedAt: time.Now().UTC(),
	}
	require.NoError(t, s.CreateImage(ctx, img))

	got, err := s.GetImage(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, []string{"minecraft", "creeper"}, got.Tags)

	got.Tags = []string{"robot"}
	require.NoError(t, s.UpdateImage(ctx, got))

	got, err = s.GetImage(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, []string{"robot"}, got.Tags)
	assert.Equal(t, "creeper", got.Alt)

	deleted, err := s.DeleteImage(ctx, "g1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.DeleteImage(ctx, "g1")
	require.NoError(t, err)
	assert.False(t, deleted)
}
