package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeltev/printbaarn/internal/store"
	"github.com/jeltev/printbaarn/internal/store/jsonstore"
	"github.com/jeltev/printbaarn/internal/transport"
)

func newCatalogService(t *testing.T) *CatalogService {
	t.Helper()

	js, err := jsonstore.New(t.TempDir())
	require.NoError(t, err)
	return &CatalogService{Store: js}
}

func createReq(name string) transport.CreateProductRequest {
	return transport.CreateProductRequest{
		Name:             name,
		ShortDescription: "kort",
		LongDescription:  "lang",
		Features:         []string{"PLA", "kleurig"},
		PriceChild:       3.5,
		PriceAdult:       5,
		InStock:          true,
	}
}

func TestCatalog_Create_AssignsIDSlugAndTimestamps(t *testing.T) {
	t.Parallel()

	svc := newCatalogService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, createReq("Mijn Product!"))
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "mijn-product", p.Slug)
	assert.False(t, p.CreatedAt.IsZero())
	assert.True(t, p.UpdatedAt.Equal(p.CreatedAt))
	assert.NotNil(t, p.Images, "images must marshal as [], not null")
}

func TestCatalog_Create_KeepsExplicitSlug(t *testing.T) {
	t.Parallel()

	svc := newCatalogService(t)

	req := createReq("Mijn Product!")
	req.Slug = "eigen-slug"
	p, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "eigen-slug", p.Slug)
}

func TestCatalog_Create_Validation(t *testing.T) {
	t.Parallel()

	svc := newCatalogService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  transport.CreateProductRequest
	}{
		{name: "empty name", req: transport.CreateProductRequest{PriceChild: 1, PriceAdult: 1}},
		{name: "negative child price", req: transport.CreateProductRequest{Name: "x", PriceChild: -1}},
		{name: "negative adult price", req: transport.CreateProductRequest{Name: "x", PriceAdult: -0.5}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.Create(ctx, tt.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCatalog_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := newCatalogService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, createReq("Dino Skelet"))
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Features, got.Features)
	assert.True(t, got.CreatedAt.Equal(created.CreatedAt))
	assert.True(t, got.UpdatedAt.Equal(created.UpdatedAt))

	bySlug, err := svc.GetBySlug(ctx, "dino-skelet")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)
}

func TestCatalog_Patch_PreservesIdentityAndAdvancesUpdatedAt(t *testing.T) {
	t.Parallel()

	svc := newCatalogService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, createReq("Dino"))
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	newName := "X"
	patched, err := svc.Patch(ctx, created.ID, transport.PatchProductRequest{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, created.ID, patched.ID)
	assert.True(t, patched.CreatedAt.Equal(created.CreatedAt))
	assert.True(t, patched.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, "X", patched.Name)
	// Untouched fields keep their values.
	assert.Equal(t, created.Slug, patched.Slug)
	assert.Equal(t, created.PriceChild, patched.PriceChild)
	assert.True(t, patched.InStock)
}

func TestCatalog_Patch_RejectsNegativePrice(t *testing.T) {
	t.Parallel()

	svc := newCatalogService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, createReq("Dino"))
	require.NoError(t, err)

	bad := -2.0
	_, err = svc.Patch(ctx, created.ID, transport.PatchProductRequest{PriceAdult: &bad})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCatalog_Patch_UnknownID(t *testing.T) {
	t.Parallel()

	svc := newCatalogService(t)

	name := "X"
	_, err := svc.Patch(context.Background(), "ghost", transport.PatchProductRequest{Name: &name})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCatalog_Delete(t *testing.T) {
	t.Parallel()

	svc := newCatalogService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, createReq("Dino"))
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCatalog_DuplicateNamesYieldDuplicateSlugs(t *testing.T) {
	t.Parallel()

	svc := newCatalogService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, createReq("Dino"))
	require.NoError(t, err)
	second, err := svc.Create(ctx, createReq("Dino"))
	require.NoError(t, err)

	// Slug collisions are accepted; lookup by slug finds the first match.
	assert.Equal(t, first.Slug, second.Slug)
	bySlug, err := svc.GetBySlug(ctx, "dino")
	require.NoError(t, err)
	assert.Equal(t, first.ID, bySlug.ID)
}
