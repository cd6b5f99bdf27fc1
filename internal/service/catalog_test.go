package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaghunadhSahitDruvam/vibecart/internal/transport"
)

func TestGetProductBySlug(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	seedProduct(t, r, "classic-tee", 25, 0)

	product, err := svc.GetProductBySlug(context.Background(), "classic-tee")
	require.NoError(t, err)
	assert.Equal(t, "classic-tee", product.Slug)
	require.Len(t, product.SubProducts, 1)
	require.Len(t, product.SubProducts[0].Sizes, 2)

	_, err = svc.GetProductBySlug(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetProducts_Pagination(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	for i := 0; i < 5; i++ {
		seedProduct(t, r, "page-tee-"+string(rune('a'+i)), 10, 0)
	}

	total, items, err := svc.GetProducts(context.Background(), 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, items, 2)

	total, items, err = svc.GetProducts(context.Background(), 4, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, items, 1)
}

func TestCreateProduct_Validation(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}

	_, err := svc.CreateProduct(context.Background(), transport.CreateProductRequest{Name: "tee"})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateProduct(context.Background(), transport.CreateProductRequest{Slug: "tee"})
	require.ErrorIs(t, err, ErrValidation)

	product, err := svc.CreateProduct(context.Background(), transport.CreateProductRequest{
		Name: "Plain tee", Slug: "plain-tee", Category: "shirts",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
}

func TestPatchProduct(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	product := seedProduct(t, r, "patch-tee", 25, 0)

	name := "Renamed tee"
	patched, err := svc.PatchProduct(context.Background(), transport.PatchProductRequest{Name: &name}, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed tee", patched.Name)
	assert.Equal(t, "patch-tee", patched.Slug)

	_, err = svc.PatchProduct(context.Background(), transport.PatchProductRequest{Name: &name}, uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	product := seedProduct(t, r, "delete-tee", 25, 0)

	require.NoError(t, svc.DeleteProduct(context.Background(), product.ID))
	require.ErrorIs(t, svc.DeleteProduct(context.Background(), product.ID), ErrNotFound)
}

func TestSearch_Unconfigured(t *testing.T) {
	t.Parallel()

	svc := &CatalogService{Repo: newTestRepo(t)}

	_, _, err := svc.Search(context.Background(), "tee", 0, 10)
	require.ErrorIs(t, err, ErrConflict)
}
