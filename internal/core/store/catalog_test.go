package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/storefront/internal/core/domain"
)

func TestLoad_SeedsWhenStorageEmpty(t *testing.T) {
	kv := newMemKV()
	c := NewCatalogStore(kv)

	require.NoError(t, c.Load(context.Background()))

	assert.NotEmpty(t, c.Products())
	_, persisted := kv.m[keyProducts]
	assert.True(t, persisted, "seed catalog must be persisted immediately")
}

func TestLoad_AdoptsStoredListVerbatim(t *testing.T) {
	kv := newMemKV()
	stored := []domain.Product{testProduct(42, "Stored", 7, "99", "0.19")}
	c := newCatalog(t, kv, stored)

	require.Equal(t, stored, c.Products())
}

func TestLoad_Idempotent(t *testing.T) {
	kv := newMemKV()
	c := NewCatalogStore(kv)

	require.NoError(t, c.Load(context.Background()))
	first := c.Products()
	require.NoError(t, c.Load(context.Background()))

	assert.Equal(t, first, c.Products())
}

func TestDecreaseStock_Deducts(t *testing.T) {
	kv := newMemKV()
	c := newCatalog(t, kv, []domain.Product{testProduct(1, "P1", 10, "2000", "0.19")})

	require.NoError(t, c.DecreaseStock(context.Background(), 1, 3))

	assert.Equal(t, 7, mustStock(t, c, 1))
}

func TestDecreaseStock_ClampsAtZero(t *testing.T) {
	kv := newMemKV()
	c := newCatalog(t, kv, []domain.Product{testProduct(1, "P1", 2, "2000", "0.19")})

	require.NoError(t, c.DecreaseStock(context.Background(), 1, 5))

	assert.Equal(t, 0, mustStock(t, c, 1))
}

func TestDecreaseStock_UnknownProductIsNoop(t *testing.T) {
	kv := newMemKV()
	c := newCatalog(t, kv, []domain.Product{testProduct(1, "P1", 10, "2000", "0.19")})

	require.NoError(t, c.DecreaseStock(context.Background(), 999, 3))

	assert.Equal(t, 10, mustStock(t, c, 1))
}

func TestDecreaseStock_StrictModeRejectsShortfall(t *testing.T) {
	kv := newMemKV()
	c := newCatalog(t, kv, []domain.Product{testProduct(1, "P1", 2, "2000", "0.19")}, WithStrictStock())

	err := c.DecreaseStock(context.Background(), 1, 5)

	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 2, mustStock(t, c, 1), "strict rejection must not mutate stock")

	require.NoError(t, c.DecreaseStock(context.Background(), 1, 2))
	assert.Equal(t, 0, mustStock(t, c, 1))
}

func TestIncreaseStock_NoUpperBound(t *testing.T) {
	kv := newMemKV()
	c := newCatalog(t, kv, []domain.Product{testProduct(1, "P1", 10, "2000", "0.19")})

	require.NoError(t, c.IncreaseStock(context.Background(), 1, 1000))

	assert.Equal(t, 1010, mustStock(t, c, 1))
}

func TestIncreaseStock_UnknownProductIsNoop(t *testing.T) {
	kv := newMemKV()
	c := newCatalog(t, kv, []domain.Product{testProduct(1, "P1", 10, "2000", "0.19")})

	require.NoError(t, c.IncreaseStock(context.Background(), 999, 5))

	assert.Equal(t, 10, mustStock(t, c, 1))
}

func TestStockMutationsPersist(t *testing.T) {
	kv := newMemKV()
	c := newCatalog(t, kv, []domain.Product{testProduct(1, "P1", 10, "2000", "0.19")})

	require.NoError(t, c.DecreaseStock(context.Background(), 1, 4))

	reloaded := NewCatalogStore(kv)
	require.NoError(t, reloaded.Load(context.Background()))
	assert.Equal(t, 6, mustStock(t, reloaded, 1))
}

func TestDecreaseStock_PropagatesStorageFailure(t *testing.T) {
	kv := newMemKV()
	c := newCatalog(t, kv, []domain.Product{testProduct(1, "P1", 10, "2000", "0.19")})

	kv.failSet = true
	err := c.DecreaseStock(context.Background(), 1, 1)

	require.Error(t, err)
}
