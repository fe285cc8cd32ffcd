package store

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/pkg/errs"
)

// memKV is an in-package KV fake with optional fault injection.
type memKV struct {
	m       map[string]string
	failSet bool
}

func newMemKV() *memKV {
	return &memKV{m: make(map[string]string)}
}

func (s *memKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *memKV) Set(_ context.Context, key string, value string) error {
	if s.failSet {
		return errs.New("storage unavailable")
	}
	s.m[key] = value
	return nil
}

func (s *memKV) Remove(_ context.Context, key string) error {
	delete(s.m, key)
	return nil
}

// seqIDs hands out deterministic ids: id-1, id-2, ...
type seqIDs struct {
	n int
}

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testProduct(id int, name string, stock int, price, tax string) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     name,
		Category: "Test",
		Price:    dec(price),
		Tax:      dec(tax),
		Stock:    stock,
	}
}

// newCatalog builds a loaded catalog over kv. When products is non-nil it
// is written to storage first, so Load adopts it instead of the seed.
func newCatalog(t *testing.T, kv *memKV, products []domain.Product, opts ...CatalogOption) *CatalogStore {
	t.Helper()
	if products != nil {
		b, err := json.Marshal(products)
		require.NoError(t, err)
		kv.m[keyProducts] = string(b)
	}
	c := NewCatalogStore(kv, opts...)
	require.NoError(t, c.Load(context.Background()))
	return c
}

func mustStock(t *testing.T, c *CatalogStore, productID int) int {
	t.Helper()
	p, ok := c.ProductByID(productID)
	require.True(t, ok, "product %d not in catalog", productID)
	return p.Stock
}
