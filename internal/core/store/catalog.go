package store

import (
	"context"
	"sync"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/pkg/errs"
	"github.com/rl1809/storefront/internal/port"
)

// ErrInsufficientStock is returned by DecreaseStock only when strict mode
// is enabled and the requested quantity exceeds the current stock.
var ErrInsufficientStock = errs.New("insufficient stock")

// CatalogStore is the single source of truth for product existence and
// stock levels. Every mutation persists the full product list.
//
// By default a decrease below zero silently clamps at zero, matching the
// compatible behavior. WithStrictStock turns the clamp into an error.
type CatalogStore struct {
	mu       sync.Mutex
	kv       port.KV
	strict   bool
	products []domain.Product
}

type CatalogOption func(*CatalogStore)

// WithStrictStock makes DecreaseStock fail with ErrInsufficientStock
// instead of clamping when stock runs short.
func WithStrictStock() CatalogOption {
	return func(s *CatalogStore) { s.strict = true }
}

func NewCatalogStore(kv port.KV, opts ...CatalogOption) *CatalogStore {
	s := &CatalogStore{kv: kv}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load adopts the persisted product list if one exists, otherwise adopts
// the seed catalog and persists it immediately. Idempotent; it replaces
// in-memory state wholesale and never merges.
func (s *CatalogStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stored []domain.Product
	ok, err := loadSnapshot(ctx, s.kv, keyProducts, &stored)
	if err != nil {
		return err
	}
	if ok {
		s.products = stored
		return nil
	}

	s.products = seedProducts()
	return saveSnapshot(ctx, s.kv, keyProducts, s.products)
}

// Products returns a copy of the current product list.
func (s *CatalogStore) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *CatalogStore) ProductByID(id int) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// DecreaseStock reserves quantity units of a product. Unknown ids are a
// silent no-op. Stock never goes negative: the excess is clamped away
// unless strict mode is on.
func (s *CatalogStore) DecreaseStock(ctx context.Context, productID int, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID != productID {
			continue
		}
		if s.strict && p.Stock < quantity {
			return errs.Wrapf(ErrInsufficientStock, "product %d: have %d, want %d", productID, p.Stock, quantity)
		}
		s.products[i].Stock = max(0, p.Stock-quantity)
		break
	}
	return saveSnapshot(ctx, s.kv, keyProducts, s.products)
}

// IncreaseStock releases quantity units back to a product. Unknown ids are
// a silent no-op. No upper bound is enforced; callers must only release
// what they previously reserved.
func (s *CatalogStore) IncreaseStock(ctx context.Context, productID int, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == productID {
			s.products[i].Stock = p.Stock + quantity
			break
		}
	}
	return saveSnapshot(ctx, s.kv, keyProducts, s.products)
}
