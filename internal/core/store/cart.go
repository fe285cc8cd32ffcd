package store

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/port"
)

// CartStore owns the current session's line items and mediates all stock
// reservation. It is the only component that calls the catalog's stock
// mutators, through the narrow StockAdjuster port.
//
// Each cart-mutating operation holds a single lock spanning both the line
// mutation and the paired stock mutation, so no caller can observe one
// without the other.
type CartStore struct {
	mu     sync.Mutex
	kv     port.KV
	stock  port.StockAdjuster
	ledger *InvoiceLedger
	items  []domain.CartLine
}

func NewCartStore(kv port.KV, stock port.StockAdjuster, ledger *InvoiceLedger) *CartStore {
	return &CartStore{kv: kv, stock: stock, ledger: ledger}
}

// Load restores the persisted line items, if any.
func (s *CartStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stored []domain.CartLine
	ok, err := loadSnapshot(ctx, s.kv, keyCart, &stored)
	if err != nil {
		return err
	}
	if ok {
		s.items = stored
	}
	return nil
}

// Items returns a copy of the current line items.
func (s *CartStore) Items() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartLine, len(s.items))
	copy(out, s.items)
	return out
}

// AddToCart reserves up to quantity units of the given product snapshot.
// The reservation is capped at the snapshot's observed stock; if nothing
// can be reserved the call is a silent no-op. An existing line for the same
// product id is merged, never duplicated.
func (s *CartStore) AddToCart(ctx context.Context, product domain.Product, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reserved := min(quantity, product.Stock)
	if reserved <= 0 {
		return nil
	}

	if err := s.stock.DecreaseStock(ctx, product.ID, reserved); err != nil {
		return err
	}

	if i := s.lineIndex(product.ID); i >= 0 {
		s.items[i].Quantity += reserved
	} else {
		snapshot := product
		snapshot.Stock -= reserved
		s.items = append(s.items, domain.CartLine{Product: snapshot, Quantity: reserved})
	}
	return saveSnapshot(ctx, s.kv, keyCart, s.items)
}

// RemoveFromCart releases the line's full reservation back to the catalog
// and deletes the line. Absent product ids are a silent no-op.
func (s *CartStore) RemoveFromCart(ctx context.Context, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.lineIndex(productID)
	if i < 0 {
		return nil
	}
	if err := s.stock.IncreaseStock(ctx, productID, s.items[i].Quantity); err != nil {
		return err
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return saveSnapshot(ctx, s.kv, keyCart, s.items)
}

// UpdateQuantity sets a line's quantity, reserving or releasing the
// difference. The caller is trusted to have validated newQuantity against
// visible catalog stock; no sufficiency check happens here. Zero and
// negative values are accepted as-is — removal goes through RemoveFromCart.
// Absent lines are a silent no-op.
func (s *CartStore) UpdateQuantity(ctx context.Context, productID int, newQuantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.lineIndex(productID)
	if i < 0 {
		return nil
	}

	delta := newQuantity - s.items[i].Quantity
	switch {
	case delta > 0:
		if err := s.stock.DecreaseStock(ctx, productID, delta); err != nil {
			return err
		}
	case delta < 0:
		if err := s.stock.IncreaseStock(ctx, productID, -delta); err != nil {
			return err
		}
	}

	s.items[i].Quantity = newQuantity
	return saveSnapshot(ctx, s.kv, keyCart, s.items)
}

// ClearCart releases every reservation and empties the cart. This is the
// abandon path; checkout never goes through here.
func (s *CartStore) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, line := range s.items {
		if err := s.stock.IncreaseStock(ctx, line.Product.ID, line.Quantity); err != nil {
			return err
		}
	}
	s.items = nil
	return saveSnapshot(ctx, s.kv, keyCart, s.items)
}

// Checkout converts the current lines into an immutable invoice and empties
// the cart without releasing stock: the reservation is consumed permanently.
//
// Checkout is unconditional. The calling collaborator must have verified
// that the cart is non-empty and that customer info is present and valid.
func (s *CartStore) Checkout(ctx context.Context, info domain.CustomerInfo) (domain.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subtotal := sumLines(s.items, domain.CartLine.Subtotal)
	taxes := sumLines(s.items, domain.CartLine.Tax)
	total := subtotal.Add(taxes)

	invoice, err := s.ledger.CreateInvoice(ctx, info, s.items, subtotal, taxes, total)
	if err != nil {
		return domain.Invoice{}, err
	}

	s.items = nil
	if err := saveSnapshot(ctx, s.kv, keyCart, s.items); err != nil {
		return domain.Invoice{}, err
	}
	return invoice, nil
}

// TotalItems returns the summed quantity across all lines.
func (s *CartStore) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, line := range s.items {
		total += line.Quantity
	}
	return total
}

// Subtotal returns the pre-tax total over current lines.
func (s *CartStore) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sumLines(s.items, domain.CartLine.Subtotal)
}

// TotalTax returns the summed tax over current lines, using each line's
// snapshot tax rate.
func (s *CartStore) TotalTax() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sumLines(s.items, domain.CartLine.Tax)
}

// GrandTotal returns subtotal plus taxes.
func (s *CartStore) GrandTotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	subtotal := sumLines(s.items, domain.CartLine.Subtotal)
	return subtotal.Add(sumLines(s.items, domain.CartLine.Tax))
}

func (s *CartStore) lineIndex(productID int) int {
	for i, line := range s.items {
		if line.Product.ID == productID {
			return i
		}
	}
	return -1
}

func sumLines(items []domain.CartLine, f func(domain.CartLine) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, line := range items {
		total = total.Add(f(line))
	}
	return total
}
