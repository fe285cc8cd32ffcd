package port

import "context"

// StockAdjuster is the narrow slice of the catalog the cart is allowed to
// touch. The catalog never sees the cart; the dependency runs one way only.
type StockAdjuster interface {
	// DecreaseStock reserves quantity units of a product. Unknown product
	// ids are a silent no-op. Stock is clamped at zero.
	DecreaseStock(ctx context.Context, productID int, quantity int) error

	// IncreaseStock releases quantity units back to a product. Unknown
	// product ids are a silent no-op. No upper bound is enforced; callers
	// must only release what they previously reserved.
	IncreaseStock(ctx context.Context, productID int, quantity int) error
}
