package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Tax      decimal.Decimal `json:"tax"` // rate in [0,1)
	Stock    int             `json:"stock"`
}

// CartLine associates a product snapshot with a reserved quantity. The
// snapshot's Stock field is display-only; the authoritative stock value
// lives in the catalog.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (l CartLine) Tax() decimal.Decimal {
	return l.Product.Price.Mul(l.Product.Tax).Mul(decimal.NewFromInt(int64(l.Quantity)))
}
