package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Country string `json:"country"`
}

// Invoice is immutable once minted. Items are a frozen copy of the cart
// lines at checkout time.
type Invoice struct {
	ID           string          `json:"id"`
	Date         time.Time       `json:"date"`
	CustomerInfo CustomerInfo    `json:"customerInfo"`
	Items        []CartLine      `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Taxes        decimal.Decimal `json:"taxes"`
	Total        decimal.Decimal `json:"total"`
}
