package store

import (
	"github.com/shopspring/decimal"

	"github.com/rl1809/storefront/internal/core/domain"
)

// seedProducts is the fixed catalog adopted on first load, before any
// persisted state exists.
func seedProducts() []domain.Product {
	iva := decimal.RequireFromString("0.19")
	return []domain.Product{
		{ID: 1, Name: "Laptop Pro 14", Category: "Computers", Price: decimal.NewFromInt(2000), Tax: iva, Stock: 10},
		{ID: 2, Name: "Smartphone X", Category: "Phones", Price: decimal.NewFromInt(1200), Tax: iva, Stock: 15},
		{ID: 3, Name: "Wireless Headphones", Category: "Audio", Price: decimal.NewFromInt(250), Tax: iva, Stock: 30},
		{ID: 4, Name: "4K Monitor 27", Category: "Computers", Price: decimal.NewFromInt(600), Tax: iva, Stock: 12},
		{ID: 5, Name: "Mechanical Keyboard", Category: "Accessories", Price: decimal.NewFromInt(140), Tax: iva, Stock: 40},
		{ID: 6, Name: "Gaming Mouse", Category: "Accessories", Price: decimal.NewFromInt(80), Tax: iva, Stock: 50},
		{ID: 7, Name: "Bluetooth Speaker", Category: "Audio", Price: decimal.NewFromInt(180), Tax: iva, Stock: 25},
		{ID: 8, Name: "Tablet S9", Category: "Tablets", Price: decimal.NewFromInt(900), Tax: iva, Stock: 8},
	}
}
