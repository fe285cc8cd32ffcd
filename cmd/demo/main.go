// Command demo runs a scripted shopping session in-process against the
// memory backend: browse, reserve, adjust, checkout, then print the minted
// invoice and the resulting stock levels.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/rl1809/storefront/internal/adapter/id"
	"github.com/rl1809/storefront/internal/adapter/storage"
	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/core/store"
	"github.com/rl1809/storefront/internal/pkg/clock"
	"github.com/rl1809/storefront/internal/pkg/money"
)

func main() {
	ctx := context.Background()

	kv := storage.NewMemory()
	ids := id.NewUUIDGenerator()
	catalog := store.NewCatalogStore(kv)
	ledger := store.NewInvoiceLedger(kv, ids, clock.NewRealClock())
	cart := store.NewCartStore(kv, catalog, ledger)

	if err := catalog.Load(ctx); err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}

	fmt.Println("catalog:")
	for _, p := range catalog.Products() {
		fmt.Printf("  [%d] %-22s %-12s %10s  stock %d\n", p.ID, p.Name, p.Category, money.FormatUSD(p.Price), p.Stock)
	}

	products := catalog.Products()
	laptop, headphones := products[0], products[2]

	must(cart.AddToCart(ctx, laptop, 1))
	must(cart.AddToCart(ctx, headphones, 2))
	must(cart.AddToCart(ctx, laptop, 1)) // merges into the existing line
	must(cart.UpdateQuantity(ctx, headphones.ID, 1))

	fmt.Println("\ncart:")
	for _, line := range cart.Items() {
		fmt.Printf("  %-22s x%d  %s\n", line.Product.Name, line.Quantity, money.FormatUSD(line.Subtotal()))
	}
	fmt.Printf("  subtotal %s  taxes %s  total %s\n",
		money.FormatUSD(cart.Subtotal()), money.FormatUSD(cart.TotalTax()), money.FormatUSD(cart.GrandTotal()))

	invoice, err := cart.Checkout(ctx, domain.CustomerInfo{
		Name:    "Ada Lovelace",
		Phone:   "3001234567",
		Email:   "ada@example.com",
		Country: "Colombia",
	})
	if err != nil {
		log.Fatalf("checkout failed: %v", err)
	}

	fmt.Printf("\ninvoice %s (%s):\n", invoice.ID, invoice.Date.Format("2006-01-02 15:04:05"))
	for _, line := range invoice.Items {
		fmt.Printf("  %-22s x%d\n", line.Product.Name, line.Quantity)
	}
	fmt.Printf("  total %s for %s\n", money.FormatUSD(invoice.Total), invoice.CustomerInfo.Name)

	fmt.Println("\nstock after checkout:")
	for _, p := range catalog.Products() {
		fmt.Printf("  [%d] %-22s stock %d\n", p.ID, p.Name, p.Stock)
	}
	fmt.Printf("\nledger holds %d invoice(s); cart holds %d item(s)\n", len(ledger.Invoices()), cart.TotalItems())
}

func must(err error) {
	if err != nil {
		log.Fatalf("cart operation failed: %v", err)
	}
}
