package store

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/pkg/clock"
	"github.com/rl1809/storefront/internal/port"
)

// InvoiceLedger is the append-only record of completed checkouts. Invoices
// are never mutated or removed; corrections do not exist in this system.
type InvoiceLedger struct {
	mu       sync.Mutex
	kv       port.KV
	ids      port.IDGenerator
	clock    clock.Clock
	invoices []domain.Invoice
}

func NewInvoiceLedger(kv port.KV, ids port.IDGenerator, clk clock.Clock) *InvoiceLedger {
	return &InvoiceLedger{kv: kv, ids: ids, clock: clk}
}

// Load restores the persisted invoice list, if any.
func (l *InvoiceLedger) Load(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var stored []domain.Invoice
	ok, err := loadSnapshot(ctx, l.kv, keyInvoices, &stored)
	if err != nil {
		return err
	}
	if ok {
		l.invoices = stored
	}
	return nil
}

// CreateInvoice mints a new invoice with a fresh id and the current time,
// freezing a copy of the given items, and appends it to the ledger. Inputs
// are trusted; there is no validation.
func (l *InvoiceLedger) CreateInvoice(ctx context.Context, info domain.CustomerInfo, items []domain.CartLine, subtotal, taxes, total decimal.Decimal) (domain.Invoice, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	frozen := make([]domain.CartLine, len(items))
	copy(frozen, items)

	invoice := domain.Invoice{
		ID:           l.ids.NewID(),
		Date:         l.clock.Now(),
		CustomerInfo: info,
		Items:        frozen,
		Subtotal:     subtotal,
		Taxes:        taxes,
		Total:        total,
	}

	appended := append(l.invoices, invoice)
	if err := saveSnapshot(ctx, l.kv, keyInvoices, appended); err != nil {
		return domain.Invoice{}, err
	}
	l.invoices = appended
	return invoice, nil
}

// Invoices returns the full ledger in creation order, oldest first.
func (l *InvoiceLedger) Invoices() []domain.Invoice {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.Invoice, len(l.invoices))
	for i, inv := range l.invoices {
		out[i] = copyInvoice(inv)
	}
	return out
}

// InvoiceByID looks up an invoice by identifier.
func (l *InvoiceLedger) InvoiceByID(id string) (domain.Invoice, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, inv := range l.invoices {
		if inv.ID == id {
			return copyInvoice(inv), true
		}
	}
	return domain.Invoice{}, false
}

// copyInvoice detaches the items slice so callers cannot reach into ledger
// state through a returned invoice.
func copyInvoice(inv domain.Invoice) domain.Invoice {
	items := make([]domain.CartLine, len(inv.Items))
	copy(items, inv.Items)
	inv.Items = items
	return inv
}
