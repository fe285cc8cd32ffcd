package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/pkg/clock"
)

func newLedger(kv *memKV, at time.Time) *InvoiceLedger {
	return NewInvoiceLedger(kv, &seqIDs{}, clock.NewMockClock(at))
}

func testLines() []domain.CartLine {
	return []domain.CartLine{
		{Product: testProduct(1, "P1", 8, "2000", "0.19"), Quantity: 2},
	}
}

func TestCreateInvoice_AppendsInOrder(t *testing.T) {
	kv := newMemKV()
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := newLedger(kv, at)
	ctx := context.Background()
	info := domain.CustomerInfo{Name: "Ada", Country: "Colombia"}

	first, err := l.CreateInvoice(ctx, info, testLines(), dec("4000"), dec("760"), dec("4760"))
	require.NoError(t, err)
	second, err := l.CreateInvoice(ctx, info, testLines(), dec("4000"), dec("760"), dec("4760"))
	require.NoError(t, err)

	assert.Equal(t, "id-1", first.ID)
	assert.Equal(t, "id-2", second.ID)
	assert.Equal(t, at, first.Date)
	assert.True(t, first.Total.Equal(dec("4760")))

	invoices := l.Invoices()
	require.Len(t, invoices, 2)
	assert.Equal(t, first.ID, invoices[0].ID, "oldest first")
	assert.Equal(t, second.ID, invoices[1].ID)
}

func TestInvoiceByID(t *testing.T) {
	kv := newMemKV()
	l := newLedger(kv, time.Now())
	created, err := l.CreateInvoice(context.Background(), domain.CustomerInfo{Name: "Ada"}, testLines(), dec("4000"), dec("760"), dec("4760"))
	require.NoError(t, err)

	found, ok := l.InvoiceByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, created.ID, found.ID)

	_, ok = l.InvoiceByID("missing")
	assert.False(t, ok)
}

func TestLedger_ReturnedInvoicesAreDetached(t *testing.T) {
	kv := newMemKV()
	l := newLedger(kv, time.Now())
	created, err := l.CreateInvoice(context.Background(), domain.CustomerInfo{Name: "Ada"}, testLines(), dec("4000"), dec("760"), dec("4760"))
	require.NoError(t, err)

	created.Items[0].Quantity = 999
	got := l.Invoices()
	got[0].Items[0].Quantity = 777

	stored, ok := l.InvoiceByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, 2, stored.Items[0].Quantity, "ledger state must not be reachable through returned copies")
}

func TestLedger_FreezesItemsFromCaller(t *testing.T) {
	kv := newMemKV()
	l := newLedger(kv, time.Now())
	lines := testLines()

	created, err := l.CreateInvoice(context.Background(), domain.CustomerInfo{Name: "Ada"}, lines, dec("4000"), dec("760"), dec("4760"))
	require.NoError(t, err)

	lines[0].Quantity = 999
	stored, ok := l.InvoiceByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, 2, stored.Items[0].Quantity)
}

func TestLedgerPersistence(t *testing.T) {
	kv := newMemKV()
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := newLedger(kv, at)
	created, err := l.CreateInvoice(context.Background(), domain.CustomerInfo{Name: "Ada"}, testLines(), dec("4000"), dec("760"), dec("4760"))
	require.NoError(t, err)

	reloaded := newLedger(kv, at)
	require.NoError(t, reloaded.Load(context.Background()))

	invoices := reloaded.Invoices()
	require.Len(t, invoices, 1)
	assert.Equal(t, created.ID, invoices[0].ID)
	assert.True(t, invoices[0].Date.Equal(at))
	assert.True(t, invoices[0].Total.Equal(dec("4760")))
}

func TestCreateInvoice_PropagatesStorageFailure(t *testing.T) {
	kv := newMemKV()
	l := newLedger(kv, time.Now())

	kv.failSet = true
	_, err := l.CreateInvoice(context.Background(), domain.CustomerInfo{Name: "Ada"}, testLines(), dec("4000"), dec("760"), dec("4760"))

	require.Error(t, err)
}
