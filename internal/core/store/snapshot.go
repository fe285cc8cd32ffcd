package store

import (
	"context"
	"encoding/json"

	"github.com/rl1809/storefront/internal/pkg/errs"
	"github.com/rl1809/storefront/internal/port"
)

// Storage keys. Each store owns exactly one key and never reads another's.
const (
	keyProducts = "storefront:products"
	keyCart     = "storefront:cart"
	keyInvoices = "storefront:invoices"
	keySession  = "storefront:session"
)

// saveSnapshot persists a full-list snapshot under key. Every store mutator
// ends with a call to this; there is no incremental persistence.
func saveSnapshot(ctx context.Context, kv port.KV, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return errs.Wrapf(err, "encode %s", key)
	}
	return errs.Wrapf(kv.Set(ctx, key, string(b)), "persist %s", key)
}

// loadSnapshot reads the snapshot under key into v. Returns false with no
// error if the key has never been written.
func loadSnapshot(ctx context.Context, kv port.KV, key string, v any) (bool, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return false, errs.Wrapf(err, "read %s", key)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, errs.Wrapf(err, "decode %s", key)
	}
	return true, nil
}
