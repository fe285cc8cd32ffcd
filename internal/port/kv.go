package port

import "context"

// KV is the durable key-value store backing every data store. Each store
// persists a full-list snapshot under its own key; there is no atomicity
// across keys.
type KV interface {
	// Get returns the stored value, or false if the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set replaces the value under key wholesale.
	Set(ctx context.Context, key string, value string) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
