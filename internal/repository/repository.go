package repository

import "context"

// StateRepository bridges a store's in-memory state to durable key-value
// storage. Each store serializes its full state and writes it under a fixed,
// store-specific key on every change.
type StateRepository interface {
	// Load retrieves the raw serialized state stored under key.
	// Returns an error wrapping apperrors.ErrNotFound when the key is absent.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save writes the serialized state under key, overwriting any prior value.
	Save(ctx context.Context, key string, data []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
