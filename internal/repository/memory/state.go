package memory

import (
	"context"
	"sync"

	apperrors "github.com/Nwachukwuchinedu/Creative-Stitches/pkg/errors"
)

// StateRepository is an in-process repository.StateRepository. It backs tests
// and the storage-disabled mode, where durability is sacrificed but the
// persistence contract stays intact.
type StateRepository struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewStateRepository creates an empty in-memory state repository.
func NewStateRepository() *StateRepository {
	return &StateRepository{
		values: make(map[string][]byte),
	}
}

// Load retrieves the blob stored under key.
func (r *StateRepository) Load(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.values[key]
	if !ok {
		return nil, apperrors.NotFound("state", key)
	}

	cloned := make([]byte, len(data))
	copy(cloned, data)
	return cloned, nil
}

// Save writes the blob under key.
func (r *StateRepository) Save(_ context.Context, key string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cloned := make([]byte, len(data))
	copy(cloned, data)
	r.values[key] = cloned
	return nil
}

// Delete removes the key.
func (r *StateRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.values, key)
	return nil
}
