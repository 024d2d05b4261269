package locale

import (
	"context"
	"sync"
)

// MemoryStore is an in-process preference store.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get implements Store.
func (m *MemoryStore) Get(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set implements Writer.
func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	m.values[key] = value
	m.mu.Unlock()
	return nil
}

// Delete implements Writer. Deleting a missing key is not an error.
func (m *MemoryStore) Delete(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	delete(m.values, key)
	m.mu.Unlock()
	return nil
}

// Scoped returns a view of the store whose keys are prefixed with scope,
// so several visitors can share one MemoryStore.
func (m *MemoryStore) Scoped(scope string) ReadWriter {
	return scopedStore{parent: m, prefix: scope + ":"}
}

type scopedStore struct {
	parent *MemoryStore
	prefix string
}

func (s scopedStore) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	return s.parent.Get(ctx, s.prefix+key)
}

func (s scopedStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.parent.Set(ctx, s.prefix+key, value)
}

func (s scopedStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.parent.Delete(ctx, s.prefix+key)
}
