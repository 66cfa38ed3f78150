// Package threshold holds the durable client-side copy of the stock warning threshold.
//
// There is exactly one writer, the dashboard's SetThreshold after the server has
// accepted a value. Readers get the last written value, or nothing.
package threshold

import (
	"context"
	"errors"
	"sync"
)

// Key is the name the value is stored under in every backend.
const Key = "stockThreshold"

// DefaultValue applies when nothing has been stored yet.
const DefaultValue = 5

// ErrInvalidValue is returned when a stored value cannot be read as an integer.
var ErrInvalidValue = errors.New("threshold: stored value is not an integer")

// Store is the get/set contract of the threshold cache.
type Store interface {
	// Get returns the stored value and whether one exists.
	Get(ctx context.Context) (int, bool, error)
	Set(ctx context.Context, value int) error
}

// Resolve returns the stored value or DefaultValue when none is stored.
func Resolve(ctx context.Context, s Store) (int, error) {
	v, ok, err := s.Get(ctx)
	if err != nil {
		return DefaultValue, err
	}
	if !ok {
		return DefaultValue, nil
	}
	return v, nil
}

// MemoryStore keeps the value for the life of the process.
type MemoryStore struct {
	mu    sync.RWMutex
	value int
	set   bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get(context.Context) (int, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.value, m.set, nil
}

func (m *MemoryStore) Set(_ context.Context, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value, m.set = value, true
	return nil
}
