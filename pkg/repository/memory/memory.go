package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/secmon-lab/coachnote/pkg/domain/interfaces"
	"github.com/secmon-lab/coachnote/pkg/domain/types"
)

// Memory keeps device entries in process memory. Values are copied on the way
// in and out so callers never share buffers with the store.
type Memory struct {
	mu      sync.RWMutex
	entries map[types.StorageKey][]byte
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		entries: make(map[types.StorageKey][]byte),
	}
}

func (m *Memory) Get(ctx context.Context, key types.StorageKey) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.entries[key]
	if !ok {
		return nil, nil
	}
	return slices.Clone(value), nil
}

func (m *Memory) Put(ctx context.Context, key types.StorageKey, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = slices.Clone(value)
	return nil
}

func (m *Memory) Delete(ctx context.Context, key types.StorageKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}

func (m *Memory) Close() error {
	return nil
}
