package interfaces

import (
	"context"

	"github.com/secmon-lab/coachnote/pkg/domain/types"
)

// Repository is the device store: a flat key/value space holding serialized
// documents, scoped to one device.
type Repository interface {
	// Get returns the stored value, or nil with no error when key is absent
	Get(ctx context.Context, key types.StorageKey) ([]byte, error)

	// Put writes value under key, replacing any previous value
	Put(ctx context.Context, key types.StorageKey, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key types.StorageKey) error

	Close() error
}
