// internal/infrastructure/storage/store.go
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no record exists for the key.
var ErrNotFound = errors.New("storage: key not found")

// Store is a keyed blob store for per-session JSON records. Implementations
// must be safe for concurrent use; callers treat writes as last-write-wins.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
