package kv

import (
	"context"
	"errors"
)

// KV is the key-value persistence contract used for cart snapshots.
// Both operations are fallible; callers degrade to "absent/ignored" on error.
type KV interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Store(ctx context.Context, key string, blob []byte) error
}

var ErrNotFound = errors.New("key not found")
