// Package kv provides durable key-value storage for small JSON documents.
package kv

import (
	"context"
)

// Store persists JSON-encoded values. Entries never expire.
type Store interface {
	// Get decodes the value at key into value. It reports false when the key is absent.
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	Close() error
}
