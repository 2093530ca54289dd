// Package kv defines the durable key/value boundary the task store persists to.
// Backends live under internal/backend.
package kv

import (
	"context"
	"errors"
	"strings"
)

// Store is a durable key/value store.
type Store interface {
	// Get returns the value stored under key.
	// ok is false if nothing has been stored under key.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Put replaces the value stored under key. A successful Put is durable:
	// a later Get, from this or another process, sees the new value in full.
	Put(ctx context.Context, key string, value []byte) error

	// Close releases resources held by the store.
	Close() error
}

// ErrInvalidKey is returned for keys a backend cannot address.
var ErrInvalidKey = errors.New("invalid key")

// ValidKey reports whether key is usable by every backend: non-empty, made of
// letters, digits, '-', '_' and '.', and not starting with '.'.
func ValidKey(key string) bool {
	if key == "" || strings.HasPrefix(key, ".") {
		return false
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}
