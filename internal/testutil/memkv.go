// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"ltask/internal/kv"
)

// MemKV is an in-memory implementation of kv.Store for testing.
type MemKV struct {
	mu     sync.RWMutex
	values map[string][]byte
	puts   int
	closed bool

	// Error injection for testing
	GetErr   error
	PutErr   error
	CloseErr error
}

var _ kv.Store = (*MemKV)(nil)

// NewMemKV creates an empty MemKV.
func NewMemKV() *MemKV {
	return &MemKV{values: make(map[string][]byte)}
}

// Set stores a raw value without counting it as a Put.
func (m *MemKV) Set(key string, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = []byte(value)
}

// Value returns the raw value stored under key.
func (m *MemKV) Value(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return string(v), ok
}

// Puts returns how many successful Put calls were made.
func (m *MemKV) Puts() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.puts
}

// Closed reports whether Close was called.
func (m *MemKV) Closed() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.closed
}

// Get implements kv.Store.
func (m *MemKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if m.GetErr != nil {
		return nil, false, m.GetErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Put implements kv.Store.
func (m *MemKV) Put(ctx context.Context, key string, value []byte) error {
	if m.PutErr != nil {
		return m.PutErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.values[key] = v
	m.puts++
	return nil
}

// Close implements kv.Store.
func (m *MemKV) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return m.CloseErr
}
