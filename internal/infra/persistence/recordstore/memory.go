package recordstore

import (
	"bytes"
	"context"
	"sync"
)

// Memory keeps collections in process memory. It is the backend for tests and
// for throwaway single-process runs.
type Memory struct {
	mu     sync.RWMutex
	values map[Key][]byte
}

func NewMemory() *Memory {
	return &Memory{values: make(map[Key][]byte)}
}

func (m *Memory) Load(_ context.Context, key Key) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(v), true, nil
}

func (m *Memory) Save(_ context.Context, key Key, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = bytes.Clone(value)
	return nil
}

func (m *Memory) ReplaceAll(_ context.Context, values map[Key][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range values {
		m.values[k] = bytes.Clone(v)
	}
	return nil
}

func (m *Memory) Ping(context.Context) error { return nil }

func (m *Memory) Close() error { return nil }
