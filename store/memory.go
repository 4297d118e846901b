package store

import (
	"context"
	"sync"
)

type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(ctx context.Context, key string) (int, bool, error) {
	m.mu.RLock()
	raw, ok := m.values[key]
	m.mu.RUnlock()
	if !ok {
		return 0, false, nil
	}
	v, err := decode(key, raw)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

func (m *Memory) Set(ctx context.Context, key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = encode(value)
	return nil
}

func (m *Memory) Close() error {
	return nil
}
