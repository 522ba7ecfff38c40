package kv

import (
	"context"
	"sync"
)

// Memory is an in-process Store used by tests.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string

	// WriteErr, when set, is returned by Set/Delete. FailKey narrows the
	// failure to writes touching that one key; empty fails every write.
	// Tests use the pair to exercise the write-failure paths.
	WriteErr error
	FailKey  string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	return val, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	if m.failsWrite(key) {
		return m.WriteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		if m.failsWrite(k) {
			return m.WriteErr
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *Memory) Close() error { return nil }

func (m *Memory) failsWrite(key string) bool {
	return m.WriteErr != nil && (m.FailKey == "" || m.FailKey == key)
}
