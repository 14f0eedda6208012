package storage

import "sync"

// Memory is an in-process key/value save area. Hosts fall back to it when
// the on-disk save area cannot be opened; nothing survives the process.
type Memory struct {
	mu    sync.Mutex
	items map[string][]byte
}

// NewMemory returns an empty save area.
func NewMemory() *Memory {
	return &Memory{items: make(map[string][]byte)}
}

// LoadItem returns a copy of the stored bytes, or nil.
func (m *Memory) LoadItem(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.items[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

// SaveItem stores a copy of data under key.
func (m *Memory) SaveItem(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = append([]byte(nil), data...)
	return nil
}
