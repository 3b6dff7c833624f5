package storage

import "sync"

// MemorySlot keeps the value in memory. Used by tests and as a stand-in when
// durability is disabled.
type MemorySlot struct {
	mu    sync.Mutex
	value []byte
	saves int
}

// NewMemorySlot creates an empty in-memory slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

func (m *MemorySlot) Load() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.value == nil {
		return nil, nil
	}
	return append([]byte(nil), m.value...), nil
}

func (m *MemorySlot) Save(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = append([]byte(nil), data...)
	m.saves++
	return nil
}

// Saves reports how many times Save has been called.
func (m *MemorySlot) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
