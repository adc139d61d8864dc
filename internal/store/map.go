package store

import "runtime/debug"

// MapBackend keeps word frequencies in memory
type MapBackend struct {
	storage map[string]float64
}

func NewMapBackend() *MapBackend {
	return &MapBackend{storage: map[string]float64{}}
}

func (m *MapBackend) Add(word string, value float64) error {
	m.storage[word] += value
	return nil
}

func (m *MapBackend) Get(word string) (float64, bool) {
	v, ok := m.storage[word]
	return v, ok
}

func (m *MapBackend) Len() int {
	return len(m.storage)
}

func (m *MapBackend) Cleanup() {
	m.storage = nil
	// large corpora leave a lot of freed memory behind, hand it back to the os at once
	debug.FreeOSMemory()
}
