package store

import "sync"

// MemoryStore is an in-process Store used by tests. It keeps each collection
// as the same serialized value a real backend would hold, so envelope and
// corruption behavior match BadgerStore.
type MemoryStore struct {
	mu        sync.RWMutex
	data      map[string][]byte
	flags     map[string]bool
	available bool
}

// NewMemoryStore creates an empty, available in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data:      make(map[string][]byte),
		flags:     make(map[string]bool),
		available: true,
	}
}

// SetAvailable toggles backend availability so tests can exercise the
// degraded paths.
func (s *MemoryStore) SetAvailable(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.available = v
}

// SetRaw replaces a collection's serialized value directly, bypassing the
// envelope. Tests use it to plant corrupt or legacy-format state.
func (s *MemoryStore) SetRaw(collection string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[collection] = value
}

func (s *MemoryStore) Load(collection string, records any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.available {
		return ErrUnavailable
	}
	data, ok := s.data[collection]
	if !ok {
		return nil
	}
	decodeCollection(data, records)
	return nil
}

func (s *MemoryStore) SaveAll(collection string, records any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.available {
		return ErrUnavailable
	}
	data, err := encodeCollection(records)
	if err != nil {
		return err
	}
	s.data[collection] = data
	return nil
}

func (s *MemoryStore) LoadFlag(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.available {
		return false
	}
	return s.flags[name]
}

func (s *MemoryStore) SaveFlag(name string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.available {
		return ErrUnavailable
	}
	s.flags[name] = value
	return nil
}
