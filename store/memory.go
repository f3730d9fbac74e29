package store

import (
	"sync"

	"github.com/pkg/errors"
	"gitlab.com/chronicle/chronicle"
)

// MemoryStore keeps values in a map. Quota, when > 0, caps the total bytes
// held across all keys.
type MemoryStore struct {
	Quota int

	m      sync.RWMutex
	values map[string][]byte
	used   int
}

// NewMemoryStore with an optional quota in bytes
func NewMemoryStore(quota int) *MemoryStore {
	return &MemoryStore{Quota: quota}
}

// Init the map
func (s *MemoryStore) Init() error {
	s.m.Lock()
	defer s.m.Unlock()

	if s.values == nil {
		s.values = make(map[string][]byte)
	}
	return nil
}

// Get a copy of the value under key
func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.m.RLock()
	defer s.m.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

// Set a copy of value under key
func (s *MemoryStore) Set(key string, value []byte) error {
	s.m.Lock()
	defer s.m.Unlock()

	if s.values == nil {
		s.values = make(map[string][]byte)
	}

	used := s.used - len(s.values[key]) + len(value)
	if s.Quota > 0 && used > s.Quota {
		return errors.Wrapf(chronicle.ErrQuotaExceeded, "memory: %d bytes over quota of %d", used-s.Quota, s.Quota)
	}

	s.values[key] = append([]byte(nil), value...)
	s.used = used
	return nil
}

// Close is a no-op, values stay readable
func (s *MemoryStore) Close() error {
	return nil
}
