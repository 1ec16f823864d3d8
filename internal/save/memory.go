package save

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// MemoryStore is a thread-safe in-memory Store, the default backend and the
// one tests use. Payloads go through JSON like every other backend so the
// encoding path is always exercised.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (s *MemoryStore) Put(ctx context.Context, slot string, data Data) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode save data: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[slot] = payload
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, slot string) (Data, error) {
	s.mu.RLock()
	payload, ok := s.slots[slot]
	s.mu.RUnlock()
	if !ok {
		return Data{}, ErrSlotNotFound
	}
	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		return Data{}, fmt.Errorf("decode save data: %w", err)
	}
	return data, nil
}

func (s *MemoryStore) Delete(ctx context.Context, slot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.slots[slot]; !ok {
		return ErrSlotNotFound
	}
	delete(s.slots, slot)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	slots := make([]string, 0, len(s.slots))
	for slot := range s.slots {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	return slots, nil
}
