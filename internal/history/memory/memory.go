package memory

import (
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"textsum/internal/history"
)

// Storage is an in-memory history capped at a fixed number of items. Once
// full, adding an item evicts the oldest one.
type Storage struct {
	mu    sync.RWMutex
	items *lru.Cache[string, history.Item]
}

func NewStorage(capacity int) (*Storage, error) {
	if capacity <= 0 {
		return nil, errors.New("invalid history capacity")
	}
	cache, err := lru.New[string, history.Item](capacity)
	if err != nil {
		return nil, err
	}
	return &Storage{items: cache}, nil
}

func (s *Storage) Add(item history.Item) (history.Item, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.items.Contains(item.ID) {
		return history.Item{}, errors.New("duplicate history item id")
	}
	s.items.Add(item.ID, item)
	return item, nil
}

// List returns the items newest first. Reads use Peek so they never change
// the eviction order.
func (s *Storage) List() []history.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := s.items.Keys()
	out := make([]history.Item, 0, len(keys))
	for _, k := range slices.Backward(keys) {
		if item, ok := s.items.Peek(k); ok {
			out = append(out, item)
		}
	}
	return out
}

func (s *Storage) Get(id string) (history.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items.Peek(id)
	if !ok {
		return history.Item{}, history.ErrNotFound
	}
	return item, nil
}

func (s *Storage) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.items.Remove(id) {
		return history.ErrNotFound
	}
	return nil
}

func (s *Storage) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items.Purge()
}

func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items.Len()
}
