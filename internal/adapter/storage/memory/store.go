package memory

import (
	"context"
	"sync"

	"github.com/its-jojoo/kontakclip/internal/adapter/storage"
	"github.com/its-jojoo/kontakclip/internal/core"
)

type Store struct {
	mu   sync.RWMutex
	byID map[string]core.Contact
	list []string // parse order
}

func New() *Store {
	return &Store{byID: make(map[string]core.Contact)}
}

func (s *Store) Replace(ctx context.Context, batch []core.Contact) error {
	_ = ctx

	byID := make(map[string]core.Contact, len(batch))
	list := make([]string, 0, len(batch))
	for _, c := range batch {
		if _, dup := byID[c.ID]; !dup {
			list = append(list, c.ID)
		}
		byID[c.ID] = c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID = byID
	s.list = list
	return nil
}

func (s *Store) List(ctx context.Context) ([]core.Contact, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Contact, 0, len(s.list))
	for _, id := range s.list {
		out = append(out, s.byID[id])
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, id string) (core.Contact, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byID[id]
	if !ok {
		return core.Contact{}, storage.ErrNotFound
	}
	return c, nil
}

func (s *Store) Put(ctx context.Context, c core.Contact) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[c.ID]; !ok {
		return storage.ErrNotFound
	}
	s.byID[c.ID] = c
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.byID, id)

	for i := range s.list {
		if s.list[i] == id {
			s.list = append(s.list[:i], s.list[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID), nil
}
