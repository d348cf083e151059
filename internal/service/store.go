package service

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/kegliz/syrecgo/circuit"
)

// Store keys synthesized circuits by a generated id, the way the
// teacher's qservice.ProgramStore keys in-flight programs - an
// in-memory map guarded by a RWMutex, since nothing here needs to
// survive a process restart (spec.md §6.5: no persisted state).
type Store interface {
	Save(c *circuit.Circuit) string
	Get(id string) (*circuit.Circuit, error)
}

type memStore struct {
	circuits map[string]*circuit.Circuit
	sync.RWMutex
}

// NewMemStore creates an empty in-memory Store.
func NewMemStore() Store {
	return &memStore{circuits: make(map[string]*circuit.Circuit)}
}

func (s *memStore) Save(c *circuit.Circuit) string {
	id := uuid.New().String()
	s.Lock()
	s.circuits[id] = c
	s.Unlock()
	return id
}

func (s *memStore) Get(id string) (*circuit.Circuit, error) {
	s.RLock()
	c, ok := s.circuits[id]
	s.RUnlock()
	if !ok {
		return nil, fmt.Errorf("service: no circuit with id %s", id)
	}
	return c, nil
}
