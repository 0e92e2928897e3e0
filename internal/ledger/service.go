package ledger

import (
	"fmt"
	"sync"

	"github.com/diario-dev/diario/internal/model"
)

// Service exposes the append-only ledger operations over a Storage.
type Service struct {
	mu    sync.Mutex // serializes the read-modify-write in Add
	store Storage
}

// NewService creates a ledger Service.
func NewService(store Storage) *Service {
	return &Service{store: store}
}

// Add appends one entry to the ledger: the whole sequence is loaded,
// extended in memory and saved back. The mutex keeps two in-process callers
// from losing an entry to the read-modify-write race; cross-process writers
// are not defended against.
func (s *Service) Add(e model.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.store.Load()
	if err != nil {
		return err
	}
	rows = append(rows, MarshalEntry(e))
	return s.store.SaveAll(rows)
}

// List returns all entries in insertion order. A single malformed record
// fails the whole call.
func (s *Service) List() ([]model.Entry, error) {
	rows, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	entries := make([]model.Entry, 0, len(rows))
	for i, r := range rows {
		e, err := UnmarshalEntry(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
