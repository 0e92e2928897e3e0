package ledger

// MemoryStore is an in-memory Storage, mainly for tests.
type MemoryStore struct {
	rows []Record
}

// Load returns a copy of the stored records.
func (s *MemoryStore) Load() ([]Record, error) {
	out := make([]Record, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

// SaveAll replaces the stored records with a copy of rows.
func (s *MemoryStore) SaveAll(rows []Record) error {
	s.rows = make([]Record, len(rows))
	copy(s.rows, rows)
	return nil
}
