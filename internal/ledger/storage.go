package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Storage is a durable ordered sequence of ledger records. SaveAll replaces
// the whole sequence; append semantics live in Service.
type Storage interface {
	Load() ([]Record, error)
	SaveAll(rows []Record) error
}

// JSONStore persists records as a single JSON array in one file.
type JSONStore struct {
	path string
}

// NewJSONStore creates the parent directory if needed and initializes the
// file to an empty array when it does not exist yet.
func NewJSONStore(path string) (*JSONStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating ledger dir: %w", err)
		}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]\n"), 0o644); err != nil {
			return nil, fmt.Errorf("initializing ledger %s: %w", path, err)
		}
	}
	return &JSONStore{path: path}, nil
}

// Load reads and decodes the whole array. Malformed content is fatal.
func (s *JSONStore) Load() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", s.path, err)
	}
	var rows []Record
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decoding ledger %s: %w", s.path, err)
	}
	return rows, nil
}

// SaveAll replaces the persisted sequence with rows, in order. The array is
// written to a temp file in the same directory and renamed over the old one,
// so a reader never sees a partially written ledger.
func (s *JSONStore) SaveAll(rows []Record) error {
	if rows == nil {
		rows = []Record{}
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".ledger-*.json")
	if err != nil {
		return fmt.Errorf("creating temp ledger: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp ledger: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing ledger %s: %w", s.path, err)
	}
	return nil
}
