package ledger

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS asientos (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	fecha    TEXT NOT NULL,
	concepto TEXT NOT NULL,
	debe     REAL NOT NULL,
	haber    REAL NOT NULL
)`

// SQLiteStore persists records in a single-table SQLite database. It keeps
// the same whole-sequence replace contract as JSONStore.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path and ensures
// the schema exists. The parent directory is created like JSONStore does.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating ledger dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger db %s: %w", path, err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing ledger db: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Load returns all records in insertion order.
func (s *SQLiteStore) Load() ([]Record, error) {
	rows, err := s.db.Query("SELECT fecha, concepto, debe, haber FROM asientos ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying ledger db: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Fecha, &r.Concepto, &r.Debe, &r.Haber); err != nil {
			return nil, fmt.Errorf("scanning ledger row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading ledger db: %w", err)
	}
	return records, nil
}

// SaveAll replaces the table contents with records, in order, inside one
// transaction.
func (s *SQLiteStore) SaveAll(records []Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("starting ledger tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM asientos"); err != nil {
		return fmt.Errorf("clearing ledger db: %w", err)
	}
	stmt, err := tx.Prepare("INSERT INTO asientos (fecha, concepto, debe, haber) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing ledger insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.Exec(r.Fecha, r.Concepto, r.Debe, r.Haber); err != nil {
			return fmt.Errorf("inserting record %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing ledger tx: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
