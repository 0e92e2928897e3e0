package ledger

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diario-dev/diario/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "data", "libro.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_EmptyLoad(t *testing.T) {
	store := newTestSQLiteStore(t)

	rows, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)

	rows := []Record{
		{Fecha: "2025-09-01", Concepto: "a", Debe: 10},
		{Fecha: "2025-09-02", Concepto: "b", Haber: 5.5},
	}
	require.NoError(t, store.SaveAll(rows))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestSQLiteStore_ReplacesWhole(t *testing.T) {
	store := newTestSQLiteStore(t)

	require.NoError(t, store.SaveAll([]Record{
		{Fecha: "2025-01-01", Concepto: "one"},
		{Fecha: "2025-01-02", Concepto: "two"},
	}))
	require.NoError(t, store.SaveAll([]Record{{Fecha: "2025-02-01", Concepto: "only"}}))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "only", got[0].Concepto)
}

func TestSQLiteStore_WithService(t *testing.T) {
	store := newTestSQLiteStore(t)
	svc := NewService(store)

	require.NoError(t, svc.Add(model.Entry{
		Date:        day(2025, time.September, 4),
		Description: "luz",
		Credit:      dec("45.20"),
	}))

	got, err := svc.List()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "luz", got[0].Description)
	assert.True(t, got[0].Credit.Equal(dec("45.20")))
}
