package ledger

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diario-dev/diario/internal/model"
)

func TestAdd_AppendsInOrder(t *testing.T) {
	svc := NewService(&MemoryStore{})

	entries := []model.Entry{
		{Date: day(2025, time.September, 1), Description: "first", Debit: dec("10.00"), Credit: dec("0")},
		{Date: day(2025, time.September, 2), Description: "second", Debit: dec("0"), Credit: dec("5.50")},
		{Date: day(2025, time.September, 3), Description: "third", Debit: dec("1.25"), Credit: dec("0")},
	}
	for _, e := range entries {
		require.NoError(t, svc.Add(e))
	}

	got, err := svc.List()
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, e := range entries {
		assert.Equal(t, e.Description, got[i].Description)
		assert.True(t, got[i].Date.Equal(e.Date))
		assert.True(t, got[i].Debit.Equal(e.Debit))
		assert.True(t, got[i].Credit.Equal(e.Credit))
	}
}

func TestList_Empty(t *testing.T) {
	svc := NewService(&MemoryStore{})

	got, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestList_MalformedRecordFails(t *testing.T) {
	store := &MemoryStore{}
	require.NoError(t, store.SaveAll([]Record{
		{Fecha: "2025-09-01", Concepto: "good", Debe: 1},
		{Fecha: "not-a-date", Concepto: "bad"},
	}))
	svc := NewService(store)

	_, err := svc.List()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 2")
}

func TestAdd_PropagatesLoadError(t *testing.T) {
	svc := NewService(&failStore{failLoad: true})

	err := svc.Add(model.Entry{Date: day(2025, time.January, 1), Description: "x"})
	assert.ErrorIs(t, err, errStore)
}

func TestAdd_PropagatesSaveError(t *testing.T) {
	svc := NewService(&failStore{failSave: true})

	err := svc.Add(model.Entry{Date: day(2025, time.January, 1), Description: "x"})
	assert.ErrorIs(t, err, errStore)
}

func TestAdd_ConcurrentCallersLoseNothing(t *testing.T) {
	svc := NewService(&MemoryStore{})

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_ = svc.Add(model.Entry{
				Date:        day(2025, time.June, 1),
				Description: "concurrent",
				Debit:       dec("1.00"),
			})
		}()
	}
	wg.Wait()

	got, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, got, n)
}
