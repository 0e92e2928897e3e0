package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/diario-dev/diario/internal/model"
)

func TestSuggest_NegativeAmountBecomesCredit(t *testing.T) {
	mov := model.BankMovement{
		Date:        "04/09/2025",
		ValueDate:   "05/09/2025",
		Description: " COMPRA SUPERMERCADO ",
		Amount:      "-10,00",
	}

	e := Suggest(mov, model.DateColumnFecha)
	assert.True(t, e.Debit.IsZero())
	assert.True(t, e.Credit.Equal(dec("10")))
	assert.Equal(t, "COMPRA SUPERMERCADO", e.Description)
	assert.Equal(t, 4, e.Date.Day())
}

func TestSuggest_PositiveAmountBecomesDebit(t *testing.T) {
	mov := model.BankMovement{Date: "15/09/2025", Description: "NOMINA", Amount: "10,00"}

	e := Suggest(mov, model.DateColumnFecha)
	assert.True(t, e.Debit.Equal(dec("10")))
	assert.True(t, e.Credit.IsZero())
}

func TestSuggest_ZeroAmountIsDebit(t *testing.T) {
	mov := model.BankMovement{Date: "15/09/2025", Amount: "abc"}

	e := Suggest(mov, model.DateColumnFecha)
	assert.True(t, e.Debit.IsZero())
	assert.True(t, e.Credit.IsZero())
}

func TestSuggest_ValueDateColumn(t *testing.T) {
	mov := model.BankMovement{Date: "04/09/2025", ValueDate: "05/09/2025", Amount: "1,00"}

	e := Suggest(mov, model.DateColumnFechaValor)
	assert.Equal(t, 5, e.Date.Day())
}

func TestSuggest_UnparsableDateFallsBackToToday(t *testing.T) {
	restore := now
	defer func() { now = restore }()
	now = func() time.Time {
		return time.Date(2025, time.November, 20, 13, 45, 0, 0, time.UTC)
	}

	mov := model.BankMovement{Date: "??", Amount: "1,00"}

	e := Suggest(mov, model.DateColumnFecha)
	want := time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC)
	assert.True(t, e.Date.Equal(want), "date %s", e.Date)
}
