package importer

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/diario-dev/diario/internal/model"
)

// now is swapped out in tests.
var now = time.Now

// Suggest derives a ledger entry from a bank movement. The chosen date
// column supplies the entry date, falling back to today when it does not
// parse. A negative Importe becomes a credit, a non-negative one a debit.
// These are suggestions only: the caller may override any field and is
// responsible for rejecting negative debit/credit values.
func Suggest(m model.BankMovement, col model.DateColumn) model.Entry {
	dateTxt := m.Date
	if col == model.DateColumnFechaValor {
		dateTxt = m.ValueDate
	}
	date, err := ParseFecha(dateTxt)
	if err != nil {
		t := now()
		date = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}

	entry := model.Entry{
		Date:        date,
		Description: strings.TrimSpace(m.Description),
		Debit:       decimal.Zero,
		Credit:      decimal.Zero,
	}
	amount := ParseImporte(m.Amount)
	if amount.IsNegative() {
		entry.Credit = amount.Abs()
	} else {
		entry.Debit = amount
	}
	return entry
}
