package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/diario-dev/diario/internal/model"
)

// dateFormat is the ISO-8601 date layout used in the ledger file.
const dateFormat = "2006-01-02"

// Record is the persisted form of an Entry: one object of the JSON array.
type Record struct {
	Fecha    string  `json:"fecha"`
	Concepto string  `json:"concepto"`
	Debe     float64 `json:"debe"`
	Haber    float64 `json:"haber"`
}

// MarshalEntry converts an Entry to its persisted Record.
func MarshalEntry(e model.Entry) Record {
	return Record{
		Fecha:    e.Date.Format(dateFormat),
		Concepto: e.Description,
		Debe:     e.Debit.InexactFloat64(),
		Haber:    e.Credit.InexactFloat64(),
	}
}

// UnmarshalEntry converts a Record back to an Entry. It fails when the date
// is not an ISO-8601 calendar date.
func UnmarshalEntry(r Record) (model.Entry, error) {
	date, err := time.Parse(dateFormat, r.Fecha)
	if err != nil {
		return model.Entry{}, fmt.Errorf("parsing date %q: %w", r.Fecha, err)
	}
	return model.Entry{
		Date:        date,
		Description: r.Concepto,
		Debit:       decimal.NewFromFloat(r.Debe),
		Credit:      decimal.NewFromFloat(r.Haber),
	}, nil
}
