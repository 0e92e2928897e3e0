package ledger

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// failStore fails Load or SaveAll on demand.
type failStore struct {
	rows     []Record
	failLoad bool
	failSave bool
}

var errStore = errors.New("store unavailable")

func (s *failStore) Load() ([]Record, error) {
	if s.failLoad {
		return nil, errStore
	}
	return s.rows, nil
}

func (s *failStore) SaveAll(rows []Record) error {
	if s.failSave {
		return errStore
	}
	s.rows = rows
	return nil
}
