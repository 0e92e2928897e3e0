package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one line of the ledger (an "asiento" in the journal).
// Debit and Credit are each expected to be non-negative. The model does not
// reject an entry carrying both; enforcement belongs to the CLI layer.
type Entry struct {
	Date        time.Time
	Description string          // "concepto"
	Debit       decimal.Decimal // "debe"
	Credit      decimal.Decimal // "haber"
}
