package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// fechaFormat accepts both "4/9/2025" and "04/09/2025".
const fechaFormat = "2/1/2006"

// ParseFecha parses a DD/MM/YYYY statement date. Single-digit day and month
// are accepted; any other shape is an error.
func ParseFecha(s string) (time.Time, error) {
	d, err := time.Parse(fechaFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want DD/MM/YYYY: %w", s, err)
	}
	return d, nil
}

// ParseImporte converts a statement amount using comma as decimal separator
// and dot as thousands separator ("1.234,56" -> 1234.56). Anything that does
// not parse maps to zero rather than failing: informational rows leave the
// column blank and downstream aggregation treats them as no-ops.
func ParseImporte(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return v
}
