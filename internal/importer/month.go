package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/diario-dev/diario/internal/model"
)

// monthFormat is the target month layout, e.g. "2025-09".
const monthFormat = "2006-01"

// MonthSummary holds the movements of one calendar month with their count
// and summed amount.
type MonthSummary struct {
	Movements []model.BankMovement
	Count     int
	Total     decimal.Decimal
}

// FilterMonth keeps the movements whose transaction date falls in the given
// YYYY-MM month, preserving order. Movements with an empty or unparsable
// transaction date are silently excluded.
func FilterMonth(movs []model.BankMovement, month string) (MonthSummary, error) {
	target, err := time.Parse(monthFormat, month)
	if err != nil {
		return MonthSummary{}, fmt.Errorf("invalid month %q, want YYYY-MM: %w", month, err)
	}

	summary := MonthSummary{Total: decimal.Zero}
	for _, m := range movs {
		txt := strings.TrimSpace(m.Date)
		if txt == "" {
			continue
		}
		d, err := ParseFecha(txt)
		if err != nil {
			continue
		}
		if d.Year() != target.Year() || d.Month() != target.Month() {
			continue
		}
		summary.Movements = append(summary.Movements, m)
		summary.Count++
		summary.Total = summary.Total.Add(ParseImporte(m.Amount))
	}
	return summary, nil
}
