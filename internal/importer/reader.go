package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/diario-dev/diario/internal/model"
)

// numColumns is the number of trailing columns carrying movement data:
// Fecha, Fecha valor, Concepto, Importe, Saldo Posterior. Bank exports
// prepend a blank column and a banner cell; only the rightmost five count.
const numColumns = 5

// RowIndexError reports a 1-based movement index outside the available range.
type RowIndexError struct {
	Index int
	Total int
}

func (e *RowIndexError) Error() string {
	return fmt.Sprintf("row index %d out of range: statement has %d rows", e.Index, e.Total)
}

// ReadAll returns every usable movement in the statement, in file order.
func ReadAll(path string) ([]model.BankMovement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	movs, err := readMovements(f)
	if err != nil {
		return nil, fmt.Errorf("reading statement %s: %w", path, err)
	}
	return movs, nil
}

// ReadRow returns the n-th movement using 1-based indexing.
func ReadRow(path string, n int) (model.BankMovement, error) {
	movs, err := ReadAll(path)
	if err != nil {
		return model.BankMovement{}, err
	}
	if n < 1 || n > len(movs) {
		return model.BankMovement{}, &RowIndexError{Index: n, Total: len(movs)}
	}
	return movs[n-1], nil
}

func readMovements(r io.Reader) ([]model.BankMovement, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty statement: missing header line")
	}

	// The first line is the header. Rows with fewer than five fields are
	// blank or corrupt and are skipped.
	var movs []model.BankMovement
	for _, rec := range records[1:] {
		if len(rec) < numColumns {
			continue
		}
		tail := rec[len(rec)-numColumns:]
		movs = append(movs, model.BankMovement{
			Date:         tail[0],
			ValueDate:    tail[1],
			Description:  tail[2],
			Amount:       tail[3],
			BalanceAfter: tail[4],
		})
	}
	return movs, nil
}
