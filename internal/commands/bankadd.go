package commands

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/diario-dev/diario/internal/importer"
	"github.com/diario-dev/diario/internal/ledger"
	"github.com/diario-dev/diario/internal/model"
)

func newBankAddCommand() *cobra.Command {
	var csvPath string
	var id int
	var fechaCol string
	var noInteractive bool

	cmd := &cobra.Command{
		Use:   "bank-add",
		Short: "Create a ledger entry from a bank statement movement",
		RunE: func(cmd *cobra.Command, args []string) error {
			col := model.DateColumn(fechaCol)
			if col != model.DateColumnFecha && col != model.DateColumnFechaValor {
				return fmt.Errorf("invalid --fecha-col %q, want %q or %q",
					fechaCol, model.DateColumnFecha, model.DateColumnFechaValor)
			}

			mov, err := importer.ReadRow(csvPath, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Selected movement:")
			printMovement(out, mov, "  ")

			suggested := importer.Suggest(mov, col)
			entry := suggested
			if !noInteractive {
				entry, err = promptEntry(cmd.InOrStdin(), out, suggested)
				if err != nil {
					return err
				}
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			store, closeStore, err := openStorage(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := ledger.NewService(store).Add(entry); err != nil {
				return err
			}
			audit(cfg, "bank-add", entry.Description)

			fmt.Fprintln(out, "\nEntry created from bank movement:")
			fmt.Fprintf(out, "  Fecha:    %s\n", entry.Date.Format(isoDateFormat))
			fmt.Fprintf(out, "  Concepto: %s\n", entry.Description)
			fmt.Fprintf(out, "  Debe:     %s\n", entry.Debit.StringFixed(2))
			fmt.Fprintf(out, "  Haber:    %s\n", entry.Credit.StringFixed(2))
			fmt.Fprintln(out, "Entry saved.")
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "path to the bank statement CSV (required)")
	_ = cmd.MarkFlagRequired("csv")
	cmd.Flags().IntVar(&id, "id", 0, "movement index, 1-based (required)")
	_ = cmd.MarkFlagRequired("id")
	cmd.Flags().StringVar(&fechaCol, "fecha-col", string(model.DateColumnFecha),
		`date column to use ("Fecha" or "Fecha valor")`)
	cmd.Flags().BoolVar(&noInteractive, "no-interactive", false, "accept suggested values without prompting")

	return cmd
}

// promptEntry confirms or adjusts each suggested field on stdin. Enter keeps
// the suggestion; invalid replacements warn and keep the suggestion too.
// Negative debit/credit values are clamped to zero.
func promptEntry(in io.Reader, out io.Writer, suggested model.Entry) (model.Entry, error) {
	fmt.Fprintln(out, "\nEnter the entry fields (Enter accepts the suggested value):")
	r := bufio.NewReader(in)

	entry := suggested
	fechaTxt := promptWithDefault(r, out, "Fecha (YYYY-MM-DD)", suggested.Date.Format(isoDateFormat))
	if date, err := time.Parse(isoDateFormat, fechaTxt); err != nil {
		fmt.Fprintf(out, "warning: invalid date %q, keeping %s\n", fechaTxt, suggested.Date.Format(isoDateFormat))
	} else {
		entry.Date = date
	}

	entry.Description = promptWithDefault(r, out, "Concepto", suggested.Description)

	entry.Debit = promptAmount(r, out, "Debe", suggested.Debit)
	entry.Credit = promptAmount(r, out, "Haber", suggested.Credit)
	return entry, nil
}

func promptAmount(r *bufio.Reader, out io.Writer, label string, suggested decimal.Decimal) decimal.Decimal {
	txt := promptWithDefault(r, out, label, suggested.StringFixed(2))
	v, err := strconv.ParseFloat(txt, 64)
	if err != nil {
		fmt.Fprintf(out, "warning: invalid %s %q, keeping %s\n", label, txt, suggested.StringFixed(2))
		return suggested
	}
	if v < 0 {
		fmt.Fprintf(out, "warning: %s cannot be negative, forcing to 0.00\n", label)
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func promptWithDefault(r *bufio.Reader, out io.Writer, label, def string) string {
	fmt.Fprintf(out, "%s [%s]: ", label, def)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		// No stdin available, keep the default.
		return def
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}
