package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diario-dev/diario/internal/importer"
)

func newBankMonthCommand() *cobra.Command {
	var csvPath string
	var month string
	var raw bool

	cmd := &cobra.Command{
		Use:   "bank-month",
		Short: "List bank statement movements for a month (YYYY-MM)",
		RunE: func(cmd *cobra.Command, args []string) error {
			movs, err := importer.ReadAll(csvPath)
			if err != nil {
				return err
			}
			summary, err := importer.FilterMonth(movs, month)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if summary.Count == 0 {
				fmt.Fprintf(out, "No movements for %s.\n", month)
				return nil
			}
			if raw {
				for _, m := range summary.Movements {
					fmt.Fprintf(out, "%+v\n", m)
				}
				return nil
			}

			fmt.Fprintf(out, "Movements %s\n", month)
			fmt.Fprintln(out, strings.Repeat("-", 74))
			for _, m := range summary.Movements {
				fmt.Fprintf(out, "%s | %-40s | Importe:%10s | Saldo:%s\n",
					m.Date, m.Description,
					importer.ParseImporte(m.Amount).StringFixed(2), m.BalanceAfter)
			}
			fmt.Fprintln(out, strings.Repeat("-", 74))
			fmt.Fprintf(out, "%-55s %10d\n", "MOVEMENTS", summary.Count)
			fmt.Fprintf(out, "%-55s %10s\n", "MONTH TOTAL", formatEUR(summary.Total))
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "path to the bank statement CSV (required)")
	_ = cmd.MarkFlagRequired("csv")
	cmd.Flags().StringVar(&month, "month", "", "month to filter, YYYY-MM (required)")
	_ = cmd.MarkFlagRequired("month")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the raw movements")

	return cmd
}
