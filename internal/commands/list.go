package commands

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/diario-dev/diario/internal/ledger"
)

func newListCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all ledger entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			store, closeStore, err := openStorage(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			entries, err := ledger.NewService(store).List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if raw {
				for _, e := range entries {
					fmt.Fprintf(out, "%+v\n", e)
				}
				return nil
			}

			totalDebe := decimal.Zero
			totalHaber := decimal.Zero
			for _, e := range entries {
				totalDebe = totalDebe.Add(e.Debit)
				totalHaber = totalHaber.Add(e.Credit)
				fmt.Fprintf(out, "%s | %-30s | D:%10s | H:%10s\n",
					e.Date.Format(isoDateFormat), e.Description,
					e.Debit.StringFixed(2), e.Credit.StringFixed(2))
			}
			fmt.Fprintln(out, strings.Repeat("-", 74))
			fmt.Fprintf(out, "%-43s D:%10s | H:%10s\n", "TOTAL",
				totalDebe.StringFixed(2), totalHaber.StringFixed(2))
			fmt.Fprintf(out, "%-43s %s\n", "BALANCE", formatEUR(totalDebe.Sub(totalHaber)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print raw entries")

	return cmd
}
