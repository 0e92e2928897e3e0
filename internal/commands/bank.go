package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/diario-dev/diario/internal/importer"
	"github.com/diario-dev/diario/internal/model"
)

func newBankCommand() *cobra.Command {
	var csvPath string
	var id int
	var raw bool

	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Show one bank statement movement by index (1-based)",
		RunE: func(cmd *cobra.Command, args []string) error {
			mov, err := importer.ReadRow(csvPath, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if raw {
				fmt.Fprintf(out, "%+v\n", mov)
				return nil
			}
			printMovement(out, mov, "")
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "path to the bank statement CSV (required)")
	_ = cmd.MarkFlagRequired("csv")
	cmd.Flags().IntVar(&id, "id", 0, "movement index, 1-based (required)")
	_ = cmd.MarkFlagRequired("id")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the raw movement")

	return cmd
}

func printMovement(out io.Writer, mov model.BankMovement, indent string) {
	fmt.Fprintf(out, "%sFecha:        %s\n", indent, mov.Date)
	fmt.Fprintf(out, "%sFecha valor:  %s\n", indent, mov.ValueDate)
	fmt.Fprintf(out, "%sConcepto:     %s\n", indent, mov.Description)
	fmt.Fprintf(out, "%sImporte:      %s\n", indent, mov.Amount)
	fmt.Fprintf(out, "%sSaldo:        %s\n", indent, mov.BalanceAfter)
}
