package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/diario-dev/diario/internal/ledger"
	"github.com/diario-dev/diario/internal/model"
)

const isoDateFormat = "2006-01-02"

func newAddCommand() *cobra.Command {
	var fecha string
	var concepto string
	var debe float64
	var haber float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a ledger entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := time.Parse(isoDateFormat, fecha)
			if err != nil {
				return fmt.Errorf("invalid --fecha %q, want YYYY-MM-DD: %w", fecha, err)
			}
			if debe < 0 || haber < 0 {
				return fmt.Errorf("--debe and --haber must be non-negative")
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

			e := model.Entry{
				Date:        date,
				Description: concepto,
				Debit:       decimal.NewFromFloat(debe),
				Credit:      decimal.NewFromFloat(haber),
			}
			if err := ledger.NewService(store).Add(e); err != nil {
				return err
			}
			audit(cfg, "add", concepto)
			fmt.Fprintln(cmd.OutOrStdout(), "Entry saved.")
			return nil
		},
	}

	cmd.Flags().StringVar(&fecha, "fecha", time.Now().Format(isoDateFormat), "entry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&concepto, "concepto", "", "entry description (required)")
	_ = cmd.MarkFlagRequired("concepto")
	cmd.Flags().Float64Var(&debe, "debe", 0, "debit amount")
	cmd.Flags().Float64Var(&haber, "haber", 0, "credit amount")

	return cmd
}
