package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diario-dev/diario/internal/buildinfo"
	"github.com/diario-dev/diario/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "diario",
		Short:   "Minimal personal bookkeeping ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", config.Filename, "path to diario.yaml")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newBankCommand())
	rootCmd.AddCommand(newBankMonthCommand())
	rootCmd.AddCommand(newBankAddCommand())

	return rootCmd
}
