package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/diario-dev/diario/internal/auditlog"
	"github.com/diario-dev/diario/internal/config"
	"github.com/diario-dev/diario/internal/ledger"
)

// loadConfig reads the file named by --config, falling back to defaults when
// the file does not exist so the tool works without running init first.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default(), nil
	}
	return config.Load(path)
}

// openStorage builds the configured ledger Storage. The returned close func
// must be called when done.
func openStorage(cfg *config.Config) (ledger.Storage, func() error, error) {
	switch cfg.Ledger.Backend {
	case "", config.BackendJSON:
		st, err := ledger.NewJSONStore(cfg.Ledger.Path)
		if err != nil {
			return nil, nil, err
		}
		return st, func() error { return nil }, nil
	case config.BackendSQLite:
		st, err := ledger.NewSQLiteStore(cfg.Ledger.Path)
		if err != nil {
			return nil, nil, err
		}
		return st, st.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown ledger backend %q", cfg.Ledger.Backend)
	}
}

// audit records a mutating operation. Failures only warn: the ledger write
// already succeeded and must not be reported as failed.
func audit(cfg *config.Config, action, details string) {
	if !cfg.Audit.Enabled {
		return
	}
	e := auditlog.Entry{Timestamp: time.Now(), Action: action, Details: details}
	if err := auditlog.Append(cfg.Audit.Dir, []auditlog.Entry{e}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write audit log: %v\n", err)
	}
}

// formatEUR renders an amount as euros for summary lines.
func formatEUR(v decimal.Decimal) string {
	return money.New(v.Shift(2).Round(0).IntPart(), money.EUR).Display()
}
