package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"salarydash/internal/config"
	"salarydash/internal/engine"
	"salarydash/internal/storage"
)

var (
	cfg *config.Config

	dataPath string
	rate     float64
)

func Execute() error {
	root := &cobra.Command{
		Use:   "salarydash",
		Short: "Salary analytics backend and CLI",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg = config.Load()
			if dataPath != "" {
				cfg.DataPath = dataPath
			}
			if rate > 0 {
				cfg.CurrencyRate = rate
			}
		},
	}

	root.PersistentFlags().StringVar(&dataPath, "data", "", "path to the salary CSV (overrides DATA_PATH)")
	root.PersistentFlags().Float64Var(&rate, "rate", 0, "linear currency conversion applied at load (overrides CURRENCY_RATE)")

	root.AddCommand(serveCmd(), statsCmd(), exportCmd(), importCmd())
	return root.Execute()
}

// loadTable resolves the configured data source into an in-memory table.
func loadTable() (*engine.Table, error) {
	switch cfg.DataSource {
	case "postgres":
		store, err := storage.Open(cfg.DSN())
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.FetchTable()
	case "csv":
		return engine.LoadCSVFile(cfg.DataPath, cfg.Schema(), cfg.CurrencyRate)
	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.DataSource)
	}
}
