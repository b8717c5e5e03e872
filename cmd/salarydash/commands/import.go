package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"salarydash/internal/engine"
	"salarydash/internal/storage"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Load the CSV dataset and replace the Postgres copy with it",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := engine.LoadCSVFile(cfg.DataPath, cfg.Schema(), cfg.CurrencyRate)
			if err != nil {
				return err
			}

			store, err := storage.Open(cfg.DSN())
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Import(table); err != nil {
				return err
			}
			fmt.Printf("imported %d records into %s\n", table.Len(), cfg.PostgresDB)
			return nil
		},
	}
}
