package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"salarydash/internal/engine"
)

func exportCmd() *cobra.Command {
	var flags filterFlags
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write filtered rows as CSV to a file or stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable()
			if err != nil {
				return err
			}
			v := engine.Filter(table, flags.selection(cmd))

			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			if err := engine.WriteCSV(v, cfg.Schema(), w); err != nil {
				return err
			}
			if out != "" {
				fmt.Fprintf(os.Stderr, "wrote %d rows to %s\n", v.Len(), out)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}
