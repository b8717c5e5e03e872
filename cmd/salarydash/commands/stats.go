package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"salarydash/internal/engine"
)

func statsCmd() *cobra.Command {
	var flags filterFlags
	var topN int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print KPIs and top roles for a filter selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable()
			if err != nil {
				return err
			}

			v := engine.Filter(table, flags.selection(cmd))
			s := engine.Summarize(v)

			fmt.Printf("Records:        %d\n", s.Records)
			fmt.Printf("Mean salary:    %.0f\n", s.MeanSalary)
			fmt.Printf("Median salary:  %.0f\n", s.MedianSalary)
			fmt.Printf("Max salary:     %.0f\n", s.MaxSalary)
			fmt.Printf("Top role:       %s\n", s.TopRole)

			if g := engine.YearOverYearGrowth(v); g.Defined {
				fmt.Printf("Yearly growth:  %.1f%%\n", g.Percent)
			} else {
				fmt.Println("Yearly growth:  no trend (fewer than 2 years)")
			}

			if top := engine.TopN(v, engine.DimRole, topN, false); len(top) > 0 {
				fmt.Printf("\nTop %d roles by mean salary:\n", len(top))
				for i, g := range top {
					fmt.Printf("%2d. %-40s %10.0f (%d records)\n", i+1, g.Group, g.Mean, g.Count)
				}
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&topN, "top", 10, "number of top roles to list")
	return cmd
}
