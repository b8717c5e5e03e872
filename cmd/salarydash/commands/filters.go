package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"salarydash/internal/engine"
)

// filterFlags are the per-dimension filter selections shared by the
// stats and export commands.
type filterFlags struct {
	years     []string
	seniority []string
	contract  []string
	size      []string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.years, "years", nil, "accepted years (e.g. 2022,2023)")
	cmd.Flags().StringSliceVar(&f.seniority, "seniority", nil, "accepted seniority levels")
	cmd.Flags().StringSliceVar(&f.contract, "contract", nil, "accepted contract types")
	cmd.Flags().StringSliceVar(&f.size, "size", nil, "accepted company sizes")
}

// selection turns the flags into a Selection. Only flags the user set
// constrain their dimension; an explicitly empty flag selects nothing.
func (f *filterFlags) selection(cmd *cobra.Command) engine.Selection {
	sel := engine.Selection{}
	add := func(flag, dim string, vals []string) {
		if !cmd.Flags().Changed(flag) {
			return
		}
		accepted := []string{}
		for _, v := range vals {
			if v = strings.TrimSpace(v); v != "" {
				accepted = append(accepted, v)
			}
		}
		sel[dim] = accepted
	}
	add("years", engine.DimYear, f.years)
	add("seniority", engine.DimSeniority, f.seniority)
	add("contract", engine.DimContract, f.contract)
	add("size", engine.DimCompanySize, f.size)
	return sel
}
