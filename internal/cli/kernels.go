package cli

import (
	"github.com/KelvyHsu/bake/internal/config"
	"github.com/KelvyHsu/bake/kern"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func (a *app) newKernelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "kernels",
		Aliases: []string{"ls"},
		Short:   "List the available kernel families",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			type entry struct {
				Name   string `json:"name"`
				Metric string `json:"metric"`
			}
			var entries []entry
			for _, name := range kern.Names() {
				k, err := kern.Lookup(name)
				if err != nil {
					return err
				}
				entries = append(entries, entry{Name: name, Metric: k.Metric().String()})
			}

			w := cmd.OutOrStdout()
			if a.cfg.Output.Format == config.FormatJSON {
				return writeJSON(w, entries)
			}
			table := newTable(w, []string{"NAME", "METRIC"})
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			for _, e := range entries {
				table.Append([]string{e.Name, e.Metric})
			}
			table.Render()
			return nil
		},
	}
}
