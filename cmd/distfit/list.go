package main

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/probviz/probdist/dist"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the distribution families",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetAutoFormatHeaders(false)
			table.SetAutoWrapText(false)
			table.SetHeader([]string{"Family", "Kind", "Parameters", "Fit"})
			for _, f := range dist.All() {
				kind := "continuous"
				if _, ok := f.(dist.Discrete); ok {
					kind = "discrete"
				}
				var params []string
				for _, p := range f.Params() {
					params = append(params, p.String())
				}
				fits := "no"
				if dist.CanFit(f) {
					fits = "yes"
				}
				table.Append([]string{f.Name(), kind, strings.Join(params, ", "), fits})
			}
			table.Render()
		},
	}
}
