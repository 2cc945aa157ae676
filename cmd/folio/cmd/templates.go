package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/as1coder/portfolioBuilder/internal/templateregistry"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the portfolio templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
		for _, t := range templateregistry.All() {
			info := t.Info()
			marker := ""
			if t == templateregistry.Default {
				marker = " (default)"
			}
			fmt.Fprintf(w, "%s%s\t%s\t%s\n", info.ID, marker, info.Name, info.Description)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
