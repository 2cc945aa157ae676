package cmd

import (
	"fmt"
	"text/tabwriter"

	// Declares the application events.
	_ "github.com/as1coder/portfolioBuilder/internal/events"
	"github.com/as1coder/portfolioBuilder/internal/pubsub"
	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the events published on the bus",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "EVENT\tDESCRIPTION")
		for _, e := range pubsub.Events() {
			fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Description)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
}
