package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tsawler/deckgen/deck"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the presentation variants",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "VARIANT\tFILE")
		for _, v := range deck.Variants() {
			fmt.Fprintf(tw, "%s\t%s\n", v, v.FileName())
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(variantsCmd)
}
