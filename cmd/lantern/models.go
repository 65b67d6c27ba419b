package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lanternml/lantern/provider/openairesponses"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models served by the Responses endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCONTEXT\tMAX OUT\tIN $/M\tOUT $/M")
		for _, info := range openairesponses.KnownModels() {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.2f\t%.2f\n",
				info.ID, info.DisplayName, info.ContextWindow, info.MaxOutputTokens,
				info.Pricing.InputPerMillion, info.Pricing.OutputPerMillion)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
