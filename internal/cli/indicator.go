package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/tripline/internal/wire"
)

// IndicatorCmd returns the indicator command
func IndicatorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "indicator [leg]",
		Short: "Evaluate the active indicator for a leg snapshot file",
		Long: `Evaluate whether a leg is active, given legs read from a YAML or JSON file.
No database is used.

File format:
  legs:
    - name: started_for_pickup
      fulfilled: true
    - name: in_transit
      fulfilled: false

Prints "true" or "false". With --all, prints every leg with its marker.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			all, _ := cmd.Flags().GetBool("all")

			adapter := wire.IndicatorAdapter()
			if all {
				return adapter.Progress(NewContext(), file)
			}
			if len(args) == 0 {
				return fmt.Errorf("leg required unless --all is set")
			}
			return adapter.Evaluate(NewContext(), file, args[0])
		},
	}
	cmd.Flags().StringP("file", "f", "", "Leg snapshot file (YAML or JSON)")
	cmd.Flags().Bool("all", false, "Show every leg with its active indicator")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
