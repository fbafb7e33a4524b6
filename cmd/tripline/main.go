package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/tripline/internal/cli"
	"github.com/example/tripline/internal/version"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "tripline",
		Short:   "tripline - shipment trip tracker",
		Version: version.String(),
		Long: `tripline tracks shipment trips leg by leg: driver assignment, carrier
acceptance, pickup, transit, offloading and delivery. It shows which leg
of each trip is currently active.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.Bootstrap(verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			cli.Shutdown()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.TripCmd())
	rootCmd.AddCommand(cli.IndicatorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
